package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mernkit/create-mern/internal/project"
	"github.com/mernkit/create-mern/internal/scaffold"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("197"))
)

func printFailure(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", errorStyle.Render("✖ Failed:"), err)
}

func printWarnings(w io.Writer, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintln(w, warnStyle.Render("\nWarnings:"))
	for _, msg := range warnings {
		fmt.Fprintf(w, "  - %s\n", msg)
	}
}

// printStopped tells the user how far a failed run got and what is left on disk.
func printStopped(w io.Writer, result *scaffold.Result) {
	fmt.Fprintf(w, "Stopped during %s phase; %d file(s) written to %s were kept.\n",
		result.Reached, len(result.Files), result.Target)
	fmt.Fprintf(w, "Remove %s before running again.\n", result.Target)
}

func printSummary(w io.Writer, spec *project.Spec, installer string) {
	fmt.Fprintln(w, successStyle.Render("\n✅ Installation complete!"))
	fmt.Fprintln(w, headerStyle.Render("\nNext steps:"))
	fmt.Fprintf(w, "  cd %s\n", spec.Name)
	fmt.Fprintf(w, "  %s run dev\n", installer)
	fmt.Fprintf(w, "\nBackend: %s\n", spec.BackendURL())
	fmt.Fprintf(w, "Frontend: %s\n", spec.ClientURL())
	fmt.Fprintln(w, "\nNote: Edit backend/.env if you want to set a remote MONGO_URI")
}
