package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mernkit/create-mern/internal/branding"
	"github.com/mernkit/create-mern/internal/layout"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print the version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print build and template info as JSON")
	rootCmd.AddCommand(versionCmd)
}

// buildInfo describes this binary and the stack its projects are generated with.
type buildInfo struct {
	Name     string            `json:"name"`
	Version  string            `json:"version"`
	Commit   string            `json:"commit"`
	Date     string            `json:"date"`
	Template map[string]string `json:"template"`
}

func currentBuildInfo() buildInfo {
	return buildInfo{
		Name:     branding.CLIName(),
		Version:  buildVersion,
		Commit:   buildCommit,
		Date:     buildDate,
		Template: layout.StackVersions(),
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print the ` + branding.DisplayName() + ` build and the versions of the main
packages written into generated manifests.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		info := currentBuildInfo()

		switch {
		case versionShort:
			fmt.Fprintln(out, info.Version)
			return nil
		case versionJSON:
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		writeBuildInfo(out, info)
		return nil
	},
}

func writeBuildInfo(w io.Writer, info buildInfo) {
	fmt.Fprintln(w, headerStyle.Render(branding.DisplayName()))
	fmt.Fprintf(w, "  %s %s (commit %s, built %s)\n", info.Name, info.Version, info.Commit, info.Date)
	fmt.Fprintln(w, "  Generates:")
	for _, pkg := range layout.StackPackages() {
		fmt.Fprintf(w, "    %-22s %s\n", pkg, info.Template[pkg])
	}
}
