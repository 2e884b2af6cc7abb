package cli

import (
	"fmt"
	"io"

	"github.com/mernkit/create-mern/internal/config"
	"github.com/mernkit/create-mern/internal/manifest"
	"github.com/mernkit/create-mern/internal/toolchain"
	"github.com/spf13/cobra"
)

var checkManifest string

func init() {
	doctorCmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate a package.json at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the installer and Node.js are available",
	Long: `Verify the tools a generated project needs: the configured package
installer and a Node.js release that satisfies ` + toolchain.MinNodeVersion + `.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if checkManifest != "" {
			return runManifestCheck(out, checkManifest)
		}

		settings, err := config.Current()
		if err != nil {
			return err
		}
		return toolchain.NewChecker(settings.Installer).Check(cmd.Context(), out)
	},
}

func runManifestCheck(w io.Writer, path string) error {
	fmt.Fprintf(w, "Manifest validation: %s\n", path)

	result, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return fmt.Errorf("manifest validation failed: %w", err)
	}

	if result.Valid {
		fmt.Fprintln(w, "  [ OK ] Valid package manifest")
		return nil
	}

	fmt.Fprintf(w, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		fmt.Fprintf(w, "    - %s\n", issue)
	}
	return fmt.Errorf("manifest %s has %d validation issue(s)", path, len(result.Issues))
}
