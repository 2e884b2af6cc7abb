package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mernkit/create-mern/internal/branding"
	"github.com/mernkit/create-mern/internal/config"
	"github.com/mernkit/create-mern/internal/project"
	"github.com/mernkit/create-mern/internal/runtime"
	"github.com/mernkit/create-mern/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// newRunner builds the installer runner; tests replace it with a stub.
var newRunner = func() runtime.Runner {
	return &runtime.ExecRunner{}
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [project-name]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates a MERN project: an Express + Mongoose backend and a
Vite + React client, each with its own package.json, plus a root package.json
that runs both. Dependencies are installed in backend, client and the root,
in that order.

The project name defaults to "` + branding.DefaultProjectName() + `". The target directory must be
empty or absent.

Example:
  ` + branding.CLIName() + ` shopcart`,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Current()
		if err != nil {
			return err
		}
		spec, err := specFromArgs(args, settings)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		s := &scaffold.Scaffolder{
			Runner:    newRunner(),
			Installer: settings.Installer,
			Out:       out,
		}

		result, err := s.Run(cmd.Context(), spec)
		if result != nil {
			printWarnings(out, result.Warnings)
		}
		if err != nil {
			if result != nil {
				return &stoppedError{err: err, result: result}
			}
			return err
		}

		printSummary(out, spec, settings.Installer)
		return nil
	},
}

// specFromArgs builds the project spec from the optional name argument, the
// working directory and the loaded settings.
func specFromArgs(args []string, settings *config.Settings) (*project.Spec, error) {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolving working directory: %w", err)
	}

	spec, err := project.New(name, settings.DefaultName, cwd)
	if err != nil {
		return nil, err
	}
	spec.BackendPort = settings.BackendPort
	spec.ClientPort = settings.ClientPort
	spec.MongoHost = settings.MongoHost
	return spec, nil
}

// Execute runs the root command with build info injected via ldflags.
// Errors are printed once here; the caller only sets the exit status.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	return run(context.Background())
}

func run(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stderr := rootCmd.ErrOrStderr()
		printFailure(stderr, err)
		var stopped *stoppedError
		if errors.As(err, &stopped) {
			printStopped(stderr, stopped.result)
		}
	}
	return err
}

// stoppedError marks a run that failed after writing files.
type stoppedError struct {
	err    error
	result *scaffold.Result
}

func (e *stoppedError) Error() string { return e.err.Error() }

func (e *stoppedError) Unwrap() error { return e.err }
