package cli

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/mernkit/create-mern/internal/config"
	"github.com/mernkit/create-mern/internal/layout"
	"github.com/mernkit/create-mern/internal/project"
	"github.com/mernkit/create-mern/internal/scaffold"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

func init() {
	rootCmd.AddCommand(planCmd)
}

var planCmd = &cobra.Command{
	Use:   "plan [project-name]",
	Short: "Print the files a project would contain without writing them",
	Long: `Plan the project layout and print it as YAML: every sub-project, the
directories created for it, each file with its size and mode, and the install
command that would run in it. Nothing is written to disk.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Current()
		if err != nil {
			return err
		}
		spec, err := specFromArgs(args, settings)
		if err != nil {
			return err
		}

		subs, err := layout.Plan(spec)
		if err != nil {
			return fmt.Errorf("planning project: %w", err)
		}

		out := cmd.OutOrStdout()
		if err := writePlan(out, spec, subs, settings.Installer); err != nil {
			return err
		}
		printWarnings(cmd.ErrOrStderr(), scaffold.ValidateManifests(subs))
		return nil
	},
}

type planDoc struct {
	Project     string       `yaml:"project"`
	Target      string       `yaml:"target"`
	SubProjects []planSubDoc `yaml:"sub_projects"`
}

type planSubDoc struct {
	Name    string        `yaml:"name"`
	Dir     string        `yaml:"dir"`
	Dirs    []string      `yaml:"dirs,omitempty"`
	Files   []planFileDoc `yaml:"files"`
	Install string        `yaml:"install"`
}

type planFileDoc struct {
	Path  string `yaml:"path"`
	Bytes int    `yaml:"bytes"`
	Mode  string `yaml:"mode"`
}

func writePlan(w io.Writer, spec *project.Spec, subs []layout.SubProject, installer string) error {
	doc := planDoc{Project: spec.Name, Target: spec.Target}
	for _, s := range subs {
		sd := planSubDoc{
			Name:    s.Name,
			Dir:     s.Dir,
			Install: strings.Join([]string{installer, "install"}, " "),
		}
		for _, d := range s.Dirs {
			sd.Dirs = append(sd.Dirs, path.Join(s.Dir, d))
		}
		for _, f := range s.Files {
			sd.Files = append(sd.Files, planFileDoc{
				Path:  path.Join(s.Dir, f.Path),
				Bytes: len(f.Content),
				Mode:  fmt.Sprintf("%04o", f.Mode.Perm()),
			})
		}
		doc.SubProjects = append(doc.SubProjects, sd)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}
	return enc.Close()
}
