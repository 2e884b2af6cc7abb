package layout

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"text/template"

	"github.com/mernkit/create-mern/internal/project"
)

//go:embed templates
var templateFS embed.FS

// Sub-project names, in materialization and install order.
const (
	Backend = "backend"
	Client  = "client"
	Root    = "root"
)

const (
	modeFile   os.FileMode = 0644
	modeSecret os.FileMode = 0600
)

// FileEntry is one planned output file.
type FileEntry struct {
	Path    string // slash-separated, relative to the sub-project root
	Content string
	Mode    os.FileMode
}

// SubProject is one output root with its own manifest and install step.
type SubProject struct {
	Name  string
	Dir   string   // slash-separated, relative to the project target ("." for root)
	Dirs  []string // created before any file, in order
	Files []FileEntry
}

// renderFunc produces the content of one file from the project spec.
type renderFunc func(*project.Spec) (string, error)

type fileSpec struct {
	path   string
	mode   os.FileMode
	render renderFunc
}

type subProjectSpec struct {
	name  string
	dir   string
	dirs  []string
	files []fileSpec
}

// table is the static registry of every generated file, keyed by path.
var table = []subProjectSpec{
	{
		name: Backend,
		dir:  "backend",
		dirs: []string{"src/models", "src/controllers", "src/routes"},
		files: []fileSpec{
			{"package.json", modeFile, backendManifest},
			{"server.js", modeFile, fromTemplate("backend/server.js")},
			{"src/models/user.model.js", modeFile, fromTemplate("backend/src/models/user.model.js")},
			{"src/controllers/user.controller.js", modeFile, fromTemplate("backend/src/controllers/user.controller.js")},
			{"src/routes/user.routes.js", modeFile, fromTemplate("backend/src/routes/user.routes.js")},
			{".env.example", modeFile, backendEnv},
			{".env", modeSecret, backendEnv},
		},
	},
	{
		name: Client,
		dir:  "client",
		dirs: []string{"src"},
		files: []fileSpec{
			{"package.json", modeFile, clientManifest},
			{"index.html", modeFile, fromTemplate("client/index.html")},
			{"vite.config.js", modeFile, fromTemplate("client/vite.config.js")},
			{"src/main.jsx", modeFile, fromTemplate("client/src/main.jsx")},
			{"src/App.jsx", modeFile, fromTemplate("client/src/App.jsx")},
			{"src/styles.css", modeFile, fromTemplate("client/src/styles.css")},
		},
	},
	{
		name: Root,
		dir:  ".",
		files: []fileSpec{
			{"package.json", modeFile, rootManifest},
			{".gitignore", modeFile, fromTemplate("root/gitignore")},
		},
	},
}

// Plan computes every directory and file of a project. It has no side
// effects and returns byte-identical output for equal specs.
func Plan(spec *project.Spec) ([]SubProject, error) {
	subs := make([]SubProject, 0, len(table))
	for _, sp := range table {
		sub := SubProject{
			Name: sp.name,
			Dir:  sp.dir,
			Dirs: append([]string(nil), sp.dirs...),
		}
		for _, f := range sp.files {
			content, err := f.render(spec)
			if err != nil {
				return nil, fmt.Errorf("rendering %s: %w", path.Join(sp.dir, f.path), err)
			}
			sub.Files = append(sub.Files, FileEntry{
				Path:    f.path,
				Content: content,
				Mode:    f.mode,
			})
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

// Find returns the planned sub-project with the given name.
func Find(subs []SubProject, name string) (SubProject, bool) {
	for _, s := range subs {
		if s.Name == name {
			return s, true
		}
	}
	return SubProject{}, false
}

// File returns the planned entry at path within the sub-project.
func (s SubProject) File(path string) (FileEntry, bool) {
	for _, f := range s.Files {
		if f.Path == path {
			return f, true
		}
	}
	return FileEntry{}, false
}

// fromTemplate renders templates/<name>.tmpl with the project.Spec as data.
// Templates use [[ ]] delimiters because JSX uses {{ }}.
func fromTemplate(name string) renderFunc {
	return func(spec *project.Spec) (string, error) {
		tmplPath := "templates/" + name + ".tmpl"
		tmplBytes, err := fs.ReadFile(templateFS, tmplPath)
		if err != nil {
			return "", fmt.Errorf("reading template %s: %w", tmplPath, err)
		}

		tmpl, err := template.New(name).Delims("[[", "]]").Option("missingkey=error").Parse(string(tmplBytes))
		if err != nil {
			return "", fmt.Errorf("parsing template %s: %w", name, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, spec); err != nil {
			return "", fmt.Errorf("executing template %s: %w", name, err)
		}
		return buf.String(), nil
	}
}
