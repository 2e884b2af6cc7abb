package layout

import (
	"fmt"
	"strings"

	"github.com/mernkit/create-mern/internal/project"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// field is one key of a package.json, addressed by its path segments.
// Fields are set in declaration order, which is the order they appear in
// the output.
type field struct {
	path  []string
	value any
}

func key(value any, path ...string) field {
	return field{path: path, value: value}
}

var prettyOptions = &pretty.Options{Width: 80, Prefix: "", Indent: "  ", SortKeys: false}

// buildManifest assembles a JSON document key by key and indents it by two
// spaces, the way npm writes package.json.
func buildManifest(fields []field) (string, error) {
	doc := []byte("{}")
	for _, fl := range fields {
		var err error
		doc, err = sjson.SetBytes(doc, jsonPath(fl.path...), fl.value)
		if err != nil {
			return "", fmt.Errorf("setting %s: %w", strings.Join(fl.path, "."), err)
		}
	}
	return string(pretty.PrettyOptions(doc, prettyOptions)), nil
}

// jsonPath joins path segments into an sjson path, escaping characters the
// path syntax gives meaning to (package names like "@vitejs/plugin-react").
func jsonPath(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, seg := range segments {
		var b strings.Builder
		for _, r := range seg {
			switch r {
			case '.', '*', '?', '|', '#', '@', ':', '\\', '!':
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		}
		escaped[i] = b.String()
	}
	return strings.Join(escaped, ".")
}

// Version ranges of the packages that define the generated stack.
const (
	expressRange  = "^4.19.2"
	mongooseRange = "^8.6.0"
	reactRange    = "^18.3.1"
	viteRange     = "^5.3.4"
)

var stackPackages = []string{"express", "mongoose", "react", "vite"}

// StackPackages returns the main packages of a generated project, backend first.
func StackPackages() []string {
	return append([]string(nil), stackPackages...)
}

// StackVersions maps each of StackPackages to the range written into the
// generated manifests.
func StackVersions() map[string]string {
	return map[string]string{
		"express":  expressRange,
		"mongoose": mongooseRange,
		"react":    reactRange,
		"vite":     viteRange,
	}
}

func backendManifest(spec *project.Spec) (string, error) {
	return buildManifest([]field{
		key(spec.Name+"-backend", "name"),
		key("1.0.0", "version"),
		key("module", "type"),
		key("server.js", "main"),
		key("nodemon server.js", "scripts", "dev"),
		key("node server.js", "scripts", "start"),
		key(expressRange, "dependencies", "express"),
		key(mongooseRange, "dependencies", "mongoose"),
		key("^2.8.5", "dependencies", "cors"),
		key("^16.4.5", "dependencies", "dotenv"),
		key("^3.1.0", "devDependencies", "nodemon"),
	})
}

func clientManifest(spec *project.Spec) (string, error) {
	return buildManifest([]field{
		key(spec.Name+"-client", "name"),
		key(true, "private"),
		key("0.0.0", "version"),
		key("module", "type"),
		key("vite", "scripts", "dev"),
		key("vite build", "scripts", "build"),
		key("vite preview", "scripts", "preview"),
		key(reactRange, "dependencies", "react"),
		key(reactRange, "dependencies", "react-dom"),
		key(viteRange, "devDependencies", "vite"),
		key("^4.3.1", "devDependencies", "@vitejs/plugin-react"),
	})
}

func rootManifest(spec *project.Spec) (string, error) {
	return buildManifest([]field{
		key(spec.Name, "name"),
		key("0.1.0", "version"),
		key(true, "private"),
		key("module", "type"),
		key(`concurrently "npm --prefix backend run dev" "npm --prefix client run dev"`, "scripts", "dev"),
		key("npm --prefix backend run dev", "scripts", "dev:server"),
		key("npm --prefix client run dev", "scripts", "dev:client"),
		key("npm --prefix backend run start", "scripts", "start"),
		key("npm --prefix client run build", "scripts", "build"),
		key("^8.2.0", "devDependencies", "concurrently"),
	})
}
