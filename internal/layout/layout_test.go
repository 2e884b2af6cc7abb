package layout

import (
	"strings"
	"testing"

	"github.com/joho/godotenv"
	"github.com/mernkit/create-mern/internal/project"
	"github.com/tidwall/gjson"
)

func testSpec(name string) *project.Spec {
	return &project.Spec{
		Name:        name,
		Target:      "/tmp/" + name,
		BackendPort: project.DefaultBackendPort,
		ClientPort:  project.DefaultClientPort,
		MongoHost:   project.DefaultMongoHost,
	}
}

func mustPlan(t *testing.T, name string) []SubProject {
	t.Helper()
	subs, err := Plan(testSpec(name))
	if err != nil {
		t.Fatalf("Plan(%q) error: %v", name, err)
	}
	return subs
}

func mustFile(t *testing.T, subs []SubProject, sub, path string) FileEntry {
	t.Helper()
	s, ok := Find(subs, sub)
	if !ok {
		t.Fatalf("sub-project %q not planned", sub)
	}
	f, ok := s.File(path)
	if !ok {
		t.Fatalf("file %s/%s not planned", sub, path)
	}
	return f
}

func TestPlan_Order(t *testing.T) {
	subs := mustPlan(t, "demo")

	want := []struct{ name, dir string }{
		{Backend, "backend"},
		{Client, "client"},
		{Root, "."},
	}
	if len(subs) != len(want) {
		t.Fatalf("got %d sub-projects, want %d", len(subs), len(want))
	}
	for i, w := range want {
		if subs[i].Name != w.name || subs[i].Dir != w.dir {
			t.Errorf("subs[%d] = %s (%s), want %s (%s)", i, subs[i].Name, subs[i].Dir, w.name, w.dir)
		}
	}
}

func TestPlan_Layout(t *testing.T) {
	subs := mustPlan(t, "demo")

	expected := map[string][]string{
		Backend: {
			"package.json",
			"server.js",
			"src/models/user.model.js",
			"src/controllers/user.controller.js",
			"src/routes/user.routes.js",
			".env.example",
			".env",
		},
		Client: {
			"package.json",
			"index.html",
			"vite.config.js",
			"src/main.jsx",
			"src/App.jsx",
			"src/styles.css",
		},
		Root: {"package.json", ".gitignore"},
	}

	for _, s := range subs {
		want := expected[s.Name]
		if len(s.Files) != len(want) {
			t.Errorf("%s: got %d files, want %d", s.Name, len(s.Files), len(want))
			continue
		}
		for i, path := range want {
			if s.Files[i].Path != path {
				t.Errorf("%s file[%d] = %q, want %q", s.Name, i, s.Files[i].Path, path)
			}
			if s.Files[i].Content == "" {
				t.Errorf("%s/%s has empty content", s.Name, path)
			}
		}
	}

	backend, _ := Find(subs, Backend)
	if got := strings.Join(backend.Dirs, ","); got != "src/models,src/controllers,src/routes" {
		t.Errorf("backend dirs = %q", got)
	}
}

func TestPlan_Deterministic(t *testing.T) {
	first := mustPlan(t, "demo")
	for i := 0; i < 5; i++ {
		again := mustPlan(t, "demo")
		for si := range first {
			for fi := range first[si].Files {
				a, b := first[si].Files[fi], again[si].Files[fi]
				if a.Path != b.Path || a.Content != b.Content || a.Mode != b.Mode {
					t.Fatalf("run %d: %s/%s differs between invocations", i, first[si].Name, a.Path)
				}
			}
		}
	}
}

func TestPlan_ContentParameterization(t *testing.T) {
	subs := mustPlan(t, "shopcart")

	backendPkg := mustFile(t, subs, Backend, "package.json").Content
	if got := gjson.Get(backendPkg, "name").String(); got != "shopcart-backend" {
		t.Errorf("backend name = %q, want %q", got, "shopcart-backend")
	}
	assertContains(t, backendPkg, `"name": "shopcart-backend"`)

	clientPkg := mustFile(t, subs, Client, "package.json").Content
	if got := gjson.Get(clientPkg, "name").String(); got != "shopcart-client" {
		t.Errorf("client name = %q, want %q", got, "shopcart-client")
	}

	rootPkg := mustFile(t, subs, Root, "package.json").Content
	if got := gjson.Get(rootPkg, "name").String(); got != "shopcart" {
		t.Errorf("root name = %q, want %q", got, "shopcart")
	}

	env, err := godotenv.Unmarshal(mustFile(t, subs, Backend, ".env").Content)
	if err != nil {
		t.Fatalf("parsing .env: %v", err)
	}
	if got := env["MONGO_URI"]; !strings.HasSuffix(got, "/shopcart_db") {
		t.Errorf("MONGO_URI = %q, want database shopcart_db", got)
	}
	if env["PORT"] != "5000" {
		t.Errorf("PORT = %q, want %q", env["PORT"], "5000")
	}

	server := mustFile(t, subs, Backend, "server.js").Content
	assertContains(t, server, "mongodb://127.0.0.1:27017/shopcart_db")

	html := mustFile(t, subs, Client, "index.html").Content
	assertContains(t, html, "<title>shopcart client</title>")
}

func TestPlan_ManifestKeyOrder(t *testing.T) {
	subs := mustPlan(t, "demo")
	backendPkg := mustFile(t, subs, Backend, "package.json").Content

	var keys []string
	gjson.Parse(backendPkg).ForEach(func(k, _ gjson.Result) bool {
		keys = append(keys, k.String())
		return true
	})
	want := "name,version,type,main,scripts,dependencies,devDependencies"
	if got := strings.Join(keys, ","); got != want {
		t.Errorf("backend keys = %s, want %s", got, want)
	}

	var deps []string
	gjson.Get(backendPkg, "dependencies").ForEach(func(k, _ gjson.Result) bool {
		deps = append(deps, k.String())
		return true
	})
	if got := strings.Join(deps, ","); got != "express,mongoose,cors,dotenv" {
		t.Errorf("backend dependencies order = %s", got)
	}
}

func TestPlan_ClientManifest(t *testing.T) {
	subs := mustPlan(t, "demo")
	clientPkg := mustFile(t, subs, Client, "package.json").Content

	if !gjson.Get(clientPkg, "private").Bool() {
		t.Error("client manifest should be private")
	}
	devDeps := gjson.Get(clientPkg, "devDependencies").Map()
	if devDeps["@vitejs/plugin-react"].String() != "^4.3.1" {
		t.Errorf("@vitejs/plugin-react = %q, want %q", devDeps["@vitejs/plugin-react"].String(), "^4.3.1")
	}
	if devDeps["vite"].String() != "^5.3.4" {
		t.Errorf("vite = %q, want %q", devDeps["vite"].String(), "^5.3.4")
	}
}

func TestPlan_RootManifestScripts(t *testing.T) {
	subs := mustPlan(t, "demo")
	rootPkg := mustFile(t, subs, Root, "package.json").Content

	scripts := gjson.Get(rootPkg, "scripts").Map()
	if got := scripts["dev"].String(); got != `concurrently "npm --prefix backend run dev" "npm --prefix client run dev"` {
		t.Errorf("dev script = %q", got)
	}
	if got := scripts["dev:server"].String(); got != "npm --prefix backend run dev" {
		t.Errorf("dev:server script = %q", got)
	}
	if got := gjson.Get(rootPkg, "devDependencies").Map()["concurrently"].String(); got != "^8.2.0" {
		t.Errorf("concurrently = %q", got)
	}

	gitignore := mustFile(t, subs, Root, ".gitignore").Content
	if gitignore != "node_modules\n.env\n.DS_Store\n" {
		t.Errorf(".gitignore = %q", gitignore)
	}
}

func TestPlan_ViteProxyUsesBackendPort(t *testing.T) {
	spec := testSpec("demo")
	spec.BackendPort = 6000
	subs, err := Plan(spec)
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}

	vite := mustFile(t, subs, Client, "vite.config.js").Content
	assertContains(t, vite, `target: "http://localhost:6000"`)
	assertContains(t, vite, `port: 5173`)

	// JSX braces must survive template rendering.
	app := mustFile(t, subs, Client, "src/App.jsx").Content
	assertContains(t, app, `style={{ fontFamily: "sans-serif", padding: 24 }}`)
}

func TestPlan_EnvFileModes(t *testing.T) {
	subs := mustPlan(t, "demo")

	if mode := mustFile(t, subs, Backend, ".env").Mode; mode != 0600 {
		t.Errorf(".env mode = %o, want 600", mode)
	}
	if mode := mustFile(t, subs, Backend, ".env.example").Mode; mode != 0644 {
		t.Errorf(".env.example mode = %o, want 644", mode)
	}
	env := mustFile(t, subs, Backend, ".env").Content
	example := mustFile(t, subs, Backend, ".env.example").Content
	if env != example {
		t.Errorf(".env and .env.example differ:\n%s\n---\n%s", env, example)
	}
	assertContains(t, env, "PORT=5000")
}

func TestStackVersions_MatchManifests(t *testing.T) {
	subs := mustPlan(t, "demo")
	backendPkg := mustFile(t, subs, Backend, "package.json").Content
	clientPkg := mustFile(t, subs, Client, "package.json").Content

	versions := StackVersions()
	written := map[string]string{
		"express":  gjson.Get(backendPkg, "dependencies.express").String(),
		"mongoose": gjson.Get(backendPkg, "dependencies.mongoose").String(),
		"react":    gjson.Get(clientPkg, "dependencies.react").String(),
		"vite":     gjson.Get(clientPkg, "devDependencies.vite").String(),
	}
	for _, pkg := range StackPackages() {
		if versions[pkg] != written[pkg] {
			t.Errorf("%s: StackVersions = %q, manifest = %q", pkg, versions[pkg], written[pkg])
		}
	}
}

func TestJSONPath(t *testing.T) {
	tests := []struct {
		segments []string
		want     string
	}{
		{[]string{"name"}, "name"},
		{[]string{"scripts", "dev:server"}, `scripts.dev\:server`},
		{[]string{"devDependencies", "@vitejs/plugin-react"}, `devDependencies.\@vitejs/plugin-react`},
		{[]string{"a.b"}, `a\.b`},
	}

	for _, tt := range tests {
		if got := jsonPath(tt.segments...); got != tt.want {
			t.Errorf("jsonPath(%v) = %q, want %q", tt.segments, got, tt.want)
		}
	}
}

// ─── Test Helpers ──────────────────────────────────────────────────

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("content does not contain %q\n--- content ---\n%s", substr, content)
	}
}
