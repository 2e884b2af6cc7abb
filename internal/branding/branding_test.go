package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"CLIName", CLIName(), "create-mern"},
		{"HomeDir", HomeDir(), ".create-mern"},
		{"EnvPrefix", EnvPrefix(), "CREATE_MERN"},
		{"DefaultProjectName", DefaultProjectName(), "my-mern-app"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s() = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}
