package layout

import (
	"fmt"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/mernkit/create-mern/internal/project"
)

// backendEnv renders the backend's .env and .env.example. The generated
// server falls back to the same values when the file is absent.
func backendEnv(spec *project.Spec) (string, error) {
	out, err := godotenv.Marshal(map[string]string{
		"MONGO_URI": spec.MongoURI(),
		"PORT":      strconv.Itoa(spec.BackendPort),
	})
	if err != nil {
		return "", fmt.Errorf("marshaling backend env: %w", err)
	}
	return out + "\n", nil
}
