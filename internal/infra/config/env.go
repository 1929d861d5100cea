package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

// Environment variables
const (
	EnvHome         = "SMARTFARM_HOME"
	EnvGeminiKey    = "GEMINI_API_KEY"
	EnvAnthropicKey = "ANTHROPIC_API_KEY"
)

// DefaultHome is used when neither a flag nor SMARTFARM_HOME is set
const DefaultHome = ".smartfarm"

// EnvFile is the dotenv file name inside the home directory
const EnvFile = ".env"

// ResolveHome picks the home directory: explicit value, then SMARTFARM_HOME, then the default
func ResolveHome(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if v := os.Getenv(EnvHome); v != "" {
		return v
	}
	return DefaultHome
}

// Env holds variables from <home>/.env merged under the process environment
type Env struct {
	values map[string]string
	lookup func(string) (string, bool)
}

// LoadEnv parses <home>/.env when it exists. Process variables win over the file.
func LoadEnv(fs afero.Fs, home string) (*Env, error) {
	env := &Env{values: map[string]string{}, lookup: os.LookupEnv}

	path := filepath.Join(home, EnvFile)
	f, err := fs.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return env, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	values, err := godotenv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	env.values = values
	return env, nil
}

// Get returns the process value of key, falling back to the .env file
func (e *Env) Get(key string) string {
	if e.lookup != nil {
		if v, ok := e.lookup(key); ok && v != "" {
			return v
		}
	}
	return e.values[key]
}

// APIKeyFor returns the credential variable for an agent type, or ""
func (e *Env) APIKeyFor(agent string) string {
	switch agent {
	case "gemini", "":
		return e.Get(EnvGeminiKey)
	case "claude":
		return e.Get(EnvAnthropicKey)
	default:
		return ""
	}
}
