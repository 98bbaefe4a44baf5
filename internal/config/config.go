// Package config resolves the Databricks host and token used for all
// remote calls. Process environment variables take precedence over the
// project's .env file, which this package also manages.
package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/stateful/godotenv"
)

const (
	EnvHost  = "DATABRICKS_HOST"
	EnvToken = "DATABRICKS_TOKEN"

	envFileName = ".env"
)

type Config struct {
	Host  string
	Token string
}

// Complete reports whether both values required for a remote call are set.
func (c *Config) Complete() bool {
	return c.Host != "" && c.Token != ""
}

// Load resolves the configuration: environment variables win over values
// from the .env file. A missing .env file is not an error.
func Load() (*Config, error) {
	fileVars, err := readEnvFile()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Host:  fileVars[EnvHost],
		Token: fileVars[EnvToken],
	}
	if v := os.Getenv(EnvHost); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv(EnvToken); v != "" {
		cfg.Token = v
	}
	return cfg, nil
}

// Set persists a single value to the .env file, keeping other entries.
func Set(key, value string) error {
	vars, err := readEnvFile()
	if err != nil {
		return err
	}
	if vars == nil {
		vars = map[string]string{}
	}
	vars[key] = value
	return writeEnvFile(vars)
}

// Path returns the location of the .env file: the first one found walking
// up from the working directory, or a path next to the nearest .git
// directory, falling back to the working directory itself.
func Path() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "failed to get working directory")
	}
	return filepath.Join(projectRoot(dir), envFileName), nil
}

func projectRoot(dir string) string {
	for cur := dir; ; {
		if fileExists(filepath.Join(cur, envFileName)) || fileExists(filepath.Join(cur, ".git")) {
			return cur
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return dir
		}
		cur = parent
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func readEnvFile() (map[string]string, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		return nil, nil
	case err != nil:
		return nil, errors.Wrapf(err, "failed to read %q", path)
	}

	vars, err := godotenv.UnmarshalBytes(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %q", path)
	}
	return vars, nil
}

func writeEnvFile(vars map[string]string) error {
	path, err := Path()
	if err != nil {
		return err
	}

	body, err := godotenv.Marshal(vars)
	if err != nil {
		return errors.Wrap(err, "failed to marshal env file")
	}

	content := "# Databricks Configuration\n# Managed by dbnb\n\n" + body + "\n"
	return errors.Wrapf(
		os.WriteFile(path, []byte(content), 0o600),
		"failed to write %q", path,
	)
}

// MaskToken hides a token for display, keeping the first and last four
// characters of sufficiently long values.
func MaskToken(token string) string {
	switch {
	case token == "":
		return "(not set)"
	case len(token) <= 12:
		return "****"
	default:
		return token[:4] + "..." + token[len(token)-4:]
	}
}
