// Package config resolves credentials and model settings from the process
// environment, with an optional secrets.env file for local runs.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// ErrMissingAPIKey is the distinct fail-fast error for an absent credential.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY not set (environment or secrets file)")

// DefaultSecretsFile is the conventional local secrets filename.
const DefaultSecretsFile = "secrets.env"

const defaultModel = "gpt-4.1"

// Config carries the settings the classification pipeline needs beyond its
// command-line flags.
type Config struct {
	OpenAIAPIKey string
	Model        string
}

// Load reads the optional secrets file (skipped when absent) and the
// process environment. Environment variables win over file values.
func Load(secretsFile string) (Config, error) {
	v := viper.New()
	v.SetDefault("OPENAI_MODEL", defaultModel)
	v.AutomaticEnv()

	if secretsFile != "" {
		if _, err := os.Stat(secretsFile); err == nil {
			v.SetConfigFile(secretsFile)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("read %s: %w", secretsFile, err)
			}
		}
	}

	return Config{
		OpenAIAPIKey: v.GetString("OPENAI_API_KEY"),
		Model:        v.GetString("OPENAI_MODEL"),
	}, nil
}

// RequireAPIKey fails fast when no credential was found.
func (c Config) RequireAPIKey() error {
	if c.OpenAIAPIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}
