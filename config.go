package chatadapter

import (
	"maps"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
)

// EnvConfig is the adapter configuration read from the environment.
type EnvConfig struct {
	ApiKey   string `mapstructure:"CHAT_API_KEY"`
	Model    string `mapstructure:"CHAT_MODEL"`
	Provider string `mapstructure:"CHAT_PROVIDER"`
}

// LoadEnv reads the adapter configuration from a .env file, if present,
// merged with the process environment. The process environment wins.
//
// The API key is required; the model defaults to Gemini 1.5 Pro.
func LoadEnv() (*EnvConfig, error) {
	env := make(map[string]string)

	if fileEnv, err := godotenv.Read(); err == nil {
		maps.Copy(env, fileEnv)
	}

	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}

	var cfg EnvConfig

	if err := mapstructure.Decode(env, &cfg); err != nil {
		return nil, errors.Wrap(err, "could not decode environment configuration")
	}

	if cfg.ApiKey == "" {
		return nil, errors.New("CHAT_API_KEY is missing from the configuration")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-1.5-pro-latest"
	}

	return &cfg, nil
}
