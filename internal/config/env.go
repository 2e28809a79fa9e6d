package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvFile is the dotenv file read from the working directory, if present.
var EnvFile = ".env"

// applyEnv loads EnvFile into the process environment (existing variables
// win) and then overlays environment variables onto cfg.
func applyEnv(cfg *Config) error {
	if err := godotenv.Load(EnvFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load %s: %w", EnvFile, err)
	}

	if v, ok := lookup("APP_ENV"); ok {
		cfg.AppEnv = strings.ToLower(v)
		cfg.Debug = cfg.AppEnv == EnvDevelopment
	}
	if err := setBool(&cfg.Debug, "DEBUG"); err != nil {
		return err
	}

	setString(&cfg.Server.PublicURL, "GROK_URL")
	setString(&cfg.Server.Host, "HOST")
	if err := setInt(&cfg.Server.Port, "PORT"); err != nil {
		return err
	}
	setString(&cfg.Log.Level, "LOG_LEVEL")

	setString(&cfg.Aquarium.Endpoint, "AQUARIUM_ENDPOINT")
	setString(&cfg.Aquarium.Namespace, "AQUARIUM_NAMESPACE")
	setString(&cfg.Aquarium.Username, "AQUARIUM_USERNAME")
	setString(&cfg.Aquarium.Password, "AQUARIUM_PASSWORD")
	if err := setInt(&cfg.Aquarium.TimeoutSeconds, "AQUARIUM_TIMEOUT"); err != nil {
		return err
	}

	setString(&cfg.Agent.APIKey, "OPENAI_API_KEY")
	setString(&cfg.Agent.APIBase, "OPENAI_BASE_URL")
	setString(&cfg.Agent.Model, "AGENT_MODEL")
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func setString(dst *string, key string) {
	if v, ok := lookup(key); ok {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("env %s: expected an integer, got %q", key, v)
	}
	*dst = n
	return nil
}

func setBool(dst *bool, key string) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("env %s: expected a boolean, got %q", key, v)
	}
	*dst = b
	return nil
}
