// Package config defines the configuration schema for aquarium-mcp.
//
// Files may be JSON or YAML; keys use camelCase in both.
package config

import (
	"github.com/crystaldolphin/aquarium-mcp/internal/config/agent"
	"github.com/crystaldolphin/aquarium-mcp/internal/config/aquarium"
	"github.com/crystaldolphin/aquarium-mcp/internal/config/server"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// LogConfig controls the process-wide logger.
type LogConfig struct {
	Level string `json:"level" yaml:"level"`
	JSON  bool   `json:"json" yaml:"json"`
}

// Config is the root configuration object.
type Config struct {
	AppEnv   string                  `json:"appEnv" yaml:"appEnv"`
	Debug    bool                    `json:"debug" yaml:"debug"`
	Aquarium aquarium.AquariumConfig `json:"aquarium" yaml:"aquarium"`
	Server   server.ServerConfig     `json:"server" yaml:"server"`
	Log      LogConfig               `json:"log" yaml:"log"`
	Agent    agent.AgentConfig       `json:"agent" yaml:"agent"`
}

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() Config {
	return Config{
		AppEnv:   EnvDevelopment,
		Debug:    true,
		Aquarium: aquarium.DefaultAquariumConfig(),
		Server:   server.DefaultServerConfig(),
		Log:      LogConfig{Level: "info"},
		Agent:    agent.DefaultAgentConfig(),
	}
}

// LogLevel is the effective log level: debug mode forces "debug".
func (c *Config) LogLevel() string {
	if c.Debug {
		return "debug"
	}
	return c.Log.Level
}
