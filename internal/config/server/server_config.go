package server

// ServerConfig holds the HTTP listener settings for REST and MCP.
type ServerConfig struct {
	Host string `json:"host" yaml:"host"`
	Port int    `json:"port" yaml:"port"`
	// PublicURL is the externally reachable base URL, e.g. a tunnel.
	PublicURL string `json:"publicUrl,omitempty" yaml:"publicUrl,omitempty"`
}

func DefaultServerConfig() ServerConfig {
	return ServerConfig{Host: "0.0.0.0", Port: 8000}
}
