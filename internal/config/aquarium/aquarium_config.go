package aquarium

import "time"

// AquariumConfig holds the SOAP endpoint and credentials of the CRM.
type AquariumConfig struct {
	Endpoint       string `json:"endpoint" yaml:"endpoint"`
	Namespace      string `json:"namespace" yaml:"namespace"`
	Username       string `json:"username" yaml:"username"`
	Password       string `json:"password" yaml:"password"`
	TimeoutSeconds int    `json:"timeoutSeconds" yaml:"timeoutSeconds"`
}

func DefaultAquariumConfig() AquariumConfig {
	return AquariumConfig{
		Namespace:      "http://www.aquarium-software.com/",
		TimeoutSeconds: 30,
	}
}

// Timeout returns the per-call timeout, defaulting to 30s.
func (c AquariumConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Configured reports whether an endpoint has been set.
func (c AquariumConfig) Configured() bool { return c.Endpoint != "" }
