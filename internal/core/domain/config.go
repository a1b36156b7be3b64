package domain

import "time"

// DefaultHubEndpoint is the public model hub.
const DefaultHubEndpoint = "https://huggingface.co"

// DefaultPython is the interpreter used for pip when none is configured.
const DefaultPython = "python3"

// Config is the resolved runtime configuration.
type Config struct {
	// ModelsDir overrides the models root. Empty means the executable-relative default.
	ModelsDir string
	Hub       HubConfig
	Bootstrap BootstrapConfig
}

// HubConfig configures the model hub client.
type HubConfig struct {
	Endpoint string
	Token    string
	Revision string
	// Timeout bounds each HTTP request. Zero means no timeout.
	Timeout time.Duration
}

// BootstrapConfig configures the environment installer.
type BootstrapConfig struct {
	Skip   bool
	System bool
	Python string
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		Hub: HubConfig{
			Endpoint: DefaultHubEndpoint,
			Revision: DefaultRevision,
		},
		Bootstrap: BootstrapConfig{
			System: true,
			Python: DefaultPython,
		},
	}
}
