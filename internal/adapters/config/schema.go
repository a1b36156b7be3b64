package config

// File is the structure of the outfit.yaml configuration file.
type File struct {
	ModelsDir string        `yaml:"models_dir"`
	Hub       *HubDTO       `yaml:"hub"`
	Bootstrap *BootstrapDTO `yaml:"bootstrap"`
}

// HubDTO is the hub section of the configuration file.
type HubDTO struct {
	Endpoint string `yaml:"endpoint"`
	Token    string `yaml:"token"`
	Revision string `yaml:"revision"`
	Timeout  string `yaml:"timeout"`
}

// BootstrapDTO is the bootstrap section of the configuration file.
// Pointers distinguish an explicit false from an absent key.
type BootstrapDTO struct {
	Skip   *bool  `yaml:"skip"`
	System *bool  `yaml:"system"`
	Python string `yaml:"python"`
}
