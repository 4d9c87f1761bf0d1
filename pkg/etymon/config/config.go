package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/etymon/pkg/etymon/internalerr"
)

// App is the application configuration file.
type App struct {
	// DatasetPath is the CSV word database.
	DatasetPath string `yaml:"dataset_path"`
	// RootsPath optionally extends the built-in root lexicon.
	RootsPath string `yaml:"roots_path"`
	// CachePath optionally enables the SQLite lookup cache.
	CachePath string `yaml:"cache_path"`
	// Online enables remote lookup on local misses.
	Online bool `yaml:"online"`
	// TimeoutSeconds bounds each remote call; 0 means the default.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// Load reads the application configuration from a YAML file.
func Load(path string) (*App, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var app App
	if err := yaml.Unmarshal(data, &app); err != nil {
		return nil, err
	}

	if app.TimeoutSeconds < 0 {
		return nil, fmt.Errorf("%w: timeout_seconds must not be negative", internalerr.ErrInvalidConfig)
	}
	return &app, nil
}

// Roots is a root/affix lexicon extension file.
type Roots struct {
	Roots []RootEntry `yaml:"roots"`
}

// RootEntry maps one pattern to its origin explanation.
type RootEntry struct {
	Pattern string `yaml:"pattern"`
	Origin  string `yaml:"origin"`
}

// LoadRoots loads lexicon extensions from a YAML file.
func LoadRoots(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Roots
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	out := make(map[string]string, len(cfg.Roots))
	for _, e := range cfg.Roots {
		if e.Pattern == "" {
			return nil, fmt.Errorf("%w: root entry with empty pattern", internalerr.ErrInvalidConfig)
		}
		out[e.Pattern] = e.Origin
	}
	return out, nil
}
