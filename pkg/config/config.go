// Package config loads photo library settings from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"k8s.io/klog/v2"
)

// Prefix is prepended to every environment variable, e.g. PHOTOS_LIBRARY.
const Prefix = "PHOTOS"

// Config holds configuration for the photo library and its tools.
type Config struct {
	// LibraryPath is the file holding the whole serialized library.
	LibraryPath string `envconfig:"LIBRARY" default:"users.dat"`
	// DataDir holds the stock images scanned on first run.
	DataDir string `envconfig:"DATA_DIR" default:"data"`
	// KeepBackup copies the previous library file to LibraryPath+".bak" on save.
	KeepBackup bool `envconfig:"KEEP_BACKUP" default:"true"`

	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`
	GeminiModel  string `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
}

// Load reads PHOTOS_* environment variables, falling back to defaults.
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process(Prefix, &c); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	klog.V(1).Infof("config: library=%s data=%s backup=%t model=%s", c.LibraryPath, c.DataDir, c.KeepBackup, c.GeminiModel)
	return &c, nil
}
