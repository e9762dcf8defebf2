package config

import (
	"os"
	"time"
)

// Default values for configuration.
const (
	DefaultOutput         = OutputText
	DefaultAddr           = ":8080"
	DefaultReadTimeout    = 15 * time.Second
	DefaultWriteTimeout   = 15 * time.Second
	DefaultMaxBodyBytes   = 1 << 20
	DefaultWebhookTimeout = 10 * time.Second
	DefaultWorkers        = 4
)

// DefaultExtensions are the file extensions read from input directories.
var DefaultExtensions = []string{".md", ".recipe", ".txt"}

// Environment variable names.
const (
	EnvOutput = "RECIPEMD_OUTPUT"
	EnvAddr   = "RECIPEMD_ADDR"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Inputs:     []string{},
		Extensions: append([]string(nil), DefaultExtensions...),
		Output:     DefaultOutput,
		Workers:    DefaultWorkers,
		Server: ServerConfig{
			Addr:         DefaultAddr,
			ReadTimeout:  DefaultReadTimeout,
			WriteTimeout: DefaultWriteTimeout,
			MaxBodyBytes: DefaultMaxBodyBytes,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if out := os.Getenv(EnvOutput); out != "" {
		c.Output = out
	}
	if addr := os.Getenv(EnvAddr); addr != "" {
		c.Server.Addr = addr
	}
}
