// Package config provides configuration loading and validation for recipemd.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// Inputs lists recipe files, globs or directories used when no
	// arguments are given on the command line.
	Inputs []string `yaml:"inputs,omitempty"`

	// Extensions selects which files are read when an input is a directory.
	Extensions []string `yaml:"extensions,omitempty"`

	// Output is the default report format (text, markdown, json, yaml, pretty, html).
	Output string `yaml:"output,omitempty"`

	// Strict treats any rejected block as a failure.
	Strict bool `yaml:"strict,omitempty"`

	// Workers is how many documents are parsed concurrently.
	Workers int `yaml:"workers,omitempty"`

	Server   ServerConfig    `yaml:"server,omitempty"`
	Webhooks []WebhookConfig `yaml:"webhooks,omitempty"`
}

// ServerConfig configures the HTTP conversion service.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr,omitempty"`

	ReadTimeout  time.Duration `yaml:"read_timeout,omitempty"`
	WriteTimeout time.Duration `yaml:"write_timeout,omitempty"`

	// MaxBodyBytes caps the size of request bodies.
	MaxBodyBytes int64 `yaml:"max_body_bytes,omitempty"`
}

// Output formats.
const (
	OutputText     = "text"
	OutputMarkdown = "markdown"
	OutputJSON     = "json"
	OutputYAML     = "yaml"
	OutputPretty   = "pretty"
	OutputHTML     = "html"
)

// OutputFormats lists every supported output format.
var OutputFormats = []string{OutputText, OutputMarkdown, OutputJSON, OutputYAML, OutputPretty, OutputHTML}

// WebhookTrigger determines when a webhook fires.
type WebhookTrigger string

const (
	// WebhookTriggerOnRecipes fires only when at least one recipe was parsed (default).
	WebhookTriggerOnRecipes WebhookTrigger = "on_recipes"
	// WebhookTriggerAlways fires after every import.
	WebhookTriggerAlways WebhookTrigger = "always"
	// WebhookTriggerNever disables the webhook.
	WebhookTriggerNever WebhookTrigger = "never"
)


// ParseWebhookTrigger checks a trigger name. Empty means on_recipes.
func ParseWebhookTrigger(name string) (WebhookTrigger, error) {
	switch t := WebhookTrigger(name); t {
	case "":
		return WebhookTriggerOnRecipes, nil
	case WebhookTriggerOnRecipes, WebhookTriggerAlways, WebhookTriggerNever:
		return t, nil
	default:
		return "", fmt.Errorf("invalid trigger %q (must be on_recipes, always, or never)", name)
	}
}

// WebhookConfig defines an endpoint that receives imported recipes.
type WebhookConfig struct {
	// Name is an optional identifier for the webhook.
	Name string `yaml:"name,omitempty"`

	// URL is the webhook endpoint (required).
	URL string `yaml:"url"`

	// Token is an optional bearer token. ${VAR} and $VAR are expanded.
	Token string `yaml:"token,omitempty"`

	// Trigger defaults to "on_recipes" if not specified.
	Trigger WebhookTrigger `yaml:"trigger,omitempty"`

	// Timeout defaults to 10s if not specified.
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// Retries repeats failed deliveries (transport errors, 429, 5xx).
	Retries int `yaml:"retries,omitempty"`
}

// DisplayName returns Name, falling back to URL.
func (w *WebhookConfig) DisplayName() string {
	if w.Name != "" {
		return w.Name
	}
	return w.URL
}
