package config

import (
	_ "embed"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presetsYAML []byte

type Config struct {
	Feed  FeedConfig
	Web   WebConfig
	Icons IconsConfig
}

type FeedConfig struct {
	Path  string // path to the generated media index JSON
	Watch bool   // reload the index when the generator rewrites it
}

type WebConfig struct {
	Host     string
	Port     int
	PageSize int // default search page size
}

type IconsConfig struct {
	Presets []IconPreset `yaml:"presets"`
	Default string       `yaml:"default"`
}

// IconPreset names a thumbnail density the front-end can render at. The
// engine only validates preset names; pixel sizes are the renderer's
// business.
type IconPreset struct {
	Name   string `yaml:"name"`
	Height int    `yaml:"height"`
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

// envBool treats "1", "true" and "yes" as true.
func envBool(key string) bool {
	switch os.Getenv(key) {
	case "1", "true", "yes":
		return true
	}
	return false
}

func Load() *Config {
	var icons IconsConfig
	if err := yaml.Unmarshal(presetsYAML, &icons); err != nil {
		// Embedded file, cannot fail in practice.
		panic("failed to unmarshal embedded presets.yaml: " + err.Error())
	}

	return &Config{
		Feed: FeedConfig{
			Path:  os.Getenv("GALLERY_FEED"),
			Watch: envBool("GALLERY_WATCH_FEED"),
		},
		Web: WebConfig{
			Host:     os.Getenv("WEB_HOST"),
			Port:     envInt("WEB_PORT", 8080),
			PageSize: envInt("GALLERY_PAGE_SIZE", 100),
		},
		Icons: icons,
	}
}

// IconPreset resolves a preset by name, falling back to the configured
// default when the name is unknown or empty.
func (c *Config) IconPreset(name string) IconPreset {
	for _, p := range c.Icons.Presets {
		if p.Name == name {
			return p
		}
	}
	for _, p := range c.Icons.Presets {
		if p.Name == c.Icons.Default {
			return p
		}
	}
	return IconPreset{}
}
