package config

import (
	"os"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/pricetable/internal/domain/pricing"
	"github.com/alexisbeaulieu97/pricetable/internal/domain/theme"
	"github.com/alexisbeaulieu97/pricetable/internal/export"
	"github.com/alexisbeaulieu97/pricetable/internal/ollama"
)

// DefaultPath is read when no --config flag is given.
const DefaultPath = "pricetable.yaml"

// HostEnv overrides ai.host.
const HostEnv = "PRICETABLE_OLLAMA_HOST"

// Config represents the full pricetable configuration document.
type Config struct {
	Title  string       `yaml:"title" validate:"required"`
	AI     AIConfig     `yaml:"ai"`
	Export ExportConfig `yaml:"export"`
	Theme  theme.Colors `yaml:"theme,omitempty"`
	Log    LogConfig    `yaml:"log"`
}

// AIConfig points at the model used for color suggestions.
type AIConfig struct {
	Host        string        `yaml:"host" validate:"required,http_url"`
	Model       string        `yaml:"model" validate:"required"`
	Temperature float64       `yaml:"temperature" validate:"min=0,max=2"`
	Timeout     time.Duration `yaml:"timeout" validate:"min=1s"`
}

// ExportConfig controls PNG export.
type ExportConfig struct {
	Dir        string `yaml:"dir" validate:"required"`
	Scale      int    `yaml:"scale" validate:"min=1,max=4"`
	Background string `yaml:"background" validate:"themehex"`
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=trace debug info warn error"`
	Human bool   `yaml:"human"`
}

// Default returns a Config populated with default values.
func Default() Config {
	return Config{
		Title: pricing.DefaultTitle,
		AI: AIConfig{
			Host:        defaultHost(),
			Model:       ollama.DefaultModel,
			Temperature: 0.7,
			Timeout:     ollama.DefaultTimeout,
		},
		Export: ExportConfig{
			Dir:        ".",
			Scale:      export.DefaultScale,
			Background: export.DefaultBackground,
		},
		Log: LogConfig{
			Level: "info",
			Human: true,
		},
	}
}

// Colors returns the default theme with the configured overrides applied.
func (c *Config) Colors() theme.Colors {
	return theme.Defaults().Overlay(c.Theme)
}

func defaultHost() string {
	if env := strings.TrimSpace(os.Getenv(HostEnv)); env != "" {
		return env
	}
	return ollama.DefaultHost
}
