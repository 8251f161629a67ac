package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/pricetable/internal/ollama"
	pterrors "github.com/alexisbeaulieu97/pricetable/pkg/errors"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pricetable.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv(HostEnv, "")

	validYAML := `title: Summer Offers
ai:
  host: http://gpu-box:11434
  model: qwen2.5:3b
  timeout: 90s
export:
  dir: out
  scale: 3
theme:
  primary: "#0f766e"
log:
  level: debug
  human: false
`

	invalidYAML := `title: [broken
ai:
  host: x
`

	badScale := `export:
  scale: 9
`

	badThemeColor := `theme:
  priceText: teal
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "Summer Offers", cfg.Title)
				require.Equal(t, "http://gpu-box:11434", cfg.AI.Host)
				require.Equal(t, "qwen2.5:3b", cfg.AI.Model)
				require.Equal(t, 90*time.Second, cfg.AI.Timeout)
				require.Equal(t, 3, cfg.Export.Scale)
				require.Equal(t, "out", cfg.Export.Dir)
				require.Equal(t, "debug", cfg.Log.Level)
				require.False(t, cfg.Log.Human)

				// untouched keys keep their defaults
				require.InDelta(t, 0.7, cfg.AI.Temperature, 1e-9)
				require.Equal(t, "#f3f4f6", cfg.Export.Background)

				colors := cfg.Colors()
				require.Equal(t, "#0f766e", colors.Primary)
				require.Equal(t, "#2563eb", colors.TableHeader)
			},
		},
		{
			name:     "malformed yaml reports a parse error with line",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var pe *pterrors.ParseError
				require.ErrorAs(t, err, &pe)
				require.Positive(t, pe.Line)
			},
		},
		{
			name:     "out of range scale is rejected",
			contents: badScale,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var ve *pterrors.ValidationError
				require.ErrorAs(t, err, &ve)
				require.Equal(t, "export.scale", ve.Field)
			},
		},
		{
			name:     "theme override must be hex",
			contents: badThemeColor,
			assert: func(t *testing.T, cfg *Config, err error) {
				var ve *pterrors.ValidationError
				require.ErrorAs(t, err, &ve)
				require.Equal(t, "theme.priceText", ve.Field)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tc.contents))
			tc.assert(t, cfg, err)
		})
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv(HostEnv, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), *cfg)
	require.Equal(t, ollama.DefaultHost, cfg.AI.Host)
	require.Equal(t, "SALAM", cfg.Title)
}

func TestLoadHostEnvOverridesFile(t *testing.T) {
	t.Setenv(HostEnv, "http://env-host:11434")

	cfg, err := Load(writeConfig(t, "ai:\n  host: http://file-host:11434\n"))
	require.NoError(t, err)
	require.Equal(t, "http://env-host:11434", cfg.AI.Host)

	cfg, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, "http://env-host:11434", cfg.AI.Host)
}

func TestLoadValidatesHostEnvWithoutFile(t *testing.T) {
	t.Setenv(HostEnv, "localhost:11434")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Nil(t, cfg)

	var ve *pterrors.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "ai.host", ve.Field)
}

func TestLoadUnreadablePath(t *testing.T) {
	t.Setenv(HostEnv, "")

	_, err := Load(t.TempDir())
	var pe *pterrors.ParseError
	require.ErrorAs(t, err, &pe)
	require.Zero(t, pe.Line)
}
