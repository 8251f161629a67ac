package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	pterrors "github.com/alexisbeaulieu97/pricetable/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads configuration from path, falling back to defaults when the
// file does not exist. Keys missing from the file keep their defaults and
// the host environment variable wins over the file. The result is validated
// either way.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults only
	case err != nil:
		return nil, pterrors.NewParseError(path, 0, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, pterrors.NewParseError(path, extractLine(err), err)
		}
	}

	if env := strings.TrimSpace(os.Getenv(HostEnv)); env != "" {
		cfg.AI.Host = env
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
