package i18npatch

import (
	"errors"
	"strings"

	entrypoint "github.com/louisbranch/i18npatch/internal/platform/cmd"
)

// Config holds configuration for the locale patch run.
type Config struct {
	// Root is the client project directory the fixed locale paths are
	// resolved against.
	Root string `env:"I18NPATCH_ROOT" envDefault:"."`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.Root) == "" {
		return Config{}, errors.New("project root is required")
	}
	return cfg, nil
}
