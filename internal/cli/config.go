package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/seatforge/seatforge/pkg/errors"
	"github.com/seatforge/seatforge/pkg/layout"
)

// loadConfig reads and validates a layout config file. The format is
// picked by extension: .toml decodes as TOML, everything else as JSON
// (the interchange format external persistence layers use).
func loadConfig(path string) (layout.Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return layout.Config{}, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
	}
	if err != nil {
		return layout.Config{}, err
	}

	var cfg layout.Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return layout.Config{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode TOML config %s", path)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return layout.Config{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode JSON config %s", path)
		}
	}

	if err := cfg.Validate(); err != nil {
		return layout.Config{}, err
	}
	return cfg, nil
}

// configBytes returns the canonical JSON form of a config, used for cache
// key hashing so TOML and JSON files describing the same layout share an
// entry.
func configBytes(cfg layout.Config) []byte {
	data, _ := json.Marshal(cfg)
	return data
}
