package pipeline

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	apperrors "github.com/matzehuels/bricklayer/pkg/errors"
)

// ConfigFileName is the file looked up in the user config directory.
const ConfigFileName = "config.toml"

// DefaultConfigPath returns the per-user config file location
// (e.g. ~/.config/bricklayer/config.toml on Linux).
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "bricklayer", ConfigFileName), nil
}

// LoadConfig decodes the TOML file at path into opts. Keys already set in
// the file overwrite opts; everything else is left untouched. Unknown keys
// are rejected so that typos do not pass silently.
func LoadConfig(path string, opts *Options) error {
	md, err := toml.DecodeFile(path, opts)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return apperrors.New(apperrors.ErrCodeInvalidInput, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// LoadDefaultConfig loads the per-user config file into opts if it exists.
// It reports whether a file was read.
func LoadDefaultConfig(opts *Options) (bool, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return false, nil
	}
	if _, err := os.Stat(path); err != nil {
		return false, nil
	}
	return true, LoadConfig(path, opts)
}
