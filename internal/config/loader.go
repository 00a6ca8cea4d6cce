package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported by Load when no config file was found.
const SourceEmbedded = "embedded"

// searchPaths lists candidate config files in priority order.
// Replaced in tests.
var searchPaths = defaultSearchPaths

func defaultSearchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".arcade", "configs")
		paths = append(paths, filepath.Join(dir, "clony.yaml"), filepath.Join(dir, "clony.toml"))
	}
	return append(paths, filepath.Join("configs", "clony.yaml"), filepath.Join("configs", "clony.toml"))
}

// Load finds and loads the Clony Bird configuration.
// Search order: ~/.arcade/configs/clony.{yaml,toml} -> ./configs/clony.{yaml,toml} -> embedded default.
// Files that are missing, unparsable or invalid are skipped. The returned string names
// the source that was used.
func Load() (ClonyConfig, string, error) {
	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if cfg, err := LoadFile(path); err == nil {
			return cfg, path, nil
		}
	}

	cfg, err := Parse(defaultClonyYAML, "yaml")
	if err != nil {
		return DefaultClonyConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// LoadFile reads and validates a config file. The format is chosen by extension:
// .toml files are decoded as TOML, everything else as YAML.
func LoadFile(path string) (ClonyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ClonyConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	format := "yaml"
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		format = "toml"
	}

	cfg, err := Parse(data, format)
	if err != nil {
		return ClonyConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data in the given format ("yaml" or "toml") on top of the
// defaults and validates the result. Keys absent from data keep their default.
func Parse(data []byte, format string) (ClonyConfig, error) {
	cfg := DefaultClonyConfig()

	switch format {
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return ClonyConfig{}, fmt.Errorf("failed to parse yaml: %w", err)
		}
	case "toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return ClonyConfig{}, fmt.Errorf("failed to parse toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return ClonyConfig{}, fmt.Errorf("failed to parse toml: unknown key %q", undecoded[0].String())
		}
	default:
		return ClonyConfig{}, fmt.Errorf("unsupported config format %q", format)
	}

	if err := cfg.Validate(); err != nil {
		return ClonyConfig{}, err
	}
	return cfg, nil
}
