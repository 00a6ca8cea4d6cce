package config

import "fmt"

// CatalogSize is the number of difficulty options offered at selection time.
const CatalogSize = 3

// DifficultyOption is one entry of the difficulty catalog.
type DifficultyOption struct {
	Label           string  `yaml:"label" toml:"label"`
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"`
}

// DifficultyConfig holds the difficulty catalog and its default entry.
type DifficultyConfig struct {
	DefaultIndex int                `yaml:"default_index" toml:"default_index"`
	Options      []DifficultyOption `yaml:"options" toml:"options"`
}

func (d DifficultyConfig) validate() error {
	if len(d.Options) != CatalogSize {
		return fmt.Errorf("%w: difficulty.options must have %d entries, got %d",
			ErrInvalid, CatalogSize, len(d.Options))
	}
	if d.DefaultIndex < 0 || d.DefaultIndex >= len(d.Options) {
		return fmt.Errorf("%w: difficulty.default_index %d out of range", ErrInvalid, d.DefaultIndex)
	}
	for i, o := range d.Options {
		if o.Label == "" {
			return fmt.Errorf("%w: difficulty.options[%d] has no label", ErrInvalid, i)
		}
		if o.SpeedMultiplier <= 0 {
			return fmt.Errorf("%w: difficulty.options[%d].speed_multiplier must be positive, got %v",
				ErrInvalid, i, o.SpeedMultiplier)
		}
	}
	return nil
}

// Catalog is the read-only list of difficulty options.
// Choosing an entry only changes the session's speed multiplier.
type Catalog struct {
	options      []DifficultyOption
	defaultIndex int
}

// NewCatalog copies the configured options into a catalog.
func NewCatalog(cfg DifficultyConfig) Catalog {
	opts := make([]DifficultyOption, len(cfg.Options))
	copy(opts, cfg.Options)
	return Catalog{options: opts, defaultIndex: cfg.DefaultIndex}
}

// Len returns the number of options.
func (c Catalog) Len() int {
	return len(c.options)
}

// Option returns the option at index i, clamped into range.
func (c Catalog) Option(i int) DifficultyOption {
	if len(c.options) == 0 {
		return DifficultyOption{Label: "Normal", SpeedMultiplier: 1.0}
	}
	i = max(0, min(i, len(c.options)-1))
	return c.options[i]
}

// DefaultIndex returns the index selected when a session starts.
func (c Catalog) DefaultIndex() int {
	return c.defaultIndex
}

// Next returns the index after i, wrapping to the first entry.
func (c Catalog) Next(i int) int {
	if len(c.options) == 0 {
		return 0
	}
	return (i + 1) % len(c.options)
}

// Prev returns the index before i, wrapping to the last entry.
func (c Catalog) Prev(i int) int {
	if len(c.options) == 0 {
		return 0
	}
	return (i - 1 + len(c.options)) % len(c.options)
}

// Labels returns the option labels in catalog order.
func (c Catalog) Labels() []string {
	labels := make([]string, len(c.options))
	for i, o := range c.options {
		labels[i] = o.Label
	}
	return labels
}
