package kvantuma

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config tunes world storage. The zero value is not valid; start from
// DefaultConfig or LoadConfig.
type Config struct {
	// InitialColumnCapacity is the element capacity every fresh column
	// starts with when an archetype is first materialized.
	InitialColumnCapacity int `yaml:"initial_column_capacity"`
	// ArchetypeTableSize hints the initial size of the exact-schema index.
	ArchetypeTableSize int `yaml:"archetype_table_size"`
}

// DefaultConfig returns the tuning the engine ships with.
func DefaultConfig() Config {
	return Config{
		InitialColumnCapacity: defaultColumnCapacity,
		ArchetypeTableSize:    16,
	}
}

// LoadConfig reads a YAML config file, filling unset fields with defaults.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("ecs: read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("ecs: parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.InitialColumnCapacity <= 0 {
		return fmt.Errorf("ecs: initial_column_capacity must be positive, got %d", c.InitialColumnCapacity)
	}
	if c.ArchetypeTableSize <= 0 {
		return fmt.Errorf("ecs: archetype_table_size must be positive, got %d", c.ArchetypeTableSize)
	}
	return nil
}

// Option configures a World.
type Option func(*World)

// WithConfig replaces the default tuning.
func WithConfig(cfg Config) Option {
	return func(w *World) {
		w.cfg = cfg
	}
}

// WithLogger attaches a structured logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(w *World) {
		w.log = log
	}
}
