package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the decoded shape of projsa.toml: the run configuration
// knobs as run-time data instead of compile-time constants.
type Config struct {
	Projects    int `toml:"projects"`
	Pairs       int `toml:"pairs"`
	Supervisors int `toml:"supervisors"`

	PreferencePath string `toml:"preference_path"`
	WorkloadPath   string `toml:"workload_path"`

	OutputPath     string `toml:"output_path"`
	JSONOutputPath string `toml:"json_output_path"`

	Seed int64 `toml:"seed"`

	Weights    *WeightsConfig `toml:"weights"`
	Annealing  AnnealingConfig `toml:"annealing"`
	MetricsAddr string         `toml:"metrics_addr"`
}

// WeightsConfig overrides the reference preference-weight schedule.
// Nil means "derive from Pairs via the reference formula".
type WeightsConfig struct {
	W1 float64 `toml:"w1"`
	W2 float64 `toml:"w2"`
	W3 float64 `toml:"w3"`
	W4 float64 `toml:"w4"`
}

// AnnealingConfig overrides the scheduler's temperature/cap schedule.
// If all four fields are zero, the run uses anneal.DefaultConfig;
// otherwise the four values are used as given, with no per-field
// default.
type AnnealingConfig struct {
	T0               float64 `toml:"t0"`
	DeltaT           float64 `toml:"delta_t"`
	MovesCapFactor   int     `toml:"moves_cap_factor"`
	SuccessCapFactor int     `toml:"success_cap_factor"`
}

// Load decodes a TOML config file at path and validates it.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the shape and range invariants a Config must satisfy
// before a run can start.
func (c Config) Validate() error {
	if c.Projects <= 0 || c.Pairs <= 0 || c.Supervisors <= 0 {
		return ErrBadDimensions
	}
	if c.PreferencePath == "" || c.WorkloadPath == "" {
		return ErrMissingPath
	}
	if c.Seed <= 0 || c.Seed >= 2147483647 {
		return ErrBadSeed
	}
	return nil
}
