/*
Package config manages TOML configuration for the acrostic tools.

InitConfig handles automatic config file creation and loading with
fallback to defaults. LoadConfig and SaveConfig provide direct file
access for runtime changes. Update allows targeted parameter changes
with persistence.
*/
package config

import (
	"os"
	"path/filepath"

	"acrostic/internal/utils"

	"github.com/charmbracelet/log"
)

// Config holds the entire configuration structure.
type Config struct {
	Solver SolverConfig `toml:"solver"`
	Dict   DictConfig   `toml:"dict"`
	Build  BuildConfig  `toml:"build"`
	Server ServerConfig `toml:"server"`
}

// SolverConfig controls the seed sweep and anneal loop. Consumed by
// search.New, which turns these into the per-Search limits the solve
// loop and seed sweep actually read.
type SolverConfig struct {
	MaxSeeds    int `toml:"max_seeds"`
	Concurrency int `toml:"concurrency"`
	MaxAnneal   int `toml:"max_anneal"`
	StartMaxLen int `toml:"start_max_len"`
}

// DictConfig controls dictionary loading and filtering.
type DictConfig struct {
	MaxWords   int    `toml:"max_words"`
	SourcePath string `toml:"source_path"`
	DataDir    string `toml:"data_dir"`
}

// BuildConfig controls the offline index build. Consumed by index.Build.
type BuildConfig struct {
	MinMultisetSize int `toml:"min_multiset_size"`
	MaxCandidates   int `toml:"max_candidates"`
	Parallelism     int `toml:"parallelism"`
}

// ServerConfig controls the msgpack solve daemon.
type ServerConfig struct {
	DefaultConcurrency int `toml:"default_concurrency"`
	RequestTimeoutSec  int `toml:"request_timeout_sec"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Solver: SolverConfig{
			MaxSeeds:    1000,
			Concurrency: 4,
			MaxAnneal:   10,
			StartMaxLen: 6,
		},
		Dict: DictConfig{
			MaxWords:   0,
			SourcePath: "",
			DataDir:    "",
		},
		Build: BuildConfig{
			MinMultisetSize: 5,
			MaxCandidates:   15000,
			Parallelism:     0, // 0 means "use runtime.NumCPU()"
		},
		Server: ServerConfig{
			DefaultConcurrency: 4,
			RequestTimeoutSec:  30,
		},
	}
}

// InitConfig loads config from file or creates the default if missing.
func InitConfig(configPath string) (*Config, error) {
	if err := utils.EnsureDir(filepath.Dir(configPath)); err != nil {
		return nil, err
	}
	if !utils.FileExists(configPath) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			return nil, err
		}
		log.Debugf("created default config file at %s", utils.GetAbsolutePath(configPath))
		return cfg, nil
	}
	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("failed to load config, using defaults: %v", err)
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// LoadConfig loads from a TOML file.
func LoadConfig(configPath string) (*Config, error) {
	var cfg Config
	if err := utils.LoadTOMLFile(configPath, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SaveConfig saves into a TOML file.
func SaveConfig(cfg *Config, configPath string) error {
	return utils.SaveTOMLFile(cfg, configPath)
}

// Update changes solver config values and saves to file.
func (c *Config) Update(configPath string, maxSeeds, concurrency *int) error {
	if maxSeeds != nil {
		c.Solver.MaxSeeds = *maxSeeds
	}
	if concurrency != nil {
		c.Solver.Concurrency = *concurrency
	}
	return SaveConfig(c, configPath)
}

// LoadWithPriority resolves a config path in order: explicit flag value,
// $ACROSTIC_CONFIG, ./config.toml, then falls back to defaults with no
// file at all.
func LoadWithPriority(flagPath string) (*Config, string) {
	candidates := []string{flagPath, os.Getenv("ACROSTIC_CONFIG"), "config.toml"}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			cfg, err := LoadConfig(path)
			if err == nil {
				return cfg, path
			}
			log.Warnf("failed to load config at %s, trying next candidate: %v", path, err)
		}
	}
	return DefaultConfig(), ""
}
