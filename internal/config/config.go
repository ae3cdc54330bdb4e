// ABOUTME: Configuration management for genetic algorithm solver parameters
// ABOUTME: Handles loading/saving TOML config files with fallback to defaults

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// SolverConfig holds all tunable GA solver parameters, per §6's solver
// record.
type SolverConfig struct {
	Algorithm               string  `toml:"algorithm"`
	PenaltyWeight           float64 `toml:"penalty_weight"`
	Population              int     `toml:"population"`
	SubPopulations          int     `toml:"sub_populations"`
	SolveForCompletion      bool    `toml:"solve_for_completion"`
	RemainderCPFitnessValue float64 `toml:"remainder_cp_fitness_value"`
	RemainderDurFitnessValue float64 `toml:"remainder_dur_fitness_value"`
	MaxStagnationCounter    int     `toml:"max_stagnation_counter"`
	Generations             int     `toml:"generations"`

	SelectionRatio  float64 `toml:"selection_ratio"`
	SelectionGroup  int     `toml:"selection_group_size"`
	MutationRate    float64 `toml:"mutation_rate"`
	ElitistFraction float64 `toml:"elitist_fraction"`
}

// DefaultConfig returns the default solver configuration matching the
// values named in §4.5/§9.
func DefaultConfig() SolverConfig {
	return SolverConfig{
		Algorithm:                "genetic",
		PenaltyWeight:            10000.0,
		Population:               300,
		SubPopulations:           1,
		SolveForCompletion:       false,
		RemainderCPFitnessValue:  1.0,
		RemainderDurFitnessValue: 1.0,
		MaxStagnationCounter:     25,
		Generations:              100,
		SelectionRatio:           0.85,
		SelectionGroup:           18,
		MutationRate:             0.2,
		ElitistFraction:          0.85,
	}
}

// LoadConfig loads configuration from a TOML file. If the file doesn't
// exist, it returns the default config.
func LoadConfig(path string) (SolverConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves configuration to a TOML file.
func SaveConfig(path string, config SolverConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			fmt.Printf("warning: failed to close config file: %v\n", err)
		}
	}()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetConfigPath returns the default config file path: current directory
// first, falling back to ~/.config/xivcraft/config.toml.
func GetConfigPath() string {
	if _, err := os.Stat("./xivcraft.toml"); err == nil {
		return "./xivcraft.toml"
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "./xivcraft.toml"
	}

	return filepath.Join(home, ".config", "xivcraft", "config.toml")
}
