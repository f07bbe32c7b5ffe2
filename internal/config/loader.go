package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.skyglider/skyglider.yaml -> ./configs/skyglider.yaml -> embedded default.
// Files may be partial; missing keys keep their default values.
func Load(customPath string) (GliderConfig, error) {
	cfg := baseConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("skyglider.yaml"), filepath.Join("configs", "skyglider.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := baseConfig()
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			continue
		}
		if err := candidate.Validate(); err != nil {
			return candidate, fmt.Errorf("config: %s: %w", path, err)
		}
		return candidate, nil
	}

	return cfg, nil
}

// baseConfig returns the embedded defaults, falling back to the hard-coded ones.
func baseConfig() GliderConfig {
	var cfg GliderConfig
	if err := yaml.Unmarshal(defaultGliderYAML, &cfg); err != nil {
		return DefaultGliderConfig()
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyglider", filename)
}

// Validate checks the values the simulation divides by or counts with.
func (c GliderConfig) Validate() error {
	var errs []error
	for name, r := range map[Difficulty]SpawnRates{
		DifficultyEasy:   c.Difficulty.Easy,
		DifficultyMedium: c.Difficulty.Medium,
		DifficultyHard:   c.Difficulty.Hard,
		DifficultyCustom: c.Difficulty.Custom,
	} {
		if err := r.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	if c.Difficulty.Default != "" {
		if _, err := ParseDifficulty(string(c.Difficulty.Default)); err != nil {
			errs = append(errs, err)
		}
	}
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: world size must be positive, got %vx%v", c.World.Width, c.World.Height))
	}
	if c.Player.Height <= 0 || c.Player.Height > c.World.Height {
		errs = append(errs, fmt.Errorf("config: player height %v does not fit the world", c.Player.Height))
	}
	if c.Entities.AmbientCloudInterval <= 0 {
		errs = append(errs, fmt.Errorf("config: ambient_cloud_interval must be positive"))
	}
	if c.Entities.Puffs.MinCount <= 0 || c.Entities.Puffs.MaxCount < c.Entities.Puffs.MinCount {
		errs = append(errs, fmt.Errorf("config: puff count range [%d,%d] is invalid",
			c.Entities.Puffs.MinCount, c.Entities.Puffs.MaxCount))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("config: audio volume %v outside [0,1]", c.Audio.Volume))
	}
	return errors.Join(errs...)
}

// Marshal renders the configuration as YAML.
func Marshal(cfg GliderConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}
