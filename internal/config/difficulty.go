package config

import (
	"fmt"
	"strconv"
	"strings"
)

// DifficultyManager tracks the active difficulty and answers the per-tick
// questions the spawner and the collision resolver ask about it.
type DifficultyManager struct {
	cfg     DifficultyConfig
	current Difficulty
	tier    Difficulty // last named preset, drives hitbox sizing
}

// NewDifficultyManager creates a new difficulty manager starting at cfg.Default.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	d := &DifficultyManager{
		cfg:     cfg,
		current: DifficultyMedium,
		tier:    DifficultyMedium,
	}
	if cfg.Default != "" {
		d.Set(cfg.Default)
	}
	return d
}

// Current returns the active difficulty.
func (d *DifficultyManager) Current() Difficulty {
	return d.current
}

// Set switches the active difficulty. Selecting custom keeps the hitbox tier
// of the last named preset. Unknown values are ignored.
func (d *DifficultyManager) Set(diff Difficulty) {
	switch {
	case diff.Named():
		d.current = diff
		d.tier = diff
	case diff == DifficultyCustom:
		d.current = diff
	}
}

// Cycle advances to the next difficulty and returns it.
func (d *DifficultyManager) Cycle() Difficulty {
	d.Set(d.current.Next())
	return d.current
}

// SetCustom replaces the custom spawn intervals.
func (d *DifficultyManager) SetCustom(rates SpawnRates) error {
	if err := rates.Validate(); err != nil {
		return err
	}
	d.cfg.Custom = rates
	return nil
}

// HitboxTier returns the named preset whose hitbox profile applies.
func (d *DifficultyManager) HitboxTier() Difficulty {
	return d.tier
}

// Rates returns the spawn intervals of the active difficulty.
func (d *DifficultyManager) Rates() SpawnRates {
	switch d.current {
	case DifficultyEasy:
		return d.cfg.Easy
	case DifficultyHard:
		return d.cfg.Hard
	case DifficultyCustom:
		return d.cfg.Custom
	default:
		return d.cfg.Medium
	}
}

// CollectibleInterval returns the collectible interval for the given score.
// Collectibles get rarer by ScoreStepFrames for every ScoreStep points.
func (d *DifficultyManager) CollectibleInterval(score int) int {
	base := d.Rates().Collectible
	if d.cfg.ScoreStep <= 0 || score <= 0 {
		return base
	}
	return base + d.cfg.ScoreStepFrames*(score/d.cfg.ScoreStep)
}

// Validate rejects non-positive intervals.
func (r SpawnRates) Validate() error {
	if r.Collectible <= 0 || r.HazardBall <= 0 || r.HazardCloud <= 0 {
		return fmt.Errorf("config: spawn intervals must be positive, got %d,%d,%d",
			r.Collectible, r.HazardBall, r.HazardCloud)
	}
	return nil
}

// String formats rates as "collectible,hazard_ball,hazard_cloud".
func (r SpawnRates) String() string {
	return fmt.Sprintf("%d,%d,%d", r.Collectible, r.HazardBall, r.HazardCloud)
}

// ParseDifficulty parses a difficulty name.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyCustom:
		return d, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, medium, hard or custom)", s)
}

// ParseRates parses "collectible,hazard_ball,hazard_cloud", e.g. "70,100,350".
func ParseRates(s string) (SpawnRates, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return SpawnRates{}, fmt.Errorf("config: rates %q: want three comma-separated intervals", s)
	}
	vals := make([]int, 3)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return SpawnRates{}, fmt.Errorf("config: rates %q: %w", s, err)
		}
		vals[i] = v
	}
	r := SpawnRates{Collectible: vals[0], HazardBall: vals[1], HazardCloud: vals[2]}
	if err := r.Validate(); err != nil {
		return SpawnRates{}, err
	}
	return r, nil
}
