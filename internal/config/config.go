// Package config provides YAML-based game configuration loading and
// difficulty management for skyglider.
package config

import "time"

// GliderConfig contains all configuration for the game.
type GliderConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Entities   EntitiesConfig   `yaml:"entities"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Hitbox     HitboxConfig     `yaml:"hitbox"`
	Status     StatusConfig     `yaml:"status"`
	Bot        BotConfig        `yaml:"bot"`
	Session    SessionConfig    `yaml:"session"`
	Audio      AudioConfig      `yaml:"audio"`
}

// WorldConfig defines the playfield in world pixels.
type WorldConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	ScrollSpeed float64 `yaml:"scroll_speed"`
}

// PlayerConfig defines the glider's size, start position and physics.
type PlayerConfig struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Thrust  float64 `yaml:"thrust"` // negative: upward acceleration
	Gravity float64 `yaml:"gravity"`
}

// EntitiesConfig defines ball and cloud geometry and motion.
type EntitiesConfig struct {
	CollectibleRadius float64 `yaml:"collectible_radius"`
	HazardRadius      float64 `yaml:"hazard_radius"`
	BallSpawnOffset   float64 `yaml:"ball_spawn_offset"`

	AmbientCloudOffset   float64 `yaml:"ambient_cloud_offset"`
	HazardCloudOffset    float64 `yaml:"hazard_cloud_offset"`
	AmbientCloudInterval int     `yaml:"ambient_cloud_interval"`
	CloudBand            float64 `yaml:"cloud_band"` // fraction of world height clouds spawn in
	AmbientCloudSpeed    float64 `yaml:"ambient_cloud_speed"`
	HazardCloudSpeed     float64 `yaml:"hazard_cloud_speed"`
	LightningChance      float64 `yaml:"lightning_chance"`

	Puffs PuffConfig `yaml:"puffs"`
}

// PuffConfig defines the random ranges used to build a cloud.
type PuffConfig struct {
	MinCount  int     `yaml:"min_count"`
	MaxCount  int     `yaml:"max_count"`
	SpreadX   float64 `yaml:"spread_x"` // offsets drawn from [-SpreadX, SpreadX)
	SpreadY   float64 `yaml:"spread_y"`
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`
}

// SpawnRates holds "spawn one every N frames" intervals.
type SpawnRates struct {
	Collectible int `yaml:"collectible"`
	HazardBall  int `yaml:"hazard_ball"`
	HazardCloud int `yaml:"hazard_cloud"`
}

// DifficultyConfig defines the named presets, the custom triple and the
// score-driven slowdown of collectible spawns.
type DifficultyConfig struct {
	Default         Difficulty `yaml:"default"`
	Easy            SpawnRates `yaml:"easy"`
	Medium          SpawnRates `yaml:"medium"`
	Hard            SpawnRates `yaml:"hard"`
	Custom          SpawnRates `yaml:"custom"`
	ScoreStep       int        `yaml:"score_step"`        // score per collectible slowdown step
	ScoreStepFrames int        `yaml:"score_step_frames"` // frames added per step
}

// HitboxConfig defines how hitboxes shrink and grow with difficulty.
type HitboxConfig struct {
	ShrinkRatio float64 `yaml:"shrink_ratio"`
	GrowMargin  float64 `yaml:"grow_margin"`
}

// StatusConfig defines resource budgets, rewards and penalties.
type StatusConfig struct {
	MaxHealth        float64 `yaml:"max_health"`
	MaxFuel          float64 `yaml:"max_fuel"`
	FuelDrainThrust  float64 `yaml:"fuel_drain_thrust"`
	FuelDrainIdle    float64 `yaml:"fuel_drain_idle"`
	CollectScore     int     `yaml:"collect_score"`
	CollectFuel      float64 `yaml:"collect_fuel"`
	HazardBallDamage float64 `yaml:"hazard_ball_damage"`
	CloudDamage      float64 `yaml:"cloud_damage"` // per tick per overlapping cloud
	CloudSoundEvery  int     `yaml:"cloud_sound_every"`
	NoticeTicks      int     `yaml:"notice_ticks"`
	NoticeFadeTicks  int     `yaml:"notice_fade_ticks"`
}

// EvasionConfig tunes a hazard-evading policy.
type EvasionConfig struct {
	DangerRadius float64 `yaml:"danger_radius"`
	Margin       float64 `yaml:"margin"`
}

// BotConfig tunes the autonomous policies.
type BotConfig struct {
	DeadZone       float64       `yaml:"dead_zone"`
	AheadTolerance float64       `yaml:"ahead_tolerance"`
	CollectReach   float64       `yaml:"collect_reach"`
	Smart          EvasionConfig `yaml:"smart"`
	Avoider        EvasionConfig `yaml:"avoider"`
	DemoPolicy     int           `yaml:"demo_policy"`
}

// SessionConfig defines the idle-to-demo timers and input timing.
type SessionConfig struct {
	IdleDelay       time.Duration `yaml:"idle_delay"`
	CountdownFrom   int           `yaml:"countdown_from"`
	CountdownStep   time.Duration `yaml:"countdown_step"`
	ThrustRelease   time.Duration `yaml:"thrust_release"` // keyboard has no key-up; thrust ends after this
	RandomDemoNight bool          `yaml:"random_demo_night"`
}

// AudioConfig defines the synthesized effects.
type AudioConfig struct {
	Enabled         bool          `yaml:"enabled"`
	Volume          float64       `yaml:"volume"` // 0..1
	Muted           bool          `yaml:"muted"`
	SampleRate      int           `yaml:"sample_rate"`
	CollectFreq     float64       `yaml:"collect_freq"`
	CollectDuration time.Duration `yaml:"collect_duration"`
	DamageFreq      float64       `yaml:"damage_freq"`
	DamageDuration  time.Duration `yaml:"damage_duration"`
	ThrustFreq      float64       `yaml:"thrust_freq"`
	ThrustVolume    float64       `yaml:"thrust_volume"`
}

// Difficulty represents a named difficulty level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyCustom Difficulty = "custom"
)

// Difficulties lists the selectable difficulties in cycle order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyCustom}

// Named reports whether d is one of the fixed presets.
func (d Difficulty) Named() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// Next returns the difficulty following d in cycle order.
func (d Difficulty) Next() Difficulty {
	for i, v := range Difficulties {
		if v == d {
			return Difficulties[(i+1)%len(Difficulties)]
		}
	}
	return DifficultyMedium
}
