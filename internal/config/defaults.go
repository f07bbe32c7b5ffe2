package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/skyglider.yaml
var defaultGliderYAML []byte

// DefaultGliderConfig returns the hard-coded default configuration.
// It mirrors defaults/skyglider.yaml and is used when the embedded file
// cannot be parsed.
func DefaultGliderConfig() GliderConfig {
	return GliderConfig{
		World: WorldConfig{
			Width:       800,
			Height:      600,
			ScrollSpeed: 3,
		},
		Player: PlayerConfig{
			X:       100,
			Y:       300,
			Width:   80,
			Height:  40,
			Thrust:  -0.25,
			Gravity: 0.1,
		},
		Entities: EntitiesConfig{
			CollectibleRadius:    10,
			HazardRadius:         12,
			BallSpawnOffset:      20,
			AmbientCloudOffset:   100,
			HazardCloudOffset:    200,
			AmbientCloudInterval: 150,
			CloudBand:            0.8,
			AmbientCloudSpeed:    0.4,
			HazardCloudSpeed:     0.6,
			LightningChance:      0.05,
			Puffs: PuffConfig{
				MinCount:  10,
				MaxCount:  14,
				SpreadX:   75,
				SpreadY:   25,
				MinRadius: 20,
				MaxRadius: 40,
			},
		},
		Difficulty: DifficultyConfig{
			Default:         DifficultyMedium,
			Easy:            SpawnRates{Collectible: 60, HazardBall: 130, HazardCloud: 450},
			Medium:          SpawnRates{Collectible: 70, HazardBall: 100, HazardCloud: 350},
			Hard:            SpawnRates{Collectible: 80, HazardBall: 70, HazardCloud: 250},
			Custom:          SpawnRates{Collectible: 70, HazardBall: 100, HazardCloud: 350},
			ScoreStep:       500,
			ScoreStepFrames: 5,
		},
		Hitbox: HitboxConfig{
			ShrinkRatio: 0.7,
			GrowMargin:  10,
		},
		Status: StatusConfig{
			MaxHealth:        100,
			MaxFuel:          100,
			FuelDrainThrust:  0.12,
			FuelDrainIdle:    0.04,
			CollectScore:     10,
			CollectFuel:      5,
			HazardBallDamage: 20,
			CloudDamage:      0.5,
			CloudSoundEvery:  30,
			NoticeTicks:      120,
			NoticeFadeTicks:  60,
		},
		Bot: BotConfig{
			DeadZone:       5,
			AheadTolerance: 50,
			CollectReach:   420,
			Smart:          EvasionConfig{DangerRadius: 260, Margin: 30},
			Avoider:        EvasionConfig{DangerRadius: 360, Margin: 45},
			DemoPolicy:     2,
		},
		Session: SessionConfig{
			IdleDelay:       7 * time.Second,
			CountdownFrom:   7,
			CountdownStep:   time.Second,
			ThrustRelease:   550 * time.Millisecond,
			RandomDemoNight: true,
		},
		Audio: AudioConfig{
			Enabled:         true,
			Volume:          0.5,
			SampleRate:      44100,
			CollectFreq:     600,
			CollectDuration: 300 * time.Millisecond,
			DamageFreq:      150,
			DamageDuration:  500 * time.Millisecond,
			ThrustFreq:      60,
			ThrustVolume:    0.15,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGliderYAML
}
