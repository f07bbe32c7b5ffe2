package glider

import (
	"github.com/samber/lo"

	"github.com/vovakirdan/skyglider/internal/config"
	"github.com/vovakirdan/skyglider/internal/core"
)

// Spawner creates balls and clouds at the right edge of the world on a
// frame schedule. Rates are read from the difficulty every tick, so a
// difficulty switch only affects future spawns.
type Spawner struct {
	cfg        *config.GliderConfig
	difficulty *config.DifficultyManager
	rng        core.Rand
}

// NewSpawner creates a spawner drawing positions from rng.
func NewSpawner(cfg *config.GliderConfig, diff *config.DifficultyManager, rng core.Rand) *Spawner {
	return &Spawner{cfg: cfg, difficulty: diff, rng: rng}
}

// Spawn adds at most one entity per category when the frame is a multiple
// of that category's interval.
func (s *Spawner) Spawn(w *World) {
	ent := s.cfg.Entities
	width, height := s.cfg.World.Width, s.cfg.World.Height
	rates := s.difficulty.Rates()

	if due(w.frame, ent.AmbientCloudInterval) {
		y := s.rng.Float64() * height * ent.CloudBand
		w.ambientClouds = append(w.ambientClouds,
			NewCloud(width+ent.AmbientCloudOffset, y, false, ent.AmbientCloudSpeed, ent.Puffs, s.rng))
	}
	if due(w.frame, rates.HazardCloud) {
		y := s.rng.Float64() * height * ent.CloudBand
		w.hazardClouds = append(w.hazardClouds,
			NewCloud(width+ent.HazardCloudOffset, y, true, ent.HazardCloudSpeed, ent.Puffs, s.rng))
	}
	if due(w.frame, s.difficulty.CollectibleInterval(w.status.Score)) {
		y := s.rng.Float64() * height
		w.collectibles = append(w.collectibles,
			NewBall(width+ent.BallSpawnOffset, y, ent.CollectibleRadius, KindCollectibleBall))
	}
	if due(w.frame, rates.HazardBall) {
		y := s.rng.Float64() * height
		w.hazardBalls = append(w.hazardBalls,
			NewBall(width+ent.BallSpawnOffset, y, ent.HazardRadius, KindHazardBall))
	}
}

func due(frame, interval int) bool {
	return interval > 0 && frame%interval == 0
}

// scrollAndCull moves every scrolling entity, rolls lightning for hazard
// clouds and drops whatever has fully left the world.
func (w *World) scrollAndCull() {
	speed := w.speed
	for _, c := range w.ambientClouds {
		c.Scroll(speed)
	}
	for _, c := range w.hazardClouds {
		c.Scroll(speed)
		c.Lightning = w.rng.Float64() < w.cfg.Entities.LightningChance
	}
	for _, b := range w.collectibles {
		b.Scroll(speed)
	}
	for _, b := range w.hazardBalls {
		b.Scroll(speed)
	}

	w.ambientClouds = lo.Reject(w.ambientClouds, offscreen[*Cloud])
	w.hazardClouds = lo.Reject(w.hazardClouds, offscreen[*Cloud])
	w.collectibles = lo.Reject(w.collectibles, offscreen[*Ball])
	w.hazardBalls = lo.Reject(w.hazardBalls, offscreen[*Ball])
}
