package glider

import (
	"github.com/samber/lo"

	"github.com/vovakirdan/skyglider/internal/config"
	"github.com/vovakirdan/skyglider/internal/core"
)

// Hitboxes are the two player rectangles used for collision tests.
type Hitboxes struct {
	Damage  core.Rect // against hazard balls and hazard clouds
	Collect core.Rect // against collectible balls
}

// HitboxesFor derives the hitboxes from the player rectangle. Harder tiers
// make the player easier to hit and harder to collect with:
//
//	easy:   damage shrunk to the inner ratio, collect grown by the margin
//	medium: both equal the player rectangle
//	hard:   damage grown by the margin, collect shrunk to the inner ratio
func HitboxesFor(player core.Rect, tier config.Difficulty, cfg config.HitboxConfig) Hitboxes {
	shrunk := player.Scale(cfg.ShrinkRatio)
	grown := player.Grow(cfg.GrowMargin)

	switch tier {
	case config.DifficultyEasy:
		return Hitboxes{Damage: shrunk, Collect: grown}
	case config.DifficultyHard:
		return Hitboxes{Damage: grown, Collect: shrunk}
	default:
		return Hitboxes{Damage: player, Collect: player}
	}
}

// Hitboxes returns the player's current hitboxes.
func (w *World) Hitboxes() Hitboxes {
	return HitboxesFor(w.player.Bounds(), w.difficulty.HitboxTier(), w.cfg.Hitbox)
}

// resolveCollisions applies hazard and collectible contacts for this tick
// and returns the resulting events.
func (w *World) resolveCollisions() []Event {
	var events []Event
	boxes := w.Hitboxes()

	hitsDamage := func(b *Ball, _ int) bool {
		return b.Circle().IntersectsRect(boxes.Damage)
	}
	hits := lo.Filter(w.hazardBalls, hitsDamage)
	w.hazardBalls = lo.Reject(w.hazardBalls, hitsDamage)
	for range hits {
		w.status.HitByBall()
		events = append(events, EventHazardHit)
	}

	inside := lo.CountBy(w.hazardClouds, func(c *Cloud) bool {
		return c.Bounds().Intersects(boxes.Damage)
	})
	if inside > 0 {
		w.status.InCloud(inside)
		if due(w.frame, w.cfg.Status.CloudSoundEvery) {
			events = append(events, EventCloudDamage)
		}
	}

	hitsCollect := func(b *Ball, _ int) bool {
		return b.Circle().IntersectsRect(boxes.Collect)
	}
	collected := lo.Filter(w.collectibles, hitsCollect)
	w.collectibles = lo.Reject(w.collectibles, hitsCollect)
	for range collected {
		w.status.Collect()
		events = append(events, EventCollect)
	}

	return events
}
