package bot

import (
	"math"

	"github.com/samber/lo"

	"github.com/vovakirdan/skyglider/internal/core"
	"github.com/vovakirdan/skyglider/internal/glider"
)

// steer turns a vertical target for the player's center into a thrust
// command. Thrust moves the glider up, so a target above the center means
// thrust on.
func steer(v glider.View, targetY, aimX float64, t Tuning) glider.Decision {
	center := v.Player.Center().Y
	aim := &core.Vec{X: aimX, Y: targetY}

	switch {
	case center > targetY+t.DeadZone:
		return glider.Decision{Thrust: glider.ThrustOn, Aim: aim}
	case center < targetY-t.DeadZone:
		return glider.Decision{Thrust: glider.ThrustOff, Aim: aim}
	default:
		return glider.Decision{Thrust: glider.ThrustHold, Aim: aim}
	}
}

// holdCenter steers toward the vertical middle of the world.
func holdCenter(v glider.View, t Tuning) glider.Decision {
	return steer(v, v.Height/2, v.Player.Right(), t)
}

// hazards returns the boxes of every hazard ball and hazard cloud.
func hazards(v glider.View) []core.Rect {
	balls := lo.Map(v.HazardBalls, func(c core.Circle, _ int) core.Rect { return c.Bounds() })
	return append(balls, v.HazardClouds...)
}

// ahead reports whether a collectible starting at nearX is in front of the
// player, allowing it to overlap the leading edge by up to the tolerance.
func ahead(v glider.View, nearX float64, t Tuning) bool {
	return nearX-v.Player.Right() > -t.AheadTolerance
}

// gap is the shortest distance between two boxes, 0 when they overlap.
func gap(a, b core.Rect) float64 {
	dx := math.Max(0, math.Max(b.X-a.Right(), a.X-b.Right()))
	dy := math.Max(0, math.Max(b.Y-a.Bottom(), a.Y-b.Bottom()))
	return math.Hypot(dx, dy)
}

// unpassed reports whether a box ending at farX has not yet slipped behind
// the player's tail by more than the tolerance. Boxes overlapping the
// player count.
func unpassed(v glider.View, farX float64, t Tuning) bool {
	return farX-v.Player.X > -t.AheadTolerance
}

// nearestHazard returns the closest hazard the player has not yet passed.
func nearestHazard(v glider.View, t Tuning) (core.Rect, bool) {
	candidates := lo.Filter(hazards(v), func(h core.Rect, _ int) bool {
		return unpassed(v, h.Right(), t)
	})
	if len(candidates) == 0 {
		return core.Rect{}, false
	}
	return lo.MinBy(candidates, func(a, b core.Rect) bool {
		return gap(v.Player, a) < gap(v.Player, b)
	}), true
}

// evade steers around the nearest hazard when it is inside the danger
// radius. The target clears the hazard edge closer to the player by the
// margin; if that would leave the world, the other edge is used.
func evade(v glider.View, t Tuning, e Evasion) (glider.Decision, bool) {
	h, ok := nearestHazard(v, t)
	if !ok || gap(v.Player, h) >= e.DangerRadius {
		return glider.Decision{}, false
	}

	center := v.Player.Center().Y
	half := v.Player.H / 2
	above := h.Y - e.Margin - half
	below := h.Bottom() + e.Margin + half
	minY, maxY := half, v.Height-half

	first, second := above, below
	if math.Abs(center-h.Bottom()) < math.Abs(center-h.Y) {
		first, second = below, above
	}

	target := first
	if target < minY || target > maxY {
		target = second
		if target < minY || target > maxY {
			target = core.ClampF(first, minY, maxY)
		}
	}
	return steer(v, target, h.X, t), true
}

// nearestCollectible returns the closest collectible ahead that satisfies
// keep, measured horizontally from the leading edge.
func nearestCollectible(v glider.View, t Tuning, keep func(core.Circle) bool) (core.Circle, bool) {
	candidates := lo.Filter(v.Collectibles, func(c core.Circle, _ int) bool {
		return ahead(v, c.X-c.Radius, t) && keep(c)
	})
	if len(candidates) == 0 {
		return core.Circle{}, false
	}
	return lo.MinBy(candidates, func(a, b core.Circle) bool {
		return a.X < b.X
	}), true
}

// corridor is the box swept by flying level from the player to the ball,
// spanning the player's height and the ball, padded by margin.
func corridor(v glider.View, c core.Circle, margin float64) core.Rect {
	top := math.Min(v.Player.Y, c.Y-c.Radius) - margin
	bottom := math.Max(v.Player.Bottom(), c.Y+c.Radius) + margin
	return core.NewRect(v.Player.X, top, c.X+c.Radius-v.Player.X, bottom-top)
}
