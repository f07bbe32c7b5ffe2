package bot

import (
	"github.com/samber/lo"

	"github.com/vovakirdan/skyglider/internal/core"
	"github.com/vovakirdan/skyglider/internal/glider"
)

func collector(v glider.View, t Tuning) glider.Decision {
	ball, ok := nearestCollectible(v, t, func(core.Circle) bool { return true })
	if !ok {
		return holdCenter(v, t)
	}
	return steer(v, ball.Y, ball.X, t)
}

func smart(v glider.View, t Tuning) glider.Decision {
	if d, ok := evade(v, t, t.Smart); ok {
		return d
	}

	boxes := hazards(v)
	leading := v.Player.Right()
	ball, ok := nearestCollectible(v, t, func(c core.Circle) bool {
		if c.X-c.Radius-leading > t.CollectReach {
			return false
		}
		path := corridor(v, c, t.Smart.Margin)
		return !lo.ContainsBy(boxes, func(h core.Rect) bool { return h.Intersects(path) })
	})
	if !ok {
		return holdCenter(v, t)
	}
	return steer(v, ball.Y, ball.X, t)
}

func avoider(v glider.View, t Tuning) glider.Decision {
	if d, ok := evade(v, t, t.Avoider); ok {
		return d
	}
	return holdCenter(v, t)
}

func kamikaze(v glider.View, t Tuning) glider.Decision {
	h, ok := nearestHazard(v, t)
	if !ok {
		return holdCenter(v, t)
	}
	c := h.Center()
	return steer(v, c.Y, c.X, t)
}
