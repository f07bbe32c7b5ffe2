package glider

import (
	"github.com/vovakirdan/skyglider/internal/config"
	"github.com/vovakirdan/skyglider/internal/core"
)

// Kind identifies the role of an entity in the world.
type Kind int

const (
	KindPlayer Kind = iota
	KindCollectibleBall
	KindHazardBall
	KindAmbientCloud
	KindHazardCloud
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindCollectibleBall:
		return "collectible"
	case KindHazardBall:
		return "hazard-ball"
	case KindAmbientCloud:
		return "ambient-cloud"
	case KindHazardCloud:
		return "hazard-cloud"
	default:
		return "unknown"
	}
}

// Entity is anything that occupies space in the world.
type Entity interface {
	Kind() Kind
	Bounds() core.Rect
}

// Scroller is an entity carried leftward by the world scroll.
type Scroller interface {
	Entity
	Scroll(speed float64)
}

// Player is the glider. X is fixed; only Y moves.
type Player struct {
	X, Y      float64 // top-left corner
	VY        float64
	W, H      float64
	Thrust    float64 // acceleration while thrusting, negative is up
	Gravity   float64
	Thrusting bool

	floor float64 // largest allowed Y
}

// NewPlayer creates the glider at its configured start position.
func NewPlayer(cfg config.PlayerConfig, worldH float64) *Player {
	return &Player{
		X:       cfg.X,
		Y:       cfg.Y,
		W:       cfg.Width,
		H:       cfg.Height,
		Thrust:  cfg.Thrust,
		Gravity: cfg.Gravity,
		floor:   worldH - cfg.Height,
	}
}

func (p *Player) Kind() Kind { return KindPlayer }

// Bounds returns the glider's rectangle.
func (p *Player) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Center returns the middle of the glider.
func (p *Player) Center() core.Vec {
	return p.Bounds().Center()
}

// Update integrates one tick of vertical motion (explicit Euler) and keeps
// the glider inside the world, zeroing velocity when it hits an edge.
func (p *Player) Update() {
	if p.Thrusting {
		p.VY += p.Thrust
	}
	p.VY += p.Gravity
	p.Y += p.VY

	if p.Y < 0 {
		p.Y = 0
		p.VY = 0
	}
	if p.Y > p.floor {
		p.Y = p.floor
		p.VY = 0
	}
}

// Ball is a collectible or hazard orb. X and Y are the center.
type Ball struct {
	X, Y   float64
	Radius float64
	kind   Kind
}

// NewBall creates a ball of the given kind.
func NewBall(x, y, radius float64, kind Kind) *Ball {
	return &Ball{X: x, Y: y, Radius: radius, kind: kind}
}

func (b *Ball) Kind() Kind { return b.kind }

// Circle returns the ball as a disc.
func (b *Ball) Circle() core.Circle {
	return core.Circle{X: b.X, Y: b.Y, Radius: b.Radius}
}

// Bounds returns the ball's bounding box.
func (b *Ball) Bounds() core.Rect {
	return b.Circle().Bounds()
}

// Scroll moves the ball left at world speed.
func (b *Ball) Scroll(speed float64) {
	b.X -= speed
}

// Puff is one disc of a cloud, relative to the cloud origin.
type Puff struct {
	DX, DY float64
	Radius float64
}

// Cloud is a cluster of puffs. Its extent box is computed once at
// construction and stays fixed for the cloud's lifetime.
type Cloud struct {
	X, Y      float64 // origin
	Puffs     []Puff
	Hazard    bool
	Lightning bool // visual only, rerolled every tick

	speedFactor float64
	extent      core.Rect // relative to the origin
}

// NewCloud generates a cloud at (x, y). The number of puffs, their offsets
// and radii are drawn from the configured ranges.
func NewCloud(x, y float64, hazard bool, speedFactor float64, cfg config.PuffConfig, rng core.Rand) *Cloud {
	n := cfg.MinCount
	if cfg.MaxCount > cfg.MinCount {
		n += rng.Intn(cfg.MaxCount - cfg.MinCount + 1)
	}

	c := &Cloud{
		X:           x,
		Y:           y,
		Hazard:      hazard,
		Puffs:       make([]Puff, 0, n),
		speedFactor: speedFactor,
	}

	var extent core.Rect
	for i := 0; i < n; i++ {
		p := Puff{
			DX:     (rng.Float64()*2 - 1) * cfg.SpreadX,
			DY:     (rng.Float64()*2 - 1) * cfg.SpreadY,
			Radius: cfg.MinRadius + rng.Float64()*(cfg.MaxRadius-cfg.MinRadius),
		}
		c.Puffs = append(c.Puffs, p)

		box := core.Circle{X: p.DX, Y: p.DY, Radius: p.Radius}.Bounds()
		if i == 0 {
			extent = box
		} else {
			extent = extent.Union(box)
		}
	}
	c.extent = extent
	return c
}

func (c *Cloud) Kind() Kind {
	if c.Hazard {
		return KindHazardCloud
	}
	return KindAmbientCloud
}

// Extent returns the cached puff extent relative to the origin.
func (c *Cloud) Extent() core.Rect {
	return c.extent
}

// Bounds returns the cloud's box in world coordinates.
func (c *Cloud) Bounds() core.Rect {
	return c.extent.Offset(c.X, c.Y)
}

// Scroll moves the cloud left at its fraction of world speed.
func (c *Cloud) Scroll(speed float64) {
	c.X -= speed * c.speedFactor
}

// offscreen reports whether an entity has fully left the world on the left.
func offscreen[T Entity](e T, _ int) bool {
	return e.Bounds().Right() <= 0
}
