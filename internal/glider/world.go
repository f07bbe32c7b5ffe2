// Package glider implements the side-scrolling glider simulation: the
// entity model, spawning, collision resolution and the resource tracker.
// It has no terminal or audio dependencies; collaborators observe it through
// the Renderer hook and the events returned by Step.
package glider

import (
	"github.com/samber/lo"

	"github.com/vovakirdan/skyglider/internal/config"
	"github.com/vovakirdan/skyglider/internal/core"
)

// Event is something that happened during a tick that collaborators
// (audio, HUD) may react to.
type Event int

const (
	EventCollect Event = iota + 1
	EventHazardHit
	EventCloudDamage // throttled, at most one every CloudSoundEvery frames
	EventThrustChanged
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventCollect:
		return "collect"
	case EventHazardHit:
		return "hazard-hit"
	case EventCloudDamage:
		return "cloud-damage"
	case EventThrustChanged:
		return "thrust-changed"
	default:
		return "unknown"
	}
}

// Command is a pilot's thrust instruction.
type Command int

const (
	ThrustHold Command = iota // leave thrust as it is
	ThrustOn
	ThrustOff
)

// Decision is what a pilot wants for this tick.
type Decision struct {
	Thrust Command
	Aim    *core.Vec // target the pilot steers toward, for the dev overlay
}

// Pilot decides thrust from a read-only view of the world.
type Pilot interface {
	Decide(v View) Decision
}

// Renderer is called once per tick at the render point, after physics and
// before collisions. It must not mutate the world.
type Renderer interface {
	Draw(w *World)
}

// StepResult is returned by Step after each tick.
type StepResult struct {
	Events   []Event
	GameOver bool
	Reason   EndReason
}

// View is the read-only projection of the world handed to pilots.
type View struct {
	Width, Height float64
	Player        core.Rect
	PlayerVY      float64
	Thrusting     bool
	Collectibles  []core.Circle
	HazardBalls   []core.Circle
	HazardClouds  []core.Rect // world-space cloud boxes
}

// World is the mutable session state. It is owned by a single goroutine.
type World struct {
	cfg        *config.GliderConfig
	difficulty *config.DifficultyManager
	rng        core.Rand
	spawner    *Spawner
	renderer   Renderer

	player        *Player
	collectibles  []*Ball
	hazardBalls   []*Ball
	ambientClouds []*Cloud
	hazardClouds  []*Cloud

	status  Status
	frame   int
	speed   float64
	started bool
	over    bool
	reason  EndReason
	night   bool
	lastAim *core.Vec
}

// NewWorld creates a world in its initial, not yet started state.
func NewWorld(cfg *config.GliderConfig, diff *config.DifficultyManager, rng core.Rand) *World {
	w := &World{
		cfg:        cfg,
		difficulty: diff,
		rng:        rng,
		spawner:    NewSpawner(cfg, diff, rng),
	}
	w.Reset()
	return w
}

// SetRenderer installs the render hook. Nil disables it.
func (w *World) SetRenderer(r Renderer) {
	w.renderer = r
}

// Reset restores every session value to its initial state and stops the
// world. Calling it repeatedly yields the same state.
func (w *World) Reset() {
	w.player = NewPlayer(w.cfg.Player, w.cfg.World.Height)
	w.collectibles = nil
	w.hazardBalls = nil
	w.ambientClouds = nil
	w.hazardClouds = nil
	w.status = NewStatus(w.cfg.Status)
	w.frame = 0
	w.speed = w.cfg.World.ScrollSpeed
	w.started = false
	w.over = false
	w.reason = ReasonNone
	w.lastAim = nil
}

// Start begins a fresh session in day or night palette.
func (w *World) Start(night bool) {
	w.Reset()
	w.night = night
	w.started = true
}

// Stop ends the session without a terminal condition (e.g. demo interrupted).
func (w *World) Stop() {
	w.started = false
	w.player.Thrusting = false
}

// SetThrust sets the player's thrust flag and reports whether it changed.
func (w *World) SetThrust(on bool) bool {
	if w.player.Thrusting == on {
		return false
	}
	w.player.Thrusting = on
	return true
}

// Step advances the world by one tick. pilot may be nil for human control.
// Ticks on a world that has not started or has ended do nothing.
func (w *World) Step(pilot Pilot) StepResult {
	if !w.started || w.over {
		return StepResult{GameOver: w.over, Reason: w.reason}
	}
	var res StepResult

	if w.spawner != nil {
		w.spawner.Spawn(w)
	}
	w.scrollAndCull()

	if pilot != nil {
		d := pilot.Decide(w.View())
		w.lastAim = d.Aim
		switch d.Thrust {
		case ThrustOn:
			if w.SetThrust(true) {
				res.Events = append(res.Events, EventThrustChanged)
			}
		case ThrustOff:
			if w.SetThrust(false) {
				res.Events = append(res.Events, EventThrustChanged)
			}
		}
	}

	w.player.Update()

	if w.renderer != nil {
		w.renderer.Draw(w)
	}

	res.Events = append(res.Events, w.resolveCollisions()...)

	if reason, ended := w.status.Tick(w.player.Thrusting); ended {
		w.over = true
		w.reason = reason
		w.player.Thrusting = false
		res.GameOver = true
		res.Reason = reason
	}

	w.frame++
	return res
}

// View returns a snapshot of the world for pilots.
func (w *World) View() View {
	circle := func(b *Ball, _ int) core.Circle { return b.Circle() }
	return View{
		Width:        w.cfg.World.Width,
		Height:       w.cfg.World.Height,
		Player:       w.player.Bounds(),
		PlayerVY:     w.player.VY,
		Thrusting:    w.player.Thrusting,
		Collectibles: lo.Map(w.collectibles, circle),
		HazardBalls:  lo.Map(w.hazardBalls, circle),
		HazardClouds: lo.Map(w.hazardClouds, func(c *Cloud, _ int) core.Rect { return c.Bounds() }),
	}
}

// Accessors for collaborators. Returned slices must not be modified.

func (w *World) Player() Player                { return *w.player }
func (w *World) Collectibles() []*Ball         { return w.collectibles }
func (w *World) HazardBalls() []*Ball          { return w.hazardBalls }
func (w *World) AmbientClouds() []*Cloud       { return w.ambientClouds }
func (w *World) HazardClouds() []*Cloud        { return w.hazardClouds }
func (w *World) Status() Status                { return w.status }
func (w *World) Score() int                    { return w.status.Score }
func (w *World) Health() float64               { return w.status.Health }
func (w *World) Fuel() float64                 { return w.status.Fuel }
func (w *World) Frame() int                    { return w.frame }
func (w *World) Speed() float64                { return w.speed }
func (w *World) Started() bool                 { return w.started }
func (w *World) Over() bool                    { return w.over }
func (w *World) Reason() EndReason             { return w.reason }
func (w *World) Night() bool                   { return w.night }
func (w *World) LastAim() *core.Vec            { return w.lastAim }
func (w *World) Config() *config.GliderConfig  { return w.cfg }
func (w *World) Difficulty() config.Difficulty { return w.difficulty.Current() }
