// Package session owns the game's control flow: which state the game is in,
// who is flying, and the timers that drive ticks, the idle delay and the
// demo countdown.
package session

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyglider/internal/audio"
	"github.com/vovakirdan/skyglider/internal/bot"
	"github.com/vovakirdan/skyglider/internal/config"
	"github.com/vovakirdan/skyglider/internal/core"
	"github.com/vovakirdan/skyglider/internal/glider"
)

// State is the controller's top-level state.
type State int

const (
	StateIdle State = iota
	StateCountdown
	StateActive
	StatePaused
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCountdown:
		return "countdown"
	case StateActive:
		return "active"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Mode says who controls the glider.
type Mode int

const (
	ModeHuman Mode = iota
	ModeBot        // user-toggled autopilot
	ModeDemo       // attract mode started by the idle timer
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeHuman:
		return "human"
	case ModeBot:
		return "bot"
	case ModeDemo:
		return "demo"
	default:
		return "unknown"
	}
}

// PauseReason is a bit set of reasons the simulation is held.
type PauseReason uint8

const (
	PauseHelp PauseReason = 1 << iota
	PauseHidden
	PauseManual
)

const volumeStep = 0.1

// Deps are the collaborators of a Controller.
type Deps struct {
	Config     *config.GliderConfig
	World      *glider.World
	Difficulty *config.DifficultyManager
	Driver     Driver
	Sink       audio.Sink  // nil means silent
	Logger     *log.Logger // nil discards
	Rand       core.Rand   // demo palette; nil uses a time-seeded source
	TickRate   int         // frames per second; 0 uses the default
}

// Controller is the session state machine. It is not safe for concurrent
// use; the UI loop calls it from a single goroutine.
type Controller struct {
	cfg        *config.GliderConfig
	world      *glider.World
	difficulty *config.DifficultyManager
	sched      *Scheduler
	sink       audio.Sink
	log        *log.Logger
	rng        core.Rand

	frameInterval time.Duration

	state     State
	mode      Mode
	policy    bot.Policy
	pilot     *bot.Pilot
	pauses    PauseReason
	countdown int
	best      int
	overlay   bool
}

// New creates a controller in the idle state with its idle timer armed.
func New(d Deps) *Controller {
	tickRate := d.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	sink := d.Sink
	if sink == nil {
		sink = audio.Nop{}
	}
	logger := d.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := d.Rand
	if rng == nil {
		rng = core.NewRand(0)
	}

	policy := bot.Policy(d.Config.Bot.DemoPolicy)
	if !policy.Valid() {
		policy = bot.PolicySmart
	}

	c := &Controller{
		cfg:           d.Config,
		world:         d.World,
		difficulty:    d.Difficulty,
		sched:         NewScheduler(d.Driver),
		sink:          sink,
		log:           logger,
		rng:           rng,
		frameInterval: time.Second / time.Duration(tickRate),
		policy:        policy,
		pilot:         bot.NewPilot(policy, bot.TuningFrom(d.Config.Bot)),
	}
	c.enterIdle()
	return c
}

// Accessors.
func (c *Controller) State() State                  { return c.state }
func (c *Controller) Mode() Mode                    { return c.mode }
func (c *Controller) Policy() bot.Policy            { return c.policy }
func (c *Controller) Countdown() int                { return c.countdown }
func (c *Controller) Best() int                     { return c.best }
func (c *Controller) World() *glider.World          { return c.world }
func (c *Controller) Pauses() PauseReason           { return c.pauses }
func (c *Controller) HelpVisible() bool             { return c.pauses&PauseHelp != 0 }
func (c *Controller) DevOverlay() bool              { return c.overlay }
func (c *Controller) Difficulty() config.Difficulty { return c.difficulty.Current() }
func (c *Controller) Scheduler() *Scheduler         { return c.sched }

// Playing reports whether a game is in progress, paused or not.
func (c *Controller) Playing() bool {
	return c.state == StateActive || c.state == StatePaused
}

// Fire handles a delivered timer ticket. Stale tickets are ignored and
// Fire reports false for them.
func (c *Controller) Fire(t Ticket) bool {
	if !c.sched.Accept(t) {
		return false
	}
	switch t.Slot {
	case SlotFrame:
		c.tick()
	case SlotIdle:
		c.enterCountdown()
	case SlotCountdown:
		c.countdown--
		if c.countdown <= 0 {
			c.startDemo()
		} else {
			c.sched.Arm(SlotCountdown, c.cfg.Session.CountdownStep)
		}
	}
	return true
}

// Handle applies one user intent.
func (c *Controller) Handle(in core.Intent) {
	if c.state == StateCountdown && in.Interaction() {
		c.log.Debug("countdown interrupted", "action", in.Action)
		c.enterIdle()
	}
	if c.Playing() && c.mode == ModeDemo && in.Interaction() {
		c.log.Info("demo interrupted", "score", c.world.Score())
		c.stopDemo()
		return
	}

	switch in.Action {
	case core.ActionToggleHelp:
		c.setPause(PauseHelp, c.pauses&PauseHelp == 0)
	case core.ActionToggleDevOverlay:
		c.overlay = !c.overlay
	case core.ActionCycleDifficulty:
		d := c.difficulty.Cycle()
		c.log.Info("difficulty changed", "difficulty", d, "rates", c.difficulty.Rates())
	case core.ActionSelectPolicy:
		c.SelectPolicy(bot.Policy(in.Arg))
	case core.ActionToggleMute:
		if vc, ok := c.sink.(audio.VolumeControl); ok {
			vc.SetMuted(!vc.Muted())
		}
	case core.ActionVolumeUp:
		c.nudgeVolume(volumeStep)
	case core.ActionVolumeDown:
		c.nudgeVolume(-volumeStep)
	case core.ActionRestart:
		c.Restart()
	default:
		switch c.state {
		case StateIdle:
			c.handleIdle(in)
		case StateActive, StatePaused:
			c.handlePlaying(in)
		}
	}

	if c.state == StateIdle && in.Interaction() {
		c.armIdle()
	}
}

func (c *Controller) handleIdle(in core.Intent) {
	switch in.Action {
	case core.ActionStartDay:
		c.startGame(false, ModeHuman)
	case core.ActionStartNight:
		c.startGame(true, ModeHuman)
	case core.ActionToggleBot:
		c.startGame(false, ModeBot)
	}
}

func (c *Controller) handlePlaying(in core.Intent) {
	switch in.Action {
	case core.ActionThrustStart:
		if c.mode == ModeHuman && c.state == StateActive {
			c.setThrust(true)
		}
	case core.ActionThrustEnd:
		if c.mode == ModeHuman {
			c.setThrust(false)
		}
	case core.ActionToggleBot:
		if c.mode == ModeBot {
			c.mode = ModeHuman
			c.setThrust(false)
		} else {
			c.mode = ModeBot
		}
		c.log.Info("control changed", "mode", c.mode, "policy", c.policy)
	case core.ActionPause:
		c.setPause(PauseManual, c.pauses&PauseManual == 0)
	}
}

// SelectPolicy switches the autopilot policy. An unknown policy is kept;
// the pilot then holds thrust off with no target.
func (c *Controller) SelectPolicy(p bot.Policy) {
	if p == c.policy {
		return
	}
	c.policy = p
	c.pilot.Policy = p
	if !p.Valid() {
		c.log.Warn("unknown policy selected", "policy", int(p))
		return
	}
	c.log.Info("policy selected", "policy", p)
}

// SetVisible pauses the game while the UI is hidden and resumes it when it
// becomes visible again.
func (c *Controller) SetVisible(visible bool) {
	c.setPause(PauseHidden, !visible)
}

// Restart returns to idle with a fresh world. Calling it again in idle
// leaves the same state.
func (c *Controller) Restart() {
	if c.Playing() && c.mode != ModeDemo {
		c.log.Info("game abandoned", "score", c.world.Score())
	}
	c.sched.CancelAll()
	if c.world.Player().Thrusting && c.mode != ModeDemo {
		c.sink.OnThrustStateChanged(false)
	}
	c.world.Reset()
	c.mode = ModeHuman
	c.enterIdle()
}

// enterIdle drops a manual pause along with the game it held. Help and
// visibility pauses outlive the game.
func (c *Controller) enterIdle() {
	c.sched.CancelAll()
	if c.state == StatePaused {
		c.resume()
	}
	c.state = StateIdle
	c.countdown = 0
	c.pauses &^= PauseManual
	c.armIdle()
}

// armIdle restarts the idle delay, or holds it while help is shown or the
// UI is hidden.
func (c *Controller) armIdle() {
	if c.pauses != 0 {
		c.sched.Cancel(SlotIdle)
		return
	}
	c.sched.Arm(SlotIdle, c.cfg.Session.IdleDelay)
}

func (c *Controller) enterCountdown() {
	c.state = StateCountdown
	c.countdown = c.cfg.Session.CountdownFrom
	c.log.Debug("demo countdown", "from", c.countdown)
	if c.countdown <= 0 {
		c.startDemo()
		return
	}
	c.sched.Arm(SlotCountdown, c.cfg.Session.CountdownStep)
}

func (c *Controller) startDemo() {
	night := c.cfg.Session.RandomDemoNight && c.rng.Float64() < 0.5
	if p := bot.Policy(c.cfg.Bot.DemoPolicy); p.Valid() {
		c.SelectPolicy(p)
	}
	c.startGame(night, ModeDemo)
}

func (c *Controller) stopDemo() {
	c.sched.CancelAll()
	c.world.Stop()
	c.world.Reset()
	c.mode = ModeHuman
	c.enterIdle()
}

func (c *Controller) startGame(night bool, mode Mode) {
	c.sched.CancelAll()
	c.countdown = 0
	c.world.Start(night)
	c.mode = mode
	c.state = StateActive
	c.log.Info("game started",
		"mode", mode,
		"night", night,
		"difficulty", c.difficulty.Current(),
		"policy", c.policy,
	)
	if c.pauses != 0 {
		c.state = StatePaused
		c.suspend()
		return
	}
	c.sched.Arm(SlotFrame, c.frameInterval)
}

func (c *Controller) tick() {
	if c.state != StateActive {
		return
	}
	var pilot glider.Pilot
	if c.mode != ModeHuman {
		pilot = c.pilot
	}

	res := c.world.Step(pilot)
	if c.mode != ModeDemo {
		for _, e := range res.Events {
			switch e {
			case glider.EventCollect:
				c.sink.OnCollect()
			case glider.EventHazardHit, glider.EventCloudDamage:
				c.sink.OnDamage()
			case glider.EventThrustChanged:
				c.sink.OnThrustStateChanged(c.world.Player().Thrusting)
			}
		}
	}

	if res.GameOver {
		c.gameOver(res.Reason)
		return
	}
	c.sched.Arm(SlotFrame, c.frameInterval)
}

func (c *Controller) gameOver(reason glider.EndReason) {
	c.sched.CancelAll()
	c.state = StateGameOver
	if c.mode != ModeDemo {
		c.sink.OnThrustStateChanged(false)
	}
	score := c.world.Score()
	if score > c.best {
		c.best = score
	}
	c.log.Info("game over",
		"reason", reason,
		"score", score,
		"best", c.best,
		"mode", c.mode,
		"frames", c.world.Frame(),
	)
}

func (c *Controller) setThrust(on bool) {
	if c.world.SetThrust(on) {
		c.sink.OnThrustStateChanged(on)
	}
}

func (c *Controller) setPause(reason PauseReason, on bool) {
	if on {
		c.pauses |= reason
	} else {
		c.pauses &^= reason
	}

	switch {
	case c.state == StateIdle:
		c.armIdle()
	case c.state == StateCountdown && c.pauses != 0:
		c.enterIdle()
	case c.state == StateActive && c.pauses != 0:
		c.state = StatePaused
		c.sched.Cancel(SlotFrame)
		c.suspend()
		c.log.Debug("paused", "reasons", c.pauses)
	case c.state == StatePaused && c.pauses == 0:
		c.state = StateActive
		c.resume()
		c.sched.Arm(SlotFrame, c.frameInterval)
		c.log.Debug("resumed")
	}
}

func (c *Controller) suspend() {
	if s, ok := c.sink.(audio.Suspender); ok {
		s.Suspend()
	}
}

func (c *Controller) resume() {
	if s, ok := c.sink.(audio.Suspender); ok {
		s.Resume()
	}
}

func (c *Controller) nudgeVolume(delta float64) {
	vc, ok := c.sink.(audio.VolumeControl)
	if !ok {
		return
	}
	vc.SetVolume(core.ClampF(vc.Volume()+delta, 0, 1))
}
