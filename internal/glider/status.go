package glider

import (
	"github.com/vovakirdan/skyglider/internal/config"
	"github.com/vovakirdan/skyglider/internal/core"
)

// EndReason explains why a session ended.
type EndReason string

const (
	ReasonNone     EndReason = ""
	ReasonNoHealth EndReason = "out of health"
	ReasonNoFuel   EndReason = "out of fuel"
)

// Damage notice texts.
const (
	NoticeHazardBall  = "Hit by a storm orb! -20 health"
	NoticeHazardCloud = "Flying through a thunder cloud!"
)

// DamageNotice is the transient on-screen damage message.
type DamageNotice struct {
	Text      string
	Remaining int // ticks left
}

// Active reports whether the notice is still showing.
func (n DamageNotice) Active() bool {
	return n.Remaining > 0
}

// Alpha returns the notice opacity: 1 until the last fadeTicks ticks, then
// falling linearly to 0.
func (n DamageNotice) Alpha(fadeTicks int) float64 {
	if n.Remaining <= 0 {
		return 0
	}
	if fadeTicks <= 0 {
		return 1
	}
	return min(1, float64(n.Remaining)/float64(fadeTicks))
}

// Status holds the per-session resources and the damage notice.
type Status struct {
	Score  int
	Health float64
	Fuel   float64
	Notice DamageNotice

	cfg config.StatusConfig
}

// NewStatus creates a full-health, full-tank status.
func NewStatus(cfg config.StatusConfig) Status {
	return Status{Health: cfg.MaxHealth, Fuel: cfg.MaxFuel, cfg: cfg}
}

// Collect applies the reward for a collectible ball.
func (s *Status) Collect() {
	s.Score += s.cfg.CollectScore
	s.Fuel = min(s.cfg.MaxFuel, s.Fuel+s.cfg.CollectFuel)
}

// HitByBall applies a hazard ball hit. The notice is always replaced and
// its timer reset.
func (s *Status) HitByBall() {
	s.Health -= s.cfg.HazardBallDamage
	s.Notice = DamageNotice{Text: NoticeHazardBall, Remaining: s.cfg.NoticeTicks}
	s.clamp()
}

// InCloud applies one tick of exposure to n hazard clouds. The notice is
// only set when none is showing.
func (s *Status) InCloud(n int) {
	if n <= 0 {
		return
	}
	s.Health -= s.cfg.CloudDamage * float64(n)
	if !s.Notice.Active() {
		s.Notice = DamageNotice{Text: NoticeHazardCloud, Remaining: s.cfg.NoticeTicks}
	}
	s.clamp()
}

// Tick drains fuel, ages the notice and evaluates the terminal conditions,
// health first.
func (s *Status) Tick(thrusting bool) (EndReason, bool) {
	if thrusting {
		s.Fuel -= s.cfg.FuelDrainThrust
	} else {
		s.Fuel -= s.cfg.FuelDrainIdle
	}
	if s.Notice.Remaining > 0 {
		s.Notice.Remaining--
	}
	s.clamp()

	switch {
	case s.Health <= 0:
		return ReasonNoHealth, true
	case s.Fuel <= 0:
		return ReasonNoFuel, true
	}
	return ReasonNone, false
}

func (s *Status) clamp() {
	s.Health = core.ClampF(s.Health, 0, s.cfg.MaxHealth)
	s.Fuel = core.ClampF(s.Fuel, 0, s.cfg.MaxFuel)
}
