// Package bot implements the autonomous glider pilots. Every policy is a pure
// function of a read-only world view; none of them keeps state between ticks.
package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/skyglider/internal/config"
	"github.com/vovakirdan/skyglider/internal/glider"
)

// Policy selects a bot personality.
type Policy int

const (
	PolicyCollector Policy = iota + 1 // chase collectibles, ignore hazards
	PolicySmart                       // evade nearby hazards, otherwise collect safely
	PolicyAvoider                     // evade hazards from further away, never collect
	PolicyKamikaze                    // fly into the nearest hazard
)

// Policies lists every policy in selection order.
var Policies = []Policy{PolicyCollector, PolicySmart, PolicyAvoider, PolicyKamikaze}

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case PolicyCollector:
		return "collector"
	case PolicySmart:
		return "smart"
	case PolicyAvoider:
		return "avoider"
	case PolicyKamikaze:
		return "kamikaze"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Description returns a one-line summary for help screens.
func (p Policy) Description() string {
	switch p {
	case PolicyCollector:
		return "chases the nearest blue orb, ignores hazards"
	case PolicySmart:
		return "dodges nearby hazards, collects along clear paths"
	case PolicyAvoider:
		return "keeps far from hazards, never collects"
	case PolicyKamikaze:
		return "steers into the nearest hazard"
	default:
		return "unknown"
	}
}

// Valid reports whether p is one of the defined policies.
func (p Policy) Valid() bool {
	return p >= PolicyCollector && p <= PolicyKamikaze
}

// ParsePolicy accepts a policy number (1-4) or name.
func ParsePolicy(s string) (Policy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if p := Policy(n); p.Valid() {
			return p, nil
		}
		return 0, fmt.Errorf("bot: policy number %d out of range 1-4", n)
	}
	for _, p := range Policies {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("bot: unknown policy %q", s)
}

// Evasion tunes a hazard-evading policy.
type Evasion struct {
	DangerRadius float64
	Margin       float64
}

// Tuning holds the constants shared by all policies.
type Tuning struct {
	DeadZone       float64 // no thrust change within this many px of the target
	AheadTolerance float64 // slack for collectibles past the nose and hazards past the tail
	CollectReach   float64 // Smart ignores collectibles further ahead than this
	Smart          Evasion
	Avoider        Evasion
}

// TuningFrom converts the YAML bot section.
func TuningFrom(cfg config.BotConfig) Tuning {
	return Tuning{
		DeadZone:       cfg.DeadZone,
		AheadTolerance: cfg.AheadTolerance,
		CollectReach:   cfg.CollectReach,
		Smart:          Evasion{DangerRadius: cfg.Smart.DangerRadius, Margin: cfg.Smart.Margin},
		Avoider:        Evasion{DangerRadius: cfg.Avoider.DangerRadius, Margin: cfg.Avoider.Margin},
	}
}

// DefaultTuning returns the tuning of the default configuration.
func DefaultTuning() Tuning {
	return TuningFrom(config.DefaultGliderConfig().Bot)
}

// Pilot adapts a policy to the glider.Pilot interface.
type Pilot struct {
	Policy Policy
	Tuning Tuning
}

// NewPilot creates a pilot flying policy p.
func NewPilot(p Policy, t Tuning) *Pilot {
	return &Pilot{Policy: p, Tuning: t}
}

// Decide implements glider.Pilot.
func (p *Pilot) Decide(v glider.View) glider.Decision {
	return Decide(p.Policy, v, p.Tuning)
}

// Decide returns the thrust decision of policy p for the view. Unknown
// policies switch thrust off and aim nowhere.
func Decide(p Policy, v glider.View, t Tuning) glider.Decision {
	switch p {
	case PolicyCollector:
		return collector(v, t)
	case PolicySmart:
		return smart(v, t)
	case PolicyAvoider:
		return avoider(v, t)
	case PolicyKamikaze:
		return kamikaze(v, t)
	default:
		return glider.Decision{Thrust: glider.ThrustOff}
	}
}
