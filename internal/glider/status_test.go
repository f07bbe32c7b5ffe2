package glider

import (
	"testing"

	"github.com/vovakirdan/skyglider/internal/config"
)

func newTestStatus() Status {
	return NewStatus(config.DefaultGliderConfig().Status)
}

func TestStatusTerminalOrder(t *testing.T) {
	tests := []struct {
		name      string
		health    float64
		fuel      float64
		thrusting bool
		reason    EndReason
		ended     bool
	}{
		{"fuel runs out while thrusting", 50, 0.10, true, ReasonNoFuel, true},
		{"fuel survives while gliding", 50, 0.10, false, ReasonNone, false},
		{"health checked before fuel", 0, 0.01, false, ReasonNoHealth, true},
		{"healthy", 100, 100, true, ReasonNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestStatus()
			s.Health = tc.health
			s.Fuel = tc.fuel

			reason, ended := s.Tick(tc.thrusting)
			if reason != tc.reason || ended != tc.ended {
				t.Errorf("Tick() = (%q, %v), expected (%q, %v)", reason, ended, tc.reason, tc.ended)
			}
			if s.Fuel < 0 || s.Health < 0 {
				t.Errorf("stats should be clamped, health=%v fuel=%v", s.Health, s.Fuel)
			}
		})
	}
}

func TestStatusClampsHealth(t *testing.T) {
	s := newTestStatus()
	for i := 0; i < 7; i++ {
		s.HitByBall()
	}
	if s.Health != 0 {
		t.Errorf("Health = %v, expected clamp at 0", s.Health)
	}
	if reason, _ := s.Tick(false); reason != ReasonNoHealth {
		t.Errorf("reason = %q, expected out of health", reason)
	}
}

func TestStatusFuelDrain(t *testing.T) {
	s := newTestStatus()
	s.Tick(true)
	s.Tick(false)
	if want := 100 - 0.12 - 0.04; s.Fuel < want-1e-9 || s.Fuel > want+1e-9 {
		t.Errorf("Fuel = %v, expected %v", s.Fuel, want)
	}
}

func TestDamageNoticeFade(t *testing.T) {
	tests := []struct {
		remaining int
		expected  float64
	}{
		{120, 1},
		{61, 1},
		{60, 1},
		{30, 0.5},
		{0, 0},
	}

	for _, tc := range tests {
		n := DamageNotice{Text: "x", Remaining: tc.remaining}
		if got := n.Alpha(60); got != tc.expected {
			t.Errorf("Alpha() with %d remaining = %v, expected %v", tc.remaining, got, tc.expected)
		}
	}
}

func TestNoticeExpires(t *testing.T) {
	s := newTestStatus()
	s.HitByBall()
	for i := 0; i < 119; i++ {
		s.Tick(false)
	}
	if !s.Notice.Active() {
		t.Fatal("notice should still show after 119 ticks")
	}
	s.Tick(false)
	if s.Notice.Active() {
		t.Error("notice should expire after 120 ticks")
	}
}
