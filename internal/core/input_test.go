package core

import "testing"

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionThrustStart, "ThrustStart"},
		{ActionSelectPolicy, "SelectPolicy"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}

func TestIntentInteraction(t *testing.T) {
	tests := []struct {
		intent   Intent
		expected bool
	}{
		{Intent{Action: ActionThrustStart}, true},
		{Intent{Action: ActionSelectPolicy, Arg: 2}, true},
		{Intent{Action: ActionToggleHelp}, true},
		{Intent{Action: ActionThrustEnd}, false},
		{Intent{Action: ActionNone}, false},
		{Intent{Action: ActionQuit}, false},
	}

	for _, tc := range tests {
		t.Run(tc.intent.Action.String(), func(t *testing.T) {
			if got := tc.intent.Interaction(); got != tc.expected {
				t.Errorf("Interaction() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestFixedRand(t *testing.T) {
	r := &FixedRand{Values: []float64{0.5, 0.25}}

	if v := r.Float64(); v != 0.5 {
		t.Errorf("Float64() = %v, expected 0.5", v)
	}
	if v := r.Intn(8); v != 2 {
		t.Errorf("Intn(8) = %v, expected 2", v)
	}
	// wraps around
	if v := r.Float64(); v != 0.5 {
		t.Errorf("Float64() after wrap = %v, expected 0.5", v)
	}

	empty := &FixedRand{}
	if empty.Float64() != 0 || empty.Intn(5) != 0 {
		t.Error("empty FixedRand should return zeros")
	}
}

func TestNewRandDeterministic(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("same seed should produce the same sequence")
		}
	}
}
