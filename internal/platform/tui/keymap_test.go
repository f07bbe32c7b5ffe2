package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyglider/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		key  string
		want core.Intent
	}{
		{"space", core.Intent{Action: core.ActionThrustStart}},
		{"w", core.Intent{Action: core.ActionThrustStart}},
		{"b", core.Intent{Action: core.ActionToggleBot}},
		{"1", core.Intent{Action: core.ActionSelectPolicy, Arg: 1}},
		{"4", core.Intent{Action: core.ActionSelectPolicy, Arg: 4}},
		{"h", core.Intent{Action: core.ActionToggleHelp}},
		{"?", core.Intent{Action: core.ActionToggleHelp}},
		{"r", core.Intent{Action: core.ActionRestart}},
		{"d", core.Intent{Action: core.ActionToggleDevOverlay}},
		{"enter", core.Intent{Action: core.ActionStartDay}},
		{"n", core.Intent{Action: core.ActionStartNight}},
		{"tab", core.Intent{Action: core.ActionCycleDifficulty}},
		{"m", core.Intent{Action: core.ActionToggleMute}},
		{"+", core.Intent{Action: core.ActionVolumeUp}},
		{"-", core.Intent{Action: core.ActionVolumeDown}},
		{"p", core.Intent{Action: core.ActionPause}},
		{"q", core.Intent{Action: core.ActionQuit}},
		{"ctrl+c", core.Intent{Action: core.ActionQuit}},
		{"x", core.Intent{}},
		{"5", core.Intent{}},
	}

	for _, tc := range tests {
		got := km.MapKey(keyMsg(tc.key))
		if got != tc.want {
			t.Errorf("MapKey(%q) = %+v, expected %+v", tc.key, got, tc.want)
		}
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name string
		msg  tea.MouseMsg
		want core.Action
	}{
		{"left press", tea.MouseMsg{Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}, core.ActionThrustStart},
		{"right press", tea.MouseMsg{Button: tea.MouseButtonRight, Action: tea.MouseActionPress}, core.ActionThrustStart},
		{"release", tea.MouseMsg{Button: tea.MouseButtonNone, Action: tea.MouseActionRelease}, core.ActionThrustEnd},
		{"wheel", tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress}, core.ActionNone},
		{"motion", tea.MouseMsg{Button: tea.MouseButtonNone, Action: tea.MouseActionMotion}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapMouse(tc.msg).Action; got != tc.want {
				t.Errorf("MapMouse() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestHealthColor(t *testing.T) {
	tests := []struct {
		health float64
		want   string
	}{
		{100, "10"},
		{60, "10"},
		{59.9, "11"},
		{30, "11"},
		{29.9, "9"},
		{0, "9"},
	}
	for _, tc := range tests {
		if got := string(healthColor(tc.health)); got != tc.want {
			t.Errorf("healthColor(%v) = %v, expected %v", tc.health, got, tc.want)
		}
	}
}

func TestBar(t *testing.T) {
	got := bar(50, 100, 10, labelStyle)
	if n := strings.Count(got, "█"); n != 5 {
		t.Errorf("bar(50/100) filled %d cells, expected 5", n)
	}
	got = bar(150, 100, 10, labelStyle)
	if n := strings.Count(got, "█"); n != 10 {
		t.Errorf("bar(150/100) filled %d cells, expected clamp to 10", n)
	}
	if n := strings.Count(bar(0, 100, 10, labelStyle), "░"); n != 10 {
		t.Errorf("bar(0/100) empty cells = %d, expected 10", n)
	}
}

func TestNoticeStyleFades(t *testing.T) {
	tests := []struct {
		alpha float64
		want  lipgloss.Color
	}{
		{1, lipgloss.Color("9")},
		{0.5, lipgloss.Color("1")},
		{0.1, lipgloss.Color("240")},
	}
	for _, tc := range tests {
		if got := noticeStyle(tc.alpha).GetForeground(); got != tc.want {
			t.Errorf("noticeStyle(%v) foreground = %v, expected %v", tc.alpha, got, tc.want)
		}
	}
}

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "sky", core.ColorSkyBlue)
	s.DrawText(0, 1, "glider", core.ColorDefault)

	for _, night := range []bool{false, true} {
		out := RenderScreen(s, night)
		lines := strings.Split(out, "\n")
		if len(lines) != 2 {
			t.Fatalf("RenderScreen() produced %d lines, expected 2", len(lines))
		}
		if !strings.Contains(lines[0], "sky") || !strings.Contains(lines[1], "glider") {
			t.Errorf("RenderScreen(night=%v) lost text: %q", night, out)
		}
	}
}
