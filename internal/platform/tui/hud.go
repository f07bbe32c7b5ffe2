package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyglider/internal/bot"
	"github.com/vovakirdan/skyglider/internal/core"
	"github.com/vovakirdan/skyglider/internal/session"
)

// HUD layout constants
const (
	hudLines = 2  // status line above the playfield, notice line below
	barWidth = 10 // cells per resource bar
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle = lipgloss.NewStyle().Bold(true)
	scoreStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	fuelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	modeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

var helpBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("12")).
	Padding(1, 2)

// healthColor picks the health bar color: red below 30, yellow below 60,
// green otherwise.
func healthColor(health float64) lipgloss.Color {
	switch {
	case health < 30:
		return lipgloss.Color("9")
	case health < 60:
		return lipgloss.Color("11")
	default:
		return lipgloss.Color("10")
	}
}

// bar renders value/limit as a fixed-width bar.
func bar(value, limit float64, width int, style lipgloss.Style) string {
	filled := 0
	if limit > 0 {
		filled = core.Clamp(int(value/limit*float64(width)+0.5), 0, width)
	}
	return style.Render(strings.Repeat("█", filled)) + emptyStyle.Render(strings.Repeat("░", width-filled))
}

// statusLine renders score, resources and session info.
func statusLine(c *session.Controller, width int) string {
	w := c.World()
	cfg := w.Config().Status

	mode := "you"
	switch c.Mode() {
	case session.ModeBot:
		mode = "bot: " + c.Policy().String()
	case session.ModeDemo:
		mode = "demo: " + c.Policy().String()
	}
	palette := "day"
	if w.Night() {
		palette = "night"
	}

	parts := []string{
		labelStyle.Render("score ") + scoreStyle.Render(fmt.Sprintf("%d", w.Score())),
		labelStyle.Render("health ") + bar(w.Health(), cfg.MaxHealth, barWidth, lipgloss.NewStyle().Foreground(healthColor(w.Health()))),
		labelStyle.Render("fuel ") + bar(w.Fuel(), cfg.MaxFuel, barWidth, fuelStyle),
		labelStyle.Render("best ") + valueStyle.Render(fmt.Sprintf("%d", c.Best())),
		modeStyle.Render(mode),
		labelStyle.Render(string(c.Difficulty()) + " " + palette),
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(parts, "  "))
}

// noticeStyle shades the damage notice by its opacity.
func noticeStyle(alpha float64) lipgloss.Style {
	switch {
	case alpha > 0.66:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	case alpha > 0.33:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	}
}

// noticeLine renders the active damage notice, or the short key help.
func noticeLine(c *session.Controller, shortHelp string, width int) string {
	w := c.World()
	n := w.Status().Notice
	if c.Playing() && n.Active() {
		alpha := n.Alpha(w.Config().Status.NoticeFadeTicks)
		return noticeStyle(alpha).MaxWidth(width).Render(n.Text)
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(shortHelp)
}

// drawBanner draws a boxed multi-line message in the middle of the screen.
func drawBanner(s *core.Screen, lines []string, c core.Color) {
	inner := 0
	for _, l := range lines {
		inner = max(inner, len([]rune(l)))
	}
	w, h := inner+4, len(lines)+2
	x, y := (s.Width()-w)/2, (s.Height()-h)/2

	s.FillRect(x, y, w, h, ' ', core.ColorDefault)
	s.DrawBox(x, y, w, h, c)
	for i, l := range lines {
		s.DrawTextCentered(y+1+i, l, c)
	}
}

// drawStateBanner overlays the idle, countdown, pause and game over
// messages onto the playfield.
func drawStateBanner(s *core.Screen, c *session.Controller) {
	w := c.World()
	switch c.State() {
	case session.StateIdle:
		drawBanner(s, []string{
			"S K Y G L I D E R",
			"",
			"enter: day flight   n: night flight",
			"b: let the bot fly   h: help",
		}, core.ColorBrightCyan)
	case session.StateCountdown:
		drawBanner(s, []string{
			"S K Y G L I D E R",
			"",
			fmt.Sprintf("demo starts in %d", c.Countdown()),
			"press any key to stay",
		}, core.ColorBrightCyan)
	case session.StatePaused:
		if !c.HelpVisible() {
			drawBanner(s, []string{"PAUSED", "p to resume"}, core.ColorYellow)
		}
	case session.StateGameOver:
		drawBanner(s, []string{
			"GAME OVER",
			"",
			string(w.Reason()),
			fmt.Sprintf("score %d   best %d", w.Score(), c.Best()),
			"r to restart",
		}, core.ColorBrightRed)
	}
}

// helpView renders the full key help and the policy list.
func helpView(full string) string {
	var sb strings.Builder
	sb.WriteString(valueStyle.Render("Controls"))
	sb.WriteString("\n\n")
	sb.WriteString(full)
	sb.WriteString("\n\n")
	sb.WriteString(valueStyle.Render("Bot policies"))
	sb.WriteString("\n")
	for _, p := range bot.Policies {
		sb.WriteString(fmt.Sprintf("\n%d  %-10s %s", int(p), p.String(), labelStyle.Render(p.Description())))
	}
	return helpBoxStyle.Render(sb.String())
}
