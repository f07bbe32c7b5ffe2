package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyglider/internal/core"
	"github.com/vovakirdan/skyglider/internal/glider"
)

// colorCodes maps core.Color to terminal color codes.
var colorCodes = map[core.Color]lipgloss.Color{
	core.ColorRed:           lipgloss.Color("1"),
	core.ColorGreen:         lipgloss.Color("2"),
	core.ColorYellow:        lipgloss.Color("3"),
	core.ColorBlue:          lipgloss.Color("4"),
	core.ColorMagenta:       lipgloss.Color("5"),
	core.ColorCyan:          lipgloss.Color("6"),
	core.ColorWhite:         lipgloss.Color("7"),
	core.ColorBrightRed:     lipgloss.Color("9"),
	core.ColorBrightGreen:   lipgloss.Color("10"),
	core.ColorBrightYellow:  lipgloss.Color("11"),
	core.ColorBrightBlue:    lipgloss.Color("12"),
	core.ColorBrightMagenta: lipgloss.Color("13"),
	core.ColorBrightCyan:    lipgloss.Color("14"),
	core.ColorBrightWhite:   lipgloss.Color("15"),
	core.ColorOrange:        lipgloss.Color("208"),
	core.ColorGray:          lipgloss.Color("245"),
	core.ColorDarkGray:      lipgloss.Color("240"),
	core.ColorSkyBlue:       lipgloss.Color("117"),
	core.ColorNavy:          lipgloss.Color("17"),
}

// nightSky is the background behind night sessions.
const nightSky = lipgloss.Color("17")

// buildStyles returns one style per color, optionally on a background.
func buildStyles(bg lipgloss.TerminalColor) map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(colorCodes)+1)
	base := lipgloss.NewStyle()
	if bg != nil {
		base = base.Background(bg)
	}
	styles[core.ColorDefault] = base
	for c, code := range colorCodes {
		styles[c] = base.Foreground(code)
	}
	return styles
}

var (
	dayStyles   = buildStyles(nil)
	nightStyles = buildStyles(nightSky)
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, night bool) string {
	styles := dayStyles
	if night {
		styles = nightStyles
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[startColor]
			if !ok {
				style = styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// frameRenderer is the world's render hook. It draws the playfield at the
// render point of each tick so the picture matches the state the pilot and
// the player saw, before collisions resolve.
type frameRenderer struct {
	screen *core.Screen
	opts   glider.RenderOptions
	fresh  bool
}

var _ glider.Renderer = (*frameRenderer)(nil)

func newFrameRenderer(w, h int) *frameRenderer {
	return &frameRenderer{screen: core.NewScreen(w, h)}
}

// Draw implements glider.Renderer.
func (r *frameRenderer) Draw(w *glider.World) {
	w.Render(r.screen, r.opts)
	r.fresh = true
}

// SetOverlay switches the hitbox overlay, redrawing on change.
func (r *frameRenderer) SetOverlay(on bool) {
	if r.opts.DevOverlay != on {
		r.opts.DevOverlay = on
		r.fresh = false
	}
}

// Invalidate forces the next Frame call to redraw.
func (r *frameRenderer) Invalidate() {
	r.fresh = false
}

// Resize changes the playfield size in cells.
func (r *frameRenderer) Resize(w, h int) {
	r.screen.Resize(w, h)
	r.fresh = false
}

// Frame returns the playfield, drawing it now if no tick has drawn it
// since the last invalidation.
func (r *frameRenderer) Frame(w *glider.World) *core.Screen {
	if !r.fresh {
		r.Draw(w)
	}
	return r.screen
}
