package glider

import (
	"math"

	"github.com/vovakirdan/skyglider/internal/core"
)

// Visual characters for rendering
const (
	BodyChar        = '█'
	WingChar        = '▀'
	CockpitChar     = '◗'
	CollectibleChar = '●'
	HazardBallChar  = '◉'
	AmbientPuffChar = '░'
	HazardPuffChar  = '▓'
	LightningChar   = 'ϟ'
	AimChar         = '+'
	StarChar        = '·'
)

var propellerFrames = []rune{'|', '/', '─', '\\'}

// Palette maps world elements to colors.
type Palette struct {
	Sky          core.Color
	Glider       core.Color
	Wing         core.Color
	Cockpit      core.Color
	Propeller    core.Color
	Collectible  core.Color
	HazardBall   core.Color
	AmbientCloud core.Color
	HazardCloud  core.Color
	Lightning    core.Color
	Stars        core.Color
}

// DayPalette is used for day sessions.
var DayPalette = Palette{
	Sky:          core.ColorDefault,
	Glider:       core.ColorWhite,
	Wing:         core.ColorGray,
	Cockpit:      core.ColorSkyBlue,
	Propeller:    core.ColorYellow,
	Collectible:  core.ColorBrightBlue,
	HazardBall:   core.ColorBrightRed,
	AmbientCloud: core.ColorBrightWhite,
	HazardCloud:  core.ColorGray,
	Lightning:    core.ColorBrightYellow,
}

// NightPalette is used for night sessions.
var NightPalette = Palette{
	Sky:          core.ColorNavy,
	Glider:       core.ColorGray,
	Wing:         core.ColorDarkGray,
	Cockpit:      core.ColorCyan,
	Propeller:    core.ColorYellow,
	Collectible:  core.ColorBrightCyan,
	HazardBall:   core.ColorRed,
	AmbientCloud: core.ColorDarkGray,
	HazardCloud:  core.ColorDarkGray,
	Lightning:    core.ColorBrightYellow,
	Stars:        core.ColorWhite,
}

// RenderOptions control optional layers.
type RenderOptions struct {
	DevOverlay bool // hitboxes, cloud boxes and the pilot's aim point
}

// Palette returns the palette for the current session.
func (w *World) Palette() Palette {
	if w.night {
		return NightPalette
	}
	return DayPalette
}

// Render draws the world into dst, scaling world pixels onto cells.
func (w *World) Render(dst *core.Screen, opts RenderOptions) {
	pal := w.Palette()
	v := newViewport(dst, w.cfg.World.Width, w.cfg.World.Height)

	dst.Fill(' ', pal.Sky)
	if w.night {
		drawStars(dst, w.frame, pal.Stars)
	}

	for _, c := range w.ambientClouds {
		drawCloud(dst, v, c, AmbientPuffChar, pal.AmbientCloud)
	}
	for _, c := range w.hazardClouds {
		drawCloud(dst, v, c, HazardPuffChar, pal.HazardCloud)
		if c.Lightning {
			drawLightning(dst, v, c, pal.Lightning)
		}
	}
	for _, b := range w.collectibles {
		drawBall(dst, v, b, CollectibleChar, pal.Collectible)
	}
	for _, b := range w.hazardBalls {
		drawBall(dst, v, b, HazardBallChar, pal.HazardBall)
	}

	drawGlider(dst, v, w.player, w.frame, pal)

	if opts.DevOverlay {
		w.drawOverlay(dst, v)
	}
}

// viewport maps world coordinates onto screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	return viewport{
		sx: float64(dst.Width()) / worldW,
		sy: float64(dst.Height()) / worldH,
	}
}

func (v viewport) cell(x, y float64) (int, int) {
	return int(math.Floor(x * v.sx)), int(math.Floor(y * v.sy))
}

// world returns the world position of a cell's center.
func (v viewport) world(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) / v.sx, (float64(cy) + 0.5) / v.sy
}

func (v viewport) rect(r core.Rect) (x, y, w, h int) {
	x, y = v.cell(r.X, r.Y)
	x2, y2 := v.cell(r.Right(), r.Bottom())
	return x, y, max(1, x2-x), max(1, y2-y)
}

func fillCircle(dst *core.Screen, v viewport, c core.Circle, ch rune, col core.Color) {
	x0, y0, w, h := v.rect(c.Bounds())
	drew := false
	for cy := y0; cy < y0+h; cy++ {
		for cx := x0; cx < x0+w; cx++ {
			wx, wy := v.world(cx, cy)
			dx, dy := wx-c.X, wy-c.Y
			if dx*dx+dy*dy <= c.Radius*c.Radius {
				dst.SetColored(cx, cy, ch, col)
				drew = true
			}
		}
	}
	// Small discs may fall between cell centers; keep them visible.
	if !drew {
		cx, cy := v.cell(c.X, c.Y)
		dst.SetColored(cx, cy, ch, col)
	}
}

func drawBall(dst *core.Screen, v viewport, b *Ball, ch rune, col core.Color) {
	fillCircle(dst, v, b.Circle(), ch, col)
}

func drawCloud(dst *core.Screen, v viewport, c *Cloud, ch rune, col core.Color) {
	for _, p := range c.Puffs {
		fillCircle(dst, v, core.Circle{X: c.X + p.DX, Y: c.Y + p.DY, Radius: p.Radius}, ch, col)
	}
}

func drawLightning(dst *core.Screen, v viewport, c *Cloud, col core.Color) {
	b := c.Bounds()
	cx, top := v.cell(c.X, b.Bottom())
	for i := 0; i < 3; i++ {
		dst.SetColored(cx+i%2, top+i, LightningChar, col)
	}
}

func drawGlider(dst *core.Screen, v viewport, p *Player, frame int, pal Palette) {
	x, y, w, h := v.rect(p.Bounds())
	dst.FillRect(x, y, w, h, BodyChar, pal.Glider)
	dst.DrawHLine(x+w/4, y-1, max(1, w/3), WingChar, pal.Wing)
	dst.SetColored(x+w-1, y, CockpitChar, pal.Cockpit)
	dst.SetColored(x+w, y+h/2, propellerFrames[(frame/4)%len(propellerFrames)], pal.Propeller)
}

func drawStars(dst *core.Screen, frame int, col core.Color) {
	// Fixed pseudo-random field drifting slowly left.
	w, h := dst.Width(), dst.Height()
	if w == 0 || h == 0 {
		return
	}
	shift := frame / 20
	for i := 0; i < w*h/40; i++ {
		x := (i*73 + 17 - shift) % w
		if x < 0 {
			x += w
		}
		y := (i * 131) % h
		dst.SetColored(x, y, StarChar, col)
	}
}

func (w *World) drawOverlay(dst *core.Screen, v viewport) {
	boxes := w.Hitboxes()
	for _, c := range w.hazardClouds {
		drawOutline(dst, v, c.Bounds(), core.ColorMagenta)
	}
	drawOutline(dst, v, boxes.Damage, core.ColorRed)
	drawOutline(dst, v, boxes.Collect, core.ColorGreen)

	if aim := w.lastAim; aim != nil {
		ax, ay := v.cell(aim.X, aim.Y)
		dst.SetColored(ax, ay, AimChar, core.ColorBrightMagenta)
		dst.DrawHLine(0, ay, 2, '─', core.ColorBrightMagenta)
	}
}

// drawOutline frames a world box. Boxes one cell high collapse to a line.
func drawOutline(dst *core.Screen, v viewport, r core.Rect, col core.Color) {
	x, y, w, h := v.rect(r)
	if h < 2 || w < 2 {
		dst.DrawHLine(x, y, w, '─', col)
		return
	}
	dst.DrawBox(x, y, w, h, col)
}
