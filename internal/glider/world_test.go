package glider

import (
	"math"
	"testing"

	"github.com/vovakirdan/skyglider/internal/config"
	"github.com/vovakirdan/skyglider/internal/core"
)

func testConfig() *config.GliderConfig {
	cfg := config.DefaultGliderConfig()
	return &cfg
}

// newTestWorld creates a started world at the given difficulty.
func newTestWorld(cfg *config.GliderConfig, diff config.Difficulty) *World {
	dm := config.NewDifficultyManager(cfg.Difficulty)
	dm.Set(diff)
	w := NewWorld(cfg, dm, core.NewRand(1))
	w.Start(false)
	return w
}

func hasEvent(events []Event, e Event) bool {
	for _, got := range events {
		if got == e {
			return true
		}
	}
	return false
}

func TestPlayerUpdateClamps(t *testing.T) {
	cfg := testConfig()

	t.Run("ceiling", func(t *testing.T) {
		p := NewPlayer(cfg.Player, cfg.World.Height)
		p.Y = 1
		p.VY = -5
		p.Thrusting = true
		p.Update()
		if p.Y != 0 || p.VY != 0 {
			t.Errorf("after hitting ceiling Y=%v VY=%v, expected 0, 0", p.Y, p.VY)
		}
	})

	t.Run("floor", func(t *testing.T) {
		p := NewPlayer(cfg.Player, cfg.World.Height)
		p.Y = 559
		p.VY = 5
		p.Update()
		if p.Y != 560 || p.VY != 0 {
			t.Errorf("after hitting floor Y=%v VY=%v, expected 560, 0", p.Y, p.VY)
		}
	})

	t.Run("free flight", func(t *testing.T) {
		p := NewPlayer(cfg.Player, cfg.World.Height)
		p.Thrusting = true
		p.Update()
		// vy = -0.25 + 0.1
		if math.Abs(p.VY+0.15) > 1e-9 || math.Abs(p.Y-299.85) > 1e-9 {
			t.Errorf("Y=%v VY=%v after one thrusting tick", p.Y, p.VY)
		}
	})
}

func TestPlayerStaysInWorld(t *testing.T) {
	w := newTestWorld(testConfig(), config.DifficultyMedium)
	w.spawner = nil

	for i := 0; i < 2000 && !w.Over(); i++ {
		w.SetThrust(i%300 < 150)
		w.Step(nil)
		p := w.Player()
		if p.Y < 0 || p.Y > 560 {
			t.Fatalf("tick %d: player Y=%v outside [0, 560]", i, p.Y)
		}
	}
}

func TestStepNoopWhenNotRunning(t *testing.T) {
	cfg := testConfig()
	dm := config.NewDifficultyManager(cfg.Difficulty)
	w := NewWorld(cfg, dm, core.NewRand(1))

	res := w.Step(nil)
	if w.Frame() != 0 || len(w.Collectibles()) != 0 || res.GameOver {
		t.Errorf("Step on an unstarted world should do nothing, frame=%d", w.Frame())
	}

	w.Start(false)
	w.status.Fuel = 0.01
	res = w.Step(nil)
	if !res.GameOver || res.Reason != ReasonNoFuel {
		t.Fatalf("expected game over by fuel, got %+v", res)
	}
	frame := w.Frame()
	res = w.Step(nil)
	if w.Frame() != frame {
		t.Error("Step on an ended world should not advance the frame")
	}
	if !res.GameOver || res.Reason != ReasonNoFuel {
		t.Errorf("ended world should keep reporting its end, got %+v", res)
	}
}

func TestBallCulledWhenRightEdgeCrossesZero(t *testing.T) {
	w := newTestWorld(testConfig(), config.DifficultyMedium)
	w.spawner = nil
	w.collectibles = []*Ball{NewBall(820, 10, 10, KindCollectibleBall)}

	// x after n ticks is 820-3n; x+r <= 0 first holds at n = 277.
	for i := 0; i < 276; i++ {
		w.Step(nil)
	}
	if len(w.Collectibles()) != 1 {
		t.Fatalf("ball should still be present after 276 ticks (x=%v)", 820-3*276.0)
	}
	w.Step(nil)
	if len(w.Collectibles()) != 0 {
		t.Errorf("ball should be culled after 277 ticks")
	}
}

func TestCloudCulledByExtent(t *testing.T) {
	w := newTestWorld(testConfig(), config.DifficultyMedium)
	w.spawner = nil
	c := NewCloud(0, 10, false, 0.4, w.cfg.Entities.Puffs, core.NewRand(3))
	c.X = -c.Extent().Right() + 1 // one pixel of extent still visible
	w.ambientClouds = []*Cloud{c}

	w.Step(nil)
	// moved 1.2 px: right extent is now -0.2
	if len(w.AmbientClouds()) != 0 {
		t.Errorf("cloud with right extent <= 0 should be culled, bounds %+v", c.Bounds())
	}
}

func TestHardHazardBallScenario(t *testing.T) {
	cfg := testConfig()
	cfg.Player.Gravity = 0
	w := newTestWorld(cfg, config.DifficultyHard)
	w.spawner = nil
	w.hazardBalls = []*Ball{NewBall(900, 300, 12, KindHazardBall)}

	var res StepResult
	ticks := 0
	for ; ticks < 400 && w.Health() == 100; ticks++ {
		res = w.Step(nil)
	}

	if w.Health() != 80 {
		t.Fatalf("Health() = %v, expected exactly 80", w.Health())
	}
	if len(w.HazardBalls()) != 0 {
		t.Error("hazard ball should be removed in the same tick")
	}
	if !hasEvent(res.Events, EventHazardHit) {
		t.Errorf("expected a hazard hit event, got %v", res.Events)
	}
	// Grown box right edge is 190; the ball hits once x-12 < 190, at x=201.
	if ticks != 233 {
		t.Errorf("hit after %d ticks, expected 233", ticks)
	}
	if w.Status().Notice.Text != NoticeHazardBall {
		t.Errorf("notice = %q, expected hazard ball notice", w.Status().Notice.Text)
	}
}

func TestRenderHookSeesPreCollisionState(t *testing.T) {
	cfg := testConfig()
	cfg.Player.Gravity = 0
	w := newTestWorld(cfg, config.DifficultyMedium)
	w.spawner = nil
	w.collectibles = []*Ball{NewBall(150, 320, 10, KindCollectibleBall)}

	r := &recordingRenderer{}
	w.SetRenderer(r)
	res := w.Step(nil)

	if r.calls != 1 {
		t.Fatalf("renderer called %d times, expected 1", r.calls)
	}
	if r.collectibles != 1 {
		t.Errorf("renderer saw %d collectibles, expected 1 (before collision)", r.collectibles)
	}
	if len(w.Collectibles()) != 0 || !hasEvent(res.Events, EventCollect) {
		t.Error("ball should be collected after the render point")
	}
}

type recordingRenderer struct {
	calls        int
	collectibles int
}

func (r *recordingRenderer) Draw(w *World) {
	r.calls++
	r.collectibles = len(w.Collectibles())
}

type fixedPilot struct {
	cmd Command
	aim *core.Vec
}

func (p fixedPilot) Decide(View) Decision {
	return Decision{Thrust: p.cmd, Aim: p.aim}
}

func TestStepAppliesPilotDecision(t *testing.T) {
	w := newTestWorld(testConfig(), config.DifficultyMedium)
	w.spawner = nil
	aim := &core.Vec{X: 100, Y: 50}

	res := w.Step(fixedPilot{cmd: ThrustOn, aim: aim})
	if !w.Player().Thrusting {
		t.Error("ThrustOn should enable thrust")
	}
	if !hasEvent(res.Events, EventThrustChanged) {
		t.Error("expected a thrust change event")
	}
	if w.LastAim() != aim {
		t.Error("aim point should be kept for the overlay")
	}

	res = w.Step(fixedPilot{cmd: ThrustHold})
	if !w.Player().Thrusting || hasEvent(res.Events, EventThrustChanged) {
		t.Error("ThrustHold should leave thrust unchanged")
	}

	w.Step(fixedPilot{cmd: ThrustOff})
	if w.Player().Thrusting {
		t.Error("ThrustOff should disable thrust")
	}
}

func TestResetIsIdempotent(t *testing.T) {
	w := newTestWorld(testConfig(), config.DifficultyMedium)
	for i := 0; i < 300; i++ {
		w.SetThrust(true)
		w.Step(nil)
	}
	w.status.Health = 0
	w.Step(nil)
	if !w.Over() {
		t.Fatal("world should be over")
	}

	w.Reset()
	first := snapshot(w)
	w.Reset()
	second := snapshot(w)

	if first != second {
		t.Errorf("Reset twice differs: %+v vs %+v", first, second)
	}
	expected := worldSnapshot{score: 0, health: 100, fuel: 100, frame: 0, y: 300}
	if first != expected {
		t.Errorf("Reset() state = %+v, expected %+v", first, expected)
	}
}

type worldSnapshot struct {
	score         int
	health, fuel  float64
	frame         int
	y             float64
	entities      int
	started, over bool
	reason        EndReason
}

func snapshot(w *World) worldSnapshot {
	return worldSnapshot{
		score:    w.Score(),
		health:   w.Health(),
		fuel:     w.Fuel(),
		frame:    w.Frame(),
		y:        w.Player().Y,
		entities: len(w.collectibles) + len(w.hazardBalls) + len(w.ambientClouds) + len(w.hazardClouds),
		started:  w.Started(),
		over:     w.Over(),
		reason:   w.Reason(),
	}
}

func TestWorldDeterminism(t *testing.T) {
	// Same seed should produce identical sessions
	run := func() worldSnapshot {
		cfg := testConfig()
		dm := config.NewDifficultyManager(cfg.Difficulty)
		w := NewWorld(cfg, dm, core.NewRand(12345))
		w.Start(false)
		for i := 0; i < 800 && !w.Over(); i++ {
			w.SetThrust(i%90 < 40)
			w.Step(nil)
		}
		return snapshot(w)
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("same seed produced different sessions: %+v vs %+v", a, b)
	}
}

func TestStatsStayInRange(t *testing.T) {
	w := newTestWorld(testConfig(), config.DifficultyHard)
	for i := 0; i < 5000 && !w.Over(); i++ {
		w.SetThrust(i%50 < 30)
		w.Step(nil)
		if h := w.Health(); h < 0 || h > 100 {
			t.Fatalf("tick %d: health %v out of range", i, h)
		}
		if f := w.Fuel(); f < 0 || f > 100 {
			t.Fatalf("tick %d: fuel %v out of range", i, f)
		}
	}
}

func TestRenderDrawsGlider(t *testing.T) {
	w := newTestWorld(testConfig(), config.DifficultyMedium)
	w.spawner = nil
	w.collectibles = []*Ball{NewBall(400, 100, 10, KindCollectibleBall)}
	dst := core.NewScreen(80, 24)

	w.Render(dst, RenderOptions{})

	// player rect 100..180 x 300..340 maps to cells x 10..18, y 12..13
	if dst.Get(12, 12) != BodyChar {
		t.Errorf("expected glider body at (12, 12), got %q", dst.Get(12, 12))
	}
	if dst.GetCell(40, 4).Rune != CollectibleChar {
		t.Errorf("expected collectible at (40, 4), got %q", dst.Get(40, 4))
	}

	w.night = true
	w.Render(dst, RenderOptions{})
	if dst.GetCell(0, 23).Color != NightPalette.Sky && dst.Get(0, 23) != StarChar {
		t.Error("night render should use the night sky color")
	}
}

func TestRenderDevOverlay(t *testing.T) {
	w := newTestWorld(testConfig(), config.DifficultyMedium)
	w.spawner = nil

	// The player is one cell high at 80x24, so its hitbox is a line.
	dst := core.NewScreen(80, 24)
	w.Render(dst, RenderOptions{DevOverlay: true})
	if c := dst.GetCell(12, 12); c.Rune != '─' || c.Color != core.ColorGreen {
		t.Errorf("overlay at (12, 12) = %q/%v, expected a green hitbox line", c.Rune, c.Color)
	}

	// At 80x60 the player spans rows 30..33 and gets a full box.
	dst = core.NewScreen(80, 60)
	w.Render(dst, RenderOptions{DevOverlay: true})
	if dst.Get(10, 30) != '┌' || dst.Get(17, 33) != '┘' {
		t.Errorf("hitbox corners = %q %q, expected a box", dst.Get(10, 30), dst.Get(17, 33))
	}

	w.Render(dst, RenderOptions{})
	if dst.Get(10, 30) == '┌' {
		t.Error("hitbox drawn with the overlay off")
	}
}
