package bot

import (
	"math"
	"testing"

	"github.com/vovakirdan/skyglider/internal/config"
	"github.com/vovakirdan/skyglider/internal/core"
	"github.com/vovakirdan/skyglider/internal/glider"
)

var _ glider.Pilot = (*Pilot)(nil)

// baseView puts the player at its start position (center y=320) in an
// empty 800x600 world.
func baseView() glider.View {
	return glider.View{
		Width:  800,
		Height: 600,
		Player: core.NewRect(100, 300, 80, 40),
	}
}

func TestSteerDeadZone(t *testing.T) {
	tests := []struct {
		name    string
		targetY float64
		want    glider.Command
	}{
		{"target well above", 200, glider.ThrustOn},
		{"target well below", 400, glider.ThrustOff},
		{"inside dead zone above", 316, glider.ThrustHold},
		{"inside dead zone below", 324, glider.ThrustHold},
		{"dead zone edge", 315, glider.ThrustHold},
		{"just past dead zone", 314.9, glider.ThrustOn},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := steer(baseView(), tc.targetY, 0, DefaultTuning())
			if d.Thrust != tc.want {
				t.Errorf("steer(%v) = %v, expected %v", tc.targetY, d.Thrust, tc.want)
			}
			if d.Aim == nil || d.Aim.Y != tc.targetY {
				t.Errorf("aim = %+v, expected y=%v", d.Aim, tc.targetY)
			}
		})
	}
}

func TestUnknownPolicy(t *testing.T) {
	for _, p := range []Policy{0, 5, -1} {
		d := Decide(p, baseView(), DefaultTuning())
		if d.Thrust != glider.ThrustOff || d.Aim != nil {
			t.Errorf("Decide(%v) = %+v, expected thrust off and no aim", p, d)
		}
	}
}

func TestEmptyWorldHoldsCenter(t *testing.T) {
	v := baseView()
	v.Player = core.NewRect(100, 280, 80, 40) // center exactly at 300

	for _, p := range Policies {
		t.Run(p.String(), func(t *testing.T) {
			d := Decide(p, v, DefaultTuning())
			if d.Thrust != glider.ThrustHold {
				t.Errorf("%v in an empty world at center: %v, expected hold", p, d.Thrust)
			}
			if d.Aim == nil || d.Aim.Y != 300 {
				t.Errorf("%v aim = %+v, expected world center", p, d.Aim)
			}
		})
	}
}

func TestCollectorChasesNearestAhead(t *testing.T) {
	v := baseView()
	v.Collectibles = []core.Circle{
		{X: 600, Y: 500, Radius: 10},
		{X: 300, Y: 100, Radius: 10}, // nearest ahead
		{X: 20, Y: 550, Radius: 10},  // behind, beyond tolerance
	}
	v.HazardBalls = []core.Circle{{X: 250, Y: 200, Radius: 12}}

	d := Decide(PolicyCollector, v, DefaultTuning())
	if d.Aim == nil || d.Aim.Y != 100 {
		t.Fatalf("aim = %+v, expected the ball at y=100", d.Aim)
	}
	if d.Thrust != glider.ThrustOn {
		t.Errorf("thrust = %v, expected on to climb", d.Thrust)
	}
}

func TestAheadTolerance(t *testing.T) {
	tu := DefaultTuning()
	v := baseView()
	// leading edge is x=180

	if !ahead(v, 180-40, tu) {
		t.Error("hazard overlapping the leading edge by 40 should count as ahead")
	}
	if ahead(v, 180-50, tu) {
		t.Error("hazard at exactly -tolerance should not count")
	}
	if !ahead(v, 181, tu) {
		t.Error("hazard in front should count")
	}
}

func TestHazardOverlappingPlayerStillRegisters(t *testing.T) {
	v := baseView()
	v.Player = core.NewRect(100, 250, 80, 40) // center y=270
	cloud := core.NewRect(120, 280, 210, 80)  // left edge behind the leading edge by 60
	v.HazardClouds = []core.Rect{cloud}

	tests := []struct {
		policy  Policy
		targetY float64
		want    glider.Command
	}{
		{PolicySmart, 230, glider.ThrustOn},   // top edge 280 - margin 30 - half height 20
		{PolicyAvoider, 215, glider.ThrustOn}, // top edge 280 - margin 45 - half height 20
		{PolicyKamikaze, 320, glider.ThrustOff},
	}

	for _, tc := range tests {
		t.Run(tc.policy.String(), func(t *testing.T) {
			d := Decide(tc.policy, v, DefaultTuning())
			if d.Aim == nil || d.Aim.Y != tc.targetY {
				t.Fatalf("aim = %+v, expected y=%v", d.Aim, tc.targetY)
			}
			if d.Thrust != tc.want {
				t.Errorf("thrust = %v, expected %v", d.Thrust, tc.want)
			}
		})
	}
}

func TestPassedHazardIgnored(t *testing.T) {
	tu := DefaultTuning()
	v := baseView()
	// tail is x=100

	tests := []struct {
		name  string
		cloud core.Rect
		seen  bool
	}{
		{"covering the tail", core.NewRect(40, 280, 100, 80), true},
		{"just behind the tail", core.NewRect(0, 280, 60, 80), true},
		{"past the tolerance", core.NewRect(0, 280, 50, 80), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v.HazardClouds = []core.Rect{tc.cloud}
			_, ok := nearestHazard(v, tu)
			if ok != tc.seen {
				t.Errorf("nearestHazard() found = %v, expected %v", ok, tc.seen)
			}
		})
	}
}

// simulate applies one tick of player physics for the decision and returns
// the new center y.
func simulate(v glider.View, d glider.Decision, vy float64) float64 {
	cfg := config.DefaultGliderConfig()
	p := glider.NewPlayer(cfg.Player, v.Height)
	p.Y = v.Player.Y
	p.VY = vy
	p.Thrusting = d.Thrust == glider.ThrustOn
	p.Update()
	return p.Center().Y
}

func TestSmartEvadesHazardCloud(t *testing.T) {
	tests := []struct {
		name    string
		player  core.Rect
		cloud   core.Rect
		targetY float64
	}{
		// top edge 280 is closer to center 320 than bottom 370
		{"over the top", core.NewRect(100, 300, 80, 40), core.NewRect(250, 280, 150, 90), 230},
		// bottom edge 310 is closer
		{"under the bottom", core.NewRect(100, 300, 80, 40), core.NewRect(250, 250, 150, 60), 360},
		// top edge would leave the world, take the bottom
		{"fallback at the ceiling", core.NewRect(100, 0, 80, 40), core.NewRect(250, 10, 150, 80), 140},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := baseView()
			v.Player = tc.player
			v.HazardClouds = []core.Rect{tc.cloud}
			v.Collectibles = []core.Circle{{X: 300, Y: 590, Radius: 10}} // evasion overrides collection

			d := Decide(PolicySmart, v, DefaultTuning())
			if d.Aim == nil || math.Abs(d.Aim.Y-tc.targetY) > 1e-9 {
				t.Fatalf("aim = %+v, expected evasion point y=%v", d.Aim, tc.targetY)
			}

			before := math.Abs(tc.player.Center().Y - tc.targetY)
			after := math.Abs(simulate(v, d, 0) - tc.targetY)
			if after >= before {
				t.Errorf("thrust %v moved away from the evasion point: %v -> %v", d.Thrust, before, after)
			}
		})
	}
}

func TestSmartCollectsOnlyAlongClearCorridor(t *testing.T) {
	v := baseView()
	v.Collectibles = []core.Circle{
		{X: 400, Y: 500, Radius: 10}, // nearer, but a hazard sits in its corridor
		{X: 560, Y: 150, Radius: 10},
	}
	// Outside the danger radius (gap ~267) yet inside the first corridor.
	v.HazardBalls = []core.Circle{{X: 400, Y: 520, Radius: 12}}

	d := Decide(PolicySmart, v, DefaultTuning())
	if d.Aim == nil || d.Aim.Y != 150 {
		t.Errorf("aim = %+v, expected the ball with a clear corridor at y=150", d.Aim)
	}
}

func TestSmartIgnoresCollectiblesOutOfReach(t *testing.T) {
	v := baseView()
	v.Player = core.NewRect(100, 280, 80, 40)
	v.Collectibles = []core.Circle{{X: 700, Y: 100, Radius: 10}} // 510 ahead

	d := Decide(PolicySmart, v, DefaultTuning())
	if d.Aim == nil || d.Aim.Y != 300 {
		t.Errorf("aim = %+v, expected center fallback", d.Aim)
	}

	d = Decide(PolicyCollector, v, DefaultTuning())
	if d.Aim == nil || d.Aim.Y != 100 {
		t.Errorf("collector aim = %+v, expected the far ball", d.Aim)
	}
}

func TestAvoiderUsesLargerRadius(t *testing.T) {
	v := baseView()
	v.Player = core.NewRect(100, 280, 80, 40)
	// gap from the leading edge is 300: inside 360, outside 260
	v.HazardBalls = []core.Circle{{X: 492, Y: 300, Radius: 12}}

	smart := Decide(PolicySmart, v, DefaultTuning())
	if smart.Aim == nil || smart.Aim.Y != 300 {
		t.Errorf("smart aim = %+v, expected to ignore the distant hazard", smart.Aim)
	}

	avoid := Decide(PolicyAvoider, v, DefaultTuning())
	if avoid.Aim == nil || avoid.Aim.Y == 300 {
		t.Fatalf("avoider aim = %+v, expected an evasion point", avoid.Aim)
	}
	// hazard spans 288..312, equidistant edges prefer the top: 288 - 45 - 20
	if avoid.Aim.Y != 223 {
		t.Errorf("avoider aim y = %v, expected 223", avoid.Aim.Y)
	}
}

func TestAvoiderNeverCollects(t *testing.T) {
	v := baseView()
	v.Player = core.NewRect(100, 280, 80, 40)
	v.Collectibles = []core.Circle{{X: 300, Y: 100, Radius: 10}}

	d := Decide(PolicyAvoider, v, DefaultTuning())
	if d.Aim == nil || d.Aim.Y != 300 {
		t.Errorf("aim = %+v, expected center", d.Aim)
	}
}

func TestKamikazeTargetsNearestHazard(t *testing.T) {
	v := baseView()
	v.HazardBalls = []core.Circle{{X: 700, Y: 100, Radius: 12}}
	v.HazardClouds = []core.Rect{core.NewRect(300, 450, 100, 60)}

	d := Decide(PolicyKamikaze, v, DefaultTuning())
	if d.Aim == nil || d.Aim.Y != 480 {
		t.Fatalf("aim = %+v, expected the cloud center y=480", d.Aim)
	}
	if d.Thrust != glider.ThrustOff {
		t.Errorf("thrust = %v, expected off to dive", d.Thrust)
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{"1", PolicyCollector, false},
		{"2", PolicySmart, false},
		{"avoider", PolicyAvoider, false},
		{" Kamikaze ", PolicyKamikaze, false},
		{"0", 0, true},
		{"5", 0, true},
		{"coward", 0, true},
	}

	for _, tc := range tests {
		got, err := ParsePolicy(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePolicy(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePolicy(%q) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}

func TestPilotFliesWorld(t *testing.T) {
	for _, p := range Policies {
		t.Run(p.String(), func(t *testing.T) {
			cfg := config.DefaultGliderConfig()
			dm := config.NewDifficultyManager(cfg.Difficulty)
			w := glider.NewWorld(&cfg, dm, core.NewRand(7))
			w.Start(false)
			pilot := NewPilot(p, TuningFrom(cfg.Bot))

			for i := 0; i < 3000 && !w.Over(); i++ {
				w.Step(pilot)
				if y := w.Player().Y; y < 0 || y > 560 {
					t.Fatalf("tick %d: player y %v outside the world", i, y)
				}
			}
		})
	}
}
