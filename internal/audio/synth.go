package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/skyglider/internal/config"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a raw periodic wave. A zero duration never drains.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     Wave
	rate     beep.SampleRate
}

// NewOscillator creates a wave generator lasting d, or forever if d is 0.
func NewOscillator(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(d),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.duration > 0 && o.position >= o.duration {
			return i, i > 0
		}

		val := sample(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

func sample(w Wave, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// decay shapes a stream with an exponential ramp from start to floor over
// the given number of samples.
type decay struct {
	streamer beep.Streamer
	position int
	total    int
	start    float64
	rate     float64 // per-sample multiplier
}

// NewDecay fades s from gain start to 0.001 over d.
func NewDecay(s beep.Streamer, d time.Duration, start float64, rate beep.SampleRate) beep.Streamer {
	total := max(rate.N(d), 1)
	return &decay{
		streamer: s,
		total:    total,
		start:    start,
		rate:     math.Pow(0.001/start, 1/float64(total)),
	}
}

func (e *decay) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		g := e.start * math.Pow(e.rate, float64(e.position))
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *decay) Err() error { return e.streamer.Err() }

// tremolo gates a stream with a square LFO, dropping to depth on the low
// half of each cycle.
type tremolo struct {
	streamer beep.Streamer
	lfo      float64
	depth    float64
	phase    float64
	rate     beep.SampleRate
}

func (t *tremolo) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = t.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := 1.0
		if t.phase >= 0.5 {
			g = t.depth
		}
		samples[i][0] *= g
		samples[i][1] *= g
		t.phase += t.lfo / float64(t.rate)
		t.phase -= math.Floor(t.phase)
	}
	return n, ok
}

func (t *tremolo) Err() error { return t.streamer.Err() }

// newVolume wraps s with a linear gain. math.Log2(0) is -Inf, so zero gain
// is expressed as silence.
func newVolume(s beep.Streamer, gain float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	setGain(v, gain)
	return v
}

func setGain(v *effects.Volume, gain float64) {
	if gain <= 0 {
		v.Volume = 0
		v.Silent = true
		return
	}
	v.Volume = math.Log2(gain)
	v.Silent = false
}

// collectTone is a bright sine ping.
func collectTone(cfg config.AudioConfig, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(cfg.CollectFreq, cfg.CollectDuration, WaveSine, rate)
	return NewDecay(osc, cfg.CollectDuration, 0.9, rate)
}

// damageTone is a harsh square thud.
func damageTone(cfg config.AudioConfig, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(cfg.DamageFreq, cfg.DamageDuration, WaveSquare, rate)
	return NewDecay(osc, cfg.DamageDuration, 1, rate)
}

// engineHum is a pulsing sawtooth drone that never drains.
func engineHum(cfg config.AudioConfig, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(cfg.ThrustFreq, 0, WaveSaw, rate)
	pulsed := &tremolo{streamer: osc, lfo: 10, depth: 0.3, rate: rate}
	return newVolume(pulsed, cfg.ThrustVolume)
}
