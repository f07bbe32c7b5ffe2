package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/skyglider/internal/config"
	"github.com/vovakirdan/skyglider/internal/core"
)

// SoundManager synthesizes the game's effects and engine hum and plays
// them through the system speaker. Until Init succeeds it keeps its state
// but produces no sound.
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	rate        beep.SampleRate
	mixer       *beep.Mixer
	engine      *beep.Ctrl
	master      *effects.Volume
	out         *beep.Ctrl
	volume      float64
	muted       bool
	initialized bool
}

var (
	_ Sink          = (*SoundManager)(nil)
	_ Suspender     = (*SoundManager)(nil)
	_ VolumeControl = (*SoundManager)(nil)
)

// NewSoundManager builds the mixer graph without touching the speaker.
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = beep.SampleRate(44100)
	}

	sm := &SoundManager{
		cfg:    cfg,
		rate:   rate,
		mixer:  &beep.Mixer{},
		volume: core.ClampF(cfg.Volume, 0, 1),
		muted:  cfg.Muted,
	}
	sm.engine = &beep.Ctrl{Streamer: engineHum(cfg, rate), Paused: true}
	sm.mixer.Add(sm.engine)
	sm.master = newVolume(sm.mixer, sm.gain())
	sm.out = &beep.Ctrl{Streamer: sm.master}
	return sm
}

// Init opens the speaker and starts playback.
func (sm *SoundManager) Init() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sm.rate, sm.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.out)
	sm.initialized = true
	return nil
}

// Close stops playback and releases the speaker.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// Streamer returns the final output stream.
func (sm *SoundManager) Streamer() beep.Streamer {
	return sm.out
}

// update runs f with the speaker locked while playback is live.
func (sm *SoundManager) update(f func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	f()
}

// gain maps the volume setting to a squared linear gain.
func (sm *SoundManager) gain() float64 {
	if sm.muted {
		return 0
	}
	return sm.volume * sm.volume
}

// OnCollect plays the collect ping.
func (sm *SoundManager) OnCollect() {
	sm.update(func() {
		if !sm.out.Paused {
			sm.mixer.Add(collectTone(sm.cfg, sm.rate))
		}
	})
}

// OnDamage plays the damage thud.
func (sm *SoundManager) OnDamage() {
	sm.update(func() {
		if !sm.out.Paused {
			sm.mixer.Add(damageTone(sm.cfg, sm.rate))
		}
	})
}

// OnThrustStateChanged starts or stops the engine hum.
func (sm *SoundManager) OnThrustStateChanged(on bool) {
	sm.update(func() { sm.engine.Paused = !on })
}

// Suspend pauses all output.
func (sm *SoundManager) Suspend() {
	sm.update(func() { sm.out.Paused = true })
}

// Resume continues output after Suspend.
func (sm *SoundManager) Resume() {
	sm.update(func() { sm.out.Paused = false })
}

// Volume returns the volume setting in [0, 1].
func (sm *SoundManager) Volume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume
}

// SetVolume sets the volume, clamped to [0, 1].
func (sm *SoundManager) SetVolume(v float64) {
	sm.update(func() {
		sm.volume = core.ClampF(v, 0, 1)
		setGain(sm.master, sm.gain())
	})
}

// Muted reports whether output is muted.
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// SetMuted mutes or unmutes output.
func (sm *SoundManager) SetMuted(m bool) {
	sm.update(func() {
		sm.muted = m
		setGain(sm.master, sm.gain())
	})
}

// Playing reports whether the engine hum is on.
func (sm *SoundManager) Playing() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return !sm.engine.Paused
}

// Suspended reports whether output is paused.
func (sm *SoundManager) Suspended() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.out.Paused
}

// Pending returns the number of streams in the mixer, engine included.
func (sm *SoundManager) Pending() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.mixer.Len()
}
