// Package audio provides the sound collaborator of the game: a Sink
// interface the session controller calls, a silent implementation and a
// synthesizer built on beep.
package audio

// Sink receives gameplay sound cues.
type Sink interface {
	OnCollect()
	OnDamage()
	OnThrustStateChanged(on bool)
}

// Suspender is implemented by sinks that can pause output while the game
// is paused or hidden.
type Suspender interface {
	Suspend()
	Resume()
}

// VolumeControl is implemented by sinks with adjustable output.
type VolumeControl interface {
	Volume() float64 // 0..1
	SetVolume(v float64)
	Muted() bool
	SetMuted(m bool)
}

// Nop is a Sink that makes no sound.
type Nop struct{}

func (Nop) OnCollect()                {}
func (Nop) OnDamage()                 {}
func (Nop) OnThrustStateChanged(bool) {}

// Recorder is a Sink that records the cues it receives.
type Recorder struct {
	Collects  int
	Damages   int
	Thrust    []bool
	Suspended bool
	Suspends  int
	Resumes   int
}

func (r *Recorder) OnCollect()                   { r.Collects++ }
func (r *Recorder) OnDamage()                    { r.Damages++ }
func (r *Recorder) OnThrustStateChanged(on bool) { r.Thrust = append(r.Thrust, on) }

// Suspend implements Suspender.
func (r *Recorder) Suspend() {
	r.Suspended = true
	r.Suspends++
}

// Resume implements Suspender.
func (r *Recorder) Resume() {
	r.Suspended = false
	r.Resumes++
}
