package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// footsteps plays a short click for each footfall. Initialization failure
// leaves the game silent rather than dead.
type footsteps struct {
	ok   bool
	rate beep.SampleRate
}

func newFootsteps(mute bool) *footsteps {
	f := &footsteps{rate: beep.SampleRate(44100)}
	if mute {
		return f
	}
	if err := speaker.Init(f.rate, f.rate.N(time.Second/10)); err != nil {
		return f
	}
	f.ok = true
	return f
}

// play emits a short low tone.
func (f *footsteps) play() {
	if !f.ok {
		return
	}
	tone, err := generators.SineTone(f.rate, 220)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(f.rate.N(40*time.Millisecond), tone))
}
