package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/gogpu/dyncursor"
)

const sampleRate = beep.SampleRate(44100)

// tones plays short sine beeps. A nil *tones is silent.
type tones struct{}

func newTones() *tones {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		dyncursor.Logger().Warn("shaketerm: audio disabled", "err", err)
		return nil
	}
	return &tones{}
}

func (t *tones) play(freq int) {
	if t == nil {
		return
	}
	sine, err := generators.SineTone(sampleRate, float64(freq))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(60*time.Millisecond), sine))
}

func (t *tones) close() {
	if t == nil {
		return
	}
	speaker.Close()
}
