package main

import (
	"math"
	"testing"
	"time"

	"github.com/intuitionamiga/VoiceCard/engine"
)

func sineSamples(freq float64, n int) []uint8 {
	out := make([]uint8, n)
	for i := range out {
		out[i] = uint8(128 + 100*math.Sin(2*math.Pi*freq*float64(i)/engine.SampleRate))
	}
	return out
}

func TestEstimateFundamental_Sine(t *testing.T) {
	for _, freq := range []float64{110, 440, 1250.5} {
		est, err := estimateFundamental(sineSamples(freq, 1<<14), engine.SampleRate)
		if err != nil {
			t.Fatalf("%.1f Hz: unexpected error: %v", freq, err)
		}
		if math.Abs(est.Frequency-freq) > freq*0.005 {
			t.Errorf("expected %.1f Hz, got %.2f", freq, est.Frequency)
		}
	}
}

func TestEstimateFundamental_RenderedC4(t *testing.T) {
	p, err := loadPatch(HostConfig{Shape: engine.AlgoSaw})
	if err != nil {
		t.Fatal(err)
	}
	s := patchSchedule(&p)
	s = append(s, noteSchedule(60, 100, time.Second)...)
	samples := renderSchedule(NewVoiceHost(), s, 0)

	est, err := estimateFundamental(samples, engine.SampleRate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if est.Note != "C4" {
		t.Fatalf("expected C4, got %v", est)
	}
	if math.Abs(est.Cents) > 25 {
		t.Errorf("expected within 25 cents of C4, got %+.1f", est.Cents)
	}
}

func TestEstimateFundamental_Errors(t *testing.T) {
	if _, err := estimateFundamental(make([]uint8, 10), engine.SampleRate); err == nil {
		t.Error("expected an error for a short signal")
	}
	silent := make([]uint8, 4096)
	for i := range silent {
		silent[i] = engine.SilentSample
	}
	if _, err := estimateFundamental(silent, engine.SampleRate); err == nil {
		t.Error("expected an error for silence")
	}
}

func TestNearestNote(t *testing.T) {
	tests := []struct {
		freq float64
		name string
	}{
		{440, "A4"},
		{261.63, "C4"},
		{27.5, "A0"},
		{4186.01, "C8"},
		{466.16, "A#4"},
	}
	for _, tt := range tests {
		name, cents := nearestNote(tt.freq)
		if name != tt.name {
			t.Errorf("%.2f Hz: expected %s, got %s", tt.freq, tt.name, name)
		}
		if math.Abs(cents) > 1 {
			t.Errorf("%.2f Hz: expected about 0 cents, got %.2f", tt.freq, cents)
		}
	}
}
