package main

import (
	"path/filepath"
	"testing"

	"github.com/intuitionamiga/VoiceCard/engine"
)

func TestWriteWAV_RoundTrip(t *testing.T) {
	samples := make([]uint8, 1000)
	for i := range samples {
		samples[i] = uint8(i * 7)
	}
	path := filepath.Join(t.TempDir(), "ramp.wav")
	if err := writeWAVFile(path, samples, engine.SampleRate); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, rate, err := readWAVFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate != engine.SampleRate {
		t.Fatalf("expected rate %d, got %d", engine.SampleRate, rate)
	}
	if len(data) != len(samples) {
		t.Fatalf("expected %d samples, got %d", len(samples), len(data))
	}
	for i, s := range samples {
		if data[i] != dacToPCM16(s) {
			t.Fatalf("sample %d: expected %d, got %d", i, dacToPCM16(s), data[i])
		}
	}
}

func TestDacToPCM16(t *testing.T) {
	tests := []struct {
		in   uint8
		want int
	}{
		{engine.SilentSample, 0},
		{0, -32768},
		{255, 32512},
	}
	for _, tt := range tests {
		if got := dacToPCM16(tt.in); got != tt.want {
			t.Errorf("dacToPCM16(%d): expected %d, got %d", tt.in, tt.want, got)
		}
	}
}

func TestReadWAVFile_Missing(t *testing.T) {
	if _, _, err := readWAVFile(filepath.Join(t.TempDir(), "none.wav")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
