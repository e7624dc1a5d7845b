package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/intuitionamiga/VoiceCard/engine"
)

func TestParseFlags_Defaults(t *testing.T) {
	cfg, err := parseFlags([]string{"-wav", "out.wav"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Note != 60 || cfg.Velocity != 100 || cfg.Shape != engine.AlgoSaw {
		t.Fatalf("expected note 60 velocity 100 saw, got %d %d %v", cfg.Note, cfg.Velocity, cfg.Shape)
	}
	if cfg.MIDIChannel != midiAnyChannel || cfg.OutputRate != defaultOutputRate {
		t.Fatalf("expected omni channel at %d Hz, got %d at %d", defaultOutputRate, cfg.MIDIChannel, cfg.OutputRate)
	}
}

func TestParseFlags_KeysImpliesPlay(t *testing.T) {
	cfg, err := parseFlags([]string{"-keys"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Play {
		t.Fatal("expected -keys to enable playback")
	}
}

func TestParseFlags_Shape(t *testing.T) {
	cfg, err := parseFlags([]string{"-analyze", "-shape", "cz_saw_lp"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Shape != engine.AlgoCzSawLP {
		t.Fatalf("expected %v, got %v", engine.AlgoCzSawLP, cfg.Shape)
	}
}

func TestParseFlags_Rejects(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"nothing to do", nil, "nothing to do"},
		{"two sources", []string{"-play", "-script", "a.lua", "-midi", "a.mid"}, "at most one"},
		{"keys offline", []string{"-keys", "-wav", "a.wav"}, "offline"},
		{"note", []string{"-play", "-note", "121"}, "note out of range"},
		{"velocity", []string{"-play", "-velocity", "256"}, "velocity out of range"},
		{"seconds", []string{"-play", "-seconds", "0"}, "seconds"},
		{"channel", []string{"-play", "-midi-channel", "16"}, "channel"},
		{"rate", []string{"-play", "-rate", "0"}, "rate"},
		{"shape", []string{"-play", "-shape", "kazoo"}, "unknown oscillator shape"},
		{"unknown flag", []string{"-bogus"}, "bogus"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFlags(tt.args)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestParseFlags_Help(t *testing.T) {
	stdout := os.Stdout
	devNull, err := os.Open(os.DevNull)
	if err != nil {
		t.Fatal(err)
	}
	defer devNull.Close()
	os.Stdout = devNull
	defer func() { os.Stdout = stdout }()

	if _, err := parseFlags([]string{"-h"}); err != flag.ErrHelp {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
}

func TestLoadPatch_File(t *testing.T) {
	dir := t.TempDir()
	want := engine.DefaultPatch()
	want[engine.PatchOsc1] = byte(engine.AlgoFM)
	path := filepath.Join(dir, "fm.bin")
	if err := os.WriteFile(path, want[:], 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := loadPatch(HostConfig{PatchFile: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatal("loaded patch differs from the file")
	}

	short := filepath.Join(dir, "short.bin")
	if err := os.WriteFile(short, want[:10], 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadPatch(HostConfig{PatchFile: short}); err == nil {
		t.Fatal("expected a short patch file to be rejected")
	}
}

func TestLoadPatch_DefaultUsesShape(t *testing.T) {
	p, err := loadPatch(HostConfig{Shape: engine.AlgoVowel})
	if err != nil {
		t.Fatal(err)
	}
	if got := engine.Algorithm(p[engine.PatchOsc1]); got != engine.AlgoVowel {
		t.Fatalf("expected osc1 %v, got %v", engine.AlgoVowel, got)
	}
}

func TestRun_WritesWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c4.wav")
	cfg, err := parseFlags([]string{"-wav", path, "-seconds", "0.25"})
	if err != nil {
		t.Fatal(err)
	}

	stdout := os.Stdout
	devNull, _ := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	os.Stdout = devNull
	err = run(cfg)
	os.Stdout = stdout
	devNull.Close()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, rate, err := readWAVFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if rate != engine.SampleRate {
		t.Fatalf("expected rate %d, got %d", engine.SampleRate, rate)
	}
	if len(data) < engine.SampleRate/4 {
		t.Fatalf("expected at least %d samples, got %d", engine.SampleRate/4, len(data))
	}
}
