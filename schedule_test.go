package main

import (
	"context"
	"testing"
	"time"

	"github.com/intuitionamiga/VoiceCard/engine"
	"github.com/intuitionamiga/VoiceCard/link"
)

func TestSchedule_SortIsStable(t *testing.T) {
	var s Schedule
	s.Add(2*time.Second, []byte{3})
	s.Add(0, []byte{1})
	s.Add(2*time.Second, []byte{4})
	s.Add(0, []byte{2})
	s.Sort()
	for i, c := range s {
		if c.Cmd[0] != byte(i+1) {
			t.Fatalf("position %d: expected command %d, got %d", i, i+1, c.Cmd[0])
		}
	}
	if s.End() != 2*time.Second {
		t.Fatalf("expected end 2s, got %v", s.End())
	}
}

func TestBlockTime(t *testing.T) {
	if blockTime(0) != 0 {
		t.Fatalf("expected block 0 at 0, got %v", blockTime(0))
	}
	got := blockTime(engine.ControlRate)
	if d := got - time.Second; d < -time.Millisecond || d > time.Millisecond {
		t.Fatalf("expected about 1s after %d blocks, got %v", engine.ControlRate, got)
	}
}

func TestRenderSchedule_Length(t *testing.T) {
	s := noteSchedule(60, 100, 100*time.Millisecond)
	out := renderSchedule(NewVoiceHost(), s, 100*time.Millisecond)
	want := int(0.2*engine.SampleRate) / engine.BlockSize * engine.BlockSize
	if d := len(out) - want; d < -engine.BlockSize || d > engine.BlockSize {
		t.Fatalf("expected about %d samples, got %d", want, len(out))
	}
	if len(out)%engine.BlockSize != 0 {
		t.Fatalf("expected whole blocks, got %d samples", len(out))
	}
}

func TestRenderSchedule_NoteTiming(t *testing.T) {
	p, _ := loadPatch(HostConfig{Shape: engine.AlgoSaw})
	s := patchSchedule(&p)
	var note Schedule
	note.Add(50*time.Millisecond, link.AppendNoteOn(nil, 60<<7, 127, false))
	s = append(s, note...)
	out := renderSchedule(NewVoiceHost(), s, 50*time.Millisecond)

	onset := int(0.05*engine.SampleRate) / engine.BlockSize * engine.BlockSize
	for i := range onset - engine.BlockSize {
		if out[i] != engine.SilentSample {
			t.Fatalf("expected silence before the note, sample %d is %d", i, out[i])
		}
	}
	loud := false
	for _, v := range out[onset+engine.BlockSize:] {
		if v != engine.SilentSample {
			loud = true
			break
		}
	}
	if !loud {
		t.Fatal("expected sound after the note on")
	}
}

func TestPlaySchedule_SendsInOrder(t *testing.T) {
	h := NewVoiceHost()
	var s Schedule
	s.Add(2*time.Millisecond, link.AppendRelease(nil))
	s.Add(0, link.AppendNoteOn(nil, 60<<7, 100, false))

	if err := playSchedule(context.Background(), h, s, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := <-h.commands
	second := <-h.commands
	if first[0] != link.CmdNoteOn || second[0] != link.CmdRelease {
		t.Fatalf("expected note on then release, got %#x %#x", first[0], second[0])
	}
}

func TestPlaySchedule_Cancel(t *testing.T) {
	var s Schedule
	s.Add(time.Hour, link.AppendRelease(nil))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := playSchedule(ctx, NewVoiceHost(), s, 0); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
