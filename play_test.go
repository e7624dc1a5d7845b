package main

import (
	"context"
	"testing"
	"time"

	"github.com/intuitionamiga/VoiceCard/engine"
	"github.com/intuitionamiga/VoiceCard/link"
)

func TestRenderLoop_FillsRingAndStops(t *testing.T) {
	h := newSawHost(t, nil)
	h.Send(link.AppendNoteOn(nil, 60<<7, 100, false))
	dac := engine.NewRingBuffer(256)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- renderLoop(ctx, h, dac) }()

	deadline := time.Now().Add(time.Second)
	for dac.Writable() >= engine.BlockSize && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	cancel()
	if err := <-done; err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if dac.Writable() >= engine.BlockSize {
		t.Fatalf("expected a full ring, %d bytes free", dac.Writable())
	}
	if h.Blocks() == 0 {
		t.Fatal("expected blocks to be rendered")
	}
}

func TestScheduleProducer_EndsAfterTail(t *testing.T) {
	h := NewVoiceHost()
	s := noteSchedule(60, 100, time.Millisecond)
	start := time.Now()
	if err := scheduleProducer(s, 5*time.Millisecond)(context.Background(), h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 6*time.Millisecond {
		t.Fatalf("expected at least 6ms, took %v", elapsed)
	}
	if len(h.commands) != 2 {
		t.Fatalf("expected 2 queued commands, got %d", len(h.commands))
	}
}
