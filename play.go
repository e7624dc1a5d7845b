// play.go - Real-time playback: render loop, audio device and producers

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/VoiceCard
License: GPLv3 or later
*/

package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/intuitionamiga/VoiceCard/engine"
)

const (
	dacRingSize    = 2048
	renderInterval = time.Millisecond
)

// producer writes link commands into the host until it is done or ctx is
// cancelled. Returning ends playback.
type producer func(ctx context.Context, h *VoiceHost) error

// renderLoop owns the voice: it keeps the DAC ring topped up with blocks
// until ctx is cancelled.
func renderLoop(ctx context.Context, h *VoiceHost, dac *engine.RingBuffer) error {
	ticker := time.NewTicker(renderInterval)
	defer ticker.Stop()

	var block [engine.BlockSize]uint8
	for {
		for dac.Writable() >= engine.BlockSize {
			h.Render(block[:])
			for _, s := range block {
				dac.Write(s)
			}
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// runRealtime plays h through the sound card at outputRate while produce
// drives it.
func runRealtime(ctx context.Context, h *VoiceHost, outputRate int, produce producer) error {
	player, err := NewOtoPlayer(outputRate)
	if err != nil {
		return fmt.Errorf("audio init: %w", err)
	}
	defer player.Close()

	dac := engine.NewRingBuffer(dacRingSize)
	player.SetupPlayer(NewResampler(newDacRing(dac), engine.SampleRate, outputRate))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return renderLoop(gctx, h, dac)
	})
	g.Go(func() error {
		defer cancel()
		return produce(gctx, h)
	})

	player.Start()
	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// scheduleProducer plays a fixed schedule.
func scheduleProducer(s Schedule, tail time.Duration) producer {
	return func(ctx context.Context, h *VoiceHost) error {
		return playSchedule(ctx, h, s, tail)
	}
}
