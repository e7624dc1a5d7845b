// schedule.go - Timed link command lists, rendered offline or in real time

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
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/intuitionamiga/VoiceCard/engine"
	"github.com/intuitionamiga/VoiceCard/link"
)

// timedCommand is one link command due at a point in time.
type timedCommand struct {
	At  time.Duration
	Cmd []byte
}

// Schedule is a list of link commands ordered by time.
type Schedule []timedCommand

func (s *Schedule) Add(at time.Duration, cmd []byte) {
	*s = append(*s, timedCommand{At: at, Cmd: cmd})
}

// Sort orders commands by time, keeping insertion order for equal times.
func (s Schedule) Sort() {
	slices.SortStableFunc(s, func(a, b timedCommand) int {
		return cmp.Compare(a.At, b.At)
	})
}

// End is the time of the last command.
func (s Schedule) End() time.Duration {
	var end time.Duration
	for _, c := range s {
		end = max(end, c.At)
	}
	return end
}

// blockTime is the start time of block b.
func blockTime(b int) time.Duration {
	return time.Duration(int64(b) * engine.BlockSize * int64(time.Second) / engine.SampleRate)
}

// renderSchedule plays s through h as fast as possible and returns the DAC
// output. Commands are fed before the first block that starts at or after
// their time. Rendering continues for tail past the last command.
func renderSchedule(h *VoiceHost, s Schedule, tail time.Duration) []uint8 {
	s.Sort()
	end := s.End() + tail
	blocks := int(int64(end) * engine.SampleRate / (engine.BlockSize * int64(time.Second)))
	out := make([]uint8, blocks*engine.BlockSize)

	next := 0
	for b := range blocks {
		now := blockTime(b)
		for next < len(s) && s[next].At <= now {
			h.Feed(s[next].Cmd)
			next++
		}
		h.Render(out[b*engine.BlockSize : (b+1)*engine.BlockSize])
	}
	return out
}

// playSchedule sends the commands of s to h at wall clock time, then waits
// for tail. It returns early with the context error when cancelled.
func playSchedule(ctx context.Context, h *VoiceHost, s Schedule, tail time.Duration) error {
	s.Sort()
	start := time.Now()
	timer := time.NewTimer(0)
	defer timer.Stop()
	<-timer.C

	wait := func(at time.Duration) error {
		if d := at - time.Since(start); d > 0 {
			timer.Reset(d)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
		}
		return ctx.Err()
	}

	for _, c := range s {
		if err := wait(c.At); err != nil {
			return err
		}
		h.Send(c.Cmd)
	}
	return wait(s.End() + tail)
}

// patchSchedule loads p with a bulk send at time zero.
func patchSchedule(p *engine.Patch) Schedule {
	var s Schedule
	s.Add(0, link.AppendBulkPatch(nil, p))
	return s
}

// noteSchedule holds one note for hold, then releases it.
func noteSchedule(note uint8, velocity uint8, hold time.Duration) Schedule {
	var s Schedule
	s.Add(0, link.AppendNoteOn(nil, uint16(note)<<7, velocity, false))
	s.Add(hold, link.AppendRelease(nil))
	return s
}
