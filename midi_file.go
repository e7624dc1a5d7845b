// midi_file.go - Standard MIDI File playback through the link encoder

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
	"fmt"
	"slices"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/intuitionamiga/VoiceCard/engine"
	"github.com/intuitionamiga/VoiceCard/link"
)

// MIDI controllers mapped to modulation sources.
const (
	ccModWheel   = 1
	ccBreath     = 2
	ccExpression = 11
)

// midiAnyChannel accepts events from every channel.
const midiAnyChannel = -1

type midiEvent struct {
	at  time.Duration
	msg midi.Message
}

// monoNotes is a last-note priority key stack, the way a single voice sees
// a keyboard.
type monoNotes struct {
	held []uint8
}

func (m *monoNotes) press(key uint8) (legato bool) {
	legato = len(m.held) > 0
	m.held = slices.DeleteFunc(m.held, func(k uint8) bool { return k == key })
	m.held = append(m.held, key)
	return legato
}

// lift removes key. It reports the key to return to when key was sounding
// and another is still held.
func (m *monoNotes) lift(key uint8) (next uint8, retrigger, release bool) {
	i := slices.Index(m.held, key)
	if i < 0 {
		return 0, false, false
	}
	top := i == len(m.held)-1
	m.held = slices.Delete(m.held, i, i+1)
	if !top {
		return 0, false, false
	}
	if len(m.held) == 0 {
		return 0, false, true
	}
	return m.held[len(m.held)-1], true, false
}

// loadMIDISchedule converts the events of one channel of a MIDI file into
// link commands. Overlapping notes play legato.
func loadMIDISchedule(path string, channel int) (Schedule, error) {
	var events []midiEvent
	reader := smf.ReadTracks(path).Do(func(ev smf.TrackEvent) {
		events = append(events, midiEvent{
			at:  time.Duration(ev.AbsMicroSeconds) * time.Microsecond,
			msg: midi.Message(ev.Message),
		})
	})
	if err := reader.Error(); err != nil {
		return nil, fmt.Errorf("midi file %s: %w", path, err)
	}
	slices.SortStableFunc(events, func(a, b midiEvent) int {
		return cmp.Compare(a.at, b.at)
	})
	return midiToSchedule(events, channel), nil
}

func midiToSchedule(events []midiEvent, channel int) Schedule {
	var (
		s     Schedule
		notes monoNotes
		velo  uint8

		ch, key, vel, cc, val uint8
		rel                   int16
		abs                   uint16
	)
	accept := func() bool { return channel == midiAnyChannel || int(ch) == channel }

	for _, ev := range events {
		switch {
		case ev.msg.GetNoteStart(&ch, &key, &vel):
			if !accept() {
				continue
			}
			velo = vel
			legato := notes.press(key)
			s.Add(ev.at, link.AppendNoteOn(nil, uint16(key)<<7, vel<<1, legato))
		case ev.msg.GetNoteEnd(&ch, &key):
			if !accept() {
				continue
			}
			next, retrigger, release := notes.lift(key)
			switch {
			case retrigger:
				s.Add(ev.at, link.AppendNoteOn(nil, uint16(next)<<7, velo<<1, true))
			case release:
				s.Add(ev.at, link.AppendRelease(nil))
			}
		case ev.msg.GetPitchBend(&ch, &rel, &abs):
			if accept() {
				s.Add(ev.at, link.AppendModSource(nil, engine.SrcPitchBend, uint8(abs>>6)))
			}
		case ev.msg.GetControlChange(&ch, &cc, &val):
			if !accept() {
				continue
			}
			switch cc {
			case ccModWheel:
				s.Add(ev.at, link.AppendModSource(nil, engine.SrcWheel, val<<1))
			case ccBreath:
				s.Add(ev.at, link.AppendModSource(nil, engine.SrcWheel2, val<<1))
			case ccExpression:
				s.Add(ev.at, link.AppendModSource(nil, engine.SrcExpression, val<<1))
			}
		case ev.msg.GetAfterTouch(&ch, &val):
			if accept() {
				s.Add(ev.at, link.AppendModSource(nil, engine.SrcAftertouch, val<<1))
			}
		}
	}
	return s
}
