// terminal_keys.go - Computer keyboard mapped to link commands

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
	"fmt"
	"time"

	"github.com/intuitionamiga/VoiceCard/engine"
	"github.com/intuitionamiga/VoiceCard/link"
)

// pianoKeys is two rows of a QWERTY keyboard laid out like a piano octave
// and a bit, starting at C.
var pianoKeys = map[byte]int{
	'a': 0, 'w': 1, 's': 2, 'e': 3, 'd': 4, 'f': 5, 't': 6, 'g': 7,
	'y': 8, 'h': 9, 'u': 10, 'j': 11, 'k': 12, 'o': 13, 'l': 14, 'p': 15,
}

const (
	keyQuit      = 'q'
	keyCtrlC     = 0x03
	keyRelease   = ' '
	keyOctDown   = 'z'
	keyOctUp     = 'x'
	keyVeloDown  = 'c'
	keyVeloUp    = 'v'
	keyLegato    = 'm'
	keyShapeDown = '['
	keyShapeUp   = ']'
	keyKill      = 'b'

	minOctave = 0
	maxOctave = 8
)

// Keyboard turns key presses into link commands. A terminal reports only
// presses, so a note sounds until space, another note or kill.
type Keyboard struct {
	octave   int
	velocity uint8
	legato   bool
	shape    engine.Algorithm
	sounding bool
}

func NewKeyboard(shape engine.Algorithm) *Keyboard {
	return &Keyboard{octave: 4, velocity: 100, shape: shape}
}

// HandleKey returns the commands for key b and whether the user asked to
// quit.
func (k *Keyboard) HandleKey(b byte) (cmds [][]byte, quit bool) {
	if n, ok := pianoKeys[b]; ok {
		note := min(k.octave*12+n, 120)
		cmd := link.AppendNoteOn(nil, uint16(note)<<7, k.velocity, k.sounding)
		k.sounding = true
		return [][]byte{cmd}, false
	}

	switch b {
	case keyQuit, keyCtrlC:
		return nil, true
	case keyRelease:
		k.sounding = false
		return [][]byte{link.AppendRelease(nil)}, false
	case keyKill:
		k.sounding = false
		return [][]byte{link.AppendKill(nil)}, false
	case keyOctDown:
		k.octave = max(k.octave-1, minOctave)
	case keyOctUp:
		k.octave = min(k.octave+1, maxOctave)
	case keyVeloDown:
		k.velocity = max(k.velocity, 16) - 16
	case keyVeloUp:
		k.velocity = uint8(min(int(k.velocity)+16, 255))
	case keyLegato:
		k.legato = !k.legato
		var v uint8
		if k.legato {
			v = 1
		}
		return [][]byte{link.AppendPartWrite(nil, engine.PartLegato, v)}, false
	case keyShapeDown, keyShapeUp:
		if b == keyShapeUp {
			k.shape = (k.shape + 1) % engine.AlgoCount
		} else {
			k.shape = (k.shape + engine.AlgoCount - 1) % engine.AlgoCount
		}
		return [][]byte{link.AppendPatchWrite(nil, engine.PatchOsc1, uint8(k.shape))}, false
	}
	return nil, false
}

// StatusLine describes the keyboard and the host outputs on one line.
func (k *Keyboard) StatusLine(s HostStatus) string {
	led := func(on bool) byte {
		if on {
			return '*'
		}
		return '.'
	}
	return fmt.Sprintf("\roct %d vel %3d legato %-5t osc1 %-18s cutoff %3d res %3d vca %3d rx %c note %c ",
		k.octave, k.velocity, k.legato, k.shape, s.Cutoff, s.Resonance, s.VCA, led(s.RxLed), led(s.NoteLed))
}

const keyboardHelp = "keys: a-p play, space release, b kill, z/x octave, c/v velocity, m legato, [/] osc1 shape, q quit\r\n"

const statusInterval = 100 * time.Millisecond

// keyboardProducer plays h from the terminal until the quit key.
func keyboardProducer(kb *Keyboard) producer {
	return func(ctx context.Context, h *VoiceHost) error {
		keys := make(chan byte, 64)
		tty := NewTerminalHost(func(b byte) {
			select {
			case keys <- b:
			default:
			}
		})
		tty.Start()
		defer tty.Stop()

		fmt.Print(keyboardHelp)
		ticker := time.NewTicker(statusInterval)
		defer ticker.Stop()
		defer fmt.Print("\r\n")

		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case b := <-keys:
				cmds, quit := kb.HandleKey(b)
				if quit {
					return nil
				}
				for _, c := range cmds {
					h.Send(c)
				}
			case <-ticker.C:
				fmt.Print(kb.StatusLine(h.Status()))
			}
		}
	}
}
