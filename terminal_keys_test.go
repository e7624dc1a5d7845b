package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/intuitionamiga/VoiceCard/engine"
	"github.com/intuitionamiga/VoiceCard/link"
)

func TestKeyboard_Notes(t *testing.T) {
	kb := NewKeyboard(engine.AlgoSaw)

	cmds, quit := kb.HandleKey('a')
	if quit || len(cmds) != 1 {
		t.Fatalf("expected one command, got %d (quit %t)", len(cmds), quit)
	}
	if want := link.AppendNoteOn(nil, 48<<7, 100, false); !bytes.Equal(cmds[0], want) {
		t.Fatalf("expected % x, got % x", want, cmds[0])
	}

	cmds, _ = kb.HandleKey('j')
	if want := link.AppendNoteOn(nil, 59<<7, 100, true); !bytes.Equal(cmds[0], want) {
		t.Fatalf("expected a legato B, got % x", cmds[0])
	}

	cmds, _ = kb.HandleKey(' ')
	if !bytes.Equal(cmds[0], link.AppendRelease(nil)) {
		t.Fatalf("expected release, got % x", cmds[0])
	}
	cmds, _ = kb.HandleKey('k')
	if cmds[0][0] != link.CmdNoteOn {
		t.Fatalf("expected a fresh note after release, got % x", cmds[0])
	}
}

func TestKeyboard_OctaveAndVelocity(t *testing.T) {
	kb := NewKeyboard(engine.AlgoSaw)
	for range 20 {
		kb.HandleKey('x')
	}
	for range 20 {
		kb.HandleKey('v')
	}
	cmds, _ := kb.HandleKey('p')
	if want := link.AppendNoteOn(nil, 111<<7, 255, false); !bytes.Equal(cmds[0], want) {
		t.Fatalf("expected % x, got % x", want, cmds[0])
	}

	for range 20 {
		kb.HandleKey('z')
		kb.HandleKey('c')
	}
	cmds, _ = kb.HandleKey('a')
	if want := link.AppendNoteOn(nil, 0, 0, true); !bytes.Equal(cmds[0], want) {
		t.Fatalf("expected % x, got % x", want, cmds[0])
	}
}

func TestKeyboard_Controls(t *testing.T) {
	kb := NewKeyboard(engine.AlgoSaw)

	cmds, _ := kb.HandleKey('m')
	if want := link.AppendPartWrite(nil, engine.PartLegato, 1); !bytes.Equal(cmds[0], want) {
		t.Fatalf("expected legato on, got % x", cmds[0])
	}
	cmds, _ = kb.HandleKey('m')
	if want := link.AppendPartWrite(nil, engine.PartLegato, 0); !bytes.Equal(cmds[0], want) {
		t.Fatalf("expected legato off, got % x", cmds[0])
	}

	cmds, _ = kb.HandleKey(']')
	if want := link.AppendPatchWrite(nil, engine.PatchOsc1, uint8(engine.AlgoSquare)); !bytes.Equal(cmds[0], want) {
		t.Fatalf("expected square, got % x", cmds[0])
	}
	kb.HandleKey('[')
	cmds, _ = kb.HandleKey('[')
	if want := link.AppendPatchWrite(nil, engine.PatchOsc1, uint8(engine.AlgoNone)); !bytes.Equal(cmds[0], want) {
		t.Fatalf("expected none, got % x", cmds[0])
	}
	cmds, _ = kb.HandleKey('[')
	if want := link.AppendPatchWrite(nil, engine.PatchOsc1, uint8(engine.AlgoCount-1)); !bytes.Equal(cmds[0], want) {
		t.Fatalf("expected the shape to wrap, got % x", cmds[0])
	}

	cmds, _ = kb.HandleKey('b')
	if !bytes.Equal(cmds[0], link.AppendKill(nil)) {
		t.Fatalf("expected kill, got % x", cmds[0])
	}
	if cmds, quit := kb.HandleKey('?'); cmds != nil || quit {
		t.Fatal("expected an unmapped key to do nothing")
	}
	for _, b := range []byte{'q', 0x03} {
		if _, quit := kb.HandleKey(b); !quit {
			t.Fatalf("expected %#x to quit", b)
		}
	}
}

func TestKeyboard_StatusLine(t *testing.T) {
	kb := NewKeyboard(engine.AlgoSaw)
	line := kb.StatusLine(HostStatus{Cutoff: 127, VCA: 200, RxLed: true})
	for _, want := range []string{"oct 4", "saw", "cutoff 127", "vca 200", "rx *", "note ."} {
		if !strings.Contains(line, want) {
			t.Errorf("expected %q in %q", want, line)
		}
	}
}
