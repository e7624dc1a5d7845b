package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/intuitionamiga/VoiceCard/engine"
	"github.com/intuitionamiga/VoiceCard/link"
)

func TestRunScriptString_Commands(t *testing.T) {
	s, err := runScriptString(`
		shape(1, ALGO.CZ_SAW_LP)
		patch(PATCH.CRUSH, 12)
		part(PART.LEGATO, 1)
		mod(SRC.WHEEL, 200)
		note_on(60)
		wait(0.5)
		note_on(64.5, 90, true)
		wait(0.25)
		note_off()
		retrigger(2)
		kill()
		reset()
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []timedCommand{
		{0, link.AppendPatchWrite(nil, engine.PatchOsc1, uint8(engine.AlgoCzSawLP))},
		{0, link.AppendPatchWrite(nil, engine.PatchCrush, 12)},
		{0, link.AppendPartWrite(nil, engine.PartLegato, 1)},
		{0, link.AppendModSource(nil, engine.SrcWheel, 200)},
		{0, link.AppendNoteOn(nil, 60<<7, scriptDefaultVelocity, false)},
		{500 * time.Millisecond, link.AppendNoteOn(nil, 64<<7+64, 90, true)},
		{750 * time.Millisecond, link.AppendRelease(nil)},
		{750 * time.Millisecond, link.AppendRetrigger(nil, 1)},
		{750 * time.Millisecond, link.AppendKill(nil)},
		{750 * time.Millisecond, link.AppendReset(nil)},
	}
	if len(s) != len(want) {
		t.Fatalf("expected %d commands, got %d", len(want), len(s))
	}
	for i, w := range want {
		if s[i].At != w.At || !bytes.Equal(s[i].Cmd, w.Cmd) {
			t.Errorf("command %d: expected %v % x, got %v % x", i, w.At, w.Cmd, s[i].At, s[i].Cmd)
		}
	}
}

func TestRunScriptString_Route(t *testing.T) {
	s, err := runScriptString(`route(3, SRC.LFO1, DST.CUTOFF, -100)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s) != 3 {
		t.Fatalf("expected 3 patch writes, got %d", len(s))
	}

	h := NewVoiceHost()
	for _, c := range s {
		h.Feed(c.Cmd)
	}
	p := h.Voice().Patch()
	m := p.Params().Modulations[2]
	if m.Source != engine.SrcLfo1 || m.Destination != engine.DstFilterCutoff || m.Amount != -63 {
		t.Fatalf("expected lfo1 -> cutoff at -63, got %v -> %v at %d", m.Source, m.Destination, m.Amount)
	}
}

func TestRunScriptString_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"syntax", "note_on(", "script"},
		{"byte range", "patch(1, 300)", "byte out of range"},
		{"negative wait", "wait(-1)", "negative wait"},
		{"bad slot", "route(15, 0, 0, 0)", "slot out of range"},
		{"runtime", "error('boom')", "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runScriptString(tt.src)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestRunScriptString_Clock(t *testing.T) {
	s, err := runScriptString(`
		for i = 0, 3 do
			note_on(48 + i)
			wait(0.125)
		end
		assert(now() == 0.5)
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, c := range s {
		if want := time.Duration(i) * 125 * time.Millisecond; c.At != want {
			t.Errorf("note %d: expected %v, got %v", i, want, c.At)
		}
	}
}

func TestRunScript_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tune.lua")
	if err := os.WriteFile(path, []byte("note_on(72)\nwait(1)\nnote_off()\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := runScript(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s) != 2 || s.End() != time.Second {
		t.Fatalf("expected 2 commands ending at 1s, got %d ending at %v", len(s), s.End())
	}
	if _, err := runScript(filepath.Join(t.TempDir(), "missing.lua")); err == nil {
		t.Fatal("expected an error for a missing script")
	}
}

func TestLuaName(t *testing.T) {
	tests := map[string]string{
		"cz saw lp": "CZ_SAW_LP",
		"=64":       "CONST64",
		"8bit land": "_8BIT_LAND",
		"env1":      "ENV1",
	}
	for in, want := range tests {
		if got := luaName(in); got != want {
			t.Errorf("luaName(%q): expected %q, got %q", in, want, got)
		}
	}
}
