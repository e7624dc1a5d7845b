// script_host.go - Lua scripting of link command schedules

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
	"fmt"
	"math"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/intuitionamiga/VoiceCard/engine"
	"github.com/intuitionamiga/VoiceCard/link"
)

const (
	scriptDefaultVelocity = 100
	modulationSlotSize    = 3
	envLfoSlotSize        = 8
)

// scriptClock collects the commands a script issues against a virtual
// clock advanced by wait().
type scriptClock struct {
	now   time.Duration
	sched Schedule
}

func (c *scriptClock) emit(cmd []byte) {
	c.sched.Add(c.now, cmd)
}

// luaName turns an engine name like "cz saw lp" or "=64" into a Lua table
// key such as CZ_SAW_LP or CONST64. Keys are valid identifiers.
func luaName(name string) string {
	if rest, ok := strings.CutPrefix(name, "="); ok {
		return "CONST" + rest
	}
	key := strings.ToUpper(strings.NewReplacer(" ", "_", "-", "_").Replace(name))
	if key != "" && key[0] >= '0' && key[0] <= '9' {
		key = "_" + key
	}
	return key
}

func newScriptState(c *scriptClock) *lua.LState {
	L := lua.NewState()

	checkByte := func(L *lua.LState, n int) uint8 {
		v := L.CheckInt(n)
		if v < 0 || v > 255 {
			L.ArgError(n, "byte out of range")
		}
		return uint8(v)
	}

	fns := map[string]lua.LGFunction{
		// note_on(note [, velocity [, legato]]); fractional notes bend.
		"note_on": func(L *lua.LState) int {
			note := L.CheckNumber(1)
			pitch := math.Round(float64(note) * engine.SemitoneUnit)
			pitch = math.Max(0, math.Min(pitch, engine.HighestNote))
			velocity := L.OptInt(2, scriptDefaultVelocity)
			legato := L.OptBool(3, false)
			c.emit(link.AppendNoteOn(nil, uint16(pitch), uint8(min(max(velocity, 0), 255)), legato))
			return 0
		},
		"note_off": func(L *lua.LState) int {
			c.emit(link.AppendRelease(nil))
			return 0
		},
		"kill": func(L *lua.LState) int {
			c.emit(link.AppendKill(nil))
			return 0
		},
		"reset": func(L *lua.LState) int {
			c.emit(link.AppendReset(nil))
			return 0
		},
		"patch": func(L *lua.LState) int {
			c.emit(link.AppendPatchWrite(nil, checkByte(L, 1), checkByte(L, 2)))
			return 0
		},
		"part": func(L *lua.LState) int {
			c.emit(link.AppendPartWrite(nil, checkByte(L, 1), checkByte(L, 2)))
			return 0
		},
		"mod": func(L *lua.LState) int {
			c.emit(link.AppendModSource(nil, engine.ModSource(checkByte(L, 1)), checkByte(L, 2)))
			return 0
		},
		"retrigger": func(L *lua.LState) int {
			c.emit(link.AppendRetrigger(nil, uint8(L.CheckInt(1)-1)))
			return 0
		},
		// shape(osc, algorithm) with osc 1 or 2.
		"shape": func(L *lua.LState) int {
			offset := uint8(engine.PatchOsc1)
			if L.CheckInt(1) == 2 {
				offset = engine.PatchOsc2
			}
			c.emit(link.AppendPatchWrite(nil, offset, checkByte(L, 2)))
			return 0
		},
		// route(slot, source, destination, amount) with slot 1..14.
		"route": func(L *lua.LState) int {
			slot := L.CheckInt(1) - 1
			if slot < 0 || slot >= engine.NumModulations {
				L.ArgError(1, "modulation slot out of range")
			}
			base := uint8(engine.PatchModulation + slot*modulationSlotSize)
			amount := L.CheckInt(4)
			c.emit(link.AppendPatchWrite(nil, base, checkByte(L, 2)))
			c.emit(link.AppendPatchWrite(nil, base+1, checkByte(L, 3)))
			c.emit(link.AppendPatchWrite(nil, base+2, uint8(int8(min(max(amount, -63), 63)))))
			return 0
		},
		// wait(seconds) advances the clock.
		"wait": func(L *lua.LState) int {
			secs := float64(L.CheckNumber(1))
			if secs < 0 {
				L.ArgError(1, "negative wait")
			}
			c.now += time.Duration(secs * float64(time.Second))
			return 0
		},
		"now": func(L *lua.LState) int {
			L.Push(lua.LNumber(c.now.Seconds()))
			return 1
		},
	}
	for name, fn := range fns {
		L.SetGlobal(name, L.NewFunction(fn))
	}

	src := L.NewTable()
	for i := range engine.SrcCount {
		L.SetField(src, luaName(i.String()), lua.LNumber(i))
	}
	L.SetGlobal("SRC", src)

	dst := L.NewTable()
	for i := range engine.DstCount {
		L.SetField(dst, luaName(i.String()), lua.LNumber(i))
	}
	L.SetGlobal("DST", dst)

	algo := L.NewTable()
	for i := range engine.AlgoCount {
		L.SetField(algo, luaName(i.String()), lua.LNumber(i))
	}
	L.SetGlobal("ALGO", algo)

	patch := L.NewTable()
	for name, off := range map[string]int{
		"OSC1": engine.PatchOsc1, "OSC2": engine.PatchOsc2,
		"MIX_BALANCE": engine.PatchMixBalance, "MIX_OP": engine.PatchMixOp, "MIX_PARAM": engine.PatchMixParam,
		"SUB_SHAPE": engine.PatchSubShape, "SUB_LEVEL": engine.PatchSubLevel,
		"NOISE": engine.PatchNoise, "FUZZ": engine.PatchFuzz, "CRUSH": engine.PatchCrush,
		"FILTER1": engine.PatchFilter1, "FILTER2": engine.PatchFilter2,
		"ENV1": engine.PatchEnvLfo1, "ENV2": engine.PatchEnvLfo1 + envLfoSlotSize, "ENV3": engine.PatchEnvLfo1 + 2*envLfoSlotSize,
		"VOICE_LFO": engine.PatchVoiceLfo, "MODULATION": engine.PatchModulation, "MODIFIER": engine.PatchModifier,
	} {
		L.SetField(patch, name, lua.LNumber(off))
	}
	L.SetGlobal("PATCH", patch)

	part := L.NewTable()
	L.SetField(part, "VOLUME", lua.LNumber(engine.PartVolume))
	L.SetField(part, "LEGATO", lua.LNumber(engine.PartLegato))
	L.SetField(part, "PORTAMENTO", lua.LNumber(engine.PartPortamento))
	L.SetGlobal("PART", part)

	return L
}

// runScript executes a Lua file and returns the schedule it built.
func runScript(path string) (Schedule, error) {
	var c scriptClock
	L := newScriptState(&c)
	defer L.Close()
	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	return c.sched, nil
}

func runScriptString(src string) (Schedule, error) {
	var c scriptClock
	L := newScriptState(&c)
	defer L.Close()
	if err := L.DoString(src); err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	return c.sched, nil
}
