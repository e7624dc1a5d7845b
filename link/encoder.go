// encoder.go - Link command builders

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

package link

import "github.com/intuitionamiga/VoiceCard/engine"

// The Append functions add one command to dst and return the extended
// slice. They never validate ranges; the receiver ignores bad offsets.

func AppendNoteOn(dst []byte, note uint16, velocity uint8, legato bool) []byte {
	code := byte(CmdNoteOn)
	if legato {
		code |= 1
	}
	return append(dst, code, byte(note>>8), byte(note), velocity)
}

func AppendPatchWrite(dst []byte, offset, value uint8) []byte {
	return append(dst, CmdWritePatch, offset, value)
}

func AppendPartWrite(dst []byte, offset, value uint8) []byte {
	return append(dst, CmdWritePart, offset, value)
}

func AppendModSource(dst []byte, src engine.ModSource, value uint8) []byte {
	return append(dst, CmdWriteModSrc, byte(src), value)
}

// AppendLfo writes the value of part LFO index (0 = LFO 1).
func AppendLfo(dst []byte, index, value uint8) []byte {
	return append(dst, CmdWriteLfo|index&0x0f, value)
}

func AppendRelease(dst []byte) []byte { return append(dst, CmdRelease) }
func AppendKill(dst []byte) []byte    { return append(dst, CmdKill) }

// AppendRetrigger restarts envelope index (0..2) from its attack.
func AppendRetrigger(dst []byte, index uint8) []byte {
	return append(dst, CmdRetrigger+min(index, engine.NumEnvelopes-1))
}

func AppendResetControllers(dst []byte) []byte { return append(dst, CmdResetCtrl) }
func AppendReset(dst []byte) []byte            { return append(dst, CmdReset) }
func AppendLightsOut(dst []byte) []byte        { return append(dst, CmdLightsOut) }

// AppendBulkPatch sends a whole patch image in one command.
func AppendBulkPatch(dst []byte, p *engine.Patch) []byte {
	dst = append(dst, CmdBulkSend, engine.PatchSize)
	return append(dst, p[:]...)
}

func AppendQuery(dst []byte, code byte) []byte { return append(dst, code) }
