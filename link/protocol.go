// protocol.go - Voice card link protocol command set

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

// Package link implements the byte protocol a controller uses to drive a
// voice card: note events, patch/part/modulation writes, bulk patch
// transfer and a few housekeeping commands. Commands are a code byte
// followed by a fixed number of argument bytes.
package link

import "github.com/intuitionamiga/VoiceCard/engine"

// Command codes. Long commands carry an index or flag in the low nibble.
const (
	CmdNoteOn       = 0x00 // 0x00..0x0f, bit 0 = legato; note hi, note lo, velocity
	CmdWritePatch   = 0x10 // offset, value
	CmdWritePart    = 0x20 // offset, value
	CmdWriteModSrc  = 0x30 // source, value
	CmdWriteLfo     = 0x40 // 0x40..0x4f, low nibble = LFO index; value
	CmdRelease      = 0x50
	CmdKill         = 0x51
	CmdRetrigger    = 0x52 // 0x52..0x54, envelope 1..3
	CmdResetCtrl    = 0x55
	CmdReset        = 0x56
	CmdLightsOut    = 0x57
	CmdBulkSend     = 0x58 // size, then size patch bytes from offset 0
	CmdFirmware     = 0xfd
	CmdGetSlaveID   = 0xfe
	CmdGetVersionID = 0xff
)

// Reply bytes clocked back on the transfer after a query.
const (
	ReplyIdle = 0xff
	SlaveID   = 0x01 // solo voice card
	VersionID = 0x12
)

const inputBufferSize = 256

// Voice is what the receiver drives. *engine.Voice implements it.
type Voice interface {
	Init()
	Trigger(note uint16, velocity uint8, legato bool)
	Release()
	Kill()
	TriggerEnvelope(index int, stage engine.EnvelopeStage)
	ResetAllControllers()
	SetPatchByte(offset, value uint8)
	SetPartByte(offset, value uint8)
	SetModulationSource(id engine.ModSource, value uint8)
}

// argumentCount is the payload length of a code, or -1 for short commands
// that execute on their own byte.
func argumentCount(code byte) int {
	switch {
	case code < CmdWritePatch:
		return 3
	case code < CmdWriteLfo:
		return 2
	case code&0xf0 == CmdWriteLfo:
		return 1
	}
	return -1
}
