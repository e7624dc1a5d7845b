// engine.go - Voice card synthesis engine constants

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

// Package engine implements the 8-bit voice card synthesis core: oscillators,
// envelopes, LFO, modulation matrix and mixer, rendering fixed-size blocks of
// unsigned 8-bit samples into a ring buffer.
package engine

const (
	// SampleRate is the DAC rate of the voice card (20 MHz / 510).
	SampleRate = 39215
	// BlockSize is the number of samples rendered per ProcessBlock call.
	BlockSize = 8
	// ControlRate is the rate at which envelopes, LFO and the modulation
	// matrix are evaluated.
	ControlRate = SampleRate / BlockSize

	// Note pitch: 7 integer bits (semitone) and 7 fractional bits.
	SemitoneUnit   = 128
	Octave         = 12 * SemitoneUnit
	LowestNote     = 0
	HighestNote    = 120 * SemitoneUnit
	PitchTableBase = 116 * SemitoneUnit

	// Midpoint of a 14-bit modulation accumulator.
	ModulationNeutral = 8192
	ModulationMax     = 16383

	phaseBits = 24
	phaseMask = 1<<phaseBits - 1

	// Above this note the PolyBLEP family renders the naive waveform.
	polyBlepNoteLimit = 107
)

// Mid-scale 8-bit sample value (silence).
const SilentSample = 128
