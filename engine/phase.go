// phase.go - Phase accumulator and table interpolation

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

package engine

// advancePhase adds inc to a 24-bit phase and reports the carry: the new
// value is numerically <= inc exactly when the add wrapped.
//
//go:nosplit
func advancePhase(phase *uint32, inc uint32) bool {
	*phase = (*phase + inc) & phaseMask
	return *phase <= inc
}

// stepPhase advances phase, or restarts it at inc when sync is set; the
// returned flag is the carry or the forced restart.
//
//go:nosplit
func stepPhase(phase *uint32, inc uint32, sync bool) bool {
	if sync {
		*phase = inc & phaseMask
		return true
	}
	return advancePhase(phase, inc)
}

// InterpolateSample reads table at the top byte of phase, blended towards
// the next entry by the low byte. table must hold one guard entry past the
// last addressed index.
//
//go:nosplit
func InterpolateSample(table []uint8, phase uint16) uint8 {
	i := int(phase >> 8)
	a := table[i]
	b := table[i+1]
	return U8Mix(a, b, uint8(phase))
}

// InterpolateSample16 is InterpolateSample over a 16-bit curve.
//
//go:nosplit
func InterpolateSample16(table []uint16, phase uint16) uint16 {
	i := int(phase >> 8)
	a := int32(table[i])
	b := int32(table[i+1])
	return uint16(a + (b-a)*int32(uint8(phase))>>8)
}

// readSample reads the table entry at the top byte of phase, no blend.
func readSample(table []uint8, phase uint16) uint8 {
	return table[phase>>8]
}
