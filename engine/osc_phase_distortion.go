// osc_phase_distortion.go - Phase distortion and FM oscillators

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

func (o *Oscillator) renderCzSaw(syncIn, syncOut []bool, out []uint8) {
	amount := o.parameter << 1
	for i := range out {
		syncOut[i] = stepPhase(&o.phase, o.inc, syncIn[i])
		p := highWord24(o.phase)
		var clipped uint8
		if highByte(p) >= 0x20 {
			clipped = 0xff
		} else {
			clipped = uint8(p >> 5)
		}
		out[i] = InterpolateSample(sineTable[:], U8MixU16(highByte(p), clipped, amount))
	}
}

// renderCzReso drives a sine carrier from a second phase running faster
// than the pitch phase and restarted with it, windowed by a saw, pulse or
// triangle of the pitch phase.
func (o *Oscillator) renderCzReso(syncIn, syncOut []bool, out []uint8) {
	kind := uint8(o.shape - AlgoCzSawLP)
	window := kind >> 2
	response := kind & 3
	signed := kind&2 != 0
	peakPulse := o.shape == AlgoCzPulsePK

	hw := uint32(highWord24(o.inc))
	carrierInc := uint16(hw + hw*uint32(o.parameter)/4)

	for i := range out {
		reset := stepPhase(&o.phase, o.inc, syncIn[i])
		syncOut[i] = reset
		if reset {
			o.state.secondary = czPhaseReset[response]
		}
		o.state.secondary += carrierInc

		p := highWord24(o.phase)
		carrier := InterpolateSample(sineTable[:], o.state.secondary)

		var w uint8
		switch window {
		case 0:
			w = ^highByte(p)
		case 1:
			switch {
			case p < 0x4000:
				w = 255
			case p < 0x8000:
				w = ^uint8((p - 0x4000) >> 6)
			default:
				w = 0
			}
			if peakPulse {
				carrier = carrier>>1 + 128
			}
		default:
			w = uint8(p >> 7)
			if p&0x8000 != 0 {
				w = ^w
			}
		}

		if signed {
			out[i] = uint8(S8U8MulShift8(int8(carrier+128), w)) + 128
		} else {
			out[i] = U8U8MulShift8(carrier, w)
		}
	}
}

// renderFM phase-modulates a sine carrier with a sine at a ratio of the
// carrier frequency. The modulator restarts only on hard sync.
func (o *Oscillator) renderFM(syncIn, syncOut []bool, out []uint8) {
	offset := clampInt(int(o.fmParameter)-24, 0, fmRatioCount-1)
	ratio := uint32(fmRatios[offset])
	modInc := uint16(uint32(highWord24(o.inc)) * ratio >> 8)
	depth := uint16(o.parameter << 1)

	for i := range out {
		syncOut[i] = stepPhase(&o.phase, o.inc, syncIn[i])
		if syncIn[i] {
			o.state.secondary = 0
		}
		o.state.secondary += modInc
		modulator := uint16(InterpolateSample(sineTable[:], o.state.secondary))
		out[i] = InterpolateSample(sineTable[:], highWord24(o.phase)+modulator*depth)
	}
}
