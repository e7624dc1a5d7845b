// osc_polyblep.go - PolyBLEP saw, PWM and C-saw oscillators

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

// renderPolyBlep computes the naive waveform one sample ahead. When the
// upcoming sample crosses an edge (phase wrap or the shape's step point),
// the band-limited step residual is split between the delayed sample and
// the upcoming one, scaled by the size of the jump.
func (o *Oscillator) renderPolyBlep(syncIn, syncOut []bool, out []uint8) {
	shape := o.shape
	if shape >= AlgoPolyBlepSawWave {
		shape -= AlgoPolyBlepSawWave - AlgoPolyBlepSaw
	}
	param := o.parameter
	var stepPoint uint8
	switch shape {
	case AlgoPolyBlepSaw:
		stepPoint = 127
	case AlgoPolyBlepPWM:
		stepPoint = 127 + param
	default:
		stepPoint = param
	}
	naive := func(phase uint8, past bool) uint8 {
		switch shape {
		case AlgoPolyBlepSaw:
			if past {
				return phase - param
			}
			return phase
		case AlgoPolyBlepPWM:
			if past {
				return 255
			}
			return 0
		default:
			if past {
				return phase
			}
			return 0
		}
	}

	b := &o.state.blep
	if !b.primed {
		pb := highByte24(o.phase)
		b.pastStep = pb >= stepPoint
		b.lastNaive = naive(pb, b.pastStep)
		b.sample = b.lastNaive
		b.primed = true
	}

	// Above the threshold only the naive ramp is produced.
	if o.note > polyBlepNoteLimit {
		for i := range out {
			syncOut[i] = stepPhase(&o.phase, o.inc, syncIn[i])
			out[i] = b.sample
			b.sample = highByte24(o.phase)
			b.lastNaive = b.sample
		}
		return
	}

	hw := highWord24(o.inc)
	this := b.sample
	for i := range out {
		reset := stepPhase(&o.phase, o.inc, syncIn[i])
		syncOut[i] = reset

		p := highWord24(o.phase)
		pb := highByte(p)
		past := pb >= stepPoint
		next := naive(pb, past)

		edge := false
		var since uint16
		if reset {
			b.pastStep = false
			edge = true
			since = p
		}
		if !b.pastStep && past {
			b.pastStep = true
			if !edge {
				edge = true
				since = p - uint16(stepPoint)<<8
			}
		}

		nextOut := next
		if edge {
			k := blepIndex(since, hw)
			jump := int(next) - int(b.lastNaive)
			this = uint8(clampInt(int(this)+jump*int(blepResidual[k])>>8, 0, 255))
			nextOut = uint8(clampInt(int(next)-jump*int(blepResidual[blepResidualSize-1-k])>>8, 0, 255))
		}

		out[i] = this
		this = nextOut
		b.lastNaive = next
	}
	b.sample = this
}

// blepIndex is the position of an edge within the last sample period,
// 0 (edge just behind the sample) to 127 (a full period behind).
func blepIndex(since, inc uint16) int {
	if inc == 0 {
		return 0
	}
	k := uint32(since) * blepResidualSize / uint32(inc)
	return int(min(k, blepResidualSize-1))
}
