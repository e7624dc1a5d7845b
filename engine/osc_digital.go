// osc_digital.go - Lo-fi digital oscillators: 8-bit land, dirty PWM, quad saw, noise

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

func (o *Oscillator) render8BitLand(syncIn, syncOut []bool, out []uint8) {
	x := o.parameter
	for i := range out {
		syncOut[i] = stepPhase(&o.phase, o.inc, syncIn[i])
		saw := highByte24(o.phase)
		out[i] = (saw ^ x<<1) &^ x
	}
}

// renderDirtyPwm is a naive pulse, aliasing included.
func (o *Oscillator) renderDirtyPwm(syncIn, syncOut []bool, out []uint8) {
	flip := 127 + o.parameter
	for i := range out {
		syncOut[i] = stepPhase(&o.phase, o.inc, syncIn[i])
		if highByte24(o.phase) < flip {
			out[i] = 0
		} else {
			out[i] = 255
		}
	}
}

// renderQuadSawPad sums the pitch saw and three copies detuned upwards by
// multiples of a parameter-controlled spread.
func (o *Oscillator) renderQuadSawPad(syncIn, syncOut []bool, out []uint8) {
	spread := (uint32(highWord24(o.inc))*uint32(o.parameter)>>13 + 1) << 8
	q := &o.state.quad
	var incs [3]uint32
	for k := range incs {
		incs[k] = o.inc + spread*uint32(k+1)
	}
	for i := range out {
		syncOut[i] = stepPhase(&o.phase, o.inc, syncIn[i])
		sum := o.phase >> 18
		for k := range q.phase {
			q.phase[k] = (q.phase[k] + incs[k]) & phaseMask
			sum += q.phase[k] >> 18
		}
		out[i] = uint8(sum)
	}
}

// renderFilteredNoise low-passes an LFSR. Parameters 0..63 give low-pass
// noise; 64..127 subtract the raw noise from the filtered one, which
// leaves a high-passed signal centred on mid-scale. Sync restarts the LFSR
// from the seed drawn at note-on.
func (o *Oscillator) renderFilteredNoise(syncIn, syncOut []bool, out []uint8) {
	n := &o.state.noise
	if n.rng == 0 {
		n.rng = 1
	}
	coef := o.parameter << 2
	if coef < 4 {
		coef = 4
	}
	highPass := o.parameter >= 64

	for i := range out {
		syncOut[i] = stepPhase(&o.phase, o.inc, syncIn[i])
		if syncIn[i] {
			n.rng = n.resetSeed
			if n.rng == 0 {
				n.rng = 1
			}
		}
		n.rng = n.rng>>1 ^ -(n.rng&1)&randomTaps
		raw := highByte(n.rng)
		n.lp = U8Mix(n.lp, raw, coef)
		if highPass {
			out[i] = uint8(clampInt(int(n.lp)+127-int(raw), 0, 255))
		} else {
			out[i] = n.lp
		}
	}
}
