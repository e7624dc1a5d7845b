// osc_vowel.go - Formant (vowel) oscillator

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

const vowelUpdatePeriod = 4

// renderVowel sums three formant oscillators (two sine, one square),
// gated by a ramp falling over each pitch period. The formant phases are
// restarted at the top of each pitch period, jittered by noise.
func (o *Oscillator) renderVowel(syncIn, syncOut []bool, out []uint8) {
	v := &o.state.vowel
	if v.update == 0 {
		vowel := int(o.parameter>>4) & 7
		balance := lowNibble(o.parameter)
		a := vowelData[vowel*vowelStride:][:vowelStride]
		b := vowelData[(vowel+1)*vowelStride:][:vowelStride]
		for f := range v.formantInc {
			v.formantInc[f] = U8U4MixU12(a[f], b[f], balance) << 3
		}
		for k := range v.formantAmp {
			v.formantAmp[k] = U8U4MixU8(a[3+k], b[3+k], balance) & 0x0f
		}
	}
	v.update = (v.update + 1) % vowelUpdatePeriod

	jitter := uint32(int32(S8S8Mul(int8(o.rng.StateMSB()), int8(v.formantAmp[3]))) << 8)
	window := (o.inc << 1) & phaseMask

	for i := 0; i+1 < len(out); i += 2 {
		syncOut[i] = stepPhase(&o.phase, o.inc, syncIn[i])
		syncOut[i+1] = stepPhase(&o.phase, o.inc, syncIn[i+1])

		var sum int8
		for f := range v.formantPhase {
			v.formantPhase[f] += v.formantInc[f] << 1
			idx := highNibbleUnshifted(highByte(v.formantPhase[f])) | v.formantAmp[f]
			if f == 2 {
				sum += formantSquare[idx]
			} else {
				sum += formantSine[idx]
			}
		}

		falling := (phaseMask + 1 - o.phase) & phaseMask
		result := S8U8MulShift8(sum, highByte24(falling))

		if (falling+jitter)&phaseMask < window {
			v.formantPhase = [3]uint16{}
		}

		s := uint8((int(max(min(result, 31), -32)) + 32) << 2)
		out[i], out[i+1] = s, s
	}
}
