// osc_wavetable.go - Band-limited and interpolated wavetable oscillators

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

func (o *Oscillator) renderSimpleWavetable(syncIn, syncOut []bool, out []uint8) {
	lo, hi, gain2 := o.bandLimitZones(0)
	gain1 := ^gain2

	var tableA, tableB []uint8
	switch o.shape {
	case AlgoSaw:
		tableA, tableB = bandLimitedSaw[lo][:], bandLimitedSaw[hi][:]
	case AlgoSquare:
		tableA, tableB = bandLimitedSqr[lo][:], bandLimitedSqr[hi][:]
	case AlgoTriangle:
		tableA, tableB = bandLimitedTri[lo][:], bandLimitedTri[hi][:]
	default:
		tableA, tableB = sineTable[:], sineTable[:]
	}
	triangle := o.shape == AlgoTriangle
	shaper := o.parameter

	for i := range out {
		syncOut[i] = stepPhase(&o.phase, o.inc, syncIn[i])
		p := highWord24(o.phase)
		s := U8Mix2(InterpolateSample(tableA, p), InterpolateSample(tableB, p), gain1, gain2)
		if s < shaper {
			if triangle {
				s = shaper
			} else {
				s += shaper >> 1
			}
		}
		out[i] = s
	}
}

// renderBandlimitedPwm subtracts two phase-shifted band-limited saws. It
// runs at half rate with a doubled increment, so the zones are taken one
// step brighter and the level is pulled down at high notes.
func (o *Oscillator) renderBandlimitedPwm(syncIn, syncOut []bool, out []uint8) {
	lo, hi, gain2 := o.bandLimitZones(1)
	gain1 := ^gain2
	tableA, tableB := bandLimitedSaw[lo][:], bandLimitedSaw[hi][:]

	shift := uint16(o.parameter+128) << 8
	scale := 192 - o.parameter>>1
	if o.note > 52 {
		amount := uint8(min(int(o.note-52)*4, 255))
		scale = U8Mix(scale, 102, amount)
		scale = U8Mix(scale, 102, amount)
	}

	inc := (o.inc << 1) & phaseMask
	for i := 0; i+1 < len(out); i += 2 {
		var reset bool
		if syncIn[i] || syncIn[i+1] {
			o.phase = inc
			reset = true
		} else {
			reset = advancePhase(&o.phase, inc)
		}
		syncOut[i], syncOut[i+1] = reset, reset

		p := highWord24(o.phase)
		a := U8Mix2(InterpolateSample(tableA, p), InterpolateSample(tableB, p), gain1, gain2)
		b := U8Mix2(InterpolateSample(tableA, p+shift), InterpolateSample(tableB, p+shift), gain1, gain2)
		a = U8U8MulShift8(a, scale)
		b = U8U8MulShift8(b, scale)
		v := uint8(clampInt(int(a)-int(b)+128, 0, 255))
		out[i], out[i+1] = v, v
	}
}

func (o *Oscillator) renderInterpolatedWavetable(syncIn, syncOut []bool, out []uint8) {
	preset := int(o.shape - AlgoWavetable1)
	wt := wavetables[preset*wavetableStride:][:wavetableStride]
	steps := uint16(wt[0])
	pos := uint16(o.parameter<<1) * steps
	step := int(highByte(pos))
	gain := lowByte(pos)
	waveA := elementaryWave(wt[1+step])
	waveB := elementaryWave(wt[2+step])

	for i := range out {
		syncOut[i] = stepPhase(&o.phase, o.inc, syncIn[i])
		p := highWord24(o.phase) >> 1
		out[i] = U8Mix(InterpolateSample(waveA, p), InterpolateSample(waveB, p), gain)
	}
}

func (o *Oscillator) renderWavequence(syncIn, syncOut []bool, out []uint8) {
	wave := elementaryWave(o.parameter)
	for i := range out {
		syncOut[i] = stepPhase(&o.phase, o.inc, syncIn[i])
		out[i] = InterpolateSample(wave, highWord24(o.phase)>>1)
	}
}

func elementaryWave(index uint8) []uint8 {
	i := int(index) & (waveBankSize - 1)
	return waveBank[i*waveSize:][:waveSize]
}
