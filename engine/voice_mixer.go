// voice_mixer.go - Pitch computation, oscillator rendering and mixer

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

// oscillatorIncrement converts a 14-bit pitch to a 24-bit phase increment.
// The table covers the top octave; lower pitches fold down by octaves.
func oscillatorIncrement(pitch int32) uint32 {
	pitch = min(max(pitch, LowestNote), HighestNote)
	ref := pitch - PitchTableBase
	shifts := 0
	for ref < 0 {
		ref += Octave
		shifts++
	}
	idx := min(int(ref>>1), oscIncrementsSize-1)
	return uint32(oscIncrements[idx]) << 8 >> shifts
}

// midiNote is the band-limit zone selector for a 14-bit pitch.
func midiNote(pitch int32) uint8 {
	return uint8(clampInt(int(pitch>>7)-12, 0, 127))
}

func (v *Voice) renderOscillators() {
	base := v.pitchValue + v.pitchIncrement
	if (v.pitchIncrement > 0) != (base < v.pitchTarget) {
		base = v.pitchTarget
		v.pitchIncrement = 0
	}
	v.pitchValue = base

	base += (v.dst[DstOsc12Coarse] - ModulationNeutral) >> 4
	base += (v.dst[DstOsc12Fine] - ModulationNeutral) >> 7

	mixOp := MixOp(v.patch[PatchMixOp])
	for i := range v.osc {
		shape := Algorithm(v.patch.oscByte(i, oscShape))
		pitch := base
		// FM uses the range byte as its ratio selector.
		if shape != AlgoFM {
			pitch += int32(int8(v.patch.oscByte(i, oscRange))) << 7
		}
		pitch += int32(int8(v.patch.oscByte(i, oscDetune)))
		pitch += (v.dst[DstOsc1+ModDestination(i)] - ModulationNeutral) >> 2
		pitch = min(max(pitch, LowestNote), HighestNote)

		inc := oscillatorIncrement(pitch)
		note := midiNote(pitch)
		if i == 0 {
			v.sub.SetIncrement(inc >> 1)
			v.osc[0].Render(shape, note, inc, v.noSync[:], v.syncState[:], v.oscBuf[0][:])
			continue
		}
		syncIn := v.noSync[:]
		if mixOp == MixSync {
			syncIn = v.syncState[:]
		}
		v.osc[1].Render(shape, note, inc, syncIn, v.syncSlave[:], v.oscBuf[1][:])
	}
}

func (v *Voice) mix() {
	d := &v.dst
	p := &v.patch
	buf := v.mixBuf[:]

	gain2 := U14ShiftRight6(d[DstMixBalance])
	gain1 := ^gain2
	wet := U14ShiftRight6(d[DstMixParam])
	dry := ^wet

	op := MixOp(p[PatchMixOp])
	mask := ^uint8(1<<(wet>>5) - 1)
	for i := range buf {
		a, b := v.oscBuf[0][i], v.oscBuf[1][i]
		mixed := U8Mix2(a, b, gain1, gain2)
		switch op {
		case MixRingMod:
			ring := uint8(S8S8MulShift8(int8(a+128), int8(b+128))) + 128
			mixed = U8Mix2(mixed, ring, dry, wet)
		case MixXor:
			mixed = U8Mix2(mixed, a^b, dry, wet)
		case MixFold:
			mixed = U8Mix2(mixed, mixed+128, dry, wet)
		case MixBits:
			mixed &= mask
		}
		buf[i] = mixed
	}

	subShape := SubOscShape(p[PatchSubShape])
	subGain := U15ShiftRight7(d[DstMixSubOsc])
	if subShape < SubOscClick {
		v.sub.Render(subShape, subGain, buf)
	} else {
		v.transient.Render(subShape, subGain<<1, buf)
	}

	noiseGain := U15ShiftRight7(d[DstMixNoise])
	signalGain := ^noiseGain
	fuzzWet := U14ShiftRight6(d[DstMixFuzz])
	fuzzDry := ^fuzzWet
	noise := v.rng.StateMSB()

	for i := 0; i < BlockSize; i += 2 {
		var pair [2]uint8
		for j := range pair {
			noise = noise*73 + 1
			s := U8Mix2(buf[i+j], noise, signalGain, noiseGain)
			pair[j] = U8Mix2(s, distortionTable[s], fuzzDry, fuzzWet)
		}
		v.out.Overwrite2(pair[0], pair[1])
	}
}
