// voice_matrix.go - Modulation sources, modifiers and routing

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

// performanceSlot is the routing slot whose depth follows the mod wheel.
const performanceSlot = NumModulations - 1

func (v *Voice) loadSources() {
	v.src[SrcNoise] = v.rng.Byte()
	for i := range v.env {
		v.src[SrcEnv1+ModSource(i)] = v.env[i].Render()
	}
	v.src[SrcNote] = U14ShiftRight6(v.pitchValue)
	v.src[SrcGate] = v.gate
	v.src[SrcLfo4] = v.lfo.Render(LfoWave(v.patch[PatchVoiceLfo]))
}

func (v *Voice) applyModifiers() {
	for i := 0; i < NumModifiers; i++ {
		a, b, op := v.patch.modifier(i)
		if op == ModifierNone || op >= ModifierCount {
			continue
		}
		dst := SrcOp1 + ModSource(i)
		v.src[dst] = applyModifier(op, v.Source(a), v.Source(b), v.src[dst])
	}
}

func (v *Voice) seedDestinations() {
	d := &v.dst
	p := &v.patch

	d[DstOsc1] = ModulationNeutral
	d[DstOsc2] = ModulationNeutral
	d[DstOsc12Coarse] = ModulationNeutral
	d[DstOsc12Fine] = ModulationNeutral
	d[DstAttack] = ModulationNeutral
	d[DstDecay] = ModulationNeutral
	d[DstRelease] = ModulationNeutral

	d[DstParameter1] = ClipU14(int32(U8U8Mul(p.oscByte(0, oscParameter), 128)))
	d[DstParameter2] = ClipU14(int32(U8U8Mul(p.oscByte(1, oscParameter), 128)))

	d[DstMixBalance] = ClipU14(int32(p[PatchMixBalance]) << 8)
	d[DstMixParam] = ClipU14(int32(p[PatchMixParam]) << 8)
	d[DstMixFuzz] = ClipU14(int32(p[PatchFuzz]) << 8)
	d[DstMixCrush] = ClipU14(int32(p[PatchCrush]) << 8)
	d[DstMixNoise] = ClipU14(int32(p[PatchNoise]) << 8)
	d[DstMixSubOsc] = ClipU14(int32(p[PatchSubLevel]) << 8)

	// Cutoff tracks the note around the middle of the keyboard.
	cutoff := int32(U8U8Mul(p.filterByte(0, filterCutoff), 128))
	d[DstFilterCutoff] = ClipU14(cutoff + v.pitchValue - ModulationNeutral)
	d[DstFilterResonance] = ClipU14(int32(p.filterByte(0, filterResonance)) << 8)

	d[DstLfo4] = ClipU14(int32(p[PatchVoiceLfo+1]) * 128)

	// VCA is an 8-bit scale starting at the part volume.
	v.vca = v.part.Volume() << 1
}

// processModulationMatrix applies the routing slots. Slots naming an
// unknown source or destination are skipped.
func (v *Voice) processModulationMatrix() {
	for i := 0; i < NumModulations; i++ {
		src, dst, amount := v.patch.modulation(i)
		if src >= SrcCount || dst >= DstCount {
			continue
		}
		if i == performanceSlot {
			amount = S8U8MulShift8(amount, v.src[SrcWheel])
		}
		value := v.src[src]

		if dst == DstVCA {
			v.vca = modulateVCA(v.vca, value, amount)
			continue
		}

		var mod int32
		if src.bipolar() {
			mod = int32(S8S8Mul(amount, int8(value+128)))
		} else {
			mod = S8U8Mul(amount, value)
		}
		v.dst[dst] = ClipU14(v.dst[dst] + mod)
	}
}

// modulateVCA scales vca by a source. A negative depth inverts the source;
// a depth of exactly 63 applies the source unattenuated.
func modulateVCA(vca, value uint8, amount int8) uint8 {
	depth := int(amount)
	if depth < 0 {
		depth = -depth
		value = ^value
	}
	if depth != 63 {
		value = U8Mix(255, value, uint8(depth<<2))
	}
	return U8U8MulShift8(vca, value)
}

func (v *Voice) updateDestinations() {
	p := &v.patch
	d := &v.dst

	cutoff := d[DstFilterCutoff]
	cutoff = ClipU14(cutoff + S8U8Mul(int8(p[PatchFilterEnv]), v.src[SrcEnv2]))
	cutoff = ClipU14(cutoff + int32(S8S8Mul(int8(p[PatchFilterLfo]), int8(v.src[SrcLfo2]+128))))
	cutoff = ClipU14(cutoff + S8U8Mul(int8(p[PatchFilterVelo]), v.src[SrcVelocity]))
	cutoff = ClipU14(cutoff + int32(S8S8Mul(int8(p[PatchFilterKbt]), int8(v.src[SrcNote]+128))))
	d[DstFilterCutoff] = cutoff

	v.cutoff = U14ShiftRight6(cutoff)
	v.resonance = U14ShiftRight6(d[DstFilterResonance])
	v.crush = highByte(uint16(d[DstMixCrush])) + 1

	v.osc[0].SetParameter(U15ShiftRight7(d[DstParameter1]))
	v.osc[1].SetParameter(U15ShiftRight7(d[DstParameter2]))
	for i := range v.osc {
		v.osc[i].SetFMParameter(uint8(int8(p.oscByte(i, oscRange)) + 36))
	}

	attack := int(d[DstAttack]>>7) - 64
	decay := int(d[DstDecay]>>7) - 64
	release := int(d[DstRelease]>>7) - 64
	for i := range v.env {
		v.env[i].Update(
			uint8(clampInt(int(p.envByte(i, envAttack))+attack, 0, 127)),
			uint8(clampInt(int(p.envByte(i, envDecay))+decay, 0, 127)),
			p.envByte(i, envSustain),
			uint8(clampInt(int(p.envByte(i, envRelease))+release, 0, 127)),
		)
	}

	v.lfo.SetPhaseIncrement(lfoIncrements[U14ShiftRight6(d[DstLfo4])>>1])
}
