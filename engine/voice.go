// voice.go - Monophonic voice: lifecycle and parameter writes

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

// silenceThreshold is the VCA level below which a block is not rendered.
const silenceThreshold = 2

// Voice is one monophonic voice: two oscillators, sub-oscillator or
// transient layer, three envelopes, the voice LFO, modulation matrix and
// mixer. Each ProcessBlock call writes BlockSize samples into the output
// ring.
//
// The parameter setters are plain byte stores. They may run between two
// ProcessBlock calls from the goroutine decoding the link; a block seeing a
// half-applied patch only produces a transient artifact.
type Voice struct {
	patch Patch
	part  Part

	rng       Random
	osc       [NumOscillators]Oscillator
	sub       SubOscillator
	transient TransientGenerator
	env       [NumEnvelopes]Envelope
	lfo       Lfo

	src [SrcCount]uint8
	dst [DstCount]int32

	vca       uint8
	cutoff    uint8
	resonance uint8
	crush     uint8
	gate      uint8

	pitchValue     int32
	pitchTarget    int32
	pitchIncrement int32

	syncState [BlockSize]bool
	syncSlave [BlockSize]bool
	noSync    [BlockSize]bool
	oscBuf    [NumOscillators][BlockSize]uint8
	mixBuf    [BlockSize]uint8

	out *RingBuffer
}

// NewVoice returns an initialised voice writing into out.
func NewVoice(out *RingBuffer) *Voice {
	v := &Voice{out: out}
	v.rng.Seed(0x21)
	for i := range v.osc {
		v.osc[i].rng = &v.rng
	}
	v.lfo.rng = &v.rng
	v.Init()
	return v
}

// Init loads the default patch and part, resets all controllers and kills
// the voice.
func (v *Voice) Init() {
	v.pitchValue = 0
	v.pitchTarget = 0
	v.pitchIncrement = 0
	for i := range v.env {
		v.env[i].Init()
	}
	v.patch = DefaultPatch()
	v.ResetAllControllers()
	v.part = Part{}
	v.part[PartVolume] = 127
	v.vca = 0
	v.Kill()
}

func (v *Voice) ResetAllControllers() {
	v.src[SrcPitchBend] = 128
	v.src[SrcAftertouch] = 0
	v.src[SrcWheel] = 0
	v.src[SrcWheel2] = 0
	v.src[SrcExpression] = 0
	v.src[SrcConstant4] = 4
	v.src[SrcConstant8] = 8
	v.src[SrcConstant16] = 16
	v.src[SrcConstant32] = 32
	v.src[SrcConstant64] = 64
	v.src[SrcConstant128] = 128
	v.src[SrcConstant256] = 255
}

// Trigger starts a note. note is a 14-bit pitch (MIDI note << 7). In legato
// part mode a legato trigger glides without restarting the envelopes.
func (v *Voice) Trigger(note uint16, velocity uint8, legato bool) {
	v.pitchTarget = int32(note)
	partLegato := v.part.Legato()
	if !partLegato || !legato {
		v.gate = 255
		for i := range v.env {
			v.env[i].Trigger(StageAttack)
		}
		v.transient.Trigger()
		v.src[SrcVelocity] = velocity
		v.src[SrcRandom] = v.rng.StateMSB()
		for i := range v.osc {
			v.osc[i].Reset()
		}
	}

	if v.pitchValue == 0 || (partLegato && !legato) {
		v.pitchValue = v.pitchTarget
		v.pitchIncrement = 1
		return
	}
	delta := v.pitchTarget - v.pitchValue
	rate := int32(envIncrements[v.part.Portamento()&0x7f])
	v.pitchIncrement = delta * rate >> 16
	if v.pitchIncrement == 0 {
		if delta < 0 {
			v.pitchIncrement = -1
		} else {
			v.pitchIncrement = 1
		}
	}
}

func (v *Voice) Release() {
	v.gate = 0
	for i := range v.env {
		v.env[i].Trigger(StageRelease)
	}
}

// Kill silences the voice at the next block.
func (v *Voice) Kill() {
	v.gate = 0
	for i := range v.env {
		v.env[i].Trigger(StageDead)
	}
}

// TriggerEnvelope forces one envelope into stage.
func (v *Voice) TriggerEnvelope(index int, stage EnvelopeStage) {
	if index < 0 || index >= NumEnvelopes {
		return
	}
	v.env[index].Trigger(stage)
}

func (v *Voice) SetPatchByte(offset, value uint8) {
	if int(offset) < PatchSize {
		v.patch[offset] = value
	}
}

func (v *Voice) SetPartByte(offset, value uint8) {
	if int(offset) < PartSize {
		v.part[offset] = value
	}
}

func (v *Voice) SetModulationSource(id ModSource, value uint8) {
	if id < SrcCount {
		v.src[id] = value
	}
}

// LoadPatch replaces the whole working patch.
func (v *Voice) LoadPatch(p Patch) { v.patch = p }

// Patch returns a copy of the working patch.
func (v *Voice) Patch() Patch { return v.patch }

func (v *Voice) Part() Part { return v.part }

// Post-modulation values for the analog stage, updated once per block.

func (v *Voice) Cutoff() uint8    { return v.cutoff }
func (v *Voice) Resonance() uint8 { return v.resonance }

// Crush is the output decimation factor, 1 (none) to 64.
func (v *Voice) Crush() uint8 { return v.crush }
func (v *Voice) VCA() uint8   { return v.vca }
func (v *Voice) Gate() bool   { return v.gate != 0 }

// FilterMode returns the mode byte of filter 0 or 1.
func (v *Voice) FilterMode(filter int) FilterMode {
	if filter < 0 || filter >= NumFilters {
		return FilterLP
	}
	return FilterMode(v.patch.filterByte(filter, filterMode))
}

// Source returns the current value of a modulation source.
func (v *Voice) Source(id ModSource) uint8 {
	if id >= SrcCount {
		return 0
	}
	return v.src[id]
}

// Destination returns the 14-bit accumulator of the last block.
func (v *Voice) Destination(id ModDestination) int32 {
	if id >= DstCount {
		return 0
	}
	return v.dst[id]
}

// Pitch returns the current glide pitch.
func (v *Voice) Pitch() int32 { return v.pitchValue }

// EnvelopeStage reports the stage of envelope index.
func (v *Voice) EnvelopeStage(index int) EnvelopeStage {
	if index < 0 || index >= NumEnvelopes {
		return StageDead
	}
	return v.env[index].Stage()
}

// ProcessBlock renders one block. The output ring must have BlockSize
// bytes free.
func (v *Voice) ProcessBlock() {
	v.loadSources()
	v.applyModifiers()
	v.seedDestinations()
	v.processModulationMatrix()
	v.updateDestinations()

	if v.vca < silenceThreshold {
		for i := 0; i < BlockSize; i += 2 {
			v.out.Overwrite2(SilentSample, SilentSample)
		}
		return
	}

	v.renderOscillators()
	v.mix()
}
