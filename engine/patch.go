// patch.go - Patch and part byte layout

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

// Patch byte offsets. The layout is the wire format of patch writes and
// must not move.
const (
	PatchOsc1       = 0 // shape, parameter, range, detune
	PatchOsc2       = 4
	oscStride       = 4
	PatchMixBalance = 8
	PatchMixOp      = 9
	PatchMixParam   = 10
	PatchSubShape   = 11
	PatchSubLevel   = 12
	PatchNoise      = 13
	PatchFuzz       = 14
	PatchCrush      = 15
	PatchFilter1    = 16 // cutoff, resonance, mode
	PatchFilter2    = 19
	filterStride    = 3
	PatchFilterEnv  = 22
	PatchFilterLfo  = 23
	PatchEnvLfo1    = 24 // attack, decay, sustain, release, lfo shape, lfo rate, padding, retrigger
	envLfoStride    = 8
	PatchVoiceLfo   = 48 // shape, rate
	PatchModulation = 50 // 14 x source, destination, amount
	modStride       = 3
	PatchModifier   = 92 // 4 x operand 1, operand 2, operator
	modifierStride  = 3
	PatchFilterVelo = 104
	PatchFilterKbt  = 105
	PatchSize       = 112
)

// Field offsets inside a stride.
const (
	oscShape     = 0
	oscParameter = 1
	oscRange     = 2
	oscDetune    = 3

	filterCutoff    = 0
	filterResonance = 1
	filterMode      = 2

	envAttack    = 0
	envDecay     = 1
	envSustain   = 2
	envRelease   = 3
	lfoShape     = 4
	lfoRate      = 5
	lfoRetrigger = 7
)

// Part mirror offsets; only these three bytes are used.
const (
	PartVolume     = 0
	PartLegato     = 5
	PartPortamento = 6
	PartSize       = 7
)

// Patch is the byte image of a sound. Any value in any byte is valid.
type Patch [PatchSize]byte

// Part is the voice's copy of the part settings.
type Part [PartSize]byte

func (p *Part) Volume() uint8     { return p[PartVolume] }
func (p *Part) Legato() bool      { return p[PartLegato] != 0 }
func (p *Part) Portamento() uint8 { return p[PartPortamento] }

type OscillatorSettings struct {
	Shape     Algorithm
	Parameter uint8
	Range     int8
	Detune    int8
}

type MixerSettings struct {
	Balance   uint8
	Op        MixOp
	Parameter uint8
	SubShape  SubOscShape
	SubLevel  uint8
	Noise     uint8
	Fuzz      uint8
	Crush     uint8
}

type FilterSettings struct {
	Cutoff    uint8
	Resonance uint8
	Mode      FilterMode
}

type EnvelopeLfoSettings struct {
	Attack    uint8
	Decay     uint8
	Sustain   uint8
	Release   uint8
	LfoShape  LfoWave
	LfoRate   uint8
	Retrigger LfoSyncMode
}

type Modulation struct {
	Source      ModSource
	Destination ModDestination
	Amount      int8
}

type Modifier struct {
	Operands [2]ModSource
	Op       ModifierOp
}

// PatchParameters is the field-by-field view of a Patch.
type PatchParameters struct {
	Osc           [NumOscillators]OscillatorSettings
	Mix           MixerSettings
	Filter        [NumFilters]FilterSettings
	FilterEnv     int8
	FilterLfo     int8
	EnvLfo        [NumEnvelopes]EnvelopeLfoSettings
	VoiceLfoShape LfoWave
	VoiceLfoRate  uint8
	Modulations   [NumModulations]Modulation
	Modifiers     [NumModifiers]Modifier
	FilterVelo    uint8
	FilterKbt     int8
}

// Params decodes the patch bytes. Padding bytes are not represented.
func (p *Patch) Params() PatchParameters {
	var pp PatchParameters
	for i := range pp.Osc {
		b := p[PatchOsc1+i*oscStride:]
		pp.Osc[i] = OscillatorSettings{
			Shape:     Algorithm(b[oscShape]),
			Parameter: b[oscParameter],
			Range:     int8(b[oscRange]),
			Detune:    int8(b[oscDetune]),
		}
	}
	pp.Mix = MixerSettings{
		Balance:   p[PatchMixBalance],
		Op:        MixOp(p[PatchMixOp]),
		Parameter: p[PatchMixParam],
		SubShape:  SubOscShape(p[PatchSubShape]),
		SubLevel:  p[PatchSubLevel],
		Noise:     p[PatchNoise],
		Fuzz:      p[PatchFuzz],
		Crush:     p[PatchCrush],
	}
	for i := range pp.Filter {
		b := p[PatchFilter1+i*filterStride:]
		pp.Filter[i] = FilterSettings{
			Cutoff:    b[filterCutoff],
			Resonance: b[filterResonance],
			Mode:      FilterMode(b[filterMode]),
		}
	}
	pp.FilterEnv = int8(p[PatchFilterEnv])
	pp.FilterLfo = int8(p[PatchFilterLfo])
	for i := range pp.EnvLfo {
		b := p[PatchEnvLfo1+i*envLfoStride:]
		pp.EnvLfo[i] = EnvelopeLfoSettings{
			Attack:    b[envAttack],
			Decay:     b[envDecay],
			Sustain:   b[envSustain],
			Release:   b[envRelease],
			LfoShape:  LfoWave(b[lfoShape]),
			LfoRate:   b[lfoRate],
			Retrigger: LfoSyncMode(b[lfoRetrigger]),
		}
	}
	pp.VoiceLfoShape = LfoWave(p[PatchVoiceLfo])
	pp.VoiceLfoRate = p[PatchVoiceLfo+1]
	for i := range pp.Modulations {
		b := p[PatchModulation+i*modStride:]
		pp.Modulations[i] = Modulation{
			Source:      ModSource(b[0]),
			Destination: ModDestination(b[1]),
			Amount:      int8(b[2]),
		}
	}
	for i := range pp.Modifiers {
		b := p[PatchModifier+i*modifierStride:]
		pp.Modifiers[i] = Modifier{
			Operands: [2]ModSource{ModSource(b[0]), ModSource(b[1])},
			Op:       ModifierOp(b[2]),
		}
	}
	pp.FilterVelo = p[PatchFilterVelo]
	pp.FilterKbt = int8(p[PatchFilterKbt])
	return pp
}

// SetParams encodes pp into the patch, leaving padding bytes untouched.
func (p *Patch) SetParams(pp PatchParameters) {
	for i, o := range pp.Osc {
		b := p[PatchOsc1+i*oscStride:]
		b[oscShape] = byte(o.Shape)
		b[oscParameter] = o.Parameter
		b[oscRange] = byte(o.Range)
		b[oscDetune] = byte(o.Detune)
	}
	p[PatchMixBalance] = pp.Mix.Balance
	p[PatchMixOp] = byte(pp.Mix.Op)
	p[PatchMixParam] = pp.Mix.Parameter
	p[PatchSubShape] = byte(pp.Mix.SubShape)
	p[PatchSubLevel] = pp.Mix.SubLevel
	p[PatchNoise] = pp.Mix.Noise
	p[PatchFuzz] = pp.Mix.Fuzz
	p[PatchCrush] = pp.Mix.Crush
	for i, f := range pp.Filter {
		b := p[PatchFilter1+i*filterStride:]
		b[filterCutoff] = f.Cutoff
		b[filterResonance] = f.Resonance
		b[filterMode] = byte(f.Mode)
	}
	p[PatchFilterEnv] = byte(pp.FilterEnv)
	p[PatchFilterLfo] = byte(pp.FilterLfo)
	for i, e := range pp.EnvLfo {
		b := p[PatchEnvLfo1+i*envLfoStride:]
		b[envAttack] = e.Attack
		b[envDecay] = e.Decay
		b[envSustain] = e.Sustain
		b[envRelease] = e.Release
		b[lfoShape] = byte(e.LfoShape)
		b[lfoRate] = e.LfoRate
		b[lfoRetrigger] = byte(e.Retrigger)
	}
	p[PatchVoiceLfo] = byte(pp.VoiceLfoShape)
	p[PatchVoiceLfo+1] = pp.VoiceLfoRate
	for i, m := range pp.Modulations {
		b := p[PatchModulation+i*modStride:]
		b[0] = byte(m.Source)
		b[1] = byte(m.Destination)
		b[2] = byte(m.Amount)
	}
	for i, m := range pp.Modifiers {
		b := p[PatchModifier+i*modifierStride:]
		b[0] = byte(m.Operands[0])
		b[1] = byte(m.Operands[1])
		b[2] = byte(m.Op)
	}
	p[PatchFilterVelo] = pp.FilterVelo
	p[PatchFilterKbt] = byte(pp.FilterKbt)
}

// Bytes returns the byte image of pp over a zeroed patch.
func (pp PatchParameters) Bytes() Patch {
	var p Patch
	p.SetParams(pp)
	return p
}

// Accessors used on the render path; they read the bytes directly.

func (p *Patch) oscByte(osc, field int) uint8 { return p[PatchOsc1+osc*oscStride+field] }

func (p *Patch) filterByte(filter, field int) uint8 {
	return p[PatchFilter1+filter*filterStride+field]
}

func (p *Patch) envByte(env, field int) uint8 { return p[PatchEnvLfo1+env*envLfoStride+field] }

func (p *Patch) modulation(slot int) (ModSource, ModDestination, int8) {
	b := p[PatchModulation+slot*modStride:]
	return ModSource(b[0]), ModDestination(b[1]), int8(b[2])
}

func (p *Patch) modifier(slot int) (ModSource, ModSource, ModifierOp) {
	b := p[PatchModifier+slot*modifierStride:]
	return ModSource(b[0]), ModSource(b[1]), ModifierOp(b[2])
}
