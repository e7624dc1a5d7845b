// osc_engine.go - Oscillator state and render dispatch

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

// stateFamily names the auxiliary record an algorithm uses.
type stateFamily uint8

const (
	familyNone stateFamily = iota
	familyVowel
	familyNoise
	familyQuad
	familySecondary
	familySample
)

type vowelState struct {
	formantPhase [3]uint16
	formantInc   [3]uint16
	formantAmp   [4]uint8 // three formants and the noise modulation depth
	update       uint8
}

type noiseState struct {
	lp        uint8
	rng       uint16
	resetSeed uint16
}

type quadState struct {
	phase [3]uint32
}

// blepState is the retained sample of the PolyBLEP family.
type blepState struct {
	sample    uint8
	lastNaive uint8
	pastStep  bool
	primed    bool
}

// oscState holds the auxiliary record of the active family. Only the record
// matching family is read; entering a family starts it from zero.
type oscState struct {
	family    stateFamily
	vowel     vowelState
	noise     noiseState
	quad      quadState
	secondary uint16
	blep      blepState
}

func (s *oscState) prepare(f stateFamily) {
	if s.family == f {
		return
	}
	s.family = f
	switch f {
	case familyVowel:
		s.vowel = vowelState{}
	case familyNoise:
		seed := s.noise.resetSeed
		s.noise = noiseState{rng: seed, resetSeed: seed}
	case familyQuad:
		s.quad = quadState{}
	case familySecondary:
		s.secondary = 0
	case familySample:
		s.blep = blepState{sample: SilentSample}
	}
}

func familyOf(r renderer) stateFamily {
	switch r {
	case renderVowel:
		return familyVowel
	case renderFilteredNoise:
		return familyNoise
	case renderQuadSawPad:
		return familyQuad
	case renderFM, renderCzReso:
		return familySecondary
	case renderPolyBlep:
		return familySample
	}
	return familyNone
}

// Oscillator renders one block of 8-bit samples per call with one of the
// Algorithm renderers. The 24-bit phase persists across blocks.
type Oscillator struct {
	phase       uint32
	inc         uint32
	shape       Algorithm
	note        uint8
	parameter   uint8
	fmParameter uint8

	state oscState
	rng   *Random
}

func NewOscillator(rng *Random) *Oscillator {
	return &Oscillator{rng: rng}
}

// SetParameter sets the 0..127 timbre parameter.
func (o *Oscillator) SetParameter(p uint8) { o.parameter = p }

// SetFMParameter sets the FM ratio selector (oscillator range + 36).
func (o *Oscillator) SetFMParameter(p uint8) { o.fmParameter = p }

func (o *Oscillator) Phase() uint32          { return o.phase }
func (o *Oscillator) PhaseIncrement() uint32 { return o.inc }

// Reset refreshes the noise reset seed; called on every note-on.
func (o *Oscillator) Reset() {
	o.state.noise.resetSeed = uint16(o.rng.Byte()) + 1
}

// Render fills out with len(out) samples of shape at the given MIDI note
// (0..127, selects band-limit zones) and 24-bit phase increment. syncIn
// forces a phase restart per sample; syncOut receives the per-sample
// overflow. Both must be at least len(out) long; len(out) must be even.
func (o *Oscillator) Render(shape Algorithm, note uint8, inc uint32, syncIn, syncOut []bool, out []uint8) {
	o.shape = shape
	o.note = note & 0x7f
	o.inc = inc & phaseMask

	r := rendererFor(shape, o.parameter)
	o.state.prepare(familyOf(r))

	switch r {
	case renderSimpleWavetable:
		o.renderSimpleWavetable(syncIn, syncOut, out)
	case renderBandlimitedPwm:
		o.renderBandlimitedPwm(syncIn, syncOut, out)
	case renderCzSaw:
		o.renderCzSaw(syncIn, syncOut, out)
	case renderCzReso:
		o.renderCzReso(syncIn, syncOut, out)
	case renderQuadSawPad:
		o.renderQuadSawPad(syncIn, syncOut, out)
	case renderFM:
		o.renderFM(syncIn, syncOut, out)
	case render8BitLand:
		o.render8BitLand(syncIn, syncOut, out)
	case renderDirtyPwm:
		o.renderDirtyPwm(syncIn, syncOut, out)
	case renderFilteredNoise:
		o.renderFilteredNoise(syncIn, syncOut, out)
	case renderVowel:
		o.renderVowel(syncIn, syncOut, out)
	case renderInterpolatedWavetable:
		o.renderInterpolatedWavetable(syncIn, syncOut, out)
	case renderWavequence:
		o.renderWavequence(syncIn, syncOut, out)
	case renderPolyBlep:
		o.renderPolyBlep(syncIn, syncOut, out)
	default:
		o.renderSilence(syncIn, syncOut, out)
	}
}

// The phase keeps running while silent so a later shape change, or a
// slave synced to this oscillator, stays in time.
func (o *Oscillator) renderSilence(syncIn, syncOut []bool, out []uint8) {
	for i := range out {
		syncOut[i] = stepPhase(&o.phase, o.inc, syncIn[i])
		out[i] = SilentSample
	}
}

// bandLimitZones returns the zone pair bracketing the note and the blend
// weight of the upper zone. offset shifts both zones up.
func (o *Oscillator) bandLimitZones(offset uint8) (lo, hi int, gain uint8) {
	balance := U8Swap4(o.note)
	gain = highNibbleUnshifted(balance)
	z := U8AddClip(lowNibble(balance), offset, bandLimitZones-1)
	return int(z), int(U8AddClip(z, 1, bandLimitZones-1)), gain
}
