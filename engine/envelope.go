// envelope.go - Five-stage envelope generator

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

// EnvelopeStage is the state of an Envelope.
type EnvelopeStage uint8

const (
	StageAttack EnvelopeStage = iota
	StageDecay
	StageSustain
	StageRelease
	StageDead
	numEnvelopeStages
)

var envelopeStageNames = [...]string{"attack", "decay", "sustain", "release", "dead"}

func (s EnvelopeStage) String() string {
	if int(s) < len(envelopeStageNames) {
		return envelopeStageNames[s]
	}
	return "invalid"
}

// Envelope is an attack/decay/sustain/release generator with an exponential
// segment shape. A segment runs from the level at the time it was triggered
// (a) to the stage target (b); stages with a zero increment hold.
type Envelope struct {
	stage     EnvelopeStage
	increment [numEnvelopeStages]uint16
	target    [numEnvelopeStages]uint8

	value uint16 // 8.8 level
	a, b  uint8
	phase uint16
	inc   uint16
}

func (e *Envelope) Init() {
	e.target[StageAttack] = 255
	e.target[StageRelease] = 0
	e.target[StageDead] = 0
	e.increment[StageSustain] = 0
	e.increment[StageDead] = 0
	e.value = 0
	e.Trigger(StageDead)
}

// Update sets the segment times from 0..127 rate parameters and the sustain
// level from a 0..127 parameter. The running segment keeps its rate and end
// level until the next transition.
func (e *Envelope) Update(attack, decay, sustain, release uint8) {
	e.increment[StageAttack] = envIncrements[attack&0x7f]
	e.increment[StageDecay] = envIncrements[decay&0x7f]
	e.increment[StageRelease] = envIncrements[release&0x7f]
	e.target[StageDecay] = sustain << 1
	e.target[StageSustain] = sustain << 1
}

// Trigger starts stage from the current level.
func (e *Envelope) Trigger(stage EnvelopeStage) {
	if stage >= numEnvelopeStages {
		stage = StageDead
	}
	if stage == StageDead {
		e.value = 0
	}
	e.a = highByte(e.value)
	e.b = e.target[stage]
	e.stage = stage
	e.phase = 0
	e.inc = e.increment[stage]
}

// Render advances the envelope by one control tick and returns its level.
func (e *Envelope) Render() uint8 {
	e.phase += e.inc
	if e.phase < e.inc {
		e.value = uint16(e.b) << 8
		e.Trigger(e.stage + 1)
	}
	if e.inc != 0 {
		step := int32(InterpolateSample16(envCurve[:], e.phase) >> 8)
		e.value = uint16(int32(e.a)<<8 + (int32(e.b)-int32(e.a))*step)
	}
	return highByte(e.value)
}

func (e *Envelope) Stage() EnvelopeStage { return e.stage }

// Value returns the last rendered level without advancing.
func (e *Envelope) Value() uint8 { return highByte(e.value) }
