// lfo.go - Low-frequency oscillator

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

// LfoWave selects an LFO shape.
type LfoWave uint8

const (
	LfoTriangle LfoWave = iota
	LfoSquare
	LfoSampleHold
	LfoRamp
	LfoWave1 // LfoWave1..LfoWave1+15 are table waves
	LfoWaveCount = LfoWave1 + lfoWaveCount
)

// LfoSyncMode is stored per envelope/LFO slot and read by the part layer.
type LfoSyncMode uint8

const (
	LfoSyncFree LfoSyncMode = iota
	LfoSyncSlave
	LfoSyncMaster
)

// Lfo runs a 16-bit phase at control rate.
type Lfo struct {
	phase  uint16
	inc    uint16
	looped bool
	held   uint8
	rng    *Random
}

// NewLfo returns an LFO drawing sample & hold values from rng.
func NewLfo(rng *Random) *Lfo {
	return &Lfo{rng: rng}
}

func (l *Lfo) SetPhaseIncrement(inc uint16) { l.inc = inc }
func (l *Lfo) SetPhase(phase uint16)        { l.phase = phase }
func (l *Lfo) Phase() uint16                { return l.phase }

// Looped reports whether the last Render wrapped the phase.
func (l *Lfo) Looped() bool { return l.looped }

func (l *Lfo) Render(shape LfoWave) uint8 {
	l.phase += l.inc
	l.looped = l.phase < l.inc

	switch shape {
	case LfoRamp:
		return highByte(l.phase)
	case LfoSampleHold:
		if l.looped && l.rng != nil {
			l.held = l.rng.Byte()
		}
		return l.held
	case LfoTriangle:
		if l.phase&0x8000 != 0 {
			return uint8(l.phase >> 7)
		}
		return ^uint8(l.phase >> 7)
	case LfoSquare:
		if l.phase&0x8000 != 0 {
			return 255
		}
		return 0
	}
	idx := int(shape - LfoWave1)
	if shape >= LfoWaveCount {
		idx = lfoWaveCount - 1
	}
	return InterpolateSample(lfoWaves[idx*waveTableSize:][:waveTableSize], l.phase)
}

// LfoIncrement maps a 0..127 rate parameter to a phase increment per
// control tick.
func LfoIncrement(rate uint8) uint16 { return lfoIncrements[rate&0x7f] }
