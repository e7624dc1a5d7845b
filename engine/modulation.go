// modulation.go - Modulation sources, destinations and operators

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

// ModSource indexes the modulation source values. Patch bytes store these.
type ModSource uint8

const (
	SrcEnv1 ModSource = iota
	SrcEnv2
	SrcEnv3
	SrcLfo1
	SrcLfo2
	SrcLfo3
	SrcLfo4
	SrcOp1
	SrcOp2
	SrcOp3
	SrcOp4
	SrcSeq1
	SrcSeq2
	SrcArpStep
	SrcVelocity
	SrcAftertouch
	SrcPitchBend
	SrcWheel
	SrcWheel2
	SrcExpression
	SrcNote
	SrcGate
	SrcNoise
	SrcRandom
	SrcConstant256
	SrcConstant128
	SrcConstant64
	SrcConstant32
	SrcConstant16
	SrcConstant8
	SrcConstant4
	SrcCount
)

var modSourceNames = [SrcCount]string{
	"env1", "env2", "env3", "lfo1", "lfo2", "lfo3", "lfo4",
	"op1", "op2", "op3", "op4", "seq1", "seq2", "arp",
	"velo", "aftertouch", "bender", "wheel", "wheel2", "expression",
	"note", "gate", "noise", "random",
	"=256", "=128", "=64", "=32", "=16", "=8", "=4",
}

func (s ModSource) String() string {
	if s < SrcCount {
		return modSourceNames[s]
	}
	return "invalid"
}

// bipolar reports sources whose neutral value is mid-scale.
func (s ModSource) bipolar() bool {
	return (s >= SrcLfo1 && s <= SrcLfo4) || s == SrcPitchBend || s == SrcNote
}

// ModDestination indexes the 14-bit modulation accumulators.
type ModDestination uint8

const (
	DstParameter1 ModDestination = iota
	DstParameter2
	DstOsc1
	DstOsc2
	DstOsc12Coarse
	DstOsc12Fine
	DstMixBalance
	DstMixParam
	DstMixNoise
	DstMixSubOsc
	DstMixFuzz
	DstMixCrush
	DstFilterCutoff
	DstFilterResonance
	DstAttack
	DstDecay
	DstRelease
	DstLfo4
	DstVCA
	DstCount
)

var modDestinationNames = [DstCount]string{
	"prm1", "prm2", "osc1", "osc2", "coarse", "fine",
	"mix", "xmod", "noise", "sub", "fuzz", "crush",
	"cutoff", "reso", "attack", "decay", "release", "lfo4", "vca",
}

func (d ModDestination) String() string {
	if d < DstCount {
		return modDestinationNames[d]
	}
	return "invalid"
}

// ModifierOp combines two sources into one of the Op sources.
type ModifierOp uint8

const (
	ModifierNone ModifierOp = iota
	ModifierSum
	ModifierProduct
	ModifierAttenuate
	ModifierMax
	ModifierMin
	ModifierXor
	ModifierGE
	ModifierLE
	ModifierQuantize
	ModifierLag
	ModifierCount
)

// MixOp combines the two oscillators.
type MixOp uint8

const (
	MixSum MixOp = iota
	MixSync
	MixRingMod
	MixXor
	MixFold
	MixBits
	MixOpCount
)

type FilterMode uint8

const (
	FilterLP FilterMode = iota
	FilterBP
	FilterHP
	FilterNotch
)

const (
	NumModulations = 14
	NumModifiers   = 4
	NumEnvelopes   = 3
	NumOscillators = 2
	NumFilters     = 2
)

// applyModifier evaluates a two-operand modifier. prev is the operator's
// previous output, used by the lag processor.
func applyModifier(op ModifierOp, x, y, prev uint8) uint8 {
	switch op {
	case ModifierSum:
		return x>>1 + y>>1
	case ModifierProduct:
		return U8U8MulShift8(x, y)
	case ModifierAttenuate:
		return uint8(S8U8MulShift8(int8(x+128), y)) + 128
	case ModifierMax:
		return max(x, y)
	case ModifierMin:
		return min(x, y)
	case ModifierXor:
		return x ^ y
	case ModifierGE:
		if x > y {
			return 255
		}
		return 0
	case ModifierLE:
		if x > y {
			return 0
		}
		return 255
	case ModifierQuantize:
		var mask uint8
		for y >>= 1; y != 0; y >>= 1 {
			mask = mask>>1 | 0x80
		}
		return x & mask
	case ModifierLag:
		rate := uint16(y>>2) + 1
		return highByte((256-rate)*uint16(prev) + rate*uint16(x))
	}
	return prev
}
