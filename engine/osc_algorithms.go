// osc_algorithms.go - Oscillator algorithm identifiers

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

// Algorithm selects an oscillator renderer. Values are patch bytes and
// must stay stable.
type Algorithm uint8

const (
	AlgoNone Algorithm = iota
	AlgoSaw
	AlgoSquare
	AlgoTriangle
	AlgoSine
	AlgoCzSaw
	AlgoCzSawLP
	AlgoCzSawPK
	AlgoCzSawBP
	AlgoCzSawHP
	AlgoCzPulseLP
	AlgoCzPulsePK
	AlgoCzPulseBP
	AlgoCzPulseHP
	AlgoCzTriLP
	AlgoQuadSawPad
	AlgoFM
	Algo8BitLand
	AlgoDirtyPWM
	AlgoFilteredNoise
	AlgoVowel
	AlgoWavetable1
	// AlgoWavetable1..AlgoWavetable1+15 select the wavetable presets.
	AlgoWavequence Algorithm = iota + wavetableCount - 1
	AlgoPolyBlepSaw
	AlgoPolyBlepPWM
	AlgoPolyBlepCSaw
	AlgoPolyBlepSawWave
	AlgoPolyBlepPWMWave
	AlgoPolyBlepCSawWave
	AlgoCount
)

var algorithmNames = [AlgoCount]string{
	"none", "saw", "square", "triangle", "sine", "cz saw",
	"cz saw lp", "cz saw pk", "cz saw bp", "cz saw hp",
	"cz pulse lp", "cz pulse pk", "cz pulse bp", "cz pulse hp", "cz tri lp",
	"quad saw pad", "fm", "8bit land", "dirty pwm", "filtered noise", "vowel",
	"wavetable 1", "wavetable 2", "wavetable 3", "wavetable 4",
	"wavetable 5", "wavetable 6", "wavetable 7", "wavetable 8",
	"wavetable 9", "wavetable 10", "wavetable 11", "wavetable 12",
	"wavetable 13", "wavetable 14", "wavetable 15", "wavetable 16",
	"wavequence", "polyblep saw", "polyblep pwm", "polyblep csaw",
	"polyblep saw wave", "polyblep pwm wave", "polyblep csaw wave",
}

func (a Algorithm) String() string {
	if a < AlgoCount {
		return algorithmNames[a]
	}
	return "invalid"
}

// renderer is the closed set of oscillator render paths an Algorithm maps to.
type renderer uint8

const (
	renderSilence renderer = iota
	renderSimpleWavetable
	renderBandlimitedPwm
	renderCzSaw
	renderCzReso
	renderQuadSawPad
	renderFM
	render8BitLand
	renderDirtyPwm
	renderFilteredNoise
	renderVowel
	renderInterpolatedWavetable
	renderWavequence
	renderPolyBlep
)

// rendererFor resolves an algorithm and its parameter to a render path.
func rendererFor(shape Algorithm, parameter uint8) renderer {
	switch {
	case shape == AlgoSquare && parameter == 0:
		return renderSimpleWavetable
	case shape == AlgoSquare:
		return renderBandlimitedPwm
	case shape == AlgoSaw || shape == AlgoTriangle || shape == AlgoSine:
		return renderSimpleWavetable
	case shape == AlgoCzSaw:
		return renderCzSaw
	case shape >= AlgoCzSawLP && shape <= AlgoCzTriLP:
		return renderCzReso
	case shape == AlgoQuadSawPad:
		return renderQuadSawPad
	case shape == AlgoFM:
		return renderFM
	case shape == Algo8BitLand:
		return render8BitLand
	case shape == AlgoDirtyPWM:
		return renderDirtyPwm
	case shape == AlgoFilteredNoise:
		return renderFilteredNoise
	case shape == AlgoVowel:
		return renderVowel
	case shape == AlgoWavequence:
		return renderWavequence
	case shape >= AlgoWavetable1 && shape < AlgoWavequence:
		return renderInterpolatedWavetable
	case shape >= AlgoPolyBlepSaw && shape < AlgoCount:
		return renderPolyBlep
	}
	return renderSilence
}
