// audio_lut.go - Lookup tables for the voice card synthesis core

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

import "math"

// Table sizes
const (
	oscIncrementsSize = 768 // one octave in 1/64 semitone steps
	rateTableSize     = 128
	waveTableSize     = 257 // 256 samples plus guard
	bandLimitZones    = 8
	waveBankSize      = 128
	waveSize          = 129 // 128 samples plus guard
	wavetableCount    = 16
	wavetableStride   = 18
	lfoWaveCount      = 16
	fmRatioCount      = 25
	vowelCount        = 9
	vowelStride       = 7
	blepResidualSize  = 128
)

// Envelope and portamento times span one control block to maxSegmentTime.
const (
	maxSegmentTime = 10.0 // seconds
	minLfoRate     = 0.05 // Hz
	maxLfoRate     = 100.0
	envCurveShape  = 4.0
)

var (
	// oscIncrements holds the top 16 bits of the 24-bit phase increment for
	// pitches PitchTableBase..PitchTableBase+Octave in steps of 2.
	oscIncrements [oscIncrementsSize]uint16

	// envIncrements maps a 0..127 time parameter to a 16-bit phase
	// increment per control block. Shared by envelopes and portamento.
	envIncrements [rateTableSize]uint16

	lfoIncrements [rateTableSize]uint16

	// envCurve is the exponential segment shape, 0 at the start of a
	// segment and 65535 at its end.
	envCurve [waveTableSize]uint16

	sineTable       [waveTableSize]uint8
	bandLimitedSaw  [bandLimitZones][waveTableSize]uint8
	bandLimitedSqr  [bandLimitZones][waveTableSize]uint8
	bandLimitedTri  [bandLimitZones][waveTableSize]uint8
	distortionTable [256]uint8

	// Formant generators: index is phase position in the high nibble and
	// amplitude in the low nibble.
	formantSine   [256]int8
	formantSquare [256]int8

	// czPhaseReset is the carrier restart phase per phase-distortion response
	// (low-pass, peak, band-pass, high-pass).
	czPhaseReset = [4]uint16{0xc000, 0x4000, 0x0000, 0x8000}

	// fmRatios are modulator/carrier frequency ratios in 8.8 fixed point.
	fmRatios [fmRatioCount]uint16

	waveBank   [waveBankSize * waveSize]uint8
	wavetables [wavetableCount * wavetableStride]uint8
	lfoWaves   [lfoWaveCount * waveTableSize]uint8

	blepResidual [blepResidualSize]uint8
)

// Vowel table: three formant increments (x128 per sample), three formant
// amplitudes (0..15) and a noise modulation depth.
var vowelData = [vowelCount * vowelStride]uint8{
	10, 14, 32, 15, 11, 6, 1, // a
	7, 24, 32, 15, 9, 6, 1, // e
	4, 30, 39, 15, 6, 5, 0, // i
	7, 11, 31, 15, 12, 4, 1, // o
	4, 11, 29, 15, 8, 3, 0, // u
	9, 22, 31, 15, 10, 6, 2, // ae
	7, 16, 31, 15, 11, 5, 3, // uh
	6, 18, 22, 15, 10, 9, 2, // er
	6, 13, 29, 15, 11, 4, 1, // oo
}

var fmRatioValues = [fmRatioCount]float64{
	0.125, 0.25, 0.3333, 0.5, 0.5946, 0.6667, 0.7071, 0.75, 0.8409, 0.8909, 0.9439, 0.9862,
	1.0,
	1.0140, 1.0595, 1.4142, 1.5, 2.0, 2.5, 3.0, 3.5, 4.0, 5.0, 7.0, 8.0,
}

func init() {
	initRateTables()
	initWaveforms()
	initFormants()
	initWaveBank()
	initLfoWaves()

	for i, r := range fmRatioValues {
		fmRatios[i] = uint16(math.Round(r * 256))
	}
	for i := range blepResidual {
		x := float64(i) / float64(blepResidualSize-1)
		blepResidual[i] = uint8(math.Round(128 * x * x))
	}
	for i := range distortionTable {
		x := (float64(i) - 128) / 128
		distortionTable[i] = toU8(math.Tanh(4*x) / math.Tanh(4))
	}
}

func initRateTables() {
	for i := range oscIncrements {
		pitch := float64(PitchTableBase+2*i) / SemitoneUnit
		freq := 440 * math.Pow(2, (pitch-69)/12)
		inc := freq * (1 << phaseBits) / SampleRate
		oscIncrements[i] = uint16(math.Min(math.Round(inc/256), 65535))
	}

	minTime := 1.0 / ControlRate
	for i := range envIncrements {
		t := minTime * math.Pow(maxSegmentTime/minTime, float64(i)/(rateTableSize-1))
		inc := 65536 / (t * ControlRate)
		envIncrements[i] = uint16(math.Max(1, math.Min(65535, math.Round(inc))))
	}

	for i := range lfoIncrements {
		f := minLfoRate * math.Pow(maxLfoRate/minLfoRate, float64(i)/(rateTableSize-1))
		inc := f * 65536 / ControlRate
		lfoIncrements[i] = uint16(math.Max(1, math.Round(inc)))
	}

	norm := 1 - math.Exp(-envCurveShape)
	for i := range envCurve {
		x := math.Min(float64(i)/256, 1)
		envCurve[i] = uint16(math.Round(65535 * (1 - math.Exp(-envCurveShape*x)) / norm))
	}
}

// toU8 maps [-1, 1] to an unsigned sample in 1..255.
func toU8(y float64) uint8 {
	y = math.Max(-1, math.Min(1, y))
	return uint8(math.Round(128 + 127*y))
}

// zoneHarmonics is the highest harmonic kept in band-limit zone z: zone z
// must stay alias-free up to MIDI note 16z+27 at the voice card sample rate.
func zoneHarmonics(z int) int {
	top := 440 * math.Pow(2, (float64(16*z+27)-69)/12)
	n := int(SampleRate / 2 / top)
	return max(1, min(n, 127))
}

// additive fills dst (with guard) from a harmonic amplitude function,
// normalised to the full 8-bit range.
func additive(dst []uint8, n int, amp func(h int) float64) {
	samples := len(dst) - 1
	buf := make([]float64, samples)
	peak := 0.0
	for i := range buf {
		x := 2 * math.Pi * float64(i) / float64(samples)
		s := 0.0
		for h := 1; h <= n; h++ {
			if a := amp(h); a != 0 {
				s += a * math.Sin(float64(h)*x)
			}
		}
		buf[i] = s
		peak = math.Max(peak, math.Abs(s))
	}
	if peak == 0 {
		peak = 1
	}
	for i, s := range buf {
		dst[i] = toU8(s / peak)
	}
	dst[samples] = dst[0]
}

func initWaveforms() {
	for i := range sineTable {
		sineTable[i] = toU8(math.Sin(2 * math.Pi * float64(i) / 256))
	}
	for z := 0; z < bandLimitZones; z++ {
		n := zoneHarmonics(z)
		// Rising ramp.
		additive(bandLimitedSaw[z][:], n, func(h int) float64 {
			return -1 / float64(h)
		})
		additive(bandLimitedSqr[z][:], n, func(h int) float64 {
			if h%2 == 0 {
				return 0
			}
			return 1 / float64(h)
		})
		additive(bandLimitedTri[z][:], n, func(h int) float64 {
			if h%2 == 0 {
				return 0
			}
			if (h/2)%2 == 1 {
				return -1 / float64(h*h)
			}
			return 1 / float64(h*h)
		})
	}
}

func initFormants() {
	for p := 0; p < 16; p++ {
		s := math.Sin(2 * math.Pi * float64(p) / 16)
		sq := 1.0
		if p >= 8 {
			sq = -1
		}
		for a := 0; a < 16; a++ {
			formantSine[p<<4|a] = int8(math.Round(2 * float64(a) * s))
			formantSquare[p<<4|a] = int8(2 * float64(a) * sq)
		}
	}
}

// waveFamilies generate the elementary waves: 8 families of 16 waves,
// evaluated at x in [0, 1).
var waveFamilies = [8]func(w int, x float64) float64{
	// Saw, brightening.
	func(w int, x float64) float64 {
		return harmonicSum(x, w+1, func(h int) float64 { return 1 / float64(h) })
	},
	// Square, brightening.
	func(w int, x float64) float64 {
		return harmonicSum(x, 2*w+1, func(h int) float64 {
			if h%2 == 0 {
				return 0
			}
			return 1 / float64(h)
		})
	},
	// Pulse width sweep.
	func(w int, x float64) float64 {
		d := float64(w+1) / 32
		return harmonicSum(x, 24, func(h int) float64 {
			return math.Sin(math.Pi*float64(h)*d) / float64(h)
		})
	},
	// Moving formant peak.
	func(w int, x float64) float64 {
		c := float64(w + 1)
		return harmonicSum(x, 32, func(h int) float64 {
			d := float64(h) - c
			return math.Exp(-d * d / 4)
		})
	},
	// Windowed hard-sync sweep.
	func(w int, x float64) float64 {
		r := 1 + float64(w)/2
		return math.Sin(2*math.Pi*x*r) * (1 - x)
	},
	// Sine fold.
	func(w int, x float64) float64 {
		g := 1 + float64(w)/3
		return math.Sin(g * math.Pi / 2 * math.Sin(2*math.Pi*x))
	},
	// Drawbar organ: bit pattern selects harmonics 1, 2, 3, 4, 6, 8.
	func(w int, x float64) float64 {
		bars := [6]int{1, 2, 3, 4, 6, 8}
		pattern := w<<1 | 1
		s := 0.0
		for i, h := range bars {
			if pattern&(1<<i) != 0 {
				s += math.Sin(2 * math.Pi * float64(h) * x)
			}
		}
		return s
	},
	// Stepped sine.
	func(w int, x float64) float64 {
		levels := float64(w + 2)
		return math.Round(math.Sin(2*math.Pi*x)*levels) / levels
	},
}

func harmonicSum(x float64, n int, amp func(h int) float64) float64 {
	s := 0.0
	for h := 1; h <= n; h++ {
		s += amp(h) * math.Sin(2*math.Pi*float64(h)*x)
	}
	return s
}

func initWaveBank() {
	samples := waveSize - 1
	buf := make([]float64, samples)
	for f, gen := range waveFamilies {
		for w := 0; w < 16; w++ {
			peak := 0.0
			for i := range buf {
				buf[i] = gen(w, float64(i)/float64(samples))
				peak = math.Max(peak, math.Abs(buf[i]))
			}
			if peak == 0 {
				peak = 1
			}
			wave := waveBank[(f*16+w)*waveSize:][:waveSize]
			for i, s := range buf {
				wave[i] = toU8(s / peak)
			}
			wave[samples] = wave[0]
		}
	}

	// The first eight wavetables sweep one family; the rest cross families.
	for t := 0; t < wavetableCount; t++ {
		wt := wavetables[t*wavetableStride:][:wavetableStride]
		if t < 8 {
			wt[0] = 15
			for s := 0; s < 16; s++ {
				wt[1+s] = uint8(t*16 + s)
			}
			continue
		}
		a, b := t-8, (t-5)%8
		wt[0] = 7
		for s := 0; s < 8; s++ {
			fam := a
			if s%2 == 1 {
				fam = b
			}
			wt[1+s] = uint8(fam*16 + s*2)
		}
	}
}

var lfoShapes = [lfoWaveCount]func(x float64) float64{
	func(x float64) float64 { return math.Sin(2 * math.Pi * x) },
	func(x float64) float64 { return 2*math.Abs(math.Sin(math.Pi*x)) - 1 },
	func(x float64) float64 { return 2*math.Pow(math.Sin(math.Pi*x), 4) - 1 },
	func(x float64) float64 { return 1 - 2*x*x },
	func(x float64) float64 { return 2*math.Pow(x, 3) - 1 },
	func(x float64) float64 { return 1 - 2*math.Sqrt(x) },
	func(x float64) float64 { return math.Round(4*math.Sin(2*math.Pi*x)) / 4 },
	func(x float64) float64 { return math.Floor(x*8)/3.5 - 1 },
	func(x float64) float64 { return 1 - math.Floor(x*4)/1.5 },
	func(x float64) float64 {
		return (math.Sin(2*math.Pi*x) + math.Sin(6*math.Pi*x)/3) / 1.1547
	},
	func(x float64) float64 { return math.Sin(2*math.Pi*x) * math.Cos(4*math.Pi*x) },
	func(x float64) float64 { return math.Exp(-6*x)*2 - 1 },
	func(x float64) float64 {
		if x < 0.1 {
			return 1
		}
		return -1
	},
	func(x float64) float64 { return math.Sin(2 * math.Pi * x * x) },
	func(x float64) float64 { return math.Tanh(4*math.Sin(2*math.Pi*x)) / math.Tanh(4) },
	func(x float64) float64 {
		steps := [8]float64{0.2, -0.8, 0.6, -0.1, 1, -0.5, 0.3, -1}
		return steps[int(x*8)&7]
	},
}

func initLfoWaves() {
	for w, f := range lfoShapes {
		wave := lfoWaves[w*waveTableSize:][:waveTableSize]
		for i := 0; i < waveTableSize-1; i++ {
			wave[i] = toU8(f(float64(i) / 256))
		}
		wave[waveTableSize-1] = wave[0]
	}
}
