// osc_engine_test.go - Oscillator render contract tests

package engine

import "testing"

const testIncrement = 111930 // C4 at the voice card rate

func newTestOscillator() *Oscillator {
	return NewOscillator(NewRandom(0x1234))
}

func renderBlock(o *Oscillator, shape Algorithm, note uint8, inc uint32, syncIn []bool) ([BlockSize]uint8, [BlockSize]bool) {
	var out [BlockSize]uint8
	var syncOut [BlockSize]bool
	if syncIn == nil {
		syncIn = make([]bool, BlockSize)
	}
	o.Render(shape, note, inc, syncIn, syncOut[:], out[:])
	return out, syncOut
}

func TestOscillator_PhaseAdvancesByBlock(t *testing.T) {
	for shape := AlgoNone; shape < AlgoCount; shape++ {
		for _, param := range []uint8{0, 40, 127} {
			t.Run(shape.String(), func(t *testing.T) {
				o := newTestOscillator()
				o.SetParameter(param)
				o.SetFMParameter(36)
				for block := 0; block < 5; block++ {
					start := o.Phase()
					renderBlock(o, shape, 48, testIncrement, nil)
					want := (start + BlockSize*testIncrement) & phaseMask
					if o.Phase() != want {
						t.Fatalf("param %d block %d: expected phase %#x, got %#x", param, block, want, o.Phase())
					}
				}
			})
		}
	}
}

func TestOscillator_SyncForcesRestart(t *testing.T) {
	for shape := AlgoNone; shape < AlgoCount; shape++ {
		t.Run(shape.String(), func(t *testing.T) {
			o := newTestOscillator()
			o.SetParameter(64)
			renderBlock(o, shape, 48, testIncrement, nil)

			syncIn := make([]bool, BlockSize)
			syncIn[BlockSize-1] = true
			_, syncOut := renderBlock(o, shape, 48, testIncrement, syncIn)

			want := uint32(testIncrement)
			if rendererFor(shape, 64) == renderBandlimitedPwm {
				want = 2 * testIncrement
			}
			if o.Phase() != want {
				t.Errorf("expected phase %#x after sync on the last sample, got %#x", want, o.Phase())
			}
			if !syncOut[BlockSize-1] {
				t.Error("expected sync output on the synced sample")
			}
		})
	}
}

// A synced sample must equal the first sample of a fresh oscillator, whose
// phase also starts at one increment.
func TestOscillator_SyncSampleMatchesFreshCycle(t *testing.T) {
	shapes := []Algorithm{
		AlgoSaw, AlgoTriangle, AlgoSine, AlgoCzSaw, AlgoCzSawLP, AlgoCzPulseBP,
		AlgoCzTriLP, AlgoFM, Algo8BitLand, AlgoDirtyPWM, AlgoWavetable1 + 3, AlgoWavequence,
	}
	for _, shape := range shapes {
		t.Run(shape.String(), func(t *testing.T) {
			running := newTestOscillator()
			running.SetParameter(50)
			running.SetFMParameter(40)
			for range 3 {
				renderBlock(running, shape, 48, testIncrement, nil)
			}
			syncIn := make([]bool, BlockSize)
			syncIn[0] = true
			synced, _ := renderBlock(running, shape, 48, testIncrement, syncIn)

			fresh := newTestOscillator()
			fresh.SetParameter(50)
			fresh.SetFMParameter(40)
			first, _ := renderBlock(fresh, shape, 48, testIncrement, nil)

			if synced[0] != first[0] {
				t.Errorf("expected synced sample %d to equal fresh first sample %d", synced[0], first[0])
			}
		})
	}
}

func TestOscillator_SyncOutputReportsWrap(t *testing.T) {
	o := newTestOscillator()
	inc := uint32(0x600000)
	_, syncOut := renderBlock(o, AlgoSaw, 48, inc, nil)
	// A phase starting from zero lands on inc, which reads as a restart.
	want := [BlockSize]bool{true, false, true, false, false, true, false, true}
	if syncOut != want {
		t.Errorf("expected wrap flags %v, got %v", want, syncOut)
	}
}

func TestOscillator_SilenceIsMidScale(t *testing.T) {
	o := newTestOscillator()
	out, _ := renderBlock(o, AlgoNone, 60, testIncrement, nil)
	for i, s := range out {
		if s != SilentSample {
			t.Fatalf("sample %d: expected %d, got %d", i, SilentSample, s)
		}
	}
}

func TestOscillator_InvalidShapeIsSilent(t *testing.T) {
	o := newTestOscillator()
	out, _ := renderBlock(o, Algorithm(200), 60, testIncrement, nil)
	for i, s := range out {
		if s != SilentSample {
			t.Fatalf("sample %d: expected silence for unknown shape, got %d", i, s)
		}
	}
}

func TestRendererFor_SpecialCases(t *testing.T) {
	tests := []struct {
		name      string
		shape     Algorithm
		parameter uint8
		want      renderer
	}{
		{"square zero width", AlgoSquare, 0, renderSimpleWavetable},
		{"square with width", AlgoSquare, 1, renderBandlimitedPwm},
		{"wavequence", AlgoWavequence, 10, renderWavequence},
		{"last wavetable", AlgoWavequence - 1, 10, renderInterpolatedWavetable},
		{"polyblep alias", AlgoPolyBlepCSawWave, 10, renderPolyBlep},
		{"out of range", AlgoCount, 10, renderSilence},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rendererFor(tt.shape, tt.parameter); got != tt.want {
				t.Errorf("expected renderer %d, got %d", tt.want, got)
			}
		})
	}
}

func TestOscillator_FilteredNoiseResetSeed(t *testing.T) {
	o := newTestOscillator()
	o.SetParameter(20)
	o.Reset()
	syncIn := make([]bool, BlockSize)
	syncIn[0] = true
	renderBlock(o, AlgoFilteredNoise, 60, testIncrement, nil)

	o.state.noise.lp = 0
	first, _ := renderBlock(o, AlgoFilteredNoise, 60, testIncrement, syncIn)
	o.state.noise.lp = 0
	second, _ := renderBlock(o, AlgoFilteredNoise, 60, testIncrement, syncIn)
	if first != second {
		t.Errorf("expected identical noise after a synced restart:\n%v\n%v", first, second)
	}
}

func TestOscillator_FamilySwitchStartsClean(t *testing.T) {
	o := newTestOscillator()
	o.SetParameter(100)
	renderBlock(o, AlgoVowel, 60, testIncrement, nil)
	if o.state.family != familyVowel {
		t.Fatalf("expected vowel family, got %d", o.state.family)
	}
	renderBlock(o, AlgoQuadSawPad, 60, testIncrement, nil)
	if o.state.family != familyQuad {
		t.Fatalf("expected quad family, got %d", o.state.family)
	}
	o.state.vowel.update = 3
	renderBlock(o, AlgoVowel, 60, testIncrement, nil)
	if o.state.vowel.update != 1 {
		t.Errorf("expected a fresh vowel record, update counter %d", o.state.vowel.update)
	}
}

func TestOscillator_PolyBlepSoftensEdge(t *testing.T) {
	naive := newTestOscillator()
	blep := newTestOscillator()
	var maxNaive, maxBlep int
	for block := 0; block < 40; block++ {
		n, _ := renderBlock(naive, AlgoPolyBlepSaw, 120, 4*testIncrement, nil)
		b, _ := renderBlock(blep, AlgoPolyBlepSaw, 60, 4*testIncrement, nil)
		for i := 1; i < BlockSize; i++ {
			maxNaive = max(maxNaive, abs(int(n[i])-int(n[i-1])))
			maxBlep = max(maxBlep, abs(int(b[i])-int(b[i-1])))
		}
	}
	if maxBlep >= maxNaive {
		t.Errorf("expected corrected edges to jump less than naive ones: blep %d, naive %d", maxBlep, maxNaive)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func BenchmarkOscillator_Render(b *testing.B) {
	for _, shape := range []Algorithm{AlgoSaw, AlgoSquare, AlgoCzPulseLP, AlgoFM, AlgoVowel, AlgoPolyBlepSaw} {
		b.Run(shape.String(), func(b *testing.B) {
			o := newTestOscillator()
			o.SetParameter(60)
			var out [BlockSize]uint8
			var syncIn, syncOut [BlockSize]bool
			for b.Loop() {
				o.Render(shape, 60, testIncrement, syncIn[:], syncOut[:], out[:])
			}
		})
	}
}
