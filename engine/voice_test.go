// voice_test.go - Voice rendering, lifecycle and glide tests

package engine

import (
	"math"
	"math/rand"
	"testing"
)

// sawPatch is a bare sawtooth on oscillator 1 with every routing depth at
// zero, so the VCA is the part volume alone.
func sawPatch() Patch {
	pp := DefaultParams()
	pp.Osc[0].Shape = AlgoSaw
	pp.Mix.Balance = 0
	for i := range pp.Modulations {
		pp.Modulations[i].Amount = 0
	}
	return pp.Bytes()
}

func newTestVoice() (*Voice, *RingBuffer) {
	ring := NewRingBuffer(64)
	return NewVoice(ring), ring
}

func renderVoice(v *Voice, ring *RingBuffer, blocks int) []uint8 {
	out := make([]uint8, 0, blocks*BlockSize)
	var block [BlockSize]uint8
	for range blocks {
		v.ProcessBlock()
		n := ring.ReadInto(block[:])
		out = append(out, block[:n]...)
	}
	return out
}

func TestVoice_InitIsSilent(t *testing.T) {
	v, ring := newTestVoice()
	for i, s := range renderVoice(v, ring, 10) {
		if s != SilentSample {
			t.Fatalf("sample %d: expected silence, got %d", i, s)
		}
	}
	if v.Gate() {
		t.Error("expected the gate to be closed after init")
	}
}

func TestVoice_BlockWritesBlockSize(t *testing.T) {
	v, ring := newTestVoice()
	v.LoadPatch(sawPatch())
	v.Trigger(60<<7, 100, false)
	v.ProcessBlock()
	if ring.Readable() != BlockSize {
		t.Errorf("expected %d samples per block, got %d", BlockSize, ring.Readable())
	}
}

func TestVoice_SawPeriodMatchesPitch(t *testing.T) {
	v, ring := newTestVoice()
	v.LoadPatch(sawPatch())
	v.Trigger(60<<7, 100, false)
	renderVoice(v, ring, 20)
	samples := renderVoice(v, ring, 200)

	sum := 0
	for _, s := range samples {
		sum += int(s)
	}
	mean := sum / len(samples)

	var crossings []int
	for i := 1; i < len(samples); i++ {
		if int(samples[i-1]) < mean && int(samples[i]) >= mean {
			crossings = append(crossings, i)
		}
	}
	if len(crossings) < 5 {
		t.Fatalf("expected at least 5 periods, got %d crossings", len(crossings))
	}
	measured := float64(crossings[len(crossings)-1]-crossings[0]) / float64(len(crossings)-1)
	want := float64(1<<phaseBits) / float64(v.osc[0].PhaseIncrement())
	if math.Abs(measured-want) > 0.5 {
		t.Errorf("expected a period of %.2f samples, measured %.2f", want, measured)
	}
	// C4 at the voice card rate.
	if hz := SampleRate / measured; math.Abs(hz-261.63) > 3 {
		t.Errorf("expected about 261.6 Hz, got %.1f", hz)
	}
}

func TestVoice_KillSilencesNextBlock(t *testing.T) {
	v, ring := newTestVoice()
	p := sawPatch()
	p[PatchModulation+10*modStride+2] = 63 // env2 -> vca
	v.LoadPatch(p)
	v.Trigger(60<<7, 127, false)

	moving := false
	for _, s := range renderVoice(v, ring, 20) {
		if s != SilentSample {
			moving = true
		}
	}
	if !moving {
		t.Fatal("expected sound before the kill")
	}

	v.Kill()
	if v.Gate() {
		t.Error("expected the gate to close on kill")
	}
	for i, s := range renderVoice(v, ring, 1) {
		if s != SilentSample {
			t.Fatalf("sample %d: expected silence after kill, got %d", i, s)
		}
	}
	if v.VCA() >= silenceThreshold {
		t.Errorf("expected the VCA below %d, got %d", silenceThreshold, v.VCA())
	}
}

func TestVoice_ReleaseReachesDead(t *testing.T) {
	v, ring := newTestVoice()
	v.LoadPatch(sawPatch())
	v.Trigger(48<<7, 100, false)
	renderVoice(v, ring, 50)
	v.Release()
	for range 20000 {
		renderVoice(v, ring, 1)
		if v.EnvelopeStage(1) == StageDead {
			return
		}
	}
	t.Errorf("expected envelope 2 to reach dead, stage %s", v.EnvelopeStage(1))
}

func TestVoice_GlideReachesTarget(t *testing.T) {
	v, ring := newTestVoice()
	v.LoadPatch(sawPatch())
	v.SetPartByte(PartPortamento, 60)
	v.Trigger(60<<7, 100, false)
	renderVoice(v, ring, 2)
	if v.Pitch() != 60<<7 {
		t.Fatalf("expected the first note to start at its pitch, got %d", v.Pitch())
	}

	v.Trigger(72<<7, 100, false)
	prev := v.Pitch()
	steps := 0
	for v.Pitch() != 72<<7 && steps < 5000 {
		renderVoice(v, ring, 1)
		if v.Pitch() < prev {
			t.Fatalf("glide moved away from the target: %d -> %d", prev, v.Pitch())
		}
		prev = v.Pitch()
		steps++
	}
	if v.Pitch() != 72<<7 {
		t.Fatalf("expected glide to land on %d, got %d", 72<<7, v.Pitch())
	}
	if steps < 10 {
		t.Errorf("expected a gradual glide, landed in %d blocks", steps)
	}
}

func TestVoice_LegatoKeepsEnvelopes(t *testing.T) {
	v, ring := newTestVoice()
	v.LoadPatch(sawPatch())
	v.SetPartByte(PartLegato, 1)
	v.Trigger(60<<7, 100, false)
	renderVoice(v, ring, 200)
	stage := v.EnvelopeStage(0)
	if stage == StageAttack {
		t.Fatal("expected the first envelope to have left the attack")
	}

	v.Trigger(64<<7, 30, true)
	if v.EnvelopeStage(0) != stage {
		t.Errorf("expected a legato note to keep stage %s, got %s", stage, v.EnvelopeStage(0))
	}
	if v.Source(SrcVelocity) != 100 {
		t.Errorf("expected the legato note to keep velocity 100, got %d", v.Source(SrcVelocity))
	}

	v.Trigger(67<<7, 30, false)
	if v.EnvelopeStage(0) != StageAttack {
		t.Errorf("expected a non-legato note to retrigger, got %s", v.EnvelopeStage(0))
	}
	if v.Pitch() != 67<<7 {
		t.Errorf("expected a non-legato note in legato mode to jump, pitch %d", v.Pitch())
	}
}

func TestVoice_OutOfRangeWritesIgnored(t *testing.T) {
	v, _ := newTestVoice()
	before := v.Patch()
	v.SetPatchByte(PatchSize, 9)
	v.SetPatchByte(255, 9)
	v.SetPartByte(PartSize, 9)
	v.SetModulationSource(SrcCount, 9)
	if v.Patch() != before {
		t.Error("expected out-of-range patch writes to be ignored")
	}
	if v.Source(SrcCount) != 0 || v.Destination(DstCount) != 0 {
		t.Error("expected out-of-range reads to return 0")
	}
}

func TestVoice_ResetAllControllers(t *testing.T) {
	v, _ := newTestVoice()
	v.SetModulationSource(SrcPitchBend, 3)
	v.SetModulationSource(SrcWheel, 200)
	v.ResetAllControllers()
	if v.Source(SrcPitchBend) != 128 || v.Source(SrcWheel) != 0 {
		t.Errorf("expected bender 128 and wheel 0, got %d and %d", v.Source(SrcPitchBend), v.Source(SrcWheel))
	}
	if v.Source(SrcConstant256) != 255 || v.Source(SrcConstant4) != 4 {
		t.Error("expected the constant sources to be restored")
	}
}

func TestVoice_CrushRange(t *testing.T) {
	v, ring := newTestVoice()
	p := sawPatch()
	for _, crush := range []uint8{0, 31, 63} {
		p[PatchCrush] = crush
		v.LoadPatch(p)
		v.Trigger(60<<7, 100, false)
		renderVoice(v, ring, 1)
		if want := crush + 1; v.Crush() != want {
			t.Errorf("crush %d: expected decimation %d, got %d", crush, want, v.Crush())
		}
	}
}

// TestVoice_RandomBytesNeverPanic drives the voice with arbitrary patch,
// part and source bytes.
func TestVoice_RandomBytesNeverPanic(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	v, ring := newTestVoice()
	for round := range 300 {
		var p Patch
		for i := range p {
			p[i] = byte(rng.Intn(256))
		}
		v.LoadPatch(p)
		for i := range PartSize {
			v.SetPartByte(uint8(i), byte(rng.Intn(256)))
		}
		for s := range SrcCount {
			v.SetModulationSource(s, byte(rng.Intn(256)))
		}
		switch round % 4 {
		case 0:
			v.Trigger(uint16(rng.Intn(1<<14)), byte(rng.Intn(128)), rng.Intn(2) == 0)
		case 1:
			v.Release()
		case 2:
			v.TriggerEnvelope(rng.Intn(5)-1, EnvelopeStage(rng.Intn(7)))
		}
		if n := len(renderVoice(v, ring, 4)); n != 4*BlockSize {
			t.Fatalf("round %d: expected %d samples, got %d", round, 4*BlockSize, n)
		}
	}
}

func BenchmarkVoice_ProcessBlock(b *testing.B) {
	v, ring := newTestVoice()
	v.LoadPatch(sawPatch())
	v.Trigger(60<<7, 100, false)
	var block [BlockSize]uint8
	for b.Loop() {
		v.ProcessBlock()
		ring.ReadInto(block[:])
	}
}
