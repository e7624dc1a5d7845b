// modulation_test.go - Modifier, VCA and routing tests

package engine

import (
	"math/rand"
	"testing"
)

func TestApplyModifier(t *testing.T) {
	tests := []struct {
		name       string
		op         ModifierOp
		x, y, prev uint8
		want       uint8
	}{
		{"sum", ModifierSum, 200, 100, 0, 150},
		{"product", ModifierProduct, 255, 128, 0, 127},
		{"attenuate neutral", ModifierAttenuate, 128, 255, 0, 128},
		{"max", ModifierMax, 3, 9, 0, 9},
		{"min", ModifierMin, 3, 9, 0, 3},
		{"xor", ModifierXor, 0xf0, 0xff, 0, 0x0f},
		{"greater", ModifierGE, 10, 9, 0, 255},
		{"not greater", ModifierGE, 9, 9, 0, 0},
		{"less or equal", ModifierLE, 9, 9, 0, 255},
		{"quantize 4 levels", ModifierQuantize, 0xff, 4, 0, 0xc0},
		{"quantize none", ModifierQuantize, 0xff, 1, 0, 0},
		{"lag holds at target", ModifierLag, 90, 0, 90, 90},
		{"none keeps previous", ModifierNone, 1, 2, 77, 77},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := applyModifier(tt.op, tt.x, tt.y, tt.prev); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestApplyModifier_LagApproaches(t *testing.T) {
	prev := uint8(0)
	for range 200 {
		next := applyModifier(ModifierLag, 200, 255, prev)
		if next < prev {
			t.Fatalf("lag moved away from the target: %d -> %d", prev, next)
		}
		prev = next
	}
	if prev < 190 {
		t.Errorf("expected the lag to settle near 200, got %d", prev)
	}
}

func TestModulateVCA(t *testing.T) {
	tests := []struct {
		name   string
		vca    uint8
		value  uint8
		amount int8
		want   uint8
	}{
		{"full depth", 255, 255, 63, 254},
		{"full depth silent source", 255, 0, 63, 0},
		{"inverted full source", 255, 255, -63, 0},
		{"inverted silent source", 255, 0, -63, 254},
		{"zero depth passes unity", 200, 0, 0, 198},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := modulateVCA(tt.vca, tt.value, tt.amount); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestModulateVCA_NeverAmplifies(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for range 10000 {
		vca := uint8(rng.Intn(256))
		value := uint8(rng.Intn(256))
		amount := int8(rng.Intn(127) - 63)
		if got := modulateVCA(vca, value, amount); got > vca {
			t.Fatalf("vca %d value %d amount %d: level grew to %d", vca, value, amount, got)
		}
	}
}

func TestModSource_Names(t *testing.T) {
	if SrcEnv2.String() != "env2" || SrcConstant4.String() != "=4" || ModSource(200).String() != "invalid" {
		t.Error("unexpected source names")
	}
	if DstVCA.String() != "vca" || ModDestination(99).String() != "invalid" {
		t.Error("unexpected destination names")
	}
	for _, s := range []ModSource{SrcLfo1, SrcLfo4, SrcPitchBend, SrcNote} {
		if !s.bipolar() {
			t.Errorf("expected %s to be bipolar", s)
		}
	}
	if SrcEnv1.bipolar() || SrcVelocity.bipolar() {
		t.Error("expected envelopes and velocity to be unipolar")
	}
}

// TestMatrix_DestinationsStayIn14Bits routes random sources with random
// depths and checks every accumulator after a block.
func TestMatrix_DestinationsStayIn14Bits(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	v := NewVoice(NewRingBuffer(64))
	for range 500 {
		for i := range NumModulations {
			b := PatchModulation + i*modStride
			v.SetPatchByte(uint8(b), uint8(rng.Intn(int(SrcCount))))
			v.SetPatchByte(uint8(b+1), uint8(rng.Intn(int(DstCount))))
			v.SetPatchByte(uint8(b+2), uint8(rng.Intn(256)))
		}
		for s := range SrcCount {
			v.SetModulationSource(s, uint8(rng.Intn(256)))
		}
		v.Trigger(uint16(rng.Intn(128))<<7, 100, false)
		v.ProcessBlock()
		v.out.Flush()
		for d := range DstCount {
			if x := v.Destination(d); x < 0 || x > ModulationMax {
				t.Fatalf("destination %s out of range: %d", d, x)
			}
		}
	}
}
