// audio_lut_test.go - Lookup table sanity tests

package engine

import "testing"

func TestBandLimitedSaw_Rises(t *testing.T) {
	for z := range bandLimitZones {
		if bandLimitedSaw[z][64] >= bandLimitedSaw[z][192] {
			t.Errorf("zone %d: expected a rising ramp, got %d at 1/4 and %d at 3/4",
				z, bandLimitedSaw[z][64], bandLimitedSaw[z][192])
		}
	}
}

func TestBandLimitedTables_GuardWraps(t *testing.T) {
	for z := range bandLimitZones {
		for name, table := range map[string][]uint8{
			"saw": bandLimitedSaw[z][:],
			"sqr": bandLimitedSqr[z][:],
			"tri": bandLimitedTri[z][:],
		} {
			if table[256] != table[0] {
				t.Errorf("%s zone %d: expected guard %d, got %d", name, z, table[0], table[256])
			}
		}
	}
}

func TestZoneHarmonics_Decreasing(t *testing.T) {
	prev := zoneHarmonics(0)
	for z := 1; z < bandLimitZones; z++ {
		n := zoneHarmonics(z)
		if n > prev {
			t.Errorf("zone %d: expected at most %d harmonics, got %d", z, prev, n)
		}
		prev = n
	}
	if zoneHarmonics(bandLimitZones-1) < 1 {
		t.Error("expected at least the fundamental in the top zone")
	}
}

func TestOscIncrements_Octave(t *testing.T) {
	// The table spans one octave, so the last entry is just under twice the first.
	first, last := float64(oscIncrements[0]), float64(oscIncrements[oscIncrementsSize-1])
	if ratio := last / first; ratio < 1.98 || ratio > 2.0 {
		t.Errorf("expected an octave ratio just below 2, got %.4f", ratio)
	}
	for i := 1; i < oscIncrementsSize; i++ {
		if oscIncrements[i] < oscIncrements[i-1] {
			t.Fatalf("entry %d: expected non-decreasing increments", i)
		}
	}
}

func TestEnvIncrements_Range(t *testing.T) {
	if envIncrements[0] != 65535 {
		t.Errorf("expected the fastest segment to finish in one block, got increment %d", envIncrements[0])
	}
	for i := 1; i < rateTableSize; i++ {
		if envIncrements[i] > envIncrements[i-1] {
			t.Fatalf("entry %d: expected slower segments for larger times", i)
		}
		if envIncrements[i] == 0 {
			t.Fatalf("entry %d: zero increment would stall a segment", i)
		}
	}
}

func TestEnvCurve_Endpoints(t *testing.T) {
	if envCurve[0] != 0 {
		t.Errorf("expected curve start 0, got %d", envCurve[0])
	}
	if envCurve[256] != 65535 {
		t.Errorf("expected curve end 65535, got %d", envCurve[256])
	}
}

func TestFmRatios_Unity(t *testing.T) {
	if fmRatios[12] != 256 {
		t.Errorf("expected the centre ratio 1.0 (256), got %d", fmRatios[12])
	}
}
