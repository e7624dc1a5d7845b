package main

import (
	"sync"
	"testing"

	"github.com/intuitionamiga/VoiceCard/engine"
	"github.com/intuitionamiga/VoiceCard/link"
)

func newSawHost(t *testing.T, edit func(*engine.PatchParameters)) *VoiceHost {
	t.Helper()
	pp := engine.DefaultParams()
	pp.Osc[0].Shape = engine.AlgoSaw
	if edit != nil {
		edit(&pp)
	}
	p := pp.Bytes()
	h := NewVoiceHost()
	h.Feed(link.AppendBulkPatch(nil, &p))
	return h
}

func TestVoiceHost_BulkPatchLoads(t *testing.T) {
	h := newSawHost(t, func(pp *engine.PatchParameters) { pp.Mix.Crush = 9 })
	p := h.Voice().Patch()
	if got := engine.Algorithm(p[engine.PatchOsc1]); got != engine.AlgoSaw {
		t.Fatalf("expected osc1 saw, got %v", got)
	}
	if p[engine.PatchCrush] != 9 {
		t.Fatalf("expected crush 9, got %d", p[engine.PatchCrush])
	}
}

func TestVoiceHost_RenderStepsPerBlock(t *testing.T) {
	h := newSawHost(t, nil)
	h.Feed(link.AppendNoteOn(nil, 60<<7, 100, false))
	out := make([]uint8, 10*engine.BlockSize+3)
	h.Render(out)
	if h.Blocks() != 11 {
		t.Fatalf("expected 11 blocks, got %d", h.Blocks())
	}
}

func TestVoiceHost_CrushHoldsSamples(t *testing.T) {
	h := newSawHost(t, func(pp *engine.PatchParameters) { pp.Mix.Crush = 3 })
	h.Feed(link.AppendNoteOn(nil, 60<<7, 100, false))
	out := make([]uint8, 64*engine.BlockSize)
	h.Render(out)

	if h.Voice().Crush() != 4 {
		t.Fatalf("expected decimation 4, got %d", h.Voice().Crush())
	}
	changes := 0
	for i := 1; i < len(out); i++ {
		if i%4 != 3 && out[i] != out[i-1] {
			t.Fatalf("sample %d changed between latches: %d -> %d", i, out[i-1], out[i])
		}
		if out[i] != out[i-1] {
			changes++
		}
	}
	if changes == 0 {
		t.Fatal("expected the held output to change")
	}
}

func TestVoiceHost_UnderrunHoldsLastSample(t *testing.T) {
	h := newSawHost(t, nil)
	h.Feed(link.AppendNoteOn(nil, 60<<7, 100, false))
	h.Step()
	var last uint8
	for range engine.BlockSize {
		last = h.ReadSample()
	}
	for range 5 {
		if got := h.ReadSample(); got != last {
			t.Fatalf("expected held sample %d on underrun, got %d", last, got)
		}
	}
}

func TestVoiceHost_SlaveLfoRestartsOnNote(t *testing.T) {
	h := newSawHost(t, func(pp *engine.PatchParameters) {
		pp.EnvLfo[0].Retrigger = engine.LfoSyncSlave
		pp.EnvLfo[0].LfoRate = 100
		pp.EnvLfo[1].LfoRate = 100
	})
	for range 20 {
		h.Step()
	}
	if h.lfos[0].Phase() == 0 || h.lfos[1].Phase() == 0 {
		t.Fatal("expected the LFOs to be running")
	}

	h.Feed(link.AppendNoteOn(nil, 60<<7, 100, true))
	if h.lfos[0].Phase() == 0 {
		t.Fatal("expected a legato note to leave the slave LFO alone")
	}

	free := h.lfos[1].Phase()
	h.Feed(link.AppendNoteOn(nil, 60<<7, 100, false))
	if h.lfos[0].Phase() != 0 {
		t.Fatalf("expected slave LFO phase 0, got %d", h.lfos[0].Phase())
	}
	if h.lfos[1].Phase() != free {
		t.Fatal("expected the free LFO to keep running")
	}
}

func TestVoiceHost_MasterLfoRetriggersEnvelope(t *testing.T) {
	h := newSawHost(t, func(pp *engine.PatchParameters) {
		pp.EnvLfo[0].Retrigger = engine.LfoSyncMaster
		pp.EnvLfo[0].LfoRate = 127
		pp.EnvLfo[0].Attack = 60
		pp.EnvLfo[0].Release = 0
	})
	h.Feed(link.AppendNoteOn(nil, 60<<7, 100, false))
	h.Step()
	h.Feed(link.AppendRelease(nil))

	retriggered := false
	for range engine.ControlRate {
		h.Step()
		if h.Voice().EnvelopeStage(0) == engine.StageAttack {
			retriggered = true
			break
		}
	}
	if !retriggered {
		t.Fatal("expected the master LFO to retrigger envelope 1")
	}
}

func TestVoiceHost_LfoValuesReachSources(t *testing.T) {
	h := newSawHost(t, func(pp *engine.PatchParameters) {
		pp.EnvLfo[2].LfoShape = engine.LfoRamp
		pp.EnvLfo[2].LfoRate = 90
	})
	seen := map[uint8]bool{}
	for range 200 {
		h.Step()
		seen[h.Voice().Source(engine.SrcLfo3)] = true
	}
	if len(seen) < 10 {
		t.Fatalf("expected a moving LFO3 source, saw %d distinct values", len(seen))
	}
}

func TestVoiceHost_Status(t *testing.T) {
	h := newSawHost(t, nil)
	h.Feed(link.AppendNoteOn(nil, 60<<7, 100, false))
	h.Step()
	s := h.Status()
	if !s.Gate || !s.NoteLed || !s.RxLed {
		t.Fatalf("expected gate and both LEDs on, got %+v", s)
	}
	if s.Crush != h.Voice().Crush() || s.Cutoff != h.Voice().Cutoff() {
		t.Fatalf("expected crush %d cutoff %d, got %+v", h.Voice().Crush(), h.Voice().Cutoff(), s)
	}

	h.Feed(link.AppendLightsOut(nil))
	h.Step()
	if s := h.Status(); s.RxLed || s.NoteLed {
		t.Fatalf("expected LEDs dark after lights out, got %+v", s)
	}
}

func TestVoiceHost_ConcurrentSend(t *testing.T) {
	h := newSawHost(t, nil)
	var wg sync.WaitGroup
	for i := range 4 {
		wg.Go(func() {
			for n := range 100 {
				h.Send(link.AppendNoteOn(nil, uint16(48+i*4+n%4)<<7, 100, n%2 == 1))
			}
		})
	}
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	buf := make([]uint8, engine.BlockSize)
	for {
		select {
		case <-done:
			h.Render(buf)
			if h.Receiver().Dropped() != 0 {
				t.Fatalf("expected no dropped bytes, got %d", h.Receiver().Dropped())
			}
			return
		default:
			h.Render(buf)
		}
	}
}
