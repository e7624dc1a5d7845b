// voice_host.go - Voice card host: link input, part LFOs and DAC output

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

package main

import (
	"sync/atomic"

	"github.com/intuitionamiga/VoiceCard/engine"
	"github.com/intuitionamiga/VoiceCard/link"
)

const hostCommandQueue = 256

// VoiceHost plays the part of the controller and the DAC around one voice.
// It decodes link commands, runs the three part LFOs from the patch's
// envelope/LFO slots and applies the crush decimation to the output.
//
// Step, Render, ReadSample and Feed belong to one render goroutine. Send
// and Status may be called from anywhere.
type VoiceHost struct {
	voice *engine.Voice
	rx    *link.Receiver
	audio *engine.RingBuffer

	lfoRng engine.Random
	lfos   [engine.NumEnvelopes]*engine.Lfo

	commands chan []byte
	scratch  []byte

	crushCount uint8
	held       uint8

	blocks atomic.Uint64
	status atomic.Uint64
}

func NewVoiceHost() *VoiceHost {
	h := &VoiceHost{
		audio:    engine.NewRingBuffer(2 * engine.BlockSize),
		commands: make(chan []byte, hostCommandQueue),
		held:     engine.SilentSample,
	}
	h.voice = engine.NewVoice(h.audio)
	h.rx = link.NewReceiver(h.voice)
	h.lfoRng.Seed(0x5eed)
	for i := range h.lfos {
		h.lfos[i] = engine.NewLfo(&h.lfoRng)
	}
	return h
}

func (h *VoiceHost) Voice() *engine.Voice     { return h.voice }
func (h *VoiceHost) Receiver() *link.Receiver { return h.rx }

// Blocks is the number of blocks rendered so far.
func (h *VoiceHost) Blocks() uint64 { return h.blocks.Load() }

// Send queues a command from another goroutine. It blocks while the queue
// is full.
func (h *VoiceHost) Send(cmd []byte) {
	h.commands <- cmd
}

// Feed pushes a command straight into the receiver and decodes it. Render
// goroutine only.
func (h *VoiceHost) Feed(cmd []byte) {
	if len(cmd) > 0 && cmd[0] < link.CmdWritePatch && cmd[0]&1 == 0 {
		h.retriggerSlaveLfos()
	}
	for len(cmd) > 0 {
		n := min(len(cmd), h.rx.Writable())
		h.rx.Write(cmd[:n])
		h.rx.Process()
		cmd = cmd[n:]
	}
}

// Step decodes pending commands, updates the part LFOs and renders one
// block into the audio ring.
func (h *VoiceHost) Step() {
	h.drainCommands()
	h.updateLfos()

	h.voice.ProcessBlock()
	h.rx.TickLeds()
	h.blocks.Add(1)
	h.publishStatus()
}

func (h *VoiceHost) drainCommands() {
	for {
		select {
		case cmd := <-h.commands:
			h.Feed(cmd)
		default:
			return
		}
	}
}

// updateLfos renders the part LFOs and sends their values over the link.
// A master LFO restarts the envelope of its slot each time it wraps.
func (h *VoiceHost) updateLfos() {
	p := h.voice.Patch()
	pp := p.Params()
	cmd := h.scratch[:0]
	for i, lfo := range h.lfos {
		slot := pp.EnvLfo[i]
		lfo.SetPhaseIncrement(engine.LfoIncrement(slot.LfoRate))
		cmd = link.AppendLfo(cmd, uint8(i), lfo.Render(slot.LfoShape))
		if lfo.Looped() && slot.Retrigger == engine.LfoSyncMaster {
			cmd = link.AppendRetrigger(cmd, uint8(i))
		}
	}
	h.scratch = cmd
	h.rx.Write(cmd)
	h.rx.Process()
}

// Slave LFOs restart on every fresh note.
func (h *VoiceHost) retriggerSlaveLfos() {
	p := h.voice.Patch()
	pp := p.Params()
	for i, lfo := range h.lfos {
		if pp.EnvLfo[i].Retrigger == engine.LfoSyncSlave {
			lfo.SetPhase(0)
		}
	}
}

// ReadSample is one DAC tick. A new sample is latched every Crush ticks;
// in between, and on underrun, the last latched value is held.
func (h *VoiceHost) ReadSample() uint8 {
	s, ok := h.audio.Read()
	if !ok {
		return h.held
	}
	h.crushCount++
	if h.crushCount >= h.voice.Crush() {
		h.held = s
		h.crushCount = 0
	}
	return h.held
}

// Render fills dst with DAC output, stepping the voice as needed.
func (h *VoiceHost) Render(dst []uint8) {
	for i := range dst {
		if h.audio.Readable() == 0 {
			h.Step()
		}
		dst[i] = h.ReadSample()
	}
}

// HostStatus is a snapshot of the control outputs after a block.
type HostStatus struct {
	Cutoff, Resonance, VCA, Crush uint8
	RxLed, NoteLed, Gate          bool
}

func (h *VoiceHost) publishStatus() {
	v := h.voice
	rx, note := h.rx.Leds()
	packed := uint64(v.Cutoff()) | uint64(v.Resonance())<<8 | uint64(v.VCA())<<16 | uint64(v.Crush())<<24
	if rx {
		packed |= 1 << 32
	}
	if note {
		packed |= 1 << 33
	}
	if v.Gate() {
		packed |= 1 << 34
	}
	h.status.Store(packed)
}

// Status returns the state published by the last Step.
func (h *VoiceHost) Status() HostStatus {
	s := h.status.Load()
	return HostStatus{
		Cutoff:    uint8(s),
		Resonance: uint8(s >> 8),
		VCA:       uint8(s >> 16),
		Crush:     uint8(s >> 24),
		RxLed:     s&(1<<32) != 0,
		NoteLed:   s&(1<<33) != 0,
		Gate:      s&(1<<34) != 0,
	}
}
