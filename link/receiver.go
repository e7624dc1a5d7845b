// receiver.go - Link protocol receiver state machine

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

package link

import (
	"sync/atomic"

	"github.com/intuitionamiga/VoiceCard/engine"
)

type rxState uint8

const (
	expectingCommand rxState = iota
	expectingArguments
	expectingBulkSize
	expectingBulkData
)

// Receiver decodes link bytes into Voice calls. Receive is the transfer
// side and may run on its own goroutine; every other method belongs to
// the goroutine that owns the voice.
type Receiver struct {
	voice Voice
	input *engine.RingBuffer

	state   rxState
	command byte
	args    [3]byte
	pending int
	filled  int

	bulkOffset    int
	bulkRemaining int

	lightsOut         bool
	noteLed           bool
	firmwareRequested bool

	reply   atomic.Uint32
	rxLed   atomic.Uint32
	dropped atomic.Uint64
}

func NewReceiver(v Voice) *Receiver {
	r := &Receiver{
		voice: v,
		input: engine.NewRingBuffer(inputBufferSize),
	}
	r.reply.Store(ReplyIdle)
	return r
}

// Receive queues one incoming byte and returns the byte clocked back on
// the same transfer: ReplyIdle, or the answer to the last query.
func (r *Receiver) Receive(b byte) byte {
	r.rxLed.Store(255)
	if !r.input.Write(b) {
		r.dropped.Add(1)
	}
	return byte(r.reply.Swap(ReplyIdle))
}

// Write queues p through Receive and discards the replies.
func (r *Receiver) Write(p []byte) (int, error) {
	for _, b := range p {
		r.Receive(b)
	}
	return len(p), nil
}

// Writable is the free space in the input ring.
func (r *Receiver) Writable() int { return r.input.Writable() }

// Dropped counts bytes lost to a full input ring.
func (r *Receiver) Dropped() uint64 { return r.dropped.Load() }

// Process decodes every queued byte. Commands split across calls resume
// where they stopped.
func (r *Receiver) Process() {
	for {
		b, ok := r.input.Read()
		if !ok {
			return
		}
		r.decode(b)
	}
}

func (r *Receiver) decode(b byte) {
	switch r.state {
	case expectingCommand:
		r.command = b
		r.filled = 0
		if b == CmdBulkSend {
			r.state = expectingBulkSize
			return
		}
		if n := argumentCount(b); n > 0 {
			r.pending = n
			r.state = expectingArguments
			return
		}
		r.doShortCommand()

	case expectingArguments:
		r.args[r.filled] = b
		r.filled++
		if r.filled == r.pending {
			r.doLongCommand()
			r.state = expectingCommand
		}

	case expectingBulkSize:
		r.bulkOffset = 0
		r.bulkRemaining = int(b)
		r.state = expectingBulkData
		if b == 0 {
			r.state = expectingCommand
		}

	case expectingBulkData:
		// Bytes past the end of the patch are consumed and dropped.
		r.voice.SetPatchByte(uint8(min(r.bulkOffset, engine.PatchSize)), b)
		r.bulkOffset++
		r.bulkRemaining--
		if r.bulkRemaining == 0 {
			r.state = expectingCommand
		}
	}
}

func (r *Receiver) doLongCommand() {
	switch r.command & 0xf0 {
	case CmdNoteOn:
		note := uint16(r.args[0])<<8 | uint16(r.args[1])
		r.voice.Trigger(note, r.args[2], r.command&1 != 0)
		if !r.lightsOut {
			r.noteLed = true
		}
	case CmdWritePatch:
		r.voice.SetPatchByte(r.args[0], r.args[1])
	case CmdWritePart:
		r.voice.SetPartByte(r.args[0], r.args[1])
	case CmdWriteModSrc:
		r.voice.SetModulationSource(engine.ModSource(r.args[0]), r.args[1])
	case CmdWriteLfo:
		lfo := engine.SrcLfo1 + engine.ModSource(r.command&0x0f)
		r.voice.SetModulationSource(lfo, r.args[0])
	}
}

func (r *Receiver) doShortCommand() {
	switch r.command {
	case CmdRelease:
		r.voice.Release()
		r.noteLed = false
	case CmdKill:
		r.voice.Kill()
		r.noteLed = false
	case CmdRetrigger, CmdRetrigger + 1, CmdRetrigger + 2:
		r.voice.TriggerEnvelope(int(r.command-CmdRetrigger), engine.StageAttack)
	case CmdResetCtrl:
		r.voice.ResetAllControllers()
	case CmdReset:
		r.voice.Init()
		r.noteLed = false
	case CmdLightsOut:
		r.lightsOut = true
		r.noteLed = false
	case CmdFirmware:
		r.firmwareRequested = true
	case CmdGetSlaveID:
		r.reply.Store(SlaveID)
	case CmdGetVersionID:
		r.reply.Store(VersionID)
	}
}

// TickLeds ages the receive indicator; call once per rendered block.
func (r *Receiver) TickLeds() {
	if v := r.rxLed.Load(); v != 0 {
		r.rxLed.CompareAndSwap(v, v-1)
	}
}

// Leds reports the receive and note indicators. Both stay dark after a
// lights-out command.
func (r *Receiver) Leds() (rx, note bool) {
	if r.lightsOut {
		return false, false
	}
	return r.rxLed.Load() != 0, r.noteLed
}

// FirmwareUpdateRequested reports whether a firmware update command was
// received. The host decides what to do with it.
func (r *Receiver) FirmwareUpdateRequested() bool { return r.firmwareRequested }
