// resample.go - DAC ring reader and linear resampler for host playback

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

import "github.com/intuitionamiga/VoiceCard/engine"

// dacSource yields one unsigned 8-bit DAC sample per call.
type dacSource interface {
	ReadSample() uint8
}

// sampleSource yields one float32 output sample per call.
type sampleSource interface {
	ReadSample() float32
}

// dacRing is the consumer side of the ring the render loop fills. On
// underrun it repeats the last sample, the way the card's DAC holds.
type dacRing struct {
	ring *engine.RingBuffer
	last uint8
	miss uint64
}

func newDacRing(ring *engine.RingBuffer) *dacRing {
	return &dacRing{ring: ring, last: engine.SilentSample}
}

func (d *dacRing) ReadSample() uint8 {
	if s, ok := d.ring.Read(); ok {
		d.last = s
	} else {
		d.miss++
	}
	return d.last
}

func dacToFloat(s uint8) float32 {
	return float32(int(s)-engine.SilentSample) / 128
}

// Resampler converts the DAC rate to the output device rate with linear
// interpolation.
type Resampler struct {
	src  dacSource
	step float64
	pos  float64
	prev float32
	next float32
}

func NewResampler(src dacSource, from, to int) *Resampler {
	r := &Resampler{src: src, step: float64(from) / float64(to)}
	r.prev = dacToFloat(src.ReadSample())
	r.next = dacToFloat(src.ReadSample())
	return r
}

func (r *Resampler) ReadSample() float32 {
	out := r.prev + (r.next-r.prev)*float32(r.pos)
	r.pos += r.step
	for r.pos >= 1 {
		r.pos--
		r.prev = r.next
		r.next = dacToFloat(r.src.ReadSample())
	}
	return out
}
