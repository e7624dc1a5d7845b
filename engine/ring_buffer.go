// ring_buffer.go - Single-producer single-consumer byte ring

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

import "sync/atomic"

// RingBuffer is a lock-free byte FIFO for exactly one producer goroutine
// and one consumer goroutine. Capacity is a power of two; one slot is kept
// free to tell full from empty.
type RingBuffer struct {
	buf  []uint8
	mask uint32

	// head is written only by the consumer, tail only by the producer.
	head atomic.Uint32
	tail atomic.Uint32
}

// NewRingBuffer returns a ring holding at least size-1 bytes; size is
// rounded up to a power of two.
func NewRingBuffer(size int) *RingBuffer {
	n := 2
	for n < size {
		n <<= 1
	}
	return &RingBuffer{buf: make([]uint8, n), mask: uint32(n - 1)}
}

// Capacity is the number of bytes the ring can hold.
func (r *RingBuffer) Capacity() int { return len(r.buf) - 1 }

// Readable is the number of bytes waiting for the consumer.
func (r *RingBuffer) Readable() int {
	return int((r.tail.Load() - r.head.Load()) & r.mask)
}

// Writable is the free space left for the producer.
func (r *RingBuffer) Writable() int {
	return r.Capacity() - r.Readable()
}

// Write appends v, or returns false when the ring is full.
func (r *RingBuffer) Write(v uint8) bool {
	t := r.tail.Load()
	next := (t + 1) & r.mask
	if next == r.head.Load() {
		return false
	}
	r.buf[t] = v
	r.tail.Store(next)
	return true
}

// Overwrite2 appends two bytes; a byte that does not fit is dropped.
func (r *RingBuffer) Overwrite2(a, b uint8) {
	r.Write(a)
	r.Write(b)
}

// Read removes the oldest byte.
func (r *RingBuffer) Read() (uint8, bool) {
	h := r.head.Load()
	if h == r.tail.Load() {
		return 0, false
	}
	v := r.buf[h]
	r.head.Store((h + 1) & r.mask)
	return v, true
}

// ReadInto drains up to len(dst) bytes and returns how many were copied.
func (r *RingBuffer) ReadInto(dst []uint8) int {
	n := 0
	for n < len(dst) {
		v, ok := r.Read()
		if !ok {
			break
		}
		dst[n] = v
		n++
	}
	return n
}

// Flush discards pending bytes. Consumer side only.
func (r *RingBuffer) Flush() {
	r.head.Store(r.tail.Load())
}
