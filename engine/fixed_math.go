// fixed_math.go - 8/16-bit fixed-point helpers

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

// All helpers truncate toward negative infinity on right shifts, matching
// the 8-bit MCU arithmetic the patches were voiced on.

// U8Mix crossfades a and b: balance 0 is all a, 255 is (almost) all b.
//
//go:nosplit
func U8Mix(a, b, balance uint8) uint8 {
	return uint8((uint16(a)*uint16(^balance) + uint16(b)*uint16(balance)) >> 8)
}

// U8Mix2 sums a and b with independent gains.
//
//go:nosplit
func U8Mix2(a, b, gainA, gainB uint8) uint8 {
	return uint8((uint16(a)*uint16(gainA) + uint16(b)*uint16(gainB)) >> 8)
}

// U8MixU16 is U8Mix without the final shift.
//
//go:nosplit
func U8MixU16(a, b, balance uint8) uint16 {
	return uint16(a)*uint16(^balance) + uint16(b)*uint16(balance)
}

// U8U4MixU12 crossfades a and b with a 4-bit balance (0..15) into a 12-bit result.
//
//go:nosplit
func U8U4MixU12(a, b, balance uint8) uint16 {
	balance &= 0x0f
	return uint16(a)*uint16(16-balance) + uint16(b)*uint16(balance)
}

//go:nosplit
func U8U4MixU8(a, b, balance uint8) uint8 {
	return uint8(U8U4MixU12(a, b, balance) >> 4)
}

//go:nosplit
func U8U8MulShift8(a, b uint8) uint8 {
	return uint8((uint16(a) * uint16(b)) >> 8)
}

//go:nosplit
func U8U8Mul(a, b uint8) uint16 {
	return uint16(a) * uint16(b)
}

//go:nosplit
func S8U8MulShift8(a int8, b uint8) int8 {
	return int8((int16(a) * int16(b)) >> 8)
}

//go:nosplit
func S8S8MulShift8(a, b int8) int8 {
	return int8((int16(a) * int16(b)) >> 8)
}

//go:nosplit
func S8S8Mul(a, b int8) int16 {
	return int16(a) * int16(b)
}

// S8U8Mul returns int32: 127*255 does not fit an int16.
//
//go:nosplit
func S8U8Mul(a int8, b uint8) int32 {
	return int32(a) * int32(b)
}

// ClipU14 clamps x to the modulation accumulator range.
//
//go:nosplit
func ClipU14(x int32) int32 {
	if x < 0 {
		return 0
	}
	if x > ModulationMax {
		return ModulationMax
	}
	return x
}

//go:nosplit
func U14ShiftRight6(x int32) uint8 {
	return uint8(uint32(x) >> 6)
}

//go:nosplit
func U15ShiftRight7(x int32) uint8 {
	return uint8(uint32(x) >> 7)
}

//go:nosplit
func U8Swap4(x uint8) uint8 {
	return x<<4 | x>>4
}

//go:nosplit
func U8AddClip(a, b, limit uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > uint16(limit) {
		return limit
	}
	return uint8(s)
}

func highNibbleUnshifted(x uint8) uint8 { return x & 0xf0 }
func lowNibble(x uint8) uint8           { return x & 0x0f }

func highByte(x uint16) uint8 { return uint8(x >> 8) }
func lowByte(x uint16) uint8  { return uint8(x) }

// highWord24 and highByte24 read the integral part of a 24-bit phase.
func highWord24(phase uint32) uint16 { return uint16(phase >> 8) }
func highByte24(phase uint32) uint8  { return uint8(phase >> 16) }

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
