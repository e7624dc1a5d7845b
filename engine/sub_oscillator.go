// sub_oscillator.go - Sub-oscillator and transient generator

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

// SubOscShape values below SubOscClick select the sub-oscillator; the rest
// select a transient generator shape.
type SubOscShape uint8

const (
	SubOscSquare1 SubOscShape = iota
	SubOscTriangle1
	SubOscPulse1
	SubOscSquare2
	SubOscTriangle2
	SubOscPulse2
	SubOscClick
	SubOscGlitch
	SubOscBlow
	SubOscMetallic
	SubOscPop
)

// SubOscillator is a square/triangle/pulse one or two octaves below the
// main oscillator. It mixes into an existing buffer.
type SubOscillator struct {
	phase uint32
	inc   uint32
}

func (s *SubOscillator) SetIncrement(inc uint32) { s.inc = inc & phaseMask }

func (s *SubOscillator) Render(shape SubOscShape, gain uint8, buf []uint8) {
	inc := s.inc
	if shape >= SubOscSquare2 {
		inc >>= 1
		shape -= SubOscSquare2
	}
	pw := uint8(0x40)
	if shape == SubOscSquare1 {
		pw = 0x80
	}
	for i := range buf {
		s.phase = (s.phase + inc) & phaseMask
		hb := highByte24(s.phase)
		var v uint8
		if shape == SubOscTriangle1 {
			tri := uint8(highWord24(s.phase) >> 7)
			if hb&0x80 != 0 {
				v = tri
			} else {
				v = ^tri
			}
		} else if hb >= pw {
			v = 255
		}
		buf[i] = U8Mix2(buf[i], v, ^gain, gain)
	}
}

// TransientGenerator is a one-shot percussive layer: a counter falls from
// 255 to 0 after each Trigger while a generator produces a value and gain.
type TransientGenerator struct {
	counter  uint8
	rng      uint8
	decimate uint8
}

func (t *TransientGenerator) Trigger() {
	t.counter = 255
	t.decimate = 0
}

// Active reports whether the counter is still running.
func (t *TransientGenerator) Active() bool { return t.counter != 0 }

func (t *TransientGenerator) Render(shape SubOscShape, amount uint8, buf []uint8) {
	if shape > SubOscPop {
		shape = SubOscPop
	}
	for i := 0; i < len(buf) && t.counter != 0; i++ {
		var value, gain uint8
		switch shape {
		case SubOscGlitch:
			gain = t.counter
			t.counter--
			t.rng = t.rng*73 + t.counter
			value = t.rng
		case SubOscBlow:
			t.decimate += 2
			if t.decimate >= 16 {
				t.decimate -= 17
				t.rng = t.rng*73 + 1
				if t.decimate == 0 {
					t.counter--
				}
			}
			gain = t.counter
			if t.counter&0x80 != 0 {
				gain = ^t.counter
			}
			value = t.rng
		case SubOscMetallic:
			t.counter--
			gain = 255
			if t.counter < 64 {
				gain = t.counter << 2
			}
			value = t.counter * 57
		case SubOscPop:
			t.counter--
			if t.counter > 0 {
				gain = 255
			}
			value = 0
		default: // click
			gain = t.counter
			t.counter--
			if t.counter < 32 {
				value = 255
			}
		}
		buf[i] = U8Mix(buf[i], value, U8U8MulShift8(gain, amount))
	}
}
