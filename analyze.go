// analyze.go - Fundamental frequency measurement of rendered audio

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
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

const (
	analyzeMaxSamples = 1 << 15
	analyzeMinFreq    = 20.0
)

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// PitchEstimate is the strongest spectral peak of a signal.
type PitchEstimate struct {
	Frequency float64
	Note      string
	Cents     float64
}

func (p PitchEstimate) String() string {
	return fmt.Sprintf("%.2f Hz (%s %+.1f cents)", p.Frequency, p.Note, p.Cents)
}

// estimateFundamental finds the strongest partial above analyzeMinFreq.
// The DC offset is removed and a Hann window applied before the FFT; the
// peak is refined by parabolic interpolation over the log magnitudes.
func estimateFundamental(samples []uint8, rate int) (PitchEstimate, error) {
	n := min(len(samples), analyzeMaxSamples)
	if n < 256 {
		return PitchEstimate{}, errors.New("analyze: not enough samples")
	}
	samples = samples[len(samples)-n:]

	var mean float64
	for _, s := range samples {
		mean += float64(s)
	}
	mean /= float64(n)

	seq := make([]float64, n)
	for i, s := range samples {
		w := 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
		seq[i] = (float64(s) - mean) * w
	}

	fft := fourier.NewFFT(n)
	coeff := fft.Coefficients(nil, seq)

	lo := max(1, int(math.Ceil(analyzeMinFreq*float64(n)/float64(rate))))
	peak := -1
	var peakMag float64
	for i := lo; i < len(coeff)-1; i++ {
		if m := cmplx.Abs(coeff[i]); m > peakMag {
			peak, peakMag = i, m
		}
	}
	if peak < 0 || peakMag == 0 {
		return PitchEstimate{}, errors.New("analyze: signal is silent")
	}

	a := math.Log(cmplx.Abs(coeff[peak-1]) + 1e-12)
	b := math.Log(peakMag)
	c := math.Log(cmplx.Abs(coeff[peak+1]) + 1e-12)
	offset := 0.0
	if d := a - 2*b + c; d != 0 {
		offset = 0.5 * (a - c) / d
	}

	freq := (float64(peak) + offset) * fft.Freq(1) * float64(rate)
	name, cents := nearestNote(freq)
	return PitchEstimate{Frequency: freq, Note: name, Cents: cents}, nil
}

// nearestNote names the equal-tempered note closest to freq (A4 = 440 Hz).
func nearestNote(freq float64) (string, float64) {
	midi := 69 + 12*math.Log2(freq/440)
	nearest := math.Round(midi)
	octave := int(nearest)/12 - 1
	return fmt.Sprintf("%s%d", noteNames[int(nearest)%12], octave), (midi - nearest) * 100
}
