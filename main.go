// main.go - VoiceCard host entry point

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
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/intuitionamiga/VoiceCard/engine"
	"github.com/intuitionamiga/VoiceCard/link"
)

func boilerPlate() {
	fmt.Println("\n\033[38;2;255;20;147m ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████\033[0m\n\033[38;2;255;50;147m▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀\033[0m\n\033[38;2;255;80;147m▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███\033[0m\n\033[38;2;255;110;147m░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄\033[0m\n\033[38;2;255;140;147m░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒\033[0m\n\033[38;2;255;170;147m░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░\033[0m\n\033[38;2;255;200;147m ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░\033[0m\n\033[38;2;255;230;147m ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░\033[0m\n\033[38;2;255;255;147m ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░\033[0m")
	fmt.Println("\nAn 8-bit voice card synthesis engine with a link protocol host.")
	fmt.Println("(c) 2024 - 2026 Zayn Otley")
	fmt.Println("https://github.com/IntuitionAmiga/VoiceCard")
	fmt.Println("License: GPLv3 or later")
}

const (
	defaultOutputRate = 48000
	defaultTail       = 500 * time.Millisecond
)

// HostConfig is the parsed command line.
type HostConfig struct {
	PatchFile   string
	Shape       engine.Algorithm
	WavFile     string
	Seconds     float64
	Note        int
	Velocity    int
	Play        bool
	Keys        bool
	Script      string
	MIDIFile    string
	MIDIChannel int
	Analyze     bool
	OutputRate  int
	Features    bool
}

func parseAlgorithm(name string) (engine.Algorithm, error) {
	want := strings.ToLower(strings.ReplaceAll(name, "_", " "))
	for a := range engine.AlgoCount {
		if a.String() == want {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown oscillator shape %q", name)
}

func parseFlags(args []string) (HostConfig, error) {
	var (
		cfg   HostConfig
		shape string
	)

	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&cfg.PatchFile, "patch", "", "Raw 112-byte patch image to load")
	flagSet.StringVar(&shape, "shape", "saw", "Oscillator 1 shape when no patch file is given")
	flagSet.StringVar(&cfg.WavFile, "wav", "", "Render offline to a 16-bit WAV file")
	flagSet.Float64Var(&cfg.Seconds, "seconds", 2, "Note hold time in seconds")
	flagSet.IntVar(&cfg.Note, "note", 60, "MIDI note to play")
	flagSet.IntVar(&cfg.Velocity, "velocity", 100, "Note velocity (0-255)")
	flagSet.BoolVar(&cfg.Play, "play", false, "Play through the sound card")
	flagSet.BoolVar(&cfg.Keys, "keys", false, "Play live from the computer keyboard")
	flagSet.StringVar(&cfg.Script, "script", "", "Lua script producing the performance")
	flagSet.StringVar(&cfg.MIDIFile, "midi", "", "Standard MIDI File producing the performance")
	flagSet.IntVar(&cfg.MIDIChannel, "midi-channel", midiAnyChannel, "MIDI channel 0-15, -1 for all")
	flagSet.BoolVar(&cfg.Analyze, "analyze", false, "Measure the fundamental of the rendered audio")
	flagSet.IntVar(&cfg.OutputRate, "rate", defaultOutputRate, "Sound card sample rate")
	flagSet.BoolVar(&cfg.Features, "features", false, "List compiled features and exit")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: ./voicecard [-patch file.bin|-shape saw] [-script file.lua|-midi file.mid|-keys|-note 60] [-wav out.wav] [-play] [-analyze]")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			flagSet.Usage()
		}
		return cfg, err
	}
	if cfg.Features {
		return cfg, nil
	}

	var err error
	if cfg.Shape, err = parseAlgorithm(shape); err != nil {
		return cfg, err
	}

	sources := 0
	for _, set := range []bool{cfg.Script != "", cfg.MIDIFile != "", cfg.Keys} {
		if set {
			sources++
		}
	}
	switch {
	case sources > 1:
		return cfg, errors.New("select at most one of -script, -midi or -keys")
	case cfg.Keys && (cfg.WavFile != "" || cfg.Analyze):
		return cfg, errors.New("-keys plays live and cannot be rendered offline")
	case cfg.Note < 0 || cfg.Note > 120:
		return cfg, fmt.Errorf("note out of range: %d", cfg.Note)
	case cfg.Velocity < 0 || cfg.Velocity > 255:
		return cfg, fmt.Errorf("velocity out of range: %d", cfg.Velocity)
	case cfg.Seconds <= 0:
		return cfg, fmt.Errorf("seconds must be positive: %g", cfg.Seconds)
	case cfg.MIDIChannel < midiAnyChannel || cfg.MIDIChannel > 15:
		return cfg, fmt.Errorf("midi channel out of range: %d", cfg.MIDIChannel)
	case cfg.OutputRate <= 0:
		return cfg, fmt.Errorf("invalid output rate: %d", cfg.OutputRate)
	}
	if cfg.Keys {
		cfg.Play = true
	}
	if !cfg.Play && cfg.WavFile == "" && !cfg.Analyze {
		return cfg, errors.New("nothing to do: give -wav, -play, -analyze or -keys")
	}
	return cfg, nil
}

// loadPatch reads a raw patch image, or builds the init patch with the
// requested oscillator 1 shape.
func loadPatch(cfg HostConfig) (engine.Patch, error) {
	if cfg.PatchFile == "" {
		pp := engine.DefaultParams()
		pp.Osc[0].Shape = cfg.Shape
		return pp.Bytes(), nil
	}
	data, err := os.ReadFile(cfg.PatchFile)
	if err != nil {
		return engine.Patch{}, err
	}
	if len(data) != engine.PatchSize {
		return engine.Patch{}, fmt.Errorf("%s: expected %d bytes, got %d", cfg.PatchFile, engine.PatchSize, len(data))
	}
	var p engine.Patch
	copy(p[:], data)
	return p, nil
}

// performance builds the schedule of the selected source, preceded by the
// patch load.
func performance(cfg HostConfig, p *engine.Patch) (Schedule, error) {
	s := patchSchedule(p)
	var body Schedule
	var err error
	switch {
	case cfg.Script != "":
		body, err = runScript(cfg.Script)
	case cfg.MIDIFile != "":
		body, err = loadMIDISchedule(cfg.MIDIFile, cfg.MIDIChannel)
	case cfg.Keys:
	default:
		hold := time.Duration(cfg.Seconds * float64(time.Second))
		body = noteSchedule(uint8(cfg.Note), uint8(cfg.Velocity), hold)
	}
	if err != nil {
		return nil, err
	}
	return append(s, body...), nil
}

func run(cfg HostConfig) error {
	p, err := loadPatch(cfg)
	if err != nil {
		return fmt.Errorf("patch: %w", err)
	}
	s, err := performance(cfg, &p)
	if err != nil {
		return err
	}

	if cfg.WavFile != "" || cfg.Analyze {
		h := NewVoiceHost()
		samples := renderSchedule(h, s, defaultTail)
		fmt.Printf("Rendered %d samples (%.2f s) in %d blocks\n",
			len(samples), float64(len(samples))/engine.SampleRate, h.Blocks())
		if cfg.WavFile != "" {
			if err := writeWAVFile(cfg.WavFile, samples, engine.SampleRate); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", cfg.WavFile)
		}
		if cfg.Analyze {
			est, err := estimateFundamental(samples, engine.SampleRate)
			if err != nil {
				return err
			}
			fmt.Printf("Fundamental: %v\n", est)
		}
	}

	if !cfg.Play {
		return nil
	}

	// The patch goes in before the audio device starts.
	h := NewVoiceHost()
	h.Feed(s[0].Cmd)
	rest := s[1:]

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var produce producer
	if cfg.Keys {
		produce = keyboardProducer(NewKeyboard(p.Params().Osc[0].Shape))
	} else {
		produce = scheduleProducer(rest, defaultTail)
	}
	fmt.Printf("Playing at %d Hz (slave id 0x%02x, version 0x%02x)\n", cfg.OutputRate, link.SlaveID, link.VersionID)
	return runRealtime(ctx, h, cfg.OutputRate, produce)
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Features {
		printFeatures()
		return
	}

	boilerPlate()
	if err := run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
