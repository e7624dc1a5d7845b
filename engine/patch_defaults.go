// patch_defaults.go - Init patch loaded on reset

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

var defaultEnvLfo = EnvelopeLfoSettings{
	Attack:   0,
	Decay:    40,
	Sustain:  20,
	Release:  60,
	LfoShape: LfoTriangle,
}

// DefaultParams is the init patch: both oscillators off, filter open, the
// second envelope on the VCA.
func DefaultParams() PatchParameters {
	return PatchParameters{
		Mix:       MixerSettings{Balance: 32},
		Filter:    [NumFilters]FilterSettings{{Cutoff: 127}},
		FilterEnv: 63,
		EnvLfo: [NumEnvelopes]EnvelopeLfoSettings{
			defaultEnvLfo, defaultEnvLfo, defaultEnvLfo,
		},
		VoiceLfoShape: LfoTriangle,
		VoiceLfoRate:  16,
		Modulations: [NumModulations]Modulation{
			{SrcLfo1, DstOsc1, 0},
			{SrcEnv1, DstOsc2, 0},
			{SrcLfo1, DstOsc1, 0},
			{SrcEnv1, DstOsc2, 0},
			{SrcEnv1, DstParameter1, 0},
			{SrcLfo1, DstParameter2, 0},
			{SrcLfo2, DstMixBalance, 0},
			{SrcLfo4, DstParameter1, 63},
			{SrcSeq1, DstParameter1, 0},
			{SrcSeq2, DstParameter2, 0},
			{SrcEnv2, DstVCA, 63},
			{SrcVelocity, DstVCA, 0},
			{SrcPitchBend, DstOsc12Coarse, 0},
			{SrcLfo1, DstOsc12Coarse, 0},
		},
	}
}

// DefaultPatch is DefaultParams in byte form.
func DefaultPatch() Patch {
	return DefaultParams().Bytes()
}
