// encoder_test.go - Link command builder tests

package link

import (
	"bytes"
	"testing"

	"github.com/intuitionamiga/VoiceCard/engine"
)

func TestAppend_Encodings(t *testing.T) {
	tests := []struct {
		name string
		got  []byte
		want []byte
	}{
		{"note on", AppendNoteOn(nil, 0x1e00, 100, false), []byte{0x00, 0x1e, 0x00, 100}},
		{"legato", AppendNoteOn(nil, 0x1e05, 1, true), []byte{0x01, 0x1e, 0x05, 1}},
		{"patch", AppendPatchWrite(nil, 7, 8), []byte{0x10, 7, 8}},
		{"part", AppendPartWrite(nil, 0, 127), []byte{0x20, 0, 127}},
		{"source", AppendModSource(nil, engine.SrcAftertouch, 3), []byte{0x30, byte(engine.SrcAftertouch), 3}},
		{"lfo index masked", AppendLfo(nil, 0x12, 9), []byte{0x42, 9}},
		{"retrigger clamps", AppendRetrigger(nil, 9), []byte{0x54}},
		{"query", AppendQuery(nil, CmdGetVersionID), []byte{0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !bytes.Equal(tt.got, tt.want) {
				t.Errorf("expected % x, got % x", tt.want, tt.got)
			}
		})
	}
}

func TestArgumentCount(t *testing.T) {
	for code := range 256 {
		b := byte(code)
		var want int
		switch {
		case b <= 0x0f:
			want = 3
		case b <= 0x3f:
			want = 2
		case b <= 0x4f:
			want = 1
		default:
			want = -1
		}
		if got := argumentCount(b); got != want {
			t.Errorf("code %#02x: expected %d arguments, got %d", b, want, got)
		}
	}
}

func TestAppendBulkPatch_Layout(t *testing.T) {
	p := engine.DefaultPatch()
	got := AppendBulkPatch(nil, &p)
	if len(got) != 2+engine.PatchSize || got[0] != CmdBulkSend || got[1] != engine.PatchSize {
		t.Fatalf("unexpected bulk header % x (len %d)", got[:2], len(got))
	}
	if !bytes.Equal(got[2:], p[:]) {
		t.Error("expected the patch image after the header")
	}
}
