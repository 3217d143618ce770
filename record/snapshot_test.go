package record

import (
	"encoding/binary"
	"testing"

	"github.com/embtrace/tracebuf/wire"
)

func TestMarshalBinary(t *testing.T) {
	e, src := newTestEngine(t, nil)
	if err := e.Init(EnableAll, ModeRestart); err != nil {
		t.Fatalf("Init: %v", err)
	}
	src.Set(0x10)
	e.Msg1(16, 0xCAFE)

	out, err := e.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	wantLen := 4 * (wire.HeaderWords + 128 + wire.GuardWords)
	if len(out) != wantLen {
		t.Fatalf("len = %d, want %d", len(out), wantLen)
	}

	le := binary.LittleEndian
	if got := le.Uint32(out[0:]); got != 2 {
		t.Errorf("write index = %d, want 2", got)
	}
	if got := le.Uint32(out[4:]); got != 0xFFFFFFFF {
		t.Errorf("filter = %#x, want all ones", got)
	}
	if got := le.Uint32(out[8:]); got != e.ConfigWord() {
		t.Errorf("fingerprint = %#x, want %#x", got, e.ConfigWord())
	}
	if got := le.Uint32(out[12:]); got != 1_000_000 {
		t.Errorf("frequency = %d, want 1000000", got)
	}
	if got := le.Uint32(out[16:]); got != 0xFFFFFFFF {
		t.Errorf("filter backup = %#x, want all ones", got)
	}
	if got := le.Uint32(out[20:]); got != 128+wire.GuardWords {
		t.Errorf("buffer length = %d, want %d", got, 128+wire.GuardWords)
	}

	words := e.Words()
	for i, w := range words {
		if got := le.Uint32(out[4*(wire.HeaderWords+i):]); got != w {
			t.Fatalf("buffer word %d = %#x, want %#x", i, got, w)
		}
	}
	if got := le.Uint32(out[24:]); got != 0xCAFE {
		t.Errorf("first data word = %#x, want 0xCAFE", got)
	}
}

func TestMarshalBinaryFingerprintRoundTrip(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	if err := e.Init(EnableAll, ModeSingleShotErase); err != nil {
		t.Fatalf("Init: %v", err)
	}

	p := wire.ParseConfigWord(e.ConfigWord())
	if !p.SingleShotActive || !p.SingleShotEnabled {
		t.Error("single-shot bits not set in the fingerprint")
	}
	if !p.Filtering || !p.FilterOffSwitch || !p.LongTimestamps {
		t.Error("feature bits not set in the fingerprint")
	}
	if p.FmtIDBits != 10 || p.TimestampShift != 1 || p.MaxSubpackets != 4 {
		t.Errorf("shape = (%d, %d, %d), want (10, 1, 4)", p.FmtIDBits, p.TimestampShift, p.MaxSubpackets)
	}
	if p.HeaderWords != wire.HeaderWords {
		t.Errorf("header words = %d, want %d", p.HeaderWords, wire.HeaderWords)
	}
	if !p.BufferPow2 {
		t.Error("pow-2 flag not set for a 128-word buffer")
	}
}
