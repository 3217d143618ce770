package wire

import "testing"

func TestFmtWord(t *testing.T) {
	tests := []struct {
		name    string
		ts      uint32
		fmtID   uint32
		acc     uint32
		fmtBits uint32
		want    uint32
	}{
		{"id only", 0, 5, 0, 10, 5<<22 | 1},
		{"id with accumulator", 0, 6, 1, 10, 7<<22 | 1},
		{"timestamp field", 0x00200000, 5, 0, 10, 5<<22 | 0x00200000 | 1},
		{"group bits discarded", 0, 3<<10 | 5, 0, 10, 5<<22 | 1},
		{"wide id", 0, 0x1FF, 0, 9, 0x1FF<<23 | 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FmtWord(tt.ts, tt.fmtID, tt.acc, tt.fmtBits)
			if got != tt.want {
				t.Errorf("FmtWord() = %#08x, want %#08x", got, tt.want)
			}
			if !Terminal(got) {
				t.Errorf("FmtWord() = %#08x not recognized as terminal", got)
			}
		})
	}
}

func TestTerminal(t *testing.T) {
	if Terminal(Sentinel) {
		t.Error("sentinel must not be terminal")
	}
	if Terminal(0x7FFFFFFE) {
		t.Error("word with clear tag bit must not be terminal")
	}
	if !Terminal(3) {
		t.Error("tagged word should be terminal")
	}
}

func TestFmtIDAndTimestamp(t *testing.T) {
	const fmtBits = 10
	w := FmtWord(0x123456&TimestampMask(fmtBits)&^1, 37, 0, fmtBits)
	if got := FmtID(w, fmtBits); got != 37 {
		t.Errorf("FmtID = %d, want 37", got)
	}
	want := (0x123456 & TimestampMask(fmtBits) &^ 1) >> 1
	if got := Timestamp(w, fmtBits); got != uint32(want) {
		t.Errorf("Timestamp = %#x, want %#x", got, want)
	}
}

func TestRestoreBit31(t *testing.T) {
	tests := []struct {
		name  string
		words []uint32
		acc   uint32
		want  []uint32
	}{
		{"single set", []uint32{0x2BCD1234}, 1, []uint32{0xABCD1234}},
		{"single clear", []uint32{0x2BCD1234}, 0, []uint32{0x2BCD1234}},
		{
			"first of four",
			[]uint32{0, 0, 0, 0},
			0b1000,
			[]uint32{1 << 31, 0, 0, 0},
		},
		{
			"alternating",
			[]uint32{1, 2, 3, 4},
			0b0101,
			[]uint32{1, 2 | 1<<31, 3, 4 | 1<<31},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words := append([]uint32(nil), tt.words...)
			RestoreBit31(words, tt.acc)
			for i := range words {
				if words[i] != tt.want[i] {
					t.Errorf("word %d = %#08x, want %#08x", i, words[i], tt.want[i])
				}
			}
		})
	}
}

func TestConfigWordRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		p    Params
	}{
		{
			"typical",
			Params{
				Filtering:       true,
				FilterOffSwitch: true,
				TimestampShift:  1,
				FmtIDBits:       10,
				MaxSubpackets:   4,
				HeaderWords:     6,
				BufferPow2:      true,
			},
		},
		{
			"single shot active",
			Params{
				SingleShotActive:  true,
				Filtering:         true,
				SingleShotEnabled: true,
				TimestampShift:    16,
				FmtIDBits:         16,
				MaxSubpackets:     1,
				HeaderWords:       6,
			},
		},
		{
			"max subpackets wraps to zero",
			Params{
				Filtering:      true,
				LongTimestamps: true,
				TimestampShift: 4,
				FmtIDBits:      12,
				MaxSubpackets:  256,
				HeaderWords:    6,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseConfigWord(ConfigWord(tt.p))
			if got != tt.p {
				t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, tt.p)
			}
		})
	}
}

func TestTimestampMask(t *testing.T) {
	if got := TimestampMask(10); got != 0x003FFFFF {
		t.Errorf("TimestampMask(10) = %#08x, want 0x003FFFFF", got)
	}
	if got := TimestampMask(16); got != 0x0000FFFF {
		t.Errorf("TimestampMask(16) = %#08x, want 0x0000FFFF", got)
	}
}

func TestPow2(t *testing.T) {
	for _, n := range []uint32{4, 8, 1024, 1 << 31} {
		if !Pow2(n) {
			t.Errorf("Pow2(%d) = false, want true", n)
		}
	}
	for _, n := range []uint32{0, 1, 2, 3, 6, 1000, 1<<31 + 4} {
		if Pow2(n) {
			t.Errorf("Pow2(%d) = true, want false", n)
		}
	}
}
