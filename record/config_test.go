package record

import (
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", nil, false},
		{"format id too narrow", func(c *Config) { c.FmtIDBits = 8 }, true},
		{"format id too wide", func(c *Config) { c.FmtIDBits = 17 }, true},
		{"zero shift", func(c *Config) { c.TimestampShift = 0 }, true},
		{"shift too large", func(c *Config) { c.TimestampShift = 17 }, true},
		{"shift eats timestamp field", func(c *Config) { c.FmtIDBits = 16; c.TimestampShift = 16 }, true},
		{"max shift with narrow id", func(c *Config) { c.FmtIDBits = 9; c.TimestampShift = 16 }, false},
		{"zero subpackets", func(c *Config) { c.MaxSubpackets = 0 }, true},
		{"subpackets too large", func(c *Config) { c.MaxSubpackets = 257 }, true},
		{"buffer too small", func(c *Config) { c.BufferWords = 64 }, true},
		{"buffer exactly minimal", func(c *Config) { c.BufferWords = 80 }, false},
		{"off switch without filtering", func(c *Config) {
			c.Filtering = false
			c.SingleShot = false
		}, true},
		{"single shot without filtering", func(c *Config) {
			c.Filtering = false
			c.FilterOffSwitch = false
		}, true},
		{"no filtering at all", func(c *Config) {
			c.Filtering = false
			c.FilterOffSwitch = false
			c.SingleShot = false
		}, false},
		{"system group out of range", func(c *Config) { c.SystemGroup = 32 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPack(t *testing.T) {
	cfg := Config{FmtIDBits: 10}

	tests := []struct {
		name      string
		group, id uint32
		want      uint32
	}{
		{"group zero", 0, 16, 16},
		{"group one", 1, 16, 1<<10 | 16},
		{"top group", 31, 0, 31 << 10},
		{"group masked to five bits", 32, 8, 8},
		{"id masked to width", 5, 1 << 10, 5 << 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.Pack(tt.group, tt.id); got != tt.want {
				t.Errorf("Pack(%d, %d) = %#x, want %#x", tt.group, tt.id, got, tt.want)
			}
		})
	}
}

func TestPackExt(t *testing.T) {
	cfg := Config{FmtIDBits: 12}
	// A Msg0 call site leaves the whole low range free for extra data.
	got := cfg.PackExt(2, 0x40, 0x0F)
	want := uint32(2<<12 | 0x40 | 0x0F)
	if got != want {
		t.Fatalf("PackExt = %#x, want %#x", got, want)
	}
}
