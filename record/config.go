package record

import (
	"go.uber.org/multierr"

	"github.com/embtrace/tracebuf/errors"
)

// Mode selects how Init treats the existing buffer contents.
type Mode uint32

const (
	// ModeContinue resumes post-mortem logging, keeping the buffer if the
	// stored fingerprint matches the current configuration.
	ModeContinue Mode = 0
	// ModeSingleShot starts single-shot logging from index zero, keeping
	// compatible buffer contents behind the write index.
	ModeSingleShot Mode = 1
	// ModeRestart starts post-mortem logging with a forced buffer erase.
	ModeRestart Mode = 2
	// ModeSingleShotErase starts single-shot logging with a forced erase.
	ModeSingleShotErase Mode = 3
)

// Bit 0 of the mode selects single-shot; modes at or above ModeRestart
// force a full buffer erase.
const modeSingleShotBit = 1

// EnableAll is the force-enable sentinel, not a literal all-groups mask:
// bit 31 is clear, and SetFilter ORs it in, which yields all 32 filter
// groups enabled. It is also the only SetFilter value honored once
// logging has been fully disabled while the filter off switch is
// configured.
const EnableAll uint32 = 0x7FFFFFFF

// Reserved system format IDs. They are logged through Msg1 in the filter
// group selected by Config.SystemGroup and decoded by the host tooling.
const (
	// LongTimestampID carries the upper bits of the 64-bit timestamp
	// maintained by LongTimestamp.
	LongTimestampID uint32 = 2
	// FrequencyID announces a new timestamp frequency in Hz.
	FrequencyID uint32 = 4
	// TimingRestartID marks a timing discontinuity after which the decoder
	// must not infer elapsed time across the gap.
	TimingRestartID uint32 = 6
)

// Config fixes the buffer shape and feature set of an Engine. All fields
// are immutable after New; the fingerprint derived from them lets Init
// detect whether a pre-existing buffer is still compatible.
type Config struct {
	// BufferWords is the logical circular capacity in 32-bit words, not
	// counting the four guard words appended for the host decoder. Must be
	// at least 20x MaxSubpackets so the largest message cannot lap itself.
	BufferWords uint32

	// FmtIDBits is the width of the format ID field inside the FMT word,
	// 9 to 16 bits. The remaining low bits hold the timestamp.
	FmtIDBits uint32

	// TimestampShift divides the raw counter: shift 1 keeps full
	// resolution, each extra step halves it. Range 1 to 16.
	TimestampShift uint32

	// MaxSubpackets caps the message size at MaxSubpackets*4 data words,
	// range 1 to 256.
	MaxSubpackets uint32

	// Filtering enables the 32-group message filter. When false, filter
	// state is fixed and every message is recorded.
	Filtering bool

	// FilterOffSwitch lets firmware disable logging completely by setting
	// the filter to zero; only EnableAll re-enables it. Requires Filtering.
	FilterOffSwitch bool

	// SingleShot allows Init to select single-shot modes, at the cost of a
	// limit check on every reservation. Requires Filtering.
	SingleShot bool

	// LongTimestamps enables the 64-bit timestamp extender and reserves
	// its system message.
	LongTimestamps bool

	// DelayedTimestamp samples the time source after space reservation
	// instead of at entry, trading strict cross-thread timestamp ordering
	// for a later sample point.
	DelayedTimestamp bool

	// DiscardOversized drops MsgN and MsgX payloads above the configured
	// maximum instead of truncating them.
	DiscardOversized bool

	// SingleShotKeepFilter leaves the filter untouched when a single-shot
	// buffer fills up. By default the filter is zeroed so disabled
	// messages stop paying for timestamp reads.
	SingleShotKeepFilter bool

	// SystemGroup is the filter group (0 to 31) used for the reserved
	// system messages. Group 0 cannot be disabled through SetFilter.
	SystemGroup uint32
}

// DefaultConfig returns the shape used by the examples: a 1 KiB buffer,
// 10-bit format IDs, full timestamp resolution and all features on.
func DefaultConfig() Config {
	return Config{
		BufferWords:     1024,
		FmtIDBits:       10,
		TimestampShift:  1,
		MaxSubpackets:   4,
		Filtering:       true,
		FilterOffSwitch: true,
		SingleShot:      true,
		LongTimestamps:  true,
	}
}

// Validate reports every constraint violation in the configuration,
// combined into a single error.
func (c Config) Validate() error {
	var err error
	if c.FmtIDBits < 9 || c.FmtIDBits > 16 {
		err = multierr.Append(err, errors.OutOfRange(errors.PhaseConfig, "FmtIDBits", c.FmtIDBits, 9, 16))
	}
	if c.TimestampShift < 1 || c.TimestampShift > 16 {
		err = multierr.Append(err, errors.OutOfRange(errors.PhaseConfig, "TimestampShift", c.TimestampShift, 1, 16))
	} else if c.FmtIDBits >= 9 && c.FmtIDBits <= 16 && c.TimestampShift > 31-c.FmtIDBits {
		err = multierr.Append(err, errors.Incompatible(errors.PhaseConfig,
			"TimestampShift exceeds the timestamp field width left by FmtIDBits"))
	}
	if c.MaxSubpackets < 1 || c.MaxSubpackets > 256 {
		err = multierr.Append(err, errors.OutOfRange(errors.PhaseConfig, "MaxSubpackets", c.MaxSubpackets, 1, 256))
	} else if c.BufferWords < 20*c.MaxSubpackets {
		err = multierr.Append(err, errors.InvalidValue(errors.PhaseConfig, "BufferWords",
			"buffer must hold at least four maximum-size messages"))
	}
	if c.FilterOffSwitch && !c.Filtering {
		err = multierr.Append(err, errors.Incompatible(errors.PhaseConfig, "FilterOffSwitch requires Filtering"))
	}
	if c.SingleShot && !c.Filtering {
		err = multierr.Append(err, errors.Incompatible(errors.PhaseConfig, "SingleShot requires Filtering"))
	}
	if c.SystemGroup > 31 {
		err = multierr.Append(err, errors.OutOfRange(errors.PhaseConfig, "SystemGroup", c.SystemGroup, 0, 31))
	}
	return err
}

// Pack combines a 5-bit filter group and a format ID into the packed ID
// the entry points take. The ID must leave its low K bits zero when used
// with MsgK, and its low 4 bits zero with MsgN, MsgX and String.
func (c Config) Pack(group, id uint32) uint32 {
	return (group&0x1F)<<c.FmtIDBits | id&(1<<c.FmtIDBits-1)
}

// PackExt is Pack with an extra value OR-ed into the low ID bits the
// message arity leaves unused, so small enumerations travel inside the
// format ID without a data word. The caller guarantees ext fits below
// the ID the decoder expects.
func (c Config) PackExt(group, id, ext uint32) uint32 {
	return c.Pack(group, id|ext)
}
