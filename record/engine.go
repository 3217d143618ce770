package record

import (
	"go.uber.org/zap"

	"github.com/embtrace/tracebuf"
	"github.com/embtrace/tracebuf/errors"
	"github.com/embtrace/tracebuf/reserve"
	"github.com/embtrace/tracebuf/wire"
)

// Engine records binary messages into one circular buffer. Construct it
// with New, start it with Init, then call the Msg entry points from any
// goroutine. All configuration-derived fields are immutable after New.
type Engine struct {
	hdr   header
	strat reserve.Strategy
	src   tracebuf.TimeSource
	cfg   Config

	filtering bool
	delayed   bool
	discard   bool
	fmtBits   uint32
	tsShift   uint32 // raw counter right shift: TimestampShift - 1
	tsMask    uint32
	srcBits   uint32
	maxWords  uint32 // MaxSubpackets * 4 data words
	maxBytes  uint32 // MaxSubpackets * 16 payload bytes
	maxXBytes uint32 // MsgX payload limit: min(256, maxBytes)
	sysBase   uint32 // SystemGroup << FmtIDBits

	// Long timestamp state, owned by the single caller of LongTimestamp.
	ltLow  uint32
	ltHigh uint32
}

// Option adjusts an Engine during construction.
type Option func(*Engine)

// WithStrategy selects the space reservation strategy. The default is
// reserve.CAS, the only lock-free strategy valid in every configuration.
func WithStrategy(s reserve.Strategy) Option {
	return func(e *Engine) { e.strat = s }
}

// New allocates the log buffer and validates the configuration against
// the time source and the chosen strategy. The engine does not record
// until Init has run.
func New(cfg Config, src tracebuf.TimeSource, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errors.InvalidValue(errors.PhaseConfig, "src", "time source must not be nil")
	}

	e := newEngine(cfg, src)

	if e.srcBits < 1 || e.srcBits > 32 {
		return nil, errors.OutOfRange(errors.PhaseConfig, "TimeSource.Bits", e.srcBits, 1, 32)
	}
	// The top bit of the logged timestamp field must toggle within the
	// counter period, or long timestamps cannot track rollovers.
	if int32(e.srcBits)-int32(cfg.TimestampShift) < int32(31-cfg.FmtIDBits) {
		return nil, errors.Incompatible(errors.PhaseConfig,
			"counter too narrow for the configured TimestampShift and FmtIDBits")
	}

	for _, opt := range opts {
		opt(e)
	}

	pow2 := wire.Pow2(cfg.BufferWords)
	if _, ok := e.strat.(reserve.FetchAdd); ok {
		if !pow2 {
			return nil, errors.Incompatible(errors.PhaseConfig,
				"FetchAdd reservation requires a power-of-two BufferWords")
		}
		if cfg.SingleShot {
			return nil, errors.Incompatible(errors.PhaseConfig,
				"FetchAdd reservation cannot enforce single-shot limits")
		}
	}

	return e, nil
}

// newEngine derives the immutable engine state and allocates the erased
// buffer. Constraint checking happens in New.
func newEngine(cfg Config, src tracebuf.TimeSource) *Engine {
	e := &Engine{
		src:       src,
		cfg:       cfg,
		strat:     reserve.CAS{},
		filtering: cfg.Filtering,
		delayed:   cfg.DelayedTimestamp,
		discard:   cfg.DiscardOversized,
		fmtBits:   cfg.FmtIDBits,
		tsShift:   cfg.TimestampShift - 1,
		tsMask:    wire.TimestampMask(cfg.FmtIDBits),
		srcBits:   src.Bits(),
		maxWords:  cfg.MaxSubpackets * 4,
		maxBytes:  cfg.MaxSubpackets * 16,
		sysBase:   (cfg.SystemGroup & 0x1F) << cfg.FmtIDBits,
	}
	e.maxXBytes = e.maxBytes
	if e.maxXBytes > 256 {
		e.maxXBytes = 256
	}

	e.hdr.buffer = make([]uint32, cfg.BufferWords+wire.GuardWords)
	e.hdr.state.Capacity = cfg.BufferWords
	if wire.Pow2(cfg.BufferWords) {
		e.hdr.state.Mask = cfg.BufferWords - 1
	}
	if !cfg.SingleShotKeepFilter {
		hdr := &e.hdr
		e.hdr.state.OnFull = func() { hdr.filter.Store(0) }
	}
	e.clear()
	e.hdr.bufferWords = cfg.BufferWords + wire.GuardWords
	return e
}

// Init prepares the engine for logging: it checks the stored fingerprint
// against the current configuration, erases the buffer when required by
// the mode or an incompatible fingerprint, starts the time source and
// arms the filter. It must not run concurrently with any logging call.
//
// A second Init on a live engine restarts logging; with ModeContinue and
// an unchanged configuration the existing messages survive, which is how
// post-mortem contents outlast a soft restart of the application.
func (e *Engine) Init(initialFilter uint32, mode Mode) error {
	log := Logger()

	singleShot := mode&modeSingleShotBit != 0
	if singleShot && !e.cfg.SingleShot {
		log.Warn("single-shot mode requested but not configured, staying post-mortem",
			zap.Uint32("mode", uint32(mode)))
		singleShot = false
	}
	cw := e.configWord(singleShot)

	// Single-shot always restarts the recording from the bottom.
	if singleShot {
		e.hdr.state.SingleShot.Store(false)
		e.hdr.state.Index.Store(0)
	}

	if e.hdr.config != cw || mode >= ModeRestart {
		e.hdr.filter.Store(0)
		e.clear()
		e.hdr.state.Index.Store(0)
		if e.cfg.Filtering {
			e.hdr.filterBackup.Store(initialFilter)
			e.hdr.filter.Store(initialFilter)
		}
		log.Debug("log buffer erased",
			zap.Uint32("fingerprint", cw),
			zap.Uint32("previous_fingerprint", e.hdr.config),
			zap.Uint32("mode", uint32(mode)))
	}
	e.hdr.config = cw
	e.hdr.frequency = e.src.Frequency()

	if err := e.src.Init(); err != nil {
		return errors.TimeSource(errors.PhaseInit, err)
	}
	e.ltLow, e.ltHigh = 0, 0

	e.hdr.state.SingleShot.Store(singleShot)
	switch {
	case e.cfg.FilterOffSwitch:
		e.SetFilter(initialFilter)
	case e.cfg.Filtering:
		e.hdr.filter.Store(initialFilter)
		if initialFilter != 0 {
			e.hdr.filterBackup.Store(initialFilter)
		}
	}

	log.Debug("logging initialized",
		zap.Uint32("filter", e.hdr.filter.Load()),
		zap.Bool("single_shot", singleShot),
		zap.Uint32("frequency_hz", e.hdr.frequency))
	return nil
}

// configWord builds the fingerprint for the current configuration and the
// active mode. Bit 0 differs between single-shot and post-mortem, so a
// mode switch always forces a buffer erase.
func (e *Engine) configWord(singleShot bool) uint32 {
	return wire.ConfigWord(wire.Params{
		SingleShotActive:  singleShot,
		Filtering:         e.cfg.Filtering,
		FilterOffSwitch:   e.cfg.FilterOffSwitch,
		SingleShotEnabled: e.cfg.SingleShot,
		LongTimestamps:    e.cfg.LongTimestamps,
		TimestampShift:    e.cfg.TimestampShift,
		FmtIDBits:         e.cfg.FmtIDBits,
		MaxSubpackets:     e.cfg.MaxSubpackets,
		HeaderWords:       wire.HeaderWords,
		BufferPow2:        e.hdr.state.Mask != 0,
	})
}

// clear erases the buffer to the sentinel pattern, guard words included.
func (e *Engine) clear() {
	buf := e.hdr.buffer
	for i := range buf {
		buf[i] = wire.Sentinel
	}
}

// now samples the time source and returns the timestamp field value,
// shifted down per configuration and masked to the field width. The tag
// bit overwrites bit 0 when the FMT word is composed.
func (e *Engine) now() uint32 {
	return e.src.Read() >> e.tsShift & e.tsMask
}

// disabled reports whether the message's filter group is currently off.
func (e *Engine) disabled(fmtID uint32) bool {
	if !e.filtering {
		return false
	}
	return int32(e.hdr.filter.Load()<<(fmtID>>e.fmtBits&0x1F)) >= 0
}
