package record

// LongTimestamp extends the short timestamps embedded in FMT words to 64
// bits. Call it periodically, at least once per rollover of the logged
// timestamp field, from one serialized context; the rollover tracking
// state is not guarded. The upper timestamp bits are recorded as a system
// message the decoder splices with the short timestamps around it.
func (e *Engine) LongTimestamp() {
	if !e.cfg.LongTimestamps {
		return
	}
	low := e.src.Read() << (32 - e.srcBits)
	if e.ltLow > low {
		e.ltHigh++
	}
	e.ltLow = low

	t := uint64(low) | uint64(e.ltHigh)<<32
	shift := (32 - e.fmtBits) - 1 + (e.tsShift + 1) + (32 - e.srcBits)
	e.Msg1(e.sysBase|LongTimestampID, uint32(t>>shift))
}

// RestartTiming records a timing discontinuity, for example after a wake
// from a low-power state that stopped the timestamp counter. The decoder
// will not infer elapsed time across this marker.
func (e *Engine) RestartTiming() {
	e.Msg1(e.sysBase|TimingRestartID, 0xFFFFFFFF)
}

// TimestampFrequency announces a changed timestamp frequency, for example
// after a clock reconfiguration. The new value is written to the header
// and recorded in-stream so the decoder can rescale subsequent
// timestamps.
func (e *Engine) TimestampFrequency(hz uint32) {
	e.hdr.frequency = hz
	e.Msg1(e.sysBase|FrequencyID, hz)
}
