package record

// SetFilter replaces the active filter mask. Bit 31 selects group 0,
// bit 30 group 1, and so on; a set bit enables the group. Group 0 is
// force-enabled for every non-zero mask, keeping the system messages and
// other essential traffic alive.
//
// When the filter off switch is configured, a zero mask disables logging
// completely and only EnableAll turns it back on; any other value is
// ignored while logging is off. Every accepted non-zero mask is also
// saved as the restore point for RestoreFilter.
func (e *Engine) SetFilter(mask uint32) {
	if !e.filtering {
		return
	}
	if e.cfg.FilterOffSwitch {
		if mask != 0 && e.hdr.filter.Load() == 0 {
			if mask != EnableAll {
				return
			}
		}
	}
	if mask != 0 {
		mask |= 1 << 31
		e.hdr.filterBackup.Store(mask)
	}
	e.hdr.filter.Store(mask)
}

// RestoreFilter reinstates the last non-zero mask accepted by SetFilter,
// typically after logging was suspended with SetFilter(0) around a
// buffer transfer.
func (e *Engine) RestoreFilter() {
	if !e.filtering {
		return
	}
	e.hdr.filter.Store(e.hdr.filterBackup.Load())
}
