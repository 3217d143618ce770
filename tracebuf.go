package tracebuf

// TimeSource supplies the raw timestamp counter the recording engine embeds
// in every record. Implementations wrap whatever monotonic counter the
// platform offers; the engine only shifts and masks the value into the
// record format.
//
// Read must be safe to call concurrently and must never block.
type TimeSource interface {
	// Init prepares the counter. The engine calls it once from Init.
	Init() error

	// Read returns the current raw counter value. Counters narrower than
	// 32 bits report their width via Bits; higher bits must be zero.
	Read() uint32

	// Bits is the significant width of the counter in bits, 1..32.
	Bits() uint32

	// Frequency is the counter clock in Hz, stored in the log header for
	// the decoder. Zero means the source carries no time information.
	Frequency() uint32
}
