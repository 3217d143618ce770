// Package wire defines the on-buffer word layout shared by the recording
// engine, its tests, and host-side tooling.
//
// All words are little-endian 32-bit. A subpacket is up to four DATA words
// followed by one FMT word:
//
//	FMT word, MSB → LSB:
//	  [fmtBits]            format ID (low bits may hold the accumulator)
//	  [31-fmtBits .. 1]    timestamp
//	  [0]                  tag bit, always 1
//
//	DATA word: payload with bit 31 forced to 0. The true bit-31 values of a
//	subpacket's DATA words are recovered from the accumulator carried in the
//	FMT word's low format-ID bits.
//
// The erased sentinel 0xFFFFFFFF marks "reserved but not yet written".
// DATA words can never equal it (bit 31 is cleared); FMT words can never
// equal it as long as the all-ones format ID stays unassigned, which the
// format-definition tooling guarantees.
//
// The configuration fingerprint word records the compile-time shape of the
// log so a decoder (and the engine itself after a reset) can detect an
// incompatible or never-initialized header.
package wire
