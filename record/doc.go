// Package record implements the recording engine: the hot-path message
// entry points, the message filter, the lifecycle manager and the
// long-timestamp extender, all operating on one statically shaped log
// header with a circular word buffer.
//
// # Entry Points
//
// Fixed-arity messages are the hot path; each is a filter check, one
// atomic reservation and up to five word writes:
//
//	eng.Msg0(id)                  format ID and timestamp only
//	eng.Msg1(id, d0)              one data word
//	...
//	eng.Msg4(id, d0, d1, d2, d3)  four data words, one full subpacket
//
// Longer payloads use the looping encoders:
//
//	eng.MsgN(id, words)   word array, subpackets of up to 4 data words
//	eng.MsgX(id, bytes)   byte range of unknown alignment; the original
//	                      byte length rides in the top 8 bits of the
//	                      final data word
//	eng.String(id, s)     string payload, zero-padded final word
//
// A format ID packs the 5-bit filter group above the configured format-ID
// width; build it with Config.Pack. For MsgK the low K bits of the ID must
// be zero (they carry the bit-31 accumulator); for MsgN, MsgX and String
// the low 4 bits must be zero.
//
// # Concurrency
//
// Every entry point is safe from any number of goroutines sharing one
// Engine, subject to the reservation strategy chosen at construction
// (see package reserve). Calls never block (except under the explicit
// Mutex strategy), never allocate and never return errors: disabled,
// oversized or no-longer-fitting messages are silently dropped or
// truncated per configuration.
//
// Init and LongTimestamp are the exceptions: Init must run while no other
// context is logging, and LongTimestamp must be called from a single
// serialized context such as a periodic timer goroutine.
package record
