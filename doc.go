// Package tracebuf provides a minimally-intrusive binary event-logging
// engine for firmware-style workloads: fixed-size wraparound buffer, compact
// format-ID tagged records, no heap allocation on the hot path.
//
// Records are written as dense 32-bit subpackets that a host-side decoder
// reconstructs from format definitions; the engine itself never formats or
// interprets application data.
//
// # Architecture Overview
//
// The library is organized into one package per engine component:
//
//	tracebuf/          Root package with the TimeSource collaborator interface
//	├── record/        Recording engine: subpacket encoder, message filter,
//	│                  lifecycle management, long-timestamp extender
//	├── reserve/       Atomic circular-buffer space reservation strategies
//	├── wire/          Record word layout and configuration fingerprint
//	├── timestamp/     TimeSource implementations (monotonic, test counter)
//	└── errors/        Structured error types for configuration and snapshots
//
// # Quick Start
//
// Create an engine, initialize it, and log:
//
//	cfg := record.DefaultConfig()
//	eng, err := record.New(cfg, timestamp.NewMonotonic())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := eng.Init(record.EnableAll, record.ModeRestart); err != nil {
//	    log.Fatal(err)
//	}
//
//	id := cfg.Pack(2, 0x14) // filter group 2, format ID 0x14
//	eng.Msg2(id, position, velocity)
//
// Logging calls are safe to issue concurrently from any number of
// goroutines; each call costs one atomic reservation plus the word writes.
// Filtered-out messages cost a single load and compare.
//
// # Record Format
//
// A logical message is one or more subpackets. Each subpacket holds up to
// four DATA words followed by one FMT word:
//
//	DATA word   payload with bit 31 cleared (original bit 31 is carried
//	            in the FMT word's accumulator bits)
//	FMT word    [format ID bits | timestamp bits | tag bit = 1]
//
// The FMT word is written last, so a record interrupted mid-write leaves
// its slot holding the erased sentinel 0xFFFFFFFF and is detectable as
// incomplete. All subpackets of one message carry the same timestamp.
package tracebuf
