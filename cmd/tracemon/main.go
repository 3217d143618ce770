package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/embtrace/tracebuf/record"
	"github.com/embtrace/tracebuf/timestamp"
)

func main() {
	var (
		bufWords    = flag.Uint("buffer", 1024, "Circular buffer capacity in 32-bit words")
		fmtBits     = flag.Uint("fmtbits", 10, "Format ID width in bits (9-16)")
		shift       = flag.Uint("shift", 1, "Timestamp shift (1 = full resolution)")
		subpackets  = flag.Uint("subpackets", 4, "Maximum subpackets per message")
		mode        = flag.String("mode", "restart", "Init mode: continue, singleshot, restart, singleshot-erase")
		out         = flag.String("out", "trace.bin", "Snapshot output file")
		count       = flag.Uint("count", 200, "Number of synthetic messages to record")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		record.SetLogger(log)
	}

	initMode, err := parseMode(*mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := record.DefaultConfig()
	cfg.BufferWords = uint32(*bufWords)
	cfg.FmtIDBits = uint32(*fmtBits)
	cfg.TimestampShift = uint32(*shift)
	cfg.MaxSubpackets = uint32(*subpackets)

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "stdout is not a terminal, running one-shot capture instead")
		} else {
			if err := runInteractive(cfg, initMode, *out); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	if err := run(cfg, initMode, *out, uint32(*count)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseMode(s string) (record.Mode, error) {
	switch s {
	case "continue":
		return record.ModeContinue, nil
	case "singleshot":
		return record.ModeSingleShot, nil
	case "restart":
		return record.ModeRestart, nil
	case "singleshot-erase":
		return record.ModeSingleShotErase, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", s)
	}
}

func run(cfg record.Config, mode record.Mode, out string, count uint32) error {
	eng, err := record.New(cfg, timestamp.NewMonotonic())
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}
	if err := eng.Init(record.EnableAll, mode); err != nil {
		return fmt.Errorf("init: %w", err)
	}

	w := newWorkload(cfg)
	for i := uint32(0); i < count; i++ {
		w.step(eng, i)
	}

	// Freeze the buffer for a consistent snapshot.
	eng.SetFilter(0)
	data, err := eng.MarshalBinary()
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	eng.RestoreFilter()

	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	fmt.Printf("Recorded %d messages, write index %d\n", count, eng.WriteIndex())
	fmt.Printf("Snapshot: %s (%d bytes)\n", out, len(data))
	return nil
}

// workload produces a repeating mix of message shapes, standing in for
// instrumented firmware.
type workload struct {
	idTick     uint32
	idADC      uint32
	idPosition uint32
	idState    uint32
	idName     uint32
}

func newWorkload(cfg record.Config) *workload {
	return &workload{
		idTick:     cfg.Pack(1, 0x10),
		idADC:      cfg.Pack(1, 0x20),
		idPosition: cfg.Pack(2, 0x30),
		idState:    cfg.Pack(3, 0x40),
		idName:     cfg.Pack(3, 0x50),
	}
}

func (w *workload) step(eng *record.Engine, i uint32) {
	switch i % 8 {
	case 0:
		eng.Msg0(w.idTick)
	case 1, 5:
		eng.Msg1(w.idADC, 0x800+i%97)
	case 2, 6:
		eng.Msg2(w.idPosition, i*31, record.F32(float32(i)*0.25))
	case 3:
		eng.Msg1(w.idADC, record.F64(float64(i)*1.5))
	case 4:
		eng.MsgN(w.idState, []uint32{i, i * 3, i * 7, 0x80000000 | i, i ^ 0xA5A5})
	case 7:
		eng.String(w.idName, fmt.Sprintf("task-%d", i%5))
	}
	if i%64 == 0 {
		eng.LongTimestamp()
	}
}
