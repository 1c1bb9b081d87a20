// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: runner.go — Case selection, driver hand-off & JSON output
//
// Purpose:
//   - Builds the suite from config and feeds each case to testing.Benchmark.
//   - Emits raw driver numbers only; no aggregation or history.
//
// Notes:
//   - Corpus generation happens inside the first driver round, before the
//     driver's ResetTimer, so it is never measured
//   - With cpu pinning, each driver round locks its goroutine to a fresh OS
//     thread and never unlocks it, so the runtime discards the pinned thread
//     when the round ends
// ─────────────────────────────────────────────────────────────────────────────

package main

import (
	"flag"
	"fmt"
	"io"
	"runtime"
	rtdebug "runtime/debug"
	"testing"

	"github.com/sugawarayuuta/sonnet"

	"numbench/bench"
	"numbench/config"
	"numbench/debug"
	"numbench/suite"
	"numbench/utils"
)

// caseInfo is one `list` line.
type caseInfo struct {
	Name  string `json:"name"`
	Shape string `json:"shape"`
	Len   int    `json:"len"`
	Seed  uint64 `json:"seed"`
}

type runRecord struct {
	Name        string `json:"name"`
	Shape       string `json:"shape"`
	Len         int    `json:"len"`
	Seed        uint64 `json:"seed"`
	N           int    `json:"n"`
	NsPerOp     int64  `json:"ns_per_op"`
	AllocsPerOp int64  `json:"allocs_per_op"`
	BytesPerOp  int64  `json:"bytes_per_op"`
}

type fingerprintRecord struct {
	Name    string   `json:"name"`
	Shape   string   `json:"shape"`
	Len     int      `json:"len"`
	Seed    uint64   `json:"seed"`
	Corpora []string `json:"corpora"`
}

func infoOf(c *bench.Case) caseInfo {
	return caseInfo{Name: c.Name(), Shape: c.Shape().String(), Len: c.Len(), Seed: c.Seed()}
}

// selectCases declares the suite with cfg's corpus options and filters it.
func selectCases(cfg *config.Config) ([]*bench.Case, error) {
	pats, err := cfg.Patterns()
	if err != nil {
		return nil, err
	}
	return suite.Declare(cfg.Options()...).Select(pats), nil
}

func writeLine(out io.Writer, v any) error {
	line, err := sonnet.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	line = append(line, '\n')
	if _, err := out.Write(line); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}

func listCases(out io.Writer, cfg *config.Config) error {
	cases, err := selectCases(cfg)
	if err != nil {
		return err
	}
	for _, c := range cases {
		if err := writeLine(out, infoOf(c)); err != nil {
			return err
		}
	}
	return nil
}

func fingerprintCases(out io.Writer, cfg *config.Config) error {
	cases, err := selectCases(cfg)
	if err != nil {
		return err
	}
	for _, c := range cases {
		rec := fingerprintRecord{Name: c.Name(), Shape: c.Shape().String(), Len: c.Len(), Seed: c.Seed()}
		for _, v := range c.Corpora() {
			fp := v.Fingerprint()
			rec.Corpora = append(rec.Corpora, string(utils.AppendHex(nil, fp[:])))
		}
		if err := writeLine(out, rec); err != nil {
			return err
		}
	}
	return nil
}

// setBenchtime points the testing driver at cfg's benchtime and returns a
// restore func.
func setBenchtime(benchtime string) (func(), error) {
	if flag.Lookup("test.benchtime") == nil {
		testing.Init()
	}
	f := flag.Lookup("test.benchtime")
	prev := f.Value.String()
	if err := flag.Set("test.benchtime", benchtime); err != nil {
		return nil, fmt.Errorf("benchtime %q: %w", benchtime, err)
	}
	return func() { _ = flag.Set("test.benchtime", prev) }, nil
}

// checkPin checks pinning works on a throwaway thread.
func checkPin(cpu int) error {
	errc := make(chan error, 1)
	go func() {
		runtime.LockOSThread() // never unlocked: the thread dies with the goroutine
		errc <- pinCPU(cpu)
	}()
	return <-errc
}

// driverFunc wraps c for testing.Benchmark, pinning each round when asked.
func driverFunc(c *bench.Case, cpu int) func(*testing.B) {
	if cpu < 0 {
		return c.Benchmark
	}
	return func(b *testing.B) {
		runtime.LockOSThread() // never unlocked, see file header
		if err := pinCPU(cpu); err != nil {
			b.Fatalf("pin cpu %d: %v", cpu, err)
		}
		c.Benchmark(b)
	}
}

func runCases(out io.Writer, cfg *config.Config) error {
	cases, err := selectCases(cfg)
	if err != nil {
		return err
	}
	restore, err := setBenchtime(cfg.Benchtime)
	if err != nil {
		return err
	}
	defer restore()

	cpu := cfg.CPU
	if cpu >= 0 {
		if err := checkPin(cpu); err != nil {
			debug.DropError("PIN cpu "+utils.Itoa(cpu)+" disabled", err)
			cpu = -1
		}
	}

	if cfg.DisableGC {
		prev := rtdebug.SetGCPercent(-1)
		defer rtdebug.SetGCPercent(prev)
	}

	debug.DropMessage("RUN", utils.Itoa(len(cases))+" cases, corpus len "+utils.Itoa(1<<cfg.Bits)+", benchtime "+cfg.Benchtime)
	for _, c := range cases {
		runtime.GC() // start every case from a clean heap
		res := testing.Benchmark(driverFunc(c, cpu))
		if res.N == 0 {
			debug.DropMessage("SKIP", c.Name()+": driver reported no iterations")
			continue
		}
		rec := runRecord{
			Name:        c.Name(),
			Shape:       c.Shape().String(),
			Len:         c.Len(),
			Seed:        c.Seed(),
			N:           res.N,
			NsPerOp:     res.NsPerOp(),
			AllocsPerOp: res.AllocsPerOp(),
			BytesPerOp:  res.AllocedBytesPerOp(),
		}
		if err := writeLine(out, rec); err != nil {
			return err
		}
	}
	return nil
}
