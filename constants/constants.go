// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: constants.go — Corpus sizing & generator seeding tunables
//
// Purpose:
//   - Defines the default corpus geometry shared by every benchmark case.
//   - Pins the seed of the deterministic generator so corpora are identical
//     across processes and machines.
//
// Notes:
//   - Corpus lengths are powers of two so the cursor wraps with a single AND
//   - 2^13 slots of a 64-byte Mat4 is 512 KiB, which still sits in L2 on most
//     parts; vectors stay inside L1/L2 comfortably
//
// ⚠️ No runtime logic here; all values must be compile-time resolvable
// ─────────────────────────────────────────────────────────────────────────────

package constants

// ───────────────────────────── Corpus Geometry ──────────────────────────────

const (
	// CorpusBits is the default log₂ of the corpus length.
	CorpusBits = 13

	// CorpusLen is the default number of pre-generated operands per position.
	CorpusLen = 1 << CorpusBits // 8,192 slots

	// CorpusMask wraps the cursor without a modulo.
	CorpusMask = CorpusLen - 1

	// MinCorpusBits allows test-scale corpora (2 slots).
	MinCorpusBits = 1

	// MaxCorpusBits caps a single corpus at 16 Mi slots. Anything larger
	// measures DRAM bandwidth instead of the operation.
	MaxCorpusBits = 24
)

// ─────────────────────────── Generator Seeding ─────────────────────────────

const (
	// DefaultSeed is the first PCG word. Every case starts from it unless a
	// seed is given explicitly.
	DefaultSeed uint64 = 0x6e756d62656e6368 // "numbench"

	// SeedStream is the second PCG word. It never changes, so a seed fully
	// determines the sequence.
	SeedStream uint64 = 0x9e3779b97f4a7c15
)

// ─────────────────────────── Runner Defaults ───────────────────────────────

const (
	// DefaultBenchtime is handed to the testing driver as -test.benchtime.
	DefaultBenchtime = "1s"

	// NoPin disables CPU pinning in the runner.
	NoPin = -1
)
