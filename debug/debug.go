// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: debug.go — Cold-path diagnostics for the benchmark runner
//
// Purpose:
//   - Logs case lifecycle (declared, measured, skipped) and setup failures.
//   - Never called between ResetTimer and the end of a measured loop.
//
// Notes:
//   - Avoids fmt.Sprintf; messages are concatenated and written to fd 2.
//
// ⚠️ Never invoke in hot loops. Use only in setup and failure diagnostics.
// ─────────────────────────────────────────────────────────────────────────────

package debug

import "numbench/utils"

// DropError logs prefix and err. A nil err logs just the prefix, which is
// handy as a cheap trace tag.
//
//go:nosplit
//go:inline
func DropError(prefix string, err error) {
	if err != nil {
		utils.PrintWarning(prefix + ": " + err.Error() + "\n")
		return
	}
	utils.PrintWarning(prefix + "\n")
}

// DropMessage logs a tagged diagnostic line.
//
//go:nosplit
//go:inline
func DropMessage(prefix, message string) {
	utils.PrintWarning(prefix + ": " + message + "\n")
}
