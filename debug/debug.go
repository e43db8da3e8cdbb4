// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: debug.go - cold-path diagnostics for the stress harness
//
// Purpose:
//   - One pre-concatenated line per event, written through the standard logger.
//   - Used for setup, persistence and teardown messages only.
//
// ⚠️ Never call from platform, bitcast, atomics or ring; those stay silent.
// ─────────────────────────────────────────────────────────────────────────────

package debug

import (
	"io"
	"log"
	"os"
)

var logger = log.New(os.Stderr, "", log.LstdFlags)

// SetOutput redirects diagnostics; tests point it at a buffer.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// DropError logs "<prefix>: <err>", or just the prefix when err is nil
// (used as a cheap trace tag).
func DropError(prefix string, err error) {
	if err != nil {
		logger.Print(prefix + ": " + err.Error())
		return
	}
	logger.Print(prefix)
}

// DropMessage logs "<prefix>: <message>".
func DropMessage(prefix, message string) {
	logger.Print(prefix + ": " + message)
}
