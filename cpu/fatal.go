package cpu

import (
	"fmt"
	"os"
	"runtime"

	"github.com/retrosystems/mos6502/logger"
)

// abort reports the failing predicate, naming the file, line and function of
// the code that called verify or verifyf, then terminates the process. It plays the
// same role as the ep_verify predicate macro in the reference
// implementation: every programmer-error precondition in this package (an
// overlapping region, an unmapped probe, an unimplemented opcode, an
// illegal sub-cycle) goes through here rather than being returned as an
// error, because there is nothing a caller could do to recover from a
// corrupt decode table or an address space it built incorrectly.
func abort(format string, args ...interface{}) {
	file, line, fn := callerInfo(3)
	detail := fmt.Sprintf(format, args...)
	msg := fmt.Sprintf("%s:%d: %s: %s", file, line, fn, detail)
	logger.Log(logger.Allow, "cpu", msg)
	fmt.Fprintln(os.Stderr, "mos6502: fatal:", msg)
	os.Exit(1)
}

// verify aborts, naming the caller of verify, if cond is false.
func verify(cond bool, format string, args ...interface{}) {
	if cond {
		return
	}
	abort(format, args...)
}

// verifyf is an alias for the fail path of verify, used at call sites that
// have already branched on the failing condition and just want to abort.
func verifyf(format string, args ...interface{}) {
	abort(format, args...)
}

func callerInfo(skip int) (file string, line int, fn string) {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "?", 0, "?"
	}
	fn = "?"
	if f := runtime.FuncForPC(pc); f != nil {
		fn = f.Name()
	}
	return file, line, fn
}
