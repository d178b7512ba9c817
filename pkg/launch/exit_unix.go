//go:build unix

package launch

import (
	"os"
	"os/signal"
	"syscall"
)

// Apply terminates the current process the same way the child did. For a
// signal-killed child the parent re-raises that signal against itself
// with default handling restored, so an external observer sees the same
// signal-based termination up the process tree.
func (t Termination) Apply() {
	if t.BySignal() {
		signal.Reset(t.Signal)
		_ = syscall.Kill(os.Getpid(), t.Signal)
		// Reached only if the raise did not take, e.g. the signal is
		// blocked by the environment. Fall back to the shell convention.
		os.Exit(128 + int(t.Signal))
	}
	os.Exit(t.Code)
}
