//go:build unix

package launch

import (
	"os"
	"syscall"
)

var waitIgnoreSignals = []os.Signal{os.Interrupt, syscall.SIGQUIT}

// terminationFromState maps the child's wait status to a Termination.
// A signal-killed child is reported as signaled, not as an exit code, so
// job-control semantics survive the delegation.
func terminationFromState(state *os.ProcessState) Termination {
	if state == nil {
		return Exited(1)
	}
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return Signaled(ws.Signal())
	}
	if code := state.ExitCode(); code >= 0 {
		return Exited(code)
	}
	return Exited(1)
}
