//go:build windows

package launch

import "os"

var waitIgnoreSignals = []os.Signal{os.Interrupt}

// terminationFromState maps the child's wait status to a Termination.
// Windows has no signal-terminated processes; only exit codes exist.
func terminationFromState(state *os.ProcessState) Termination {
	if state == nil {
		return Exited(1)
	}
	if code := state.ExitCode(); code >= 0 {
		return Exited(code)
	}
	return Exited(1)
}
