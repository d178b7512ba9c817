//go:build windows

package launch

import "os"

// Apply terminates the current process with the child's outcome. Windows
// children never report a terminating signal, but if one were scripted in
// tests the shell convention keeps the mapping deterministic.
func (t Termination) Apply() {
	if t.BySignal() {
		os.Exit(128 + int(t.Signal))
	}
	os.Exit(t.Code)
}
