package interpreter

import (
	"bytes"
	"os/exec"
	"strings"
)

// ProbeRunner abstracts probe execution for testability.
type ProbeRunner interface {
	// Run executes name with args and waits for it to finish. A nil error
	// means the process started and exited with status zero. The returned
	// string is whatever the process printed, combined and trimmed; it is
	// used for logging only and never influences candidate selection.
	Run(name string, args ...string) (output string, err error)
}

// RealProbeRunner implements ProbeRunner using actual OS commands.
type RealProbeRunner struct{}

// Run executes the probe, capturing its output instead of letting it
// reach the launcher's own streams.
func (r *RealProbeRunner) Run(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	err := cmd.Run()
	return strings.TrimSpace(buf.String()), err
}

// MockProbeRunner is a test double for ProbeRunner. It records every
// probe so tests can assert ordering and short-circuiting.
type MockProbeRunner struct {
	RunFunc func(name string, args ...string) (string, error)
	Calls   [][]string
}

// Run records the call and delegates to the mock function.
func (m *MockProbeRunner) Run(name string, args ...string) (string, error) {
	m.Calls = append(m.Calls, append([]string{name}, args...))
	if m.RunFunc != nil {
		return m.RunFunc(name, args...)
	}
	return "", nil
}
