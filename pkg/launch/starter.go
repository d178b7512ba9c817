package launch

import (
	"os"
	"os/exec"
	"os/signal"
)

// Starter is the narrow child-process capability: start an invocation
// with inherited standard streams and report how it ended.
type Starter interface {
	Start(inv Invocation) (Termination, error)
}

// RealStarter runs the invocation as a real child process.
type RealStarter struct{}

// Start spawns the child with the parent's stdin, stdout and stderr and
// blocks until it terminates. A returned error means the child could not
// be started at all; once the child is running, its outcome is always a
// Termination, never an error.
func (s *RealStarter) Start(inv Invocation) (Termination, error) {
	// #nosec G204 -- delegation is the whole point: the executable comes
	// from the fixed candidate table and the arguments from the user.
	cmd := exec.Command(inv.Exe, inv.Args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = inv.Env

	if err := cmd.Start(); err != nil {
		return Termination{}, err
	}

	// Terminal-delivered signals reach the whole foreground process
	// group. The child decides what they mean; the parent only waits,
	// then mirrors whatever the child's outcome was.
	signal.Ignore(waitIgnoreSignals...)
	defer signal.Reset(waitIgnoreSignals...)

	_ = cmd.Wait()
	return terminationFromState(cmd.ProcessState), nil
}

// MockStarter is a test double for Starter. It records the invocation it
// was asked to start.
type MockStarter struct {
	StartFunc func(inv Invocation) (Termination, error)
	Started   []Invocation
}

// Start records the invocation and delegates to the mock function.
func (m *MockStarter) Start(inv Invocation) (Termination, error) {
	m.Started = append(m.Started, inv)
	if m.StartFunc != nil {
		return m.StartFunc(inv)
	}
	return Exited(0), nil
}
