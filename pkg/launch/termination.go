package launch

import "syscall"

// Termination describes how the child ended: a numeric exit code, or the
// signal that killed it. Never both.
type Termination struct {
	Code   int
	Signal syscall.Signal
}

// Exited reports termination with a numeric exit code.
func Exited(code int) Termination {
	return Termination{Code: code}
}

// Signaled reports termination caused by a signal.
func Signaled(sig syscall.Signal) Termination {
	return Termination{Signal: sig}
}

// BySignal returns true when the child was killed by a signal.
func (t Termination) BySignal() bool {
	return t.Signal != 0
}
