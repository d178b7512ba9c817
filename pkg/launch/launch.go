// Package launch builds the child invocation for the pokemonterminal
// application and delegates the current process to it.
package launch

import (
	"github.com/pokemon-terminal/launcher/pkg/interpreter"
)

// moduleArgs tells the interpreter which packaged entry point to run.
// It is fixed and never user-controlled.
var moduleArgs = []string{"-m", "pokemonterminal.main"}

// Invocation is the fully assembled child command: the executable, every
// argument after argv[0], and the explicit environment it runs with.
type Invocation struct {
	Exe  string
	Args []string
	Env  []string
}

// Build assembles the child invocation from a resolved interpreter, the
// user's raw arguments, an environment snapshot, and the launcher's
// install root. User arguments are appended verbatim, in order, after the
// module entry point.
func Build(interp interpreter.Candidate, userArgs []string, environ []string, installRoot string) Invocation {
	args := make([]string, 0, len(interp.Args)+len(moduleArgs)+len(userArgs))
	args = append(args, interp.Args...)
	args = append(args, moduleArgs...)
	args = append(args, userArgs...)

	return Invocation{
		Exe:  interp.Exe,
		Args: args,
		Env:  withSearchPath(environ, installRoot),
	}
}
