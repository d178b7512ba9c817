package launch

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/pokemon-terminal/launcher/pkg/interpreter"
	"github.com/pokemon-terminal/launcher/pkg/output"
)

// The sole fatal diagnostic: what is missing and what to do about it.
const (
	missingHeadline = "Pokemon Terminal requires Python 3.7 or later, and no usable interpreter was found."
	missingAdvice   = "Install Python from https://www.python.org/downloads/ and run pokemon again."
)

// Launcher performs the single resolve-then-delegate action of one
// invocation. Zero-value fields fall back to the real environment, so
// tests inject only what they script.
type Launcher struct {
	Resolver *interpreter.Resolver
	Starter  Starter
	Stderr   io.Writer
	Log      zerolog.Logger

	// Injectable host state for tests.
	GOOS    string
	Environ func() []string
	Root    func() string
}

// Run resolves an interpreter, builds the child invocation, and waits for
// the child. The returned Termination is what the parent process should
// die with; no child is spawned when resolution fails.
func (l *Launcher) Run(userArgs []string) Termination {
	interp, err := l.Resolver.Resolve(l.goos())
	if err != nil {
		output.Fatal(l.stderr(), missingHeadline, missingAdvice)
		return Exited(1)
	}

	inv := Build(interp, userArgs, l.environ(), l.root())
	l.Log.Debug().Str("exe", inv.Exe).Strs("args", inv.Args).Msg("delegating")

	term, err := l.Starter.Start(inv)
	if err != nil {
		// The interpreter passed its probe but could not be started;
		// probe-then-spawn is a single decision point, no second try.
		fmt.Fprintf(l.stderr(), "pokemon: failed to start %s: %v\n", interp, err)
		return Exited(1)
	}

	if term.BySignal() {
		l.Log.Debug().Int("signal", int(term.Signal)).Msg("child killed by signal")
	} else {
		l.Log.Debug().Int("code", term.Code).Msg("child exited")
	}
	return term
}

func (l *Launcher) goos() string {
	if l.GOOS != "" {
		return l.GOOS
	}
	return runtime.GOOS
}

func (l *Launcher) environ() []string {
	if l.Environ != nil {
		return l.Environ()
	}
	return os.Environ()
}

func (l *Launcher) root() string {
	if l.Root != nil {
		return l.Root()
	}
	return InstallRoot()
}

func (l *Launcher) stderr() io.Writer {
	if l.Stderr != nil {
		return l.Stderr
	}
	return os.Stderr
}
