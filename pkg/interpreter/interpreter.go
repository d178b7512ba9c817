// Package interpreter locates a usable Python interpreter on the host.
package interpreter

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pokemon-terminal/launcher/pkg/version"
)

// Candidate is one platform-appropriate way to invoke an interpreter:
// an executable name plus any fixed prefix arguments.
type Candidate struct {
	Exe  string
	Args []string
}

// String renders the candidate as it would appear on a command line.
func (c Candidate) String() string {
	if len(c.Args) == 0 {
		return c.Exe
	}
	return c.Exe + " " + strings.Join(c.Args, " ")
}

// probeArg asks the interpreter to identify itself. The probe's output is
// discarded; only its exit status decides usability.
const probeArg = "--version"

// minSupported is the oldest interpreter the application is known to work
// with. Older resolved interpreters are logged, not rejected.
var minSupported = version.Version{Major: 3, Minor: 7}

// ErrInterpreterNotFound is returned when no candidate is runnable.
var ErrInterpreterNotFound = errors.New("no usable Python interpreter found")

// Candidates returns the fixed probe order for a platform. Windows gets
// the py version selector first; elsewhere python3 comes before python so
// a legacy Python 2 install is never picked up by accident.
func Candidates(goos string) []Candidate {
	if goos == "windows" {
		return []Candidate{
			{Exe: "py", Args: []string{"-3"}},
			{Exe: "python"},
			{Exe: "python3"},
		}
	}
	return []Candidate{
		{Exe: "python3"},
		{Exe: "python"},
	}
}

// Resolver probes interpreter candidates through an injected ProbeRunner.
type Resolver struct {
	Runner ProbeRunner
	Log    zerolog.Logger
}

// Resolve probes the platform's candidates strictly in order and returns
// the first one whose probe exits zero. Probe failures are expected on
// most hosts (missing binaries, broken shims) and disqualify only that
// candidate.
func (r *Resolver) Resolve(goos string) (Candidate, error) {
	for _, c := range Candidates(goos) {
		args := append(append([]string{}, c.Args...), probeArg)
		out, err := r.Runner.Run(c.Exe, args...)
		if err != nil {
			r.Log.Debug().Str("candidate", c.String()).Err(err).Msg("probe failed")
			continue
		}
		r.logResolved(c, out)
		return c, nil
	}
	return Candidate{}, ErrInterpreterNotFound
}

// logResolved reports the interpreter version when the probe output is
// parseable. Unparseable output is fine; the candidate already passed.
func (r *Resolver) logResolved(c Candidate, probeOutput string) {
	v, err := version.Extract(probeOutput)
	if err != nil {
		r.Log.Debug().Str("candidate", c.String()).Msg("resolved interpreter")
		return
	}
	if v.LessThan(minSupported) {
		r.Log.Warn().
			Str("candidate", c.String()).
			Str("version", v.String()).
			Str("minimum", minSupported.String()).
			Msg("interpreter older than the supported minimum")
		return
	}
	r.Log.Debug().Str("candidate", c.String()).Str("version", v.String()).Msg("resolved interpreter")
}
