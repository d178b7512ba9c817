package launcher_test

import (
	"errors"
	"os"
	"runtime"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pokemon-terminal/launcher/pkg/interpreter"
	"github.com/pokemon-terminal/launcher/pkg/launch"
)

// Integration tests verify the Real* implementations against the actual
// host. Unit tests in each package cover edge cases with mocks; these
// verify end-to-end behavior.

func TestIntegration_ProbeRunner(t *testing.T) {
	r := &interpreter.RealProbeRunner{}

	if _, err := r.Run("nonexistent-interpreter-xyz-12345", "--version"); err == nil {
		t.Error("probing a missing binary should fail")
	}
}

func TestIntegration_Resolve(t *testing.T) {
	r := &interpreter.Resolver{Runner: &interpreter.RealProbeRunner{}, Log: zerolog.Nop()}

	interp, err := r.Resolve(runtime.GOOS)
	if errors.Is(err, interpreter.ErrInterpreterNotFound) {
		t.Skip("no Python interpreter on this host, skipping")
	}
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if interp.Exe == "" {
		t.Error("resolved candidate has no executable")
	}

	// Resolution is deterministic on an unchanged host.
	again, err := r.Resolve(runtime.GOOS)
	if err != nil {
		t.Fatalf("second Resolve() error = %v", err)
	}
	if again.String() != interp.String() {
		t.Errorf("resolution changed between runs: %v then %v", interp, again)
	}
}

func TestIntegration_StarterMirrorsExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test shell not available on Windows")
	}

	s := &launch.RealStarter{}
	term, err := s.Start(launch.Invocation{
		Exe:  "sh",
		Args: []string{"-c", "exit 3"},
		Env:  os.Environ(),
	})
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if term.Code != 3 || term.BySignal() {
		t.Errorf("termination = %+v, want exit code 3", term)
	}
}
