package launch

import (
	"os"
	"path/filepath"
	"strings"
)

// searchPathVar is the variable the child honors to locate the
// pokemonterminal package when it is not installed site-wide.
const searchPathVar = "PYTHONPATH"

// withSearchPath returns a copy of environ with root prepended to the
// search path variable. A pre-existing value is kept after the platform's
// path list separator; every other variable passes through untouched.
func withSearchPath(environ []string, root string) []string {
	prefix := searchPathVar + "="
	value := root

	out := make([]string, 0, len(environ)+1)
	for _, kv := range environ {
		if strings.HasPrefix(kv, prefix) {
			if old := kv[len(prefix):]; old != "" {
				value = root + string(os.PathListSeparator) + old
			}
			continue
		}
		out = append(out, kv)
	}
	return append(out, prefix+value)
}

// InstallRoot returns the directory holding the launcher executable, so
// a co-located pokemonterminal package is importable by the child. It
// never fails the launch; the worst fallback is the working directory.
func InstallRoot() string {
	if exe, err := os.Executable(); err == nil {
		return filepath.Dir(exe)
	}
	if abs, err := filepath.Abs(os.Args[0]); err == nil {
		return filepath.Dir(abs)
	}
	return "."
}
