package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pokemon-terminal/launcher/pkg/interpreter"
	"github.com/pokemon-terminal/launcher/pkg/launch"
	"github.com/pokemon-terminal/launcher/pkg/logging"
)

// Version is set at build time via ldflags
var Version = "dev"

// The launcher defines no flags and no subcommands of its own: every
// argument belongs to the pokemonterminal application and is forwarded
// verbatim, in order, unparsed.
var rootCmd = &cobra.Command{
	Use:                "pokemon [arguments...]",
	Short:              "Launch Pokemon Terminal through the host's Python interpreter",
	Long:               "pokemon finds a usable Python 3 interpreter, then hands your arguments, the terminal, and the exit status straight to the pokemonterminal application.",
	Version:            Version,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
	Run: func(cmd *cobra.Command, args []string) {
		run(args).Apply()
	},
}

// run wires the real host capabilities into the launcher and performs
// the one-shot delegation.
func run(args []string) launch.Termination {
	log := logging.New()

	l := &launch.Launcher{
		Resolver: &interpreter.Resolver{Runner: &interpreter.RealProbeRunner{}, Log: log},
		Starter:  &launch.RealStarter{},
		Stderr:   os.Stderr,
		Log:      log,
	}
	return l.Run(args)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
