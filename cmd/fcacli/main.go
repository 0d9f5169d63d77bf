// Command fcacli builds a formal context from a context-table file and
// exposes its lattice, rule set, violations, and DOT rendering from the
// command line.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("fcacli: ")
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "fcacli:", errNoSubcommand)
		printUsage(stderr)

		return 2
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "analyze":
		return cmdAnalyze(stdout, stderr, rest)
	case "rules":
		return cmdRules(stdout, stderr, rest)
	case "violations":
		return cmdViolations(stdout, stderr, rest)
	case "dot":
		return cmdDot(stdout, stderr, rest)
	case "repl":
		return cmdRepl(stdout, stderr, rest)
	case "help", "-h", "--help":
		printUsage(stdout)

		return 0
	default:
		fmt.Fprintf(stderr, "fcacli: %v: %s\n", errUnknownCommand, cmd)

		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: fcacli <analyze|rules|violations|dot> [--input context-file] [flags]")
	fmt.Fprintln(w, "       fcacli repl [context-file]")
}
