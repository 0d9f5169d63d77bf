package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/katalvlaran/lvlath-fca/fca"
)

// replSession holds the loaded context and the readline state for the
// interactive shell started by "fcacli repl".
type replSession struct {
	ctx   *ctxType
	liner *liner.State
}

func historyFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".fcacli_history")
}

// cmdRepl opens an interactive shell over a loaded context, supporting
// "size", "top", "bottom", "concepts", "rules", "violations", and "quit".
func cmdRepl(stdout, stderr io.Writer, args []string) int {
	input := ""
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		input = args[0]
	}

	ctx, err := buildContext(input)
	if err != nil {
		fmt.Fprintln(stderr, "fcacli repl:", err)

		return 1
	}

	s := &replSession{ctx: ctx, liner: liner.NewLiner()}
	defer s.liner.Close()
	s.liner.SetCtrlCAborts(true)
	s.liner.SetCompleter(s.completer)

	if f, err := os.Open(historyFilePath()); err == nil {
		s.liner.ReadHistory(f)
		f.Close()
	}

	fmt.Fprintln(stdout, "fcacli repl — type 'help' for commands, 'quit' to exit")

	for {
		line, err := s.liner.Prompt("fca> ")
		if err != nil {
			if err == liner.ErrPromptAborted || err == io.EOF {
				fmt.Fprintln(stdout, "bye")
				break
			}
			fmt.Fprintln(stderr, "fcacli repl:", err)

			return 1
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		s.liner.AppendHistory(line)

		if !s.dispatch(stdout, stderr, line) {
			break
		}
	}

	if f, err := os.Create(historyFilePath()); err == nil {
		s.liner.WriteHistory(f)
		f.Close()
	}

	return 0
}

func (s *replSession) completer(line string) []string {
	commands := []string{"size", "top", "bottom", "concepts", "rules", "violations", "help", "quit"}
	var out []string
	for _, c := range commands {
		if strings.HasPrefix(c, line) {
			out = append(out, c)
		}
	}

	return out
}

// dispatch runs one command line; it returns false when the session should end.
func (s *replSession) dispatch(stdout, stderr io.Writer, line string) bool {
	fields := strings.Fields(line)
	cmd := strings.ToLower(fields[0])

	switch cmd {
	case "quit", "exit":
		return false
	case "help":
		fmt.Fprintln(stdout, "commands: size, top, bottom, concepts, rules [min-support], violations [min-support min-confidence], quit")
	case "size":
		n, err := fca.Size(s.ctx)
		if err != nil {
			fmt.Fprintln(stderr, err)
			break
		}
		fmt.Fprintln(stdout, n)
	case "top":
		c, err := fca.Top(s.ctx)
		if err != nil {
			fmt.Fprintln(stderr, err)
			break
		}
		printConcept(stdout, c)
	case "bottom":
		c, err := fca.Bottom(s.ctx)
		if err != nil {
			fmt.Fprintln(stderr, err)
			break
		}
		printConcept(stdout, c)
	case "concepts":
		cs, err := fca.Concepts(s.ctx)
		if err != nil {
			fmt.Fprintln(stderr, err)
			break
		}
		for _, c := range cs {
			printConcept(stdout, c)
		}
	case "rules":
		s.runRules(stdout, stderr, fields[1:])
	case "violations":
		s.runViolations(stdout, stderr, fields[1:])
	default:
		fmt.Fprintf(stderr, "unknown command %q; type 'help'\n", cmd)
	}

	return true
}

func printConcept(w io.Writer, c fca.Concept[string, string]) {
	fmt.Fprintf(w, "({%s}, {%s})\n",
		strings.Join(c.Objects.Members(), ", "),
		strings.Join(c.Attributes.Members(), ", "))
}

func (s *replSession) runRules(stdout, stderr io.Writer, args []string) {
	minSupport := 1
	if len(args) > 0 {
		if v, err := strconv.Atoi(args[0]); err == nil {
			minSupport = v
		}
	}
	data, err := formatRules(mustRules(s.ctx, minSupport), "text")
	if err != nil {
		fmt.Fprintln(stderr, err)

		return
	}
	stdout.Write(data)
}

func (s *replSession) runViolations(stdout, stderr io.Writer, args []string) {
	minSupport, minConfidence := 1, 0.0
	if len(args) > 0 {
		if v, err := strconv.Atoi(args[0]); err == nil {
			minSupport = v
		}
	}
	if len(args) > 1 {
		if v, err := strconv.ParseFloat(args[1], 64); err == nil {
			minConfidence = v
		}
	}
	vs, err := mustViolations(s.ctx, minSupport, minConfidence)
	if err != nil {
		fmt.Fprintln(stderr, err)

		return
	}
	data, err := formatViolations(s.ctx, vs, "text")
	if err != nil {
		fmt.Fprintln(stderr, err)

		return
	}
	stdout.Write(data)
}
