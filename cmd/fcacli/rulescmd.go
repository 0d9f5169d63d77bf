package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvlath-fca/rules"
)

// preScanConfigPath extracts --config/-c from args without erroring on any
// other (as yet unregistered) flag, so the config file can be loaded before
// its values become the real flag set's defaults.
func preScanConfigPath(args []string) string {
	fs := pflag.NewFlagSet("prescan", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	configPath := fs.StringP("config", "c", "", "")
	_ = fs.Parse(args)

	return *configPath
}

// mustRules mines rules at a given min-support with every other threshold at
// its package default, for the repl's quick "rules N" shorthand.
func mustRules(ctx *ctxType, minSupport int) []rules.Rule[string, string] {
	rs, err := rules.Rules(ctx, rules.NewConfig(rules.WithMinSupport(minSupport)))
	if err != nil {
		return nil
	}

	return rs
}

// mustViolations mines flaws at a given min-support/min-confidence, for the
// repl's quick "violations N C" shorthand.
func mustViolations(ctx *ctxType, minSupport int, minConfidence float64) ([]rules.Violation[string, string], error) {
	return rules.Flaws(ctx, rules.NewConfig(rules.WithMinSupport(minSupport), rules.WithMinConfidence(minConfidence)))
}

type ruleRecord struct {
	Support []string `json:"support"`
	RHS     []string `json:"rhs"`
}

// cmdRules mines frequent, well-supported attribute sets.
func cmdRules(stdout, stderr io.Writer, args []string) int {
	cfg, err := LoadConfig(preScanConfigPath(args))
	if err != nil {
		fmt.Fprintln(stderr, "fcacli rules:", err)

		return 1
	}

	fs := pflag.NewFlagSet("rules", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	input := fs.StringP("input", "i", "", "context-table file (default stdin)")
	fs.StringP("config", "c", "", ".fcarc config file")
	output := fs.StringP("output", "o", "", "output file (default stdout)")
	format := fs.String("format", "text", "output format: text|json")
	mf := registerMinerFlags(fs, cfg)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(stderr, "fcacli rules:", err)

		return 2
	}

	ctx, err := buildContext(*input)
	if err != nil {
		fmt.Fprintln(stderr, "fcacli rules:", err)

		return 1
	}

	rs, err := rules.Rules(ctx, rules.NewConfig(mf.options()...))
	if err != nil {
		fmt.Fprintln(stderr, "fcacli rules:", err)

		return 1
	}

	data, err := formatRules(rs, *format)
	if err != nil {
		fmt.Fprintln(stderr, "fcacli rules:", err)

		return 1
	}

	if err := writeOutput(stdout, *output, data); err != nil {
		fmt.Fprintln(stderr, "fcacli rules:", err)

		return 1
	}

	return 0
}

func formatRules(rs []rules.Rule[string, string], format string) ([]byte, error) {
	if format == "json" {
		records := make([]ruleRecord, len(rs))
		for i, r := range rs {
			records[i] = ruleRecord{Support: r.Support.Members(), RHS: r.RHS.Members()}
		}

		return json.MarshalIndent(records, "", "  ")
	}

	var b strings.Builder
	for _, r := range rs {
		fmt.Fprintf(&b, "rule (support %d): %s\n", r.Support.Count(), strings.Join(r.RHS.Members(), ", "))
	}

	return []byte(b.String()), nil
}

// cmdViolations mines near-miss exceptions (flaws) against the rule set.
func cmdViolations(stdout, stderr io.Writer, args []string) int {
	cfg, err := LoadConfig(preScanConfigPath(args))
	if err != nil {
		fmt.Fprintln(stderr, "fcacli violations:", err)

		return 1
	}

	fs := pflag.NewFlagSet("violations", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	input := fs.StringP("input", "i", "", "context-table file (default stdin)")
	fs.StringP("config", "c", "", ".fcarc config file")
	output := fs.StringP("output", "o", "", "output file (default stdout)")
	format := fs.String("format", "text", "output format: text|json")
	mf := registerMinerFlags(fs, cfg)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(stderr, "fcacli violations:", err)

		return 2
	}

	ctx, err := buildContext(*input)
	if err != nil {
		fmt.Fprintln(stderr, "fcacli violations:", err)

		return 1
	}

	vs, err := rules.Flaws(ctx, rules.NewConfig(mf.options()...))
	if err != nil {
		fmt.Fprintln(stderr, "fcacli violations:", err)

		return 1
	}

	data, err := formatViolations(ctx, vs, *format)
	if err != nil {
		fmt.Fprintln(stderr, "fcacli violations:", err)

		return 1
	}

	if err := writeOutput(stdout, *output, data); err != nil {
		fmt.Fprintln(stderr, "fcacli violations:", err)

		return 1
	}

	return 0
}

type violationRecord struct {
	Confidence float64  `json:"confidence"`
	Flaws      []string `json:"flaws"`
	RuleRHS    []string `json:"rule_rhs"`
	FlawRHS    []string `json:"flaw_rhs"`
}

func formatViolations(ctx *ctxType, vs []rules.Violation[string, string], format string) ([]byte, error) {
	if format == "json" {
		records := make([]violationRecord, 0, len(vs))
		for _, v := range vs {
			exceptions, err := v.Exceptions()
			if err != nil {
				return nil, err
			}
			records = append(records, violationRecord{
				Confidence: v.Confidence(),
				Flaws:      exceptions.Members(),
				RuleRHS:    v.Rule.RHS.Members(),
				FlawRHS:    v.Flaw.RHS.Members(),
			})
		}

		return json.MarshalIndent(records, "", "  ")
	}

	var b strings.Builder
	for _, v := range vs {
		line, err := rules.FormatViolation(ctx, v)
		if err != nil {
			return nil, err
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return []byte(b.String()), nil
}
