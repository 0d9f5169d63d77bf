package main

import (
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvlath-fca/rules"
)

// minerFlags holds the miner threshold flags shared by the rules and
// violations subcommands. registerMinerFlags seeds each flag's default
// from cfg so an .fcarc value is only overridden when the flag is actually
// passed.
type minerFlags struct {
	minSupport    int
	minRHS        int
	minConfidence float64
	maxDiff       int
	maxConfidence float64
	minWidth      int
}

func registerMinerFlags(fs *pflag.FlagSet, cfg Config) *minerFlags {
	mf := &minerFlags{}
	fs.IntVar(&mf.minSupport, "min-support", orDefault(cfg.MinSupport, 1), "minimum object-set size")
	fs.IntVar(&mf.minRHS, "min-rhs", orDefault(cfg.MinRHS, 1), "minimum attribute-set size")
	fs.Float64Var(&mf.minConfidence, "min-confidence", cfg.MinConfidence, "minimum violation confidence")
	fs.IntVar(&mf.maxDiff, "max-diff", cfg.MaxDiff, "maximum attribute gap")
	fs.Float64Var(&mf.maxConfidence, "max-confidence", orDefaultF(cfg.MaxConfidence, 1), "maximum independent-rule confidence")
	fs.IntVar(&mf.minWidth, "min-width", orDefault(cfg.MinWidth, 1), "minimum independent-rule support width")

	return mf
}

func (mf *minerFlags) options() []rules.Option {
	return []rules.Option{
		rules.WithMinSupport(mf.minSupport),
		rules.WithMinRHS(mf.minRHS),
		rules.WithMinConfidence(mf.minConfidence),
		rules.WithMaxDiff(mf.maxDiff),
		rules.WithMaxConfidence(mf.maxConfidence),
		rules.WithMinWidth(mf.minWidth),
	}
}

func orDefault(v, fallback int) int {
	if v == 0 {
		return fallback
	}

	return v
}

func orDefaultF(v, fallback float64) float64 {
	if v == 0 {
		return fallback
	}

	return v
}
