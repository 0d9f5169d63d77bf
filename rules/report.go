package rules

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlath-fca/fcacontext"
)

// FormatViolation renders v as a human-readable text record:
//
//	violation (confidence C.CC support SSS gap GGG flaws FFF)
//	  flaws (FFF)       : <object names space-separated>
//	  rule (support S1): <attribute names>
//	  rule (support S2): <attribute names>
//
// Element names come from ctx's string-conversion hooks.
func FormatViolation[X comparable, Y comparable](ctx *fcacontext.Context[X, Y], v Violation[X, Y]) (string, error) {
	exceptions, err := v.Exceptions()
	if err != nil {
		return "", err
	}
	gap, err := v.Gap()
	if err != nil {
		return "", err
	}
	confidence := v.Confidence()
	ruleSupport := v.Rule.Support.Count()
	flawSupport := v.Flaw.Support.Count()

	var sb strings.Builder
	fmt.Fprintf(&sb, "violation (confidence %.2f support %d gap %d flaws %d)\n",
		confidence, ruleSupport, gap, exceptions.Count())
	fmt.Fprintf(&sb, "  flaws (%d)       : %s\n", exceptions.Count(), joinX(ctx, exceptions.Members()))
	fmt.Fprintf(&sb, "  rule (support %d): %s\n", ruleSupport, joinY(ctx, v.Rule.RHS.Members()))
	fmt.Fprintf(&sb, "  rule (support %d): %s\n", flawSupport, joinY(ctx, v.Flaw.RHS.Members()))

	return sb.String(), nil
}

func joinX[X comparable, Y comparable](ctx *fcacontext.Context[X, Y], xs []X) string {
	names := make([]string, len(xs))
	for i, x := range xs {
		names[i] = ctx.StringX(x)
	}

	return strings.Join(names, " ")
}

func joinY[X comparable, Y comparable](ctx *fcacontext.Context[X, Y], ys []Y) string {
	names := make([]string, len(ys))
	for i, y := range ys {
		names[i] = ctx.StringY(y)
	}

	return strings.Join(names, " ")
}
