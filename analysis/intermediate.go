package analysis

import (
	"fmt"

	"github.com/kjhallgren/cookscale/ast"
	"github.com/kjhallgren/cookscale/diag"
	"github.com/kjhallgren/cookscale/token"
)

// resolveIntermediateRef implements the `=N` / `=~K` / `=N section` /
// `=~K section` resolver. currentStepCount is how many
// steps have already been completed in the section currently being
// assembled; completedSections is how many sections have already been
// pushed to the recipe (the in-progress one doesn't count). The
// returned index is a 1-based step number or section number, not a
// table index -- ComponentRelation.ReferencesTo for a Step/Section
// target carries that number directly.
func resolveIntermediateRef(report *diag.Report, data ast.IntermediateData, sp token.Span, currentStepCount, completedSections int) (ReferenceTarget, int, bool) {
	switch data.TargetKind {
	case ast.TargetStep:
		return resolveIntermediateCount(report, data, sp, currentStepCount, TargetStep, stepsBoundsHint)
	default:
		return resolveIntermediateCount(report, data, sp, completedSections, TargetSection, sectionsBoundsHint)
	}
}

func resolveIntermediateCount(report *diag.Report, data ast.IntermediateData, sp token.Span, available int, target ReferenceTarget, hint func(int) string) (ReferenceTarget, int, bool) {
	val := data.Val

	if data.RefMode == ast.RefRelative {
		if val <= 0 {
			report.Error(diagIntermediateZero(sp, true))
			return target, 0, false
		}
		n := available - val + 1
		if n < 1 {
			report.Error(diagIntermediateOutOfBounds(sp, hint(available)))
			return target, 0, false
		}
		return target, n, true
	}

	if val == 0 {
		report.Error(diagIntermediateZero(sp, false))
		return target, 0, false
	}
	if val < 1 || val > available {
		report.Error(diagIntermediateOutOfBounds(sp, hint(available)))
		return target, 0, false
	}
	return target, val, true
}

func stepsBoundsHint(n int) string {
	if n == 0 {
		return "no steps before this one"
	}
	return fmt.Sprintf("1 to %d", n)
}

func sectionsBoundsHint(n int) string {
	if n == 0 {
		return "no sections before this one"
	}
	return fmt.Sprintf("1 to %d", n)
}
