package analysis

import (
	"github.com/kjhallgren/cookscale/ast"
	"github.com/kjhallgren/cookscale/diag"
	"github.com/kjhallgren/cookscale/token"
)

// lowerQuantity converts a raw AST quantity into its scalable form.
// loc is nil when the component carried no braces at all.
// autoScaleIngredients only applies to ingredient quantities --
// callers pass false for cookware and timers.
func lowerQuantity(report *diag.Report, loc *ast.Located[ast.Quantity], autoScaleIngredients bool, servings []int, servingsSpan token.Span) *Quantity {
	if loc == nil {
		return nil
	}
	sv := lowerQuantityValue(report, loc.Value.Value, loc.Span, autoScaleIngredients, servings, servingsSpan)
	unit := ""
	if loc.Value.Unit != nil {
		unit = loc.Value.Unit.TextTrimmed()
	}
	return &Quantity{Value: sv, Unit: unit}
}

func lowerQuantityValue(report *diag.Report, qv ast.QuantityValue, sp token.Span, autoScaleIngredients bool, servings []int, servingsSpan token.Span) ScalableValue {
	if qv.IsMany {
		if len(servings) == 0 || len(qv.Many) != len(servings) {
			report.Error(diagServingsMismatch(sp, servingsSpan, len(qv.Many), len(servings)))
		}
		return ScalableValue{Kind: ValueByServings, ByServings: qv.Many}
	}

	single := qv.Single
	kind := ValueFixed
	if qv.AutoScale {
		kind = ValueLinear
	}
	if kind == ValueLinear && single.IsText() {
		report.Error(diagAutoScaleOnText(qv.MarkerSpan))
		kind = ValueFixed
	}
	if autoScaleIngredients {
		if kind == ValueLinear {
			report.Warn(diagRedundantAutoScale(sp))
		} else if !single.IsText() {
			kind = ValueLinear
		}
	}
	return ScalableValue{Kind: kind, Fixed: single}
}
