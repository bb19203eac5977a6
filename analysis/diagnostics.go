package analysis

import (
	"fmt"
	"strings"

	"github.com/kjhallgren/cookscale/ast"
	"github.com/kjhallgren/cookscale/convert"
	"github.com/kjhallgren/cookscale/diag"
	"github.com/kjhallgren/cookscale/token"
)

func diagUnknownModeKey(key string, sp token.Span) *diag.Diagnostic {
	return diag.Warn("unrecognized mode directive: "+key, diag.Label{Span: sp, Caption: "unknown key"})
}

func diagUnknownModeValue(kind, value string, sp token.Span) *diag.Diagnostic {
	return diag.Err("unrecognized value for ["+kind+"]: "+value, diag.Label{Span: sp}).
		Hint("accepted values: " + strings.Join(acceptedValues(kind), ", "))
}

func diagNewRefConflict(sp token.Span) *diag.Diagnostic {
	return diag.Err("a component cannot be marked both new (+) and reference (&)", diag.Label{Span: sp})
}

func diagRedundantModifier(name string, sp token.Span) *diag.Diagnostic {
	return diag.Warn("redundant "+name+" modifier", diag.Label{Span: sp})
}

func diagReferenceNotFound(name string, sp token.Span, implicit bool) *diag.Diagnostic {
	d := diag.Err("reference not found: "+name, diag.Label{Span: sp, Caption: "no earlier definition"})
	if implicit {
		d.Hint("this was treated as an implicit reference")
	}
	return d
}

func diagReferenceConflict(conflict ast.Modifiers, newSpan, defSpan token.Span) *diag.Diagnostic {
	return diag.Err("reference conflicts with its definition's modifiers: "+conflict.String(), diag.Label{Span: newSpan, Caption: "reference"}).
		Label(diag.Label{Span: defSpan, Caption: "definition"}).
		Hint("add the conflicting modifiers to the definition, or mark this component new (+), or drop the reference (&) marker")
}

func diagNoteInReference(sp token.Span) *diag.Diagnostic {
	return diag.Err("a note is not allowed on a reference", diag.Label{Span: sp})
}

func diagConflictingReferenceQuantities(refSpan, defSpan token.Span) *diag.Diagnostic {
	return diag.Err("conflicting reference quantities", diag.Label{Span: refSpan, Caption: "reference amount"}).
		Label(diag.Label{Span: defSpan, Caption: "definition amount"}).
		Hint("the definition is not inside a step, so its total amount would be ambiguous")
}

func diagTextNumberMismatch(refSpan, defSpan token.Span) *diag.Diagnostic {
	return diag.Warn("text value may prevent calculating the total amount", diag.Label{Span: refSpan}).
		Label(diag.Label{Span: defSpan})
}

func diagIncompatibleUnits(newSpan, existingSpan token.Span, incompat *convert.Incompatible, newUnit, existingUnit string) *diag.Diagnostic {
	var newCaption, existingCaption string
	switch incompat.Kind {
	case convert.MissingUnitOnNew:
		newCaption, existingCaption = "no unit", existingUnit
	case convert.MissingUnitOnExisting:
		newCaption, existingCaption = newUnit, "no unit"
	case convert.DifferentPhysicalQuantities:
		newCaption = fmt.Sprintf("%s (%s)", newUnit, incompat.B)
		existingCaption = fmt.Sprintf("%s (%s)", existingUnit, incompat.A)
	default: // UnknownDifferentUnits
		newCaption, existingCaption = newUnit, existingUnit
	}
	return diag.Warn("incompatible units prevent calculating total amount", diag.Label{Span: newSpan, Caption: newCaption}).
		Label(diag.Label{Span: existingSpan, Caption: existingCaption})
}

func diagAutoScaleOnText(sp token.Span) *diag.Diagnostic {
	return diag.Err("text value with auto scale marker", diag.Label{Span: sp}).
		Hint("text cannot be scaled")
}

func diagServingsMismatch(valuesSpan, metaSpan token.Span, got, want int) *diag.Diagnostic {
	return diag.Err(fmt.Sprintf("expected %d values to match servings, found %d", want, got), diag.Label{Span: valuesSpan}).
		Label(diag.Label{Span: metaSpan, Caption: "servings declared here"})
}

func diagRedundantAutoScale(sp token.Span) *diag.Diagnostic {
	return diag.Warn("redundant auto-scale marker", diag.Label{Span: sp}).
		Hint("this value already scales with servings")
}

func diagTimerTextValue(sp token.Span) *diag.Diagnostic {
	return diag.Err("timer value must be numeric", diag.Label{Span: sp})
}

func diagTimerUnknownUnit(unit string, sp token.Span) *diag.Diagnostic {
	return diag.Err("unknown timer unit: "+unit, diag.Label{Span: sp})
}

func diagTimerNonTimeUnit(unit string, sp token.Span) *diag.Diagnostic {
	return diag.Err("timer unit is not a unit of time: "+unit, diag.Label{Span: sp})
}

func diagRecipeNotFound(name string, sp token.Span, hints []string) *diag.Diagnostic {
	d := diag.Warn("referenced recipe not found: "+name, diag.Label{Span: sp})
	for _, h := range hints {
		d.Hint(h)
	}
	return d
}

func diagIntermediateZero(sp token.Span, relative bool) *diag.Diagnostic {
	msg := "intermediate reference numbers start at 1"
	if relative {
		msg = "intermediate reference offset must be greater than 0"
	}
	return diag.Err("invalid intermediate preparation reference: "+msg, diag.Label{Span: sp})
}

func diagIntermediateOutOfBounds(sp token.Span, hint string) *diag.Diagnostic {
	return diag.Err("invalid intermediate preparation reference: value out of bounds", diag.Label{Span: sp}).
		Hint(hint)
}

func diagIntermediateBadModifiers(sp token.Span, names []string) *diag.Diagnostic {
	return diag.Err("intermediate preparation references cannot also be marked "+strings.Join(names, ", "), diag.Label{Span: sp})
}

func diagTextComponentsSuppressed(sp token.Span) *diag.Diagnostic {
	return diag.Warn("text is ignored in components-only mode", diag.Label{Span: sp})
}

func diagComponentInTextBlock(sp token.Span) *diag.Diagnostic {
	return diag.Warn("components are ignored in a text block", diag.Label{Span: sp})
}
