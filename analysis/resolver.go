package analysis

import (
	"strings"

	"github.com/kjhallgren/cookscale/ast"
	"github.com/kjhallgren/cookscale/diag"
	"github.com/kjhallgren/cookscale/token"
)

// refDecision is the outcome of resolveReference: whether a prior
// definition was matched, and if so which one.
type refDecision struct {
	Found       bool
	TargetIndex int
	Inherited   ast.Modifiers
}

// resolveReference implements the generic resolver shared by
// ingredients and cookware. n/nameAt/modifiersAt/spanAt
// let the same logic walk either component table without committing
// to a concrete slice type. It returns the (possibly modifier-enriched)
// modifiers to store on the new component and the resolution outcome;
// when Found is false the caller records the component as a Definition.
func resolveReference(
	report *diag.Report,
	mode *modeState,
	name string,
	modifiers ast.Modifiers,
	modifiersSpan token.Span,
	inheritMask ast.Modifiers,
	n int,
	nameAt func(int) string,
	modifiersAt func(int) ast.Modifiers,
	spanAt func(int) token.Span,
	isDefinitionAt func(int) bool,
) (ast.Modifiers, refDecision) {
	lowerName := strings.ToLower(name)

	if modifiers.Contains(ast.ModNew) && modifiers.Contains(ast.ModRef) {
		report.Error(diagNewRefConflict(modifiersSpan))
		return modifiers, refDecision{}
	}

	hasPriorDefinition := false
	for i := 0; i < n; i++ {
		if isDefinitionAt(i) && strings.EqualFold(nameAt(i), name) {
			hasPriorDefinition = true
			break
		}
	}

	if modifiers.Contains(ast.ModNew) {
		redundant := mode.define != DefineSteps &&
			((mode.duplicate == DuplicateReference && !hasPriorDefinition) || mode.duplicate == DuplicateNew)
		if redundant {
			report.Warn(diagRedundantModifier("new (+)", modifiersSpan))
		}
		return modifiers, refDecision{}
	}

	if modifiers.Contains(ast.ModRef) && (mode.duplicate == DuplicateReference || mode.define == DefineSteps) {
		report.Warn(diagRedundantModifier("reference (&)", modifiersSpan))
	}

	implicit := !modifiers.Contains(ast.ModRef)
	treatAsReference := modifiers.Contains(ast.ModRef) ||
		mode.define == DefineSteps ||
		(mode.duplicate == DuplicateReference && hasPriorDefinition)

	if !treatAsReference {
		return modifiers, refDecision{}
	}

	for i := n - 1; i >= 0; i-- {
		if !isDefinitionAt(i) || !strings.EqualFold(nameAt(i), lowerName) {
			continue
		}
		inherited := modifiersAt(i) & inheritMask
		conflict := (modifiers &^ inherited) &^ ast.ModRef
		newMods := modifiers | inherited | ast.ModRef
		if !conflict.IsEmpty() {
			report.Error(diagReferenceConflict(conflict, modifiersSpan, spanAt(i)))
		}
		return newMods, refDecision{Found: true, TargetIndex: i, Inherited: inherited}
	}

	report.Error(diagReferenceNotFound(name, modifiersSpan, implicit))
	return modifiers, refDecision{}
}
