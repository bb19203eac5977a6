// Package event defines the parser-event stream consumed by package
// analysis. Go has no sum types, so Event is a struct with a Kind tag
// and only the payload fields relevant to that kind populated.
package event

import (
	"github.com/kjhallgren/cookscale/ast"
	"github.com/kjhallgren/cookscale/diag"
	"github.com/kjhallgren/cookscale/token"
)

type BlockKind int

const (
	BlockStep BlockKind = iota
	BlockText
)

type Kind int

const (
	KindMetadata Kind = iota
	KindSection
	KindStart
	KindEnd
	KindText
	KindIngredient
	KindCookware
	KindTimer
	KindError
	KindWarning
)

// Event is one item of the stream the analyzer consumes.
type Event struct {
	Kind Kind

	// Metadata
	Key   ast.Text
	Value ast.Text

	// Section
	SectionName *ast.Text

	// Start / End
	Block BlockKind

	// Text
	Text ast.Text

	// Ingredient / Cookware / Timer
	Ingredient *ast.Located[ast.Ingredient]
	Cookware   *ast.Located[ast.Cookware]
	Timer      *ast.Located[ast.Timer]

	// Error / Warning
	Diagnostic *diag.Diagnostic
}

func Metadata(key, value ast.Text) Event {
	return Event{Kind: KindMetadata, Key: key, Value: value}
}

func Section(name *ast.Text) Event { return Event{Kind: KindSection, SectionName: name} }

func Start(kind BlockKind) Event { return Event{Kind: KindStart, Block: kind} }

func End(kind BlockKind) Event { return Event{Kind: KindEnd, Block: kind} }

func Text(t ast.Text) Event { return Event{Kind: KindText, Text: t} }

func IngredientEvent(i ast.Located[ast.Ingredient]) Event {
	return Event{Kind: KindIngredient, Ingredient: &i}
}

func CookwareEvent(c ast.Located[ast.Cookware]) Event {
	return Event{Kind: KindCookware, Cookware: &c}
}

func TimerEvent(t ast.Located[ast.Timer]) Event {
	return Event{Kind: KindTimer, Timer: &t}
}

func Error(d *diag.Diagnostic) Event { return Event{Kind: KindError, Diagnostic: d} }

func Warning(d *diag.Diagnostic) Event { return Event{Kind: KindWarning, Diagnostic: d} }

// IngredientSpan returns the overall span of an ingredient event,
// covering name and modifiers.
func (e Event) IngredientSpan() token.Span {
	return e.Ingredient.Span
}
