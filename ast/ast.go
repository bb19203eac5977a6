// Package ast holds the parse-tree payloads carried by parser events:
// raw (not yet lowered) ingredient/cookware/timer declarations, spanned
// text, and the modifier/quantity syntax shared by all three component
// kinds.
package ast

import (
	"strings"

	"github.com/kjhallgren/cookscale/token"
)

// Located pairs a value with the span it was parsed from.
type Located[T any] struct {
	Value T
	Span  token.Span
}

func At[T any](v T, sp token.Span) Located[T] { return Located[T]{Value: v, Span: sp} }

// Text is a raw source run plus its span, trimmed lazily on read.
type Text struct {
	Raw string
	Sp  token.Span
}

func (t Text) Span() token.Span { return t.Sp }
func (t Text) TextTrimmed() string {
	return strings.TrimSpace(t.Raw)
}

// TextOuterTrimmed trims only leading/trailing whitespace, preserving
// internal formatting -- used for metadata values.
func (t Text) TextOuterTrimmed() string { return strings.TrimSpace(t.Raw) }

// Modifiers is a bitset of the sigils that can prefix a component.
type Modifiers uint8

const ModNone Modifiers = 0

const (
	ModRef Modifiers = 1 << iota
	ModNew
	ModRecipe
	ModHidden
	ModOpt
)

func (m Modifiers) Contains(o Modifiers) bool  { return m&o == o }
func (m Modifiers) Intersects(o Modifiers) bool { return m&o != 0 }
func (m Modifiers) IsEmpty() bool              { return m == 0 }

var modifierNames = []struct {
	bit  Modifiers
	name string
}{
	{ModRef, "ref"},
	{ModNew, "new"},
	{ModRecipe, "recipe"},
	{ModHidden, "hidden"},
	{ModOpt, "opt"},
}

// Names returns the lowercase names of the bits set in m, in declaration
// order, for use in diagnostic hints.
func (m Modifiers) Names() []string {
	var out []string
	for _, e := range modifierNames {
		if m.Contains(e.bit) {
			out = append(out, e.name)
		}
	}
	return out
}

func (m Modifiers) String() string {
	names := m.Names()
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

// IntermediateRefMode distinguishes an absolute index from a
// relative-to-here count.
type IntermediateRefMode int

const (
	RefNumber IntermediateRefMode = iota
	RefRelative
)

// IntermediateTargetKind is what an intermediate reference points at.
type IntermediateTargetKind int

const (
	TargetStep IntermediateTargetKind = iota
	TargetSection
)

// IntermediateData is the parsed payload of a "(=N)" / "(=~N section)"
// style reference attached to an ingredient.
type IntermediateData struct {
	Val        int
	RefMode    IntermediateRefMode
	TargetKind IntermediateTargetKind
}

// Value is a single scalar: a plain number, a low-high range, or free
// text that could not be parsed as either.
type Value struct {
	Kind  ValueKind
	Num   float64
	Start float64 // range start, when Kind == ValueRange
	End   float64 // range end, when Kind == ValueRange
	Text  string
}

type ValueKind int

const (
	ValueNumber ValueKind = iota
	ValueRange
	ValueText
)

func (v Value) IsText() bool { return v.Kind == ValueText }

func NumberValue(n float64) Value       { return Value{Kind: ValueNumber, Num: n} }
func RangeValue(start, end float64) Value { return Value{Kind: ValueRange, Start: start, End: end} }
func TextValue(s string) Value          { return Value{Kind: ValueText, Text: s} }

// QuantityValue is the value carried inside a component's braces: either
// a single scalar (possibly auto-scale-marked) or one value per serving.
type QuantityValue struct {
	Many       []Value // non-nil => "many" form: v1|v2|v3
	Single     Value
	IsMany     bool
	AutoScale  bool
	MarkerSpan token.Span
}

// Quantity is a located value plus its optional unit string.
type Quantity struct {
	Value QuantityValue
	Unit  *Text
}

// Ingredient is the raw, not-yet-resolved ingredient declaration parsed
// from an `@name{qty%unit}(note)` construct (or its bare `@name` form).
type Ingredient struct {
	Name             Text
	Alias            *Text
	Note             *Text
	Quantity         *Located[Quantity]
	Modifiers        Located[Modifiers]
	IntermediateData *Located[IntermediateData]
}

// Cookware mirrors Ingredient without notes-as-references semantics but
// shares the same modifier/quantity shape.
type Cookware struct {
	Name      Text
	Alias     *Text
	Note      *Text
	Quantity  *Located[Quantity]
	Modifiers Located[Modifiers]
}

// Timer is a `~name{qty%unit}` declaration; timers never participate in
// reference resolution.
type Timer struct {
	Name     *Text
	Quantity *Located[Quantity]
}
