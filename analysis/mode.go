package analysis

import "strings"

// DefineMode controls where new component definitions are allowed to
// appear.
type DefineMode int

const (
	DefineAll DefineMode = iota
	DefineComponents
	DefineSteps
	DefineText
)

// DuplicateMode controls whether a second same-name component becomes
// another definition or silently becomes a reference.
type DuplicateMode int

const (
	DuplicateNew DuplicateMode = iota
	DuplicateReference
)

// modeState holds the three orthogonal knobs toggled by `[mode]`-style
// metadata directives.
type modeState struct {
	define           DefineMode
	duplicate        DuplicateMode
	autoScaleIngredients bool
}

func newModeState() *modeState {
	return &modeState{define: DefineAll, duplicate: DuplicateNew}
}

// modeKey classifies a trimmed metadata key as a mode directive, or
// reports that it isn't one.
func modeKey(key string) (string, bool) {
	switch key {
	case "[mode]", "[define]":
		return "define", true
	case "[duplicate]":
		return "duplicate", true
	case "[auto scale]", "[auto_scale]":
		return "auto scale", true
	default:
		return "", false
	}
}

// applyModeDirective updates ms from a recognized mode key/value pair.
// ok is false when the value isn't one of the accepted tokens for that
// key, in which case the caller emits the "unknown config value" error.
func (ms *modeState) applyModeDirective(kind, value string) bool {
	value = strings.ToLower(strings.TrimSpace(value))
	switch kind {
	case "define":
		switch value {
		case "all", "default":
			ms.define = DefineAll
		case "components", "ingredients":
			ms.define = DefineComponents
		case "steps":
			ms.define = DefineSteps
		case "text":
			ms.define = DefineText
		default:
			return false
		}
	case "duplicate":
		switch value {
		case "new", "default":
			ms.duplicate = DuplicateNew
		case "reference", "ref":
			ms.duplicate = DuplicateReference
		default:
			return false
		}
	case "auto scale":
		switch value {
		case "true":
			ms.autoScaleIngredients = true
		case "false", "default":
			ms.autoScaleIngredients = false
		default:
			return false
		}
	}
	return true
}

// acceptedValues lists the accepted token set for a mode kind, used to
// populate the "unknown config value" diagnostic's hint.
func acceptedValues(kind string) []string {
	switch kind {
	case "define":
		return []string{"all", "default", "components", "ingredients", "steps", "text"}
	case "duplicate":
		return []string{"new", "default", "reference", "ref"}
	case "auto scale":
		return []string{"true", "false", "default"}
	default:
		return nil
	}
}
