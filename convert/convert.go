// Package convert implements the unit-facing collaborator consumed by
// package analysis: unit lookup, unit-compatibility classification, and
// the temperature-recognition regex used by the temperature extractor.
// Unit lookup and compatibility are backed by github.com/bcicen/go-units;
// this package repurposes it for classification rather than numeric
// conversion, since the analyzer itself never converts quantities.
package convert

import (
	"fmt"
	"regexp"
	"strings"

	units "github.com/bcicen/go-units"
)

// PhysicalQuantity is the dimension a unit measures.
type PhysicalQuantity string

const (
	Mass        PhysicalQuantity = "mass"
	Volume      PhysicalQuantity = "volume"
	Length      PhysicalQuantity = "length"
	Temperature PhysicalQuantity = "temperature"
	Time        PhysicalQuantity = "time"
	Other       PhysicalQuantity = "other"
)

// UnitInfo is the result of looking up a unit name.
type UnitInfo struct {
	Known           bool
	PhysicalQuantity PhysicalQuantity
}

// IncompatibleKind classifies why two quantities could not be added.
type IncompatibleKind int

const (
	MissingUnitOnNew IncompatibleKind = iota
	MissingUnitOnExisting
	DifferentPhysicalQuantities
	UnknownDifferentUnits
)

// Incompatible describes an incompatibility found by Compatible.
type Incompatible struct {
	Kind IncompatibleKind
	A, B PhysicalQuantity // only meaningful for DifferentPhysicalQuantities
}

func (i *Incompatible) Error() string {
	switch i.Kind {
	case MissingUnitOnNew:
		return "missing unit on the new quantity"
	case MissingUnitOnExisting:
		return "missing unit on the existing quantity"
	case DifferentPhysicalQuantities:
		return fmt.Sprintf("different physical quantities: %s vs %s", i.A, i.B)
	default:
		return "unknown units with no common physical quantity"
	}
}

// Converter is the unit-facing external collaborator consumed by the
// analyzer: unit lookup, compatibility classification and a
// temperature-recognition regex.
type Converter interface {
	TemperatureRegex() (*regexp.Regexp, error)
	UnitInfo(name string) UnitInfo
	// Compatible reports why the unit of a new quantity cannot be
	// added to the unit of an already-recorded one ("" means no unit).
	// A nil return means they are compatible.
	Compatible(newUnit, existingUnit string) *Incompatible
}

// GoUnits is a Converter backed by github.com/bcicen/go-units.
type GoUnits struct{}

func New() *GoUnits { return &GoUnits{} }

func (*GoUnits) UnitInfo(name string) UnitInfo {
	if name == "" {
		return UnitInfo{Known: false}
	}
	if isTimeUnit(name) {
		return UnitInfo{Known: true, PhysicalQuantity: Time}
	}
	u, err := units.Find(name)
	if err != nil {
		return UnitInfo{Known: false}
	}
	return UnitInfo{Known: true, PhysicalQuantity: kindOf(u)}
}

func kindOf(u units.Unit) PhysicalQuantity {
	switch u.Kind() {
	case units.Mass:
		return Mass
	case units.Volume:
		return Volume
	case units.Length:
		return Length
	case units.Temperature:
		return Temperature
	default:
		return Other
	}
}

// timeUnits covers the duration units a cooking timer actually uses.
// go-units has no Time kind of its own (it classifies mass, volume,
// length and temperature only), so these are recognized directly
// rather than through units.Find/kindOf.
var timeUnits = map[string]bool{
	"s": true, "sec": true, "secs": true, "second": true, "seconds": true,
	"min": true, "mins": true, "minute": true, "minutes": true,
	"h": true, "hr": true, "hrs": true, "hour": true, "hours": true,
	"day": true, "days": true,
	"week": true, "weeks": true,
}

func isTimeUnit(name string) bool {
	return timeUnits[strings.ToLower(strings.TrimSpace(name))]
}

func (g *GoUnits) Compatible(newUnit, existingUnit string) *Incompatible {
	if newUnit == "" && existingUnit == "" {
		return nil
	}
	if newUnit == "" {
		return &Incompatible{Kind: MissingUnitOnNew}
	}
	if existingUnit == "" {
		return &Incompatible{Kind: MissingUnitOnExisting}
	}
	newInfo := g.UnitInfo(newUnit)
	existingInfo := g.UnitInfo(existingUnit)
	if !newInfo.Known || !existingInfo.Known {
		return &Incompatible{Kind: UnknownDifferentUnits}
	}
	if newInfo.PhysicalQuantity != existingInfo.PhysicalQuantity {
		return &Incompatible{Kind: DifferentPhysicalQuantities, A: existingInfo.PhysicalQuantity, B: newInfo.PhysicalQuantity}
	}
	return nil
}
