package convert_test

import (
	"testing"

	"github.com/kjhallgren/cookscale/convert"
)

func TestCompatibleSameUnit(t *testing.T) {
	c := convert.New()
	if got := c.Compatible("g", "g"); got != nil {
		t.Errorf("g vs g should be compatible, got %v", got)
	}
}

func TestCompatibleSamePhysicalQuantity(t *testing.T) {
	c := convert.New()
	if got := c.Compatible("g", "kg"); got != nil {
		t.Errorf("g vs kg should be compatible (both mass), got %v", got)
	}
}

func TestCompatibleBothUnitless(t *testing.T) {
	c := convert.New()
	if got := c.Compatible("", ""); got != nil {
		t.Errorf("no units on either side should be compatible, got %v", got)
	}
}

func TestCompatibleMissingUnitOnNew(t *testing.T) {
	c := convert.New()
	got := c.Compatible("", "g")
	if got == nil || got.Kind != convert.MissingUnitOnNew {
		t.Fatalf("expected MissingUnitOnNew, got %v", got)
	}
}

func TestCompatibleMissingUnitOnExisting(t *testing.T) {
	c := convert.New()
	got := c.Compatible("g", "")
	if got == nil || got.Kind != convert.MissingUnitOnExisting {
		t.Fatalf("expected MissingUnitOnExisting, got %v", got)
	}
}

func TestCompatibleDifferentPhysicalQuantities(t *testing.T) {
	c := convert.New()
	got := c.Compatible("kg", "ml")
	if got == nil || got.Kind != convert.DifferentPhysicalQuantities {
		t.Fatalf("expected DifferentPhysicalQuantities, got %v", got)
	}
}

func TestCompatibleUnknownUnits(t *testing.T) {
	c := convert.New()
	got := c.Compatible("glugs", "smidgens")
	if got == nil || got.Kind != convert.UnknownDifferentUnits {
		t.Fatalf("expected UnknownDifferentUnits, got %v", got)
	}
}

func TestUnitInfoKnownMass(t *testing.T) {
	c := convert.New()
	info := c.UnitInfo("kg")
	if !info.Known || info.PhysicalQuantity != convert.Mass {
		t.Errorf("UnitInfo(kg) = %+v", info)
	}
}

func TestUnitInfoKnownTime(t *testing.T) {
	c := convert.New()
	info := c.UnitInfo("minutes")
	if !info.Known || info.PhysicalQuantity != convert.Time {
		t.Errorf("UnitInfo(minutes) = %+v", info)
	}
}

func TestUnitInfoTimeUnitCaseAndAbbreviation(t *testing.T) {
	c := convert.New()
	for _, name := range []string{"Minutes", "min", "HOURS", "s"} {
		info := c.UnitInfo(name)
		if !info.Known || info.PhysicalQuantity != convert.Time {
			t.Errorf("UnitInfo(%q) = %+v, want a known time unit", name, info)
		}
	}
}

func TestCompatibleTimeUnits(t *testing.T) {
	c := convert.New()
	if got := c.Compatible("minutes", "hours"); got != nil {
		t.Errorf("minutes vs hours should be compatible (both time), got %v", got)
	}
}

func TestUnitInfoUnknown(t *testing.T) {
	c := convert.New()
	info := c.UnitInfo("zorkwhumps")
	if info.Known {
		t.Errorf("expected an unknown unit, got %+v", info)
	}
}

func TestUnitInfoEmptyString(t *testing.T) {
	c := convert.New()
	if info := c.UnitInfo(""); info.Known {
		t.Errorf("empty unit name should be unknown, got %+v", info)
	}
}

func TestTemperatureRegexRecognizesDegreesWithLetter(t *testing.T) {
	c := convert.New()
	re, err := c.TemperatureRegex()
	if err != nil {
		t.Fatalf("TemperatureRegex error: %v", err)
	}
	m := re.FindStringSubmatch("180°C")
	if m == nil {
		t.Fatal("expected a match for 180°C")
	}
	if m[1] != "180" || m[3] != "C" {
		t.Errorf("match groups = %v", m)
	}
}

func TestTemperatureRegexRecognizesWord(t *testing.T) {
	c := convert.New()
	re, _ := c.TemperatureRegex()
	m := re.FindStringSubmatch("350 fahrenheit")
	if m == nil || m[1] != "350" {
		t.Fatalf("expected a match for '350 fahrenheit', got %v", m)
	}
}

func TestIncompatibleErrorMessages(t *testing.T) {
	cases := []*convert.Incompatible{
		{Kind: convert.MissingUnitOnNew},
		{Kind: convert.MissingUnitOnExisting},
		{Kind: convert.DifferentPhysicalQuantities, A: convert.Mass, B: convert.Volume},
		{Kind: convert.UnknownDifferentUnits},
	}
	for _, c := range cases {
		if c.Error() == "" {
			t.Errorf("%+v produced an empty error message", c)
		}
	}
}
