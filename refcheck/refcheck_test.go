package refcheck_test

import (
	"testing"

	"github.com/kjhallgren/cookscale/refcheck"
)

func TestFromSetFindsExactMatch(t *testing.T) {
	check := refcheck.FromSet([]string{"Lasagna", "Pesto"})
	if got := check("Lasagna"); !got.Found {
		t.Errorf("expected Lasagna to be found, got %+v", got)
	}
}

func TestFromSetIsCaseInsensitive(t *testing.T) {
	check := refcheck.FromSet([]string{"Lasagna"})
	if got := check("lasagna"); !got.Found {
		t.Errorf("expected case-insensitive match, got %+v", got)
	}
}

func TestFromSetNotFoundCarriesHints(t *testing.T) {
	check := refcheck.FromSet([]string{"Lasagna"})
	got := check("Carbonara")
	if got.Found {
		t.Fatal("expected Carbonara to not be found")
	}
	if len(got.Hints) == 0 {
		t.Error("expected hints on a not-found result")
	}
}

func TestFromSetEmpty(t *testing.T) {
	check := refcheck.FromSet(nil)
	if got := check("anything"); got.Found {
		t.Errorf("empty set should never find a match, got %+v", got)
	}
}
