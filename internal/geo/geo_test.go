package geo

import (
	"testing"

	"github.com/runicvine/vinequiz/internal/vinequiz"
)

func testItems() []vinequiz.Item {
	return []vinequiz.Item{
		{Variety: "Riesling", Country: "Germany"},
		{Variety: "Malbec", Country: "Argentina"},
		{Variety: "Zinfandel", Country: "USA"},
		{Variety: "Vranac", Country: "Bosnia and Herzegovina"},
		{Variety: "Saperavi", Country: "Georgia"},
	}
}

func TestContinentOf(t *testing.T) {
	r, _ := New(testItems())

	cases := []struct {
		country string
		want    Continent
	}{
		{"Germany", Europe},
		{"Argentina", Americas},
		{"USA", Americas},
		{"Georgia", Asia},
		{"Egypt", Africa},
	}
	for _, tc := range cases {
		if got := r.ContinentOf(tc.country); got != tc.want {
			t.Errorf("ContinentOf(%q) = %q, want %q", tc.country, got, tc.want)
		}
	}
}

func TestContinentOfUnknownDefaultsToEurope(t *testing.T) {
	r, _ := New(testItems())
	if got := r.ContinentOf("Atlantis"); got != Europe {
		t.Errorf("ContinentOf(unknown) = %q, want europe", got)
	}
}

func TestAliasRoundTrip(t *testing.T) {
	r, _ := New(testItems())

	for label := range aliasTable {
		mapID := r.MapIdentifierFor(label)
		if got := r.CountryForMapIdentifier(mapID); got != label {
			t.Errorf("round trip for %q: map id %q resolved back to %q", label, mapID, got)
		}
	}
}

func TestIdentityFallback(t *testing.T) {
	r, _ := New(testItems())

	if got := r.MapIdentifierFor("France"); got != "France" {
		t.Errorf("MapIdentifierFor(France) = %q, want identity", got)
	}
	if got := r.CountryForMapIdentifier("France"); got != "France" {
		t.Errorf("CountryForMapIdentifier(France) = %q, want identity", got)
	}
}

func TestKnownCountry(t *testing.T) {
	r, _ := New(testItems())

	if !r.KnownCountry("Germany") {
		t.Error("Germany should be known")
	}
	if r.KnownCountry("Andorra") {
		t.Error("Andorra should not be known")
	}
}

func TestNoWarningsForShippedData(t *testing.T) {
	// Every country in the quiz data set must have a continent entry and a
	// usable map identifier; a warning here means the tables drifted.
	items, err := vinequiz.LoadItems("../../data/grape_data.json")
	if err != nil {
		t.Fatalf("loading shipped data: %v", err)
	}
	_, warnings := New(items)
	for _, w := range warnings {
		t.Errorf("unexpected warning: %s", w)
	}
}

func TestWarningsForUnmappedCountry(t *testing.T) {
	_, warnings := New([]vinequiz.Item{{Variety: "Mystery", Country: "New Zealand"}})
	if len(warnings) != 2 {
		t.Fatalf("got %d warnings, want 2 (no continent entry, no alias): %v", len(warnings), warnings)
	}
}

func TestAssetCandidates(t *testing.T) {
	got := Europe.AssetCandidates()
	want := []string{"europe-detailed.svg", "europe.svg"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Europe.AssetCandidates() = %v, want %v", got, want)
	}

	got = Americas.AssetCandidates()
	if got[0] != "south-america-detailed.svg" || got[1] != "south-america.svg" {
		t.Errorf("Americas.AssetCandidates() = %v, want south-america variants", got)
	}
}

func TestParseContinent(t *testing.T) {
	if c, ok := ParseContinent(" Europe "); !ok || c != Europe {
		t.Errorf("ParseContinent(Europe) = %q, %v", c, ok)
	}
	if _, ok := ParseContinent("antarctica"); ok {
		t.Error("antarctica should not parse")
	}
}
