// Package geo maps quiz-data country labels onto continent buckets and onto
// the element identifiers used by the SVG map assets. The two data sources
// disagree on naming (spaces vs underscores, local vs English spellings), so
// a single bidirectional alias table is built and validated once at startup.
package geo

import (
	"fmt"
	"strings"

	"github.com/runicvine/vinequiz/internal/vinequiz"
)

// Continent is the coarse bucket for the first answer stage. Each continent
// has exactly one map asset.
type Continent string

const (
	Europe   Continent = "europe"
	Asia     Continent = "asia"
	Africa   Continent = "africa"
	Americas Continent = "americas"
	Oceania  Continent = "oceania"
)

// Continents lists every selectable bucket, in display order.
func Continents() []Continent {
	return []Continent{Europe, Asia, Africa, Americas, Oceania}
}

// ParseContinent validates a player-supplied continent choice.
func ParseContinent(s string) (Continent, bool) {
	switch Continent(strings.ToLower(strings.TrimSpace(s))) {
	case Europe:
		return Europe, true
	case Asia:
		return Asia, true
	case Africa:
		return Africa, true
	case Americas:
		return Americas, true
	case Oceania:
		return Oceania, true
	}
	return "", false
}

// AssetCandidates returns the map asset file names for the continent, most
// detailed variant first. The americas bucket reuses the south-america map.
func (c Continent) AssetCandidates() []string {
	base := string(c)
	if c == Americas {
		base = "south-america"
	}
	return []string{base + "-detailed.svg", base + ".svg"}
}

// continentTable assigns each quiz-data country to its bucket. Countries
// absent from this table fall back to europe; see Resolver warnings.
var continentTable = map[string]Continent{
	"Austria":                Europe,
	"Bosnia and Herzegovina": Europe,
	"Bulgaria":               Europe,
	"Croatia":                Europe,
	"France":                 Europe,
	"Germany":                Europe,
	"Greece":                 Europe,
	"Hungary":                Europe,
	"Italy":                  Europe,
	"Montenegro":             Europe,
	"North Macedonia":        Europe,
	"Portugal":               Europe,
	"Romania":                Europe,
	"Serbia":                 Europe,
	"Spain":                  Europe,
	"Switzerland":            Europe,

	"Argentina": Americas,
	"USA":       Americas,

	"Armenia":    Asia,
	"China":      Asia,
	"Georgia":    Asia,
	"Indonesia":  Asia,
	"Japan":      Asia,
	"Turkey":     Asia,
	"Uzbekistan": Asia,

	"Egypt": Africa,
}

// aliasTable pairs quiz-data labels with map element identifiers where the
// two differ. Countries not listed here use the label itself as the map
// identifier.
var aliasTable = map[string]string{
	"Bosnia and Herzegovina": "Bosnia_and_Herzegovina",
	"North Macedonia":        "North_Macedonia",
	"USA":                    "United_States",
	"Turkey":                 "Turkiye",
}

// Resolver answers continent and map-identifier lookups for a fixed set of
// quiz items. It is pure data: no mutation after construction, safe for
// concurrent use.
type Resolver struct {
	toMap   map[string]string
	fromMap map[string]string
	known   map[string]struct{}
}

// New builds a resolver over the quiz item set and validates the geography
// tables against it. Warnings flag countries that hit the europe fallback or
// have no usable map identifier; they never block startup.
func New(items []vinequiz.Item) (*Resolver, []string) {
	r := &Resolver{
		toMap:   make(map[string]string, len(aliasTable)),
		fromMap: make(map[string]string, len(aliasTable)),
		known:   make(map[string]struct{}),
	}
	for label, mapID := range aliasTable {
		r.toMap[label] = mapID
		r.fromMap[mapID] = label
	}

	var warnings []string
	seen := make(map[string]struct{})
	for _, item := range items {
		if _, dup := seen[item.Country]; dup {
			continue
		}
		seen[item.Country] = struct{}{}
		r.known[item.Country] = struct{}{}

		if _, ok := continentTable[item.Country]; !ok {
			warnings = append(warnings, fmt.Sprintf("country %q not in continent table, defaulting to europe", item.Country))
		}
		if _, ok := aliasTable[item.Country]; !ok && strings.ContainsAny(item.Country, " \t") {
			warnings = append(warnings, fmt.Sprintf("country %q has no map alias and no identity match", item.Country))
		}
	}
	return r, warnings
}

// ContinentOf resolves a country label to its bucket. Unknown labels resolve
// to europe rather than failing: unknown geography never blocks gameplay.
func (r *Resolver) ContinentOf(country string) Continent {
	if c, ok := continentTable[country]; ok {
		return c
	}
	return Europe
}

// MapIdentifierFor returns the map element identifier for a country label,
// falling back to the label itself when no alias exists.
func (r *Resolver) MapIdentifierFor(country string) string {
	if id, ok := r.toMap[country]; ok {
		return id
	}
	return country
}

// CountryForMapIdentifier is the inverse lookup, with the same identity
// fallback.
func (r *Resolver) CountryForMapIdentifier(mapID string) string {
	if label, ok := r.fromMap[mapID]; ok {
		return label
	}
	return mapID
}

// KnownCountry reports whether the label belongs to any quiz item. Clicks on
// map regions outside this set are ignored by the round.
func (r *Resolver) KnownCountry(label string) bool {
	_, ok := r.known[label]
	return ok
}
