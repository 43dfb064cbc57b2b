// Package gazetteer holds the static fallback table of Indian destinations
// used when live geocoding returns nothing.
package gazetteer

import (
	"strings"

	"github.com/FACorreiaa/smart-tour/internal/types"
)

// Gazetteer is an exact-match, read-only name to coordinate table.
type Gazetteer struct {
	entries map[string]types.Coordinates
}

// New builds a Gazetteer from entries, normalizing every key.
func New(entries map[string]types.Coordinates) *Gazetteer {
	g := &Gazetteer{entries: make(map[string]types.Coordinates, len(entries))}
	for name, c := range entries {
		g.entries[Normalize(name)] = c
	}
	return g
}

// Default returns the gazetteer built from the bundled Indian destinations.
func Default() *Gazetteer {
	return defaultGazetteer
}

var defaultGazetteer = New(indianDestinations)

// Normalize lowercases and trims a place name.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup returns the coordinates for name. Matching is exact after Normalize.
func (g *Gazetteer) Lookup(name string) (types.Coordinates, bool) {
	c, ok := g.entries[Normalize(name)]
	return c, ok
}

// Len reports the number of entries.
func (g *Gazetteer) Len() int {
	return len(g.entries)
}
