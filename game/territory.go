package game

import "fmt"

// Territory represents one map territory: its name, the faction whose army
// holds it, and the number of occupying troops.
type Territory struct {
	Name    string
	Faction string
	Troops  int
}

// Registry is the ordered collection of territories. Index order is
// significant: it matches the display position on the map table.
type Registry []*Territory

// Seed is one row of initial map data used to build a Registry.
type Seed struct {
	Name    string
	Faction string
	Troops  int
}

// GLOBAL DATA. Default map used when no custom map file is supplied.

var defaultSeeds = []Seed{
	{Name: "Amazonas", Faction: "Green", Troops: 5},
	{Name: "Cerrado", Faction: "Blue", Troops: 4},
	{Name: "Pantanal", Faction: "Red", Troops: 6},
	{Name: "Caatinga", Faction: "Yellow", Troops: 3},
	{Name: "Mata Atlantica", Faction: "Purple", Troops: 5},
}

// factionNames lists every army in play. Order matters: it lines up with the
// ANSI color table in colors.go.
var factionNames = []string{"Green", "Blue", "Red", "Yellow", "Purple"}

// NewRegistry builds a registry of count territories from the default map
// data. It fails when count asks for more territories than the default map
// has rows.
func NewRegistry(count int) (Registry, error) {
	if count <= 0 || count > len(defaultSeeds) {
		return nil, fmt.Errorf("registry size %d out of range: default map has %d territories", count, len(defaultSeeds))
	}
	return NewRegistryFromSeeds(defaultSeeds[:count])
}

// NewRegistryFromSeeds builds a registry from an explicit seed table, one
// territory per row in table order.
func NewRegistryFromSeeds(seeds []Seed) (Registry, error) {
	if len(seeds) == 0 {
		return nil, fmt.Errorf("no territory seeds")
	}
	registry := make(Registry, len(seeds))
	for i, s := range seeds {
		if s.Name == "" {
			return nil, fmt.Errorf("territory %d: empty name", i)
		}
		if s.Troops < 0 {
			return nil, fmt.Errorf("territory %q: negative troop count %d", s.Name, s.Troops)
		}
		registry[i] = &Territory{Name: s.Name, Faction: s.Faction, Troops: s.Troops}
	}
	return registry, nil
}

// Len returns the number of territories on the map.
func (r Registry) Len() int {
	return len(r)
}

// Get returns the territory at index i. Callers validate the index; only the
// battle resolver may mutate the returned territory.
func (r Registry) Get(i int) *Territory {
	return r[i]
}

// Factions returns a copy of the faction name set.
func Factions() []string {
	factions := make([]string, len(factionNames))
	copy(factions, factionNames)
	return factions
}
