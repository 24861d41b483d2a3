package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	t.Run("builds the full default map", func(t *testing.T) {
		registry, err := NewRegistry(5)
		require.NoError(t, err)
		require.Equal(t, 5, registry.Len())

		require.Equal(t, "Amazonas", registry.Get(0).Name)
		require.Equal(t, "Green", registry.Get(0).Faction)
		require.Equal(t, 5, registry.Get(0).Troops)

		require.Equal(t, "Mata Atlantica", registry.Get(4).Name)
		require.Equal(t, "Purple", registry.Get(4).Faction)
	})

	t.Run("rejects a size beyond the seed table", func(t *testing.T) {
		_, err := NewRegistry(6)
		require.Error(t, err)
	})

	t.Run("rejects a non-positive size", func(t *testing.T) {
		_, err := NewRegistry(0)
		require.Error(t, err)
	})
}

func TestNewRegistryFromSeeds(t *testing.T) {
	t.Run("preserves table order", func(t *testing.T) {
		registry, err := NewRegistryFromSeeds([]Seed{
			{Name: "North", Faction: "Red", Troops: 2},
			{Name: "South", Faction: "Blue", Troops: 3},
		})
		require.NoError(t, err)
		require.Equal(t, "North", registry.Get(0).Name)
		require.Equal(t, "South", registry.Get(1).Name)
	})

	t.Run("rejects an empty table", func(t *testing.T) {
		_, err := NewRegistryFromSeeds(nil)
		require.Error(t, err)
	})

	t.Run("rejects a nameless territory", func(t *testing.T) {
		_, err := NewRegistryFromSeeds([]Seed{{Faction: "Red", Troops: 2}})
		require.Error(t, err)
	})

	t.Run("rejects negative troops", func(t *testing.T) {
		_, err := NewRegistryFromSeeds([]Seed{{Name: "North", Faction: "Red", Troops: -1}})
		require.Error(t, err)
	})
}

func TestStandardRulesTieBreak(t *testing.T) {
	rules := NewStandardRules()

	require.True(t, rules.IsAttackSuccessful(4, 4), "Ties go to the attacker")
	require.True(t, rules.IsAttackSuccessful(6, 1))
	require.False(t, rules.IsAttackSuccessful(1, 6))
}

func TestFactionANSI(t *testing.T) {
	require.Equal(t, "\033[34m", FactionANSI("Blue"))
	require.Equal(t, "\033[32m", FactionANSI("Green"))
	require.Empty(t, FactionANSI("Chartreuse"), "Unknown factions render uncolored")
}

func TestKnownFaction(t *testing.T) {
	for _, faction := range Factions() {
		require.True(t, KnownFaction(faction))
	}
	require.False(t, KnownFaction("Chartreuse"))
}
