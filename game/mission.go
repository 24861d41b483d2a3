package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// MissionKind identifies the victory condition a mission asks for.
type MissionKind int

const (
	DestroyFactionMission MissionKind = iota
	ConquerCountMission
)

// ConquerTarget is how many territories a ConquerCountMission requires.
const ConquerTarget = 3

// maxTargetDraws bounds the uniform re-draws used to avoid handing the
// player their own faction as a destruction target.
const maxTargetDraws = 10

// Mission is the player's secret objective, drawn once at game start and
// immutable afterwards. TargetFaction is set only for DestroyFactionMission.
type Mission struct {
	Kind          MissionKind
	TargetFaction string
	Description   string
}

// GenerateMission draws the player's mission: an even coin flip between
// destroying a rival faction and holding ConquerTarget territories.
func GenerateMission(rng *rand.Rand, playerFaction string) Mission {
	if rng.Intn(2) == 0 {
		target := drawTargetFaction(rng, playerFaction)
		return Mission{
			Kind:          DestroyFactionMission,
			TargetFaction: target,
			Description:   fmt.Sprintf("Destroy the %s army", target),
		}
	}
	return Mission{
		Kind:        ConquerCountMission,
		Description: fmt.Sprintf("Conquer %d territories", ConquerTarget),
	}
}

// drawTargetFaction picks a destruction target uniformly from the faction
// set, re-drawing up to maxTargetDraws times when the draw lands on the
// player's own faction, then falling back to the first non-player entry so
// the draw always terminates with a valid target.
func drawTargetFaction(rng *rand.Rand, playerFaction string) string {
	for i := 0; i < maxTargetDraws; i++ {
		candidate := factionNames[rng.Intn(len(factionNames))]
		if candidate != playerFaction {
			return candidate
		}
	}
	for _, faction := range factionNames {
		if faction != playerFaction {
			return faction
		}
	}
	// Single-faction set, nothing else to target.
	return playerFaction
}
