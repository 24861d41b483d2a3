package game

// CheckVictory reports whether the player's mission is fulfilled. Pure read
// of the registry: callable any number of times between mutations.
//
// A DestroyFactionMission counts a faction as destroyed once no territory
// both carries its flag and holds troops, so a zero-troop holding does not
// keep the target alive.
func CheckVictory(registry Registry, mission Mission, playerFaction string) bool {
	switch mission.Kind {
	case DestroyFactionMission:
		for _, t := range registry {
			if t.Faction == mission.TargetFaction && t.Troops > 0 {
				return false
			}
		}
		return true
	case ConquerCountMission:
		owned := 0
		for _, t := range registry {
			if t.Faction == playerFaction {
				owned++
			}
		}
		return owned >= ConquerTarget
	default:
		return false
	}
}
