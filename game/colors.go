package game

import "war/utils"

// ANSI escape codes for faction display, indexed in step with factionNames.
var factionANSI = []string{"\033[32m", "\033[34m", "\033[31m", "\033[33m", "\033[35m"}

// ResetANSI clears any faction coloring.
const ResetANSI = "\033[0m"

// FactionANSI returns the ANSI color token for a known faction, or "" when
// the faction has no assigned color. Rendering only; no game logic reads it.
func FactionANSI(faction string) string {
	i := utils.FindIndex(factionNames, faction)
	if i < 0 {
		return ""
	}
	return factionANSI[i]
}

// KnownFaction reports whether faction is part of the faction set.
func KnownFaction(faction string) bool {
	return utils.FindIndex(factionNames, faction) >= 0
}
