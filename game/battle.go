package game

// BattleOutcome classifies what a single attack exchange did to the board.
type BattleOutcome int

const (
	AttackerEmptyOutcome BattleOutcome = iota // attacker has no troops, nothing happened
	DefenderEmptyOutcome                      // defender is already empty, nothing happened
	DefendedOutcome                           // defense roll won, no losses
	TroopLostOutcome                          // attacker won the roll, defender lost one troop
	ConquestOutcome                           // defender dropped to zero troops and changed hands
)

// BattleResult reports one resolved exchange. Rolls are zero when no dice
// were thrown (empty-territory no-ops).
type BattleResult struct {
	Outcome     BattleOutcome
	AttackRoll  int
	DefenseRoll int
	TroopMoved  bool // conquest only: one troop moved from attacker to defender
}

// ResolveAttack resolves exactly one exchange between two territories,
// mutating troop counts and, on conquest, ownership. Empty territories on
// either side make the exchange a reported no-op rather than an error. How
// the result is narrated is the caller's concern.
func ResolveAttack(attacker, defender *Territory, dice Roller, rules Rules) BattleResult {
	if attacker.Troops <= 0 {
		return BattleResult{Outcome: AttackerEmptyOutcome}
	}
	if defender.Troops <= 0 {
		return BattleResult{Outcome: DefenderEmptyOutcome}
	}

	result := BattleResult{
		AttackRoll:  dice.Roll(),
		DefenseRoll: dice.Roll(),
	}

	if !rules.IsAttackSuccessful(result.AttackRoll, result.DefenseRoll) {
		result.Outcome = DefendedOutcome
		return result
	}

	defender.Troops--
	if defender.Troops > 0 {
		result.Outcome = TroopLostOutcome
		return result
	}

	// Conquest: the territory changes hands and gets one occupying troop,
	// taken from the attacker when it has one to spare. An attacker that
	// conquered with its last troop is left holding an empty territory.
	defender.Faction = attacker.Faction
	defender.Troops = 1
	if attacker.Troops > 1 {
		attacker.Troops--
		result.TroopMoved = true
	} else {
		attacker.Troops = 0
	}
	result.Outcome = ConquestOutcome
	return result
}
