package game

// Rules decides the outcome of a single attack exchange.
type Rules interface {
	IsAttackSuccessful(attackRoll, defenseRoll int) bool
}

// StandardRules resolves exchanges with one die per side.
type StandardRules struct{}

func NewStandardRules() *StandardRules {
	return &StandardRules{}
}

// IsAttackSuccessful reports whether the attacker takes the exchange.
// Ties favor the attacker.
func (sr *StandardRules) IsAttackSuccessful(attackRoll, defenseRoll int) bool {
	return attackRoll >= defenseRoll
}
