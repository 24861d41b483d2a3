package engine

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"war/game"
)

// Engine runs the interactive console loop: it renders the map, reads player
// actions, and dispatches into the game package. The registry is owned by
// the engine and mutated only through game.ResolveAttack.
type Engine struct {
	Registry      game.Registry
	Mission       game.Mission
	PlayerFaction string
	Dice          game.Roller
	Rules         game.Rules

	in  *bufio.Scanner
	out io.Writer
	log zerolog.Logger
	eof bool
}

func New(registry game.Registry, mission game.Mission, playerFaction string, dice game.Roller, rules game.Rules, in io.Reader, out io.Writer, log zerolog.Logger) *Engine {
	return &Engine{
		Registry:      registry,
		Mission:       mission,
		PlayerFaction: playerFaction,
		Dice:          dice,
		Rules:         rules,
		in:            bufio.NewScanner(in),
		out:           out,
		log:           log,
	}
}

// Run executes the game loop until the player wins or quits. It returns
// whether the mission was accomplished. Bad input never escapes a single
// action: the loop always comes back to the menu in a stable state.
func (e *Engine) Run() bool {
	for {
		e.renderMap()
		e.renderMission()
		e.renderMenu()

		choice, ok := e.readInt()
		if !ok {
			if e.eof {
				return false
			}
			fmt.Fprintln(e.out, "\nInvalid option. Try again.")
			e.pause()
			continue
		}

		switch choice {
		case 1:
			e.attackPhase()
		case 2:
			if game.CheckVictory(e.Registry, e.Mission, e.PlayerFaction) {
				fmt.Fprintf(e.out, "\nCongratulations! Mission accomplished: %s\n", e.Mission.Description)
				e.log.Info().Str("mission", e.Mission.Description).Msg("mission accomplished")
				return true
			}
			fmt.Fprintf(e.out, "\nMission NOT accomplished yet: %s\n", e.Mission.Description)
		case 0:
			fmt.Fprintln(e.out, "\nLeaving the game...")
			return false
		default:
			fmt.Fprintln(e.out, "\nInvalid option. Try again.")
		}

		e.pause()
	}
}

// attackPhase asks how many attacks to run this turn, then prompts for the
// attacking and defending territories per attack. Indexes are 1-based, as
// displayed on the map table. Any invalid or malformed selection cancels
// only that attack.
func (e *Engine) attackPhase() {
	fmt.Fprint(e.out, "How many attacks this turn? ")
	attacks, ok := e.readInt()
	if !ok {
		fmt.Fprintln(e.out, "Invalid input. Back to the menu.")
		return
	}

	for i := 0; i < attacks && !e.eof; i++ {
		fmt.Fprintf(e.out, "\n>>> Attack %d of %d <<<\n", i+1, attacks)

		fmt.Fprintf(e.out, "Choose the attacking territory (1 - %d): ", e.Registry.Len())
		atk, ok := e.readInt()
		if !ok {
			fmt.Fprintln(e.out, "Invalid input. Skipping attack.")
			continue
		}
		fmt.Fprintf(e.out, "Choose the defending territory (1 - %d): ", e.Registry.Len())
		def, ok := e.readInt()
		if !ok {
			fmt.Fprintln(e.out, "Invalid input. Skipping attack.")
			continue
		}

		if atk < 1 || atk > e.Registry.Len() || def < 1 || def > e.Registry.Len() || atk == def {
			fmt.Fprintln(e.out, "Invalid selection (index out of range or same territory). Attack cancelled.")
			continue
		}

		e.runAttack(e.Registry.Get(atk-1), e.Registry.Get(def-1))
	}
}

// runAttack resolves one exchange and narrates the structured result.
func (e *Engine) runAttack(attacker, defender *game.Territory) {
	atkBefore, defBefore := *attacker, *defender
	result := game.ResolveAttack(attacker, defender, e.Dice, e.Rules)

	switch result.Outcome {
	case game.AttackerEmptyOutcome:
		fmt.Fprintf(e.out, "Attacking territory %s has no troops to attack with.\n", attacker.Name)
		return
	case game.DefenderEmptyOutcome:
		fmt.Fprintf(e.out, "Defending territory %s is already empty.\n", defender.Name)
		return
	}

	fmt.Fprintf(e.out, "%s (troops: %d, army: %s) attacks %s (troops: %d, army: %s)\n",
		atkBefore.Name, atkBefore.Troops, atkBefore.Faction,
		defBefore.Name, defBefore.Troops, defBefore.Faction)
	fmt.Fprintf(e.out, "Rolls: attacker %d vs defender %d\n", result.AttackRoll, result.DefenseRoll)

	switch result.Outcome {
	case game.DefendedOutcome:
		fmt.Fprintln(e.out, "Result: defense held. The defender loses nothing.")
	case game.TroopLostOutcome:
		fmt.Fprintf(e.out, "Result: %s loses 1 troop (now %d).\n", defender.Name, defender.Troops)
	case game.ConquestOutcome:
		fmt.Fprintf(e.out, "Result: %s loses 1 troop (now 0).\n", defender.Name)
		fmt.Fprintf(e.out, "Territory %s was conquered by the %s army!\n", defender.Name, defender.Faction)
		if result.TroopMoved {
			fmt.Fprintf(e.out, "One troop moved from %s to %s.\n", attacker.Name, defender.Name)
		}
	}

	e.log.Debug().
		Str("attacker", atkBefore.Name).
		Str("defender", defBefore.Name).
		Int("attack_roll", result.AttackRoll).
		Int("defense_roll", result.DefenseRoll).
		Bool("conquest", result.Outcome == game.ConquestOutcome).
		Msg("exchange resolved")
	fmt.Fprintln(e.out)
}

func (e *Engine) renderMap() {
	fmt.Fprintln(e.out, "\n=== Current Map ===")
	fmt.Fprintln(e.out, "Idx | Territory                 | Army        | Troops")
	fmt.Fprintln(e.out, "----+---------------------------+-------------+-------")
	for i, t := range e.Registry {
		if color := game.FactionANSI(t.Faction); color != "" {
			fmt.Fprintf(e.out, "%3d | %-25s | %s%-11s%s | %6d\n",
				i+1, t.Name, color, t.Faction, game.ResetANSI, t.Troops)
		} else {
			fmt.Fprintf(e.out, "%3d | %-25s | %-11s | %6d\n",
				i+1, t.Name, t.Faction, t.Troops)
		}
	}
	fmt.Fprintln(e.out)
}

func (e *Engine) renderMission() {
	fmt.Fprintln(e.out, "=== Current Mission ===")
	fmt.Fprintf(e.out, "  Objective: %s\n\n", e.Mission.Description)
}

func (e *Engine) renderMenu() {
	fmt.Fprintln(e.out, "Menu:")
	fmt.Fprintln(e.out, "  1 - Attack")
	fmt.Fprintln(e.out, "  2 - Check mission")
	fmt.Fprintln(e.out, "  0 - Quit")
	fmt.Fprint(e.out, "Choose an option: ")
}

// readInt reads one input line and parses it as an integer. Reading whole
// lines means malformed input is discarded in full, so a bad line never
// bleeds into the next prompt.
func (e *Engine) readInt() (int, bool) {
	if !e.in.Scan() {
		e.eof = true
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(e.in.Text()))
	if err != nil {
		return 0, false
	}
	return n, true
}

func (e *Engine) pause() {
	fmt.Fprint(e.out, "\nPress Enter to continue...")
	e.in.Scan()
}
