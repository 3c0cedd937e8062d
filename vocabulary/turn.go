package vocabulary

import "github.com/oraclelex/oraclelex/lexicon"

// Turn structure: turns, phases, and steps.
var turnStructure = lexicon.Category{
	Name:    "turn-structure",
	Entries: []lexicon.Entry{
		noun("TURN", "turn", "turns", "turn's", "turns'"),
		noun("PHASE", "phase", "phases", "phase's", "phases'"),
		noun("STEP", "step", "steps", "step's", "steps'"),

		// Phases.
		kw("BEGINNING", "beginning"),
		kw("MAIN", "main"),
		kw("PRECOMBAT", "precombat"),
		kw("POSTCOMBAT", "postcombat"),
		kw("COMBAT", "combat"),
		kw("ENDING", "ending"),

		// Steps.
		kw("UNTAP", "untap"),
		noun("UPKEEP", "upkeep", "upkeeps", "upkeep's", "upkeeps'"),
		kw("DRAW", "draw"),
		kw("BEGINNING", "beginning"),
		kw("DECLARE", "declare"),
		kw("ATTACKERS", "attackers"),
		kw("BLOCKERS", "blockers"),
		kw("DAMAGE", "damage"),
		kw("END", "end"),
		kw("CLEANUP", "cleanup"),
	},
}
