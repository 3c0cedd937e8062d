package vocabulary

import "github.com/oraclelex/oraclelex/lexicon"

// Core player actions: things one can say "a player does" in plain English.
var coreActions = lexicon.Category{
	Name:    "core-actions",
	Entries: []lexicon.Entry{
		verb(s("ADD", "add", "adds"), s("ADDED", "added"), s("ADDING", "adding")),
		verb(s("ANTE", "ante", "antes"), s("ANTED", "anted")),
		verb(s("ATTACK", "attack", "attacks"), s("ATTACKED", "attacked"), s("ATTACKING", "attacking")),
		verb(s("BEGIN", "begin", "begins"), s("BEGAN", "began")),
		verb(s("BID", "bid", "bids"),
			s("BID", "bid"),
			s("BIDDING", "bidding"),
			s("BIDDING", "bidding")),
		verb(s("BLOCK", "block", "blocks"), s("BLOCKED", "blocked"), s("BLOCKING", "blocking")),
		verb(s("CHANGE", "change", "changes"), s("CHANGED", "changed"), s("CHANGING", "changing")),
		verb(s("CHOOSE", "choose", "chooses"),
			s("CHOSE", "chose"),
			s("CHOOSING", "choosing"),
			s("CHOICE", "choice", "choices")),
		verb(s("CONTROL", "control", "controls"),
			s("CONTROLLED", "controlled"),
			s("CONTROLLING", "controlling")),
		verb(s("COUNT", "count", "counts"), s("COUNTED", "counted")),
		verb(s("DECIDE", "decide", "decides"),
			s("DECIDED", "decided"),
			s("DECIDING", "deciding"),
			s("DECISION", "decision")),
		verb(s("DECLARE", "declare", "declares"),
			s("DECLARED", "declared"),
			s("DECLARING", "declaring"),
			s("DECLARATION", "declaration")),
		verb(s("DISTRIBUTE", "distribute", "distributes"),
			s("DISTRIBUTED", "distributed"),
			s("DISTRIBUTING", "distributing"),
			s("DISTRIBUTION", "distribution")),
		verb(s("DIVIDE", "divide", "divides"),
			s("DIVIDED", "divided"),
			s("DIVIDING", "dividing"),
			s("DIVISION", "division")),
		verb(s("DO", "do", "does"), s("DID", "did"), s("DOING", "doing")),
		verb(s("DONT", "don't", "doesn't"), s("DIDNT", "didn't")),
		verb(s("DOUBLE", "double", "doubles"), s("DOUBLED", "doubled")),
		verb(s("DRAW", "draw", "draws"), s("DREW", "drew")),
		verb(s("EMPTY", "empty", "empties"), s("EMPTIED", "emptied")),
		verb(s("FINISH", "finish", "finishes"), s("FINISHED", "finished")),
		verb(s("FLIP", "flip", "flips"), s("FLIPPED", "flipped"), s("FLIPPING", "flipping")),
		verb(s("GAIN", "gain", "gains"), s("GAINED", "gained")),
		verb(s("GET", "get", "gets"), s("GOT", "got")),
		verb(s("GUESS", "guess", "guesses"), s("GUESSED", "guessed"), s("GUESSING", "guessing")),
		verb(s("HIDE", "hide", "hides"), s("HID", "hid")),
		verb(s("IGNORE", "ignore", "ignores"), s("IGNORED", "ignored")),
		verb(s("LOOK", "look", "looks"), s("LOOKED", "looked")),
		verb(s("LOSE", "lose", "loses"), s("LOST", "lost"), s("LOSING", "losing"), s("LOSS", "loss")),
		verb(s("MOVE", "move", "moves"), s("MOVED", "moved"), s("MOVING", "moving")),
		verb(s("NAME", "name", "names"), s("NAMED", "named")),
		verb(s("NOTE", "note", "notes"), s("NOTED", "noted")),
		verb(s("ORDER", "order", "orders"), s("ORDERED", "ordered")),
		verb(s("OWN", "own", "owns"),
			s("OWNED", "owned"),
			s("OWNING", "owning"),
			s("OWNERSHIP", "ownership")),
		verb(s("PAY", "pay", "pays"),
			s("PAID", "paid"),
			s("PAYING", "paying"),
			s("PAYMENT", "payment")),
		verb(s("PREVENT", "prevent", "prevents"), s("PREVENTED", "prevented")),
		verb(s("PUT", "put", "puts"), s("PUT", "put"), s("PUTTING", "putting")),
		verb(s("REDISTRIBUTE", "redistribute", "redistributes"),
			s("REDISTRIBUTED", "redistributed"),
			s("REDISTRIBUTING", "redistributing"),
			s("REDISTRIBUTION", "redistribution")),
		verb(s("REMOVE", "remove", "removes"),
			s("REMOVED", "removed"),
			s("REMOVING", "removing"),
			s("REMOVAL", "removal")),
		verb(s("REORDER", "reorder", "reorders"), s("REORDERED", "reordered")),
		verb(s("REPEAT", "repeat", "repeats"), s("REPEATED", "repeated")),
		verb(s("REPLACE", "replace", "replaces"),
			s("REPLACED", "replaced"),
			s("REPLACING", "replacing")),
		verb(s("RESELECT", "reselect", "reselects"), s("RESELECTED", "reselected")),
		verb(s("RESTART", "restart", "restarts"),
			s("RESTARTED", "restarted"),
			s("RESTARTING", "restarting")),
		verb(s("RETURN", "return", "returns"), s("RETURNED", "returned")),
		verb(s("SELECT", "select", "selects"), s("SELECTED", "selected")),
		verb(s("SEPARATE", "separate", "separates"), s("SEPARATED", "separated")),
		verb(s("SKIP", "skip", "skips"), s("SKIPPED", "skipped")),
		verb(s("SPEND", "spend", "spends"), s("SPENT", "spent")),
		verb(s("START", "start", "starts"), s("STARTED", "started"), s("STARTING", "starting")),
		verb(s("STOP", "stop", "stops"), s("STOPPED", "stopped")),
		verb(s("SWITCH", "switch", "switches"), s("SWITCHED", "switched")),
		verb(s("TAKE", "take", "takes"), s("TOOK", "took")),
		verb(s("TIE", "tie", "ties"), s("TIED", "tied"), s("TYING", "tying")),
		verb(s("WIN", "win", "wins"), s("WON", "won"), s("WINNING", "winning")),
	},
}

// Keyword actions, including set-specific ones and the planechase verbs.
var keywordActions = lexicon.Category{
	Name:    "keyword-actions",
	Entries: []lexicon.Entry{
		verb(s("ACTIVATE", "activate", "activates"),
			s("ACTIVATED", "activated"),
			s("ACTIVATING", "activating"),
			s("ACTIVATION", "activation", "activations")),
		verb(s("ATTACH", "attach", "attaches"), s("ATTACHED", "attached"), s("ATTACHING", "attaching")),
		verb(s("CAST", "cast", "casts"), s("CAST", "cast"), s("CASTING", "casting")),
		verb(s("COUNTER", "counter", "counters"),
			s("COUNTERED", "countered"),
			s("COUNTERING", "countering")),
		verb(s("DESTROY", "destroy", "destroys"),
			s("DESTROYED", "destroyed"),
			s("DESTROYING", "destroying")),
		verb(s("DISCARD", "discard", "discards"),
			s("DISCARDED", "discarded"),
			s("DISCARDING", "discarding")),
		verb(s("EXCHANGE", "exchange", "exchanges"),
			s("EXCHANGED", "exchanged"),
			s("EXCHANGING", "exchanging"),
			s("EXCHANGE", "exchange")),
		verb(s("EXILE", "exile", "exiles"), s("EXILED", "exiled"), s("EXILING", "exiling")),
		verb(s("FIGHT", "fight", "fights"), s("FOUGHT", "fought")),
		verb(s("PLAY", "play", "plays"), s("PLAYED", "played"), s("PLAYING", "playing")),
		verb(s("REGENERATE", "regenerate", "regenerates"),
			s("REGENERATED", "regenerated"),
			s("REGENERATING", "regenerating"),
			s("REGENERATION", "regeneration")),
		verb(s("REVEAL", "reveal", "reveals"), s("REVEALED", "revealed"), s("REVEALING", "revealing")),
		verb(s("SACRIFICE", "sacrifice", "sacrifices"),
			s("SACRIFICED", "sacrificed"),
			s("SACRIFICING", "sacrificing")),
		verb(s("SEARCH", "search", "searches"), s("SEARCHED", "searched"), s("SEARCHING", "searching")),
		verb(s("SHUFFLE", "shuffle", "shuffles"),
			s("SHUFFLED", "shuffled"),
			s("SHUFFLING", "shuffling")),
		verb(s("TAP", "tap", "taps"), s("TAPPED", "tapped"), s("TAPPING", "tapping")),
		verb(s("UNATTACH", "unattach", "unattaches"),
			s("UNATTACHED", "unattached"),
			s("UNATTACHING", "unattaching")),
		verb(s("UNTAP", "untap", "untaps"), s("UNTAPPED", "untapped"), s("UNTAPPING", "untapping")),
		verb(s("CLASH", "clash", "clashes"),
			s("CLASHED", "clashed"),
			s("CLASHING", "clashing"),
			s("CLASH", "clash")),
		verb(s("FATESEAL", "fateseal", "fateseals"),
			s("FATESEALED", "fatesealed"),
			s("FATESEALING", "fatesealing")),
		verb(s("PROLIFERATE", "proliferate", "proliferates"),
			s("PROLIFERATED", "proliferated"),
			s("PROLIFERATING", "proliferating"),
			s("PROLIFERATION", "proliferation")),
		verb(s("SCRY", "scry", "scries"), s("SCRIED", "scried"), s("SCRYING", "scrying")),
		verb(s("TRANSFORM", "transform", "transforms"), s("TRANSFORMED", "transformed")),
		verb(s("ABANDON", "abandon", "abandons"),
			s("ABANDONED", "abandoned"),
			s("ABANDONING", "abandoning"),
			s("ABANDONMENT", "abandonment")),
		verb(s("PLANESWALK", "planeswalk", "planeswalks"),
			s("PLANESWALKED", "planeswalked"),
			s("PLANESWALKING", "planeswalking")),
		verb(s("SET_IN_MOTION", "set in motion", "sets in motion"),
			s("SET_IN_MOTION", "set in motion"),
			s("SETTING_IN_MOTION", "setting in motion")),
	},
}

// Actions performed by objects and effects rather than players.
var otherActions = lexicon.Category{
	Name:    "other-actions",
	Entries: []lexicon.Entry{
		verb(s("AFFECT", "affect", "affects"), s("AFFECTED", "affected")),
		verb(s("APPLY", "apply", "applies"), s("APPLIED", "applied")),
		verb(s("ASSEMBLE", "assemble", "assembles"), s("ASSEMBLED", "assembled")),
		verb(s("ASSIGN", "assign", "assigns"),
			s("ASSIGNED", "assigned"),
			s("ASSIGNING", "assigning"),
			s("ASSIGNMENT", "assignment")),
		verb(s("BECOME", "become", "becomes"), s("BECAME", "became")),
		verb(s("CAUSE", "cause", "causes"), s("CAUSED", "caused")),
		verb(s("COME", "come", "comes"), s("CAME", "came")),
		verb(s("CONTAIN", "contain", "contains"), s("CONTAINED", "contained")),
		verb(s("CONTINUE", "continue", "continues"), s("CONTINUED", "continued")),
		verb(s("DEAL", "deal", "deals"), s("DEALT", "dealt"), s("DEALING", "dealing")),
		verb(s("DIE", "die", "dies"), s("DIED", "died")),
		verb(s("END", "end", "ends"), s("ENDED", "ended")),
		verb(s("ENTER", "enter", "enters"), s("ENTERED", "entered"), s("ENTERING", "entering")),
		verb(s("INCREASE", "increase", "increases"), s("INCREASED", "increased")),
		verb(s("LEAVE", "leave", "leaves"), s("LEFT", "left"), s("LEAVING", "leaving")),
		verb(s("PLACE", "place", "places"), s("PLACED", "placed")),
		verb(s("PRODUCE", "produce", "produces"), s("PRODUCED", "produced")),
		verb(s("REDUCE", "reduce", "reduces"), s("REDUCED", "reduced")),
		verb(s("REMAIN", "remain", "remains"), s("REMAINED", "remained")),
		verb(s("RESOLVE", "resolve", "resolves"),
			s("RESOLVED", "resolved"),
			s("RESOLVING", "resolving"),
			s("RESOLUTION", "resolution")),
		verb(s("SHARE", "share", "shares"), s("SHARED", "shared")),
		verb(s("STAND", "stand", "stands"), s("STOOD", "stood")),
		verb(s("TRIGGER", "trigger", "triggers"), s("TRIGGERED", "triggered")),
		verb(s("TURN", "turn", "turns"), s("TURNED", "turned")),
		verb(s("USE", "use", "uses"), s("USED", "used"), s("USING", "using")),
	},
}

// Connective and auxiliary verbs.
var connectives = lexicon.Category{
	Name:    "connectives",
	Entries: []lexicon.Entry{
		kw("ABLE", "able"),
		verb(s("BE", "be"), s("BEEN", "been"), s("BEING", "being")),
		verb(s("CAN", "can"), s("COULD", "could")),
		verb(s("CANT", "can't", "cannot"), s("COULDNT", "couldn't")),
		verb(s("IS", "is"), s("WAS", "was")),
		verb(s("ISNT", "isn't"), s("WASNT", "wasn't")),
		verb(s("ARE", "are"), s("WERE", "were")),
		verb(s("ARENT", "aren't"), s("WERENT", "weren't")),
		verb(s("HAS", "has", "have"), s("HAD", "had"), s("HAVING", "having")),
		verb(s("HASNT", "hasn't", "haven't"), s("HADNT", "hadn't")),
		kw("MAY", "may"),
	},
}
