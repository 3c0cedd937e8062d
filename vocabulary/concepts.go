package vocabulary

import "github.com/oraclelex/oraclelex/lexicon"

// Game concepts and common qualifiers.
var concepts = lexicon.Category{
	Name:    "concepts",
	Entries: []lexicon.Entry{
		kw("ADDITION", "addition"),
		kw("ADDITIONAL", "additional"),
		kw("CONVERTED", "converted"),
		noun("COST", "cost", "costs", "cost's", "costs'"),
		noun("TARGET", "target", "targets", "target's", "targets'"),

		// Mana.
		kw("COMBINATION", "combination"),
		noun("MANA", "mana", "mana", "mana's", "mana's"),
		noun("POOL", "pool", "pools", "pool's", "pools'"),
		noun("SYMBOL", "symbol", "symbols", "symbol's", "symbols'"),

		// Object and zone parts.
		noun("BOTTOM", "bottom", "bottoms", "bottom's", "bottoms'"),
		noun("TOP", "top", "tops", "top's", "tops'"),
		kw("LIFE", "life"),
		kw("TOTAL", "total", "totals"),
		kw("POWER", "power"),
		kw("TOUGHNESS", "toughness"),
		kw("TEXT", "text"),
		kw("FULL", "full"),
		noun("INSTANCE", "instance", "instances", "instance's", "instances'"),

		// Numbers and arithmetic.
		noun("NUMBER", "number", "numbers", "number's", "numbers'"),
		kw("AMOUNT", "amount"),
		kw("MINUS", "minus"),
		kw("PLUS", "plus"),
		kw("TIMES", "times"),
		kw("TWICE", "twice"),
		kw("TOTAL", "total"),
		kw("VALUE", "value"),
		kw("HALF", "half"),
		kw("EVENLY", "evenly"),
		verb(s("ROUND", "round", "rounds"), s("ROUNDED", "rounded")),
		kw("UP", "up"),
		kw("DOWN", "down"),
		kw("MAXIMUM", "maximum"),
		kw("MINIMUM", "minimum"),

		// Limits.
		kw("ONCE", "once"),
		kw("SINGLE", "single"),

		// Groupings.
		kw("EACH", "each"),
		kw("EVERY", "every"),
		kw("EVERYTHING", "everything"),
		noun("PILE", "pile", "piles", "pile's", "piles'"),
		kw("EVEN", "even"),
		kw("ODD", "odd"),
		kw("COMMON", "common"),
		kw("SAME", "same"),
		kw("DIFFERENT", "different"),
		kw("DIFFERENCE", "difference"),
		kw("KIND", "kind"),
		kw("ALL", "all"),
		kw("BOTH", "both"),
		kw("ONLY", "only"),
		kw("MANY", "many"),
		kw("ANY", "any"),
		kw("SOME", "some"),
		kw("NONE", "none"),
		kw("NO", "no"),
		kw("OTHER", "other"),
		kw("ANOTHER", "another"),
		kw("REST", "rest"),
		kw("LEFT", "left"),
		kw("RIGHT", "right"),
		kw("WAR", "war"),
		kw("PEACE", "peace"),

		// Comparisons.
		kw("MOST", "most"),
		kw("FEWEST", "fewest"),
		kw("GREATEST", "greatest"),
		kw("LEAST", "least"),
		kw("MORE", "more"),
		kw("LESS", "less"),
		kw("HIGH", "high"),
		kw("LOW", "low"),
		kw("HIGHER", "higher"),
		kw("LOWER", "lower"),
		kw("HIGHEST", "highest"),
		kw("LOWEST", "lowest"),
		kw("GREATER", "greater"),
		kw("FEWER", "fewer"),
		kw("LESSER", "lesser"),
		kw("SMALLER", "smaller"),
		kw("LONG", "long"),
		kw("SHORT", "short"),
		kw("LONGER", "longer"),
		kw("SHORTER", "shorter"),
		kw("THAN", "than"),
		kw("DIRECTLY", "directly"),
		kw("ABOVE", "above"),
		kw("BELOW", "below"),
		kw("OVER", "over"),
		kw("UNDER", "under"),
		kw("AMONG", "among"),
		kw("BETWEEN", "between"),
		kw("EQUAL", "equal", "equals"),
		kw("EXACTLY", "exactly"),
		kw("BEYOND", "beyond"),
		kw("MUCH", "much"),

		// States and statuses.
		kw("ALONE", "alone"),
		kw("CHOSEN", "chosen"),
		kw("DRAWN", "drawn"),
		kw("FACE_UP", "face-up", "face up"),
		kw("FACE_DOWN", "face-down", "face down"),
		kw("LABEL", "label"),
		kw("LEVEL", "level"),
		kw("MARKED", "marked"),
		kw("ORIGINAL", "original"),
		kw("PHASED_OUT", "phased-out"),
		kw("POISONED", "poisoned"),
		kw("INDESTRUCTIBLE", "indestructible"),
		kw("TARGETED", "targeted"),
		kw("UNBLOCKABLE", "unblockable"),
		kw("UNBLOCKED", "unblocked"),
		kw("UNCHANGED", "unchanged"),

		// Pronouns.
		kw("YOU", "you"),
		kw("YOUR", "your", "yours"),
		kw("YOU_ARE", "you're"),
		kw("YOU_HAVE", "you've"),
		kw("THEIR", "their"),
		kw("THEM", "them"),
		kw("THEY", "they"),
		kw("THEY_ARE", "they're"),
		kw("ITSELF", "itself"),
		kw("HE", "he"),
		kw("HIM", "him"),
		kw("HIMSELF", "himself"),
		kw("HIS", "his"),
		kw("SHE", "she"),
		kw("HER", "her"),
		kw("HERSELF", "herself"),
		kw("SIZE", "size"),

		// Damage.
		kw("DAMAGE", "damage"),
		kw("LETHAL", "lethal"),
		kw("POINT", "point"),
		kw("POISON", "poison"),

		// Coin flips and guessing.
		noun("COIN", "coin", "coins", "coin's", "coins'"),
		kw("HEADS", "heads"),
		kw("TAILS", "tails"),
		kw("RANDOM", "random"),
		kw("WRONG", "wrong"),

		// Bidding.
		kw("BROKEN", "broken"),
		noun("ITEM", "item", "items", "item's", "items'"),
		kw("SECRETLY", "secretly"),
		kw("STAKES", "stakes"),

		// Rules terms.
		kw("LEGAL", "legal"),
		kw("LEGEND_RULE", "legend rule"),

		// Before the game.
		kw("MULLIGAN", "mulligan"),
		kw("OPENING", "opening"),
		kw("MAGIC", "magic"),
		kw("IDENTITY", "identity"),

		// Timing.
		kw("AFTER", "after"),
		kw("AGAIN", "again"),
		kw("BEFORE", "before"),
		kw("CONTINUOUSLY", "continuously"),
		kw("DURING", "during"),
		kw("NEXT", "next"),
		kw("PREVIOUSLY", "previously"),
		kw("RECENT", "recent"),
		kw("RECENTLY", "recently"),
		kw("SIMULTANEOUSLY", "simultaneously"),
		kw("SINCE", "since"),
		kw("TIME", "time"),
		kw("UNTIL", "until"),
		kw("WHEN", "when", "whenever"),
		kw("WHILE", "while"),

		// Conditions and references.
		kw("ALREADY", "already"),
		kw("BACK", "back"),
		kw("BY", "by"),
		kw("ELSE", "else"),
		kw("EXCEPT", "except"),
		kw("FAR", "far"),
		kw("FOLLOWED", "followed"),
		kw("FROM", "from"),
		kw("IF", "if"),
		kw("IN", "in"),
		kw("INSTEAD", "instead"),
		kw("INTO", "into"),
		kw("IT", "it"),
		kw("IT_IS", "it's"),
		kw("ITS", "its"),
		kw("LIKEWISE", "likewise"),
		kw("ON", "on"),
		kw("ONTO", "onto"),
		kw("OTHERWISE", "otherwise"),
		kw("OUT", "out"),
		kw("PROCESS", "process"),
		kw("RATHER", "rather"),
		kw("STILL", "still"),
		kw("THAT", "that"),
		kw("THAT_IS", "that's"),
		kw("THERE", "there"),
		kw("THERE_IS", "there's"),
		kw("THIS", "this"),
		kw("THOSE", "those"),
		kw("THOUGH", "though"),
		kw("TO", "to"),
		kw("UNLESS", "unless"),
		kw("WAY", "way"),
		kw("WHERE", "where"),
		kw("WHETHER", "whether"),
		kw("WHICH", "which", "whichever"),
		kw("WHO", "who"),
		kw("WHOM", "whom"),
		kw("WHOSE", "whose"),
		kw("WOULD", "would"),

		// Expansion names.
		kw("EXPANSION", "expansion"),
		kw("ARABIAN_NIGHTS", "arabian nights"),
		kw("ANTIQUITIES", "antiquities"),
		kw("HOMELANDS", "homelands"),
	},
}
