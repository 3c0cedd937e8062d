package vocabulary

import "github.com/oraclelex/oraclelex/lexicon"

// Keyword abilities.
var abilities = lexicon.Category{
	Name:    "abilities",
	Entries: []lexicon.Entry{
		kw("DEATHTOUCH", "deathtouch"),
		kw("DEFENDER", "defender"),

		// Covers both double strike and first strike; "double" and
		// "first" lex on their own.
		kw("STRIKE", "strike"),

		// Some keywords behave like actions even though the rules do not
		// class them as keyword actions; a verb entry gives them tenses.
		verb(s("ENCHANT", "enchant", "enchants"),
			s("ENCHANTED", "enchanted"),
			s("ENCHANTING", "enchanting")),
		verb(s("EQUIP", "equip", "equips"), s("EQUIPPED", "equipped"), s("EQUIPPING", "equipping")),
		kw("FLASH", "flash"),
		kw("FLYING", "flying"),
		kw("HASTE", "haste"),
		kw("HEXPROOF", "hexproof"),
		kw("INTIMIDATE", "intimidate"),
		kw("LANDWALK", "landwalk"),
		kw("LIFELINK", "lifelink"),
		kw("PROTECTION", "protection"),
		kw("REACH", "reach"),
		kw("SHROUD", "shroud"),
		verb(s("TRAMPLE", "trample", "tramples"),
			s("TRAMPLED", "trampled"),
			s("TRAMPLING", "trampling")),
		kw("VIGILANCE", "vigilance"),

		// Expansion-set keywords.
		verb(s("ABSORB", "absorb", "absorbs"), s("ABSORBED", "absorbed"), s("ABSORBING", "absorbing")),
		kw("AFFINITY", "affinity"),
		verb(s("AMPLIFY", "amplify", "amplifies"), s("AMPLIFIED", "amplified")),
		kw("ANNIHILATOR", "annihilator"),

		// Aura swap.
		verb(s("SWAP", "swap", "swaps"), s("SWAPPED", "swapped")),
		kw("BATTLE_CRY", "battle cry"),
		kw("BLOODTHIRST", "bloodthirst"),
		kw("BUSHIDO", "bushido"),
		kw("BUYBACK", "buyback"),
		kw("CASCADE", "cascade"),
		verb(s("CHAMPION", "champion", "champions"), s("CHAMPIONED", "championed")),
		kw("CHANGELING", "changeling"),
		verb(s("CONSPIRE", "conspire", "conspires"), s("CONSPIRED", "conspired")),
		kw("CONVOKE", "convoke"),
		kw("CUMULATIVE_UPKEEP", "cumulative upkeep"),
		verb(s("CYCLE", "cycle", "cycles"), s("CYCLED", "cycled"), s("CYCLING", "cycling")),
		kw("DELVE", "delve"),
		verb(s("DEVOUR", "devour", "devours"), s("DEVOURED", "devoured")),
		kw("DREDGE", "dredge"),
		kw("ECHO", "echo"),
		kw("ENTWINE", "entwine"),
		kw("EPIC", "epic"),
		verb(s("EVOKE", "evoke", "evokes"), s("EVOKED", "evoked")),
		kw("EXALTED", "exalted"),
		kw("FADING", "fading"),
		kw("FLANKING", "flanking"),
		kw("FLASHBACK", "flashback"),
		kw("FORECAST", "forecast"),
		verb(s("FORTIFY", "fortify", "fortifies"), s("FORTIFIED", "fortified")),
		kw("FRENZY", "frenzy"),
		verb(s("GRAFT", "graft", "grafts"), s("GRAFTED", "grafted")),
		kw("GRAVESTORM", "gravestorm"),
		verb(s("HAUNT", "haunt", "haunts"), s("HAUNTED", "haunted"), s("HAUNTING", "haunting")),
		kw("HIDEAWAY", "hideaway"),
		kw("HORSEMANSHIP", "horsemanship"),
		kw("INFECT", "infect"),
		kw("KICKER", "kicker"),
		verb(s("KICK", "kick", "kicks"), s("KICKED", "kicked")),

		// Level up.
		kw("LEVEL", "level"),
		kw("LIVING_WEAPON", "living weapon"),
		kw("MADNESS", "madness"),
		kw("MODULAR", "modular"),
		kw("MORPH", "morph"),
		kw("MULTIKICKER", "multikicker"),
		kw("NINJUTSU", "ninjutsu"),
		kw("OFFERING", "offering"),
		kw("PERSIST", "persist"),

		// Phasing.
		verb(s("PHASE", "phase", "phases"), s("PHASED", "phased"), s("PHASING", "phasing")),
		kw("POISONOUS", "poisonous"),
		verb(s("PROVOKE", "provoke", "provokes"), s("PROVOKED", "provoked")),
		kw("PROWL", "prowl"),
		kw("RAMPAGE", "rampage"),
		kw("REBOUND", "rebound"),
		verb(s("RECOVER", "recover", "recovers"), s("RECOVERED", "recovered")),
		verb(s("REINFORCE", "reinforce", "reinforces"), s("REINFORCED", "reinforced")),
		verb(s("REPLICATE", "replicate", "replicates"), s("REPLICATED", "replicated")),
		kw("RETRACE", "retrace"),
		kw("RIPPLE", "ripple"),
		kw("SHADOW", "shadow"),
		kw("SOULSHIFT", "soulshift"),
		verb(s("SPLICE", "splice", "splices"), s("SPLICED", "spliced")),
		kw("SPLIT_SECOND", "split second"),
		kw("STORM", "storm"),
		kw("SUNBURST", "sunburst"),
		verb(s("SUSPEND", "suspend", "suspends"), s("SUSPENDED", "suspended")),
		kw("TOTEM_ARMOR", "totem armor"),
		kw("TRANSFIGURE", "transfigure"),
		verb(s("TRANSMUTE", "transmute", "transmutes"), s("TRANSMUTED", "transmuted")),
		kw("TYPECYCLING", "typecycling"),
		verb(s("UNEARTH", "unearth", "unearths"), s("UNEARTHED", "unearthed")),
		kw("VANISHING", "vanishing"),
		kw("WITHER", "wither"),

		// Banding, bands with other.
		verb(s("BAND", "band", "bands"), s("BANDED", "banded"), s("BANDING", "banding")),
		kw("FEAR", "fear"),
	},
}

// Ability words. They carry no rules meaning but appear in text.
var abilityWords = lexicon.Category{
	Name:    "ability-words",
	Entries: []lexicon.Entry{
		kw("CHANNEL", "channel"),
		kw("CHROMA", "chroma"),
		kw("DOMAIN", "domain"),
		kw("GRANDEUR", "grandeur"),
		kw("HELLBENT", "hellbent"),
		kw("IMPRINT", "imprint"),
		kw("JOIN_FORCES", "join forces"),
		kw("KINSHIP", "kinship"),
		kw("LANDFALL", "landfall"),
		kw("METALCRAFT", "metalcraft"),
		kw("MORBID", "morbid"),
		kw("RADIANCE", "radiance"),
		kw("SWEEP", "sweep"),
		kw("THRESHOLD", "threshold"),
	},
}
