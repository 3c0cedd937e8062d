package vocabulary

import "github.com/oraclelex/oraclelex/lexicon"

// Subtype families. Every entry folds into the lexicon under the shared
// OBJ_SUBTYPE and OBJ_SUBTYPE_POSS symbols; the subtype canonicalization
// map keeps the specific subtype each word denotes.
var artifactTypes = lexicon.Category{
	Name:    "artifact-subtypes",
	Subtype: true,
	Entries: []lexicon.Entry{
		noun("CONTRAPTION", "contraption", "contraptions", "contraption's", "contraptions'"),
		noun("EQUIPMENT", "equipment", "equipment", "equipment's", "equipment's"),
		noun("FORTIFICATION", "fortification", "fortifications", "fortification's", "fortifications'"),
	},
}

var creatureTypes = lexicon.Category{
	Name:    "creature-subtypes",
	Subtype: true,
	Entries: []lexicon.Entry{
		noun("ADVISOR", "advisor", "advisors", "advisor's", "advisors'"),
		noun("ALLY", "ally", "allies", "ally's", "allies'"),
		noun("ANGEL", "angel", "angels", "angel's", "angels'"),
		noun("ANTEATER", "anteater", "anteaters", "anteater's", "anteaters'"),
		noun("ANTELOPE", "antelope", "antelopes", "antelope's", "antelopes'"),
		noun("APE", "ape", "apes", "ape's", "apes'"),
		noun("ARCHER", "archer", "archers", "archer's", "archers'"),
		noun("ARCHON", "archon", "archons", "archon's", "archons'"),
		noun("ARTIFICER", "artificer", "artificers", "artificer's", "artificers'"),
		noun("ASSASSIN", "assassin", "assassins", "assassin's", "assassins'"),
		noun("ASSEMBLY_WORKER", "assembly-worker", "assembly-workers",
			"assembly-worker's", "assembly-workers'"),
		noun("ATOG", "atog", "atogs", "atog's", "atogs'"),
		noun("AUROCHS", "aurochs", "aurochs", "aurochs's", "aurochs'"),
		noun("AVATAR", "avatar", "avatars", "avatar's", "avatars'"),
		noun("BADGER", "badger", "badgers", "badger's", "badgers'"),
		noun("BARBARIAN", "barbarian", "barbarians", "barbarian's", "barbarians'"),
		noun("BASILISK", "basilisk", "basilisks", "basilisk's", "basilisks'"),
		noun("BAT", "bat", "bats", "bat's", "bats'"),
		noun("BEAR", "bear", "bears", "bear's", "bears'"),
		noun("BEAST", "beast", "beasts", "beast's", "beasts'"),
		noun("BEEBLE", "beeble", "beebles", "beeble's", "beebles'"),
		noun("BERSERKER", "berserker", "berserkers", "berserker's", "berserkers'"),
		noun("BIRD", "bird", "birds", "bird's", "birds'"),
		noun("BLINKMOTH", "blinkmoth", "blinkmoths", "blinkmoth's", "blinkmoths'"),
		noun("BOAR", "boar", "boars", "boar's", "boars'"),
		noun("BRINGER", "bringer", "bringers", "bringer's", "bringers'"),
		noun("BRUSHWAGG", "brushwagg", "brushwaggs", "brushwagg's", "brushwaggs'"),
		noun("CAMARID", "camarid", "camarids", "camarid's", "camarids'"),
		noun("CAMEL", "camel", "camels", "camel's", "camels'"),
		noun("CARIBOU", "caribou", "caribou", "caribou's", "caribou's"),
		noun("CARRIER", "carrier", "carriers", "carrier's", "carriers'"),
		noun("CAT", "cat", "cats", "cat's", "cats'"),
		noun("CENTAUR", "centaur", "centaurs", "centaur's", "centaurs'"),
		noun("CEPHALID", "cephalid", "cephalids", "cephalid's", "cephalids'"),
		noun("CHIMERA", "chimera", "chimeras", "chimera's", "chimeras'"),
		noun("CITIZEN", "citizen", "citizens", "citizen's", "citizens'"),
		noun("CLERIC", "cleric", "clerics", "cleric's", "clerics'"),
		noun("COCKATRICE", "cockatrice", "cockatrices", "cockatrice's", "cockatrices'"),
		noun("CONSTRUCT", "construct", "constructs", "construct's", "constructs'"),
		noun("COWARD", "coward", "cowards", "coward's", "cowards'"),
		noun("CRAB", "crab", "crabs", "crab's", "crabs'"),
		noun("CROCODILE", "crocodile", "crocodiles", "crocodile's", "crocodiles'"),
		noun("CYCLOPS", "cyclops", "cyclops", "cyclops's", "cyclops'"),
		noun("DAUTHI", "dauthi", "dauthis", "dauthi's", "dauthis'"),
		noun("DEMON", "demon", "demons", "demon's", "demons'"),
		noun("DESERTER", "deserter", "deserters", "deserter's", "deserters'"),
		noun("DEVIL", "devil", "devils", "devil's", "devils'"),
		noun("DJINN", "djinn", "djinns", "djinn's", "djinns'"),
		noun("DRAGON", "dragon", "dragons", "dragon's", "dragons'"),
		noun("DRAKE", "drake", "drakes", "drake's", "drakes'"),
		noun("DREADNOUGHT", "dreadnought", "dreadnoughts", "dreadnought's", "dreadnoughts'"),
		noun("DRONE", "drone", "drones", "drone's", "drones'"),
		noun("DRUID", "druid", "druids", "druid's", "druids'"),
		noun("DRYAD", "dryad", "dryads", "dryad's", "dryads'"),
		noun("DWARF", "dwarf", "dwarves", "dwarf's", "dwarves'"),
		noun("EFREET", "efreet", "efreets", "efreet's", "efreets'"),
		noun("ELDER", "elder", "elders", "elder's", "elders'"),
		noun("ELDRAZI", "eldrazi", "eldrazis", "eldrazi's", "eldrazis'"),
		noun("ELEMENTAL", "elemental", "elementals", "elemental's", "elementals'"),
		noun("ELEPHANT", "elephant", "elephants", "elephant's", "elephants'"),
		noun("ELF", "elf", "elves", "elf's", "elves'"),
		noun("ELK", "elk", "elks", "elk's", "elks'"),
		noun("EYE", "eye", "eyes", "eye's", "eyes'"),
		noun("FAERIE", "faerie", "faeries", "faerie's", "faeries'"),
		noun("FERRET", "ferret", "ferrets", "ferret's", "ferrets'"),
		noun("FISH", "fish", "fish", "fish's", "fish's"),
		noun("FLAGBEARER", "flagbearer", "flagbearers", "flagbearer's", "flagbearers'"),
		noun("FOX", "fox", "foxes", "fox's", "foxes'"),
		noun("FROG", "frog", "frogs", "frog's", "frogs'"),
		noun("FUNGUS", "fungus", "fungi", "fungus's", "fungi's"),
		noun("GARGOYLE", "gargoyle", "gargoyles", "gargoyle's", "gargoyles'"),
		noun("GERM", "germ", "germs", "germ's", "germs'"),
		noun("GIANT", "giant", "giants", "giant's", "giants'"),
		noun("GNOME", "gnome", "gnomes", "gnome's", "gnomes'"),
		noun("GOAT", "goat", "goats", "goat's", "goats'"),
		noun("GOBLIN", "goblin", "goblins", "goblin's", "goblins'"),
		noun("GOLEM", "golem", "golems", "golem's", "golems'"),
		noun("GORGON", "gorgon", "gorgons", "gorgon's", "gorgons'"),
		noun("GRAVEBORN", "graveborn", "graveborns", "graveborn's", "graveborns'"),
		noun("GREMLIN", "gremlin", "gremlins", "gremlin's", "gremlins'"),
		noun("GRIFFIN", "griffin", "griffins", "griffin's", "griffins'"),
		noun("HAG", "hag", "hags", "hag's", "hags'"),
		noun("HARPY", "harpy", "harpies", "harpy's", "harpies'"),
		noun("HELLION", "hellion", "hellions", "hellion's", "hellions'"),
		noun("HIPPO", "hippo", "hippos", "hippo's", "hippos'"),
		noun("HIPPOGRIFF", "hippogriff", "hippogriffs", "hippogriff's", "hippogriffs'"),
		noun("HOMARID", "homarid", "homarids", "homarid's", "homarids'"),
		noun("HOMUNCULUS", "homunculus", "homunculi", "homunculus's", "homunculi's"),
		noun("HORROR", "horror", "horrors", "horror's", "horrors'"),
		noun("HORSE", "horse", "horses", "horse's", "horses'"),
		noun("HOUND", "hound", "hounds", "hound's", "hounds'"),
		noun("HUMAN", "human", "humans", "human's", "humans'"),
		noun("HYDRA", "hydra", "hydras", "hydra's", "hydras'"),
		noun("HYENA", "hyena", "hyenas", "hyena's", "hyenas'"),
		noun("ILLUSION", "illusion", "illusions", "illusion's", "illusions'"),
		noun("IMP", "imp", "imps", "imp's", "imps'"),
		noun("INCARNATION", "incarnation", "incarnations", "incarnation's", "incarnations'"),
		noun("INSECT", "insect", "insects", "insect's", "insects'"),
		noun("JELLYFISH", "jellyfish", "jellyfish", "jellyfish's", "jellyfish's"),
		noun("JUGGERNAUT", "juggernaut", "juggernauts", "juggernaut's", "juggernauts'"),
		noun("KAVU", "kavu", "kavus", "kavu's", "kavus'"),
		noun("KIRIN", "kirin", "kirins", "kirin's", "kirins'"),
		noun("KITHKIN", "kithkin", "kithkins", "kithkin's", "kithkins'"),
		noun("KNIGHT", "knight", "knights", "knight's", "knights'"),
		noun("KOBOLD", "kobold", "kobolds", "kobold's", "kobolds'"),
		noun("KOR", "kor", "kors", "kor's", "kors'"),
		noun("KRAKEN", "kraken", "kraken", "kraken's", "kraken's"),
		noun("LAMMASU", "lammasu", "lammasu", "lammasu's", "lammasu's"),
		noun("LEECH", "leech", "leeches", "leech's", "leeches'"),
		noun("LEVIATHAN", "leviathan", "leviathans", "leviathan's", "leviathans'"),
		noun("LHURGOYF", "lhurgoyf", "lhurgoyfu", "lhurgoyf's", "lhurgoyfu's"),
		noun("LICID", "licid", "licids", "licid's", "licids'"),
		noun("LIZARD", "lizard", "lizards", "lizard's", "lizards'"),
		noun("MANTICORE", "manticore", "manticores", "manticore's", "manticores'"),
		noun("MASTICORE", "masticore", "masticores", "masticore's", "masticores'"),
		noun("MERCENARY", "mercenary", "mercenaries", "mercenary's", "mercenaries'"),
		noun("MERFOLK", "merfolk", "merfolk", "merfolk's", "merfolk's"),
		noun("METATHRAN", "metathran", "metathrans", "metathran's", "metathrans'"),
		noun("MINION", "minion", "minions", "minion's", "minions'"),
		noun("MINOTAUR", "minotaur", "minotaurs", "minotaur's", "minotaurs'"),
		noun("MONGER", "monger", "mongers", "monger's", "mongers'"),
		noun("MONGOOSE", "mongoose", "mongooses", "mongoose's", "mongooses'"),
		noun("MONK", "monk", "monks", "monk's", "monks'"),
		noun("MOONFOLK", "moonfolk", "moonfolk", "moonfolk's", "moonfolk's"),
		noun("MUTANT", "mutant", "mutants", "mutant's", "mutants'"),
		noun("MYR", "myr", "myrs", "myr's", "myrs'"),
		noun("MYSTIC", "mystic", "mystics", "mystic's", "mystics'"),
		noun("NAUTILUS", "nautilus", "nautiluses", "nautilus's", "nautiluses'"),
		noun("NEPHILIM", "nephilim", "nephilims", "nephilim's", "nephilims'"),
		noun("NIGHTMARE", "nightmare", "nightmares", "nightmare's", "nightmares'"),
		noun("NIGHTSTALKER", "nightstalker", "nightstalkers", "nightstalker's", "nightstalkers'"),
		noun("NINJA", "ninja", "ninjas", "ninja's", "ninjas'"),
		noun("NOGGLE", "noggle", "noggles", "noggle's", "noggles'"),
		noun("NOMAD", "nomad", "nomads", "nomad's", "nomads'"),
		noun("OCTOPUS", "octopus", "octopi", "octopus's", "octopi's"),
		noun("OGRE", "ogre", "ogres", "ogre's", "ogres'"),
		noun("OOZE", "ooze", "oozes", "ooze's", "oozes'"),
		noun("ORB", "orb", "orbs", "orb's", "orbs'"),
		noun("ORC", "orc", "orcs", "orc's", "orcs'"),
		noun("ORGG", "orgg", "orggs", "orgg's", "orggs'"),
		noun("OUPHE", "ouphe", "ouphes", "ouphe's", "ouphes'"),
		noun("OX", "ox", "oxen", "ox's", "oxen's"),
		noun("OYSTER", "oyster", "oysters", "oyster's", "oysters'"),
		noun("PEGASUS", "pegasus", "pegasus", "pegasus's", "pegasus's"),
		noun("PENTAVITE", "pentavite", "pentavites", "pentavite's", "pentavites'"),
		noun("PEST", "pest", "pests", "pest's", "pests'"),
		noun("PHELDDAGRIF", "phelddagrif", "phelddagrifs", "phelddagrif's", "phelddagrifs'"),
		noun("PHOENIX", "phoenix", "phoenix", "phoenix's", "phoenix's"),
		noun("PINCHER", "pincher", "pinchers", "pincher's", "pinchers'"),
		noun("PIRATE", "pirate", "pirates", "pirate's", "pirates'"),
		noun("PLANT", "plant", "plants", "plant's", "plants'"),
		noun("PRAETOR", "praetor", "praetors", "praetor's", "praetors'"),
		noun("PRISM", "prism", "prisms", "prism's", "prisms'"),
		noun("RABBIT", "rabbit", "rabbits", "rabbit's", "rabbits'"),
		noun("RAT", "rat", "rats", "rat's", "rats'"),
		noun("REBEL", "rebel", "rebels", "rebel's", "rebels'"),
		noun("REFLECTION", "reflection", "reflections", "reflection's", "reflections'"),
		noun("RHINO", "rhino", "rhinos", "rhino's", "rhinos'"),
		noun("RIGGER", "rigger", "riggers", "rigger's", "riggers'"),
		noun("ROGUE", "rogue", "rogues", "rogue's", "rogues'"),
		noun("SALAMANDER", "salamander", "salamanders", "salamander's", "salamanders'"),
		noun("SAMURAI", "samurai", "samurai", "samurai's", "samurai's"),
		noun("SAND", "sand", "sand", "sand's", "sand's"),
		noun("SAPROLING", "saproling", "saprolings", "saproling's", "saprolings'"),
		noun("SATYR", "satyr", "satyrs", "satyr's", "satyrs'"),
		noun("SCARECROW", "scarecrow", "scarecrows", "scarecrow's", "scarecrows'"),
		noun("SCORPION", "scorpion", "scorpions", "scorpion's", "scorpions'"),
		noun("SCOUT", "scout", "scouts", "scout's", "scouts'"),
		noun("SERF", "serf", "serfs", "serf's", "serfs'"),
		noun("SERPENT", "serpent", "serpents", "serpent's", "serpents'"),
		noun("SHADE", "shade", "shades", "shade's", "shades'"),
		noun("SHAMAN", "shaman", "shamans", "shaman's", "shamans'"),
		noun("SHAPESHIFTER", "shapeshifter", "shapeshifters", "shapeshifter's", "shapeshifters'"),
		noun("SHEEP", "sheep", "sheep", "sheep's", "sheep's"),
		noun("SIREN", "siren", "sirens", "siren's", "sirens'"),
		noun("SKELETON", "skeleton", "skeletons", "skeleton's", "skeletons'"),
		noun("SLITH", "slith", "sliths", "slith's", "sliths'"),
		noun("SLIVER", "sliver", "slivers", "sliver's", "slivers'"),
		noun("SLUG", "slug", "slugs", "slug's", "slugs'"),
		noun("SNAKE", "snake", "snakes", "snake's", "snakes'"),
		noun("SOLDIER", "soldier", "soldiers", "soldier's", "soldiers'"),
		noun("SOLTARI", "soltari", "soltari", "soltari's", "soltari's"),
		noun("SPAWN", "spawn", "spawn", "spawn's", "spawn's"),
		noun("SPECTER", "specter", "specters", "specter's", "specters'"),
		noun("SPELLSHAPER", "spellshaper", "spellshapers", "spellshaper's", "spellshapers'"),
		noun("SPHINX", "sphinx", "sphinx", "sphinx's", "sphinx's"),
		noun("SPIDER", "spider", "spiders", "spider's", "spiders'"),
		noun("SPIKE", "spike", "spikes", "spike's", "spikes'"),
		noun("SPIRIT", "spirit", "spirits", "spirit's", "spirits'"),
		noun("SPLINTER", "splinter", "splinters", "splinter's", "splinters'"),
		noun("SPONGE", "sponge", "sponges", "sponge's", "sponges'"),
		noun("SQUID", "squid", "squids", "squid's", "squids'"),
		noun("SQUIRREL", "squirrel", "squirrels", "squirrel's", "squirrels'"),
		noun("STARFISH", "starfish", "starfish", "starfish's", "starfish's"),
		noun("SURRAKAR", "surrakar", "surrakars", "surrakar's", "surrakars'"),
		noun("SURVIVOR", "survivor", "survivors", "survivor's", "survivors'"),
		noun("TETRAVITE", "tetravite", "tetravites", "tetravite's", "tetravites'"),
		noun("THALAKOS", "thalakos", "thalakos", "thalakos's", "thalakos'"),
		noun("THOPTER", "thopter", "thopters", "thopter's", "thopters'"),
		noun("THRULL", "thrull", "thrulls", "thrull's", "thrulls'"),
		noun("TREEFOLK", "treefolk", "treefolk", "treefolk's", "treefolk's"),
		noun("TRISKELAVITE", "triskelavite", "triskelavites", "triskelavite's", "triskelavites'"),
		noun("TROLL", "troll", "trolls", "troll's", "trolls'"),
		noun("TURTLE", "turtle", "turtles", "turtle's", "turtles'"),
		noun("UNICORN", "unicorn", "unicorns", "unicorn's", "unicorns'"),
		noun("VAMPIRE", "vampire", "vampires", "vampire's", "vampires'"),
		noun("VEDALKEN", "vedalken", "vedalkens", "vedalken's", "vedalkens'"),
		noun("VIASHINO", "viashino", "viashinos", "viashino's", "viashinos'"),
		noun("VOLVER", "volver", "volvers", "volver's", "volvers'"),
		noun("WALL", "wall", "walls", "wall's", "walls'"),
		noun("WARRIOR", "warrior", "warriors", "warrior's", "warriors'"),
		noun("WEIRD", "weird", "weirds", "weird's", "weirds'"),
		noun("WEREWOLF", "werewolf", "werewolves", "werewolf's", "werewolves'"),
		noun("WHALE", "whale", "whales", "whale's", "whales'"),
		noun("WIZARD", "wizard", "wizards", "wizard's", "wizards'"),
		noun("WOLF", "wolf", "wolves", "wolf's", "wolves'"),
		noun("WOLVERINE", "wolverine", "wolverines", "wolverine's", "wolverines'"),
		noun("WOMBAT", "wombat", "wombats", "wombat's", "wombats'"),
		noun("WORM", "worm", "worms", "worm's", "worms'"),
		noun("WRAITH", "wraith", "wraiths", "wraith's", "wraiths'"),
		noun("WURM", "wurm", "wurms", "wurm's", "wurms'"),
		noun("YETI", "yeti", "yeti", "yeti's", "yeti's"),
		noun("ZOMBIE", "zombie", "zombies", "zombie's", "zombies'"),
		noun("ZUBERA", "zubera", "zubera", "zubera's", "zubera's"),
	},
}

var enchantmentTypes = lexicon.Category{
	Name:    "enchantment-subtypes",
	Subtype: true,
	Entries: []lexicon.Entry{
		noun("AURA", "aura", "auras", "aura's", "auras'"),
		noun("CURSE", "curse", "curses", "curse's", "curses'"),
		noun("SHRINE", "shrine", "shrines", "shrine's", "shrines'"),
	},
}

var landTypes = lexicon.Category{
	Name:    "land-subtypes",
	Subtype: true,
	Entries: []lexicon.Entry{
		noun("DESERT", "desert", "deserts", "desert's", "deserts'"),
		noun("FOREST", "forest", "forests", "forest's", "forests'"),
		noun("ISLAND", "island", "islands", "island's", "islands'"),
		noun("LAIR", "lair", "lairs", "lair's", "lairs'"),
		noun("LOCUS", "locus", "loci", "locus's", "loci's"),
		noun("MINE", "mine", "mines", "mine's", "mines'"),
		noun("MOUNTAIN", "mountain", "mountains", "mountain's", "mountains'"),
		noun("PLAINS", "plains", "plains", "plains's", "plains'"),
		noun("POWER_PLANT", "power-plant", "power-plants", "power-plant's", "power-plants'"),
		noun("SWAMP", "swamp", "swamps", "swamp's", "swamps'"),
		noun("TOWER", "tower", "towers", "tower's", "towers'"),
		kw("URZAS", "urza's"),
	},
}

var planeTypes = lexicon.Category{
	Name:    "plane-subtypes",
	Subtype: true,
	Entries: []lexicon.Entry{
		kw("ALARA", "alara"),
		kw("ARKHOS", "arkhos"),
		kw("BOLASS_MEDITATION_REALM", "bolas's meditation realm"),
		kw("DOMINARIA", "dominaria"),
		kw("EQUILOR", "equilor"),
		kw("IQUATANA", "iquatana"),
		kw("IR", "ir"),
		kw("KALDHEIM", "kaldheim"),
		kw("KAMIGAWA", "kamigawa"),
		kw("KARSUS", "karsus"),
		kw("LORWYN", "lorwyn"),
		kw("LUVION", "luvion"),
		kw("MERCADIA", "mercadia"),
		kw("MIRRODIN", "mirrodin"),
		kw("MOAG", "moag"),
		kw("MURAGANDA", "muraganda"),
		kw("PHYREXIA", "phyrexia"),
		kw("PYRULEA", "pyrulea"),
		kw("RABIAH", "rabiah"),
		kw("RATH", "rath"),
		kw("RAVNICA", "ravnica"),
		kw("SEGOVIA", "segovia"),
		kw("SERRAS_REALM", "serra's realm"),
		kw("SHADOWMOOR", "shadowmoor"),
		kw("SHANDALAR", "shandalar"),
		kw("ULGROTHA", "ulgrotha"),
		kw("VALLA", "valla"),
		kw("WILDFIRE", "wildfire"),
		kw("ZENDIKAR", "zendikar"),
	},
}

var planeswalkerTypes = lexicon.Category{
	Name:    "planeswalker-subtypes",
	Subtype: true,
	Entries: []lexicon.Entry{
		kw("AJANI", "ajani"),
		kw("BOLAS", "bolas"),
		kw("CHANDRA", "chandra"),
		kw("ELSPETH", "elspeth"),
		kw("GARRUK", "garruk"),
		kw("GIDEON", "gideon"),
		kw("JACE", "jace"),
		kw("KARN", "karn"),
		kw("KOTH", "koth"),
		kw("LILIANA", "liliana"),
		kw("NISSA", "nissa"),
		kw("SARKHAN", "sarkhan"),
		kw("SORIN", "sorin"),
		kw("TEZZERET", "tezzeret"),
		kw("VENSER", "venser"),
	},
}

var spellTypes = lexicon.Category{
	Name:    "spell-subtypes",
	Subtype: true,
	Entries: []lexicon.Entry{
		kw("ARCANE", "arcane"),
		noun("TRAP", "trap", "traps", "trap's", "traps'"),
	},
}
