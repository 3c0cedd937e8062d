package vocabulary

// counterKinds are the counter names. Each maps to a symbol equal to its
// own upper-cased name.
var counterKinds = []string{
	"age", "aim", "arrow", "arrowhead", "awakening", "blaze",
	"blood", "bounty", "bribery", "carrion", "charge", "corpse",
	"credit", "cube", "currency", "death", "delay", "depletion",
	"devotion", "divinity", "doom", "dream", "echo", "elixir",
	"energy", "eon", "fade", "fate", "feather", "flood",
	"fungus", "fuse", "glyph", "gold", "growth", "hatchling",
	"healing", "hoofprint", "hourglass", "hunger", "ice", "infection",
	"intervention", "javelin", "ki", "level", "luck", "magnet",
	"mannequin", "matrix", "mine", "mining", "mire", "music",
	"net", "omen", "ore", "page", "pain", "paralyzation",
	"petal", "phylactery", "pin", "plague", "poison", "polyp",
	"pressure", "pupa", "quest", "rust", "scream", "shell",
	"shield", "shred", "sleep", "sleight", "soot", "spore",
	"storage", "strife", "study", "theft", "tide", "time",
	"tower", "training", "trap", "treasure", "velocity", "verse",
	"vitality", "wage", "winch", "wind", "wish",
}
