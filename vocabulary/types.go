package vocabulary

import "github.com/oraclelex/oraclelex/lexicon"

// Object, player, and card types.
var types = lexicon.Category{
	Name:    "types",
	Entries: []lexicon.Entry{
		noun("TYPE", "type", "types", "type's", "types'"),
		noun("SUPERTYPE", "supertype", "supertypes", "supertype's", "supertypes'"),
		noun("SUBTYPE", "subtype", "subtypes", "subtype's", "subtypes'"),
		noun("OBJECT", "object", "objects", "object's", "objects'"),
		noun("ABILITY", "ability", "abilities", "ability's", "abilities'"),
		noun("CARD", "card", "cards", "card's", "cards'"),
		noun("COPY", "copy", "copies", "copy's", "copies'"),
		noun("COUNTER", "counter", "counters", "counter's", "counters'"),
		noun("EFFECT", "effect", "effects", "effect's", "effects'"),
		noun("PERMANENT", "permanent", "permanents", "permanent's", "permanents'"),
		noun("SOURCE", "source", "sources", "source's", "sources'"),
		noun("SPELL", "spell", "spells", "spell's", "spells'"),
		noun("TOKEN", "token", "tokens", "token's", "tokens'"),

		// Card types.
		noun("ARTIFACT", "artifact", "artifacts", "artifact's", "artifacts'"),
		noun("CREATURE", "creature", "creatures", "creature's", "creatures'"),
		noun("ENCHANTMENT", "enchantment", "enchantments", "enchantment's", "enchantments'"),
		noun("INSTANT", "instant", "instants", "instant's", "instants'"),
		noun("LAND", "land", "lands", "land's", "lands'"),
		noun("PLANESWALKER", "planeswalker", "planeswalkers", "planeswalker's", "planeswalkers'"),
		noun("SORCERY", "sorcery", "sorceries", "sorcery's", "sorceries'"),
		noun("TRIBAL", "tribal", "tribals", "tribal's", "tribals'"),

		// Player types.
		noun("PLAYER", "player", "players", "player's", "players'"),
		noun("TEAMMATE", "teammate", "teammates", "teammate's", "teammates'"),
		noun("OPPONENT", "opponent", "opponents", "opponent's", "opponents'"),
		noun("CONTROLLER", "controller", "controllers", "controller's", "controllers'"),
		noun("OWNER", "owner", "owners", "owner's", "owners'"),
		noun("BIDDER", "bidder", "bidders", "bidder's", "bidders'"),
		kw("ACTIVE", "active"),
		kw("ATTACKING", "attacking"),
		kw("DEFENDING", "defending"),

		// Mana and color words.
		noun("MANA", "mana", "mana", "mana's", "mana's"),
		noun("COLOR", "color", "colors", "color's", "colors'"),
		kw("WHITE", "white"),
		kw("BLUE", "blue"),
		kw("BLACK", "black"),
		kw("RED", "red"),
		kw("GREEN", "green"),
		kw("COLORLESS", "colorless"),
		kw("COLORED", "colored"),
		kw("MONOCOLORED", "monocolored"),
		kw("MULTICOLORED", "multicolored"),

		// Other object types.
		noun("COMMANDER", "commander", "commanders", "commander's", "commanders'"),
		noun("EMBLEM", "emblem", "emblems", "emblem's", "emblems'"),
		noun("PLANE", "plane", "planes", "plane's", "planes'"),
		noun("SCHEME", "scheme", "schemes", "scheme's", "schemes'"),
		noun("VANGUARD", "vanguard", "vanguards", "vanguard's", "vanguards'"),

		// Supertypes.
		kw("BASIC", "basic"),
		kw("LEGENDARY", "legendary"),
		kw("SNOW", "snow"),
		kw("WORLD", "world"),
		kw("ONGOING", "ongoing"),
	},
}
