package vocabulary

import "github.com/oraclelex/oraclelex/lexicon"

// Zones and game spaces.
var zones = lexicon.Category{
	Name:    "zones",
	Entries: []lexicon.Entry{
		kw("BATTLEFIELD", "battlefield"),
		kw("COMMAND", "command"),
		kw("EXILE", "exile"),
		noun("GRAVEYARD", "graveyard", "graveyards", "graveyard's", "graveyards'"),
		noun("HAND", "hand", "hands", "hand's", "hands'"),
		noun("LIBRARY", "library", "libraries", "library's", "libraries'"),
		kw("STACK", "stack"),
		noun("DECK", "deck", "decks", "deck's", "decks'"),
		noun("GAME", "game", "games", "game's", "games'"),
		noun("SIDEBOARD", "sideboard", "sideboards", "sideboard's", "sideboards'"),
		noun("SUBGAME", "subgame", "subgames", "subgame's", "subgames"),
		noun("ZONE", "zone", "zones", "zone's", "zones'"),
		kw("OUTSIDE", "outside"),
		kw("ANYWHERE", "anywhere"),
	},
}
