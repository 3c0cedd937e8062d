package vocabulary

import (
	"testing"

	"github.com/oraclelex/oraclelex/lexicon"
)

func TestConfig_assembles(t *testing.T) {
	lex, err := lexicon.Assemble(Config(), lexicon.ConflictOverwrite)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		text string
		sym  lexicon.SymbolName
	}{
		{text: "play", sym: "PLAY"},
		{text: "plays", sym: "PLAY"},
		{text: "played", sym: "PLAYED"},
		{text: "may", sym: "MAY"},
		{text: "doesn't", sym: "DONT"},
		{text: "cumulative upkeep", sym: "CUMULATIVE_UPKEEP"},
		{text: "dragon", sym: lexicon.SymbolSubtype},
		{text: "dragons'", sym: lexicon.SymbolSubtypePoss},
		{text: "age", sym: "AGE"},
		{text: "twenty", sym: lexicon.SymbolNumberWord},
		{text: "last", sym: lexicon.SymbolOrdinalWord},
	}
	for _, tt := range tests {
		sym, ok := lex.Symbol(tt.text)
		if !ok {
			t.Fatalf("%q is not in the lexicon", tt.text)
		}
		if sym != tt.sym {
			t.Errorf("unexpected symbol for %q; want: %v, got: %v", tt.text, tt.sym, sym)
		}
	}

	if base, ok := lex.CanonicalSubtype("dragons'"); !ok || base != "DRAGON" {
		t.Errorf("unexpected subtype for \"dragons'\"; want: DRAGON, got: %v", base)
	}
	if v, ok := lex.NumberValue("twenty"); !ok || v != 20 {
		t.Errorf("unexpected value for \"twenty\"; want: 20, got: %v", v)
	}
	if r, ok := lex.OrdinalRank("last"); !ok || r != lexicon.OrdinalLast {
		t.Errorf("unexpected rank for \"last\"; want: %v, got: %v", lexicon.OrdinalLast, r)
	}
}

func TestConfig_knownCollisions(t *testing.T) {
	lex, err := lexicon.Assemble(Config(), lexicon.ConflictOverwrite)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A handful of words are both a subtype and a counter kind. Counters
	// merge last and win, while the subtype map still knows the words.
	for _, text := range []string{"fungus", "mine", "tower", "trap"} {
		sym, ok := lex.Symbol(text)
		if !ok {
			t.Fatalf("%q is not in the lexicon", text)
		}
		if sym == lexicon.SymbolSubtype {
			t.Errorf("counter kind %q was not given precedence", text)
		}
		if _, ok := lex.CanonicalSubtype(text); !ok {
			t.Errorf("%q is missing from the subtype map", text)
		}
	}

	collided := map[string]bool{}
	for _, c := range lex.Collisions() {
		collided[c.Text] = true
	}
	for _, text := range []string{"fungus", "mine", "tower", "trap"} {
		if !collided[text] {
			t.Errorf("no collision was recorded for %q", text)
		}
	}
}

func TestConfig_strictPolicyRejectsShippedVocabulary(t *testing.T) {
	// The shipped vocabulary intentionally contains overlapping words, so
	// the strict policy cannot load it.
	if _, err := lexicon.Assemble(Config(), lexicon.ConflictReject); err == nil {
		t.Fatalf("expected error didn't occur")
	}
}

func TestCategories_order(t *testing.T) {
	cs := Categories()
	if len(cs) == 0 {
		t.Fatalf("no categories")
	}
	if cs[0].Name != "core-actions" {
		t.Errorf("unexpected first category: %v", cs[0].Name)
	}
	var subtypeSeen bool
	for _, c := range cs {
		if c.Subtype {
			subtypeSeen = true
		}
		if len(c.Entries) == 0 {
			t.Errorf("category %v has no entries", c.Name)
		}
	}
	if !subtypeSeen {
		t.Errorf("no subtype category is configured")
	}
}
