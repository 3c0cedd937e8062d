package lexicon

import (
	"strings"
	"testing"
)

func TestAssemble(t *testing.T) {
	cfg := Config{
		Categories: []Category{
			{
				Name: "core actions",
				Entries: []Entry{
					&Verb{
						Present:     Slot{Symbol: "PLAY", Forms: []string{"play", "plays"}},
						Past:        Slot{Symbol: "PLAYED", Forms: []string{"played"}},
						Progressive: Slot{Symbol: "PLAYING", Forms: []string{"playing"}},
					},
					&Simple{Symbol: "MAY", Forms: []string{"may"}},
				},
			},
		},
	}
	lex, err := Assemble(cfg, ConflictOverwrite)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tests := []struct {
		text string
		sym  SymbolName
	}{
		{text: "play", sym: "PLAY"},
		{text: "plays", sym: "PLAY"},
		{text: "played", sym: "PLAYED"},
		{text: "playing", sym: "PLAYING"},
		{text: "may", sym: "MAY"},
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
	if _, ok := lex.Symbol("playd"); ok {
		t.Errorf("an unregistered surface form was found")
	}
	if lex.WordCount() != 5 {
		t.Errorf("unexpected word count; want: 5, got: %v", lex.WordCount())
	}
	if len(lex.Collisions()) != 0 {
		t.Errorf("unexpected collisions: %v", lex.Collisions())
	}
}

func TestAssemble_subtypeCategory(t *testing.T) {
	cfg := Config{
		Categories: []Category{
			{
				Name:    "creature types",
				Subtype: true,
				Entries: []Entry{
					&Noun{
						Symbol:   "DRAGON",
						Singular: "dragon",
						Plural:   "dragons",
						SingPoss: "dragon's",
						PlPoss:   "dragons'",
					},
				},
			},
		},
	}
	lex, err := Assemble(cfg, ConflictReject)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// All subtype words surface under the uniform subtype symbols.
	tests := []struct {
		text string
		sym  SymbolName
	}{
		{text: "dragon", sym: SymbolSubtype},
		{text: "dragons", sym: SymbolSubtype},
		{text: "dragon's", sym: SymbolSubtypePoss},
		{text: "dragons'", sym: SymbolSubtypePoss},
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

	// The canonicalization map recovers the specific subtype, with the
	// possessives reduced to the same base as the plain forms.
	for _, text := range []string{"dragon", "dragons", "dragon's", "dragons'"} {
		base, ok := lex.CanonicalSubtype(text)
		if !ok {
			t.Fatalf("%q is not in the subtype map", text)
		}
		if base != "DRAGON" {
			t.Errorf("unexpected subtype for %q; want: DRAGON, got: %v", text, base)
		}
	}
	if _, ok := lex.CanonicalSubtype("play"); ok {
		t.Errorf("a non-subtype word was found in the subtype map")
	}
}

func TestAssemble_conflictPolicies(t *testing.T) {
	cfg := Config{
		Categories: []Category{
			{
				Name:    "land types",
				Subtype: true,
				Entries: []Entry{
					&Noun{
						Symbol:   "MINE",
						Singular: "mine",
						Plural:   "mines",
						SingPoss: "mine's",
						PlPoss:   "mines'",
					},
				},
			},
		},
		Counters: []string{"mine"},
	}

	// Under ConflictOverwrite the later claim wins and the overwrite is
	// recorded.
	lex, err := Assemble(cfg, ConflictOverwrite)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sym, ok := lex.Symbol("mine")
	if !ok {
		t.Fatalf("\"mine\" is not in the lexicon")
	}
	if sym != "MINE" {
		t.Errorf("unexpected symbol; want: MINE, got: %v", sym)
	}
	cols := lex.Collisions()
	if len(cols) != 1 {
		t.Fatalf("unexpected collisions: %v", cols)
	}
	c := cols[0]
	if c.Text != "mine" || c.Old != SymbolSubtype || c.New != "MINE" || c.Category != "counters" {
		t.Errorf("unexpected collision: %v", c)
	}

	// The subtype map is unaffected by the overwrite.
	base, ok := lex.CanonicalSubtype("mine")
	if !ok || base != "MINE" {
		t.Errorf("unexpected subtype for \"mine\"; want: MINE, got: %v", base)
	}

	// Under ConflictReject the same configuration fails.
	if _, err := Assemble(cfg, ConflictReject); err == nil {
		t.Fatalf("expected error didn't occur")
	}
}

func TestAssemble_aliasIsNotAConflict(t *testing.T) {
	cfg := Config{
		Categories: []Category{
			{
				Name: "connectives",
				Entries: []Entry{
					&Simple{Symbol: "WHEN", Forms: []string{"when"}},
					&Simple{Symbol: "WHEN", Forms: []string{"when", "whenever"}},
				},
			},
		},
	}
	lex, err := Assemble(cfg, ConflictReject)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lex.Collisions()) != 0 {
		t.Errorf("unexpected collisions: %v", lex.Collisions())
	}
}

func TestAssemble_flatCatalogs(t *testing.T) {
	cfg := Config{
		Counters: []string{"age", "+1/+1"},
		Numbers: []NumberWord{
			{Word: "zero", Value: 0},
			{Word: "twenty", Value: 20},
		},
		Ordinals: []OrdinalWord{
			{Word: "first", Rank: 1},
			{Word: "last", Rank: OrdinalLast},
		},
	}
	// "+1/+1" upper-cases to an invalid symbol name.
	if _, err := Assemble(cfg, ConflictOverwrite); err == nil {
		t.Fatalf("expected error didn't occur")
	}

	cfg.Counters = []string{"age"}
	lex, err := Assemble(cfg, ConflictOverwrite)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sym, _ := lex.Symbol("age"); sym != "AGE" {
		t.Errorf("unexpected symbol for \"age\"; want: AGE, got: %v", sym)
	}
	if sym, _ := lex.Symbol("zero"); sym != SymbolNumberWord {
		t.Errorf("unexpected symbol for \"zero\"; want: %v, got: %v", SymbolNumberWord, sym)
	}
	if sym, _ := lex.Symbol("last"); sym != SymbolOrdinalWord {
		t.Errorf("unexpected symbol for \"last\"; want: %v, got: %v", SymbolOrdinalWord, sym)
	}
	if v, ok := lex.NumberValue("twenty"); !ok || v != 20 {
		t.Errorf("unexpected value for \"twenty\"; want: 20, got: %v", v)
	}
	if _, ok := lex.NumberValue("first"); ok {
		t.Errorf("an ordinal word was found in the number map")
	}
	if r, ok := lex.OrdinalRank("first"); !ok || r != 1 {
		t.Errorf("unexpected rank for \"first\"; want: 1, got: %v", r)
	}
	if r, ok := lex.OrdinalRank("last"); !ok || r != OrdinalLast {
		t.Errorf("unexpected rank for \"last\"; want: %v, got: %v", OrdinalLast, r)
	}
}

func TestAssemble_reportsAllDefectsAtOnce(t *testing.T) {
	cfg := Config{
		Categories: []Category{
			{
				Name: "core actions",
				Entries: []Entry{
					&Verb{
						Present: Slot{Symbol: "PLAY", Forms: []string{"play"}},
					},
					&Simple{Symbol: "may", Forms: []string{"may"}},
				},
			},
		},
	}
	_, err := Assemble(cfg, ConflictOverwrite)
	if err == nil {
		t.Fatalf("expected error didn't occur")
	}
	// Both defective entries appear in the message, tagged with their
	// category.
	msg := err.Error()
	for _, want := range []string{"core actions", "PLAY", "may"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message doesn't mention %q: %v", want, msg)
		}
	}
}

func TestLexicon_Entries_sorted(t *testing.T) {
	cfg := Config{
		Categories: []Category{
			{
				Name: "connectives",
				Entries: []Entry{
					&Simple{Symbol: "WHEN", Forms: []string{"whenever", "when"}},
					&Simple{Symbol: "AND_OR", Forms: []string{"and/or"}},
					&Simple{Symbol: "MAY", Forms: []string{"may"}},
				},
			},
		},
	}
	lex, err := Assemble(cfg, ConflictReject)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	es := lex.Entries()
	for i := 1; i < len(es); i++ {
		if es[i-1].Text >= es[i].Text {
			t.Fatalf("entries are not sorted: %v", es)
		}
	}
	syms := lex.Symbols()
	want := []SymbolName{"AND_OR", "MAY", "WHEN"}
	if len(syms) != len(want) {
		t.Fatalf("unexpected symbols; want: %v, got: %v", want, syms)
	}
	for i, s := range syms {
		if s != want[i] {
			t.Errorf("unexpected symbol; want: %v, got: %v", want[i], s)
		}
	}
}
