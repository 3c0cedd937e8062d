package grammar

import (
	"strings"
	"testing"

	"github.com/oraclelex/oraclelex/lexicon"
	"github.com/oraclelex/oraclelex/vocabulary"
)

func TestLexSpec(t *testing.T) {
	cfg := lexicon.Config{
		Categories: []lexicon.Category{
			{
				Name: "core actions",
				Entries: []lexicon.Entry{
					&lexicon.Verb{
						Present: lexicon.Slot{Symbol: "PLAY", Forms: []string{"play", "plays"}},
						Past:    lexicon.Slot{Symbol: "PLAYED", Forms: []string{"played"}},
					},
				},
			},
		},
	}
	lex, err := lexicon.Assemble(cfg, lexicon.ConflictReject)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	spec := LexSpec(Group(lex))
	if len(spec.Entries) != 3 {
		t.Fatalf("unexpected entry count; want: 3, got: %v", len(spec.Entries))
	}
	if spec.Entries[0].Kind != KindWhiteSpace {
		t.Fatalf("the first entry must be the whitespace entry, got: %v", spec.Entries[0].Kind)
	}

	// Kind names are lower-cased stems; patterns list the longest
	// alternative first.
	tests := []struct {
		kind    string
		pattern string
	}{
		{kind: "played", pattern: "played"},
		{kind: "play", pattern: "plays|play"},
	}
	for i, tt := range tests {
		e := spec.Entries[i+1]
		if string(e.Kind) != tt.kind {
			t.Errorf("unexpected kind; want: %v, got: %v", tt.kind, e.Kind)
		}
		if string(e.Pattern) != tt.pattern {
			t.Errorf("unexpected pattern for %v; want: %v, got: %v", tt.kind, tt.pattern, e.Pattern)
		}
	}
}

func TestLexSpec_fullVocabulary(t *testing.T) {
	lex, err := lexicon.Assemble(vocabulary.Config(), lexicon.ConflictOverwrite)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	groups := Group(lex)
	spec := LexSpec(groups)
	if len(spec.Entries) != len(groups)+1 {
		t.Fatalf("unexpected entry count; want: %v, got: %v", len(groups)+1, len(spec.Entries))
	}
	for i, g := range groups {
		e := spec.Entries[i+1]
		if string(e.Kind) != strings.ToLower(g.Stem) {
			t.Errorf("unexpected kind for group %v: %v", g.Stem, e.Kind)
		}
		if e.Pattern == "" {
			t.Errorf("group %v produced an empty pattern", g.Stem)
		}
	}
}
