package grammar

import (
	"strings"
	"testing"

	"github.com/oraclelex/oraclelex/lexicon"
)

func TestTokenizer(t *testing.T) {
	cfg := lexicon.Config{
		Categories: []lexicon.Category{
			{
				Name: "core actions",
				Entries: []lexicon.Entry{
					&lexicon.Verb{
						Present:     lexicon.Slot{Symbol: "PLAY", Forms: []string{"play", "plays"}},
						Past:        lexicon.Slot{Symbol: "PLAYED", Forms: []string{"played"}},
						Progressive: lexicon.Slot{Symbol: "PLAYING", Forms: []string{"playing"}},
					},
				},
			},
		},
	}
	lex, err := lexicon.Assemble(cfg, lexicon.ConflictReject)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	clspec, err := CompileLexSpec(Group(lex))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tz, err := NewTokenizer(clspec, strings.NewReader("plays played\nplaying"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Whitespace never surfaces; kinds are lower-cased stems; the text is
	// the exact lexeme. The greedy match takes "plays" over "play".
	wants := []*Token{
		{KindName: "play", Text: "plays", Row: 0, Col: 0},
		{KindName: "played", Text: "played", Row: 0, Col: 6},
		{KindName: "playing", Text: "playing", Row: 1, Col: 0},
	}
	for _, want := range wants {
		tok, err := tz.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok == nil {
			t.Fatalf("unexpected end of input; want: %v", want)
		}
		if *tok != *want {
			t.Fatalf("unexpected token; want: %v, got: %v", want, tok)
		}
	}
	tok, err := tz.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok != nil {
		t.Fatalf("expected end of input, got: %v", tok)
	}
}

func TestTokenizer_invalidInput(t *testing.T) {
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
	clspec, err := CompileLexSpec(Group(lex))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tz, err := NewTokenizer(clspec, strings.NewReader("play qqq played"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tok, err := tz.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok == nil || tok.Invalid || tok.Text != "play" {
		t.Fatalf("unexpected token: %v", tok)
	}

	// A run of unmatchable input comes back as one invalid token, and the
	// tokenizer recovers afterward.
	tok, err = tz.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok == nil || !tok.Invalid || tok.Text != "qqq" {
		t.Fatalf("unexpected token: %v", tok)
	}

	tok, err = tz.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok == nil || tok.Invalid || tok.Text != "played" {
		t.Fatalf("unexpected token: %v", tok)
	}
}
