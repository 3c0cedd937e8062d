package grammar

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/oraclelex/oraclelex/lexicon"
	"github.com/oraclelex/oraclelex/vocabulary"
)

func TestEmit(t *testing.T) {
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
					&lexicon.Simple{Symbol: "DOESNT", Forms: []string{"doesn't"}},
				},
			},
		},
	}
	lex, err := lexicon.Assemble(cfg, lexicon.ConflictReject)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := Emit(lex, Group(lex), EmitOptions{})
	want := `lexer grammar Keywords;

/* Keywords and misc text
 *
 * Autogenerated by oraclelex
 * DO NOT EDIT DIRECTLY
 */

options {
    language = Python;
}

tokens {
    DOESNT;
    PLAY;
    PLAYED;
    PLAYING;
}

PLAYING : 'playing';
PLAYED : 'played';
DOESN : 'doesn\'t' {$type = DOESNT};
PLAY : 'plays'
     | 'play';
`
	if string(doc) != want {
		t.Fatalf("unexpected document;\n--- want\n%v\n--- got\n%v", want, string(doc))
	}
}

func TestEmit_options(t *testing.T) {
	cfg := lexicon.Config{
		Counters: []string{"age"},
	}
	lex, err := lexicon.Assemble(cfg, lexicon.ConflictReject)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := string(Emit(lex, Group(lex), EmitOptions{Name: "Oracle", Language: "Java"}))
	if !strings.HasPrefix(doc, "lexer grammar Oracle;\n") {
		t.Errorf("unexpected grammar name: %v", doc)
	}
	if !strings.Contains(doc, "language = Java;") {
		t.Errorf("unexpected target language: %v", doc)
	}
}

func TestEmit_deterministic(t *testing.T) {
	// Two independent assemblies of the same configuration render
	// byte-identical documents.
	var docs [][]byte
	for i := 0; i < 2; i++ {
		lex, err := lexicon.Assemble(vocabulary.Config(), lexicon.ConflictOverwrite)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		docs = append(docs, Emit(lex, Group(lex), EmitOptions{}))
	}
	if !bytes.Equal(docs[0], docs[1]) {
		t.Fatalf("regeneration is not deterministic")
	}
}

func TestEmit_declaresEverySymbol(t *testing.T) {
	lex, err := lexicon.Assemble(vocabulary.Config(), lexicon.ConflictOverwrite)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := string(Emit(lex, Group(lex), EmitOptions{}))
	for _, sym := range lex.Symbols() {
		decl := fmt.Sprintf("    %v;\n", sym)
		if !strings.Contains(doc, decl) {
			t.Errorf("symbol %v is not declared in the tokens block", sym)
		}
	}
}

func TestQuoteLiteral(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{text: "play", want: "'play'"},
		{text: "doesn't", want: `'doesn\'t'`},
		{text: "dragons'", want: `'dragons\''`},
		{text: "and/or", want: "'and/or'"},
		{text: "cumulative upkeep", want: "'cumulative upkeep'"},
	}
	for _, tt := range tests {
		if got := quoteLiteral(tt.text); got != tt.want {
			t.Errorf("unexpected literal for %q; want: %v, got: %v", tt.text, tt.want, got)
		}
	}
}
