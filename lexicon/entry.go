package lexicon

import (
	"fmt"
)

// SymbolName is the canonical identifier a tokenizer emits for a recognized
// surface form. A valid name consists of ASCII upper-case letters, digits,
// and underscores, and starts with a letter.
type SymbolName string

func (n SymbolName) String() string {
	return string(n)
}

func (n SymbolName) validate() error {
	if n == "" {
		return fmt.Errorf("a symbol name must not be empty")
	}
	for i, c := range string(n) {
		switch {
		case c >= 'A' && c <= 'Z':
		case i > 0 && (c == '_' || c >= '0' && c <= '9'):
		default:
			return fmt.Errorf("invalid symbol name %q", string(n))
		}
	}
	return nil
}

const (
	possSuffix   = "_POSS"
	plPossSuffix = "_PL_POSS"
)

func (n SymbolName) poss() SymbolName {
	return n + SymbolName(possSuffix)
}

func (n SymbolName) plPoss() SymbolName {
	return n + SymbolName(plPossSuffix)
}

// basePossessive strips a possessive suffix from a symbol name. The plural and
// the singular possessive reduce to the same base name.
func basePossessive(n SymbolName) (SymbolName, bool) {
	s := string(n)
	if len(s) > len(plPossSuffix) && s[len(s)-len(plPossSuffix):] == plPossSuffix {
		return SymbolName(s[:len(s)-len(plPossSuffix)]), true
	}
	if len(s) > len(possSuffix) && s[len(s)-len(possSuffix):] == possSuffix {
		return SymbolName(s[:len(s)-len(possSuffix)]), true
	}
	return n, false
}

// Mapping binds one surface form to its canonical symbol.
type Mapping struct {
	Text   string
	Symbol SymbolName
}

// Entry is a declared unit of vocabulary. The concrete variants are Simple,
// Verb, and Noun; no other implementations exist.
type Entry interface {
	// Expand produces every (surface form, symbol) pair the entry implies.
	// It fails when the declaration is structurally defective, which is a
	// configuration-integrity error, never a runtime condition.
	Expand() ([]Mapping, error)

	// Lemma identifies the entry in diagnostics.
	Lemma() string
}

// Simple is an invariant word: one or more interchangeable surface forms that
// all map to a single symbol.
type Simple struct {
	Symbol SymbolName
	Forms  []string
}

func (e *Simple) Lemma() string {
	return e.Symbol.String()
}

func (e *Simple) Expand() ([]Mapping, error) {
	if err := e.Symbol.validate(); err != nil {
		return nil, err
	}
	if len(e.Forms) == 0 {
		return nil, fmt.Errorf("entry must have at least one surface form")
	}
	ms := make([]Mapping, 0, len(e.Forms))
	for _, f := range e.Forms {
		if f == "" {
			return nil, fmt.Errorf("a surface form must not be empty")
		}
		ms = append(ms, Mapping{Text: f, Symbol: e.Symbol})
	}
	return ms, nil
}

// Slot is one tense of a Verb: the slot's own symbol plus the surface forms
// that map to it. Two slots of the same verb may intentionally share a symbol
// when their spellings coincide, as with irregular verbs like "cast".
type Slot struct {
	Symbol SymbolName
	Forms  []string
}

func (s Slot) empty() bool {
	return s.Symbol == "" && len(s.Forms) == 0
}

func (s Slot) expandInto(ms []Mapping) ([]Mapping, error) {
	if err := s.Symbol.validate(); err != nil {
		return nil, err
	}
	if len(s.Forms) == 0 {
		return nil, fmt.Errorf("slot %v must have at least one surface form", s.Symbol)
	}
	for _, f := range s.Forms {
		if f == "" {
			return nil, fmt.Errorf("slot %v: a surface form must not be empty", s.Symbol)
		}
		ms = append(ms, Mapping{Text: f, Symbol: s.Symbol})
	}
	return ms, nil
}

// Verb is a word with tenses. Present and past are required; progressive is
// optional. Act, also optional, is the noun meaning the act of performing the
// verb: ACTIVATION is an appropriate act for ACTIVATE, but ATTACKER would not
// be one for ATTACK.
type Verb struct {
	Present     Slot
	Past        Slot
	Progressive Slot
	Act         Slot
}

func (e *Verb) Lemma() string {
	return e.Present.Symbol.String()
}

func (e *Verb) Expand() ([]Mapping, error) {
	if e.Present.empty() || e.Past.empty() {
		return nil, fmt.Errorf("a verb must have both a present and a past slot")
	}
	var ms []Mapping
	var err error
	ms, err = e.Present.expandInto(ms)
	if err != nil {
		return nil, err
	}
	ms, err = e.Past.expandInto(ms)
	if err != nil {
		return nil, err
	}
	for _, opt := range []Slot{e.Progressive, e.Act} {
		if opt.empty() {
			continue
		}
		ms, err = opt.expandInto(ms)
		if err != nil {
			return nil, err
		}
	}
	return ms, nil
}

// Noun declares one base symbol and exactly four surface strings. Singular
// and plural both map to the base symbol; the possessives map to derived
// BASE_POSS and BASE_PL_POSS symbols.
type Noun struct {
	Symbol   SymbolName
	Singular string
	Plural   string
	SingPoss string
	PlPoss   string
}

func (e *Noun) Lemma() string {
	return e.Symbol.String()
}

func (e *Noun) Expand() ([]Mapping, error) {
	if err := e.Symbol.validate(); err != nil {
		return nil, err
	}
	if e.Singular == "" || e.Plural == "" || e.SingPoss == "" || e.PlPoss == "" {
		return nil, fmt.Errorf("a noun must have all four of singular, plural, singular-possessive, and plural-possessive forms")
	}
	return []Mapping{
		{Text: e.Singular, Symbol: e.Symbol},
		{Text: e.Plural, Symbol: e.Symbol},
		{Text: e.SingPoss, Symbol: e.Symbol.poss()},
		{Text: e.PlPoss, Symbol: e.Symbol.plPoss()},
	}, nil
}
