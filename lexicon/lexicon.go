package lexicon

import (
	"fmt"
	"sort"
	"strings"

	verr "github.com/oraclelex/oraclelex/error"
)

// Symbols shared by whole word families rather than individual lemmas.
// Subtype words all surface as OBJ_SUBTYPE in the lexicon; the subtype
// canonicalization map recovers which subtype a matched word denotes.
const (
	SymbolSubtype     = SymbolName("OBJ_SUBTYPE")
	SymbolSubtypePoss = SymbolName("OBJ_SUBTYPE_POSS")
	SymbolNumberWord  = SymbolName("NUMBER_WORD")
	SymbolOrdinalWord = SymbolName("ORDINAL_WORD")
)

// OrdinalLast is the rank reported for the ordinal word "last".
const OrdinalLast = -1

// Category is an ordered list of lemma entries sharing a semantic family.
// A subtype category folds into the lexicon under the uniform OBJ_SUBTYPE
// symbols instead of its entries' own symbols.
type Category struct {
	Name    string
	Subtype bool
	Entries []Entry
}

// NumberWord is a cardinal-number word with its value.
type NumberWord struct {
	Word  string
	Value int
}

// OrdinalWord is an ordinal word with its rank. "last" has rank OrdinalLast.
type OrdinalWord struct {
	Word string
	Rank int
}

// Config is the complete vocabulary configuration. Categories merge in slice
// order, then the flat catalogs merge in the order counters, numbers,
// ordinals.
type Config struct {
	Categories []Category
	Counters   []string
	Numbers    []NumberWord
	Ordinals   []OrdinalWord
}

// ConflictPolicy decides what happens when two entries claim the same surface
// form with different symbols. Two claims with an identical symbol are an
// alias and are permitted under either policy.
type ConflictPolicy int

const (
	// ConflictOverwrite keeps the later claim, following the documented merge
	// order. Every overwrite is recorded and reported by Collisions.
	ConflictOverwrite ConflictPolicy = iota

	// ConflictReject fails assembly on the first conflicting claim.
	ConflictReject
)

// Collision records one surface form claimed with two different symbols.
type Collision struct {
	Text     string
	Old      SymbolName
	New      SymbolName
	Category string
}

// Lexicon is the assembled mapping from surface forms to canonical symbols,
// together with the subtype canonicalization map and the auxiliary number and
// ordinal lookups. A Lexicon never changes once Assemble returns it.
type Lexicon struct {
	words      map[string]SymbolName
	subtypes   map[string]SymbolName
	numbers    map[string]int
	ordinals   map[string]int
	collisions []Collision
}

// Assemble folds the configuration into a Lexicon. It fails when any entry is
// structurally defective, or, under ConflictReject, when two entries conflict.
// All defects are reported at once.
func Assemble(cfg Config, policy ConflictPolicy) (*Lexicon, error) {
	lex := &Lexicon{
		words:    map[string]SymbolName{},
		subtypes: map[string]SymbolName{},
		numbers:  map[string]int{},
		ordinals: map[string]int{},
	}

	var errs verr.EntryErrors
	insert := func(text string, sym SymbolName, category, lemma string) {
		old, claimed := lex.words[text]
		if claimed && old != sym {
			lex.collisions = append(lex.collisions, Collision{
				Text:     text,
				Old:      old,
				New:      sym,
				Category: category,
			})
			if policy == ConflictReject {
				errs = append(errs, &verr.EntryError{
					Cause:    fmt.Errorf("surface form %q already maps to %v, cannot remap to %v", text, old, sym),
					Category: category,
					Lemma:    lemma,
				})
				return
			}
		}
		lex.words[text] = sym
	}

	for _, c := range cfg.Categories {
		for _, e := range c.Entries {
			ms, err := e.Expand()
			if err != nil {
				errs = append(errs, &verr.EntryError{
					Cause:    err,
					Category: c.Name,
					Lemma:    e.Lemma(),
				})
				continue
			}
			for _, m := range ms {
				if !c.Subtype {
					insert(m.Text, m.Symbol, c.Name, e.Lemma())
					continue
				}
				if base, isPoss := basePossessive(m.Symbol); isPoss {
					lex.subtypes[m.Text] = base
					insert(m.Text, SymbolSubtypePoss, c.Name, e.Lemma())
				} else {
					lex.subtypes[m.Text] = m.Symbol
					insert(m.Text, SymbolSubtype, c.Name, e.Lemma())
				}
			}
		}
	}

	for _, name := range cfg.Counters {
		sym := SymbolName(strings.ToUpper(name))
		if err := sym.validate(); err != nil {
			errs = append(errs, &verr.EntryError{
				Cause:    err,
				Category: "counters",
				Lemma:    name,
			})
			continue
		}
		insert(name, sym, "counters", name)
	}
	for _, n := range cfg.Numbers {
		if n.Word == "" {
			errs = append(errs, &verr.EntryError{
				Cause:    fmt.Errorf("a number word must not be empty"),
				Category: "numbers",
			})
			continue
		}
		insert(n.Word, SymbolNumberWord, "numbers", n.Word)
		lex.numbers[n.Word] = n.Value
	}
	for _, o := range cfg.Ordinals {
		if o.Word == "" {
			errs = append(errs, &verr.EntryError{
				Cause:    fmt.Errorf("an ordinal word must not be empty"),
				Category: "ordinals",
			})
			continue
		}
		insert(o.Word, SymbolOrdinalWord, "ordinals", o.Word)
		lex.ordinals[o.Word] = o.Rank
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return lex, nil
}

// Symbol returns the canonical symbol the tokenizer emits for a surface form.
func (l *Lexicon) Symbol(text string) (SymbolName, bool) {
	s, ok := l.words[text]
	return s, ok
}

// CanonicalSubtype returns the specific subtype symbol a subtype-family word
// denotes. Possessive forms canonicalize to the same base as the plain forms:
// both "dragon's" and "dragons'" yield DRAGON.
func (l *Lexicon) CanonicalSubtype(text string) (SymbolName, bool) {
	s, ok := l.subtypes[text]
	return s, ok
}

// NumberValue returns the value of a cardinal-number word.
func (l *Lexicon) NumberValue(word string) (int, bool) {
	v, ok := l.numbers[word]
	return v, ok
}

// OrdinalRank returns the rank of an ordinal word, OrdinalLast for "last".
func (l *Lexicon) OrdinalRank(word string) (int, bool) {
	v, ok := l.ordinals[word]
	return v, ok
}

// WordCount returns the number of distinct surface forms.
func (l *Lexicon) WordCount() int {
	return len(l.words)
}

// Entries returns every (surface form, symbol) pair, sorted by surface form
// so that iteration order never depends on map order.
func (l *Lexicon) Entries() []Mapping {
	ms := make([]Mapping, 0, len(l.words))
	for text, sym := range l.words {
		ms = append(ms, Mapping{Text: text, Symbol: sym})
	}
	sort.Slice(ms, func(i, j int) bool {
		return ms[i].Text < ms[j].Text
	})
	return ms
}

// Symbols returns the distinct canonical symbols, sorted ascending.
func (l *Lexicon) Symbols() []SymbolName {
	seen := map[SymbolName]struct{}{}
	for _, sym := range l.words {
		seen[sym] = struct{}{}
	}
	syms := make([]SymbolName, 0, len(seen))
	for sym := range seen {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool {
		return syms[i] < syms[j]
	})
	return syms
}

// Collisions returns every overwrite the merge performed, in merge order.
func (l *Lexicon) Collisions() []Collision {
	cs := make([]Collision, len(l.collisions))
	copy(cs, l.collisions)
	return cs
}
