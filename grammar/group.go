// Package grammar compiles an assembled lexicon into a deterministic lexer
// specification: surface forms are partitioned into dispatch groups keyed by
// stem, ordered for longest-match-first resolution, and rendered as a lexer
// grammar document and as a compiled lexical specification.
package grammar

import (
	"sort"
	"strings"

	"github.com/oraclelex/oraclelex/lexicon"
)

// stemDelimiters end a stem. A multi-word keyword is split at its first word
// only when that word is itself vocabulary elsewhere, so "first strike" lexes
// as two tokens while "cumulative upkeep" stays atomic.
const stemDelimiters = " '-/"

// Stem returns the dispatch key for a surface form: the upper-cased prefix
// preceding the first space, apostrophe, hyphen, or slash, or the whole
// upper-cased form when none occurs.
func Stem(text string) string {
	if i := strings.IndexAny(text, stemDelimiters); i >= 0 {
		text = text[:i]
	}
	return strings.ToUpper(text)
}

// Alternative is one surface form within a dispatch group.
type Alternative struct {
	Text   string
	Symbol lexicon.SymbolName
}

// DispatchGroup is one lexer rule: every surface form sharing a stem, ordered
// by descending text length and then ascending lexicographically. A greedy
// tokenizer built from the rule therefore never lets a shorter alternative
// shadow a longer one it prefixes ("play" cannot shadow "played").
type DispatchGroup struct {
	Stem string
	Alts []Alternative
}

// Override reports whether the alternative must carry an explicit annotation
// binding its matched text to its own symbol because that symbol differs from
// the group's rule name.
func (g *DispatchGroup) Override(a Alternative) bool {
	return a.Symbol.String() != g.Stem
}

// Group partitions the lexicon into dispatch groups. Groups are ordered by
// descending stem length, then ascending lexicographically; the ordering is
// semantically inert since each group is an independently named rule, but it
// keeps the output reproducible and reviewable. The result is independent of
// input iteration order.
func Group(lex *lexicon.Lexicon) []*DispatchGroup {
	byStem := map[string]*DispatchGroup{}
	for _, m := range lex.Entries() {
		stem := Stem(m.Text)
		g, ok := byStem[stem]
		if !ok {
			g = &DispatchGroup{Stem: stem}
			byStem[stem] = g
		}
		g.Alts = append(g.Alts, Alternative{Text: m.Text, Symbol: m.Symbol})
	}

	groups := make([]*DispatchGroup, 0, len(byStem))
	for _, g := range byStem {
		sort.Slice(g.Alts, func(i, j int) bool {
			if len(g.Alts[i].Text) != len(g.Alts[j].Text) {
				return len(g.Alts[i].Text) > len(g.Alts[j].Text)
			}
			return g.Alts[i].Text < g.Alts[j].Text
		})
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool {
		if len(groups[i].Stem) != len(groups[j].Stem) {
			return len(groups[i].Stem) > len(groups[j].Stem)
		}
		return groups[i].Stem < groups[j].Stem
	})
	return groups
}
