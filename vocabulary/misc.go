package vocabulary

import "github.com/oraclelex/oraclelex/lexicon"

// Articles, conjunctions, and other glue words.
var miscWords = lexicon.Category{
	Name:    "misc",
	Entries: []lexicon.Entry{
		kw("A", "a", "an"),
		kw("ALSO", "also"),
		kw("AND", "and"),
		kw("AND_OR", "and/or"),
		kw("AS", "as"),
		kw("AT", "at"),
		kw("BUT", "but"),
		kw("EITHER", "either"),
		kw("EXCESS", "excess"),
		kw("EXTRA", "extra"),
		kw("FOR", "for"),
		kw("HOW", "how"),
		kw("MAKE", "make"),
		kw("MUST", "must"),
		kw("NEW", "new"),
		kw("NON", "non-"),
		kw("NOT", "not"),
		kw("OF", "of"),
		kw("OR", "or"),
		kw("PART", "part"),
		kw("SO", "so"),
		kw("THE", "the"),
		kw("THEN", "then"),
		kw("TRUE", "true"),
		kw("WITH", "with"),
		kw("WITHOUT", "without"),
		noun("WORD", "word", "words", "word's", "words'"),
	},
}
