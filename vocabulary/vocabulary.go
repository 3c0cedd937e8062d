// Package vocabulary holds the category tables: the enumerated lemmas of the
// Magic rules-text vocabulary, as static configuration for the lexicon
// assembler.
//
// Because most verbs have several present-tense spellings depending on the
// subject, the present slot lists all of them under one symbol (both
// "discard" and "discards" surface as DISCARD), and noun symbols cover both
// singular and plural. The resulting language is wider than real rules text,
// allowing constructions like "you discards"; the goal is to recognize every
// card that exists, not to reject ones that could not.
package vocabulary

import "github.com/oraclelex/oraclelex/lexicon"

func kw(sym lexicon.SymbolName, forms ...string) lexicon.Entry {
	return &lexicon.Simple{Symbol: sym, Forms: forms}
}

func s(sym lexicon.SymbolName, forms ...string) lexicon.Slot {
	return lexicon.Slot{Symbol: sym, Forms: forms}
}

// verb accepts the optional progressive and act slots in that order.
func verb(present, past lexicon.Slot, opt ...lexicon.Slot) lexicon.Entry {
	v := &lexicon.Verb{Present: present, Past: past}
	if len(opt) > 0 {
		v.Progressive = opt[0]
	}
	if len(opt) > 1 {
		v.Act = opt[1]
	}
	return v
}

func noun(sym lexicon.SymbolName, singular, plural, singPoss, plPoss string) lexicon.Entry {
	return &lexicon.Noun{
		Symbol:   sym,
		Singular: singular,
		Plural:   plural,
		SingPoss: singPoss,
		PlPoss:   plPoss,
	}
}

// Categories returns every category table in the documented merge order.
// Later categories win surface-form collisions, so the order is part of the
// configuration's meaning, not a presentation detail.
func Categories() []lexicon.Category {
	return []lexicon.Category{
		coreActions,
		keywordActions,
		otherActions,
		connectives,
		abilities,
		abilityWords,
		types,
		artifactTypes,
		creatureTypes,
		enchantmentTypes,
		landTypes,
		planeTypes,
		planeswalkerTypes,
		spellTypes,
		zones,
		turnStructure,
		concepts,
		miscWords,
	}
}

// Config returns the complete vocabulary configuration, category tables and
// flat catalogs both.
func Config() lexicon.Config {
	return lexicon.Config{
		Categories: Categories(),
		Counters:   counterKinds,
		Numbers:    numberWords,
		Ordinals:   ordinalWords,
	}
}
