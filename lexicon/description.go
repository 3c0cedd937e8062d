package lexicon

// CategoryDescription summarizes one category of the configuration.
type CategoryDescription struct {
	Name     string `json:"name"`
	Subtype  bool   `json:"subtype,omitempty"`
	EntryNum int    `json:"entries"`
	WordNum  int    `json:"words"`
}

// CollisionDescription reports one surface form the merge re-mapped.
type CollisionDescription struct {
	Text     string `json:"text"`
	Old      string `json:"old"`
	New      string `json:"new"`
	Category string `json:"category"`
}

// Description is a JSON-serializable summary of an assembled lexicon.
type Description struct {
	WordNum    int                     `json:"word_count"`
	SymbolNum  int                     `json:"symbol_count"`
	SubtypeNum int                     `json:"subtype_count"`
	Symbols    []string                `json:"symbols"`
	Categories []*CategoryDescription  `json:"categories"`
	Collisions []*CollisionDescription `json:"collisions,omitempty"`
}

// Describe summarizes a lexicon together with the configuration it was
// assembled from. The configuration must be the one Assemble succeeded on.
func Describe(cfg Config, lex *Lexicon) *Description {
	syms := lex.Symbols()
	symNames := make([]string, 0, len(syms))
	for _, s := range syms {
		symNames = append(symNames, s.String())
	}

	cats := make([]*CategoryDescription, 0, len(cfg.Categories)+3)
	for _, c := range cfg.Categories {
		words := 0
		for _, e := range c.Entries {
			ms, err := e.Expand()
			if err != nil {
				continue
			}
			words += len(ms)
		}
		cats = append(cats, &CategoryDescription{
			Name:     c.Name,
			Subtype:  c.Subtype,
			EntryNum: len(c.Entries),
			WordNum:  words,
		})
	}
	cats = append(cats,
		&CategoryDescription{Name: "counters", EntryNum: len(cfg.Counters), WordNum: len(cfg.Counters)},
		&CategoryDescription{Name: "numbers", EntryNum: len(cfg.Numbers), WordNum: len(cfg.Numbers)},
		&CategoryDescription{Name: "ordinals", EntryNum: len(cfg.Ordinals), WordNum: len(cfg.Ordinals)},
	)

	var colls []*CollisionDescription
	for _, c := range lex.Collisions() {
		colls = append(colls, &CollisionDescription{
			Text:     c.Text,
			Old:      c.Old.String(),
			New:      c.New.String(),
			Category: c.Category,
		})
	}

	return &Description{
		WordNum:    lex.WordCount(),
		SymbolNum:  len(syms),
		SubtypeNum: len(lex.subtypes),
		Symbols:    symNames,
		Categories: cats,
		Collisions: colls,
	}
}
