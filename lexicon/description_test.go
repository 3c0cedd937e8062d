package lexicon

import (
	"testing"
)

func TestDescribe(t *testing.T) {
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
		Counters: []string{"mine", "ore"},
		Numbers:  []NumberWord{{Word: "one", Value: 1}},
	}
	lex, err := Assemble(cfg, ConflictOverwrite)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := Describe(cfg, lex)

	// 4 noun forms + "ore" + "one"; the counter "mine" re-maps an
	// existing form.
	if d.WordNum != 6 {
		t.Errorf("unexpected word count; want: 6, got: %v", d.WordNum)
	}
	if d.SubtypeNum != 4 {
		t.Errorf("unexpected subtype count; want: 4, got: %v", d.SubtypeNum)
	}
	if len(d.Collisions) != 1 {
		t.Fatalf("unexpected collisions: %v", d.Collisions)
	}
	if d.Collisions[0].Text != "mine" {
		t.Errorf("unexpected collision: %v", d.Collisions[0])
	}

	wantCats := []struct {
		name     string
		entryNum int
		wordNum  int
	}{
		{name: "land types", entryNum: 1, wordNum: 4},
		{name: "counters", entryNum: 2, wordNum: 2},
		{name: "numbers", entryNum: 1, wordNum: 1},
		{name: "ordinals", entryNum: 0, wordNum: 0},
	}
	if len(d.Categories) != len(wantCats) {
		t.Fatalf("unexpected categories: %v", d.Categories)
	}
	for i, want := range wantCats {
		c := d.Categories[i]
		if c.Name != want.name || c.EntryNum != want.entryNum || c.WordNum != want.wordNum {
			t.Errorf("unexpected category description; want: %v, got: %v", want, *c)
		}
	}
}
