package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/oraclelex/oraclelex/grammar"
	"github.com/oraclelex/oraclelex/lexicon"
	"github.com/oraclelex/oraclelex/vocabulary"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "lex",
		Short:   "Tokenize rules text with the generated lexical specification",
		Example: `  cat card.txt | oraclelex lex`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runLex,
	}
	rootCmd.AddCommand(cmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	lex, err := lexicon.Assemble(vocabulary.Config(), lexicon.ConflictOverwrite)
	if err != nil {
		return err
	}
	clspec, err := grammar.CompileLexSpec(grammar.Group(lex))
	if err != nil {
		return err
	}

	var src io.Reader = os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("Cannot open the text file %s: %w", args[0], err)
		}
		defer f.Close()
		src = f
	}

	t, err := grammar.NewTokenizer(clspec, src)
	if err != nil {
		return err
	}
	for {
		tok, err := t.Next()
		if err != nil {
			return err
		}
		if tok == nil {
			break
		}
		if tok.Invalid {
			fmt.Fprintf(os.Stdout, "invalid %#v\n", tok.Text)
			continue
		}
		fmt.Fprintf(os.Stdout, "%v\n", describeToken(lex, tok.Text))
	}

	return nil
}

// describeToken resolves a matched text through the lexicon: the canonical
// symbol, plus the specific subtype or the numeric value where one applies.
func describeToken(lex *lexicon.Lexicon, text string) string {
	sym, ok := lex.Symbol(text)
	if !ok {
		return fmt.Sprintf("unknown %#v", text)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%v %#v", sym, text)
	if st, ok := lex.CanonicalSubtype(text); ok {
		fmt.Fprintf(&b, " subtype=%v", st)
	}
	if v, ok := lex.NumberValue(text); ok {
		fmt.Fprintf(&b, " value=%v", v)
	}
	if r, ok := lex.OrdinalRank(text); ok {
		if r == lexicon.OrdinalLast {
			fmt.Fprintf(&b, " rank=last")
		} else {
			fmt.Fprintf(&b, " rank=%v", r)
		}
	}
	return b.String()
}
