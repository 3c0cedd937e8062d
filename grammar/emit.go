package grammar

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/oraclelex/oraclelex/lexicon"
)

type EmitOptions struct {
	// Name is the grammar name. Defaults to "Keywords".
	Name string
	// Language is the target language in the options block. Defaults to
	// "Python".
	Language string
}

// Emit renders the lexer grammar document: the fixed header, the sorted token
// declaration block, and one rule per dispatch group in group order. The
// output is byte-identical across runs on the same lexicon.
func Emit(lex *lexicon.Lexicon, groups []*DispatchGroup, opts EmitOptions) []byte {
	name := opts.Name
	if name == "" {
		name = "Keywords"
	}
	lang := opts.Language
	if lang == "" {
		lang = "Python"
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "lexer grammar %v;\n\n", name)
	b.WriteString("/* Keywords and misc text\n")
	b.WriteString(" *\n")
	b.WriteString(" * Autogenerated by oraclelex\n")
	b.WriteString(" * DO NOT EDIT DIRECTLY\n")
	b.WriteString(" */\n\n")
	fmt.Fprintf(&b, "options {\n    language = %v;\n}\n\n", lang)

	b.WriteString("tokens {\n")
	for _, sym := range lex.Symbols() {
		fmt.Fprintf(&b, "    %v;\n", sym)
	}
	b.WriteString("}\n\n")

	for _, g := range groups {
		writeRule(&b, g)
	}
	return b.Bytes()
}

// writeRule renders one rule. Continuation lines align their bar under the
// rule's colon:
//
//	PLAY : 'plays'
//	     | 'play';
func writeRule(b *bytes.Buffer, g *DispatchGroup) {
	fmt.Fprintf(b, "%v : ", g.Stem)
	for i, a := range g.Alts {
		if i > 0 {
			fmt.Fprintf(b, "\n  %*s ", len(g.Stem), "|")
		}
		b.WriteString(quoteLiteral(a.Text))
		if g.Override(a) {
			fmt.Fprintf(b, " {$type = %v}", a.Symbol)
		}
	}
	b.WriteString(";\n")
}

// quoteLiteral renders a surface form as a single-quoted literal, escaping
// apostrophes and backslashes.
func quoteLiteral(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, c := range s {
		if c == '\'' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	b.WriteByte('\'')
	return b.String()
}
