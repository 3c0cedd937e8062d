package grammar

import (
	"fmt"
	"io"
	"strings"

	mlcompiler "github.com/nihei9/maleeni/compiler"
	mlspec "github.com/nihei9/maleeni/spec"
)

// KindWhiteSpace is the padding entry the lex spec carries so that a
// tokenizer built from it can run over free-form rules text.
const KindWhiteSpace = mlspec.LexKindName("white_space")

// LexSpec lowers the dispatch groups to a maleeni lexical specification: one
// entry per group whose pattern is the alternation of the group's escaped
// literals, longest alternative first, plus the whitespace entry. Kind names
// are the lower-cased stems.
func LexSpec(groups []*DispatchGroup) *mlspec.LexSpec {
	entries := make([]*mlspec.LexEntry, 0, len(groups)+1)
	entries = append(entries, &mlspec.LexEntry{
		Kind:    KindWhiteSpace,
		Pattern: mlspec.LexPattern(`[\u{0009}\u{000A}\u{000D}\u{0020}]+`),
	})
	for _, g := range groups {
		alts := make([]string, 0, len(g.Alts))
		for _, a := range g.Alts {
			alts = append(alts, mlspec.EscapePattern(a.Text))
		}
		entries = append(entries, &mlspec.LexEntry{
			Kind:    mlspec.LexKindName(strings.ToLower(g.Stem)),
			Pattern: mlspec.LexPattern(strings.Join(alts, "|")),
		})
	}
	return &mlspec.LexSpec{
		Entries: entries,
	}
}

// CompileLexSpec compiles the lowered specification into a runnable
// tokenizer spec.
func CompileLexSpec(groups []*DispatchGroup) (*mlspec.CompiledLexSpec, error) {
	clspec, err, cErrs := mlcompiler.Compile(LexSpec(groups), mlcompiler.CompressionLevel(mlcompiler.CompressionLevelMax))
	if err != nil {
		if len(cErrs) > 0 {
			var b strings.Builder
			writeCompileError(&b, cErrs[0])
			for _, cErr := range cErrs[1:] {
				fmt.Fprintf(&b, "\n")
				writeCompileError(&b, cErr)
			}
			return nil, fmt.Errorf(b.String())
		}
		return nil, err
	}
	return clspec, nil
}

func writeCompileError(w io.Writer, cErr *mlcompiler.CompileError) {
	if cErr.Fragment {
		fmt.Fprintf(w, "fragment ")
	}
	fmt.Fprintf(w, "%v: %v", cErr.Kind, cErr.Cause)
	if cErr.Detail != "" {
		fmt.Fprintf(w, ": %v", cErr.Detail)
	}
}
