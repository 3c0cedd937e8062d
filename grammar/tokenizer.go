package grammar

import (
	"io"

	mldriver "github.com/nihei9/maleeni/driver"
	mlspec "github.com/nihei9/maleeni/spec"
)

// Token is one lexeme of rules text with its resolved kind name. The kind
// name is the lower-cased stem of the dispatch group that matched.
type Token struct {
	KindName mlspec.LexKindName
	Text     string
	Row      int
	Col      int
	Invalid  bool
}

// Tokenizer reads rules text as a stream of vocabulary tokens, skipping
// whitespace. Unmatchable input surfaces as an invalid token rather than an
// error.
type Tokenizer struct {
	clspec *mlspec.CompiledLexSpec
	d      *mldriver.Lexer
}

func NewTokenizer(clspec *mlspec.CompiledLexSpec, src io.Reader) (*Tokenizer, error) {
	d, err := mldriver.NewLexer(mldriver.NewLexSpec(clspec), src)
	if err != nil {
		return nil, err
	}
	return &Tokenizer{
		clspec: clspec,
		d:      d,
	}, nil
}

// Next returns the next token, or nil at the end of the input.
func (t *Tokenizer) Next() (*Token, error) {
	for {
		tok, err := t.d.Next()
		if err != nil {
			return nil, err
		}
		if tok.EOF {
			return nil, nil
		}
		if tok.Invalid {
			return &Token{
				Text:    string(tok.Lexeme),
				Row:     tok.Row,
				Col:     tok.Col,
				Invalid: true,
			}, nil
		}
		kind := t.clspec.KindNames[tok.KindID]
		if kind == KindWhiteSpace {
			continue
		}
		return &Token{
			KindName: kind,
			Text:     string(tok.Lexeme),
			Row:      tok.Row,
			Col:      tok.Col,
		}, nil
	}
}
