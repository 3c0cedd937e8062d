package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	mlspec "github.com/nihei9/maleeni/spec"
	"github.com/oraclelex/oraclelex/grammar"
	"github.com/oraclelex/oraclelex/lexicon"
	"github.com/oraclelex/oraclelex/vocabulary"
	"github.com/spf13/cobra"
)

const grammarName = "Keywords"

var generateFlags = struct {
	output *string
	lang   *string
	strict *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "Generate the lexer grammar and the compiled lexical specification",
		Example: `  oraclelex generate -o grammar/`,
		Args:    cobra.NoArgs,
		RunE:    runGenerate,
	}
	generateFlags.output = cmd.Flags().StringP("output", "o", "", "output file or directory path (default "+grammarName+".g)")
	generateFlags.lang = cmd.Flags().String("language", "", "target language of the options block (default Python)")
	generateFlags.strict = cmd.Flags().Bool("strict", false, "fail when two entries claim the same surface form with different symbols")
	rootCmd.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	policy := lexicon.ConflictOverwrite
	if *generateFlags.strict {
		policy = lexicon.ConflictReject
	}

	lex, err := lexicon.Assemble(vocabulary.Config(), policy)
	if err != nil {
		return err
	}

	groups := grammar.Group(lex)
	doc := grammar.Emit(lex, groups, grammar.EmitOptions{
		Name:     grammarName,
		Language: *generateFlags.lang,
	})
	clspec, err := grammar.CompileLexSpec(groups)
	if err != nil {
		return err
	}

	err = writeGrammarAndLexSpec(doc, clspec, *generateFlags.output)
	if err != nil {
		return fmt.Errorf("Cannot write an output files: %w", err)
	}

	if n := len(lex.Collisions()); n > 0 {
		fmt.Fprintf(os.Stdout, "%v collisions\n", n)
	}

	return nil
}

// writeGrammarAndLexSpec writes the grammar document and the compiled lexical
// specification. When the path is a directory the files are named
// <path>/<grammar-name>.g and <path>/<grammar-name>-lexspec.json; otherwise
// the path names the grammar file and the lex spec lands beside it. An empty
// path means the fixed default location <grammar-name>.g under the working
// directory.
func writeGrammarAndLexSpec(doc []byte, clspec *mlspec.CompiledLexSpec, path string) error {
	docPath, clspecPath, err := makeOutputFilePaths(path)
	if err != nil {
		return err
	}

	{
		f, err := os.OpenFile(docPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = f.Write(doc)
		if err != nil {
			return err
		}
	}

	{
		f, err := os.OpenFile(clspecPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		b, err := json.Marshal(clspec)
		if err != nil {
			return err
		}
		fmt.Fprintf(f, "%v\n", string(b))
	}

	return nil
}

func makeOutputFilePaths(path string) (string, string, error) {
	clspecFileName := grammarName + "-lexspec.json"

	if path == "" {
		return grammarName + ".g", clspecFileName, nil
	}

	fi, err := os.Stat(path)
	if err != nil && !os.IsNotExist(err) {
		return "", "", err
	}
	if err == nil && fi.IsDir() {
		return filepath.Join(path, grammarName+".g"), filepath.Join(path, clspecFileName), nil
	}

	dir, _ := filepath.Split(path)
	return path, filepath.Join(dir, clspecFileName), nil
}
