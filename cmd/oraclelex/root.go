package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "oraclelex",
	Short: "Generate a lexer grammar for Magic rules text",
	Long: `oraclelex assembles the canonical rules-text lexicon and compiles it into
a deterministic lexer specification:
- Generates the Keywords lexer grammar consumed by a downstream grammar compiler,
  together with a compiled lexical specification.
- Tokenizes rules text according to that specification.
  This feature is primarily aimed at checking the vocabulary.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	return rootCmd.Execute()
}
