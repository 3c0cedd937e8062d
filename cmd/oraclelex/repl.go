package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/oraclelex/oraclelex/lexicon"
	"github.com/oraclelex/oraclelex/vocabulary"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

const historyFile = ".oraclelex_history"

func init() {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Look up vocabulary words interactively",
		Args:  cobra.NoArgs,
		RunE:  runRepl,
	}
	rootCmd.AddCommand(cmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	lex, err := lexicon.Assemble(vocabulary.Config(), lexicon.ConflictOverwrite)
	if err != nil {
		return err
	}

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	fmt.Println("Type a word to look it up. Type :quit to exit.")
	for {
		line, err := ln.Prompt("oraclelex> ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}

		word := strings.TrimSpace(line)
		if word == "" {
			continue
		}
		if strings.HasPrefix(word, ":") {
			switch strings.ToLower(word) {
			case ":quit":
				return nil
			default:
				fmt.Println("unknown command. Type :quit to exit.")
			}
			continue
		}

		fmt.Println(describeToken(lex, word))
		ln.AppendHistory(word)
	}
}
