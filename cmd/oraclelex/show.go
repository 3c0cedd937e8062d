package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/oraclelex/oraclelex/lexicon"
	"github.com/oraclelex/oraclelex/vocabulary"
	"github.com/spf13/cobra"
)

var showFlags = struct {
	asJSON *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a description of the assembled lexicon",
		Args:  cobra.NoArgs,
		RunE:  runShow,
	}
	showFlags.asJSON = cmd.Flags().Bool("json", false, "print the description as JSON")
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg := vocabulary.Config()
	lex, err := lexicon.Assemble(cfg, lexicon.ConflictOverwrite)
	if err != nil {
		return err
	}
	desc := lexicon.Describe(cfg, lex)

	if *showFlags.asJSON {
		b, err := json.Marshal(desc)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "%v\n", string(b))
		return nil
	}

	return writeDescription(os.Stdout, desc)
}

const descTemplate = `# Lexicon

words:   {{ .WordNum }}
symbols: {{ .SymbolNum }}

# Categories

{{ range .Categories -}}
{{ printCategory . }}
{{ end }}
# Collisions

{{ if .Collisions -}}
{{ range .Collisions -}}
{{ printCollision . }}
{{ end -}}
{{ else -}}
No collision was detected.
{{ end }}`

func writeDescription(w io.Writer, desc *lexicon.Description) error {
	fns := template.FuncMap{
		"printCategory": func(c *lexicon.CategoryDescription) string {
			kind := ""
			if c.Subtype {
				kind = " (subtype)"
			}
			return fmt.Sprintf("%v%v: %v entries, %v words", c.Name, kind, c.EntryNum, c.WordNum)
		},
		"printCollision": func(c *lexicon.CollisionDescription) string {
			return fmt.Sprintf("%v: %v -> %v (%v)", c.Text, c.Old, c.New, c.Category)
		},
	}
	tmpl, err := template.New("description").Funcs(fns).Parse(descTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, desc)
}
