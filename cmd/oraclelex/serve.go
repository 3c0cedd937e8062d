package main

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/oraclelex/oraclelex/lexicon"
	"github.com/oraclelex/oraclelex/vocabulary"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var serveFlags = struct {
	addr *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve lexicon lookups as a JSON REST API",
		Example: `  oraclelex serve --addr :8080`,
		Args:    cobra.NoArgs,
		RunE:    runServe,
	}
	serveFlags.addr = cmd.Flags().String("addr", ":8080", "listen address")
	rootCmd.AddCommand(cmd)
}

type wordResponse struct {
	Text    string `json:"text"`
	Symbol  string `json:"symbol"`
	Subtype string `json:"subtype,omitempty"`
	Value   *int   `json:"value,omitempty"`
	Rank    *int   `json:"rank,omitempty"`
}

type symbolsResponse struct {
	Symbols []string `json:"symbols"`
}

type subtypeResponse struct {
	Text    string `json:"text"`
	Subtype string `json:"subtype"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func handleWord(lex *lexicon.Lexicon) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		text := r.URL.Query().Get("text")
		if text == "" {
			writeError(w, http.StatusBadRequest, "missing 'text' query parameter")
			return
		}
		sym, ok := lex.Symbol(text)
		if !ok {
			writeError(w, http.StatusNotFound, "not in the vocabulary")
			return
		}
		resp := wordResponse{Text: text, Symbol: sym.String()}
		if st, ok := lex.CanonicalSubtype(text); ok {
			resp.Subtype = st.String()
		}
		if v, ok := lex.NumberValue(text); ok {
			v := v
			resp.Value = &v
		}
		if rk, ok := lex.OrdinalRank(text); ok {
			rk := rk
			resp.Rank = &rk
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleSubtype(lex *lexicon.Lexicon) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		text := r.URL.Query().Get("text")
		if text == "" {
			writeError(w, http.StatusBadRequest, "missing 'text' query parameter")
			return
		}
		st, ok := lex.CanonicalSubtype(text)
		if !ok {
			writeError(w, http.StatusNotFound, "not a subtype word")
			return
		}
		writeJSON(w, http.StatusOK, subtypeResponse{Text: text, Subtype: st.String()})
	}
}

func handleSymbols(lex *lexicon.Lexicon) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		syms := lex.Symbols()
		names := make([]string, 0, len(syms))
		for _, s := range syms {
			names = append(names, s.String())
		}
		writeJSON(w, http.StatusOK, symbolsResponse{Symbols: names})
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	lex, err := lexicon.Assemble(vocabulary.Config(), lexicon.ConflictOverwrite)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/word", handleWord(lex))
	mux.HandleFunc("/api/subtype", handleSubtype(lex))
	mux.HandleFunc("/api/symbols", handleSymbols(lex))

	log.Printf("listening on %s", *serveFlags.addr)
	return http.ListenAndServe(*serveFlags.addr, cors.Default().Handler(mux))
}
