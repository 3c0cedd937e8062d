package error

import (
	"fmt"
	"strings"
)

// EntryError identifies a defective lemma entry in the vocabulary configuration.
// Category and Lemma locate the entry; Cause says what is wrong with it.
type EntryError struct {
	Cause    error
	Category string
	Lemma    string
}

func (e *EntryError) Error() string {
	var b strings.Builder
	if e.Category != "" {
		fmt.Fprintf(&b, "%v: ", e.Category)
	}
	if e.Lemma != "" {
		fmt.Fprintf(&b, "%v: ", e.Lemma)
	}
	fmt.Fprintf(&b, "error: %v", e.Cause)
	return b.String()
}

func (e *EntryError) Unwrap() error {
	return e.Cause
}

type EntryErrors []*EntryError

func (e EntryErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%v", e[0])
	for _, err := range e[1:] {
		fmt.Fprintf(&b, "\n%v", err)
	}
	return b.String()
}
