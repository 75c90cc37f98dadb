// Package schema maps EDGAR XML trees onto Go records described by struct
// tags. Each record type is its own field table:
//
//	type Issuer struct {
//		CIK    *string `json:"cik" edgar:"issuerCik,required"`
//		Symbol *string `json:"trading_symbol" edgar:"issuerTradingSymbol"`
//	}
//
// The first tag element names the child element. Options:
//
//	required  absence fails the document under Strict policy
//	attr      read an attribute of the current element instead of a child
//	text      read the current element's own text
//	footnote  read the id attribute of the named child, resolved against
//	          the document's declared footnotes
//
// The Go type picks the decode rule: *string, *bool (EDGAR flags), *int64,
// *float64, *value.Value (coercion chain), *ValueFootnote, pointer to a
// nested record, slice of records, and []int64 (comma-separated lists
// across all same-named siblings). Slice tags may name a container with
// "container>item".
package schema

import (
	"fmt"
	"strings"

	"github.com/dgallion1/edgarparse/internal/value"
)

// Policy selects how required fields are enforced.
type Policy int

const (
	// Strict fails on the first missing required element or unparsable
	// required leaf.
	Strict Policy = iota
	// Lenient treats every field as optional; only malformed XML fails.
	Lenient
)

func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Lenient:
		return "lenient"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy accepts "strict" or "lenient", case-insensitively.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return Strict, nil
	case "lenient":
		return Lenient, nil
	}
	return Strict, fmt.Errorf("unknown policy %q (want strict or lenient)", s)
}

// ValueFootnote is the leaf wrapper EDGAR puts around scalars so they can
// carry footnote references.
type ValueFootnote struct {
	Value      *value.Value `json:"value"`
	FootnoteID *string      `json:"footnote_id"`
	// FootnoteIDs lists every resolved reference; FootnoteID is the first.
	FootnoteIDs []string `json:"footnote_ids,omitempty"`
}

// Text returns the leaf's value as text when the value is present.
func (vf *ValueFootnote) Text() (string, bool) {
	if vf == nil || vf.Value == nil {
		return "", false
	}
	return vf.Value.String(), true
}
