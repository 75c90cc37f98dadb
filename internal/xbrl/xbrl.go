// Package xbrl resolves the facts of an XBRL instance document against its
// declared contexts and units.
package xbrl

import (
	"bytes"
	"io"
	"slices"

	"github.com/dgallion1/edgarparse/internal/edgarerr"
	"github.com/dgallion1/edgarparse/internal/value"
	"github.com/dgallion1/edgarparse/internal/xmltree"
)

// Document is the ordered list of facts in an instance.
type Document struct {
	Facts []Fact `json:"facts"`
}

// Fact is one reported value. Each Fact owns its Context.
type Fact struct {
	Context  Context     `json:"context"`
	Concept  string      `json:"concept"`
	Value    value.Value `json:"value"`
	Decimals *string     `json:"decimals"`
	Unit     *string     `json:"unit"`
}

// Parser extracts facts from XBRL instances. The zero value drops facts whose
// contextRef is undeclared.
type Parser struct {
	// RejectUnresolvedContexts turns an undeclared contextRef into an
	// *edgarerr.UnresolvedReferenceError instead of skipping the element.
	RejectUnresolvedContexts bool
}

// Parse reads an instance document with the default Parser.
func Parse(r io.Reader) (*Document, error) {
	return Parser{}.Parse(r)
}

// ParseBytes reads an in-memory instance document with the default Parser.
func ParseBytes(data []byte) (*Document, error) {
	return Parser{}.Parse(bytes.NewReader(data))
}

// Parse builds the unit and context dictionaries, then makes a single pass
// over the root's direct children emitting one Fact per element whose
// contextRef resolves.
func (p Parser) Parse(r io.Reader) (*Document, error) {
	root, err := xmltree.Parse(r)
	if err != nil {
		return nil, err
	}

	units := BuildUnits(root)
	contexts, err := BuildContexts(root)
	if err != nil {
		return nil, err
	}

	facts, err := p.extractFacts(root, units, contexts)
	if err != nil {
		return nil, err
	}
	return &Document{Facts: facts}, nil
}

func (p Parser) extractFacts(root *xmltree.Node, units map[string]string, contexts map[string]Context) ([]Fact, error) {
	facts := make([]Fact, 0, len(root.Children))
	for _, node := range root.Children {
		ref, ok := node.Attr("contextRef")
		if !ok {
			continue
		}
		ctx, ok := contexts[ref]
		if !ok {
			if p.RejectUnresolvedContexts {
				return nil, &edgarerr.UnresolvedReferenceError{Kind: "context", ID: ref, Tag: node.Local()}
			}
			continue
		}

		raw, _ := node.Text()
		fact := Fact{
			Context: ctx.Clone(),
			Concept: node.Local(),
			Value:   value.Coerce(raw),
		}
		if d, ok := node.Attr("decimals"); ok {
			fact.Decimals = &d
		}
		if unitRef, ok := node.Attr("unitRef"); ok {
			if measure, ok := units[unitRef]; ok {
				fact.Unit = &measure
			}
		}
		facts = append(facts, fact)
	}
	return facts, nil
}

// FactsByConcept returns the facts reported for concept, in document order.
func (d *Document) FactsByConcept(concept string) []Fact {
	var out []Fact
	for _, f := range d.Facts {
		if f.Concept == concept {
			out = append(out, f)
		}
	}
	return out
}

// Concepts lists the distinct concepts in first-appearance order.
func (d *Document) Concepts() []string {
	var out []string
	seen := make(map[string]bool)
	for _, f := range d.Facts {
		if !seen[f.Concept] {
			seen[f.Concept] = true
			out = append(out, f.Concept)
		}
	}
	return out
}

// Equal reports structural equality of two facts.
func (f Fact) Equal(o Fact) bool {
	return f.Concept == o.Concept &&
		f.Value.Equal(o.Value) &&
		equalPtr(f.Decimals, o.Decimals) &&
		equalPtr(f.Unit, o.Unit) &&
		f.Context.Equal(o.Context)
}

// Equal reports structural equality of two contexts.
func (c Context) Equal(o Context) bool {
	return c.Entity == o.Entity &&
		slices.Equal(c.Segments, o.Segments) &&
		equalPtr(c.Period.Instant, o.Period.Instant) &&
		equalPtr(c.Period.StartDate, o.Period.StartDate) &&
		equalPtr(c.Period.EndDate, o.Period.EndDate)
}

func equalPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
