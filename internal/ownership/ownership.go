// Package ownership decodes SEC ownership reports (Forms 3, 4 and 5).
package ownership

import (
	"bytes"
	"io"

	"github.com/dgallion1/edgarparse/internal/schema"
	"github.com/dgallion1/edgarparse/internal/xmltree"
)

// RootTag is the root element of every ownership report.
const RootTag = "ownershipDocument"

// Parser decodes ownership documents. The zero value is Strict.
type Parser struct {
	Policy schema.Policy
}

// Parse reads a document with the default Parser.
func Parse(r io.Reader) (*Document, error) {
	return Parser{}.Parse(r)
}

// ParseBytes reads an in-memory document with the default Parser.
func ParseBytes(data []byte) (*Document, error) {
	return Parser{}.Parse(bytes.NewReader(data))
}

func (p Parser) Parse(r io.Reader) (*Document, error) {
	root, err := xmltree.Parse(r)
	if err != nil {
		return nil, err
	}
	return p.Decode(root)
}

// Decode maps an already parsed tree. Footnote references are resolved
// against the ids declared under footnotes/footnote.
func (p Parser) Decode(root *xmltree.Node) (*Document, error) {
	d := &schema.Decoder{Policy: p.Policy, Footnotes: declaredFootnotes(root)}
	doc := &Document{}
	if err := d.DecodeRoot(root, RootTag, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func declaredFootnotes(root *xmltree.Node) map[string]bool {
	ids := map[string]bool{}
	for _, list := range root.ChildrenByTag("footnotes") {
		for _, fn := range list.ChildrenByTag("footnote") {
			if id, ok := fn.Attr("id"); ok {
				ids[id] = true
			}
		}
	}
	return ids
}

// Footnote returns the text of the footnote with the given id.
func (d *Document) Footnote(id string) (string, bool) {
	for _, fn := range d.Footnotes {
		if fn.ID != nil && *fn.ID == id {
			if fn.Note == nil {
				return "", true
			}
			return *fn.Note, true
		}
	}
	return "", false
}

// TransactionCount is the number of reported transactions in both tables.
func (d *Document) TransactionCount() int {
	n := 0
	if d.NonDerivativeTable != nil {
		n += len(d.NonDerivativeTable.Transactions)
	}
	if d.DerivativeTable != nil {
		n += len(d.DerivativeTable.Transactions)
	}
	return n
}

// HoldingCount is the number of reported holdings in both tables.
func (d *Document) HoldingCount() int {
	n := 0
	if d.NonDerivativeTable != nil {
		n += len(d.NonDerivativeTable.Holdings)
	}
	if d.DerivativeTable != nil {
		n += len(d.DerivativeTable.Holdings)
	}
	return n
}
