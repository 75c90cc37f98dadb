// Package thirteenf decodes Form 13F filings: the primary document
// (edgarSubmission) and the separate information table (informationTable).
package thirteenf

import (
	"bytes"
	"io"

	"github.com/dgallion1/edgarparse/internal/schema"
	"github.com/dgallion1/edgarparse/internal/xmltree"
)

const (
	DocumentRootTag = "edgarSubmission"
	TableRootTag    = "informationTable"
)

// Parser decodes 13F documents. The zero value is Strict.
type Parser struct {
	Policy schema.Policy
}

// ParseDocument reads a primary document with the default Parser.
func ParseDocument(r io.Reader) (*Document, error) {
	return Parser{}.ParseDocument(r)
}

// ParseTable reads an information table with the default Parser.
func ParseTable(r io.Reader) (*Table, error) {
	return Parser{}.ParseTable(r)
}

// ParseTableBytes reads an in-memory information table with the default Parser.
func ParseTableBytes(data []byte) (*Table, error) {
	return Parser{}.ParseTable(bytes.NewReader(data))
}

func (p Parser) ParseDocument(r io.Reader) (*Document, error) {
	root, err := xmltree.Parse(r)
	if err != nil {
		return nil, err
	}
	return p.DecodeDocument(root)
}

func (p Parser) ParseTable(r io.Reader) (*Table, error) {
	root, err := xmltree.Parse(r)
	if err != nil {
		return nil, err
	}
	return p.DecodeTable(root)
}

func (p Parser) DecodeDocument(root *xmltree.Node) (*Document, error) {
	doc := &Document{}
	if err := p.decoder().DecodeRoot(root, DocumentRootTag, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (p Parser) DecodeTable(root *xmltree.Node) (*Table, error) {
	table := &Table{}
	if err := p.decoder().DecodeRoot(root, TableRootTag, table); err != nil {
		return nil, err
	}
	return table, nil
}

// 13F carries no footnotes, so references are never filtered.
func (p Parser) decoder() *schema.Decoder {
	return &schema.Decoder{Policy: p.Policy}
}

// TotalValue sums the value column of every entry that reports one.
func (t *Table) TotalValue() int64 {
	var total int64
	for _, e := range t.Entries {
		if e.Value != nil {
			total += *e.Value
		}
	}
	return total
}
