package parser

import (
	"io"

	"github.com/dgallion1/edgarparse/internal/ownership"
	"github.com/dgallion1/edgarparse/internal/schema"
	"github.com/dgallion1/edgarparse/internal/thirteenf"
	"github.com/dgallion1/edgarparse/internal/xbrl"
)

// OwnershipParser handles Forms 3, 4 and 5.
type OwnershipParser struct {
	Policy schema.Policy
}

func (p *OwnershipParser) Parse(r io.Reader) (any, error) {
	doc, err := ownership.Parser{Policy: p.Policy}.Parse(r)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// ThirteenFDocumentParser handles the 13F primary document.
type ThirteenFDocumentParser struct {
	Policy schema.Policy
}

func (p *ThirteenFDocumentParser) Parse(r io.Reader) (any, error) {
	doc, err := thirteenf.Parser{Policy: p.Policy}.ParseDocument(r)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// ThirteenFTableParser handles the 13F information table.
type ThirteenFTableParser struct {
	Policy schema.Policy
}

func (p *ThirteenFTableParser) Parse(r io.Reader) (any, error) {
	doc, err := thirteenf.Parser{Policy: p.Policy}.ParseTable(r)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// XBRLParser handles XBRL instance documents.
type XBRLParser struct {
	RejectUnresolvedContexts bool
}

func (p *XBRLParser) Parse(r io.Reader) (any, error) {
	doc, err := xbrl.Parser{RejectUnresolvedContexts: p.RejectUnresolvedContexts}.Parse(r)
	if err != nil {
		return nil, err
	}
	return doc, nil
}
