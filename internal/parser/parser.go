package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/edgarparse/internal/schema"
)

// Kind names a supported EDGAR document type.
type Kind string

const (
	KindOwnership         Kind = "ownership"
	KindThirteenFDocument Kind = "13f-document"
	KindThirteenFTable    Kind = "13f-table"
	KindXBRL              Kind = "xbrl"
)

// Kinds lists every supported kind in a stable order.
var Kinds = []Kind{KindOwnership, KindThirteenFDocument, KindThirteenFTable, KindXBRL}

// ErrUnknownKind is returned for a kind name or root element no parser handles.
var ErrUnknownKind = errors.New("unknown document kind")

// Parser converts a raw EDGAR XML document into its typed record:
// *ownership.Document, *thirteenf.Document, *thirteenf.Table or *xbrl.Document.
type Parser interface {
	Parse(r io.Reader) (any, error)
}

// Options carries the per-document-type policies.
type Options struct {
	OwnershipPolicy          schema.Policy
	ThirteenFPolicy          schema.Policy
	RejectUnresolvedContexts bool
}

// SupportedExtensions lists file extensions accepted for batch input.
var SupportedExtensions = map[string]bool{
	".xml":  true,
	".xbrl": true,
}

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// ForKind returns the parser for a document kind.
func ForKind(kind Kind, opts Options) (Parser, error) {
	switch kind {
	case KindOwnership:
		return &OwnershipParser{Policy: opts.OwnershipPolicy}, nil
	case KindThirteenFDocument:
		return &ThirteenFDocumentParser{Policy: opts.ThirteenFPolicy}, nil
	case KindThirteenFTable:
		return &ThirteenFTableParser{Policy: opts.ThirteenFPolicy}, nil
	case KindXBRL:
		return &XBRLParser{RejectUnresolvedContexts: opts.RejectUnresolvedContexts}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// ParseBytes detects the kind of data and parses it.
func ParseBytes(data []byte, opts Options) (Kind, any, error) {
	kind, err := Detect(data)
	if err != nil {
		return "", nil, err
	}
	p, err := ForKind(kind, opts)
	if err != nil {
		return "", nil, err
	}
	doc, err := p.Parse(bytes.NewReader(data))
	if err != nil {
		return kind, nil, err
	}
	return kind, doc, nil
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}
