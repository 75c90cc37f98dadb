package parser

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"

	"github.com/dgallion1/edgarparse/internal/edgarerr"
)

var rootKinds = map[string]Kind{
	"ownershipDocument": KindOwnership,
	"edgarSubmission":   KindThirteenFDocument,
	"informationTable":  KindThirteenFTable,
	"xbrl":              KindXBRL,
}

// Detect identifies the document kind from the local name of its root
// element. Only the prolog and the root start tag are read.
func Detect(data []byte) (Kind, error) {
	root, err := RootName(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	kind, ok := rootKinds[root.Local]
	if !ok {
		return "", fmt.Errorf("%w: root element %q", ErrUnknownKind, root.Local)
	}
	return kind, nil
}

// RootName returns the name of the first start element in r.
func RootName(r io.Reader) (xml.Name, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = true
	dec.CharsetReader = charset.NewReaderLabel
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return xml.Name{}, edgarerr.Malformed(errors.New("no root element"))
		}
		if err != nil {
			return xml.Name{}, edgarerr.Malformed(err)
		}
		if se, ok := tok.(xml.StartElement); ok {
			return se.Name, nil
		}
	}
}
