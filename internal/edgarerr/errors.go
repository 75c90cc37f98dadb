// Package edgarerr defines the errors returned by the EDGAR document parsers.
package edgarerr

import (
	"errors"
	"fmt"
)

// ErrMalformedXML marks input that is not well-formed XML. The decoder
// diagnostic is wrapped alongside it.
var ErrMalformedXML = errors.New("malformed xml")

// Malformed wraps a decoder diagnostic so that errors.Is(err, ErrMalformedXML) holds.
func Malformed(err error) error {
	return fmt.Errorf("%w: %w", ErrMalformedXML, err)
}

// MissingElementError reports a required element or attribute that is absent
// (or present without text) under a strict schema.
type MissingElementError struct {
	Tag  string // local tag name, or "@attr" for attributes
	Path string // slash-joined path of the containing element
}

func (e *MissingElementError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("missing required element %q", e.Tag)
	}
	return fmt.Sprintf("missing required element %q in %s", e.Tag, e.Path)
}

// CoercionError reports a required leaf whose text does not parse to the
// declared type.
type CoercionError struct {
	Tag  string
	Path string
	Raw  string
	Want string // "int", "float", "bool"
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("element %q in %s: cannot parse %q as %s", e.Tag, e.Path, e.Raw, e.Want)
}

// UnresolvedReferenceError reports a contextRef, unitRef or footnote id that
// does not match any declaration in the document. Only returned when a parser
// is configured to reject unresolved references.
type UnresolvedReferenceError struct {
	Kind string // "context", "unit", "footnote"
	ID   string
	Tag  string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("element %q references undeclared %s %q", e.Tag, e.Kind, e.ID)
}

// Kind classifies err into one of the taxonomy names used at the service
// boundary. It returns "" for errors outside the taxonomy.
func Kind(err error) string {
	var (
		missing    *MissingElementError
		coercion   *CoercionError
		unresolved *UnresolvedReferenceError
	)
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMalformedXML):
		return "malformed_xml"
	case errors.As(err, &missing):
		return "missing_element"
	case errors.As(err, &coercion):
		return "type_coercion"
	case errors.As(err, &unresolved):
		return "unresolved_reference"
	}
	return ""
}
