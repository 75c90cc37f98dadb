package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/dgallion1/edgarparse/internal/edgarerr"
	"github.com/dgallion1/edgarparse/internal/ownership"
	"github.com/dgallion1/edgarparse/internal/schema"
	"github.com/dgallion1/edgarparse/internal/thirteenf"
	"github.com/dgallion1/edgarparse/internal/xbrl"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{`<?xml version="1.0"?><ownershipDocument/>`, KindOwnership},
		{`<!-- filed --><edgarSubmission xmlns="http://www.sec.gov/edgar/thirteenffiler"/>`, KindThirteenFDocument},
		{`<ns1:informationTable xmlns:ns1="http://www.sec.gov/edgar/document/thirteenf/informationtable"/>`, KindThirteenFTable},
		{`<xbrli:xbrl xmlns:xbrli="http://www.xbrl.org/2003/instance"></xbrli:xbrl>`, KindXBRL},
	}
	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			got, err := Detect([]byte(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestDetect_Errors(t *testing.T) {
	if _, err := Detect([]byte(`<html/>`)); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
	if _, err := Detect([]byte(`   `)); !errors.Is(err, edgarerr.ErrMalformedXML) {
		t.Errorf("expected ErrMalformedXML for empty input, got %v", err)
	}
	if _, err := Detect([]byte(`<<`)); !errors.Is(err, edgarerr.ErrMalformedXML) {
		t.Errorf("expected ErrMalformedXML, got %v", err)
	}
}

func TestParseKind(t *testing.T) {
	if k, err := ParseKind(" 13F-Table "); err != nil || k != KindThirteenFTable {
		t.Errorf("expected %q, got %q (%v)", KindThirteenFTable, k, err)
	}
	if _, err := ParseKind("10-K"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestForKind_ReturnsTypedDocuments(t *testing.T) {
	tests := []struct {
		kind  Kind
		input string
		check func(any) bool
	}{
		{KindOwnership, `<ownershipDocument/>`, func(v any) bool { _, ok := v.(*ownership.Document); return ok }},
		{KindThirteenFDocument, `<edgarSubmission/>`, func(v any) bool { _, ok := v.(*thirteenf.Document); return ok }},
		{KindThirteenFTable, `<informationTable/>`, func(v any) bool { _, ok := v.(*thirteenf.Table); return ok }},
		{KindXBRL, `<xbrl/>`, func(v any) bool { _, ok := v.(*xbrl.Document); return ok }},
	}
	opts := Options{OwnershipPolicy: schema.Lenient, ThirteenFPolicy: schema.Lenient}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			p, err := ForKind(tt.kind, opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			doc, err := p.Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("unexpected parse error: %v", err)
			}
			if !tt.check(doc) {
				t.Errorf("unexpected document type %T", doc)
			}
		})
	}

	if _, err := ForKind("form-d", opts); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestParseBytes_AppliesPolicy(t *testing.T) {
	input := []byte(`<ownershipDocument><documentType>4</documentType></ownershipDocument>`)

	kind, doc, err := ParseBytes(input, Options{})
	var missing *edgarerr.MissingElementError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingElementError under strict, got %v", err)
	}
	if kind != KindOwnership || doc != nil {
		t.Errorf("expected kind ownership and nil doc, got %q %v", kind, doc)
	}

	_, doc, err = ParseBytes(input, Options{OwnershipPolicy: schema.Lenient})
	if err != nil {
		t.Fatalf("unexpected lenient error: %v", err)
	}
	od := doc.(*ownership.Document)
	if *od.DocumentType != "4" {
		t.Errorf("expected document type 4, got %q", *od.DocumentType)
	}
}

func TestParseBytes_XBRLUnresolvedOption(t *testing.T) {
	input := []byte(`<xbrl xmlns:us-gaap="http://fasb.org/us-gaap/2023"><us-gaap:Assets contextRef="missing">1</us-gaap:Assets></xbrl>`)
	if _, _, err := ParseBytes(input, Options{}); err != nil {
		t.Fatalf("expected unresolved fact to be dropped, got %v", err)
	}
	_, _, err := ParseBytes(input, Options{RejectUnresolvedContexts: true})
	var unresolved *edgarerr.UnresolvedReferenceError
	if !errors.As(err, &unresolved) || unresolved.ID != "missing" {
		t.Errorf("expected unresolved reference error, got %v", err)
	}
}

func TestIsSupportedExtension(t *testing.T) {
	if !IsSupportedExtension("form4.XML") {
		t.Error("expected .XML to be supported")
	}
	if IsSupportedExtension("filing.pdf") {
		t.Error("expected .pdf to be unsupported")
	}
}
