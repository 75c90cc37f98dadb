package ownership

import (
	"errors"
	"strings"
	"testing"

	"github.com/dgallion1/edgarparse/internal/edgarerr"
	"github.com/dgallion1/edgarparse/internal/schema"
	"github.com/dgallion1/edgarparse/internal/value"
)

const form4 = `<?xml version="1.0"?>
<ownershipDocument>
  <schemaVersion>X0306</schemaVersion>
  <documentType>4</documentType>
  <periodOfReport>2024-03-01</periodOfReport>
  <notSubjectToSection16>0</notSubjectToSection16>
  <issuer>
    <issuerCik>0000320193</issuerCik>
    <issuerName>Apple Inc.</issuerName>
    <issuerTradingSymbol>AAPL</issuerTradingSymbol>
  </issuer>
  <reportingOwner>
    <reportingOwnerId>
      <rptOwnerCik>0001214156</rptOwnerCik>
      <rptOwnerName>COOK TIMOTHY D</rptOwnerName>
    </reportingOwnerId>
    <reportingOwnerAddress>
      <rptOwnerStreet1>ONE APPLE PARK WAY</rptOwnerStreet1>
      <rptOwnerCity>CUPERTINO</rptOwnerCity>
      <rptOwnerState>CA</rptOwnerState>
      <rptOwnerZipCode>95014</rptOwnerZipCode>
    </reportingOwnerAddress>
    <reportingOwnerRelationship>
      <isDirector>1</isDirector>
      <isOfficer>true</isOfficer>
      <officerTitle>Chief Executive Officer</officerTitle>
    </reportingOwnerRelationship>
  </reportingOwner>
  <nonDerivativeTable>
    <nonDerivativeTransaction>
      <securityTitle><value>Common Stock</value></securityTitle>
      <transactionDate><value>2024-03-01</value></transactionDate>
      <transactionCoding>
        <transactionFormType>4</transactionFormType>
        <transactionCode>S</transactionCode>
        <equitySwapInvolved>0</equitySwapInvolved>
        <footnoteId id="F1"/>
      </transactionCoding>
      <transactionTimeliness><value>L</value></transactionTimeliness>
      <transactionAmounts>
        <transactionShares><value>59162</value></transactionShares>
        <transactionPricePerShare><value>180.75</value><footnoteId id="F2"/><footnoteId id="F7"/></transactionPricePerShare>
        <transactionAcquiredDisposedCode><value>D</value></transactionAcquiredDisposedCode>
      </transactionAmounts>
      <postTransactionAmounts>
        <sharesOwnedFollowingTransaction><value>3280180</value></sharesOwnedFollowingTransaction>
      </postTransactionAmounts>
      <ownershipNature>
        <directOrIndirectOwnership><value>D</value></directOrIndirectOwnership>
      </ownershipNature>
    </nonDerivativeTransaction>
    <nonDerivativeHolding>
      <securityTitle><value>Common Stock</value></securityTitle>
      <postTransactionAmounts>
        <sharesOwnedFollowingTransaction><value>1000</value></sharesOwnedFollowingTransaction>
      </postTransactionAmounts>
      <ownershipNature>
        <directOrIndirectOwnership><value>I</value></directOrIndirectOwnership>
        <natureOfOwnership><value>By Trust</value></natureOfOwnership>
      </ownershipNature>
    </nonDerivativeHolding>
  </nonDerivativeTable>
  <derivativeTable>
    <derivativeTransaction>
      <securityTitle><value>Restricted Stock Unit</value></securityTitle>
      <conversionOrExercisePrice><footnoteId id="F2"/></conversionOrExercisePrice>
      <transactionDate><value>2024-03-01</value></transactionDate>
      <transactionCoding>
        <transactionFormType>4</transactionFormType>
        <transactionCode>M</transactionCode>
        <equitySwapInvolved>N</equitySwapInvolved>
      </transactionCoding>
      <transactionAmounts>
        <transactionShares><value>100000</value></transactionShares>
        <transactionPricePerShare><value>0</value></transactionPricePerShare>
        <transactionAcquiredDisposedCode><value>D</value></transactionAcquiredDisposedCode>
      </transactionAmounts>
      <exerciseDate><footnoteId id="F1"/></exerciseDate>
      <expirationDate><footnoteId id="F1"/></expirationDate>
      <underlyingSecurity>
        <underlyingSecurityTitle><value>Common Stock</value></underlyingSecurityTitle>
        <underlyingSecurityShares><value>100000</value></underlyingSecurityShares>
      </underlyingSecurity>
      <postTransactionAmounts>
        <sharesOwnedFollowingTransaction><value>0</value></sharesOwnedFollowingTransaction>
      </postTransactionAmounts>
      <ownershipNature>
        <directOrIndirectOwnership><value>D</value></directOrIndirectOwnership>
      </ownershipNature>
    </derivativeTransaction>
  </derivativeTable>
  <footnotes>
    <footnote id="F1">Sale effected pursuant to a Rule 10b5-1 trading plan.</footnote>
    <footnote id="F2">Weighted average price.</footnote>
  </footnotes>
  <remarks>None</remarks>
  <ownerSignature>
    <signatureName>/s/ Attorney-in-Fact</signatureName>
    <signatureDate>2024-03-05</signatureDate>
  </ownerSignature>
</ownershipDocument>`

func TestParse_Form4(t *testing.T) {
	doc, err := ParseBytes([]byte(form4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if *doc.DocumentType != "4" || *doc.PeriodOfReport != "2024-03-01" {
		t.Errorf("unexpected header: type=%q period=%q", *doc.DocumentType, *doc.PeriodOfReport)
	}
	if doc.NotSubjectToSection16 == nil || *doc.NotSubjectToSection16 {
		t.Errorf("expected notSubjectToSection16 false, got %v", doc.NotSubjectToSection16)
	}
	if *doc.Issuer.TradingSymbol != "AAPL" {
		t.Errorf("expected symbol AAPL, got %q", *doc.Issuer.TradingSymbol)
	}
	rel := doc.ReportingOwner.Relationship
	if !*rel.IsDirector || !*rel.IsOfficer || rel.IsOther != nil {
		t.Errorf("unexpected relationship: %+v", rel)
	}
	if *doc.ReportingOwner.Address.City != "CUPERTINO" {
		t.Errorf("expected city CUPERTINO, got %q", *doc.ReportingOwner.Address.City)
	}

	if doc.TransactionCount() != 2 || doc.HoldingCount() != 1 {
		t.Errorf("expected 2 transactions and 1 holding, got %d and %d", doc.TransactionCount(), doc.HoldingCount())
	}

	tx := doc.NonDerivativeTable.Transactions[0]
	if *tx.TransactionCoding.TransactionCode != "S" || *tx.TransactionCoding.EquitySwapInvolved {
		t.Errorf("unexpected coding: %+v", tx.TransactionCoding)
	}
	if tx.TransactionCoding.FootnoteID == nil || *tx.TransactionCoding.FootnoteID != "F1" {
		t.Errorf("expected coding footnote F1, got %v", tx.TransactionCoding.FootnoteID)
	}
	if text, _ := tx.TransactionTimeliness.Text(); text != "L" {
		t.Errorf("expected timeliness L, got %q", text)
	}
	shares := tx.TransactionAmounts.Shares.Value
	if !shares.Equal(value.Int(59162)) {
		t.Errorf("expected Int(59162), got %v", shares)
	}
	price := tx.TransactionAmounts.PricePerShare
	if !price.Value.Equal(value.Float(180.75)) {
		t.Errorf("expected Float(180.75), got %v", price.Value)
	}
	if len(price.FootnoteIDs) != 1 || *price.FootnoteID != "F2" {
		t.Errorf("expected undeclared F7 dropped, got %v", price.FootnoteIDs)
	}

	h := doc.NonDerivativeTable.Holdings[0]
	if h.TransactionCoding != nil {
		t.Errorf("expected absent holding coding, got %+v", h.TransactionCoding)
	}
	if text, _ := h.OwnershipNature.NatureOfOwnership.Text(); text != "By Trust" {
		t.Errorf("expected nature By Trust, got %q", text)
	}

	dt := doc.DerivativeTable.Transactions[0]
	if dt.TransactionDate == nil {
		t.Fatal("expected derivative transaction date")
	}
	if text, _ := dt.TransactionDate.Text(); text != "2024-03-01" {
		t.Errorf("expected 2024-03-01, got %q", text)
	}
	if dt.ConversionOrExercisePrice.Value != nil || *dt.ConversionOrExercisePrice.FootnoteID != "F2" {
		t.Errorf("expected footnote-only price, got %+v", dt.ConversionOrExercisePrice)
	}
	if *dt.TransactionCoding.EquitySwapInvolved {
		t.Error("expected equitySwapInvolved N to decode false")
	}
	if dt.TransactionAmounts.TotalValue != nil {
		t.Errorf("expected no total value, got %+v", dt.TransactionAmounts.TotalValue)
	}
	if !dt.UnderlyingSecurity.Shares.Value.Equal(value.Int(100000)) {
		t.Errorf("expected underlying shares 100000, got %v", dt.UnderlyingSecurity.Shares.Value)
	}

	note, ok := doc.Footnote("F2")
	if !ok || note != "Weighted average price." {
		t.Errorf("expected F2 text, got %q (%v)", note, ok)
	}
	if _, ok := doc.Footnote("F7"); ok {
		t.Error("expected F7 to be undeclared")
	}

	if *doc.OwnerSignature.Date != "2024-03-05" {
		t.Errorf("expected signature date 2024-03-05, got %q", *doc.OwnerSignature.Date)
	}
}

func withoutIssuer() string {
	start := strings.Index(form4, "<issuer>")
	end := strings.Index(form4, "</issuer>") + len("</issuer>")
	return form4[:start] + form4[end:]
}

func TestParse_MissingIssuer(t *testing.T) {
	_, err := ParseBytes([]byte(withoutIssuer()))
	var missing *edgarerr.MissingElementError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingElementError, got %v", err)
	}
	if missing.Tag != "issuer" {
		t.Errorf("expected tag %q, got %q", "issuer", missing.Tag)
	}

	doc, err := Parser{Policy: schema.Lenient}.Parse(strings.NewReader(withoutIssuer()))
	if err != nil {
		t.Fatalf("unexpected lenient error: %v", err)
	}
	if doc.Issuer != nil {
		t.Errorf("expected nil issuer, got %+v", doc.Issuer)
	}
	if *doc.ReportingOwner.ID.CIK != "0001214156" {
		t.Errorf("expected remaining fields decoded, got %+v", doc.ReportingOwner.ID)
	}
}

func TestParse_StrictNestedRequired(t *testing.T) {
	input := strings.Replace(form4, "<transactionCode>S</transactionCode>", "", 1)
	_, err := ParseBytes([]byte(input))
	var missing *edgarerr.MissingElementError
	if !errors.As(err, &missing) || missing.Tag != "transactionCode" {
		t.Fatalf("expected missing transactionCode, got %v", err)
	}
	if !strings.HasSuffix(missing.Path, "transactionCoding") {
		t.Errorf("expected path ending in transactionCoding, got %q", missing.Path)
	}
}

func TestParse_StrictBadFlag(t *testing.T) {
	input := strings.Replace(form4, "<equitySwapInvolved>0</equitySwapInvolved>", "<equitySwapInvolved>maybe</equitySwapInvolved>", 1)
	_, err := ParseBytes([]byte(input))
	var coercion *edgarerr.CoercionError
	if !errors.As(err, &coercion) || coercion.Tag != "equitySwapInvolved" {
		t.Fatalf("expected coercion error on equitySwapInvolved, got %v", err)
	}
}

func TestParse_WrongRoot(t *testing.T) {
	_, err := ParseBytes([]byte(`<informationTable/>`))
	var missing *edgarerr.MissingElementError
	if !errors.As(err, &missing) || missing.Tag != RootTag {
		t.Errorf("expected missing %s, got %v", RootTag, err)
	}

	doc, err := Parser{Policy: schema.Lenient}.Parse(strings.NewReader(`<informationTable/>`))
	if err != nil {
		t.Fatalf("unexpected lenient error: %v", err)
	}
	if doc.Footnotes == nil || len(doc.Footnotes) != 0 {
		t.Errorf("expected empty footnotes, got %#v", doc.Footnotes)
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := ParseBytes([]byte(`<ownershipDocument><issuer></ownershipDocument>`))
	if !errors.Is(err, edgarerr.ErrMalformedXML) {
		t.Errorf("expected ErrMalformedXML, got %v", err)
	}
}
