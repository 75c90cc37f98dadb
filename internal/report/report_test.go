package report

import (
	"strings"
	"testing"

	"github.com/dgallion1/edgarparse/internal/ownership"
	"github.com/dgallion1/edgarparse/internal/schema"
	"github.com/dgallion1/edgarparse/internal/thirteenf"
	"github.com/dgallion1/edgarparse/internal/xbrl"
)

const form4 = `<ownershipDocument>
  <documentType>4</documentType>
  <periodOfReport>2024-03-01</periodOfReport>
  <issuer><issuerCik>1</issuerCik><issuerName>Acme | Co</issuerName><issuerTradingSymbol>ACME</issuerTradingSymbol></issuer>
  <reportingOwner>
    <reportingOwnerId><rptOwnerCik>2</rptOwnerCik><rptOwnerName>Doe Jane</rptOwnerName></reportingOwnerId>
    <reportingOwnerRelationship><isDirector>1</isDirector><isOther>0</isOther><officerTitle>CFO</officerTitle></reportingOwnerRelationship>
  </reportingOwner>
  <nonDerivativeTable>
    <nonDerivativeTransaction>
      <securityTitle><value>Common Stock</value></securityTitle>
      <transactionDate><value>2024-03-01</value></transactionDate>
      <transactionCoding><transactionFormType>4</transactionFormType><transactionCode>P</transactionCode><equitySwapInvolved>0</equitySwapInvolved></transactionCoding>
      <transactionAmounts>
        <transactionShares><value>500</value></transactionShares>
        <transactionPricePerShare><value>12.5</value></transactionPricePerShare>
        <transactionAcquiredDisposedCode><value>A</value></transactionAcquiredDisposedCode>
      </transactionAmounts>
      <postTransactionAmounts><sharesOwnedFollowingTransaction><value>1500</value></sharesOwnedFollowingTransaction></postTransactionAmounts>
      <ownershipNature><directOrIndirectOwnership><value>D</value></directOrIndirectOwnership></ownershipNature>
    </nonDerivativeTransaction>
  </nonDerivativeTable>
  <footnotes><footnote id="F1">
    Bought in the open market.
  </footnote></footnotes>
  <ownerSignature><signatureName>Jane Doe</signatureName><signatureDate>2024-03-04</signatureDate></ownerSignature>
</ownershipDocument>`

const instance = `<xbrl xmlns:xbrldi="http://xbrl.org/2006/xbrldi" xmlns:us-gaap="http://fasb.org/us-gaap/2023">
  <context id="c1">
    <entity><identifier scheme="http://www.sec.gov/CIK">0000320193</identifier>
      <segment><xbrldi:explicitMember dimension="us-gaap:StatementBusinessSegmentsAxis">aapl:IPhoneMember</xbrldi:explicitMember></segment>
    </entity>
    <period><startDate>2023-01-01</startDate><endDate>2023-12-31</endDate></period>
  </context>
  <unit id="usd"><measure>iso4217:USD</measure></unit>
  <us-gaap:Revenues contextRef="c1" unitRef="usd" decimals="-6">200583000000</us-gaap:Revenues>
</xbrl>`

func TestMarkdown_Ownership(t *testing.T) {
	doc, err := ownership.ParseBytes([]byte(form4))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out, err := Markdown(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"# Form 4: Acme | Co (ACME)",
		"- Relationship: Director, CFO",
		"| Common Stock | 2024-03-01 | P | 500 | 12.5 | A | 1500 |",
		"- **F1**: Bought in the open market.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Derivative transactions") {
		t.Error("expected no derivative section for an empty table")
	}

	s, err := Summarize(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Items != 1 || s.Title != "Form 4: Acme | Co (ACME)" {
		t.Errorf("unexpected summary: %+v", s)
	}
}

func TestMarkdown_ThirteenFTable(t *testing.T) {
	input := `<informationTable><infoTable>
	  <nameOfIssuer>APPLE INC</nameOfIssuer><titleOfClass>COM</titleOfClass><cusip>037833100</cusip><value>10</value>
	  <shrsOrPrnAmt><sshPrnamt>5</sshPrnamt><sshPrnamtType>SH</sshPrnamtType></shrsOrPrnAmt>
	  <investmentDiscretion>SOLE</investmentDiscretion>
	  <votingAuthority><Sole>100</Sole><Shared>0</Shared><None>0</None></votingAuthority>
	</infoTable></informationTable>`
	table, err := thirteenf.ParseTableBytes([]byte(input))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out, err := Markdown(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "| APPLE INC | COM | 037833100 | 10 | 5 | SH | SOLE | 100 | 0 | 0 |"
	if !strings.Contains(out, want) {
		t.Errorf("expected row %q, got:\n%s", want, out)
	}
	if !strings.Contains(out, "- Total value: 10") {
		t.Errorf("expected total value line, got:\n%s", out)
	}
}

func TestMarkdown_LenientThirteenFDocument(t *testing.T) {
	doc, err := thirteenf.Parser{Policy: schema.Lenient}.ParseDocument(strings.NewReader(`<edgarSubmission/>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out, err := Markdown(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "# 13F\n\n" {
		t.Errorf("expected bare heading, got %q", out)
	}
}

func TestMarkdown_XBRL(t *testing.T) {
	doc, err := xbrl.ParseBytes([]byte(instance))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out, err := Markdown(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "| Revenues | 2023-01-01 to 2023-12-31 | StatementBusinessSegmentsAxis=IPhoneMember | 200583000000 | iso4217:USD |"
	if !strings.Contains(out, want) {
		t.Errorf("expected row %q, got:\n%s", want, out)
	}
	if !strings.Contains(out, "- Entities: 0000320193") {
		t.Errorf("expected entity line, got:\n%s", out)
	}
}

func TestMarkdown_UnsupportedType(t *testing.T) {
	if _, err := Markdown("not a document"); err == nil {
		t.Error("expected error for unsupported type")
	}
	if _, err := Summarize(42); err == nil {
		t.Error("expected error for unsupported type")
	}
}

func TestHTML_RendersTables(t *testing.T) {
	out, err := HTML("# Title\n\n| A | B |\n| --- | --- |\n| 1 | 2 |\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "<h1>Title</h1>") {
		t.Errorf("expected heading, got %q", out)
	}
	if !strings.Contains(out, "<table>") || !strings.Contains(out, "<td>2</td>") {
		t.Errorf("expected GFM table, got %q", out)
	}
}

func TestCell_EscapesPipesAndNewlines(t *testing.T) {
	if got := cell("a |\n b"); got != `a \| b` {
		t.Errorf("expected %q, got %q", `a \| b`, got)
	}
}
