// Package report renders parsed EDGAR documents as Markdown summaries and
// converts them to HTML.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/dgallion1/edgarparse/internal/ownership"
	"github.com/dgallion1/edgarparse/internal/schema"
	"github.com/dgallion1/edgarparse/internal/thirteenf"
	"github.com/dgallion1/edgarparse/internal/xbrl"
)

// Summary is a one-line description of a parsed document.
type Summary struct {
	Title string `json:"title"`
	Items int    `json:"items"`
}

// Summarize returns the title and item count of a parsed document.
// Items counts facts, transactions plus holdings, table entries, or the
// declared entry total of a 13F primary document.
func Summarize(doc any) (Summary, error) {
	switch d := doc.(type) {
	case *ownership.Document:
		return Summary{Title: ownershipTitle(d), Items: d.TransactionCount() + d.HoldingCount()}, nil
	case *thirteenf.Document:
		items := 0
		if d.FormData != nil && d.FormData.SummaryPage != nil && d.FormData.SummaryPage.TableEntryTotal != nil {
			items = int(*d.FormData.SummaryPage.TableEntryTotal)
		}
		return Summary{Title: thirteenFTitle(d), Items: items}, nil
	case *thirteenf.Table:
		return Summary{Title: "13F Information Table", Items: len(d.Entries)}, nil
	case *xbrl.Document:
		return Summary{Title: "XBRL Instance", Items: len(d.Facts)}, nil
	}
	return Summary{}, fmt.Errorf("report: unsupported document type %T", doc)
}

// Markdown renders a parsed document as a GitHub-flavored Markdown report.
func Markdown(doc any) (string, error) {
	var b strings.Builder
	switch d := doc.(type) {
	case *ownership.Document:
		writeOwnership(&b, d)
	case *thirteenf.Document:
		writeThirteenFDocument(&b, d)
	case *thirteenf.Table:
		writeThirteenFTable(&b, d)
	case *xbrl.Document:
		writeXBRL(&b, d)
	default:
		return "", fmt.Errorf("report: unsupported document type %T", doc)
	}
	return b.String(), nil
}

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// HTML converts Markdown to an HTML fragment.
func HTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}

func ownershipTitle(d *ownership.Document) string {
	title := "Form " + str(d.DocumentType)
	if d.Issuer != nil {
		title += ": " + str(d.Issuer.Name)
		if d.Issuer.TradingSymbol != nil {
			title += " (" + *d.Issuer.TradingSymbol + ")"
		}
	}
	return title
}

func thirteenFTitle(d *thirteenf.Document) string {
	title := "13F"
	if d.HeaderData != nil && d.HeaderData.SubmissionType != nil {
		title = *d.HeaderData.SubmissionType
	}
	if d.FormData != nil && d.FormData.CoverPage != nil && d.FormData.CoverPage.FilingManager != nil {
		title += ": " + str(d.FormData.CoverPage.FilingManager.Name)
	}
	return title
}

func writeOwnership(b *strings.Builder, d *ownership.Document) {
	fmt.Fprintf(b, "# %s\n\n", ownershipTitle(d))
	fmt.Fprintf(b, "- Period of report: %s\n", str(d.PeriodOfReport))
	if ro := d.ReportingOwner; ro != nil {
		if ro.ID != nil {
			fmt.Fprintf(b, "- Reporting owner: %s (CIK %s)\n", str(ro.ID.Name), str(ro.ID.CIK))
		}
		if ro.Relationship != nil {
			fmt.Fprintf(b, "- Relationship: %s\n", relationship(ro.Relationship))
		}
	}
	if s := d.OwnerSignature; s != nil {
		fmt.Fprintf(b, "- Signed: %s on %s\n", str(s.Name), str(s.Date))
	}

	if t := d.NonDerivativeTable; t != nil {
		if len(t.Transactions) > 0 {
			b.WriteString("\n## Non-derivative transactions\n\n")
			rows := lo.Map(t.Transactions, func(tx ownership.NonDerivativeTransaction, _ int) []string {
				amt := tx.TransactionAmounts
				if amt == nil {
					amt = &ownership.TransactionAmounts{}
				}
				return []string{vf(tx.SecurityTitle), vf(tx.TransactionDate), code(tx.TransactionCoding),
					vf(amt.Shares), vf(amt.PricePerShare), vf(amt.AcquiredDisposedCode), owned(tx.PostTransactionAmounts)}
			})
			writeTable(b, []string{"Security", "Date", "Code", "Shares", "Price", "A/D", "Owned after"}, rows)
		}
		if len(t.Holdings) > 0 {
			b.WriteString("\n## Non-derivative holdings\n\n")
			rows := lo.Map(t.Holdings, func(h ownership.NonDerivativeHolding, _ int) []string {
				return []string{vf(h.SecurityTitle), owned(h.PostTransactionAmounts), nature(h.OwnershipNature)}
			})
			writeTable(b, []string{"Security", "Owned", "Ownership"}, rows)
		}
	}

	if t := d.DerivativeTable; t != nil {
		if len(t.Transactions) > 0 {
			b.WriteString("\n## Derivative transactions\n\n")
			rows := lo.Map(t.Transactions, func(tx ownership.DerivativeTransaction, _ int) []string {
				shares, price := "", ""
				if amt := tx.TransactionAmounts; amt != nil {
					shares, price = vf(amt.Shares), vf(amt.PricePerShare)
				}
				return []string{vf(tx.SecurityTitle), vf(tx.TransactionDate), code(tx.TransactionCoding),
					shares, price, vf(tx.ConversionOrExercisePrice), vf(tx.ExpirationDate)}
			})
			writeTable(b, []string{"Security", "Date", "Code", "Shares", "Price", "Exercise price", "Expires"}, rows)
		}
		if len(t.Holdings) > 0 {
			b.WriteString("\n## Derivative holdings\n\n")
			rows := lo.Map(t.Holdings, func(h ownership.DerivativeHolding, _ int) []string {
				return []string{vf(h.SecurityTitle), vf(h.ConversionOrExercisePrice), owned(h.PostTransactionAmounts), nature(h.OwnershipNature)}
			})
			writeTable(b, []string{"Security", "Exercise price", "Owned", "Ownership"}, rows)
		}
	}

	if len(d.Footnotes) > 0 {
		b.WriteString("\n## Footnotes\n\n")
		for _, fn := range d.Footnotes {
			fmt.Fprintf(b, "- **%s**: %s\n", str(fn.ID), strings.TrimSpace(str(fn.Note)))
		}
	}
}

func writeThirteenFDocument(b *strings.Builder, d *thirteenf.Document) {
	fmt.Fprintf(b, "# %s\n\n", thirteenFTitle(d))
	if h := d.HeaderData; h != nil && h.FilerInfo != nil {
		fmt.Fprintf(b, "- Period of report: %s\n", str(h.FilerInfo.PeriodOfReport))
		if f := h.FilerInfo.Filer; f != nil && f.Credentials != nil {
			fmt.Fprintf(b, "- Filer CIK: %s\n", str(f.Credentials.CIK))
		}
	}
	if d.FormData == nil {
		return
	}
	if c := d.FormData.CoverPage; c != nil {
		fmt.Fprintf(b, "- Report type: %s\n", str(c.ReportType))
		fmt.Fprintf(b, "- Calendar quarter: %s\n", str(c.ReportCalendarOrQuarter))
		if len(c.OtherManagers) > 0 {
			names := lo.FilterMap(c.OtherManagers, func(m thirteenf.OtherManager, _ int) (string, bool) {
				return str(m.Name), m.Name != nil
			})
			fmt.Fprintf(b, "- Other managers: %s\n", strings.Join(names, ", "))
		}
	}
	if s := d.FormData.SummaryPage; s != nil {
		b.WriteString("\n## Summary\n\n")
		writeTable(b, []string{"Entries", "Value total", "Other managers"}, [][]string{{
			intStr(s.TableEntryTotal), intStr(s.TableValueTotal), intStr(s.OtherIncludedManagersCount),
		}})
	}
	if s := d.FormData.SignatureBlock; s != nil {
		fmt.Fprintf(b, "\nSigned by %s, %s, on %s.\n", str(s.Name), str(s.Title), str(s.SignatureDate))
	}
}

func writeThirteenFTable(b *strings.Builder, t *thirteenf.Table) {
	b.WriteString("# 13F Information Table\n\n")
	fmt.Fprintf(b, "- Entries: %d\n- Total value: %d\n", len(t.Entries), t.TotalValue())
	if len(t.Entries) == 0 {
		return
	}
	b.WriteString("\n")
	rows := lo.Map(t.Entries, func(e thirteenf.TableEntry, _ int) []string {
		amount, typ := "", ""
		if s := e.SharesOrPrincipal; s != nil {
			amount, typ = intStr(s.Amount), str(s.Type)
		}
		sole, shared, none := "", "", ""
		if v := e.VotingAuthority; v != nil {
			sole, shared, none = intStr(v.Sole), intStr(v.Shared), intStr(v.None)
		}
		return []string{str(e.NameOfIssuer), str(e.TitleOfClass), str(e.CUSIP), intStr(e.Value),
			amount, typ, str(e.InvestmentDiscretion), sole, shared, none}
	})
	writeTable(b, []string{"Issuer", "Class", "CUSIP", "Value", "Amount", "Type", "Discretion", "Sole", "Shared", "None"}, rows)
}

func writeXBRL(b *strings.Builder, d *xbrl.Document) {
	b.WriteString("# XBRL Instance\n\n")
	entities := lo.Uniq(lo.Map(d.Facts, func(f xbrl.Fact, _ int) string { return f.Context.Entity }))
	fmt.Fprintf(b, "- Facts: %d\n- Concepts: %d\n- Entities: %s\n", len(d.Facts), len(d.Concepts()), strings.Join(entities, ", "))
	if len(d.Facts) == 0 {
		return
	}
	b.WriteString("\n")
	rows := lo.Map(d.Facts, func(f xbrl.Fact, _ int) []string {
		return []string{f.Concept, period(f.Context.Period), dims(f.Context.Segments), f.Value.String(), str(f.Unit)}
	})
	writeTable(b, []string{"Concept", "Period", "Dimensions", "Value", "Unit"}, rows)
}

func writeTable(b *strings.Builder, header []string, rows [][]string) {
	b.WriteString("| " + strings.Join(header, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(header)) + "\n")
	for _, row := range rows {
		b.WriteString("| " + strings.Join(lo.Map(row, func(c string, _ int) string { return cell(c) }), " | ") + " |\n")
	}
}

// cell keeps a value on one table row.
func cell(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.ReplaceAll(s, "|", `\|`)
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intStr(i *int64) string {
	if i == nil {
		return ""
	}
	return fmt.Sprintf("%d", *i)
}

func vf(v *schema.ValueFootnote) string {
	text, ok := v.Text()
	if !ok {
		return ""
	}
	return text
}

func code(c *ownership.TransactionCoding) string {
	if c == nil {
		return ""
	}
	return str(c.TransactionCode)
}

func owned(p *ownership.PostTransactionAmounts) string {
	if p == nil {
		return ""
	}
	if p.SharesOwnedFollowingTransaction != nil {
		return vf(p.SharesOwnedFollowingTransaction)
	}
	return vf(p.ValueOwnedFollowingTransaction)
}

func nature(n *ownership.OwnershipNature) string {
	if n == nil {
		return ""
	}
	out := vf(n.DirectOrIndirectOwnership)
	if extra := vf(n.NatureOfOwnership); extra != "" {
		out += " (" + extra + ")"
	}
	return out
}

type role struct {
	set  *bool
	name string
}

func relationship(r *ownership.ReportingOwnerRelationship) string {
	flags := []role{
		{r.IsDirector, "Director"},
		{r.IsOfficer, "Officer"},
		{r.IsTenPercentOwner, "10% Owner"},
		{r.IsOther, "Other"},
	}
	roles := lo.FilterMap(flags, func(f role, _ int) (string, bool) {
		return f.name, f.set != nil && *f.set
	})
	if r.OfficerTitle != nil {
		roles = append(roles, *r.OfficerTitle)
	}
	if len(roles) == 0 {
		return "none reported"
	}
	return strings.Join(roles, ", ")
}

func period(p xbrl.Period) string {
	switch {
	case p.Instant != nil:
		return *p.Instant
	case p.StartDate != nil || p.EndDate != nil:
		return str(p.StartDate) + " to " + str(p.EndDate)
	}
	return ""
}

func dims(segments []xbrl.Segment) string {
	return strings.Join(lo.Map(segments, func(s xbrl.Segment, _ int) string {
		return s.Dimension + "=" + s.Member
	}), ", ")
}
