package render

import (
	"fmt"
	"strings"

	"github.com/SscSPs/sheetbill/internal/core/domain"
)

// BlockKind names a block for exporters and tests.
type BlockKind string

const (
	KindHeader        BlockKind = "header"
	KindParties       BlockKind = "parties"
	KindTableHeader   BlockKind = "table_header"
	KindItemRow       BlockKind = "item_row"
	KindTableFooter   BlockKind = "table_footer"
	KindAmountWords   BlockKind = "amount_words"
	KindTaxSummary    BlockKind = "tax_summary"
	KindPaymentStatus BlockKind = "payment_status"
	KindBank          BlockKind = "bank"
	KindTerms         BlockKind = "terms"
)

// Align is the horizontal alignment of a column's text.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// Line is one logical line of text. It may wrap when printed.
type Line struct {
	Text string
	Bold bool
}

// Column is a cell spanning Span of the twelve grid columns. Images and QR
// codes are drawn above the text and take ImageHeight pixels.
type Column struct {
	Span        int
	Align       Align
	Lines       []Line
	Image       *Image
	QR          string
	ImageHeight int
}

// Block is a horizontal band of the page. Its height comes from a Measurer.
type Block struct {
	Kind    BlockKind
	Columns []Column
	Shaded  bool
}

// Blocks are the invoice content in reading order.
type Blocks struct {
	Before      []Block
	TableHeader Block
	Rows        []Block
	TableFooter Block
	After       []Block
}

const (
	logoHeightPx      = 64
	qrHeightPx        = 84
	signatureHeightPx = 48
	dateLayout        = "02 Jan 2006"
)

// BuildBlocks lays the view out as blocks. Empty optional sections are left
// out instead of printed blank.
func BuildBlocks(v *View) Blocks {
	b := Blocks{
		Before:      []Block{headerBlock(v), partiesBlock(v)},
		TableHeader: tableHeaderBlock(),
		TableFooter: tableFooterBlock(v),
	}
	for i, item := range v.Invoice.Items {
		b.Rows = append(b.Rows, itemRowBlock(i, item))
	}

	b.After = append(b.After, Block{Kind: KindAmountWords, Columns: []Column{{
		Span:  gridColumns,
		Lines: []Line{{Text: "Amount in words:", Bold: true}, {Text: v.AmountInWords}},
	}}})
	if len(v.TaxLines) > 0 {
		b.After = append(b.After, taxSummaryBlock(v))
	}
	b.After = append(b.After, paymentStatusBlock(v), bankBlock(v))
	if terms, ok := termsBlock(v); ok {
		b.After = append(b.After, terms)
	}
	return b
}

func headerBlock(v *View) Block {
	s := v.Seller
	lines := []Line{{Text: s.Name, Bold: true}}
	if s.LegalName != "" && s.LegalName != s.Name {
		lines = append(lines, Line{Text: s.LegalName})
	}
	lines = append(lines, textLines(s.Address.Lines())...)
	if s.GSTIN != "" {
		lines = append(lines, Line{Text: "GSTIN: " + s.GSTIN})
	}
	if s.PAN != "" {
		lines = append(lines, Line{Text: "PAN: " + s.PAN})
	}
	if contact := joinNonEmpty(" | ", s.Phone, s.Email, s.Website); contact != "" {
		lines = append(lines, Line{Text: contact})
	}

	if v.Logo == nil {
		return Block{Kind: KindHeader, Columns: []Column{{Span: gridColumns, Lines: lines}}}
	}
	return Block{Kind: KindHeader, Columns: []Column{
		{Span: 2, Image: v.Logo, ImageHeight: logoHeightPx},
		{Span: 10, Lines: lines},
	}}
}

func partiesBlock(v *View) Block {
	buyer := v.Buyer
	bill := []Line{{Text: "Bill To", Bold: true}, {Text: buyer.Name, Bold: true}}
	if buyer.CompanyDetails.CompanyName != "" && buyer.CompanyDetails.CompanyName != buyer.Name {
		bill = append(bill, Line{Text: buyer.CompanyDetails.CompanyName})
	}
	bill = append(bill, textLines(buyer.BillingAddress.Lines())...)
	if buyer.CompanyDetails.GSTIN != "" {
		bill = append(bill, Line{Text: "GSTIN: " + buyer.CompanyDetails.GSTIN})
	}
	if buyer.Phone != "" {
		bill = append(bill, Line{Text: "Phone: " + buyer.Phone})
	}

	ship := append([]Line{{Text: "Ship To", Bold: true}}, textLines(v.ShipTo.Lines())...)
	if v.Invoice.Shipping.Transporter != "" {
		ship = append(ship, Line{Text: "Transporter: " + v.Invoice.Shipping.Transporter})
	}
	if v.Invoice.Shipping.VehicleNumber != "" {
		ship = append(ship, Line{Text: "Vehicle: " + v.Invoice.Shipping.VehicleNumber})
	}

	inv := v.Invoice
	meta := []Line{{Text: "Invoice No: " + inv.ID, Bold: true}}
	if !inv.InvoiceDate.IsZero() {
		meta = append(meta, Line{Text: "Invoice Date: " + inv.InvoiceDate.Format(dateLayout)})
	}
	if !inv.DueDate.IsZero() {
		meta = append(meta, Line{Text: "Due Date: " + inv.DueDate.Format(dateLayout)})
	}
	if v.PlaceOfSupply.Name != "" {
		meta = append(meta, Line{Text: "Place of Supply: " + joinNonEmpty("-", v.PlaceOfSupply.Code, v.PlaceOfSupply.Name)})
	}
	if inv.Reference != "" {
		meta = append(meta, Line{Text: "Reference: " + inv.Reference})
	}

	return Block{Kind: KindParties, Columns: []Column{
		{Span: 4, Lines: bill},
		{Span: 4, Lines: ship},
		{Span: 4, Lines: meta},
	}}
}

// itemSpans are the table columns: #, item, HSN, qty, rate, tax, amount.
var itemSpans = [7]int{1, 4, 1, 1, 2, 1, 2}

func tableHeaderBlock() Block {
	titles := [7]string{"#", "Item", "HSN", "Qty", "Rate", "Tax", "Amount"}
	cols := make([]Column, len(titles))
	for i, t := range titles {
		cols[i] = Column{Span: itemSpans[i], Align: itemAlign(i), Lines: []Line{{Text: t, Bold: true}}}
	}
	return Block{Kind: KindTableHeader, Columns: cols, Shaded: true}
}

func itemRowBlock(i int, item domain.LineItem) Block {
	name := []Line{{Text: item.Name}}
	if item.Description != "" {
		name = append(name, textLines(strings.Split(item.Description, "\n"))...)
	}
	if item.DiscountPercent.IsPositive() {
		name = append(name, Line{Text: "Discount " + item.DiscountPercent.String() + "%"})
	}
	cells := [7][]Line{
		{{Text: fmt.Sprint(i + 1)}},
		name,
		{{Text: item.HSNCode}},
		{{Text: strings.TrimSpace(item.Quantity.String() + " " + item.Unit)}},
		{{Text: money(item.Price)}},
		{{Text: item.TaxRate.String() + "%"}},
		{{Text: money(item.Amount)}},
	}
	cols := make([]Column, len(cells))
	for c, lines := range cells {
		cols[c] = Column{Span: itemSpans[c], Align: itemAlign(c), Lines: lines}
	}
	return Block{Kind: KindItemRow, Columns: cols}
}

func itemAlign(col int) Align {
	switch col {
	case 0, 1, 2:
		return AlignLeft
	}
	return AlignRight
}

func tableFooterBlock(v *View) Block {
	inv := v.Invoice
	var labels, values []Line
	add := func(label, value string, bold bool) {
		labels = append(labels, Line{Text: label, Bold: bold})
		values = append(values, Line{Text: value, Bold: bold})
	}

	add("Subtotal", money(inv.Subtotal), false)
	for _, ch := range inv.AdditionalCharges {
		add(ch.Name, money(ch.Amount), false)
	}
	if inv.GlobalDiscount.Amount.IsPositive() {
		add("Discount", "- "+money(inv.GlobalDiscount.Amount), false)
	}
	if v.InterState {
		add("IGST", money(inv.TaxAmount), false)
	} else if inv.TaxAmount.IsPositive() {
		cgst, sgst := sumTax(v.TaxLines)
		add("CGST", money(cgst), false)
		add("SGST", money(sgst), false)
	}
	if inv.TCS.Enabled {
		add("TCS @ "+inv.TCS.Rate.String()+"%", money(inv.TCS.Amount), false)
	}
	if !inv.RoundOff.IsZero() {
		add("Round Off", inv.RoundOff.StringFixed(2), false)
	}
	add("Total", money(inv.Total), true)
	if inv.AmountPaid.IsPositive() {
		add("Amount Paid", money(inv.AmountPaid), false)
	}
	if inv.TDS.Enabled {
		add("TDS @ "+inv.TDS.Rate.String()+"%", "- "+money(inv.TDS.Amount), false)
	}
	if inv.TDSUnderGST.Enabled {
		add("TDS under GST @ "+inv.TDSUnderGST.Rate.String()+"%", "- "+money(inv.TDSUnderGST.Amount), false)
	}
	add("Balance Due", money(inv.BalanceDue), true)

	return Block{Kind: KindTableFooter, Columns: []Column{
		{Span: 8, Align: AlignRight, Lines: labels},
		{Span: 4, Align: AlignRight, Lines: values},
	}}
}

func taxSummaryBlock(v *View) Block {
	hsn := []Line{{Text: "HSN/SAC", Bold: true}}
	taxable := []Line{{Text: "Taxable Value", Bold: true}}
	total := []Line{{Text: "Total Tax", Bold: true}}
	var cgst, sgst, igst []Line
	if v.InterState {
		igst = []Line{{Text: "IGST", Bold: true}}
	} else {
		cgst = []Line{{Text: "CGST", Bold: true}}
		sgst = []Line{{Text: "SGST", Bold: true}}
	}

	for _, t := range v.TaxLines {
		hsn = append(hsn, Line{Text: firstNonEmpty(t.HSN, "-")})
		taxable = append(taxable, Line{Text: money(t.Taxable)})
		total = append(total, Line{Text: money(t.Total())})
		rate := t.Rate
		if v.InterState {
			igst = append(igst, Line{Text: rate.String() + "% " + money(t.IGST)})
			continue
		}
		half := rate.Div(decimalTwo).String() + "% "
		cgst = append(cgst, Line{Text: half + money(t.CGST)})
		sgst = append(sgst, Line{Text: half + money(t.SGST)})
	}

	cols := []Column{{Span: 2, Lines: hsn}, {Span: 3, Align: AlignRight, Lines: taxable}}
	if v.InterState {
		cols = append(cols, Column{Span: 4, Align: AlignRight, Lines: igst})
	} else {
		cols = append(cols,
			Column{Span: 2, Align: AlignRight, Lines: cgst},
			Column{Span: 2, Align: AlignRight, Lines: sgst},
		)
	}
	cols = append(cols, Column{Span: 3, Align: AlignRight, Lines: total})
	return Block{Kind: KindTaxSummary, Columns: cols}
}

func paymentStatusBlock(v *View) Block {
	lines := []Line{{Text: "Payment Status: " + v.PaymentStatus, Bold: true}}
	if v.Invoice.AmountPaid.IsPositive() {
		lines = append(lines, Line{Text: "Received " + money(v.Invoice.AmountPaid) + " of " + money(v.Invoice.Total)})
	}
	if len(v.Invoice.PaymentModes) > 0 {
		lines = append(lines, Line{Text: "Payment modes: " + strings.Join(v.Invoice.PaymentModes, ", ")})
	}
	return Block{Kind: KindPaymentStatus, Shaded: true, Columns: []Column{{Span: gridColumns, Align: AlignCenter, Lines: lines}}}
}

func bankBlock(v *View) Block {
	var cols []Column
	if bank := v.Bank; bank != nil {
		lines := []Line{{Text: "Bank Details", Bold: true}}
		for _, kv := range [][2]string{
			{"Bank", bank.BankName},
			{"A/c Name", bank.AccountName},
			{"A/c No", bank.AccountNumber},
			{"IFSC", bank.IFSC},
			{"Branch", bank.Branch},
			{"UPI", bank.UPIID},
		} {
			if kv[1] != "" {
				lines = append(lines, Line{Text: kv[0] + ": " + kv[1]})
			}
		}
		cols = append(cols, Column{Span: 6, Lines: lines})
	} else {
		cols = append(cols, Column{Span: 6})
	}

	if v.UPIPayload != "" {
		cols = append(cols, Column{Span: 2, Align: AlignCenter, QR: v.UPIPayload, ImageHeight: qrHeightPx, Lines: []Line{{Text: "Scan to pay"}}})
	} else {
		cols = append(cols, Column{Span: 2})
	}

	sign := Column{Span: 4, Align: AlignRight}
	sign.Lines = append(sign.Lines, Line{Text: "For " + v.Seller.Name, Bold: true})
	if v.Signature != nil {
		sign.Image = v.Signature
		sign.ImageHeight = signatureHeightPx
	}
	if v.SignatoryName != "" {
		sign.Lines = append(sign.Lines, Line{Text: v.SignatoryName})
	}
	sign.Lines = append(sign.Lines, Line{Text: "Authorised Signatory"})
	cols = append(cols, sign)

	return Block{Kind: KindBank, Columns: cols}
}

func termsBlock(v *View) (Block, bool) {
	var lines []Line
	if strings.TrimSpace(v.Notes) != "" {
		lines = append(lines, Line{Text: "Notes", Bold: true})
		lines = append(lines, textLines(strings.Split(v.Notes, "\n"))...)
	}
	if strings.TrimSpace(v.Terms) != "" {
		lines = append(lines, Line{Text: "Terms & Conditions", Bold: true})
		lines = append(lines, textLines(strings.Split(v.Terms, "\n"))...)
	}
	if len(lines) == 0 {
		return Block{}, false
	}
	return Block{Kind: KindTerms, Columns: []Column{{Span: gridColumns, Lines: lines}}}, true
}

func textLines(texts []string) []Line {
	out := make([]Line, 0, len(texts))
	for _, t := range texts {
		out = append(out, Line{Text: t})
	}
	return out
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
