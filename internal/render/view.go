package render

import (
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/sheetbill/internal/core/domain"
	"github.com/SscSPs/sheetbill/internal/utils"
	"github.com/shopspring/decimal"
)

// ImageFormat is the encoding of an embedded image.
type ImageFormat string

const (
	ImagePNG  ImageFormat = "png"
	ImageJPEG ImageFormat = "jpg"
)

// Image is raw image bytes ready for embedding.
type Image struct {
	Data   []byte
	Format ImageFormat
}

// ImageFormatFromMime maps a Drive mime type to an ImageFormat.
func ImageFormatFromMime(mime string) (ImageFormat, bool) {
	switch strings.ToLower(mime) {
	case "image/png":
		return ImagePNG, true
	case "image/jpeg", "image/jpg":
		return ImageJPEG, true
	}
	return "", false
}

// TaxLine is one row of the tax summary, grouped by HSN code and rate.
type TaxLine struct {
	HSN     string
	Rate    decimal.Decimal
	Taxable decimal.Decimal
	CGST    decimal.Decimal
	SGST    decimal.Decimal
	IGST    decimal.Decimal
}

// Total is the tax of the line across all components.
func (t TaxLine) Total() decimal.Decimal {
	return t.CGST.Add(t.SGST).Add(t.IGST)
}

// View is the normalized data an invoice is printed from.
type View struct {
	Title         string
	CopyLabel     string
	Seller        domain.BusinessDetails
	Buyer         domain.Party
	ShipTo        domain.Address
	Invoice       domain.Invoice
	PlaceOfSupply domain.State
	InterState    bool
	TaxLines      []TaxLine
	AmountInWords string
	PaymentStatus string
	Bank          *domain.BankAccount
	UPIPayload    string
	Notes         string
	Terms         string
	SignatoryName string
	Logo          *Image
	Signature     *Image
}

// NewView derives the printable view of inv using the seller settings.
// Invoice level notes, terms and bank override the settings defaults.
func NewView(inv domain.Invoice, settings domain.Settings, now time.Time) *View {
	v := &View{
		Title:         "TAX INVOICE",
		CopyLabel:     "ORIGINAL FOR RECIPIENT",
		Seller:        settings.CompanyDetails,
		Buyer:         inv.Customer,
		Invoice:       inv,
		AmountInWords: utils.AmountInWords(inv.Total),
		PaymentStatus: inv.PaymentState(now),
		Notes:         firstNonEmpty(inv.Notes, settings.NotesTerms.InvoiceNotes),
		Terms:         firstNonEmpty(inv.Terms, settings.NotesTerms.InvoiceTerms),
		SignatoryName: firstNonEmpty(inv.Signature.Name, settings.Signatures.SignatoryName),
	}

	switch {
	case !inv.Shipping.Address.IsZero():
		v.ShipTo = inv.Shipping.Address
	case !inv.Customer.ShippingAddress.IsZero():
		v.ShipTo = inv.Customer.ShippingAddress
	default:
		v.ShipTo = inv.Customer.BillingAddress
	}

	v.PlaceOfSupply = inv.PlaceOfSupply
	if v.PlaceOfSupply.Code == "" {
		v.PlaceOfSupply = resolveState(inv.Customer.BillingAddress.State, inv.Customer.CompanyDetails.GSTIN)
	}
	sellerState := resolveState(settings.CompanyDetails.Address.State, settings.CompanyDetails.GSTIN)
	v.InterState = sellerState.Code != "" && v.PlaceOfSupply.Code != "" && sellerState.Code != v.PlaceOfSupply.Code
	v.TaxLines = buildTaxLines(inv, v.InterState)

	if inv.BankAccount != nil {
		bank := *inv.BankAccount
		v.Bank = &bank
	} else if bank, ok := settings.Banks.Default(); ok {
		v.Bank = &bank
	}
	if v.Bank != nil && v.Bank.UPIID != "" && inv.BalanceDue.IsPositive() {
		v.UPIPayload = upiPayload(v.Bank.UPIID, firstNonEmpty(v.Bank.AccountName, v.Seller.Name), inv.BalanceDue, inv.ID)
	}
	return v
}

func resolveState(st domain.State, gstin string) domain.State {
	if st.Code != "" {
		return st
	}
	if st.Name != "" {
		if byName := domain.StateByName(st.Name); byName.Code != "" {
			return byName
		}
	}
	if fromGSTIN, ok := domain.StateFromGSTIN(gstin); ok {
		return fromGSTIN
	}
	return st
}

var decimalTwo = decimal.NewFromInt(2)

type taxKey struct {
	hsn  string
	rate string
}

// buildTaxLines groups items and taxed charges. Intra-state tax is split
// evenly between CGST and SGST, the odd paisa going to SGST.
func buildTaxLines(inv domain.Invoice, interState bool) []TaxLine {
	groups := map[taxKey]*TaxLine{}
	var order []taxKey
	add := func(hsn string, rate, taxable, tax decimal.Decimal) {
		if tax.IsZero() && rate.IsZero() {
			return
		}
		k := taxKey{hsn: hsn, rate: rate.String()}
		line, ok := groups[k]
		if !ok {
			line = &TaxLine{HSN: hsn, Rate: rate}
			groups[k] = line
			order = append(order, k)
		}
		line.Taxable = line.Taxable.Add(taxable)
		if interState {
			line.IGST = line.IGST.Add(tax)
			return
		}
		half := tax.Div(decimalTwo).RoundDown(2)
		line.CGST = line.CGST.Add(half)
		line.SGST = line.SGST.Add(tax.Sub(half))
	}

	for _, item := range inv.Items {
		add(item.HSNCode, item.TaxRate, item.TaxableValue, item.TaxAmount)
	}
	for _, ch := range inv.AdditionalCharges {
		add("", ch.TaxRate, ch.Amount, ch.Amount.Mul(ch.TaxRate).Div(decimal.NewFromInt(100)).Round(2))
	}

	sort.SliceStable(order, func(i, j int) bool {
		return groups[order[i]].Rate.LessThan(groups[order[j]].Rate)
	})
	out := make([]TaxLine, 0, len(order))
	for _, k := range order {
		out = append(out, *groups[k])
	}
	return out
}

func sumTax(lines []TaxLine) (cgst, sgst decimal.Decimal) {
	for _, l := range lines {
		cgst = cgst.Add(l.CGST)
		sgst = sgst.Add(l.SGST)
	}
	return cgst, sgst
}

// upiPayload builds a UPI deep link for the amount due.
func upiPayload(vpa, payee string, amount decimal.Decimal, invoiceID string) string {
	q := url.Values{}
	q.Set("pa", vpa)
	q.Set("pn", payee)
	q.Set("am", amount.StringFixed(2))
	q.Set("cu", "INR")
	if invoiceID != "" {
		q.Set("tn", "Invoice "+invoiceID)
	}
	return "upi://pay?" + q.Encode()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// money formats an amount for print. The basic font has no rupee glyph.
func money(d decimal.Decimal) string {
	return "Rs. " + utils.FormatINR(d)
}
