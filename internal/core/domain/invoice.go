package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "Draft"
	InvoiceSent      InvoiceStatus = "Sent"
	InvoicePaid      InvoiceStatus = "Paid"
	InvoiceOverdue   InvoiceStatus = "Overdue"
	InvoiceCancelled InvoiceStatus = "Cancelled"
)

var invoiceTransitions = map[InvoiceStatus][]InvoiceStatus{
	InvoiceDraft:   {InvoiceSent, InvoicePaid, InvoiceCancelled},
	InvoiceSent:    {InvoicePaid, InvoiceOverdue, InvoiceCancelled},
	InvoiceOverdue: {InvoicePaid, InvoiceCancelled},
	InvoicePaid:    {InvoiceCancelled},
}

// IsValid reports whether s is a known status.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoicePaid, InvoiceOverdue, InvoiceCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
// Staying in the same state is always allowed; Cancelled is terminal.
func (s InvoiceStatus) CanTransitionTo(next InvoiceStatus) bool {
	if s == next {
		return next.IsValid()
	}
	for _, allowed := range invoiceTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// RoundingMode is the preference for rounding the invoice total to whole rupees.
type RoundingMode string

const (
	RoundNone    RoundingMode = "none"
	RoundNearest RoundingMode = "nearest"
	RoundUp      RoundingMode = "up"
	RoundDown    RoundingMode = "down"
)

var hundred = decimal.NewFromInt(100)

// LineItem is one billed row of an invoice. The last three fields are derived.
type LineItem struct {
	ProductID       string          `json:"productId,omitempty"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	HSNCode         string          `json:"hsnCode,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	Unit            string          `json:"unit,omitempty"`
	Price           decimal.Decimal `json:"price"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	TaxRate         decimal.Decimal `json:"taxRate"`
	TaxableValue    decimal.Decimal `json:"taxableValue"`
	TaxAmount       decimal.Decimal `json:"taxAmount"`
	Amount          decimal.Decimal `json:"amount"`
}

// Compute fills TaxableValue, TaxAmount and Amount from quantity, price,
// discount and tax rate. Money is rounded to paise.
func (li *LineItem) Compute() {
	gross := li.Quantity.Mul(li.Price)
	discount := gross.Mul(li.DiscountPercent).Div(hundred)
	li.TaxableValue = gross.Sub(discount).Round(2)
	li.TaxAmount = li.TaxableValue.Mul(li.TaxRate).Div(hundred).Round(2)
	li.Amount = li.TaxableValue.Add(li.TaxAmount)
}

// Charge is an extra amount such as freight or packing, optionally taxed.
type Charge struct {
	Name    string          `json:"name"`
	Amount  decimal.Decimal `json:"amount"`
	TaxRate decimal.Decimal `json:"taxRate"`
}

// DiscountKind selects how a global discount value is read.
type DiscountKind string

const (
	DiscountPercent DiscountKind = "percent"
	DiscountAmount  DiscountKind = "amount"
)

// Discount is applied to the invoice subtotal. Amount is derived.
type Discount struct {
	Type   DiscountKind    `json:"type"`
	Value  decimal.Decimal `json:"value"`
	Amount decimal.Decimal `json:"amount"`
}

// TaxWithholding configures TDS, TDS under GST or TCS. Amount is derived.
type TaxWithholding struct {
	Enabled bool            `json:"enabled"`
	Rate    decimal.Decimal `json:"rate"`
	Section string          `json:"section,omitempty"`
	Amount  decimal.Decimal `json:"amount"`
}

func (w *TaxWithholding) compute(base decimal.Decimal) {
	if !w.Enabled {
		w.Amount = decimal.Zero
		return
	}
	w.Amount = base.Mul(w.Rate).Div(hundred).Round(2)
}

// Attachment references a file kept in Drive.
type Attachment struct {
	Name     string `json:"name"`
	FileID   string `json:"fileId,omitempty"`
	URL      string `json:"url,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
}

// Shipping holds the consignment details printed on the invoice.
type Shipping struct {
	Address        Address `json:"address"`
	Transporter    string  `json:"transporter,omitempty"`
	VehicleNumber  string  `json:"vehicleNumber,omitempty"`
	TrackingNumber string  `json:"trackingNumber,omitempty"`
	ShippedOn      string  `json:"shippedOn,omitempty"`
}

// SignatureRef points to a signature image in Drive.
type SignatureRef struct {
	Name   string `json:"name,omitempty"`
	FileID string `json:"fileId,omitempty"`
	URL    string `json:"url,omitempty"`
}

// Invoice is a tax invoice. Its id is the prefix followed by the number.
type Invoice struct {
	ID                  string          `json:"id"`
	Prefix              string          `json:"prefix"`
	Number              int             `json:"number"`
	CustomerID          string          `json:"customerId"`
	Customer            Party           `json:"customer"`
	InvoiceDate         time.Time       `json:"invoiceDate"`
	DueDate             time.Time       `json:"dueDate"`
	PlaceOfSupply       State           `json:"placeOfSupply"`
	Items               []LineItem      `json:"items"`
	Subtotal            decimal.Decimal `json:"subtotal"`
	TaxAmount           decimal.Decimal `json:"taxAmount"`
	AdditionalCharges   []Charge        `json:"additionalCharges"`
	GlobalDiscount      Discount        `json:"globalDiscount"`
	RoundOff            decimal.Decimal `json:"roundOff"`
	Total               decimal.Decimal `json:"total"`
	AmountPaid          decimal.Decimal `json:"amountPaid"`
	BalanceDue          decimal.Decimal `json:"balanceDue"`
	Status              InvoiceStatus   `json:"status"`
	PaymentModes        []string        `json:"paymentModes"`
	BankAccount         *BankAccount    `json:"bankAccount,omitempty"`
	TDS                 TaxWithholding  `json:"tds"`
	TDSUnderGST         TaxWithholding  `json:"tdsUnderGst"`
	TCS                 TaxWithholding  `json:"tcs"`
	Notes               string          `json:"notes,omitempty"`
	Terms               string          `json:"terms,omitempty"`
	Attachments         []Attachment    `json:"attachments"`
	DispatchFromAddress Address         `json:"dispatchFromAddress"`
	Shipping            Shipping        `json:"shipping"`
	Signature           SignatureRef    `json:"signature"`
	Reference           string          `json:"reference,omitempty"`
	PDFURL              string          `json:"pdfUrl,omitempty"`
	AuditFields
}

// InvoiceID joins prefix and number into the invoice id.
func InvoiceID(prefix string, number int) string {
	return prefix + strconv.Itoa(number)
}

// ChargeTax is the tax on additional charges.
func (inv *Invoice) ChargeTax() decimal.Decimal {
	total := decimal.Zero
	for _, c := range inv.AdditionalCharges {
		total = total.Add(c.Amount.Mul(c.TaxRate).Div(hundred).Round(2))
	}
	return total
}

// ChargesTotal is the untaxed sum of additional charges.
func (inv *Invoice) ChargesTotal() decimal.Decimal {
	total := decimal.Zero
	for _, c := range inv.AdditionalCharges {
		total = total.Add(c.Amount)
	}
	return total
}

// Recalculate derives every computed money field from items, charges,
// discount, withholding, rounding and the amount already paid.
func (inv *Invoice) Recalculate(rounding RoundingMode) {
	inv.Subtotal = decimal.Zero
	inv.TaxAmount = decimal.Zero
	for i := range inv.Items {
		inv.Items[i].Compute()
		inv.Subtotal = inv.Subtotal.Add(inv.Items[i].TaxableValue)
		inv.TaxAmount = inv.TaxAmount.Add(inv.Items[i].TaxAmount)
	}
	inv.TaxAmount = inv.TaxAmount.Add(inv.ChargeTax())

	switch inv.GlobalDiscount.Type {
	case DiscountPercent:
		inv.GlobalDiscount.Amount = inv.Subtotal.Mul(inv.GlobalDiscount.Value).Div(hundred).Round(2)
	case DiscountAmount:
		inv.GlobalDiscount.Amount = inv.GlobalDiscount.Value.Round(2)
	default:
		inv.GlobalDiscount.Amount = decimal.Zero
	}

	raw := inv.Subtotal.Add(inv.TaxAmount).Add(inv.ChargesTotal()).Sub(inv.GlobalDiscount.Amount)

	inv.TCS.compute(raw)
	raw = raw.Add(inv.TCS.Amount)
	inv.TDS.compute(inv.Subtotal)
	inv.TDSUnderGST.compute(inv.Subtotal)

	total := raw
	switch rounding {
	case RoundNearest:
		total = raw.Round(0)
	case RoundUp:
		total = raw.Ceil()
	case RoundDown:
		total = raw.Floor()
	}
	inv.RoundOff = total.Sub(raw)
	inv.Total = total

	inv.BalanceDue = inv.Total.Sub(inv.AmountPaid).Sub(inv.TDS.Amount).Sub(inv.TDSUnderGST.Amount)
	if inv.BalanceDue.IsNegative() {
		inv.BalanceDue = decimal.Zero
	}
}

// ApplyPayment adds amount to AmountPaid, recomputes the balance and marks the
// invoice paid once nothing is due. Cancelled invoices reject payments.
func (inv *Invoice) ApplyPayment(amount decimal.Decimal) error {
	if inv.Status == InvoiceCancelled {
		return fmt.Errorf("invoice %s is cancelled", inv.ID)
	}
	inv.AmountPaid = inv.AmountPaid.Add(amount)
	inv.BalanceDue = inv.Total.Sub(inv.AmountPaid).Sub(inv.TDS.Amount).Sub(inv.TDSUnderGST.Amount)
	if inv.BalanceDue.IsNegative() {
		inv.BalanceDue = decimal.Zero
	}
	if inv.BalanceDue.IsZero() {
		inv.Status = InvoicePaid
	}
	return nil
}

// PaymentState is the label printed in the payment status banner.
func (inv *Invoice) PaymentState(now time.Time) string {
	switch {
	case inv.Status == InvoiceCancelled:
		return "Cancelled"
	case inv.BalanceDue.IsZero() && inv.Total.IsPositive():
		return "Paid"
	case inv.Status == InvoiceOverdue || (!inv.DueDate.IsZero() && now.After(inv.DueDate.AddDate(0, 0, 1))):
		return "Overdue"
	case inv.AmountPaid.IsPositive():
		return "Partially Paid"
	default:
		return "Unpaid"
	}
}

// NextInvoiceNumber returns one more than the highest number already used
// with prefix. Ids that do not carry the prefix are ignored.
func NextInvoiceNumber(existing []Invoice, prefix string) int {
	highest := 0
	for _, inv := range existing {
		n := inv.Number
		if inv.Prefix != prefix {
			if !strings.HasPrefix(inv.ID, prefix) {
				continue
			}
			parsed, err := strconv.Atoi(strings.TrimPrefix(inv.ID, prefix))
			if err != nil {
				continue
			}
			n = parsed
		}
		if n > highest {
			highest = n
		}
	}
	return highest + 1
}
