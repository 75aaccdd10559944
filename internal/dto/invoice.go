package dto

import (
	"github.com/SscSPs/sheetbill/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// LineItemRequest is a billed row as sent by the client. Derived amounts are
// always recomputed server side.
type LineItemRequest struct {
	ProductID       string          `json:"productId"`
	Name            string          `json:"name" binding:"required"`
	Description     string          `json:"description"`
	HSNCode         string          `json:"hsnCode"`
	Quantity        decimal.Decimal `json:"quantity"`
	Unit            string          `json:"unit"`
	Price           decimal.Decimal `json:"price"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	TaxRate         decimal.Decimal `json:"taxRate"`
}

// ToLineItem converts the request row to a domain line item.
func (r LineItemRequest) ToLineItem() domain.LineItem {
	return domain.LineItem{
		ProductID:       r.ProductID,
		Name:            r.Name,
		Description:     r.Description,
		HSNCode:         r.HSNCode,
		Quantity:        r.Quantity,
		Unit:            r.Unit,
		Price:           r.Price,
		DiscountPercent: r.DiscountPercent,
		TaxRate:         r.TaxRate,
	}
}

// ToLineItems converts a slice of request rows.
func ToLineItems(items []LineItemRequest) []domain.LineItem {
	out := make([]domain.LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, it.ToLineItem())
	}
	return out
}

// CreateInvoiceRequest defines the data needed to create an invoice.
// Prefix, number, due date, notes and terms fall back to the settings preferences.
type CreateInvoiceRequest struct {
	Prefix              string                 `json:"prefix"`
	Number              int                    `json:"number" binding:"omitempty,min=1"`
	CustomerID          string                 `json:"customerId" binding:"required"`
	InvoiceDate         string                 `json:"invoiceDate" binding:"omitempty,datetime=2006-01-02"`
	DueDate             string                 `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	PlaceOfSupply       *domain.State          `json:"placeOfSupply"`
	Items               []LineItemRequest      `json:"items" binding:"required,min=1,dive"`
	AdditionalCharges   []domain.Charge        `json:"additionalCharges"`
	GlobalDiscount      *domain.Discount       `json:"globalDiscount"`
	PaymentModes        []string               `json:"paymentModes"`
	BankAccountID       string                 `json:"bankAccountId"`
	TDS                 *domain.TaxWithholding `json:"tds"`
	TDSUnderGST         *domain.TaxWithholding `json:"tdsUnderGst"`
	TCS                 *domain.TaxWithholding `json:"tcs"`
	Notes               *string                `json:"notes"`
	Terms               *string                `json:"terms"`
	Reference           string                 `json:"reference"`
	Attachments         []domain.Attachment    `json:"attachments"`
	DispatchFromAddress *domain.Address        `json:"dispatchFromAddress"`
	Shipping            *domain.Shipping       `json:"shipping"`
	Signature           *domain.SignatureRef   `json:"signature"`
	Status              domain.InvoiceStatus   `json:"status" binding:"omitempty,oneof=Draft Sent"`
}

// UpdateInvoiceRequest carries a partial update. Nil fields keep the stored value.
type UpdateInvoiceRequest struct {
	CustomerID          *string                `json:"customerId"`
	InvoiceDate         *string                `json:"invoiceDate" binding:"omitempty,datetime=2006-01-02"`
	DueDate             *string                `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	PlaceOfSupply       *domain.State          `json:"placeOfSupply"`
	Items               *[]LineItemRequest     `json:"items"`
	AdditionalCharges   *[]domain.Charge       `json:"additionalCharges"`
	GlobalDiscount      *domain.Discount       `json:"globalDiscount"`
	PaymentModes        *[]string              `json:"paymentModes"`
	BankAccountID       *string                `json:"bankAccountId"`
	TDS                 *domain.TaxWithholding `json:"tds"`
	TDSUnderGST         *domain.TaxWithholding `json:"tdsUnderGst"`
	TCS                 *domain.TaxWithholding `json:"tcs"`
	Notes               *string                `json:"notes"`
	Terms               *string                `json:"terms"`
	Reference           *string                `json:"reference"`
	Attachments         *[]domain.Attachment   `json:"attachments"`
	DispatchFromAddress *domain.Address        `json:"dispatchFromAddress"`
	Shipping            *domain.Shipping       `json:"shipping"`
	Signature           *domain.SignatureRef   `json:"signature"`
	PDFURL              *string                `json:"pdfUrl"`
}

// UpdateInvoiceStatusRequest moves an invoice through its lifecycle.
type UpdateInvoiceStatusRequest struct {
	Status domain.InvoiceStatus `json:"status" binding:"required,oneof=Draft Sent Paid Overdue Cancelled"`
}

// ListInvoicesParams filters the invoice list.
type ListInvoicesParams struct {
	Status     string `form:"status"`
	CustomerID string `form:"customerId"`
}

// ListInvoicesResponse wraps the invoice list.
type ListInvoicesResponse struct {
	Invoices []domain.Invoice `json:"invoices"`
	Count    int              `json:"count"`
}

// ToListInvoicesResponse builds the list response, never returning a null array.
func ToListInvoicesResponse(invoices []domain.Invoice) ListInvoicesResponse {
	if invoices == nil {
		invoices = []domain.Invoice{}
	}
	return ListInvoicesResponse{Invoices: invoices, Count: len(invoices)}
}
