package sheets

import (
	"time"

	"github.com/SscSPs/sheetbill/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Tab names of the tenant spreadsheet.
const (
	TabInvoices    = "Invoices"
	TabProducts    = "Products"
	TabCustomers   = "Customers"
	TabVendors     = "Vendors"
	TabPayments    = "Payments"
	TabExpenses    = "Expenses"
	TabQuotations  = "Quotations"
	TabCreditNotes = "Credit_Notes"
	TabSettings    = "Settings"
	TabDashboard   = "Dashboard"
)

// Tabs is the tab order of a new spreadsheet.
var Tabs = []string{
	TabInvoices, TabProducts, TabCustomers, TabVendors, TabPayments,
	TabExpenses, TabQuotations, TabCreditNotes, TabSettings, TabDashboard,
}

// InvoiceSchema maps Invoices!A:AH. Column AH is the schema version.
func InvoiceSchema() Schema[domain.Invoice] {
	type I = domain.Invoice
	return Schema[I]{
		Sheet:   TabInvoices,
		Version: 1,
		ID:      func(v *I) string { return v.ID },
		Columns: []Column[I]{
			stringCol("id", func(v *I) *string { return &v.ID }),
			stringCol("prefix", func(v *I) *string { return &v.Prefix }),
			intCol("number", func(v *I) *int { return &v.Number }),
			stringCol("customer_id", func(v *I) *string { return &v.CustomerID }),
			jsonCol("customer", func(v *I) *domain.Party { return &v.Customer }),
			dateCol("invoice_date", func(v *I) *time.Time { return &v.InvoiceDate }),
			dateCol("due_date", func(v *I) *time.Time { return &v.DueDate }),
			jsonCol("place_of_supply", func(v *I) *domain.State { return &v.PlaceOfSupply }),
			jsonCol("items", func(v *I) *[]domain.LineItem { return &v.Items }),
			decimalCol("subtotal", func(v *I) *decimal.Decimal { return &v.Subtotal }),
			decimalCol("tax_amount", func(v *I) *decimal.Decimal { return &v.TaxAmount }),
			jsonCol("additional_charges", func(v *I) *[]domain.Charge { return &v.AdditionalCharges }),
			jsonCol("global_discount", func(v *I) *domain.Discount { return &v.GlobalDiscount }),
			decimalCol("round_off", func(v *I) *decimal.Decimal { return &v.RoundOff }),
			decimalCol("total", func(v *I) *decimal.Decimal { return &v.Total }),
			decimalCol("amount_paid", func(v *I) *decimal.Decimal { return &v.AmountPaid }),
			decimalCol("balance_due", func(v *I) *decimal.Decimal { return &v.BalanceDue }),
			typedStringCol("status", func(v *I) *domain.InvoiceStatus { return &v.Status }),
			jsonCol("payment_modes", func(v *I) *[]string { return &v.PaymentModes }),
			jsonCol("bank_account", func(v *I) **domain.BankAccount { return &v.BankAccount }),
			jsonCol("tds", func(v *I) *domain.TaxWithholding { return &v.TDS }),
			jsonCol("tds_under_gst", func(v *I) *domain.TaxWithholding { return &v.TDSUnderGST }),
			jsonCol("tcs", func(v *I) *domain.TaxWithholding { return &v.TCS }),
			stringCol("notes", func(v *I) *string { return &v.Notes }),
			stringCol("terms", func(v *I) *string { return &v.Terms }),
			jsonCol("attachments", func(v *I) *[]domain.Attachment { return &v.Attachments }),
			jsonCol("dispatch_from_address", func(v *I) *domain.Address { return &v.DispatchFromAddress }),
			jsonCol("shipping", func(v *I) *domain.Shipping { return &v.Shipping }),
			jsonCol("signature", func(v *I) *domain.SignatureRef { return &v.Signature }),
			stringCol("reference", func(v *I) *string { return &v.Reference }),
			stringCol("pdf_url", func(v *I) *string { return &v.PDFURL }),
			timeCol("created_at", func(v *I) *time.Time { return &v.CreatedAt }),
			timeCol("updated_at", func(v *I) *time.Time { return &v.UpdatedAt }),
		},
	}
}

// PartySchema maps the Customers or Vendors tab.
func PartySchema(kind domain.PartyKind) Schema[domain.Party] {
	type P = domain.Party
	sheet := TabCustomers
	if kind == domain.PartyVendor {
		sheet = TabVendors
	}
	return Schema[P]{
		Sheet:   sheet,
		Version: 1,
		ID:      func(v *P) string { return v.ID },
		Columns: []Column[P]{
			stringCol("id", func(v *P) *string { return &v.ID }),
			stringCol("name", func(v *P) *string { return &v.Name }),
			stringCol("email", func(v *P) *string { return &v.Email }),
			stringCol("phone", func(v *P) *string { return &v.Phone }),
			jsonCol("billing_address", func(v *P) *domain.Address { return &v.BillingAddress }),
			jsonCol("shipping_address", func(v *P) *domain.Address { return &v.ShippingAddress }),
			jsonCol("company_details", func(v *P) *domain.CompanyDetails { return &v.CompanyDetails }),
			jsonCol("account", func(v *P) *domain.PartyAccount { return &v.Account }),
			jsonCol("other", func(v *P) *domain.PartyOther { return &v.Other }),
			typedStringCol("status", func(v *P) *domain.RecordStatus { return &v.Status }),
			timeCol("created_at", func(v *P) *time.Time { return &v.CreatedAt }),
			timeCol("updated_at", func(v *P) *time.Time { return &v.UpdatedAt }),
		},
	}
}

// ProductSchema maps the Products tab.
func ProductSchema() Schema[domain.Product] {
	type P = domain.Product
	return Schema[P]{
		Sheet:   TabProducts,
		Version: 1,
		ID:      func(v *P) string { return v.ID },
		Columns: []Column[P]{
			stringCol("id", func(v *P) *string { return &v.ID }),
			stringCol("name", func(v *P) *string { return &v.Name }),
			stringCol("description", func(v *P) *string { return &v.Description }),
			decimalCol("price", func(v *P) *decimal.Decimal { return &v.Price }),
			typedStringCol("stock", func(v *P) *domain.Stock { return &v.Stock }),
			stringCol("hsn_code", func(v *P) *string { return &v.HSNCode }),
			decimalCol("tax_rate", func(v *P) *decimal.Decimal { return &v.TaxRate }),
			stringCol("category", func(v *P) *string { return &v.Category }),
			stringCol("unit", func(v *P) *string { return &v.Unit }),
			stringCol("image_url", func(v *P) *string { return &v.ImageURL }),
			typedStringCol("status", func(v *P) *domain.RecordStatus { return &v.Status }),
			timeCol("created_at", func(v *P) *time.Time { return &v.CreatedAt }),
			timeCol("updated_at", func(v *P) *time.Time { return &v.UpdatedAt }),
		},
	}
}

// PaymentSchema maps the Payments tab.
func PaymentSchema() Schema[domain.Payment] {
	type P = domain.Payment
	return Schema[P]{
		Sheet:   TabPayments,
		Version: 1,
		ID:      func(v *P) string { return v.ID },
		Columns: []Column[P]{
			stringCol("id", func(v *P) *string { return &v.ID }),
			dateCol("date", func(v *P) *time.Time { return &v.Date }),
			stringCol("party_id", func(v *P) *string { return &v.PartyID }),
			typedStringCol("party_kind", func(v *P) *domain.PartyKind { return &v.PartyKind }),
			stringCol("invoice_id", func(v *P) *string { return &v.InvoiceID }),
			typedStringCol("type", func(v *P) *domain.PaymentType { return &v.Type }),
			decimalCol("amount", func(v *P) *decimal.Decimal { return &v.Amount }),
			stringCol("payment_mode", func(v *P) *string { return &v.PaymentMode }),
			stringCol("bank_account", func(v *P) *string { return &v.BankAccount }),
			stringCol("notes", func(v *P) *string { return &v.Notes }),
			stringCol("status", func(v *P) *string { return &v.Status }),
			timeCol("created_at", func(v *P) *time.Time { return &v.CreatedAt }),
		},
	}
}

// expenseHeaders and the document tabs without a repository get a header
// row so hand-entered data lines up with later schemas.
var expenseHeaders = []any{"id", "date", "category", "vendor_id", "amount", "payment_mode", "notes", "created_at"}
