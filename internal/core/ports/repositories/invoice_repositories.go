package repositories

import (
	"context"

	"github.com/SscSPs/sheetbill/internal/core/domain"
)

// InvoiceReader defines read operations for invoice rows.
type InvoiceReader interface {
	// ListInvoices returns every invoice row that carries an id.
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)

	// FindInvoiceByID scans the id column for invoiceID.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// FindInvoiceByRow reads the invoice at an absolute sheet row (2 is the first data row).
	FindInvoiceByRow(ctx context.Context, row int) (*domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoice rows.
type InvoiceWriter interface {
	// SaveInvoice appends a new invoice row.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// UpdateInvoice rewrites the full row of an existing invoice.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error
}

// InvoiceRepositoryFacade combines all invoice repository interfaces.
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
