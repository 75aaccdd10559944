package services

import (
	"context"

	"github.com/SscSPs/sheetbill/internal/core/domain"
	"github.com/SscSPs/sheetbill/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoices.
type InvoiceReaderSvc interface {
	ListInvoices(ctx context.Context, userID string, params dto.ListInvoicesParams) ([]domain.Invoice, error)
	GetInvoiceByID(ctx context.Context, userID, invoiceID string) (*domain.Invoice, error)
	// GetInvoiceByRow reads by absolute sheet row.
	GetInvoiceByRow(ctx context.Context, userID string, row int) (*domain.Invoice, error)
}

// InvoiceWriterSvc defines write operations for invoices.
type InvoiceWriterSvc interface {
	CreateInvoice(ctx context.Context, userID string, req dto.CreateInvoiceRequest) (*domain.Invoice, error)
	UpdateInvoice(ctx context.Context, userID, invoiceID string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, userID, invoiceID string, status domain.InvoiceStatus) (*domain.Invoice, error)
	// DeleteInvoice cancels the invoice; rows are never removed.
	DeleteInvoice(ctx context.Context, userID, invoiceID string) error
}

// InvoiceSvcFacade combines all invoice service interfaces.
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
