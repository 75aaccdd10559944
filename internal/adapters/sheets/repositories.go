package sheets

import (
	"context"

	"github.com/SscSPs/sheetbill/internal/core/domain"
	portsrepo "github.com/SscSPs/sheetbill/internal/core/ports/repositories"
)

type invoiceRepository struct {
	table *table[domain.Invoice]
}

// NewInvoiceRepository returns the Invoices tab repository.
func NewInvoiceRepository(client *Client) portsrepo.InvoiceRepositoryFacade {
	return &invoiceRepository{table: newTable(client, InvoiceSchema())}
}

var _ portsrepo.InvoiceRepositoryFacade = (*invoiceRepository)(nil)

func (r *invoiceRepository) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	return r.table.list(ctx)
}

func (r *invoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return r.table.find(ctx, invoiceID)
}

func (r *invoiceRepository) FindInvoiceByRow(ctx context.Context, row int) (*domain.Invoice, error) {
	return r.table.readRow(ctx, row)
}

func (r *invoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	return r.table.append(ctx, invoice)
}

func (r *invoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	return r.table.rewrite(ctx, invoice)
}

type partyRepository struct {
	kind  domain.PartyKind
	table *table[domain.Party]
}

// NewPartyRepository returns the Customers or Vendors tab repository.
func NewPartyRepository(client *Client, kind domain.PartyKind) portsrepo.PartyRepositoryFacade {
	return &partyRepository{kind: kind, table: newTable(client, PartySchema(kind))}
}

var _ portsrepo.PartyRepositoryFacade = (*partyRepository)(nil)

func (r *partyRepository) ListParties(ctx context.Context) ([]domain.Party, error) {
	parties, err := r.table.list(ctx)
	if err != nil {
		return nil, err
	}
	for i := range parties {
		parties[i].Kind = r.kind
	}
	return parties, nil
}

func (r *partyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	p, err := r.table.find(ctx, partyID)
	if err != nil {
		return nil, err
	}
	p.Kind = r.kind
	return p, nil
}

func (r *partyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	return r.table.append(ctx, party)
}

func (r *partyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	return r.table.rewrite(ctx, party)
}

type productRepository struct {
	table *table[domain.Product]
}

// NewProductRepository returns the Products tab repository.
func NewProductRepository(client *Client) portsrepo.ProductRepositoryFacade {
	return &productRepository{table: newTable(client, ProductSchema())}
}

var _ portsrepo.ProductRepositoryFacade = (*productRepository)(nil)

func (r *productRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return r.table.list(ctx)
}

func (r *productRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	return r.table.find(ctx, productID)
}

func (r *productRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	return r.table.append(ctx, product)
}

func (r *productRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	return r.table.rewrite(ctx, product)
}

type paymentRepository struct {
	table *table[domain.Payment]
}

// NewPaymentRepository returns the Payments tab repository.
func NewPaymentRepository(client *Client) portsrepo.PaymentRepositoryFacade {
	return &paymentRepository{table: newTable(client, PaymentSchema())}
}

var _ portsrepo.PaymentRepositoryFacade = (*paymentRepository)(nil)

func (r *paymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	return r.table.append(ctx, payment)
}

func (r *paymentRepository) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	return r.table.list(ctx)
}

func (r *paymentRepository) ListPaymentsByParty(ctx context.Context, partyID string) ([]domain.Payment, error) {
	all, err := r.table.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Payment, 0, len(all))
	for _, p := range all {
		if p.PartyID == partyID {
			out = append(out, p)
		}
	}
	return out, nil
}
