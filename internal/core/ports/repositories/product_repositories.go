package repositories

import (
	"context"

	"github.com/SscSPs/sheetbill/internal/core/domain"
)

// ProductReader defines read operations for the product catalog.
type ProductReader interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)
}

// ProductWriter defines write operations for the product catalog.
type ProductWriter interface {
	SaveProduct(ctx context.Context, product domain.Product) error
	UpdateProduct(ctx context.Context, product domain.Product) error
}

// ProductRepositoryFacade combines all product repository interfaces.
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
