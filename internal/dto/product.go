package dto

import (
	"github.com/SscSPs/sheetbill/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to add a catalog product.
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       domain.Stock    `json:"stock"`
	HSNCode     string          `json:"hsnCode"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	Category    string          `json:"category"`
	Unit        string          `json:"unit"`
	ImageURL    string          `json:"imageUrl" binding:"omitempty,url"`
}

// UpdateProductRequest carries a partial update. Nil fields keep the stored value.
type UpdateProductRequest struct {
	Name        *string              `json:"name" binding:"omitempty,min=1"`
	Description *string              `json:"description"`
	Price       *decimal.Decimal     `json:"price"`
	Stock       *domain.Stock        `json:"stock"`
	HSNCode     *string              `json:"hsnCode"`
	TaxRate     *decimal.Decimal     `json:"taxRate"`
	Category    *string              `json:"category"`
	Unit        *string              `json:"unit"`
	ImageURL    *string              `json:"imageUrl" binding:"omitempty,url"`
	Status      *domain.RecordStatus `json:"status" binding:"omitempty,oneof=active inactive"`
}

// ListProductsResponse wraps the catalog.
type ListProductsResponse struct {
	Products []domain.Product `json:"products"`
	Count    int              `json:"count"`
}

// ToListProductsResponse builds the list response, never returning a null array.
func ToListProductsResponse(products []domain.Product) ListProductsResponse {
	if products == nil {
		products = []domain.Product{}
	}
	return ListProductsResponse{Products: products, Count: len(products)}
}
