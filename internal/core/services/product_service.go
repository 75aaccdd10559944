package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/sheetbill/internal/apperrors"
	"github.com/SscSPs/sheetbill/internal/core/domain"
	portsrepo "github.com/SscSPs/sheetbill/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sheetbill/internal/core/ports/services"
	"github.com/SscSPs/sheetbill/internal/dto"
	"github.com/google/uuid"
)

type productService struct {
	BaseService
}

// NewProductService creates a new instance of productService.
func NewProductService(stores portsrepo.StoreProvider, opts ...Option) portssvc.ProductSvcFacade {
	return &productService{BaseService: newBase(stores, opts)}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) repo(ctx context.Context, userID string) (portsrepo.ProductRepositoryFacade, error) {
	repos, err := s.OpenStores(ctx, userID)
	if err != nil {
		return nil, err
	}
	return repos.Products, nil
}

func (s *productService) CreateProduct(ctx context.Context, userID string, req dto.CreateProductRequest) (*domain.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}
	if req.Price.IsNegative() || req.TaxRate.IsNegative() {
		return nil, fmt.Errorf("%w: price and taxRate must not be negative", apperrors.ErrValidation)
	}
	repo, err := s.repo(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.Now().UTC()
	product := domain.Product{
		ID:          uuid.NewString(),
		Name:        name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		HSNCode:     strings.TrimSpace(req.HSNCode),
		TaxRate:     req.TaxRate,
		Category:    req.Category,
		Unit:        req.Unit,
		ImageURL:    req.ImageURL,
		Status:      domain.RecordActive,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if err := repo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product", slog.String("user_id", userID))
		return nil, err
	}
	s.LogInfo(ctx, "Product created", slog.String("user_id", userID), slog.String("product_id", product.ID))
	return &product, nil
}

func (s *productService) ListProducts(ctx context.Context, userID string, includeInactive bool) ([]domain.Product, error) {
	repo, err := s.repo(ctx, userID)
	if err != nil {
		return nil, err
	}
	products, err := repo.ListProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products", slog.String("user_id", userID))
		return nil, err
	}
	if includeInactive {
		return products, nil
	}
	active := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Status != domain.RecordInactive {
			active = append(active, p)
		}
	}
	return active, nil
}

func (s *productService) GetProduct(ctx context.Context, userID, productID string) (*domain.Product, error) {
	repo, err := s.repo(ctx, userID)
	if err != nil {
		return nil, err
	}
	return repo.FindProductByID(ctx, productID)
}

func (s *productService) UpdateProduct(ctx context.Context, userID, productID string, req dto.UpdateProductRequest) (*domain.Product, error) {
	repo, err := s.repo(ctx, userID)
	if err != nil {
		return nil, err
	}
	product, err := repo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
		}
		product.Name = name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price must not be negative", apperrors.ErrValidation)
		}
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.HSNCode != nil {
		product.HSNCode = strings.TrimSpace(*req.HSNCode)
	}
	if req.TaxRate != nil {
		if req.TaxRate.IsNegative() {
			return nil, fmt.Errorf("%w: taxRate must not be negative", apperrors.ErrValidation)
		}
		product.TaxRate = *req.TaxRate
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.Status != nil {
		product.Status = *req.Status
	}
	product.UpdatedAt = s.Now().UTC()

	if err := repo.UpdateProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to update product",
			slog.String("user_id", userID),
			slog.String("product_id", productID))
		return nil, err
	}
	return product, nil
}

func (s *productService) ArchiveProduct(ctx context.Context, userID, productID string) error {
	repo, err := s.repo(ctx, userID)
	if err != nil {
		return err
	}
	product, err := repo.FindProductByID(ctx, productID)
	if err != nil {
		return err
	}
	if product.Status == domain.RecordInactive {
		return nil
	}
	product.Archive()
	product.UpdatedAt = s.Now().UTC()
	if err := repo.UpdateProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to archive product",
			slog.String("user_id", userID),
			slog.String("product_id", productID))
		return err
	}
	return nil
}
