package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/sheetbill/internal/apperrors"
	"github.com/SscSPs/sheetbill/internal/core/domain"
	"github.com/SscSPs/sheetbill/internal/core/services"
	"github.com/SscSPs/sheetbill/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductService_CreateListArchive(t *testing.T) {
	ctx := context.Background()
	st := newStores(testUserID)
	svc := services.NewProductService(st.provider, services.WithClock(fixedClock))

	st.products.On("SaveProduct", mock.Anything, mock.MatchedBy(func(p domain.Product) bool {
		return p.Name == "Widget" && p.Stock == "made to order" && p.Status == domain.RecordActive
	})).Return(nil).Once()
	created, err := svc.CreateProduct(ctx, testUserID, dto.CreateProductRequest{
		Name:    "Widget",
		Price:   decimal.NewFromInt(250),
		Stock:   "made to order",
		TaxRate: decimal.NewFromInt(12),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	st.products.On("ListProducts", mock.Anything).Return([]domain.Product{
		{ID: "p1", Status: domain.RecordActive},
		{ID: "p2", Status: domain.RecordInactive},
	}, nil)
	active, err := svc.ListProducts(ctx, testUserID, false)
	require.NoError(t, err)
	assert.Len(t, active, 1)
	all, err := svc.ListProducts(ctx, testUserID, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	st.products.On("FindProductByID", mock.Anything, "p1").Return(&domain.Product{ID: "p1", Status: domain.RecordActive}, nil).Once()
	st.products.On("UpdateProduct", mock.Anything, mock.MatchedBy(func(p domain.Product) bool {
		return p.Status == domain.RecordInactive && p.UpdatedAt.Equal(fixedNow)
	})).Return(nil).Once()
	require.NoError(t, svc.ArchiveProduct(ctx, testUserID, "p1"))

	st.assertExpectations(t)
}

func TestProductService_UpdateMergesAndValidates(t *testing.T) {
	ctx := context.Background()
	st := newStores(testUserID)
	svc := services.NewProductService(st.provider)

	stored := &domain.Product{ID: "p1", Name: "Widget", HSNCode: "8471", Price: decimal.NewFromInt(100), Status: domain.RecordActive}
	st.products.On("FindProductByID", mock.Anything, "p1").Return(stored, nil)
	st.products.On("UpdateProduct", mock.Anything, mock.AnythingOfType("domain.Product")).Return(nil).Once()

	price := decimal.NewFromInt(120)
	updated, err := svc.UpdateProduct(ctx, testUserID, "p1", dto.UpdateProductRequest{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "8471", updated.HSNCode)
	assert.True(t, updated.Price.Equal(price))

	negative := decimal.NewFromInt(-1)
	_, err = svc.UpdateProduct(ctx, testUserID, "p1", dto.UpdateProductRequest{TaxRate: &negative})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	st.assertExpectations(t)
}
