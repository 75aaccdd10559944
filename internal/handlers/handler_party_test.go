package handlers_test

import (
	"net/http"

	"github.com/SscSPs/sheetbill/internal/apperrors"
	"github.com/SscSPs/sheetbill/internal/core/domain"
	"github.com/SscSPs/sheetbill/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestCreateCustomer() {
	suite.customers.On("CreateParty", mock.Anything, testUserID, mock.MatchedBy(func(req dto.CreatePartyRequest) bool {
		return req.Name == "Acme" && req.GSTIN == "29AABCU9603R1ZX"
	})).Return(&domain.Party{ID: "cust-1", Kind: domain.PartyCustomer, Name: "Acme"}, nil).Once()

	w := suite.request(http.MethodPost, "/api/v1/customers", map[string]any{"name": "Acme", "gstin": "29AABCU9603R1ZX"})

	suite.Equal(http.StatusCreated, w.Code)
	suite.vendors.AssertNotCalled(suite.T(), "CreateParty", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateVendor_RejectsMalformedGSTIN() {
	w := suite.request(http.MethodPost, "/api/v1/vendors", map[string]any{"name": "Supplier", "gstin": "12345"})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestListVendors_Search() {
	suite.vendors.On("ListParties", mock.Anything, testUserID, dto.ListPartiesParams{Search: "steel", IncludeInactive: true}).
		Return([]domain.Party{{ID: "v1", Name: "Steel Co"}}, nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/vendors?q=steel&includeInactive=true", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListPartiesResponse
	suite.decode(w, &resp)
	suite.Equal(1, resp.Count)
}

func (suite *HandlerTestSuite) TestArchiveCustomer_NotFound() {
	suite.customers.On("ArchiveParty", mock.Anything, testUserID, "ghost").Return(apperrors.ErrNotFound).Once()

	w := suite.request(http.MethodDelete, "/api/v1/customers/ghost", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestLedgerUsesPartyKind() {
	suite.payments.On("GetLedger", mock.Anything, testUserID, domain.PartyVendor, "v1").
		Return(&dto.LedgerResponse{PartyID: "v1", OpeningBalance: decimal.Zero, ClosingBalance: decimal.NewFromInt(-50)}, nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/vendors/v1/ledger", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LedgerResponse
	suite.decode(w, &resp)
	suite.True(resp.ClosingBalance.Equal(decimal.NewFromInt(-50)))
}

func (suite *HandlerTestSuite) TestRecordPayment_ReportsWarnings() {
	suite.payments.On("RecordPayment", mock.Anything, testUserID, mock.AnythingOfType("dto.RecordPaymentRequest")).
		Return(&dto.RecordPaymentResponse{
			Payment:  domain.Payment{ID: "pay-1"},
			Warnings: []string{"invoice INV-7 was not updated"},
		}, nil).Once()

	w := suite.request(http.MethodPost, "/api/v1/payments", map[string]any{
		"partyId":     "cust-1",
		"invoiceId":   "INV-7",
		"type":        domain.PaymentIn,
		"amount":      "100",
		"paymentMode": "UPI",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.RecordPaymentResponse
	suite.decode(w, &resp)
	suite.Len(resp.Warnings, 1)
}

func (suite *HandlerTestSuite) TestProducts_ListIncludeInactive() {
	suite.products.On("ListProducts", mock.Anything, testUserID, true).Return([]domain.Product{{ID: "p1"}}, nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/products?includeInactive=true", nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestLookupGSTIN() {
	w := suite.request(http.MethodGet, "/api/v1/gstin/29aabcu9603r1zx", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.GSTINDetailsResponse
	suite.decode(w, &resp)
	suite.True(resp.Valid)
	suite.Equal("AABCU9603R", resp.PAN)
	suite.Equal("29", resp.State.Code)

	w = suite.request(http.MethodGet, "/api/v1/gstin/bogus", nil)
	suite.decode(w, &resp)
	suite.False(resp.Valid)
}
