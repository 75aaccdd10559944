package handlers_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/sheetbill/internal/apperrors"
	"github.com/SscSPs/sheetbill/internal/core/domain"
	"github.com/SscSPs/sheetbill/internal/dto"
	"github.com/SscSPs/sheetbill/internal/render"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func sampleInvoice() *domain.Invoice {
	return &domain.Invoice{
		ID:          "INV-7",
		Prefix:      "INV-",
		Number:      7,
		CustomerID:  "cust-1",
		InvoiceDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Total:       decimal.NewFromInt(236),
		Status:      domain.InvoiceSent,
	}
}

func (suite *HandlerTestSuite) TestListInvoices_PassesFilters() {
	suite.invoices.On("ListInvoices", mock.Anything, testUserID, dto.ListInvoicesParams{Status: "Sent", CustomerID: "cust-1"}).
		Return([]domain.Invoice{*sampleInvoice()}, nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/invoices?status=Sent&customerId=cust-1", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListInvoicesResponse
	suite.decode(w, &resp)
	suite.Equal(1, resp.Count)
	suite.Equal("INV-7", resp.Invoices[0].ID)
}

func (suite *HandlerTestSuite) TestListInvoices_EmptyIsArray() {
	suite.invoices.On("ListInvoices", mock.Anything, testUserID, mock.Anything).Return(nil, nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/invoices", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"invoices":[],"count":0}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestListInvoices_SpreadsheetMissing() {
	suite.invoices.On("ListInvoices", mock.Anything, testUserID, mock.Anything).
		Return(nil, fmt.Errorf("%w: no spreadsheet", apperrors.ErrNotConfigured)).Once()

	w := suite.request(http.MethodGet, "/api/v1/invoices", nil)

	suite.Equal(http.StatusPreconditionFailed, w.Code)
	suite.Contains(w.Body.String(), `"code":"not_configured"`)
}

func (suite *HandlerTestSuite) TestCreateInvoice_Success() {
	suite.invoices.On("CreateInvoice", mock.Anything, testUserID, mock.MatchedBy(func(req dto.CreateInvoiceRequest) bool {
		return req.CustomerID == "cust-1" && len(req.Items) == 1 && req.Items[0].Quantity.Equal(decimal.NewFromInt(2))
	})).Return(sampleInvoice(), nil).Once()

	w := suite.request(http.MethodPost, "/api/v1/invoices", map[string]any{
		"customerId": "cust-1",
		"items":      []map[string]any{{"name": "Widget", "quantity": 2, "price": "100", "taxRate": 18}},
	})

	suite.Equal(http.StatusCreated, w.Code)
	var inv domain.Invoice
	suite.decode(w, &inv)
	suite.Equal("INV-7", inv.ID)
}

func (suite *HandlerTestSuite) TestCreateInvoice_RequiresItems() {
	w := suite.request(http.MethodPost, "/api/v1/invoices", map[string]any{"customerId": "cust-1", "items": []any{}})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), `"code":"invalid_request"`)
}

func (suite *HandlerTestSuite) TestCreateInvoice_RejectsSettledStatus() {
	for _, status := range []string{"Paid", "Overdue", "Cancelled"} {
		w := suite.request(http.MethodPost, "/api/v1/invoices", map[string]any{
			"customerId": "cust-1",
			"status":     status,
			"items":      []map[string]any{{"name": "Widget"}},
		})

		suite.Equal(http.StatusBadRequest, w.Code, status)
		suite.Contains(w.Body.String(), `"code":"invalid_request"`)
	}
	suite.invoices.AssertNotCalled(suite.T(), "CreateInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateInvoice_DuplicateID() {
	suite.invoices.On("CreateInvoice", mock.Anything, testUserID, mock.AnythingOfType("dto.CreateInvoiceRequest")).
		Return(nil, fmt.Errorf("%w: invoice INV-7 exists", apperrors.ErrDuplicate)).Once()

	w := suite.request(http.MethodPost, "/api/v1/invoices", map[string]any{
		"customerId": "cust-1",
		"number":     7,
		"items":      []map[string]any{{"name": "Widget"}},
	})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestGetInvoice_NotFound() {
	suite.invoices.On("GetInvoiceByID", mock.Anything, testUserID, "INV-404").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.request(http.MethodGet, "/api/v1/invoices/INV-404", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestGetInvoiceByRow() {
	suite.invoices.On("GetInvoiceByRow", mock.Anything, testUserID, 5).Return(sampleInvoice(), nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/invoices/rows/5", nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.request(http.MethodGet, "/api/v1/invoices/rows/1", nil)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.request(http.MethodGet, "/api/v1/invoices/rows/abc", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestUpdateInvoice_CancelledConflict() {
	suite.invoices.On("UpdateInvoice", mock.Anything, testUserID, "INV-7", mock.AnythingOfType("dto.UpdateInvoiceRequest")).
		Return(nil, apperrors.NewConflictError("invoice is cancelled")).Once()

	w := suite.request(http.MethodPut, "/api/v1/invoices/INV-7", map[string]any{"notes": "late"})

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestUpdateInvoiceStatus() {
	paid := sampleInvoice()
	paid.Status = domain.InvoicePaid
	suite.invoices.On("UpdateInvoiceStatus", mock.Anything, testUserID, "INV-7", domain.InvoicePaid).Return(paid, nil).Once()
	suite.invoices.On("UpdateInvoiceStatus", mock.Anything, testUserID, "INV-7", domain.InvoiceDraft).
		Return(nil, fmt.Errorf("%w: Paid to Draft", apperrors.ErrInvalidTransition)).Once()

	w := suite.request(http.MethodPatch, "/api/v1/invoices/INV-7/status", map[string]string{"status": "Paid"})
	suite.Equal(http.StatusOK, w.Code)

	w = suite.request(http.MethodPatch, "/api/v1/invoices/INV-7/status", map[string]string{"status": "Draft"})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.request(http.MethodPatch, "/api/v1/invoices/INV-7/status", map[string]string{"status": "Archived"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestDeleteInvoice() {
	suite.invoices.On("DeleteInvoice", mock.Anything, testUserID, "INV-7").Return(nil).Once()

	w := suite.request(http.MethodDelete, "/api/v1/invoices/INV-7", nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestExportInvoice() {
	suite.renders.On("RenderInvoice", mock.Anything, testUserID, "INV-7", render.FormatPDF).
		Return(&render.Output{Data: []byte("%PDF-1.4"), ContentType: "application/pdf", Filename: "INV-7.pdf", Pages: 3}, nil).Once()
	suite.renders.On("RenderInvoice", mock.Anything, testUserID, "INV-7", render.FormatPrint).
		Return(&render.Output{Data: []byte("<html></html>"), ContentType: "text/html; charset=utf-8", Filename: "INV-7.html", Pages: 1}, nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/invoices/INV-7/pdf", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("application/pdf", w.Header().Get("Content-Type"))
	suite.Equal(`attachment; filename="INV-7.pdf"`, w.Header().Get("Content-Disposition"))
	suite.Equal("3", w.Header().Get("X-Page-Count"))
	suite.Equal("%PDF-1.4", w.Body.String())

	w = suite.request(http.MethodGet, "/api/v1/invoices/INV-7/print", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(`inline; filename="INV-7.html"`, w.Header().Get("Content-Disposition"))
}
