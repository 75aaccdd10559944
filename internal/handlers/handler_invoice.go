package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/sheetbill/internal/core/ports/services"
	"github.com/SscSPs/sheetbill/internal/dto"
	"github.com/SscSPs/sheetbill/internal/middleware"
	"github.com/SscSPs/sheetbill/internal/render"
	"github.com/gin-gonic/gin"
)

type invoiceHandler struct {
	invoices portssvc.InvoiceSvcFacade
	renders  portssvc.RenderSvc
}

func registerInvoiceRoutes(rg *gin.RouterGroup, invoices portssvc.InvoiceSvcFacade, renders portssvc.RenderSvc) {
	h := &invoiceHandler{invoices: invoices, renders: renders}

	inv := rg.Group("/invoices")
	{
		inv.GET("", h.listInvoices)
		inv.POST("", h.createInvoice)
		inv.GET("/rows/:row", h.getInvoiceByRow)
		inv.GET("/:id", h.getInvoice)
		inv.PUT("/:id", h.updateInvoice)
		inv.DELETE("/:id", h.deleteInvoice)
		inv.PATCH("/:id/status", h.updateInvoiceStatus)
		inv.GET("/:id/pdf", h.exportInvoice(render.FormatPDF))
		inv.GET("/:id/png", h.exportInvoice(render.FormatPNG))
		inv.GET("/:id/print", h.exportInvoice(render.FormatPrint))
	}
}

// listInvoices godoc
// @Summary List invoices
// @Description Lists invoices from the Invoices tab, optionally filtered by status or customer.
// @Tags invoices
// @Produce json
// @Param status query string false "Status filter (Draft, Sent, Paid, Overdue, Cancelled)"
// @Param customerId query string false "Customer filter"
// @Success 200 {object} dto.ListInvoicesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 412 {object} map[string]string "Spreadsheet not initialized"
// @Failure 500 {object} map[string]string "Failed to list invoices"
// @Security BearerAuth
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	invoices, err := h.invoices.ListInvoices(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err, "Failed to list invoices")
		return
	}
	c.JSON(http.StatusOK, dto.ToListInvoicesResponse(invoices))
}

// createInvoice godoc
// @Summary Create an invoice
// @Description Creates an invoice. Number, dates, notes and terms default from the settings preferences; totals are always computed server side.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.CreateInvoiceRequest true "Invoice"
// @Success 201 {object} domain.Invoice
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Invoice id already used"
// @Failure 500 {object} map[string]string "Failed to create invoice"
// @Security BearerAuth
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	invoice, err := h.invoices.CreateInvoice(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to create invoice")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Invoice created", slog.String("invoice_id", invoice.ID))
	c.JSON(http.StatusCreated, invoice)
}

// getInvoice godoc
// @Summary Get an invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} domain.Invoice
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to retrieve invoice"
// @Security BearerAuth
// @Router /invoices/{id} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	invoice, err := h.invoices.GetInvoiceByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve invoice")
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// getInvoiceByRow godoc
// @Summary Get an invoice by sheet row
// @Description Reads the invoice stored at an absolute row of the Invoices tab (row 2 is the first record).
// @Tags invoices
// @Produce json
// @Param row path int true "Sheet row"
// @Success 200 {object} domain.Invoice
// @Failure 400 {object} map[string]string "Invalid row"
// @Failure 404 {object} map[string]string "No invoice at that row"
// @Failure 500 {object} map[string]string "Failed to retrieve invoice"
// @Security BearerAuth
// @Router /invoices/rows/{row} [get]
func (h *invoiceHandler) getInvoiceByRow(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	row, err := strconv.Atoi(c.Param("row"))
	if err != nil || row < 2 {
		respondBindError(c, fmt.Errorf("row must be an integer of at least 2, got %q", c.Param("row")))
		return
	}
	invoice, err := h.invoices.GetInvoiceByRow(c.Request.Context(), userID, row)
	if err != nil {
		respondError(c, err, "Failed to retrieve invoice")
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// updateInvoice godoc
// @Summary Update an invoice
// @Description Applies a partial update and recomputes totals. Cancelled invoices cannot be edited.
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param invoice body dto.UpdateInvoiceRequest true "Fields to change"
// @Success 200 {object} domain.Invoice
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 409 {object} map[string]string "Invoice is cancelled"
// @Failure 500 {object} map[string]string "Failed to update invoice"
// @Security BearerAuth
// @Router /invoices/{id} [put]
func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	invoice, err := h.invoices.UpdateInvoice(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update invoice")
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// updateInvoiceStatus godoc
// @Summary Change an invoice status
// @Description Moves the invoice along its lifecycle. Disallowed transitions are rejected.
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param status body dto.UpdateInvoiceStatusRequest true "New status"
// @Success 200 {object} domain.Invoice
// @Failure 400 {object} map[string]string "Invalid status or transition"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to update invoice status"
// @Security BearerAuth
// @Router /invoices/{id}/status [patch]
func (h *invoiceHandler) updateInvoiceStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	invoice, err := h.invoices.UpdateInvoiceStatus(c.Request.Context(), userID, c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err, "Failed to update invoice status")
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// deleteInvoice godoc
// @Summary Cancel an invoice
// @Description Invoices are never removed from the sheet; deleting marks them Cancelled.
// @Tags invoices
// @Param id path string true "Invoice ID"
// @Success 204 "Cancelled"
// @Failure 400 {object} map[string]string "Invoice cannot be cancelled"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to cancel invoice"
// @Security BearerAuth
// @Router /invoices/{id} [delete]
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.invoices.DeleteInvoice(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, "Failed to cancel invoice")
		return
	}
	c.Status(http.StatusNoContent)
}

// exportInvoice godoc
// @Summary Export an invoice
// @Description Paginates the invoice and renders it as a PDF, a PNG of the first page, or a printable HTML document.
// @Tags invoices
// @Produce application/pdf
// @Produce image/png
// @Produce text/html
// @Param id path string true "Invoice ID"
// @Success 200 {file} file
// @Header 200 {integer} X-Page-Count "Number of pages"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 500 {object} map[string]string "Failed to render invoice"
// @Security BearerAuth
// @Router /invoices/{id}/pdf [get]
// @Router /invoices/{id}/png [get]
// @Router /invoices/{id}/print [get]
func (h *invoiceHandler) exportInvoice(format render.Format) gin.HandlerFunc {
	disposition := "attachment"
	if format == render.FormatPrint {
		disposition = "inline"
	}
	return func(c *gin.Context) {
		userID, ok := requireUserID(c)
		if !ok {
			return
		}
		out, err := h.renders.RenderInvoice(c.Request.Context(), userID, c.Param("id"), format)
		if err != nil {
			respondError(c, err, "Failed to render invoice")
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, out.Filename))
		c.Header("X-Page-Count", strconv.Itoa(out.Pages))
		c.Data(http.StatusOK, out.ContentType, out.Data)
	}
}
