package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/sheetbill/internal/core/ports/services"
	"github.com/SscSPs/sheetbill/internal/dto"
	"github.com/SscSPs/sheetbill/internal/middleware"
	"github.com/gin-gonic/gin"
)

type paymentHandler struct {
	payments portssvc.PaymentSvcFacade
}

func registerPaymentRoutes(rg *gin.RouterGroup, payments portssvc.PaymentSvcFacade) {
	h := &paymentHandler{payments: payments}
	rg.GET("/payments", h.listPayments)
	rg.POST("/payments", h.recordPayment)
}

// listPayments godoc
// @Summary List payments
// @Tags payments
// @Produce json
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Security BearerAuth
// @Router /payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	payments, err := h.payments.ListPayments(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPaymentsResponse(payments))
}

// recordPayment godoc
// @Summary Record a payment
// @Description Appends the payment, then settles the linked invoice and moves the party balance.
// @Description The writes are not atomic; failed follow-up writes are listed in warnings.
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.RecordPaymentRequest true "Payment"
// @Success 201 {object} dto.RecordPaymentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Invoice is cancelled"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Security BearerAuth
// @Router /payments [post]
func (h *paymentHandler) recordPayment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	resp, err := h.payments.RecordPayment(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to record payment")
		return
	}
	if len(resp.Warnings) > 0 {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Payment recorded with partial updates",
			slog.String("payment_id", resp.Payment.ID), slog.Any("warnings", resp.Warnings))
	}
	c.JSON(http.StatusCreated, resp)
}
