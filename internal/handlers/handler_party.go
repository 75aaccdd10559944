package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/sheetbill/internal/core/ports/services"
	"github.com/SscSPs/sheetbill/internal/dto"
	"github.com/SscSPs/sheetbill/internal/middleware"
	"github.com/gin-gonic/gin"
)

// partyHandler serves either /customers or /vendors.
type partyHandler struct {
	parties  portssvc.PartySvcFacade
	payments portssvc.PaymentSvcFacade
}

func registerPartyRoutes(rg *gin.RouterGroup, path string, parties portssvc.PartySvcFacade, payments portssvc.PaymentSvcFacade) {
	h := &partyHandler{parties: parties, payments: payments}

	g := rg.Group(path)
	{
		g.GET("", h.listParties)
		g.POST("", h.createParty)
		g.GET("/:id", h.getParty)
		g.PUT("/:id", h.updateParty)
		g.DELETE("/:id", h.archiveParty)
		g.GET("/:id/ledger", h.getLedger)
	}
}

// listParties godoc
// @Summary List customers or vendors
// @Description Archived parties are hidden unless includeInactive is set. q searches name, company, email, phone and GSTIN.
// @Tags parties
// @Produce json
// @Param includeInactive query bool false "Include archived parties"
// @Param q query string false "Search text"
// @Success 200 {object} dto.ListPartiesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list parties"
// @Security BearerAuth
// @Router /customers [get]
// @Router /vendors [get]
func (h *partyHandler) listParties(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var params dto.ListPartiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	parties, err := h.parties.ListParties(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err, "Failed to list parties")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPartiesResponse(parties))
}

// createParty godoc
// @Summary Create a customer or vendor
// @Description PAN and billing state are derived from the GSTIN when it is given.
// @Tags parties
// @Accept json
// @Produce json
// @Param party body dto.CreatePartyRequest true "Party"
// @Success 201 {object} domain.Party
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create party"
// @Security BearerAuth
// @Router /customers [post]
// @Router /vendors [post]
func (h *partyHandler) createParty(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	party, err := h.parties.CreateParty(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to create party")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Party created",
		slog.String("party_id", party.ID), slog.String("kind", string(party.Kind)))
	c.JSON(http.StatusCreated, party)
}

// getParty godoc
// @Summary Get a customer or vendor
// @Tags parties
// @Produce json
// @Param id path string true "Party ID"
// @Success 200 {object} domain.Party
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to retrieve party"
// @Security BearerAuth
// @Router /customers/{id} [get]
// @Router /vendors/{id} [get]
func (h *partyHandler) getParty(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	party, err := h.parties.GetParty(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve party")
		return
	}
	c.JSON(http.StatusOK, party)
}

// updateParty godoc
// @Summary Update a customer or vendor
// @Tags parties
// @Accept json
// @Produce json
// @Param id path string true "Party ID"
// @Param party body dto.UpdatePartyRequest true "Fields to change"
// @Success 200 {object} domain.Party
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to update party"
// @Security BearerAuth
// @Router /customers/{id} [put]
// @Router /vendors/{id} [put]
func (h *partyHandler) updateParty(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.UpdatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	party, err := h.parties.UpdateParty(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update party")
		return
	}
	c.JSON(http.StatusOK, party)
}

// archiveParty godoc
// @Summary Archive a customer or vendor
// @Description Parties are never removed; deleting marks them inactive.
// @Tags parties
// @Param id path string true "Party ID"
// @Success 204 "Archived"
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to archive party"
// @Security BearerAuth
// @Router /customers/{id} [delete]
// @Router /vendors/{id} [delete]
func (h *partyHandler) archiveParty(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.parties.ArchiveParty(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, "Failed to archive party")
		return
	}
	c.Status(http.StatusNoContent)
}

// getLedger godoc
// @Summary Party statement
// @Description Running balance of the party's payments, oldest first.
// @Tags parties
// @Produce json
// @Param id path string true "Party ID"
// @Success 200 {object} dto.LedgerResponse
// @Failure 404 {object} map[string]string "Party not found"
// @Failure 500 {object} map[string]string "Failed to build ledger"
// @Security BearerAuth
// @Router /customers/{id}/ledger [get]
// @Router /vendors/{id}/ledger [get]
func (h *partyHandler) getLedger(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	ledger, err := h.payments.GetLedger(c.Request.Context(), userID, h.parties.Kind(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to build ledger")
		return
	}
	c.JSON(http.StatusOK, ledger)
}
