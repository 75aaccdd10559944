package handlers

import (
	"net/http"

	"github.com/SscSPs/sheetbill/internal/core/domain"
	"github.com/SscSPs/sheetbill/internal/dto"
	"github.com/gin-gonic/gin"
)

func registerGSTINRoutes(rg *gin.RouterGroup) {
	rg.GET("/gstin/:gstin", lookupGSTIN)
}

// lookupGSTIN godoc
// @Summary Decode a GSTIN
// @Description Validates the GSTIN format and derives the PAN and registration state. No external lookup is made.
// @Tags gstin
// @Produce json
// @Param gstin path string true "GSTIN"
// @Success 200 {object} dto.GSTINDetailsResponse
// @Security BearerAuth
// @Router /gstin/{gstin} [get]
func lookupGSTIN(c *gin.Context) {
	gstin := domain.NormalizeGSTIN(c.Param("gstin"))
	resp := dto.GSTINDetailsResponse{GSTIN: gstin, Valid: domain.IsValidGSTIN(gstin)}
	if resp.Valid {
		resp.PAN = domain.ExtractPANFromGSTIN(gstin)
		resp.State, _ = domain.StateFromGSTIN(gstin)
	}
	c.JSON(http.StatusOK, resp)
}
