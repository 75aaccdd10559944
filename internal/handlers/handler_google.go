package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/sheetbill/internal/core/ports/services"
	"github.com/SscSPs/sheetbill/internal/dto"
	"github.com/SscSPs/sheetbill/internal/middleware"
	"github.com/gin-gonic/gin"
)

type googleHandler struct {
	tokens portssvc.GoogleTokenSvcFacade
}

func registerGoogleRoutes(rg *gin.RouterGroup, tokens portssvc.GoogleTokenSvcFacade) {
	h := &googleHandler{tokens: tokens}
	google := rg.Group("/google")
	{
		google.POST("/exchange-code", h.exchangeCode)
		google.POST("/refresh", h.refresh)
	}
}

// exchangeCode godoc
// @Summary Link a Google account
// @Description Exchanges the authorization code from the consent popup and stores the tokens on the user profile.
// @Tags google
// @Accept json
// @Produce json
// @Param request body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.GoogleLinkResponse
// @Failure 400 {object} map[string]string "Missing or rejected code"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to link Google account"
// @Security BearerAuth
// @Router /google/exchange-code [post]
func (h *googleHandler) exchangeCode(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.tokens.ExchangeCode(c.Request.Context(), userID, middleware.GetUserEmailFromContext(c), req.Code)
	if err != nil {
		respondError(c, err, "Failed to link Google account")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// refresh godoc
// @Summary Refresh the Google access token
// @Description Forces a refresh of the stored Google token. Concurrent calls share one upstream request.
// @Tags google
// @Produce json
// @Success 200 {object} dto.GoogleAccessTokenResponse
// @Failure 401 {object} map[string]string "Unauthorized or Google grant revoked"
// @Failure 412 {object} map[string]string "Google account not linked"
// @Failure 500 {object} map[string]string "Failed to refresh Google token"
// @Security BearerAuth
// @Router /google/refresh [post]
func (h *googleHandler) refresh(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	token, err := h.tokens.RefreshGoogleToken(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to refresh Google token")
		return
	}
	c.JSON(http.StatusOK, dto.GoogleAccessTokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresAt:   token.Expiry,
	})
}
