package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/sheetbill/internal/apperrors"
	"github.com/SscSPs/sheetbill/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Error codes the SPA reacts to without parsing messages.
const (
	codeGoogleReauth   = "google_reauth_required"
	codeNotConfigured  = "not_configured"
	codeInvalidRequest = "invalid_request"
)

// respondError answers with the status mapped from err. Server errors are
// logged and hidden behind fallback; client errors expose the error text.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := apperrors.HTTPStatus(err)
	body := gin.H{"error": err.Error()}

	switch {
	case status >= http.StatusInternalServerError:
		logger.Error(fallback, slog.String("error", err.Error()))
		body["error"] = fallback
	case errors.Is(err, apperrors.ErrRefreshTokenExpired):
		logger.Warn("Google grant no longer valid", slog.String("error", err.Error()))
		body["code"] = codeGoogleReauth
	case errors.Is(err, apperrors.ErrNotConfigured):
		logger.Warn("Tenant not configured", slog.String("error", err.Error()))
		body["code"] = codeNotConfigured
	default:
		logger.Warn(fallback, slog.String("error", err.Error()), slog.Int("status", status))
	}
	c.AbortWithStatusJSON(status, body)
}

// respondBindError answers 400 for a request that failed binding or validation.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Invalid request", slog.String("error", err.Error()))
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"error": "Invalid request format: " + err.Error(),
		"code":  codeInvalidRequest,
	})
}

// requireUserID returns the authenticated user id, answering 401 when it is absent.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}
