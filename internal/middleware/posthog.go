package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// EventSink receives product analytics events.
type EventSink interface {
	Enqueue(distinctID, event string, properties map[string]any)
}

var untrackedPaths = map[string]bool{
	"/health":        true,
	"/api/v1/health": true,
}

// PosthogMiddleware sends one usage event per successful authenticated request.
// Events are named after the route template, e.g. "api_v1_invoices_:id_pdf".
// A nil sink disables tracking.
func PosthogMiddleware(sink EventSink) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if sink == nil || untrackedPaths[c.Request.URL.Path] {
			return
		}
		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}
		event := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if event == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, p := range c.Params {
				params[p.Key] = p.Value
			}
			props["params"] = params
		}
		sink.Enqueue(userID, event, props)
	}
}
