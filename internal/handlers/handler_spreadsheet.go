package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/sheetbill/internal/core/ports/services"
	"github.com/SscSPs/sheetbill/internal/dto"
	"github.com/SscSPs/sheetbill/internal/middleware"
	"github.com/gin-gonic/gin"
)

const spreadsheetURLPrefix = "https://docs.google.com/spreadsheets/d/"

type spreadsheetHandler struct {
	spreadsheets portssvc.SpreadsheetSvc
	profiles     portssvc.UserProfileSvc
}

func registerSpreadsheetRoutes(rg *gin.RouterGroup, spreadsheets portssvc.SpreadsheetSvc, profiles portssvc.UserProfileSvc) {
	h := &spreadsheetHandler{spreadsheets: spreadsheets, profiles: profiles}
	rg.POST("/spreadsheet", h.initializeSpreadsheet)
}

// initializeSpreadsheet godoc
// @Summary Bootstrap the tenant spreadsheet
// @Description Creates the user's spreadsheet with every tab and header row, unless one is already linked.
// @Tags spreadsheet
// @Accept json
// @Produce json
// @Param request body dto.CreateSpreadsheetRequest false "Spreadsheet title"
// @Success 200 {object} dto.SpreadsheetResponse "Already linked"
// @Success 201 {object} dto.SpreadsheetResponse "Created"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 412 {object} map[string]string "Google account not linked"
// @Failure 500 {object} map[string]string "Failed to initialize spreadsheet"
// @Security BearerAuth
// @Router /spreadsheet [post]
func (h *spreadsheetHandler) initializeSpreadsheet(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateSpreadsheetRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
	}

	ctx := c.Request.Context()
	if _, err := h.profiles.EnsureProfile(ctx, userID, middleware.GetUserEmailFromContext(c)); err != nil {
		respondError(c, err, "Failed to load user profile")
		return
	}
	info, err := h.spreadsheets.InitializeSpreadsheet(ctx, userID, req.Title)
	if err != nil {
		respondError(c, err, "Failed to initialize spreadsheet")
		return
	}

	status := http.StatusOK
	if info.Created {
		status = http.StatusCreated
		middleware.GetLoggerFromCtx(ctx).Info("Spreadsheet created", slog.String("spreadsheet_id", info.SpreadsheetID))
	}
	c.JSON(status, dto.SpreadsheetResponse{
		SpreadsheetID: info.SpreadsheetID,
		URL:           spreadsheetURLPrefix + info.SpreadsheetID,
		Created:       info.Created,
	})
}
