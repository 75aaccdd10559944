package handlers

import (
	"io"
	"net/http"

	"github.com/SscSPs/sheetbill/internal/core/domain"
	portssvc "github.com/SscSPs/sheetbill/internal/core/ports/services"
	"github.com/SscSPs/sheetbill/internal/dto"
	"github.com/gin-gonic/gin"
)

// signatureReadLimit is one byte over the accepted size so oversized uploads
// reach the service and fail validation there.
const signatureReadLimit = 2<<20 + 1

type settingsHandler struct {
	settings portssvc.SettingsSvcFacade
}

func registerSettingsRoutes(rg *gin.RouterGroup, settings portssvc.SettingsSvcFacade) {
	h := &settingsHandler{settings: settings}

	g := rg.Group("/settings")
	{
		g.GET("", h.getSettings)
		g.POST("/banks", h.addBank)
		g.DELETE("/banks/:bankId", h.removeBank)
		g.PUT("/banks/:bankId/default", h.setDefaultBank)
		g.POST("/signature", h.uploadSignature)
		g.PUT("/:section", h.updateSection)
		g.POST("/:section", h.createSection)
		g.DELETE("/:section", h.deleteSection)
	}
}

// getSettings godoc
// @Summary Get settings
// @Description Returns every settings section decoded from the Settings tab.
// @Tags settings
// @Produce json
// @Success 200 {object} domain.Settings
// @Failure 412 {object} map[string]string "Spreadsheet not initialized"
// @Failure 500 {object} map[string]string "Failed to load settings"
// @Security BearerAuth
// @Router /settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	settings, err := h.settings.GetSettings(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to load settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// updateSection godoc
// @Summary Update a settings section
// @Description Merges the given keys into the section. An empty value clears the key. Bank accounts are changed through /settings/banks.
// @Tags settings
// @Accept json
// @Produce json
// @Param section path string true "Section name, e.g. companyDetails"
// @Param values body map[string]string true "Key/value pairs"
// @Success 200 {object} domain.Settings
// @Failure 400 {object} map[string]string "Invalid section or values"
// @Failure 404 {object} map[string]string "Section not found"
// @Failure 500 {object} map[string]string "Failed to update settings"
// @Security BearerAuth
// @Router /settings/{section} [put]
func (h *settingsHandler) updateSection(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var values domain.SectionValues
	if err := c.ShouldBindJSON(&values); err != nil {
		respondBindError(c, err)
		return
	}
	settings, err := h.settings.UpdateSection(c.Request.Context(), userID, c.Param("section"), values)
	if err != nil {
		respondError(c, err, "Failed to update settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// createSection godoc
// @Summary Create a settings section
// @Tags settings
// @Accept json
// @Produce json
// @Param section path string true "Section name"
// @Param values body map[string]string true "Key/value pairs"
// @Success 201 {object} domain.Settings
// @Failure 400 {object} map[string]string "Invalid section or values"
// @Failure 409 {object} map[string]string "Section already exists"
// @Failure 500 {object} map[string]string "Failed to create settings section"
// @Security BearerAuth
// @Router /settings/{section} [post]
func (h *settingsHandler) createSection(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var values domain.SectionValues
	if err := c.ShouldBindJSON(&values); err != nil {
		respondBindError(c, err)
		return
	}
	settings, err := h.settings.CreateSection(c.Request.Context(), userID, c.Param("section"), values)
	if err != nil {
		respondError(c, err, "Failed to create settings section")
		return
	}
	c.JSON(http.StatusCreated, settings)
}

// deleteSection godoc
// @Summary Delete a settings section
// @Tags settings
// @Param section path string true "Section name"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Section not found"
// @Failure 500 {object} map[string]string "Failed to delete settings section"
// @Security BearerAuth
// @Router /settings/{section} [delete]
func (h *settingsHandler) deleteSection(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.settings.DeleteSection(c.Request.Context(), userID, c.Param("section")); err != nil {
		respondError(c, err, "Failed to delete settings section")
		return
	}
	c.Status(http.StatusNoContent)
}

// addBank godoc
// @Summary Add a bank account
// @Description The first account, or one flagged isDefault, becomes the default.
// @Tags settings
// @Accept json
// @Produce json
// @Param bank body dto.AddBankRequest true "Bank account"
// @Success 201 {array} domain.BankAccount
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to add bank account"
// @Security BearerAuth
// @Router /settings/banks [post]
func (h *settingsHandler) addBank(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.AddBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	banks, err := h.settings.AddBank(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to add bank account")
		return
	}
	c.JSON(http.StatusCreated, banks)
}

// removeBank godoc
// @Summary Remove a bank account
// @Tags settings
// @Produce json
// @Param bankId path string true "Bank account ID"
// @Success 200 {array} domain.BankAccount
// @Failure 404 {object} map[string]string "Bank account not found"
// @Failure 500 {object} map[string]string "Failed to remove bank account"
// @Security BearerAuth
// @Router /settings/banks/{bankId} [delete]
func (h *settingsHandler) removeBank(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	banks, err := h.settings.RemoveBank(c.Request.Context(), userID, c.Param("bankId"))
	if err != nil {
		respondError(c, err, "Failed to remove bank account")
		return
	}
	c.JSON(http.StatusOK, banks)
}

// setDefaultBank godoc
// @Summary Make a bank account the default
// @Tags settings
// @Produce json
// @Param bankId path string true "Bank account ID"
// @Success 200 {array} domain.BankAccount
// @Failure 404 {object} map[string]string "Bank account not found"
// @Failure 500 {object} map[string]string "Failed to set default bank account"
// @Security BearerAuth
// @Router /settings/banks/{bankId}/default [put]
func (h *settingsHandler) setDefaultBank(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	banks, err := h.settings.SetDefaultBank(c.Request.Context(), userID, c.Param("bankId"))
	if err != nil {
		respondError(c, err, "Failed to set default bank account")
		return
	}
	c.JSON(http.StatusOK, banks)
}

// uploadSignature godoc
// @Summary Upload the default signature
// @Description Stores a PNG or JPEG of at most 2 MB in Drive and makes it the default signature.
// @Tags settings
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Signature image"
// @Success 201 {object} domain.StoredFile
// @Failure 400 {object} map[string]string "Missing, oversized or unsupported image"
// @Failure 500 {object} map[string]string "Failed to upload signature"
// @Security BearerAuth
// @Router /settings/signature [post]
func (h *settingsHandler) uploadSignature(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	header, err := c.FormFile("file")
	if err != nil {
		respondBindError(c, err)
		return
	}
	f, err := header.Open()
	if err != nil {
		respondBindError(c, err)
		return
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, signatureReadLimit))
	if err != nil {
		respondBindError(c, err)
		return
	}

	file, err := h.settings.UploadSignature(c.Request.Context(), userID, header.Filename, http.DetectContentType(data), data)
	if err != nil {
		respondError(c, err, "Failed to upload signature")
		return
	}
	c.JSON(http.StatusCreated, file)
}
