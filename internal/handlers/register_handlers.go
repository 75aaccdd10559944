package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/SscSPs/sheetbill/cmd/docs"
	"github.com/SscSPs/sheetbill/internal/core/domain"
	portssvc "github.com/SscSPs/sheetbill/internal/core/ports/services"
	"github.com/SscSPs/sheetbill/internal/middleware"
	"github.com/SscSPs/sheetbill/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var (
	registerValidatorsOnce sync.Once
	registerValidatorsErr  error
)

// RegisterValidators adds the custom binding tags used by the request DTOs.
// It runs once; later calls return the first result.
func RegisterValidators() error {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerValidatorsErr = fmt.Errorf("binding validator is %T, not *validator.Validate", binding.Validator.Engine())
			return
		}
		if err := v.RegisterValidation("gstin", func(fl validator.FieldLevel) bool {
			return domain.IsValidGSTIN(fl.Field().String())
		}); err != nil {
			registerValidatorsErr = fmt.Errorf("failed to register gstin validator: %w", err)
		}
	})
	return registerValidatorsErr
}

// RegisterRoutes sets up all application routes. apiMiddleware runs after
// authentication on every /api/v1 route.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	apiMiddleware ...gin.HandlerFunc,
) {
	r.GET("/health", health)

	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.SupabaseJWTSecret))
	v1.Use(apiMiddleware...)
	RegisterAPIRoutes(v1, services)

	setupSwaggerRoutes(r, cfg)
}

// RegisterAPIRoutes registers every authenticated route on rg.
func RegisterAPIRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	if err := RegisterValidators(); err != nil {
		slog.Error("Custom validators unavailable, gstin fields will fail binding", slog.String("error", err.Error()))
	}

	registerSpreadsheetRoutes(rg, services.Spreadsheet, services.UserProfile)
	registerGoogleRoutes(rg, services.GoogleToken)
	registerInvoiceRoutes(rg, services.Invoice, services.Render)
	registerPartyRoutes(rg, "/customers", services.Customer, services.Payment)
	registerPartyRoutes(rg, "/vendors", services.Vendor, services.Payment)
	registerProductRoutes(rg, services.Product)
	registerPaymentRoutes(rg, services.Payment)
	registerSettingsRoutes(rg, services.Settings)
	registerGSTINRoutes(rg)
}

// health godoc
// @Summary Liveness check
// @Tags root
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
