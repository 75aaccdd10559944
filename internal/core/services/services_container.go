package services

import (
	"github.com/SscSPs/sheetbill/internal/core/domain"
	portsrepo "github.com/SscSPs/sheetbill/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sheetbill/internal/core/ports/services"
	"github.com/SscSPs/sheetbill/internal/platform/config"
	"github.com/SscSPs/sheetbill/internal/render"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The token service is built by the caller because the store provider needs it
// to open spreadsheets.
func NewServiceContainer(
	cfg *config.Config,
	profiles portsrepo.UserProfileRepositoryFacade,
	stores portsrepo.StoreProvider,
	tokens portssvc.GoogleTokenSvcFacade,
) *portssvc.ServiceContainer {
	renderer := render.NewRenderer(render.NewEngine(render.NewTextMeasurer(), cfg.PageBodyHeight))

	return &portssvc.ServiceContainer{
		Invoice:     NewInvoiceService(stores),
		Customer:    NewPartyService(stores, domain.PartyCustomer),
		Vendor:      NewPartyService(stores, domain.PartyVendor),
		Product:     NewProductService(stores),
		Payment:     NewPaymentService(stores),
		Settings:    NewSettingsService(stores),
		Render:      NewRenderService(stores, renderer),
		Spreadsheet: NewSpreadsheetService(stores, profiles),
		GoogleToken: tokens,
		UserProfile: NewUserProfileService(profiles),
	}
}
