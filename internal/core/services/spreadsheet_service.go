package services

import (
	"context"
	"log/slog"
	"strings"

	portsrepo "github.com/SscSPs/sheetbill/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/sheetbill/internal/core/ports/services"
)

const defaultSpreadsheetTitle = "SheetBill"

type spreadsheetService struct {
	BaseService
	profiles portsrepo.UserProfileRepositoryFacade
}

// NewSpreadsheetService creates the service that bootstraps tenant spreadsheets.
func NewSpreadsheetService(stores portsrepo.StoreProvider, profiles portsrepo.UserProfileRepositoryFacade, opts ...Option) portssvc.SpreadsheetSvc {
	return &spreadsheetService{BaseService: newBase(stores, opts), profiles: profiles}
}

var _ portssvc.SpreadsheetSvc = (*spreadsheetService)(nil)

func (s *spreadsheetService) InitializeSpreadsheet(ctx context.Context, userID, title string) (*portssvc.SpreadsheetInfo, error) {
	profile, err := s.profiles.FindProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile.HasSpreadsheet() {
		return &portssvc.SpreadsheetInfo{SpreadsheetID: profile.SpreadsheetID}, nil
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = defaultSpreadsheetTitle
		if profile.Email != "" {
			title += " - " + profile.Email
		}
	}

	id, err := s.Stores.CreateSpreadsheet(ctx, userID, title)
	if err != nil {
		s.LogError(ctx, err, "Failed to create spreadsheet", slog.String("user_id", userID))
		return nil, err
	}
	if err := s.profiles.UpdateSpreadsheetID(ctx, userID, id); err != nil {
		// The spreadsheet exists in the user's Drive but is not linked; the
		// next attempt creates another one.
		s.LogError(ctx, err, "Failed to link spreadsheet", slog.String("user_id", userID), slog.String("spreadsheet_id", id))
		return nil, err
	}
	s.LogInfo(ctx, "Spreadsheet initialized", slog.String("user_id", userID), slog.String("spreadsheet_id", id))
	return &portssvc.SpreadsheetInfo{SpreadsheetID: id, Created: true}, nil
}
