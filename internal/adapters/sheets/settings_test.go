package sheets

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/sheetbill/internal/apperrors"
	"github.com/SscSPs/sheetbill/internal/core/domain"
	"github.com/stretchr/testify/suite"
)

type SettingsRepositoryTestSuite struct {
	suite.Suite
	fake *fakeSpreadsheet
	repo *settingsRepository
	ctx  context.Context
}

func (suite *SettingsRepositoryTestSuite) SetupTest() {
	suite.fake = newFakeSpreadsheet("sheet-1")
	suite.fake.addTab(TabSettings,
		[]string{"Key", "Value", "Type", "Updated At", "Updated By"},
		[]string{SectionMarker, domain.SectionCompanyDetails},
		[]string{"name", "Acme", "string"},
		[]string{SectionMarker, domain.SectionPreferences},
		[]string{"dueDays", "30", "number"},
	)
	svc, _ := suite.fake.start(suite.T())
	suite.repo = NewSettingsRepository(NewClient(svc, "sheet-1"), "owner@acme.test").(*settingsRepository)
	suite.repo.now = func() time.Time { return time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC) }
	suite.ctx = context.Background()
}

func (suite *SettingsRepositoryTestSuite) sections() map[string]domain.SectionValues {
	list, err := suite.repo.ListSections(suite.ctx)
	suite.Require().NoError(err)
	out := map[string]domain.SectionValues{}
	for _, s := range list {
		out[s.Name] = s.Values
	}
	return out
}

func (suite *SettingsRepositoryTestSuite) TestListSectionsGroupsRows() {
	list, err := suite.repo.ListSections(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(list, 2)
	suite.Equal(domain.SectionCompanyDetails, list[0].Name)
	suite.Equal(domain.SectionValues{"name": "Acme"}, list[0].Values)
	suite.Equal(domain.SectionValues{"dueDays": "30"}, list[1].Values)
}

func (suite *SettingsRepositoryTestSuite) TestUpdateSectionInsertsBeforeNextSection() {
	err := suite.repo.UpdateSection(suite.ctx, domain.SectionCompanyDetails, domain.SectionValues{
		"name":  "Acme Ltd",
		"gstin": "29ABCDE1234F1Z5",
	})
	suite.Require().NoError(err)

	got := suite.sections()
	suite.Equal(domain.SectionValues{"name": "Acme Ltd", "gstin": "29ABCDE1234F1Z5"}, got[domain.SectionCompanyDetails])
	suite.Equal(domain.SectionValues{"dueDays": "30"}, got[domain.SectionPreferences])

	rows := suite.fake.tab(TabSettings)
	suite.Equal("gstin", rows[3][0])
	suite.Equal("owner@acme.test", rows[3][4])
	suite.Equal(SectionMarker, rows[4][0])
}

func (suite *SettingsRepositoryTestSuite) TestUpdateSectionBlanksEmptyValues() {
	err := suite.repo.UpdateSection(suite.ctx, domain.SectionPreferences, domain.SectionValues{"dueDays": ""})
	suite.Require().NoError(err)

	suite.Empty(suite.sections()[domain.SectionPreferences])
	// The row stays in place and is reused by the next new key.
	suite.Require().NoError(suite.repo.UpdateSection(suite.ctx, domain.SectionPreferences, domain.SectionValues{"invoicePrefix": "INV-"}))
	rows := suite.fake.tab(TabSettings)
	suite.Len(rows, 5)
	suite.Equal("invoicePrefix", rows[4][0])
}

func (suite *SettingsRepositoryTestSuite) TestUpdateLastSectionGrowsDownwards() {
	err := suite.repo.UpdateSection(suite.ctx, domain.SectionPreferences, domain.SectionValues{"invoicePrefix": "BILL-"})
	suite.Require().NoError(err)

	suite.Equal(domain.SectionValues{"dueDays": "30", "invoicePrefix": "BILL-"}, suite.sections()[domain.SectionPreferences])
	suite.Len(suite.fake.tab(TabSettings), 6)
}

func (suite *SettingsRepositoryTestSuite) TestUpdateMissingSectionAppendsIt() {
	err := suite.repo.UpdateSection(suite.ctx, domain.SectionNotesTerms, domain.SectionValues{"invoiceNotes": "Thanks"})
	suite.Require().NoError(err)
	suite.Equal(domain.SectionValues{"invoiceNotes": "Thanks"}, suite.sections()[domain.SectionNotesTerms])
}

func (suite *SettingsRepositoryTestSuite) TestCreateAndDeleteSection() {
	suite.ErrorIs(suite.repo.CreateSection(suite.ctx, domain.SectionPreferences, nil), apperrors.ErrDuplicate)

	suite.Require().NoError(suite.repo.CreateSection(suite.ctx, "branding", domain.SectionValues{"accent": "#0044aa"}))
	suite.Equal(domain.SectionValues{"accent": "#0044aa"}, suite.sections()["branding"])

	suite.Require().NoError(suite.repo.DeleteSection(suite.ctx, domain.SectionCompanyDetails))
	got := suite.sections()
	suite.NotContains(got, domain.SectionCompanyDetails)
	suite.Contains(got, domain.SectionPreferences)

	suite.ErrorIs(suite.repo.DeleteSection(suite.ctx, "unknown"), apperrors.ErrNotFound)
}

func TestSettingsRepository(t *testing.T) {
	suite.Run(t, new(SettingsRepositoryTestSuite))
}

func TestValueType(t *testing.T) {
	cases := map[string]string{
		`{"a":1}`: "json",
		"[1,2]":   "json",
		"true":    "boolean",
		"12.5":    "number",
		"Acme":    "string",
	}
	for in, want := range cases {
		if got := valueType(in); got != want {
			t.Errorf("valueType(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBootstrapWritesHeadersAndDefaults(t *testing.T) {
	fake := newFakeSpreadsheet("new-sheet")
	svc, _ := fake.start(t)

	id, err := Bootstrap(context.Background(), svc, "Acme Books", "owner@acme.test", time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if id != "new-sheet" {
		t.Fatalf("id = %q", id)
	}
	for _, tab := range []string{TabInvoices, TabQuotations, TabCreditNotes, TabProducts, TabCustomers, TabVendors, TabPayments} {
		rows := fake.tab(tab)
		if len(rows) != 1 || rows[0][0] != "id" {
			t.Errorf("%s header = %v", tab, rows)
		}
	}

	repo := NewSettingsRepository(NewClient(svc, id), "owner@acme.test")
	sections, err := repo.ListSections(context.Background())
	if err != nil {
		t.Fatalf("ListSections: %v", err)
	}
	if len(sections) != len(domain.KnownSections) {
		t.Fatalf("got %d sections, want %d", len(sections), len(domain.KnownSections))
	}
	settings, issues := domain.SettingsFromSections(sections)
	if len(issues) > 0 {
		t.Fatalf("SettingsFromSections: %v", issues)
	}
	if settings.Preferences.InvoicePrefix != "INV-" || settings.Preferences.DueDays != 30 {
		t.Errorf("preferences = %+v", settings.Preferences)
	}
}
