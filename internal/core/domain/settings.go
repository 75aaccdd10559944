package domain

// Settings section names as written in the sheet's section marker rows.
const (
	SectionCompanyDetails = "companyDetails"
	SectionUserProfile    = "userProfile"
	SectionPreferences    = "preferences"
	SectionThermalPrint   = "thermalPrintSettings"
	SectionSignatures     = "signatures"
	SectionNotesTerms     = "notesTerms"
	SectionBanks          = "banks"
)

// KnownSections lists the typed sections in the order they are bootstrapped.
var KnownSections = []string{
	SectionCompanyDetails,
	SectionUserProfile,
	SectionPreferences,
	SectionThermalPrint,
	SectionSignatures,
	SectionNotesTerms,
	SectionBanks,
}

// BusinessDetails describes the seller printed in the invoice header.
type BusinessDetails struct {
	Name       string  `json:"name"`
	LegalName  string  `json:"legalName,omitempty"`
	GSTIN      string  `json:"gstin,omitempty"`
	PAN        string  `json:"pan,omitempty"`
	Email      string  `json:"email,omitempty"`
	Phone      string  `json:"phone,omitempty"`
	Website    string  `json:"website,omitempty"`
	Address    Address `json:"address"`
	LogoFileID string  `json:"logoFileId,omitempty"`
}

// ProfileDetails is the person operating the account.
type ProfileDetails struct {
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Designation string `json:"designation,omitempty"`
}

// Preferences drive numbering, due dates and rounding for new documents.
type Preferences struct {
	Rounding         RoundingMode `json:"rounding"`
	DueDays          int          `json:"dueDays"`
	DiscountType     DiscountKind `json:"discountType"`
	InvoicePrefix    string       `json:"invoicePrefix"`
	CreditNotePrefix string       `json:"creditNotePrefix"`
	PurchasePrefix   string       `json:"purchasePrefix"`
	ExpensePrefix    string       `json:"expensePrefix"`
	QuotationPrefix  string       `json:"quotationPrefix"`
}

// ThermalPrintSettings configure the narrow receipt layout.
type ThermalPrintSettings struct {
	Enabled        bool   `json:"enabled"`
	PaperWidthMM   int    `json:"paperWidthMm"`
	ShowLogo       bool   `json:"showLogo"`
	ShowTaxSummary bool   `json:"showTaxSummary"`
	FooterText     string `json:"footerText,omitempty"`
}

// Signatures hold the default signature applied to new invoices.
type Signatures struct {
	DefaultFileID string `json:"defaultFileId,omitempty"`
	DefaultURL    string `json:"defaultUrl,omitempty"`
	SignatoryName string `json:"signatoryName,omitempty"`
}

// NotesTerms are the default notes and terms per document type.
type NotesTerms struct {
	InvoiceNotes    string `json:"invoiceNotes,omitempty"`
	InvoiceTerms    string `json:"invoiceTerms,omitempty"`
	QuotationNotes  string `json:"quotationNotes,omitempty"`
	QuotationTerms  string `json:"quotationTerms,omitempty"`
	CreditNoteNotes string `json:"creditNoteNotes,omitempty"`
	CreditNoteTerms string `json:"creditNoteTerms,omitempty"`
	PurchaseNotes   string `json:"purchaseNotes,omitempty"`
	PurchaseTerms   string `json:"purchaseTerms,omitempty"`
}

// Settings is the per-spreadsheet configuration singleton.
type Settings struct {
	CompanyDetails       BusinessDetails              `json:"companyDetails"`
	UserProfile          ProfileDetails               `json:"userProfile"`
	Preferences          Preferences                  `json:"preferences"`
	ThermalPrintSettings ThermalPrintSettings         `json:"thermalPrintSettings"`
	Signatures           Signatures                   `json:"signatures"`
	NotesTerms           NotesTerms                   `json:"notesTerms"`
	Banks                BankAccounts                 `json:"banks"`
	Extra                map[string]map[string]string `json:"extra,omitempty"`
}

// DefaultSettings are written when a spreadsheet is bootstrapped.
func DefaultSettings() Settings {
	return Settings{
		Preferences: Preferences{
			Rounding:         RoundNearest,
			DueDays:          30,
			DiscountType:     DiscountPercent,
			InvoicePrefix:    "INV-",
			CreditNotePrefix: "CN-",
			PurchasePrefix:   "PUR-",
			ExpensePrefix:    "EXP-",
			QuotationPrefix:  "QT-",
		},
		ThermalPrintSettings: ThermalPrintSettings{PaperWidthMM: 80, ShowTaxSummary: true},
		NotesTerms: NotesTerms{
			InvoiceNotes: "Thank you for your business.",
			InvoiceTerms: "Payment is due within the agreed credit period.",
		},
	}
}

// SettingsSection is one block of key/value rows under a section marker.
type SettingsSection struct {
	Name   string        `json:"name"`
	Values SectionValues `json:"values"`
}

// SectionValues are the raw cells of a section. An empty value blanks the key.
type SectionValues map[string]string
