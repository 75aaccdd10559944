package domain

import "time"

// AuditFields holds the creation and modification times kept on every sheet row.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RecordStatus marks whether a customer, vendor or product is in use.
// Records are archived, never removed from the sheet.
type RecordStatus string

const (
	RecordActive   RecordStatus = "active"
	RecordInactive RecordStatus = "inactive"
)

// IsValid reports whether s is a known record status.
func (s RecordStatus) IsValid() bool {
	return s == RecordActive || s == RecordInactive
}
