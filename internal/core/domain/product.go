package domain

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Stock is either a quantity or free text such as "made to order". Numbers are
// kept in their decimal text form.
type Stock string

// Quantity returns the numeric stock level when the value is a number.
func (s Stock) Quantity() (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(string(s)))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func (s Stock) MarshalJSON() ([]byte, error) {
	if d, ok := s.Quantity(); ok {
		return []byte(d.String()), nil
	}
	return json.Marshal(string(s))
}

func (s *Stock) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Stock(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = Stock(n.String())
	return nil
}

// Product is a catalog entry used to prefill invoice line items.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       Stock           `json:"stock"`
	HSNCode     string          `json:"hsnCode,omitempty"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	Category    string          `json:"category,omitempty"`
	Unit        string          `json:"unit,omitempty"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	Status      RecordStatus    `json:"status"`
	AuditFields
}

// Archive marks the product inactive.
func (p *Product) Archive() {
	p.Status = RecordInactive
}
