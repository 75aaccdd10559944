package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

// State is an Indian state or union territory as used for GST place of supply.
// Code is the two digit GST state code.
type State struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// IsZero reports whether neither code nor name is set.
func (s State) IsZero() bool {
	return s.Code == "" && s.Name == ""
}

// UnmarshalJSON accepts the object form {"code","name"}, a plain state name,
// and a string holding the JSON object (older rows stored it that way).
func (s *State) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = State{}
		return nil
	}

	type plain State
	if data[0] == '{' {
		var p plain
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		*s = State(p)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	str = strings.TrimSpace(str)
	if strings.HasPrefix(str, "{") {
		var p plain
		if err := json.Unmarshal([]byte(str), &p); err == nil {
			*s = State(p)
			return nil
		}
	}
	*s = StateByName(str)
	return nil
}

// Address is a postal address stored as a JSON cell.
type Address struct {
	Line1   string `json:"line1"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city"`
	State   State  `json:"state"`
	Pincode string `json:"pincode"`
	Country string `json:"country,omitempty"`
}

// IsZero reports whether the address carries no data.
func (a Address) IsZero() bool {
	return a.Line1 == "" && a.Line2 == "" && a.City == "" && a.State.IsZero() && a.Pincode == "" && a.Country == ""
}

// Lines renders the address as printable lines, skipping empty parts.
func (a Address) Lines() []string {
	var out []string
	for _, l := range []string{a.Line1, a.Line2} {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	var tail []string
	if a.City != "" {
		tail = append(tail, a.City)
	}
	if a.State.Name != "" {
		tail = append(tail, a.State.Name)
	}
	if a.Pincode != "" {
		tail = append(tail, a.Pincode)
	}
	if len(tail) > 0 {
		out = append(out, strings.Join(tail, ", "))
	}
	if a.Country != "" {
		out = append(out, a.Country)
	}
	return out
}

var gstStates = []State{
	{"01", "Jammu and Kashmir"},
	{"02", "Himachal Pradesh"},
	{"03", "Punjab"},
	{"04", "Chandigarh"},
	{"05", "Uttarakhand"},
	{"06", "Haryana"},
	{"07", "Delhi"},
	{"08", "Rajasthan"},
	{"09", "Uttar Pradesh"},
	{"10", "Bihar"},
	{"11", "Sikkim"},
	{"12", "Arunachal Pradesh"},
	{"13", "Nagaland"},
	{"14", "Manipur"},
	{"15", "Mizoram"},
	{"16", "Tripura"},
	{"17", "Meghalaya"},
	{"18", "Assam"},
	{"19", "West Bengal"},
	{"20", "Jharkhand"},
	{"21", "Odisha"},
	{"22", "Chhattisgarh"},
	{"23", "Madhya Pradesh"},
	{"24", "Gujarat"},
	{"26", "Dadra and Nagar Haveli and Daman and Diu"},
	{"27", "Maharashtra"},
	{"29", "Karnataka"},
	{"30", "Goa"},
	{"31", "Lakshadweep"},
	{"32", "Kerala"},
	{"33", "Tamil Nadu"},
	{"34", "Puducherry"},
	{"35", "Andaman and Nicobar Islands"},
	{"36", "Telangana"},
	{"37", "Andhra Pradesh"},
	{"38", "Ladakh"},
	{"97", "Other Territory"},
}

// StateByCode looks up a state by its GST code.
func StateByCode(code string) (State, bool) {
	for _, s := range gstStates {
		if s.Code == code {
			return s, true
		}
	}
	return State{}, false
}

// StateByName resolves a state name case-insensitively. Unknown names are kept
// as-is with an empty code.
func StateByName(name string) State {
	for _, s := range gstStates {
		if strings.EqualFold(s.Name, name) {
			return s
		}
	}
	return State{Name: name}
}
