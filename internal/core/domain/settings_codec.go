package domain

import (
	"encoding/json"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// The banks section keeps the whole ordered list under one key.
const bankAccountsKey = "accounts"

// SettingsIssue is a stored settings value that could not be decoded. The
// field it belongs to keeps its zero value.
type SettingsIssue struct {
	Section string
	Key     string
	Err     error
}

func (i SettingsIssue) Error() string {
	return fmt.Sprintf("settings %s.%s: %v", i.Section, i.Key, i.Err)
}

// SettingsFromSections assembles typed settings from raw sheet sections.
// Decoding is per key: a malformed cell is reported as an issue and never
// hides the rest of the settings. Unknown sections are kept in Extra.
func SettingsFromSections(sections []SettingsSection) (Settings, []SettingsIssue) {
	var (
		s      Settings
		issues []SettingsIssue
	)
	for _, sec := range sections {
		issues = append(issues, s.LoadSection(sec.Name, sec.Values)...)
	}
	return s, issues
}

// LoadSection replaces the named section with values, decoding each key on
// its own. Keys that fail to decode are skipped and returned as issues.
func (s *Settings) LoadSection(name string, values SectionValues) []SettingsIssue {
	switch name {
	case SectionCompanyDetails:
		return loadSection(name, values, &s.CompanyDetails)
	case SectionUserProfile:
		return loadSection(name, values, &s.UserProfile)
	case SectionPreferences:
		return loadSection(name, values, &s.Preferences)
	case SectionThermalPrint:
		return loadSection(name, values, &s.ThermalPrintSettings)
	case SectionSignatures:
		return loadSection(name, values, &s.Signatures)
	case SectionNotesTerms:
		return loadSection(name, values, &s.NotesTerms)
	case SectionBanks:
		banks, err := decodeBanks(values)
		if err != nil {
			s.Banks = BankAccounts{}
			return []SettingsIssue{{Section: name, Key: bankAccountsKey, Err: err}}
		}
		s.Banks = banks
		return nil
	default:
		s.setExtra(name, values)
		return nil
	}
}

// ApplySection decodes raw values into the named section, replacing it.
// Unlike LoadSection it fails on the first value that does not decode, so it
// suits values coming from a request.
func (s *Settings) ApplySection(name string, values SectionValues) error {
	switch name {
	case SectionCompanyDetails:
		return replaceSection(values, &s.CompanyDetails)
	case SectionUserProfile:
		return replaceSection(values, &s.UserProfile)
	case SectionPreferences:
		return replaceSection(values, &s.Preferences)
	case SectionThermalPrint:
		return replaceSection(values, &s.ThermalPrintSettings)
	case SectionSignatures:
		return replaceSection(values, &s.Signatures)
	case SectionNotesTerms:
		return replaceSection(values, &s.NotesTerms)
	case SectionBanks:
		banks, err := decodeBanks(values)
		if err != nil {
			return err
		}
		s.Banks = banks
		return nil
	default:
		s.setExtra(name, values)
		return nil
	}
}

// ValidateSectionValues checks that values decode into the named section on
// their own.
func ValidateSectionValues(name string, values SectionValues) error {
	var scratch Settings
	return scratch.ApplySection(name, values)
}

func (s *Settings) setExtra(name string, values SectionValues) {
	if s.Extra == nil {
		s.Extra = map[string]map[string]string{}
	}
	cp := make(map[string]string, len(values))
	for k, v := range values {
		cp[k] = v
	}
	s.Extra[name] = cp
}

// EncodeSection renders the named section as raw sheet values.
func (s *Settings) EncodeSection(name string) (SectionValues, error) {
	switch name {
	case SectionCompanyDetails:
		return encodeSection(s.CompanyDetails)
	case SectionUserProfile:
		return encodeSection(s.UserProfile)
	case SectionPreferences:
		return encodeSection(s.Preferences)
	case SectionThermalPrint:
		return encodeSection(s.ThermalPrintSettings)
	case SectionSignatures:
		return encodeSection(s.Signatures)
	case SectionNotesTerms:
		return encodeSection(s.NotesTerms)
	case SectionBanks:
		return encodeBanks(s.Banks)
	default:
		values := SectionValues{}
		for k, v := range s.Extra[name] {
			values[k] = v
		}
		return values, nil
	}
}

// SectionValuesFromJSON flattens a JSON object into section values: strings
// stay as they are and anything else keeps its JSON text.
func SectionValuesFromJSON(body map[string]json.RawMessage) SectionValues {
	values := make(SectionValues, len(body))
	for k, raw := range body {
		var str string
		if err := json.Unmarshal(raw, &str); err == nil {
			values[k] = str
			continue
		}
		values[k] = strings.TrimSpace(string(raw))
	}
	return values
}

func replaceSection[T any](values SectionValues, dst *T) error {
	var v T
	if err := decodeSection(values, &v); err != nil {
		return err
	}
	*dst = v
	return nil
}

func loadSection[T any](name string, values SectionValues, dst *T) []SettingsIssue {
	var (
		v      T
		issues []SettingsIssue
	)
	for _, key := range slices.Sorted(maps.Keys(values)) {
		if values[key] == "" {
			continue
		}
		next := v
		if err := decodeSection(SectionValues{key: values[key]}, &next); err != nil {
			issues = append(issues, SettingsIssue{Section: name, Key: key, Err: err})
			continue
		}
		v = next
	}
	*dst = v
	return issues
}

func decodeSection(values SectionValues, out any) error {
	input := make(map[string]any, len(values))
	for k, v := range values {
		if v == "" {
			continue
		}
		input[k] = v
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook:       jsonCellHook,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(input); err != nil {
		return fmt.Errorf("decode settings section: %w", err)
	}
	return nil
}

// jsonCellHook decodes nested objects that the sheet holds as JSON text.
func jsonCellHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Struct, reflect.Slice, reflect.Map:
	default:
		return data, nil
	}
	str := strings.TrimSpace(data.(string))
	ptr := reflect.New(to)
	if str == "" {
		return ptr.Elem().Interface(), nil
	}
	if err := json.Unmarshal([]byte(str), ptr.Interface()); err != nil {
		return nil, err
	}
	return ptr.Elem().Interface(), nil
}

func encodeSection(section any) (SectionValues, error) {
	raw, err := json.Marshal(section)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	return SectionValuesFromJSON(fields), nil
}

func decodeBanks(values SectionValues) (BankAccounts, error) {
	raw := strings.TrimSpace(values[bankAccountsKey])
	if raw == "" {
		return BankAccounts{}, nil
	}
	var banks BankAccounts
	if err := json.Unmarshal([]byte(raw), &banks); err != nil {
		return nil, fmt.Errorf("decode bank accounts: %w", err)
	}
	return banks.normalize(), nil
}

func encodeBanks(banks BankAccounts) (SectionValues, error) {
	if banks == nil {
		banks = BankAccounts{}
	}
	raw, err := json.Marshal(banks)
	if err != nil {
		return nil, err
	}
	return SectionValues{bankAccountsKey: string(raw)}, nil
}
