package models

import (
	"database/sql/driver"
	"errors"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Well-known field keys collected by the intake wizard or the edit form.
// The record is open: unknown keys are stored and carried along untouched.
const (
	FieldTitle          = "title"
	FieldDate           = "date"
	FieldClientName     = "client_name"
	FieldClientEmail    = "client_email"
	FieldClientPhone    = "client_phone"
	FieldClientAddress  = "client_address"
	FieldNationality    = "nationality"
	FieldPassportNumber = "passport_number"

	FieldPropertyDescription = "property_description"
	FieldPropertyLocation    = "property_location"
	FieldPurposeOfStay       = "purpose_of_stay"
	FieldApplicantCount      = "applicant_count"
	FieldDependentName       = "dependent_name"
	FieldFamilyMembers       = "family_members"
	FieldBusinessActivity    = "business_activity"
	FieldCompanyName         = "company_name"
	FieldTaxMatter           = "tax_matter"

	FieldConsultationFee = "consultation_fee"
	FieldServiceFee      = "service_fee"
	FieldPOAFee          = "poa_fee"
	FieldTranslationFee  = "translation_fee"
	FieldOtherFees       = "other_fees"
	FieldNotes           = "notes"
)

// FieldRecord holds the intake answers and editable fee line items for one
// customer. Values are stored as entered; typed accessors below own the
// lenient parsing rules (blank means unset, malformed numbers read as zero).
type FieldRecord map[string]string

// Text returns the trimmed value for a key, or "" when unset.
func (r FieldRecord) Text(key string) string {
	return strings.TrimSpace(r[key])
}

// Has reports whether a key holds a non-blank value.
func (r FieldRecord) Has(key string) bool {
	return r.Text(key) != ""
}

// TextOr returns the trimmed value, or the fallback when the key is unset.
func (r FieldRecord) TextOr(key, fallback string) string {
	if v := r.Text(key); v != "" {
		return v
	}
	return fallback
}

// Amount parses a fee field as whole lek. Blank or malformed values read as 0;
// thousands separators are tolerated since values come from a free-text form.
func (r FieldRecord) Amount(key string) int64 {
	raw := strings.ReplaceAll(r.Text(key), ",", "")
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// Count parses a headcount-style field. Unset or malformed values read as the
// given default; zero and negative entries also fall back to the default.
func (r FieldRecord) Count(key string, def int) int {
	raw := r.Text(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return def
	}
	return v
}

// Clone returns an independent copy. Snapshots rely on this to freeze the
// record at send time.
func (r FieldRecord) Clone() FieldRecord {
	if r == nil {
		return FieldRecord{}
	}
	out := make(FieldRecord, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Value implements the driver.Valuer interface for the jsonb column.
func (r FieldRecord) Value() (driver.Value, error) {
	if r == nil {
		return json.Marshal(FieldRecord{})
	}
	return json.Marshal(r)
}

// Scan implements the sql.Scanner interface.
func (r *FieldRecord) Scan(value interface{}) error {
	if value == nil {
		*r = FieldRecord{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("field record: unsupported column type")
	}
	return json.Unmarshal(bytes, r)
}
