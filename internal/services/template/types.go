package template

import (
	"lexal/internal/services/fees"
)

// The residence ID card coupon costs the same government amount regardless of
// which permit route the applicant takes.
const idCardCouponFee = 5700

// Every variant opens its next steps with the engagement step, matching the
// composed path.
const engagementNextStep = "Execution of the engagement agreement and payment of the initial fee"

// FeeLine is one summed row of a fee table, amount in whole lek.
type FeeLine struct {
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
}

// InfoLine is a displayed-but-never-summed figure: monthly retainers, hourly
// rates and similar recurring costs shown for the client's information.
type InfoLine struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Period      string  `json:"period"`
}

// TaxRate is one informational row of the taxation table shown with the
// company formation variant.
type TaxRate struct {
	Description string `json:"description"`
	Rate        string `json:"rate"`
}

// FeeTable is the computed fee section of a proposal. Service lines and
// additional cost lines are summed into the one-time lek total; informational
// lines and tax rates are display-only.
type FeeTable struct {
	ServiceLines       []FeeLine  `json:"service_lines"`
	ServiceSubtotal    int64      `json:"service_subtotal"`
	AdditionalLines    []FeeLine  `json:"additional_lines"`
	AdditionalSubtotal int64      `json:"additional_subtotal"`
	TotalALL           int64      `json:"total_all"`
	Informational      []InfoLine `json:"informational,omitempty"`
	TaxRates           []TaxRate  `json:"tax_rates,omitempty"`
	Exclusions         []string   `json:"exclusions,omitempty"`
}

// Conversions returns the fixed-rate currency table for the one-time total.
func (t FeeTable) Conversions() []fees.Conversion {
	return fees.Convert(t.TotalALL)
}

// sum fills the derived subtotal and total fields from the line items.
func (t FeeTable) sum() FeeTable {
	t.ServiceSubtotal = 0
	for _, l := range t.ServiceLines {
		t.ServiceSubtotal += l.Amount
	}
	t.AdditionalSubtotal = 0
	for _, l := range t.AdditionalLines {
		t.AdditionalSubtotal += l.Amount
	}
	t.TotalALL = t.ServiceSubtotal + t.AdditionalSubtotal
	return t
}
