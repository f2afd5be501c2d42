package fees

import "lexal/internal/models"

// Breakdown is the aggregate fee view of a proposal: the editable line items
// plus the derived subtotals, the lek total and its fixed-rate conversions.
type Breakdown struct {
	Consultation    int64 `json:"consultation_fee"`
	Service         int64 `json:"service_fee"`
	PowerOfAttorney int64 `json:"poa_fee"`
	Translation     int64 `json:"translation_fee"`
	Other           int64 `json:"other_fees"`

	ServiceSubtotal    int64   `json:"service_subtotal"`
	AdditionalSubtotal int64   `json:"additional_subtotal"`
	TotalALL           int64   `json:"total_all"`
	TotalEUR           float64 `json:"total_eur"`
	TotalUSD           float64 `json:"total_usd"`
	TotalGBP           float64 `json:"total_gbp"`
}

// CalculatePresets seeds a Breakdown from the catalog for the selected set.
// Repeated and unknown categories contribute nothing extra; the service fee
// accumulates per category while the remaining line items take the largest
// catalog value. Pure and idempotent.
func CalculatePresets(selected []models.ServiceCategory) Breakdown {
	var b Breakdown
	for _, c := range models.NormalizeCategories(selected) {
		preset, ok := Catalog[c]
		if !ok {
			continue
		}
		b.Service += preset.Service
		b.Consultation = maxInt64(b.Consultation, preset.Consultation)
		b.PowerOfAttorney = maxInt64(b.PowerOfAttorney, preset.PowerOfAttorney)
		b.Translation = maxInt64(b.Translation, preset.Translation)
	}
	return b.finalize()
}

// FromFields builds the generic breakdown from the editable fee line items of
// a field record. Malformed or blank amounts read as zero.
func FromFields(fields models.FieldRecord) Breakdown {
	b := Breakdown{
		Consultation:    fields.Amount(models.FieldConsultationFee),
		Service:         fields.Amount(models.FieldServiceFee),
		PowerOfAttorney: fields.Amount(models.FieldPOAFee),
		Translation:     fields.Amount(models.FieldTranslationFee),
		Other:           fields.Amount(models.FieldOtherFees),
	}
	return b.finalize()
}

// finalize recomputes the derived subtotals and conversions. The service table
// carries consultation and service work; power of attorney, translation and
// other disbursement-like items are additional costs.
func (b Breakdown) finalize() Breakdown {
	b.ServiceSubtotal = b.Consultation + b.Service
	b.AdditionalSubtotal = b.PowerOfAttorney + b.Translation + b.Other
	b.TotalALL = b.ServiceSubtotal + b.AdditionalSubtotal
	b.TotalEUR = round2(float64(b.TotalALL) * RateEUR)
	b.TotalUSD = round2(float64(b.TotalALL) * RateUSD)
	b.TotalGBP = round2(float64(b.TotalALL) * RateGBP)
	return b
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
