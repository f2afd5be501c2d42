package fees

import "math"

// Fixed exchange rates per one Albanian lek, held to 8 decimals so the rendered
// currency table stays traceable. Rates are constants, never fetched live;
// changing them invalidates comparability with already-issued documents.
const (
	RateEUR = 0.01020408
	RateUSD = 0.01086957
	RateGBP = 0.00854701
)

// Conversion is one row of the rendered currency table.
type Conversion struct {
	Currency string  `json:"currency"`
	Rate     float64 `json:"rate"`
	Amount   float64 `json:"amount"`
}

// Convert returns the fixed-rate conversions of a lek total, amounts rounded
// to 2 decimals for display.
func Convert(totalALL int64) []Conversion {
	return []Conversion{
		{Currency: "EUR", Rate: RateEUR, Amount: round2(float64(totalALL) * RateEUR)},
		{Currency: "USD", Rate: RateUSD, Amount: round2(float64(totalALL) * RateUSD)},
		{Currency: "GBP", Rate: RateGBP, Amount: round2(float64(totalALL) * RateGBP)},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
