package fees

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	got := Convert(100000)

	assert.Len(t, got, 3)
	assert.Equal(t, "EUR", got[0].Currency)
	assert.Equal(t, "USD", got[1].Currency)
	assert.Equal(t, "GBP", got[2].Currency)

	assert.InDelta(t, 1020.41, got[0].Amount, 0.001)
	assert.InDelta(t, 1086.96, got[1].Amount, 0.001)
	assert.InDelta(t, 854.70, got[2].Amount, 0.001)
}

func TestConvert_ZeroTotal(t *testing.T) {
	for _, c := range Convert(0) {
		assert.Zero(t, c.Amount)
		assert.Positive(t, c.Rate)
	}
}

func TestConvert_Deterministic(t *testing.T) {
	assert.Equal(t, Convert(305000), Convert(305000))
}

func TestConvert_RoundTrip(t *testing.T) {
	for _, total := range []int64{1, 5700, 60800, 305000, 1234567} {
		for _, c := range Convert(total) {
			back := c.Amount / c.Rate
			assert.InDelta(t, float64(total), back, float64(total)*0.01+1,
				"%d ALL through %s", total, c.Currency)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		decimals int
		want     string
	}{
		{"zero", 0, 0, "0"},
		{"under a thousand", 950, 0, "950"},
		{"exactly one group", 1000, 0, "1,000"},
		{"typical total", 305000, 0, "305,000"},
		{"millions", 1234567, 0, "1,234,567"},
		{"two decimals", 1020.408, 2, "1,020.41"},
		{"small with decimals", 54.7, 2, "54.70"},
		{"negative", -15000, 0, "-15,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.v, tt.decimals))
		})
	}
}

func TestFormatLek(t *testing.T) {
	assert.Equal(t, "60,800", FormatLek(60800))
	assert.Equal(t, "5,700", FormatLek(5700))
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "0.01020408", FormatRate(RateEUR))
	assert.Equal(t, "0.01086957", FormatRate(RateUSD))
	assert.Equal(t, "0.00854701", FormatRate(RateGBP))
}
