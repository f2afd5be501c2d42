package fees

import (
	"testing"

	"lexal/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePresets(t *testing.T) {
	tests := []struct {
		name     string
		selected []models.ServiceCategory
		want     Breakdown
	}{
		{
			name:     "empty selection yields zero breakdown",
			selected: nil,
			want:     Breakdown{},
		},
		{
			name:     "single category equals its preset",
			selected: []models.ServiceCategory{models.ServiceRealEstate},
			want: Breakdown{
				Consultation:    20000,
				Service:         95000,
				PowerOfAttorney: 15000,
				Translation:     20000,
			},
		},
		{
			name: "real estate with company formation sums service and maxes the rest",
			selected: []models.ServiceCategory{
				models.ServiceRealEstate,
				models.ServiceCompanyFormation,
			},
			want: Breakdown{
				Consultation:    20000,
				Service:         250000,
				PowerOfAttorney: 15000,
				Translation:     20000,
			},
		},
		{
			name: "max picks the larger value per line item",
			selected: []models.ServiceCategory{
				models.ServiceVisaD,
				models.ServiceTaxConsulting,
			},
			want: Breakdown{
				Consultation:    20000,
				Service:         125000,
				PowerOfAttorney: 10000,
				Translation:     15000,
			},
		},
		{
			name: "repeated categories count once",
			selected: []models.ServiceCategory{
				models.ServiceRealEstate,
				models.ServiceRealEstate,
				models.ServiceRealEstate,
			},
			want: Breakdown{
				Consultation:    20000,
				Service:         95000,
				PowerOfAttorney: 15000,
				Translation:     20000,
			},
		},
		{
			name: "unknown categories contribute nothing",
			selected: []models.ServiceCategory{
				models.ServiceRealEstate,
				models.ServiceCategory("yacht_registration"),
				models.ServiceCategory(""),
			},
			want: Breakdown{
				Consultation:    20000,
				Service:         95000,
				PowerOfAttorney: 15000,
				Translation:     20000,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePresets(tt.selected)

			assert.Equal(t, tt.want.Consultation, got.Consultation)
			assert.Equal(t, tt.want.Service, got.Service)
			assert.Equal(t, tt.want.PowerOfAttorney, got.PowerOfAttorney)
			assert.Equal(t, tt.want.Translation, got.Translation)
			assert.Equal(t, int64(0), got.Other)

			wantService := tt.want.Consultation + tt.want.Service
			wantAdditional := tt.want.PowerOfAttorney + tt.want.Translation
			assert.Equal(t, wantService, got.ServiceSubtotal)
			assert.Equal(t, wantAdditional, got.AdditionalSubtotal)
			assert.Equal(t, wantService+wantAdditional, got.TotalALL)
		})
	}
}

func TestCalculatePresets_OrderIndependent(t *testing.T) {
	a := CalculatePresets([]models.ServiceCategory{
		models.ServiceCompanyFormation,
		models.ServiceRealEstate,
		models.ServiceVisaD,
	})
	b := CalculatePresets([]models.ServiceCategory{
		models.ServiceVisaD,
		models.ServiceRealEstate,
		models.ServiceCompanyFormation,
	})

	assert.Equal(t, a, b)
}

func TestCalculatePresets_Conversions(t *testing.T) {
	got := CalculatePresets([]models.ServiceCategory{
		models.ServiceRealEstate,
		models.ServiceCompanyFormation,
	})

	assert.Equal(t, int64(305000), got.TotalALL)
	assert.InDelta(t, 3112.24, got.TotalEUR, 0.001)
	assert.InDelta(t, 3315.22, got.TotalUSD, 0.001)
	assert.InDelta(t, 2606.84, got.TotalGBP, 0.001)
}

func TestFromFields(t *testing.T) {
	fields := models.FieldRecord{
		models.FieldConsultationFee: "10,000",
		models.FieldServiceFee:      "85000",
		models.FieldPOAFee:          "not a number",
		models.FieldTranslationFee:  "",
		models.FieldOtherFees:       "2500",
	}

	got := FromFields(fields)

	assert.Equal(t, int64(10000), got.Consultation)
	assert.Equal(t, int64(85000), got.Service)
	assert.Equal(t, int64(0), got.PowerOfAttorney)
	assert.Equal(t, int64(0), got.Translation)
	assert.Equal(t, int64(2500), got.Other)
	assert.Equal(t, int64(95000), got.ServiceSubtotal)
	assert.Equal(t, int64(2500), got.AdditionalSubtotal)
	assert.Equal(t, int64(97500), got.TotalALL)
}

func TestCatalog_CoversEveryCategory(t *testing.T) {
	for _, c := range models.CategoryOrder {
		preset, ok := Catalog[c]
		assert.True(t, ok, "category %s missing from catalog", c)
		assert.Positive(t, preset.Service, "category %s has no service fee", c)
	}
}
