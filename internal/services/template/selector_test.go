package template

import (
	"testing"

	"lexal/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name     string
		selected []models.ServiceCategory
		want     ID
	}{
		{
			name:     "empty selection falls back to generic",
			selected: nil,
			want:     Generic,
		},
		{
			name:     "pensioner alone",
			selected: []models.ServiceCategory{models.ServiceResidencyPensioner},
			want:     Pensioner,
		},
		{
			name: "pensioner beats every other selection",
			selected: []models.ServiceCategory{
				models.ServiceRealEstate,
				models.ServiceCompanyFormation,
				models.ServiceVisaD,
				models.ServiceResidencyPensioner,
			},
			want: Pensioner,
		},
		{
			name:     "visa d without company formation",
			selected: []models.ServiceCategory{models.ServiceVisaD},
			want:     EmploymentVisa,
		},
		{
			name: "visa d with residency permit still employment visa",
			selected: []models.ServiceCategory{
				models.ServiceVisaD,
				models.ServiceResidencyPermit,
			},
			want: EmploymentVisa,
		},
		{
			name: "visa d with company formation becomes company variant",
			selected: []models.ServiceCategory{
				models.ServiceVisaD,
				models.ServiceCompanyFormation,
			},
			want: CompanyFormation,
		},
		{
			name:     "company formation alone",
			selected: []models.ServiceCategory{models.ServiceCompanyFormation},
			want:     CompanyFormation,
		},
		{
			name: "company formation beats real estate",
			selected: []models.ServiceCategory{
				models.ServiceRealEstate,
				models.ServiceCompanyFormation,
			},
			want: CompanyFormation,
		},
		{
			name:     "real estate alone",
			selected: []models.ServiceCategory{models.ServiceRealEstate},
			want:     RealEstate,
		},
		{
			name: "real estate with unrelated services stays real estate",
			selected: []models.ServiceCategory{
				models.ServiceRealEstate,
				models.ServiceTaxConsulting,
			},
			want: RealEstate,
		},
		{
			name: "no variant match falls back to generic",
			selected: []models.ServiceCategory{
				models.ServiceVisaC,
				models.ServiceTaxConsulting,
				models.ServiceCompliance,
			},
			want: Generic,
		},
		{
			name: "unknown categories do not influence selection",
			selected: []models.ServiceCategory{
				models.ServiceCategory("litigation"),
				models.ServiceRealEstate,
			},
			want: RealEstate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Select(tt.selected))
		})
	}
}

func TestBuild_PanicsOnGeneric(t *testing.T) {
	assert.Panics(t, func() {
		Build(Generic, nil)
	})
}

func TestBuild_EveryVariantRendersContent(t *testing.T) {
	for _, id := range []ID{Pensioner, EmploymentVisa, CompanyFormation, RealEstate} {
		merged, fee := Build(id, nil)

		assert.NotEmpty(t, merged.Intro, "variant %s has no intro", id)
		assert.NotEmpty(t, merged.Scope, "variant %s has no scope", id)
		assert.NotEmpty(t, merged.RequiredDocs, "variant %s has no documents", id)
		assert.Equal(t, engagementNextStep, merged.NextSteps[0], "variant %s next steps", id)
		assert.Positive(t, fee.TotalALL, "variant %s has no total", id)
	}
}
