package template

import (
	"testing"

	"lexal/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestPensionerFees_SingleApplicant(t *testing.T) {
	got := pensionerFees(nil)

	assert.Equal(t, int64(45000), got.ServiceSubtotal)
	assert.Equal(t, int64(15800), got.AdditionalSubtotal)
	assert.Equal(t, int64(60800), got.TotalALL)
	assert.Len(t, got.ServiceLines, 1)
}

func TestPensionerFees_WithDependent(t *testing.T) {
	tests := []struct {
		name   string
		fields models.FieldRecord
	}{
		{
			name:   "named dependent",
			fields: models.FieldRecord{models.FieldDependentName: "Maria"},
		},
		{
			name:   "family member count",
			fields: models.FieldRecord{models.FieldFamilyMembers: "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pensionerFees(tt.fields)

			assert.Equal(t, int64(90000), got.ServiceSubtotal)
			assert.Equal(t, int64(31600), got.AdditionalSubtotal)
			assert.Equal(t, int64(121600), got.TotalALL)
			assert.Len(t, got.ServiceLines, 2)
		})
	}
}

func TestPensionerFees_TranslationPassthrough(t *testing.T) {
	got := pensionerFees(models.FieldRecord{models.FieldTranslationFee: "4000"})

	assert.Equal(t, int64(64800), got.TotalALL)

	last := got.AdditionalLines[len(got.AdditionalLines)-1]
	assert.Equal(t, "Certified translations", last.Description)
	assert.Equal(t, int64(4000), last.Amount)
}

func TestEmploymentVisaFees_SingleApplicant(t *testing.T) {
	got := employmentVisaFees(nil)

	assert.Equal(t, int64(75000), got.ServiceSubtotal)
	assert.Equal(t, int64(16400), got.AdditionalSubtotal)
	assert.Equal(t, int64(91400), got.TotalALL)
}

func TestEmploymentVisaFees_DiscountAppliesToEveryApplicant(t *testing.T) {
	got := employmentVisaFees(models.FieldRecord{models.FieldApplicantCount: "3"})

	// 3 x 55,000: the volume rate replaces the standard rate for all
	// applicants, not only the additional ones
	assert.Equal(t, int64(165000), got.ServiceSubtotal)
	assert.Equal(t, int64(49200), got.AdditionalSubtotal)
	assert.Equal(t, int64(214200), got.TotalALL)
}

func TestEmploymentVisaFees_TwoApplicants(t *testing.T) {
	got := employmentVisaFees(models.FieldRecord{models.FieldApplicantCount: "2"})

	assert.Equal(t, int64(110000), got.ServiceSubtotal)
	assert.Equal(t, int64(32800), got.AdditionalSubtotal)
	assert.Equal(t, int64(142800), got.TotalALL)
}

func TestEmploymentVisaFees_MalformedCountDefaultsToOne(t *testing.T) {
	got := employmentVisaFees(models.FieldRecord{models.FieldApplicantCount: "several"})

	assert.Equal(t, int64(91400), got.TotalALL)
}

func TestCompanyFormationFees(t *testing.T) {
	got := companyFormationFees(nil)

	assert.Equal(t, int64(160000), got.ServiceSubtotal)
	assert.Equal(t, int64(19000), got.AdditionalSubtotal)
	assert.Equal(t, int64(179000), got.TotalALL)

	// Monthly costs and tax rates are shown but never summed
	assert.Len(t, got.Informational, 3)
	assert.Len(t, got.TaxRates, 4)
	for _, l := range got.Informational {
		assert.Equal(t, "monthly", l.Period)
	}
}

func TestCompanyFormationFees_HeadcountIndependent(t *testing.T) {
	a := companyFormationFees(nil)
	b := companyFormationFees(models.FieldRecord{models.FieldApplicantCount: "4"})

	assert.Equal(t, a.TotalALL, b.TotalALL)
}

func TestRealEstateFees_Default(t *testing.T) {
	got := realEstateFees(nil)

	assert.Equal(t, int64(95000), got.TotalALL)
	assert.Empty(t, got.AdditionalLines)
	assert.Len(t, got.Informational, 2)
}

func TestRealEstateFees_EditableServiceFee(t *testing.T) {
	got := realEstateFees(models.FieldRecord{models.FieldServiceFee: "120000"})

	assert.Equal(t, int64(120000), got.TotalALL)
}

func TestRealEstateFees_MalformedFeeFallsBack(t *testing.T) {
	got := realEstateFees(models.FieldRecord{models.FieldServiceFee: "a lot"})

	assert.Equal(t, int64(95000), got.TotalALL)
}

func TestGenericFees(t *testing.T) {
	fields := models.FieldRecord{
		models.FieldConsultationFee: "10000",
		models.FieldServiceFee:      "85000",
		models.FieldTranslationFee:  "4000",
	}

	got := GenericFees(fields)

	assert.Equal(t, int64(95000), got.ServiceSubtotal)
	assert.Equal(t, int64(4000), got.AdditionalSubtotal)
	assert.Equal(t, int64(99000), got.TotalALL)
	assert.Len(t, got.ServiceLines, 2)
	assert.Len(t, got.AdditionalLines, 1)
}

func TestGenericFees_SkipsZeroLines(t *testing.T) {
	got := GenericFees(models.FieldRecord{models.FieldServiceFee: "50000"})

	assert.Len(t, got.ServiceLines, 1)
	assert.Empty(t, got.AdditionalLines)
	assert.Equal(t, int64(50000), got.TotalALL)
}

func TestFeeTable_Conversions(t *testing.T) {
	fee := FeeTable{TotalALL: 100000}
	got := fee.Conversions()

	assert.Len(t, got, 3)
	assert.InDelta(t, 1020.41, got[0].Amount, 0.001)
}
