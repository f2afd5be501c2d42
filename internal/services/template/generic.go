package template

import (
	"lexal/internal/models"
	"lexal/internal/services/fees"
)

// GenericFees builds the fallback fee table from the editable fee line items.
// No bespoke multipliers apply; every line comes straight from the breakdown.
func GenericFees(fields models.FieldRecord) FeeTable {
	b := fees.FromFields(fields)

	t := FeeTable{
		Exclusions: []string{
			"Government fees and duties unless listed above",
			"Apostille, legalization and courier costs",
		},
	}

	if b.Consultation > 0 {
		t.ServiceLines = append(t.ServiceLines,
			FeeLine{Description: "Initial consultation and case assessment", Amount: b.Consultation})
	}
	if b.Service > 0 {
		t.ServiceLines = append(t.ServiceLines,
			FeeLine{Description: "Legal services for the selected engagements", Amount: b.Service})
	}
	if b.PowerOfAttorney > 0 {
		t.AdditionalLines = append(t.AdditionalLines,
			FeeLine{Description: "Power of attorney preparation", Amount: b.PowerOfAttorney})
	}
	if b.Translation > 0 {
		t.AdditionalLines = append(t.AdditionalLines,
			FeeLine{Description: "Certified translations", Amount: b.Translation})
	}
	if b.Other > 0 {
		t.AdditionalLines = append(t.AdditionalLines,
			FeeLine{Description: "Other agreed costs", Amount: b.Other})
	}

	return t.sum()
}
