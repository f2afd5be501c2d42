package template

import (
	"fmt"

	"lexal/internal/models"
	"lexal/internal/services/content"
)

// Real estate constants. The phase-1 fee is editable per proposal; phase-2
// figures are informational euro amounts.
const (
	realEstateDefaultFee       = 95000
	realEstateMonitoringFeeEUR = 50
	realEstateOverflowRateEUR  = 100
)

// realEstatePhaseOneFee returns the editable service fee, falling back to the
// standard phase-1 fee when unset or malformed.
func realEstatePhaseOneFee(fields models.FieldRecord) int64 {
	if v := fields.Amount(models.FieldServiceFee); v > 0 {
		return v
	}
	return realEstateDefaultFee
}

// realEstateFees computes the real estate fee table. Phase 1 is the one-time
// acquisition fee; the phase-2 monitoring retainer and overflow rate are
// displayed but excluded from the total.
func realEstateFees(fields models.FieldRecord) FeeTable {
	t := FeeTable{
		ServiceLines: []FeeLine{
			{Description: "Phase 1 - acquisition, due diligence and registration", Amount: realEstatePhaseOneFee(fields)},
		},
		Informational: []InfoLine{
			{Description: "Phase 2 - property monitoring retainer", Amount: realEstateMonitoringFeeEUR, Currency: "EUR", Period: "monthly"},
			{Description: "Additional work beyond the retainer", Amount: realEstateOverflowRateEUR, Currency: "EUR", Period: "hourly"},
		},
		Exclusions: []string{
			"Notary fees for the sale-purchase contract",
			"Property transfer tax and registration duties",
			"Certified translations of foreign documents",
		},
	}
	return t.sum()
}

// realEstateContent is the verbatim real estate document narrative.
func realEstateContent(fields models.FieldRecord) content.Merged {
	property := fields.TextOr(models.FieldPropertyDescription, "the property you intend to acquire")
	location := ""
	if fields.Has(models.FieldPropertyLocation) {
		location = fmt.Sprintf(" located in %s", fields.Text(models.FieldPropertyLocation))
	}

	return content.Merged{
		Intro: "This proposal sets out the scope of services, required documents, timeline and fees " +
			"for the acquisition of real estate in Albania.",
		Scope: fmt.Sprintf(
			"We will assist you with the acquisition of %s%s. Phase 1 covers the complete acquisition: "+
				"legal due diligence, contract negotiation, execution before the notary and registration of "+
				"the ownership title. Phase 2, available after closing, is an ongoing monitoring retainer "+
				"covering the property's tax and administrative obligations.",
			property, location),
		Sections: content.NumberSections([]content.Section{
			{
				Heading: "Legal Due Diligence",
				Bullets: []string{
					"Verification of the seller's ownership title at the State Cadastre Agency",
					"Review of encumbrances, mortgages, servitudes and pending claims",
					"Verification of building permits and legalization status",
					"Confirmation that the property is free of restitution claims",
				},
			},
			{
				Heading: "Transaction Execution",
				Bullets: []string{
					"Drafting and negotiation of the preliminary sale agreement",
					"Drafting of the final sale-purchase contract before the notary",
					"Coordination of payment through a secured escrow arrangement",
					"Registration of the new ownership title",
				},
			},
			{
				Heading: "Post-Closing Monitoring (Phase 2)",
				Bullets: []string{
					"Annual property tax filings",
					"Utilities and municipal accounts management",
					"Representation before the cadastre for any follow-up matter",
				},
			},
		}),
		RequiredDocs: []string{
			"Valid passport",
			"Ownership certificate of the property",
			"Cadastral map and property card",
			"Power of attorney (if signing remotely)",
			"Proof of funds for the purchase price",
		},
		Timeline: []string{
			"Due diligence: 2 to 3 weeks from receipt of the property documents",
			"Contract execution and registration: 4 to 6 weeks thereafter",
		},
		NextSteps: []string{
			engagementNextStep,
			"Provide the property documents listed above for due diligence",
		},
		FeeDescription: "The phase-1 fee is fixed for the acquisition; the phase-2 retainer is optional, " +
			"billed monthly and shown for information only.",
	}
}
