package template

import (
	"fmt"

	"lexal/internal/models"
	"lexal/internal/services/content"
)

// Pensioner residency constants, whole lek. These reproduce the figures of
// every pensioner proposal the firm has issued and must not drift.
const (
	pensionerServiceFee   = 45000
	pensionerGovernment   = 5100
	pensionerInsuranceFee = 5000
)

// pensionerHasDependent reports whether the proposal covers an accompanying
// dependent: either a named dependent or a positive family-member count.
func pensionerHasDependent(fields models.FieldRecord) bool {
	if fields.Has(models.FieldDependentName) {
		return true
	}
	return fields.Count(models.FieldFamilyMembers, 0) > 0
}

// pensionerFees computes the pensioner fee table. The dependent, when present,
// doubles the service fee and every per-person government cost.
func pensionerFees(fields models.FieldRecord) FeeTable {
	headcount := 1
	dependent := pensionerHasDependent(fields)
	if dependent {
		headcount = 2
	}

	t := FeeTable{
		ServiceLines: []FeeLine{
			{Description: "Pensioner residency permit - main applicant", Amount: pensionerServiceFee},
		},
		AdditionalLines: []FeeLine{
			{Description: "Government application fee - main applicant", Amount: pensionerGovernment},
		},
		Exclusions: []string{
			"Apostille and legalization costs incurred abroad",
			"Courier costs for original documents",
		},
	}

	if dependent {
		t.ServiceLines = append(t.ServiceLines,
			FeeLine{Description: "Pensioner residency permit - dependent", Amount: pensionerServiceFee})
		t.AdditionalLines = append(t.AdditionalLines,
			FeeLine{Description: "Government application fee - dependent", Amount: pensionerGovernment})
	}

	t.AdditionalLines = append(t.AdditionalLines,
		FeeLine{
			Description: fmt.Sprintf("Residence ID card coupon (x%d)", headcount),
			Amount:      int64(headcount) * idCardCouponFee,
		},
		FeeLine{
			Description: fmt.Sprintf("Health insurance policy (x%d)", headcount),
			Amount:      int64(headcount) * pensionerInsuranceFee,
		},
	)

	if translation := fields.Amount(models.FieldTranslationFee); translation > 0 {
		t.AdditionalLines = append(t.AdditionalLines,
			FeeLine{Description: "Certified translations", Amount: translation})
	}

	return t.sum()
}

// pensionerContent is the verbatim pensioner document narrative.
func pensionerContent(fields models.FieldRecord) content.Merged {
	applicants := "you"
	if pensionerHasDependent(fields) {
		if fields.Has(models.FieldDependentName) {
			applicants = fmt.Sprintf("you and %s", fields.Text(models.FieldDependentName))
		} else {
			applicants = "you and your accompanying family member"
		}
	}

	return content.Merged{
		Intro: "This proposal sets out the scope of services, required documents, timeline and fees " +
			"for obtaining residency in Albania on the basis of retirement income.",
		Scope: fmt.Sprintf(
			"We will obtain pensioner residency permits for %s. Albania grants a renewable residency "+
				"permit to foreign pensioners who can document a stable pension income; our office handles "+
				"the entire procedure, from the preparation of the file through biometric registration to "+
				"the collection of the residence permit card.",
			applicants),
		Sections: content.NumberSections([]content.Section{
			{
				Heading: "Eligibility and File Preparation",
				Bullets: []string{
					"Review of the pension certificate against the statutory income threshold",
					"Apostille verification and certified translation of foreign documents",
					"Preparation of the application forms and accommodation evidence",
				},
			},
			{
				Heading: "Filing and Issuance",
				Bullets: []string{
					"Submission to the regional migration directorate",
					"Scheduling and accompaniment for biometric registration",
					"Collection and delivery of the residence permit card",
				},
			},
			{
				Heading: "Settlement Support",
				Bullets: []string{
					"Health insurance enrollment for the permit period",
					"Registration with the local civil registry",
				},
			},
		}),
		ProcessSteps: []content.ProcessStep{
			{
				Step: "Document collection",
				Bullets: []string{
					"Apostilled pension certificate and criminal record",
					"Proof of accommodation in Albania",
				},
			},
			{
				Step: "Application filing",
				Bullets: []string{
					"Submission of the complete file and biometrics",
				},
			},
			{
				Step: "Permit collection",
				Bullets: []string{
					"Decision within the statutory term and card collection",
				},
			},
		},
		RequiredDocs: []string{
			"Valid passport",
			"Pension certificate, apostilled and translated",
			"Criminal record certificate, apostilled",
			"Proof of accommodation in Albania",
			"Marriage certificate (for an accompanying spouse)",
		},
		Timeline: []string{
			"File preparation: 1 to 2 weeks from receipt of the apostilled documents",
			"Permit decision: 30 to 60 calendar days from filing",
		},
		NextSteps: []string{
			engagementNextStep,
			"Provide the apostilled pension certificate and criminal record",
			"Confirm the intended address in Albania",
		},
		FeeDescription: "The service fee covers the full residency procedure per applicant; government " +
			"fees, the ID card coupon and health insurance are charged at cost.",
	}
}
