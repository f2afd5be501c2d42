package template

import (
	"fmt"

	"lexal/internal/models"
	"lexal/internal/services/content"
)

// Employment visa constants, whole lek per applicant.
const (
	visaUnitFee            = 75000
	visaDiscountedUnitFee  = 55000
	visaGovernmentFee      = 2100
	residencyGovernmentFee = 8600
)

func employmentVisaApplicants(fields models.FieldRecord) int {
	return fields.Count(models.FieldApplicantCount, 1)
}

// employmentVisaFees computes the employment visa fee table. With more than
// one applicant the discounted unit fee applies retroactively to every
// applicant, not only the additional ones.
func employmentVisaFees(fields models.FieldRecord) FeeTable {
	n := employmentVisaApplicants(fields)

	unit := int64(visaUnitFee)
	if n > 1 {
		unit = visaDiscountedUnitFee
	}

	serviceDesc := "Work visa and residency permit - 1 applicant"
	if n > 1 {
		serviceDesc = fmt.Sprintf("Work visa and residency permit - %d applicants (volume rate)", n)
	}

	t := FeeTable{
		ServiceLines: []FeeLine{
			{Description: serviceDesc, Amount: unit * int64(n)},
		},
		AdditionalLines: []FeeLine{
			{Description: fmt.Sprintf("Visa government fee (x%d)", n), Amount: visaGovernmentFee * int64(n)},
			{Description: fmt.Sprintf("Residency government fee (x%d)", n), Amount: residencyGovernmentFee * int64(n)},
			{Description: fmt.Sprintf("Residence ID card coupon (x%d)", n), Amount: idCardCouponFee * int64(n)},
		},
		Exclusions: []string{
			"Apostille and legalization costs incurred abroad",
			"Certified translations of foreign documents",
		},
	}
	return t.sum()
}

// employmentVisaContent is the verbatim employment visa document narrative.
func employmentVisaContent(fields models.FieldRecord) content.Merged {
	n := employmentVisaApplicants(fields)
	purpose := fields.TextOr(models.FieldPurposeOfStay, "employment in Albania")

	subject := "the applicant"
	if n > 1 {
		subject = fmt.Sprintf("all %d applicants", n)
	}

	return content.Merged{
		Intro: "This proposal sets out the scope of services, required documents, timeline and fees " +
			"for obtaining an Albanian work visa and the subsequent residency permit.",
		Scope: fmt.Sprintf(
			"We will obtain a long-stay (Type D) visa and the subsequent residency permit for %s, "+
				"for the purpose of %s. Our office manages the consular application, the entry "+
				"formalities and the in-country permit filing as a single engagement.",
			subject, purpose),
		Sections: content.NumberSections([]content.Section{
			{
				Heading: "Visa Stage",
				Bullets: []string{
					"Preparation of the Type D visa file per applicant",
					"Filing through the e-visa portal and consular follow-up",
					"Coordination of biometric appointments",
				},
			},
			{
				Heading: "Residency Stage",
				Bullets: []string{
					"Preparation of the residency permit application after entry",
					"Filing with the regional migration directorate",
					"Collection of the residence permit card",
				},
			},
		}),
		ProcessSteps: []content.ProcessStep{
			{
				Step: "Consular application",
				Bullets: []string{
					"Document collection and legalized translations",
					"Submission of the visa application per applicant",
				},
			},
			{
				Step: "Entry and registration",
				Bullets: []string{
					"Entry into Albania on the issued visa",
					"Registration with the local authorities within the statutory deadline",
				},
			},
			{
				Step: "Residency permit filing",
				Bullets: []string{
					"Submission of the permit application and biometrics",
					"Collection of the residence card upon approval",
				},
			},
		},
		RequiredDocs: []string{
			"Valid passport",
			"Employment contract with the Albanian employer",
			"Criminal record certificate, apostilled",
			"Two recent biometric photographs",
			"Proof of accommodation in Albania",
		},
		Timeline: []string{
			"Visa decision: 30 to 60 calendar days from filing",
			"Residency permit: 30 calendar days from the in-country filing",
		},
		NextSteps: []string{
			engagementNextStep,
			"Provide the signed employment contract and apostilled documents",
		},
		FeeDescription: "The service fee is charged per applicant and covers both the consular stage " +
			"and the in-country permit filing; government fees are charged at cost.",
	}
}
