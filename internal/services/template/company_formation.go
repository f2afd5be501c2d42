package template

import (
	"fmt"

	"lexal/internal/models"
	"lexal/internal/services/content"
)

// Company formation with self-employment visa constants, whole lek. The
// package is priced for a single founder-applicant.
const (
	companyFormationFee       = 85000
	companyVisaResidencyFee   = 75000
	companyVisaGovernmentFee  = 4500
	companyResidencyGovFee    = 8800
	companyMonthlyServiceCost = 5000
)

// companyFormationFees computes the combined company + self-employment visa
// fee table. The one-time total is headcount-independent; the monthly
// management schedule and the taxation table are informational only.
func companyFormationFees(fields models.FieldRecord) FeeTable {
	t := FeeTable{
		ServiceLines: []FeeLine{
			{Description: "Company formation and registration", Amount: companyFormationFee},
			{Description: "Self-employment visa and residency permit", Amount: companyVisaResidencyFee},
		},
		AdditionalLines: []FeeLine{
			{Description: "Visa government fee", Amount: companyVisaGovernmentFee},
			{Description: "Residency government fee", Amount: companyResidencyGovFee},
			{Description: "Residence ID card coupon", Amount: idCardCouponFee},
		},
		Informational: []InfoLine{
			{Description: "Accounting services", Amount: companyMonthlyServiceCost, Currency: "ALL", Period: "monthly"},
			{Description: "Legal retainer", Amount: companyMonthlyServiceCost, Currency: "ALL", Period: "monthly"},
			{Description: "Virtual office address", Amount: companyMonthlyServiceCost, Currency: "ALL", Period: "monthly"},
		},
		TaxRates: []TaxRate{
			{Description: "Small business profit tax (turnover below threshold)", Rate: "0%"},
			{Description: "Corporate income tax (standard)", Rate: "15%"},
			{Description: "Dividend tax", Rate: "8%"},
			{Description: "Value added tax (standard)", Rate: "20%"},
		},
		Exclusions: []string{
			"Notary fees for the incorporation documents",
			"Bank charges for the corporate account",
			"Monthly management costs listed above",
		},
	}
	return t.sum()
}

// companyFormationContent is the verbatim company + self-employment visa
// document narrative.
func companyFormationContent(fields models.FieldRecord) content.Merged {
	activity := fields.TextOr(models.FieldBusinessActivity, "your intended business activity")
	name := ""
	if fields.Has(models.FieldCompanyName) {
		name = fmt.Sprintf(" under the name %q", fields.Text(models.FieldCompanyName))
	}

	return content.Merged{
		Intro: "This proposal sets out the scope of services, required documents, timeline and fees " +
			"for forming an Albanian company and obtaining residency as its self-employed administrator.",
		Scope: fmt.Sprintf(
			"We will incorporate an Albanian limited liability company%s for %s and obtain a Type D "+
				"visa and residency permit for you as its self-employed administrator. The two procedures "+
				"are run in parallel: the company registration supports the visa application, and the "+
				"residency permit follows your entry into Albania.",
			name, activity),
		Sections: content.NumberSections([]content.Section{
			{
				Heading: "Company Formation",
				Bullets: []string{
					"Drafting of the articles of association and incorporation act",
					"Registration with the National Business Center",
					"Tax and social security registration",
					"Opening of the corporate bank account",
					"Registration of the beneficial owner",
				},
			},
			{
				Heading: "Self-Employment Visa and Residency",
				Bullets: []string{
					"Preparation of the Type D visa file based on the company registration",
					"Filing through the e-visa portal and consular follow-up",
					"Residency permit application after entry and card collection",
				},
			},
			{
				Heading: "Ongoing Management",
				Bullets: []string{
					"Monthly accounting and tax declarations",
					"Registered office and mail handling",
					"Annual financial statements",
				},
			},
		}),
		ProcessSteps: []content.ProcessStep{
			{
				Step: "Incorporation",
				Bullets: []string{
					"Execution of the incorporation documents",
					"Registration and issuance of the company extract",
				},
			},
			{
				Step: "Visa application",
				Bullets: []string{
					"Filing of the Type D self-employment visa",
				},
			},
			{
				Step: "Residency permit",
				Bullets: []string{
					"In-country filing, biometrics and card collection",
				},
			},
		},
		RequiredDocs: []string{
			"Valid passport",
			"Power of attorney (if signing remotely)",
			"Proposed company name and registered address",
			"Description of the business activity",
			"Criminal record certificate, apostilled",
		},
		Timeline: []string{
			"Company registration: 5 to 10 business days from receipt of signed documents",
			"Visa decision: 30 to 60 calendar days from filing",
			"Residency permit: 30 calendar days from the in-country filing",
		},
		NextSteps: []string{
			engagementNextStep,
			"Confirm the company name, registered address and shareholding structure",
		},
		FeeDescription: "The one-time fee covers the incorporation and the visa and residency procedure " +
			"for the founder; monthly management costs and taxes are shown for information and invoiced separately.",
	}
}
