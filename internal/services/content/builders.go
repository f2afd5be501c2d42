package content

import (
	"fmt"

	"lexal/internal/models"
)

// buildFor dispatches to the category-specific builder. The switch is
// exhaustive over the closed category set; anything else reports ok=false and
// is skipped by the composer.
func buildFor(category models.ServiceCategory, fields models.FieldRecord) (ServiceContent, bool) {
	switch category {
	case models.ServiceRealEstate:
		return realEstateContent(fields), true
	case models.ServiceVisaC:
		return visaCContent(fields), true
	case models.ServiceVisaD:
		return visaDContent(fields), true
	case models.ServiceResidencyPermit:
		return residencyPermitContent(fields), true
	case models.ServiceResidencyPensioner:
		return residencyPensionerContent(fields), true
	case models.ServiceCompanyFormation:
		return companyFormationContent(fields), true
	case models.ServiceTaxConsulting:
		return taxConsultingContent(fields), true
	case models.ServiceCompliance:
		return complianceContent(fields), true
	default:
		return ServiceContent{}, false
	}
}

func realEstateContent(fields models.FieldRecord) ServiceContent {
	property := fields.TextOr(models.FieldPropertyDescription, "the property you intend to acquire")
	location := ""
	if fields.Has(models.FieldPropertyLocation) {
		location = fmt.Sprintf(" located in %s", fields.Text(models.FieldPropertyLocation))
	}

	return ServiceContent{
		Scope: fmt.Sprintf(
			"We will assist you with the acquisition of %s%s, covering legal due diligence, "+
				"contract negotiation and the registration of ownership with the competent cadastral office.",
			property, location),
		Sections: []Section{
			{
				Heading: "Legal Due Diligence",
				Bullets: []string{
					"Verification of the seller's ownership title at the State Cadastre Agency",
					"Review of encumbrances, mortgages, servitudes and pending claims over the property",
					"Verification of building permits and legalization status",
					"Confirmation that the property is free of restitution and compensation claims",
				},
			},
			{
				Heading: "Transaction Execution",
				Bullets: []string{
					"Drafting and negotiation of the preliminary sale agreement",
					"Drafting of the final sale-purchase contract before the notary",
					"Coordination of payment through a secured escrow arrangement",
					"Registration of the new ownership title and utilities transfer",
				},
			},
		},
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
			"Provide the property documents listed above for due diligence",
		},
		FeeDescription: "The real estate fee covers due diligence, contract work and registration through to title transfer.",
	}
}

func visaCContent(fields models.FieldRecord) ServiceContent {
	purpose := fields.TextOr(models.FieldPurposeOfStay, "your intended stay in Albania")

	return ServiceContent{
		Scope: fmt.Sprintf(
			"We will prepare and file a short-stay (Type C) visa application supporting %s, "+
				"including the assembly of the supporting file and representation before the consular authorities.",
			purpose),
		Sections: []Section{
			{
				Heading: "Application Preparation",
				Bullets: []string{
					"Assessment of the applicable visa regime for your nationality",
					"Preparation of the application form and supporting documentation",
					"Booking of the consular appointment",
				},
			},
			{
				Heading: "Follow-Up",
				Bullets: []string{
					"Monitoring of the application with the consular office",
					"Responses to any requests for additional documentation",
				},
			},
		},
		RequiredDocs: []string{
			"Valid passport",
			"Two recent biometric photographs",
			"Proof of accommodation in Albania",
			"Travel health insurance",
			"Proof of sufficient financial means",
		},
		Timeline: []string{
			"Visa decision: typically 15 calendar days from filing",
		},
		NextSteps: []string{
			"Confirm your travel dates so the application window can be planned",
		},
		FeeDescription: "The visa fee covers preparation and filing of one short-stay application.",
	}
}

func visaDContent(fields models.FieldRecord) ServiceContent {
	purpose := fields.TextOr(models.FieldPurposeOfStay, "long-term residence in Albania")
	applicants := fields.Count(models.FieldApplicantCount, 1)
	applicantPhrase := "the applicant"
	if applicants > 1 {
		applicantPhrase = fmt.Sprintf("all %d applicants", applicants)
	}

	return ServiceContent{
		Scope: fmt.Sprintf(
			"We will obtain a long-stay (Type D) visa and the subsequent residency permit for %s, "+
				"for the purpose of %s, handling both the consular stage and the in-country filing.",
			applicantPhrase, purpose),
		Sections: []Section{
			{
				Heading: "Visa Stage",
				Bullets: []string{
					"Preparation of the Type D visa application and supporting file",
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
		},
		ProcessSteps: []ProcessStep{
			{
				Step: "Consular application",
				Bullets: []string{
					"Document collection and legalized translations",
					"Submission of the visa application",
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
			"Two recent biometric photographs",
			"Criminal record certificate, apostilled",
			"Employment contract or proof of activity in Albania",
			"Proof of accommodation in Albania",
		},
		Timeline: []string{
			"Visa decision: 30 to 60 calendar days from filing",
			"Residency permit: 30 calendar days from the in-country filing",
		},
		NextSteps: []string{
			"Provide apostilled civil-status and criminal record documents",
		},
		FeeDescription: "The visa and residency fee covers both the consular stage and the in-country permit filing.",
	}
}

func residencyPermitContent(fields models.FieldRecord) ServiceContent {
	purpose := fields.TextOr(models.FieldPurposeOfStay, "your continued stay in Albania")

	return ServiceContent{
		Scope: fmt.Sprintf(
			"We will prepare and file a residency permit application supporting %s, "+
				"and represent you before the migration authorities until the permit card is issued.",
			purpose),
		Sections: []Section{
			{
				Heading: "Permit Application",
				Bullets: []string{
					"Assessment of the applicable permit category and duration",
					"Preparation of the application file and legalized translations",
					"Filing with the regional migration directorate and biometrics scheduling",
				},
			},
			{
				Heading: "Issuance",
				Bullets: []string{
					"Monitoring of the application status",
					"Collection and delivery of the residence permit card",
				},
			},
		},
		ProcessSteps: []ProcessStep{
			{
				Step: "File preparation",
				Bullets: []string{
					"Document collection and translations",
					"Completion of the application forms",
				},
			},
			{
				Step: "Filing and decision",
				Bullets: []string{
					"Submission and biometric registration",
					"Decision and card collection",
				},
			},
		},
		RequiredDocs: []string{
			"Valid passport",
			"Criminal record certificate, apostilled",
			"Proof of accommodation in Albania",
			"Proof of income or means of subsistence",
			"Health insurance valid in Albania",
		},
		Timeline: []string{
			"Residency permit decision: 30 to 60 calendar days from filing",
		},
		NextSteps: []string{
			"Provide proof of accommodation and income for the permit file",
		},
		FeeDescription: "The residency fee covers one permit application through to card collection.",
	}
}

func residencyPensionerContent(fields models.FieldRecord) ServiceContent {
	scope := "We will obtain a pensioner residency permit allowing you to reside in Albania on the basis of " +
		"your retirement income, handling the application from file preparation through to card collection."
	if fields.Has(models.FieldDependentName) {
		scope = fmt.Sprintf(
			"We will obtain pensioner residency permits for you and %s, handling both applications "+
				"from file preparation through to card collection.",
			fields.Text(models.FieldDependentName))
	}

	return ServiceContent{
		Scope: scope,
		Sections: []Section{
			{
				Heading: "Pensioner Permit Application",
				Bullets: []string{
					"Verification that the pension income meets the statutory threshold",
					"Preparation of the application file and legalized translations",
					"Filing with the regional migration directorate",
				},
			},
			{
				Heading: "Settlement Support",
				Bullets: []string{
					"Registration with the local civil registry",
					"Assistance with health insurance enrollment",
				},
			},
		},
		ProcessSteps: []ProcessStep{
			{
				Step: "File preparation",
				Bullets: []string{
					"Pension certificate legalization and translation",
					"Completion of the application forms",
				},
			},
			{
				Step: "Filing and issuance",
				Bullets: []string{
					"Submission and biometric registration",
					"Collection of the residence permit card",
				},
			},
		},
		RequiredDocs: []string{
			"Valid passport",
			"Pension certificate, apostilled and translated",
			"Proof of accommodation in Albania",
			"Criminal record certificate, apostilled",
			"Marriage certificate (for an accompanying spouse)",
		},
		Timeline: []string{
			"Pensioner residency permit: 30 to 60 calendar days from filing",
		},
		NextSteps: []string{
			"Provide the apostilled pension certificate for translation",
		},
		FeeDescription: "The pensioner residency fee covers the permit application for the main applicant and any accompanying dependent.",
	}
}

func companyFormationContent(fields models.FieldRecord) ServiceContent {
	activity := fields.TextOr(models.FieldBusinessActivity, "your intended business activity")
	name := ""
	if fields.Has(models.FieldCompanyName) {
		name = fmt.Sprintf(" under the name %q", fields.Text(models.FieldCompanyName))
	}

	return ServiceContent{
		Scope: fmt.Sprintf(
			"We will incorporate an Albanian limited liability company%s for %s, including registration "+
				"with the National Business Center, tax registration and the initial corporate documentation.",
			name, activity),
		Sections: []Section{
			{
				Heading: "Incorporation",
				Bullets: []string{
					"Drafting of the articles of association and incorporation act",
					"Registration with the National Business Center",
					"Tax and social security registration",
					"Opening of the corporate bank account",
				},
			},
			{
				Heading: "Post-Registration",
				Bullets: []string{
					"Issuance of the company extract and fiscal certificate",
					"Registration of the beneficial owner",
					"Initial compliance calendar for the first financial year",
				},
			},
		},
		RequiredDocs: []string{
			"Valid passport",
			"Power of attorney (if signing remotely)",
			"Proposed company name and registered address",
			"Description of the business activity",
		},
		Timeline: []string{
			"Company registration: 5 to 10 business days from receipt of signed documents",
		},
		NextSteps: []string{
			"Confirm the company name, registered address and shareholding structure",
		},
		FeeDescription: "The company formation fee covers incorporation, registrations and the initial corporate documents.",
	}
}

func taxConsultingContent(fields models.FieldRecord) ServiceContent {
	matter := fields.TextOr(models.FieldTaxMatter, "your Albanian tax position")

	return ServiceContent{
		Scope: fmt.Sprintf(
			"We will advise on %s, covering tax residency, applicable rates and filing obligations, "+
				"and prepare the related registrations and declarations.",
			matter),
		Sections: []Section{
			{
				Heading: "Tax Advisory",
				Bullets: []string{
					"Assessment of tax residency and applicable treaties",
					"Analysis of income, profit and dividend taxation",
					"Written opinion on the recommended structure",
				},
			},
			{
				Heading: "Registrations and Filings",
				Bullets: []string{
					"Registration with the tax authorities where required",
					"Preparation of the annual declarations",
				},
			},
		},
		RequiredDocs: []string{
			"Valid passport",
			"Overview of income sources and assets",
			"Tax residency certificates from other jurisdictions (if any)",
		},
		Timeline: []string{
			"Written tax opinion: 2 weeks from receipt of complete information",
		},
		NextSteps: []string{
			"Provide the income and asset overview for the tax assessment",
		},
		FeeDescription: "The tax consulting fee covers the written opinion and the related registrations.",
	}
}

func complianceContent(fields models.FieldRecord) ServiceContent {
	return ServiceContent{
		Scope: "We will review your ongoing regulatory obligations in Albania and put in place a compliance " +
			"calendar covering corporate, tax and employment filings, with reminders ahead of each deadline.",
		Sections: []Section{
			{
				Heading: "Compliance Review",
				Bullets: []string{
					"Inventory of applicable filing and reporting obligations",
					"Gap analysis against current practice",
					"Remediation plan with responsibilities and deadlines",
				},
			},
			{
				Heading: "Ongoing Monitoring",
				Bullets: []string{
					"Compliance calendar with statutory deadlines",
					"Quarterly status reviews",
				},
			},
		},
		RequiredDocs: []string{
			"Company extract and corporate documents",
			"Most recent financial statements",
			"Existing licenses and permits",
		},
		Timeline: []string{
			"Compliance review and calendar: 3 weeks from receipt of documents",
		},
		NextSteps: []string{
			"Provide the corporate documents for the compliance inventory",
		},
		FeeDescription: "The compliance fee covers the initial review and the first annual monitoring cycle.",
	}
}
