package template

import (
	"lexal/internal/models"
	"lexal/internal/services/content"
)

// ID names one of the mutually exclusive document variants.
type ID string

const (
	Pensioner        ID = "pensioner"
	EmploymentVisa   ID = "employment_visa"
	CompanyFormation ID = "company_formation"
	RealEstate       ID = "real_estate"
	Generic          ID = "generic"
)

// Select picks the document variant for a selected service set. Rules are
// evaluated in descending priority and the first match wins:
//
//  1. residency_pensioner, even when bundled with anything else
//  2. visa_d, unless company_formation is also selected
//  3. company_formation (covers the company + self-employment visa narrative)
//  4. real_estate
//  5. generic composed fallback
func Select(selected []models.ServiceCategory) ID {
	present := make(map[models.ServiceCategory]bool, len(selected))
	for _, c := range models.NormalizeCategories(selected) {
		present[c] = true
	}

	switch {
	case present[models.ServiceResidencyPensioner]:
		return Pensioner
	case present[models.ServiceVisaD] && !present[models.ServiceCompanyFormation]:
		return EmploymentVisa
	case present[models.ServiceCompanyFormation]:
		return CompanyFormation
	case present[models.ServiceRealEstate]:
		return RealEstate
	default:
		return Generic
	}
}

// Build returns the verbatim narrative and fee table for a non-generic
// variant. The generic path is composed by the caller from merged service
// content; asking this function for it is a programming error.
func Build(id ID, fields models.FieldRecord) (content.Merged, FeeTable) {
	switch id {
	case Pensioner:
		return pensionerContent(fields), pensionerFees(fields)
	case EmploymentVisa:
		return employmentVisaContent(fields), employmentVisaFees(fields)
	case CompanyFormation:
		return companyFormationContent(fields), companyFormationFees(fields)
	case RealEstate:
		return realEstateContent(fields), realEstateFees(fields)
	default:
		panic("template: Build called with non-verbatim variant " + string(id))
	}
}
