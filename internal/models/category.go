package models

// ServiceCategory identifies one legal-service product line offered by the firm.
// The set is closed: a customer's service bundle only ever references these values.
type ServiceCategory string

const (
	ServiceRealEstate         ServiceCategory = "real_estate"
	ServiceVisaC              ServiceCategory = "visa_c"
	ServiceVisaD              ServiceCategory = "visa_d"
	ServiceResidencyPermit    ServiceCategory = "residency_permit"
	ServiceResidencyPensioner ServiceCategory = "residency_pensioner"
	ServiceCompanyFormation   ServiceCategory = "company_formation"
	ServiceTaxConsulting      ServiceCategory = "tax_consulting"
	ServiceCompliance         ServiceCategory = "compliance"
)

// CategoryOrder is the canonical composition order. Content merging and fee
// aggregation walk the selected set in this order, so output never depends on
// the order services were picked in.
var CategoryOrder = []ServiceCategory{
	ServiceRealEstate,
	ServiceCompanyFormation,
	ServiceVisaC,
	ServiceVisaD,
	ServiceResidencyPermit,
	ServiceResidencyPensioner,
	ServiceTaxConsulting,
	ServiceCompliance,
}

// Valid reports whether the category is one of the closed set.
func (c ServiceCategory) Valid() bool {
	switch c {
	case ServiceRealEstate, ServiceVisaC, ServiceVisaD, ServiceResidencyPermit,
		ServiceResidencyPensioner, ServiceCompanyFormation, ServiceTaxConsulting,
		ServiceCompliance:
		return true
	default:
		return false
	}
}

// Label returns the human-readable name used in generated documents.
func (c ServiceCategory) Label() string {
	switch c {
	case ServiceRealEstate:
		return "Real Estate Acquisition"
	case ServiceVisaC:
		return "Short-Stay Visa (Type C)"
	case ServiceVisaD:
		return "Long-Stay Visa (Type D)"
	case ServiceResidencyPermit:
		return "Residency Permit"
	case ServiceResidencyPensioner:
		return "Residency Permit for Pensioners"
	case ServiceCompanyFormation:
		return "Company Formation"
	case ServiceTaxConsulting:
		return "Tax Consulting"
	case ServiceCompliance:
		return "Regulatory Compliance"
	default:
		return string(c)
	}
}

// NormalizeCategories returns the selected set deduplicated and sorted into
// canonical order. Unknown categories are dropped; callers that want to report
// them should diff against the input.
func NormalizeCategories(selected []ServiceCategory) []ServiceCategory {
	present := make(map[ServiceCategory]bool, len(selected))
	for _, c := range selected {
		if c.Valid() {
			present[c] = true
		}
	}

	out := make([]ServiceCategory, 0, len(present))
	for _, c := range CategoryOrder {
		if present[c] {
			out = append(out, c)
		}
	}
	return out
}

// UnknownCategories returns the entries of the selected set that are not part
// of the closed category set, preserving input order.
func UnknownCategories(selected []ServiceCategory) []ServiceCategory {
	var out []ServiceCategory
	for _, c := range selected {
		if !c.Valid() {
			out = append(out, c)
		}
	}
	return out
}
