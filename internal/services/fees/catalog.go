package fees

import "lexal/internal/models"

// Preset holds the default fee amounts suggested for one service category.
// All amounts are whole Albanian lek.
type Preset struct {
	Consultation    int64
	Service         int64
	PowerOfAttorney int64
	Translation     int64
}

// Catalog maps each service category to its default fees. The amounts are part
// of the product's compatibility surface: documents already sent to clients
// were generated from these numbers, so they must not change silently.
var Catalog = map[models.ServiceCategory]Preset{
	models.ServiceRealEstate:         {Consultation: 20000, Service: 95000, PowerOfAttorney: 15000, Translation: 20000},
	models.ServiceCompanyFormation:   {Consultation: 20000, Service: 155000, PowerOfAttorney: 15000, Translation: 20000},
	models.ServiceVisaC:              {Consultation: 10000, Service: 45000, PowerOfAttorney: 10000, Translation: 10000},
	models.ServiceVisaD:              {Consultation: 15000, Service: 75000, PowerOfAttorney: 10000, Translation: 15000},
	models.ServiceResidencyPermit:    {Consultation: 15000, Service: 60000, PowerOfAttorney: 10000, Translation: 15000},
	models.ServiceResidencyPensioner: {Consultation: 15000, Service: 45000, PowerOfAttorney: 10000, Translation: 15000},
	models.ServiceTaxConsulting:      {Consultation: 20000, Service: 50000, PowerOfAttorney: 10000, Translation: 10000},
	models.ServiceCompliance:         {Consultation: 15000, Service: 40000, PowerOfAttorney: 10000, Translation: 10000},
}
