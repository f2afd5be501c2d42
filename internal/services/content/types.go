package content

// Section is one narrative block of a service's scope description.
type Section struct {
	Heading string   `json:"heading"`
	Bullets []string `json:"bullets"`
}

// ProcessStep is one stage of a multi-stage procedure (visa applications,
// permit filings) rendered as its own document section.
type ProcessStep struct {
	Step    string   `json:"step"`
	Bullets []string `json:"bullets"`
}

// ServiceContent is the generated narrative for a single service category.
// It is a pure function of (category, field record).
type ServiceContent struct {
	Scope          string
	Sections       []Section
	ProcessSteps   []ProcessStep
	RequiredDocs   []string
	Timeline       []string
	NextSteps      []string
	FeeDescription string
}

// NumberedSection is a section with its assigned "2.<n>" label.
type NumberedSection struct {
	Number  string   `json:"number"`
	Heading string   `json:"heading"`
	Bullets []string `json:"bullets"`
}

// Merged is the combined narrative for a whole selected bundle, ready for the
// document renderer.
type Merged struct {
	Intro          string            `json:"intro"`
	Scope          string            `json:"scope"`
	Sections       []NumberedSection `json:"sections"`
	ProcessSteps   []ProcessStep     `json:"process_steps,omitempty"`
	RequiredDocs   []string          `json:"required_docs"`
	Timeline       []string          `json:"timeline"`
	NextSteps      []string          `json:"next_steps"`
	FeeDescription string            `json:"fee_description"`
}

// NumberSections assigns sequential "2.<n>" labels starting at 1. Template
// variants reuse this so their section labels match the composed path.
func NumberSections(sections []Section) []NumberedSection {
	return numberSectionsFrom(sections, 1)
}
