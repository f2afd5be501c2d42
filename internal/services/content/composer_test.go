package content

import (
	"fmt"
	"testing"

	"lexal/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCompose_SingleCategory(t *testing.T) {
	got := Compose([]models.ServiceCategory{models.ServiceRealEstate}, nil)

	assert.Equal(t, introSingle, got.Intro)
	assert.Contains(t, got.Scope, "acquisition")
	assert.NotEmpty(t, got.Sections)
	assert.Equal(t, "2.1", got.Sections[0].Number)
	assert.Contains(t, got.RequiredDocs, "Valid passport")
	// Single-category next steps are not bracketed
	assert.NotContains(t, got.NextSteps, engagementStep)
	assert.NotContains(t, got.NextSteps, completionStep)
}

func TestCompose_EmptySelection(t *testing.T) {
	got := Compose(nil, nil)

	assert.Equal(t, introSingle, got.Intro)
	assert.Empty(t, got.Sections)
	assert.Empty(t, got.RequiredDocs)
}

func TestCompose_BundleIntroListsLabels(t *testing.T) {
	got := Compose([]models.ServiceCategory{
		models.ServiceCompanyFormation,
		models.ServiceRealEstate,
	}, nil)

	// Canonical order, not selection order
	assert.Contains(t, got.Intro, "Real Estate Acquisition, Company Formation")
}

func TestCompose_BundleNumbersSectionsContinuously(t *testing.T) {
	got := Compose([]models.ServiceCategory{
		models.ServiceRealEstate,
		models.ServiceCompanyFormation,
	}, nil)

	assert.Len(t, got.Sections, 4)
	for i, s := range got.Sections {
		assert.Equal(t, fmt.Sprintf("2.%d", i+1), s.Number)
	}
}

func TestCompose_BundleDeduplicatesRequiredDocs(t *testing.T) {
	got := Compose([]models.ServiceCategory{
		models.ServiceRealEstate,
		models.ServiceCompanyFormation,
	}, nil)

	occurrences := 0
	for _, doc := range got.RequiredDocs {
		if doc == "Valid passport" {
			occurrences++
		}
	}
	assert.Equal(t, 1, occurrences)

	occurrences = 0
	for _, doc := range got.RequiredDocs {
		if doc == "Power of attorney (if signing remotely)" {
			occurrences++
		}
	}
	assert.Equal(t, 1, occurrences)
}

func TestCompose_BundleBracketsNextSteps(t *testing.T) {
	got := Compose([]models.ServiceCategory{
		models.ServiceRealEstate,
		models.ServiceTaxConsulting,
	}, nil)

	assert.GreaterOrEqual(t, len(got.NextSteps), 2)
	assert.Equal(t, engagementStep, got.NextSteps[0])
	assert.Equal(t, completionStep, got.NextSteps[len(got.NextSteps)-1])
}

func TestCompose_OrderIndependent(t *testing.T) {
	a := Compose([]models.ServiceCategory{
		models.ServiceTaxConsulting,
		models.ServiceRealEstate,
		models.ServiceCompliance,
	}, nil)
	b := Compose([]models.ServiceCategory{
		models.ServiceCompliance,
		models.ServiceTaxConsulting,
		models.ServiceRealEstate,
	}, nil)

	assert.Equal(t, a, b)
}

func TestCompose_Deterministic(t *testing.T) {
	fields := models.FieldRecord{
		models.FieldPropertyDescription: "an apartment in Saranda",
		models.FieldBusinessActivity:    "software consulting",
	}
	selected := []models.ServiceCategory{
		models.ServiceRealEstate,
		models.ServiceCompanyFormation,
	}

	assert.Equal(t, Compose(selected, fields), Compose(selected, fields))
}

func TestCompose_FieldInterpolation(t *testing.T) {
	fields := models.FieldRecord{
		models.FieldPropertyDescription: "an apartment in Saranda",
		models.FieldPropertyLocation:    "Saranda",
	}

	got := Compose([]models.ServiceCategory{models.ServiceRealEstate}, fields)

	assert.Contains(t, got.Scope, "an apartment in Saranda")
	assert.Contains(t, got.Scope, "located in Saranda")
}

func TestMergeBundle_DedupIsCaseInsensitive(t *testing.T) {
	contents := []ServiceContent{
		{Scope: "First.", RequiredDocs: []string{"Valid Passport", "Bank statement"}},
		{Scope: "Second.", RequiredDocs: []string{"valid passport", "  Bank Statement  "}},
	}

	got := mergeBundle(contents, []string{"First", "Second"})

	assert.Equal(t, []string{"Valid Passport", "Bank statement"}, got.RequiredDocs)
	assert.Equal(t, "First. Second.", got.Scope)
}

func TestNumberSections(t *testing.T) {
	got := NumberSections([]Section{
		{Heading: "One"},
		{Heading: "Two"},
		{Heading: "Three"},
	})

	assert.Equal(t, "2.1", got[0].Number)
	assert.Equal(t, "2.2", got[1].Number)
	assert.Equal(t, "2.3", got[2].Number)
}
