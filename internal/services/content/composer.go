package content

import (
	"fmt"
	"strings"

	"lexal/internal/models"
)

const (
	introSingle = "This proposal outlines the scope of legal services, the required documents, " +
		"the anticipated timeline and the applicable fees for your engagement with our firm."

	introBundle = "This proposal outlines the scope of legal services, the required documents, " +
		"the anticipated timeline and the applicable fees for the following engagements: %s."

	engagementStep = "Execution of the engagement agreement and payment of the initial fee"
	completionStep = "Completion of all engagements and delivery of the closing documentation"
)

// Compose builds the merged narrative for a selected bundle. It is a pure
// function of the canonical category order and the field record: identical
// inputs always produce structurally identical output.
func Compose(selected []models.ServiceCategory, fields models.FieldRecord) Merged {
	categories := models.NormalizeCategories(selected)

	contents := make([]ServiceContent, 0, len(categories))
	labels := make([]string, 0, len(categories))
	for _, c := range categories {
		sc, ok := buildFor(c, fields)
		if !ok {
			continue
		}
		contents = append(contents, sc)
		labels = append(labels, c.Label())
	}

	if len(contents) == 0 {
		return Merged{Intro: introSingle}
	}
	if len(contents) == 1 {
		return mergeSingle(contents[0])
	}
	return mergeBundle(contents, labels)
}

// mergeSingle prepends the fixed introduction and numbers the sections; the
// remaining lists pass through unchanged.
func mergeSingle(sc ServiceContent) Merged {
	return Merged{
		Intro:          introSingle,
		Scope:          sc.Scope,
		Sections:       NumberSections(sc.Sections),
		ProcessSteps:   sc.ProcessSteps,
		RequiredDocs:   sc.RequiredDocs,
		Timeline:       sc.Timeline,
		NextSteps:      sc.NextSteps,
		FeeDescription: sc.FeeDescription,
	}
}

// mergeBundle flattens the per-category narratives. Section numbering runs
// continuously across category boundaries, required documents are deduplicated
// on a case-insensitive trimmed key keeping the first occurrence, and next
// steps are bracketed by the fixed engagement and completion steps.
func mergeBundle(contents []ServiceContent, labels []string) Merged {
	m := Merged{
		Intro:     fmt.Sprintf(introBundle, strings.Join(labels, ", ")),
		NextSteps: []string{engagementStep},
	}

	var scopes []string
	var feeSentences []string
	var allSections []Section
	seenDocs := make(map[string]bool)

	for _, sc := range contents {
		scopes = append(scopes, sc.Scope)
		allSections = append(allSections, sc.Sections...)
		m.ProcessSteps = append(m.ProcessSteps, sc.ProcessSteps...)
		m.Timeline = append(m.Timeline, sc.Timeline...)
		m.NextSteps = append(m.NextSteps, sc.NextSteps...)
		if sc.FeeDescription != "" {
			feeSentences = append(feeSentences, sc.FeeDescription)
		}

		for _, doc := range sc.RequiredDocs {
			key := strings.ToLower(strings.TrimSpace(doc))
			if key == "" || seenDocs[key] {
				continue
			}
			seenDocs[key] = true
			m.RequiredDocs = append(m.RequiredDocs, doc)
		}
	}

	m.Scope = strings.Join(scopes, " ")
	m.Sections = NumberSections(allSections)
	m.NextSteps = append(m.NextSteps, completionStep)
	m.FeeDescription = strings.Join(feeSentences, " ")
	return m
}

func numberSectionsFrom(sections []Section, start int) []NumberedSection {
	out := make([]NumberedSection, 0, len(sections))
	for i, s := range sections {
		out = append(out, NumberedSection{
			Number:  fmt.Sprintf("2.%d", start+i),
			Heading: s.Heading,
			Bullets: s.Bullets,
		})
	}
	return out
}
