package document

import (
	"fmt"

	"lexal/internal/models"
	"lexal/internal/services/content"
	"lexal/internal/services/fees"
	"lexal/internal/services/template"
)

const (
	defaultTitle = "Legal Services Fee Proposal"

	footerText = "This proposal is confidential and intended solely for the addressee. " +
		"It does not constitute legal advice until an engagement agreement is executed."

	paymentTerms = "Fifty percent of the service fee is payable upon execution of the engagement " +
		"agreement and the balance upon completion of the services. Government fees and third-party " +
		"costs are payable when they fall due. All amounts are stated in Albanian lek unless noted otherwise."

	disclaimerScope = "The fees quoted cover the services described in this proposal. Work outside " +
		"this scope is agreed and quoted separately before it begins."

	disclaimerAuthority = "Processing terms quoted for government authorities are statutory targets " +
		"and may vary; our firm has no control over the authorities' actual processing times."
)

// Render assembles the final ordered section tree from whichever narrative and
// fee source the selector chose. Section numbering is recomputed from scratch
// on every call: conditional sections (case overview, process steps) shift the
// numbering of everything after them.
func Render(merged content.Merged, fee template.FeeTable, fields models.FieldRecord) *Document {
	doc := &Document{
		Title:  fields.TextOr(models.FieldTitle, defaultTitle),
		Date:   fields.Text(models.FieldDate),
		Client: fields.Text(models.FieldClientName),
		Footer: footerText,
	}

	number := 0
	add := func(heading string, blocks ...Block) {
		number++
		doc.Sections = append(doc.Sections, Section{Number: number, Heading: heading, Blocks: blocks})
	}

	if overview := caseOverviewRows(fields); len(overview) > 0 {
		add("Case Overview", table([]string{"", ""}, overview))
	}

	add("Scope of Engagement", paragraph(merged.Intro), paragraph(merged.Scope))

	if len(merged.Sections) > 0 {
		blocks := make([]Block, 0, len(merged.Sections)*2)
		for _, s := range merged.Sections {
			blocks = append(blocks, paragraph(fmt.Sprintf("%s %s", s.Number, s.Heading)))
			if len(s.Bullets) > 0 {
				blocks = append(blocks, list(s.Bullets))
			}
		}
		add("Legal Services", blocks...)
	}

	if len(merged.ProcessSteps) > 0 {
		blocks := make([]Block, 0, len(merged.ProcessSteps)*2)
		for i, step := range merged.ProcessSteps {
			blocks = append(blocks, paragraph(fmt.Sprintf("Step %d: %s", i+1, step.Step)))
			if len(step.Bullets) > 0 {
				blocks = append(blocks, list(step.Bullets))
			}
		}
		add("Application Process", blocks...)
	}

	if len(merged.RequiredDocs) > 0 {
		add("Required Documents", list(merged.RequiredDocs))
	}

	add("Fees", feeBlocks(merged, fee)...)
	add("Payment Terms", paragraph(paymentTerms))

	if len(merged.Timeline) > 0 {
		add("Estimated Timeline", list(merged.Timeline))
	}

	add("Disclaimers", paragraph(disclaimerScope), paragraph(disclaimerAuthority))

	if len(merged.NextSteps) > 0 {
		add("Next Steps", list(merged.NextSteps))
	}

	return doc
}

// caseOverviewRows collects the identity fields present on the record. An
// empty result suppresses the case overview section entirely.
func caseOverviewRows(fields models.FieldRecord) [][]string {
	var rows [][]string
	appendRow := func(label, key string) {
		if fields.Has(key) {
			rows = append(rows, []string{label, fields.Text(key)})
		}
	}
	appendRow("Client", models.FieldClientName)
	appendRow("Nationality", models.FieldNationality)
	appendRow("Passport number", models.FieldPassportNumber)
	appendRow("Address", models.FieldClientAddress)
	appendRow("Email", models.FieldClientEmail)
	appendRow("Phone", models.FieldClientPhone)
	return rows
}

func feeBlocks(merged content.Merged, fee template.FeeTable) []Block {
	var blocks []Block

	if merged.FeeDescription != "" {
		blocks = append(blocks, paragraph(merged.FeeDescription))
	}

	if len(fee.ServiceLines) > 0 {
		rows := feeRows(fee.ServiceLines)
		rows = append(rows, []string{"Service subtotal", fees.FormatLek(fee.ServiceSubtotal)})
		blocks = append(blocks, table([]string{"Service", "Amount (ALL)"}, rows))
	}

	if len(fee.AdditionalLines) > 0 {
		rows := feeRows(fee.AdditionalLines)
		rows = append(rows, []string{"Additional costs subtotal", fees.FormatLek(fee.AdditionalSubtotal)})
		blocks = append(blocks, table([]string{"Additional cost", "Amount (ALL)"}, rows))
	}

	blocks = append(blocks, paragraph(fmt.Sprintf("Total: %s ALL", fees.FormatLek(fee.TotalALL))))

	currencyRows := make([][]string, 0, 3)
	for _, c := range fee.Conversions() {
		currencyRows = append(currencyRows, []string{
			c.Currency,
			fees.FormatRate(c.Rate),
			fees.FormatAmount(c.Amount, 2),
		})
	}
	blocks = append(blocks, table([]string{"Currency", "Rate per ALL", "Total"}, currencyRows))

	if len(fee.Informational) > 0 {
		items := make([]string, 0, len(fee.Informational))
		for _, l := range fee.Informational {
			items = append(items, fmt.Sprintf("%s: %s %s %s (not included in the total)",
				l.Description, fees.FormatAmount(l.Amount, 0), l.Currency, l.Period))
		}
		blocks = append(blocks, list(items))
	}

	if len(fee.TaxRates) > 0 {
		rows := make([][]string, 0, len(fee.TaxRates))
		for _, r := range fee.TaxRates {
			rows = append(rows, []string{r.Description, r.Rate})
		}
		blocks = append(blocks, table([]string{"Tax", "Rate"}, rows))
	}

	if len(fee.Exclusions) > 0 {
		blocks = append(blocks, paragraph("The following costs are not included:"), list(fee.Exclusions))
	}

	return blocks
}

func feeRows(lines []template.FeeLine) [][]string {
	rows := make([][]string, 0, len(lines)+1)
	for _, l := range lines {
		rows = append(rows, []string{l.Description, fees.FormatLek(l.Amount)})
	}
	return rows
}
