package normalize

import (
	"strings"

	"github.com/aapp-oss/pledges/internal/pdf"
)

// field identifiers used by the grid and label matchers.
const (
	fieldDonorName   = "Donor Name"
	fieldDonorID     = "Donor ID"
	fieldAddress     = "Address"
	fieldAmount      = "Gift Amount"
	fieldDate        = "Gift Date"
	fieldFund        = "Fund"
	fieldCampaign    = "Campaign"
	fieldPaymentType = "Payment Type"
	fieldCheckNumber = "Check Number"
)

// headerFields maps header-cell substrings to record fields. Checked in
// order so the more specific labels win ("donor id" before "id").
var headerFields = []struct {
	substr string
	field  string
}{
	{"donor id", fieldDonorID},
	{"account", fieldDonorID},
	{"id", fieldDonorID},
	{"donor name", fieldDonorName},
	{"name", fieldDonorName},
	{"address", fieldAddress},
	{"amount", fieldAmount},
	{"date", fieldDate},
	{"fund", fieldFund},
	{"campaign", fieldCampaign},
	{"payment", fieldPaymentType},
	{"type", fieldPaymentType},
	{"check", fieldCheckNumber},
}

// TableGridMatcher recognizes documents whose positioned text forms a table
// with a recognizable header row: each data row under the header becomes
// one candidate record.
type TableGridMatcher struct{}

// Name implements Matcher.
func (m *TableGridMatcher) Name() string { return "table-grid" }

// Match implements Matcher.
func (m *TableGridMatcher) Match(doc *pdf.RawDocument) []Candidate {
	var candidates []Candidate
	for _, grid := range doc.Grids {
		candidates = append(candidates, matchGrid(grid)...)
	}
	return candidates
}

// matchGrid locates a header row inside one grid and converts the rows
// below it. Rows above the header (titles, report banners) are ignored.
func matchGrid(grid [][]string) []Candidate {
	headerRow, columns := findHeader(grid)
	if columns == nil {
		return nil
	}

	var candidates []Candidate
	for _, row := range grid[headerRow+1:] {
		if c, ok := rowCandidate(columns, row); ok {
			candidates = append(candidates, c)
		}
	}
	return candidates
}

// findHeader returns the index of the first row that reads like a gift
// table header, plus the field assignment per column. A header must name at
// least a donor column and an amount column to qualify.
func findHeader(grid [][]string) (int, map[int]string) {
	for i, row := range grid {
		columns := make(map[int]string)
		claimed := make(map[string]bool)
		for col, cell := range row {
			label := strings.ToLower(collapseWhitespace(cell))
			for _, hf := range headerFields {
				if strings.Contains(label, hf.substr) && !claimed[hf.field] {
					columns[col] = hf.field
					claimed[hf.field] = true
					break
				}
			}
		}
		if claimed[fieldDonorName] && claimed[fieldAmount] {
			return i, columns
		}
	}
	return 0, nil
}

// rowCandidate builds one candidate from a data row. Rows with no value in
// any mapped column are skipped (separator or footer rows). Columns are
// visited left to right so issue order is stable.
func rowCandidate(columns map[int]string, row []string) (Candidate, bool) {
	var c Candidate
	found := false

	for col := 0; col < len(row); col++ {
		field, ok := columns[col]
		if !ok {
			continue
		}
		value := collapseWhitespace(row[col])
		if value == "" {
			continue
		}
		found = true
		setField(&c, field, value)
	}
	return c, found
}

// setField assigns a raw cell value to the named record field, normalizing
// the typed ones and carrying parse failures as issues.
func setField(c *Candidate, field, value string) {
	switch field {
	case fieldDonorName:
		c.Record.DonorName = value
	case fieldDonorID:
		c.Record.DonorID = value
	case fieldAddress:
		c.Record.Address = value
	case fieldFund:
		c.Record.Fund = value
	case fieldCampaign:
		c.Record.Campaign = value
	case fieldPaymentType:
		c.Record.PaymentType = value
	case fieldCheckNumber:
		c.Record.CheckNumber = value
	case fieldAmount:
		amount, err := NormalizeAmount(value)
		if err != nil {
			c.Issues = append(c.Issues, FieldIssue{Field: fieldAmount, Raw: value, Err: err})
			return
		}
		c.Record.Amount = amount
		c.Record.HasAmount = true
	case fieldDate:
		date, err := NormalizeDate(value)
		if err != nil {
			c.Issues = append(c.Issues, FieldIssue{Field: fieldDate, Raw: value, Err: err})
			return
		}
		c.Record.Date = date
		c.Record.HasDate = true
	}
}
