package normalize

import (
	"strings"

	"github.com/aapp-oss/pledges/internal/pdf"
)

// labelTokens maps leading line labels to record fields, most specific
// first so that "Donor ID" is never consumed by the bare "ID" label.
var labelTokens = []struct {
	label string
	field string
}{
	{"donor name", fieldDonorName},
	{"donor id", fieldDonorID},
	{"account number", fieldDonorID},
	{"gift amount", fieldAmount},
	{"gift date", fieldDate},
	{"payment type", fieldPaymentType},
	{"check number", fieldCheckNumber},
	{"name", fieldDonorName},
	{"id", fieldDonorID},
	{"address", fieldAddress},
	{"amount", fieldAmount},
	{"date", fieldDate},
	{"fund", fieldFund},
	{"campaign", fieldCampaign},
}

// LabelProximityMatcher handles free-text donor forms: a line starting with
// a known label contributes the text after the separator, or the next
// non-blank line when the label stands alone. At most one candidate per
// document; a form describes one gift.
type LabelProximityMatcher struct{}

// Name implements Matcher.
func (m *LabelProximityMatcher) Name() string { return "label-proximity" }

// Match implements Matcher.
func (m *LabelProximityMatcher) Match(doc *pdf.RawDocument) []Candidate {
	var c Candidate
	assigned := make(map[string]bool)

	for i, line := range doc.Lines {
		flat := collapseWhitespace(line)
		label, field, rest := splitLabel(flat)
		if label == "" || assigned[field] {
			continue
		}

		value := rest
		if value == "" && i+1 < len(doc.Lines) {
			next := collapseWhitespace(doc.Lines[i+1])
			// Only adopt the following line when it is not itself labeled.
			if l, _, _ := splitLabel(next); l == "" {
				value = next
			}
		}
		if value == "" {
			continue
		}

		assigned[field] = true
		setField(&c, field, value)
	}

	// A form without at least a donor or an amount is not a gift record.
	if !assigned[fieldDonorName] && !assigned[fieldAmount] {
		return nil
	}
	return []Candidate{c}
}

// splitLabel matches a known label at the start of line and returns the
// label, its field, and the remaining text after the separator. Returns
// empties when the line starts with no known label.
func splitLabel(line string) (label, field, rest string) {
	lower := strings.ToLower(line)
	for _, lt := range labelTokens {
		if !strings.HasPrefix(lower, lt.label) {
			continue
		}
		rest = strings.TrimSpace(line[len(lt.label):])
		// Require a separator (or end of line) after the label so that
		// "Identification" does not match the "ID" label.
		if rest != "" && !strings.HasPrefix(rest, ":") && !strings.HasPrefix(rest, "-") {
			continue
		}
		rest = strings.TrimSpace(strings.TrimLeft(rest, ":-"))
		return lt.label, lt.field, rest
	}
	return "", "", ""
}
