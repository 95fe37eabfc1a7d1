package normalize

import (
	"regexp"
	"strings"

	"github.com/aapp-oss/pledges/internal/pdf"
)

// Matcher is one field-detection strategy. Strategies are tried in priority
// order; the first one that produces candidates decides the document's
// layout family.
type Matcher interface {
	// Name identifies the strategy in logs and failure reports.
	Name() string
	// Match scans the document and returns candidate records, or nil when
	// the document does not fit this strategy's layout.
	Match(doc *pdf.RawDocument) []Candidate
}

// Normalizer turns raw documents into candidate gift records.
type Normalizer struct {
	matchers []Matcher
}

// NewNormalizer returns a normalizer with the built-in strategies in
// priority order: known pledge-report lines, then labeled table grids, then
// free-text label proximity.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		matchers: []Matcher{
			&PledgeLineMatcher{},
			&TableGridMatcher{},
			&LabelProximityMatcher{},
		},
	}
}

// Records extracts candidate gift records from doc. The winning strategy's
// name is returned alongside for reporting; both are empty when no strategy
// matched anything.
func (n *Normalizer) Records(doc *pdf.RawDocument) ([]Candidate, string) {
	for _, m := range n.matchers {
		if candidates := m.Match(doc); len(candidates) > 0 {
			for i := range candidates {
				candidates[i].Index = i
				candidates[i].Record.SourceFile = doc.SourceFile
			}
			return candidates, m.Name()
		}
	}
	return nil, ""
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// collapseWhitespace trims s and squeezes interior whitespace runs to one
// space, the per-line normalization every matcher applies first.
func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}
