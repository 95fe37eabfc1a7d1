package template

import (
	"fmt"
	"strings"
	"time"

	"github.com/aapp-oss/pledges/internal/normalize"
)

// Date sanity bounds for gift dates. The lower bound is a plausibility
// check, not business logic; the upper bound allows next-year pledges.
const minGiftYear = 1900

// FieldError describes one invalid or missing field on a candidate record.
type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ValidationError carries every field problem found on one candidate, with
// enough context (source file, record index) for manual correction.
type ValidationError struct {
	SourceFile string
	Index      int
	Fields     []FieldError
}

func (e *ValidationError) Error() string {
	reasons := make([]string, len(e.Fields))
	for i, fe := range e.Fields {
		reasons[i] = fe.Error()
	}
	return fmt.Sprintf("%s record %d: %s", e.SourceFile, e.Index, strings.Join(reasons, "; "))
}

// Validate checks one candidate against the template's requirements and
// returns every violation, not just the first. A nil result means the
// record may be mapped.
func Validate(c normalize.Candidate) []FieldError {
	var errs []FieldError

	issues := make(map[string]normalize.FieldIssue, len(c.Issues))
	for _, issue := range c.Issues {
		issues[issue.Field] = issue
	}

	// Required fields, in template order. A field that failed to parse is
	// reported with its parse failure rather than as missing.
	if c.Record.DonorName == "" {
		errs = append(errs, FieldError{Field: "Donor Name", Reason: "required field is empty"})
	}

	if issue, ok := issues["Gift Amount"]; ok {
		errs = append(errs, FieldError{Field: "Gift Amount", Reason: fmt.Sprintf("unparseable amount %q", issue.Raw)})
	} else if !c.Record.HasAmount {
		errs = append(errs, FieldError{Field: "Gift Amount", Reason: "required field is empty"})
	} else if c.Record.Amount.IsNegative() {
		errs = append(errs, FieldError{Field: "Gift Amount", Reason: fmt.Sprintf("negative amount %s", c.Record.Amount.StringFixed(2))})
	}

	if issue, ok := issues["Gift Date"]; ok {
		errs = append(errs, FieldError{Field: "Gift Date", Reason: fmt.Sprintf("unparseable date %q", issue.Raw)})
	} else if !c.Record.HasDate {
		errs = append(errs, FieldError{Field: "Gift Date", Reason: "required field is empty"})
	} else if reason := dateOutOfRange(c.Record.Date); reason != "" {
		errs = append(errs, FieldError{Field: "Gift Date", Reason: reason})
	}

	if c.Record.Fund == "" {
		errs = append(errs, FieldError{Field: "Fund", Reason: "required field is empty"})
	}

	return errs
}

// dateOutOfRange returns a reason when the year falls outside
// [minGiftYear, current year + 1], or empty when the date is plausible.
func dateOutOfRange(t time.Time) string {
	year := t.Year()
	maxYear := time.Now().Year() + 1
	if year < minGiftYear || year > maxYear {
		return fmt.Sprintf("year %d outside plausible range %d-%d", year, minGiftYear, maxYear)
	}
	return ""
}
