package normalize

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/aapp-oss/pledges/internal/pdf"
)

// Pledge-report transaction line, e.g.:
//
//	5250031143286 JAMES ROBERT BOYD 2727 Check 100.00 4600055
//
// The name ends right before the check number (the next numeric token).
// The trailing batch number is matched but discarded.
var pledgeLinePattern = regexp.MustCompile(
	`(\d{13})\s+(.*?)\s+(\d{1,10})\s+(Check|Cash|Card|ACH)\s+(\d+\.\d{2})\s+(\d+)`)

// GN fund label: "GN1", "GN-2", "gn 3".
var gnLabelPattern = regexp.MustCompile(`(?i)\bGN\s*[- ]?([1-7])\b`)

// PledgeLineMatcher recognizes the pledge-report family: one transaction
// per line with a 13-digit sequence number, donor name, check number,
// payment type, and amount. The gift date is not on the transaction lines;
// it is taken from the report header when one is present there.
type PledgeLineMatcher struct{}

// Name implements Matcher.
func (m *PledgeLineMatcher) Name() string { return "pledge-line" }

// Match implements Matcher.
func (m *PledgeLineMatcher) Match(doc *pdf.RawDocument) []Candidate {
	reportDate, hasReportDate := headerDate(doc.Lines)

	var candidates []Candidate
	for _, line := range doc.Lines {
		flat := collapseWhitespace(line)
		for _, groups := range pledgeLinePattern.FindAllStringSubmatch(flat, -1) {
			c := Candidate{Record: GiftRecord{
				Seq:         groups[1],
				DonorName:   collapseWhitespace(groups[2]),
				CheckNumber: groups[3],
				PaymentType: groups[4],
				Fund:        gnFund(flat),
			}}

			amount, err := NormalizeAmount(groups[5])
			if err != nil {
				// The regex only admits numeric amounts, but keep the
				// issue path for consistency with the other matchers.
				c.Issues = append(c.Issues, FieldIssue{Field: "Gift Amount", Raw: groups[5], Err: err})
			} else {
				c.Record.Amount = amount
				c.Record.HasAmount = true
			}

			if hasReportDate {
				c.Record.Date = reportDate
				c.Record.HasDate = true
			}

			candidates = append(candidates, c)
		}
	}
	return candidates
}

// gnFund returns the normalized fund label ("GN1".."GN7") detected on the
// same line, or empty. A line without a label stays empty; the fund is
// never defaulted.
func gnFund(line string) string {
	groups := gnLabelPattern.FindStringSubmatch(line)
	if groups == nil {
		return ""
	}
	return fmt.Sprintf("GN%s", groups[1])
}

// headerDate scans the leading lines of a report for a date, either after a
// "Date" label or as a bare token.
func headerDate(lines []string) (time.Time, bool) {
	const headerWindow = 10

	for i, line := range lines {
		if i >= headerWindow {
			break
		}
		flat := collapseWhitespace(line)
		if idx := labelIndex(flat, "date"); idx >= 0 {
			if t, ok := parseLeadingDate(flat[idx:]); ok {
				return t, true
			}
		}
		for _, token := range strings.Fields(flat) {
			if t, err := NormalizeDate(token); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// parseLeadingDate parses a date from the start of s, trying up to three
// whitespace-separated tokens so that spelled-out dates ("March 15, 2024")
// are picked up alongside single-token ones.
func parseLeadingDate(s string) (time.Time, bool) {
	fields := strings.Fields(s)
	limit := len(fields)
	if limit > 3 {
		limit = 3
	}
	for n := limit; n >= 1; n-- {
		if t, err := NormalizeDate(strings.Join(fields[:n], " ")); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// labelIndex returns the index just past a case-insensitive label and its
// separator (":" or whitespace) in line, or -1.
func labelIndex(line, label string) int {
	lower := strings.ToLower(line)
	pos := strings.Index(lower, label)
	if pos < 0 {
		return -1
	}
	rest := pos + len(label)
	for rest < len(line) && (line[rest] == ':' || line[rest] == ' ') {
		rest++
	}
	if rest >= len(line) {
		return -1
	}
	return rest
}
