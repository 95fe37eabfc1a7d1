package normalize

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrUnparseableDate marks a date value that matched no known input format.
var ErrUnparseableDate = errors.New("unparseable date")

// ErrUnparseableAmount marks an amount that is not numeric after stripping
// currency formatting.
var ErrUnparseableAmount = errors.New("unparseable amount")

// GiftRecord is one normalized donor/gift tuple. Absent fields stay empty
// (HasAmount/HasDate false for the typed ones); they are never defaulted.
// Validation downstream decides whether an absence is acceptable.
type GiftRecord struct {
	DonorName   string
	DonorID     string
	Address     string
	Amount      decimal.Decimal
	HasAmount   bool
	Date        time.Time
	HasDate     bool
	Fund        string
	Campaign    string
	PaymentType string
	CheckNumber string
	SourceFile  string
	Seq         string
}

// FieldIssue records a parse failure for a single field. Issues ride along
// on the candidate so the validator can cite them instead of reporting the
// field as merely missing.
type FieldIssue struct {
	Field string
	Raw   string
	Err   error
}

// Candidate is a GiftRecord before validation, with any per-field parse
// failures attached. Index is the record's position within its source
// document, used in failure reports.
type Candidate struct {
	Record GiftRecord
	Index  int
	Issues []FieldIssue
}
