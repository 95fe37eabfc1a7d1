package template

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aapp-oss/pledges/internal/normalize"
)

// validCandidate returns a candidate that passes all checks; tests mutate
// single fields from here.
func validCandidate() normalize.Candidate {
	return normalize.Candidate{Record: normalize.GiftRecord{
		DonorName: "Jane Doe",
		Amount:    decimal.RequireFromString("500.00"),
		HasAmount: true,
		Date:      time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		HasDate:   true,
		Fund:      "General",
	}}
}

func TestValidateAccepts(t *testing.T) {
	assert.Empty(t, Validate(validCandidate()))
}

func TestValidateRequiredFields(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*normalize.Candidate)
		wantField string
	}{
		{
			name:      "missing donor name",
			mutate:    func(c *normalize.Candidate) { c.Record.DonorName = "" },
			wantField: "Donor Name",
		},
		{
			name:      "missing amount",
			mutate:    func(c *normalize.Candidate) { c.Record.HasAmount = false },
			wantField: "Gift Amount",
		},
		{
			name:      "missing date",
			mutate:    func(c *normalize.Candidate) { c.Record.HasDate = false },
			wantField: "Gift Date",
		},
		{
			name:      "missing fund",
			mutate:    func(c *normalize.Candidate) { c.Record.Fund = "" },
			wantField: "Fund",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCandidate()
			tt.mutate(&c)
			errs := Validate(c)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantField, errs[0].Field)
			assert.Contains(t, errs[0].Reason, "empty")
		})
	}
}

func TestValidateNegativeAmount(t *testing.T) {
	c := validCandidate()
	c.Record.Amount = decimal.RequireFromString("-50.00")
	errs := Validate(c)
	require.Len(t, errs, 1)
	assert.Equal(t, "Gift Amount", errs[0].Field)
	assert.Contains(t, errs[0].Reason, "negative")
}

func TestValidateZeroAmountAccepted(t *testing.T) {
	c := validCandidate()
	c.Record.Amount = decimal.Zero
	assert.Empty(t, Validate(c))
}

func TestValidateDateRange(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		wantErr bool
	}{
		{name: "too old", year: 1899, wantErr: true},
		{name: "lower bound", year: 1900},
		{name: "next year", year: time.Now().Year() + 1},
		{name: "too far out", year: time.Now().Year() + 2, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCandidate()
			c.Record.Date = time.Date(tt.year, 6, 1, 0, 0, 0, 0, time.UTC)
			errs := Validate(c)
			if tt.wantErr {
				require.Len(t, errs, 1)
				assert.Equal(t, "Gift Date", errs[0].Field)
			} else {
				assert.Empty(t, errs)
			}
		})
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	c := normalize.Candidate{Record: normalize.GiftRecord{}}
	errs := Validate(c)
	require.Len(t, errs, 4)

	// Reported in template column order.
	assert.Equal(t, "Donor Name", errs[0].Field)
	assert.Equal(t, "Gift Amount", errs[1].Field)
	assert.Equal(t, "Gift Date", errs[2].Field)
	assert.Equal(t, "Fund", errs[3].Field)
}

func TestValidateSurfacesParseIssues(t *testing.T) {
	c := validCandidate()
	c.Record.HasAmount = false
	c.Record.HasDate = false
	c.Issues = []normalize.FieldIssue{
		{Field: "Gift Amount", Raw: "five hundred", Err: normalize.ErrUnparseableAmount},
		{Field: "Gift Date", Raw: "someday", Err: normalize.ErrUnparseableDate},
	}

	errs := Validate(c)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Reason, `unparseable amount "five hundred"`)
	assert.Contains(t, errs[1].Reason, `unparseable date "someday"`)
}

func TestValidationErrorMessage(t *testing.T) {
	verr := &ValidationError{
		SourceFile: "gifts.pdf",
		Index:      3,
		Fields: []FieldError{
			{Field: "Fund", Reason: "required field is empty"},
		},
	}

	msg := verr.Error()
	assert.Contains(t, msg, "gifts.pdf")
	assert.Contains(t, msg, "record 3")
	assert.Contains(t, msg, "Fund")
	assert.Equal(t, fmt.Sprintf("%v", verr), msg)
}
