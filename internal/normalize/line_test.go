package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aapp-oss/pledges/internal/pdf"
)

func TestPledgeLineMatcher(t *testing.T) {
	doc := &pdf.RawDocument{
		SourceFile: "GNEF LB 12-11-2025.pdf",
		Lines: []string{
			"Pledge Report",
			"Date: 03/15/2024",
			"5250031143286 JAMES ROBERT BOYD 2727 Check 100.00 4600055",
			"5250031143287 MARY ANN SMITH 118 Cash 250.50 4600055 GN-2",
			"Totals 350.50",
		},
	}

	m := &PledgeLineMatcher{}
	candidates := m.Match(doc)
	require.Len(t, candidates, 2)

	first := candidates[0].Record
	assert.Equal(t, "5250031143286", first.Seq)
	assert.Equal(t, "JAMES ROBERT BOYD", first.DonorName)
	assert.Equal(t, "2727", first.CheckNumber)
	assert.Equal(t, "Check", first.PaymentType)
	require.True(t, first.HasAmount)
	assert.Equal(t, "100.00", first.Amount.StringFixed(2))
	require.True(t, first.HasDate)
	assert.Equal(t, "2024-03-15", first.Date.Format(ISODate))
	assert.Empty(t, first.Fund, "no GN label on the line must leave fund empty")

	second := candidates[1].Record
	assert.Equal(t, "MARY ANN SMITH", second.DonorName)
	assert.Equal(t, "Cash", second.PaymentType)
	assert.Equal(t, "250.50", second.Amount.StringFixed(2))
	assert.Equal(t, "GN2", second.Fund)
}

func TestPledgeLineMatcherNoHeaderDate(t *testing.T) {
	doc := &pdf.RawDocument{
		SourceFile: "report.pdf",
		Lines: []string{
			"5250031143286 JAMES ROBERT BOYD 2727 Check 100.00 4600055",
		},
	}

	candidates := (&PledgeLineMatcher{}).Match(doc)
	require.Len(t, candidates, 1)
	assert.False(t, candidates[0].Record.HasDate, "date must stay absent, never defaulted")
}

func TestPledgeLineMatcherIgnoresNonMatchingLines(t *testing.T) {
	doc := &pdf.RawDocument{
		SourceFile: "letter.pdf",
		Lines: []string{
			"Dear donor, thank you for your gift of $100.00.",
			"Sincerely, The Fund",
		},
	}

	assert.Empty(t, (&PledgeLineMatcher{}).Match(doc))
}

func TestGNFund(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"... GN1 ...", "GN1"},
		{"... GN-2 ...", "GN2"},
		{"... gn 3 ...", "GN3"},
		{"... GN7 ...", "GN7"},
		{"... GN8 ...", ""},
		{"... GNEF ...", ""},
		{"no label", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, gnFund(tt.input), "input %q", tt.input)
	}
}

func TestHeaderDate(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
		ok    bool
	}{
		{
			name:  "labeled",
			lines: []string{"Report", "Date: 12/11/2025"},
			want:  "2025-12-11",
			ok:    true,
		},
		{
			name:  "labeled spelled out",
			lines: []string{"Run Date: March 15, 2024 Page 1"},
			want:  "2024-03-15",
			ok:    true,
		},
		{
			name:  "bare token",
			lines: []string{"Pledge Report 03/15/2024"},
			want:  "2024-03-15",
			ok:    true,
		},
		{
			name:  "none",
			lines: []string{"Pledge Report", "For the General Fund"},
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := headerDate(tt.lines)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got.Format(ISODate))
			}
		})
	}
}
