package template

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aapp-oss/pledges/internal/normalize"
)

func TestColumnsContract(t *testing.T) {
	// The header row is an external contract; names and order are verbatim.
	assert.Equal(t, []string{
		"Donor Name",
		"Donor ID",
		"Address",
		"Gift Amount",
		"Gift Date",
		"Fund",
		"Campaign",
		"Payment Type",
		"Check Number",
		"Source File",
		"Seq",
	}, Columns())
}

func TestColumnsReturnsCopy(t *testing.T) {
	cols := Columns()
	cols[0] = "mutated"
	assert.Equal(t, "Donor Name", Columns()[0])
}

func TestMapPositionsFields(t *testing.T) {
	r := normalize.GiftRecord{
		DonorName:   "Jane Doe",
		Amount:      decimal.RequireFromString("500.00"),
		HasAmount:   true,
		Date:        time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		HasDate:     true,
		Fund:        "General",
		SourceFile:  "gifts.pdf",
		PaymentType: "Check",
		CheckNumber: "2727",
		Seq:         "5250031143286",
	}

	row := Map(r)
	require.Len(t, row.Cells, len(Columns()))

	assert.Equal(t, "Jane Doe", row.Cells[0])
	assert.Equal(t, "", row.Cells[1])
	assert.Equal(t, "", row.Cells[2])
	assert.Equal(t, 500.00, row.Cells[3])
	assert.Equal(t, "2024-03-15", row.Cells[4])
	assert.Equal(t, "General", row.Cells[5])
	assert.Equal(t, "", row.Cells[6])
	assert.Equal(t, "Check", row.Cells[7])
	assert.Equal(t, "2727", row.Cells[8])
	assert.Equal(t, "gifts.pdf", row.Cells[9])
	assert.Equal(t, "5250031143286", row.Cells[10])
}
