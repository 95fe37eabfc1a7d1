// Package template maps validated gift records onto the Andar import
// template. The column names and their order are an external contract
// dictated by the consuming system; changing either breaks the import.
package template

import (
	"github.com/aapp-oss/pledges/internal/normalize"
)

// columns is the Andar import template header, verbatim and in order.
var columns = []string{
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
}

// Columns returns the template header row.
func Columns() []string {
	out := make([]string, len(columns))
	copy(out, columns)
	return out
}

// OutputRow is one spreadsheet row, cell values positioned per the template
// column order. Gift Amount is numeric; every other cell is a string.
type OutputRow struct {
	Cells []any
}

// Map projects a validated record onto the template column order. Callers
// must validate first; Map does not re-check.
func Map(r normalize.GiftRecord) OutputRow {
	amount, _ := r.Amount.Round(2).Float64()
	return OutputRow{Cells: []any{
		r.DonorName,
		r.DonorID,
		r.Address,
		amount,
		r.Date.Format(normalize.ISODate),
		r.Fund,
		r.Campaign,
		r.PaymentType,
		r.CheckNumber,
		r.SourceFile,
		r.Seq,
	}}
}
