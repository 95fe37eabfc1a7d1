// Package lookup backfills donor IDs from an optional lookup workbook: an
// XLSX whose first sheet carries fullName and ACCOUNTNUMBER columns.
package lookup

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table is an in-memory name-to-donor-ID index.
type Table struct {
	byName map[string]string
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// nameKey normalizes a donor name for matching: uppercased with collapsed
// whitespace, mirroring the report style the names come from.
func nameKey(name string) string {
	return strings.ToUpper(strings.TrimSpace(whitespaceRun.ReplaceAllString(name, " ")))
}

// NewTable builds a table from name -> account number entries, normalizing
// the name keys.
func NewTable(entries map[string]string) *Table {
	t := &Table{byName: make(map[string]string, len(entries))}
	for name, id := range entries {
		key := nameKey(name)
		if key == "" || id == "" {
			continue
		}
		t.byName[key] = id
	}
	return t
}

// Load reads the lookup workbook at path. The first sheet's header row must
// contain fullName and ACCOUNTNUMBER columns (matched case-insensitively);
// later duplicates of a name are ignored.
func Load(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open lookup workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("lookup workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read lookup sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("lookup sheet %q is empty", sheets[0])
	}

	nameCol, idCol := -1, -1
	for i, header := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(header)) {
		case "fullname":
			nameCol = i
		case "accountnumber":
			idCol = i
		}
	}
	if nameCol < 0 || idCol < 0 {
		return nil, fmt.Errorf("lookup sheet %q missing required columns fullName, ACCOUNTNUMBER", sheets[0])
	}

	t := &Table{byName: make(map[string]string)}
	for _, row := range rows[1:] {
		if nameCol >= len(row) || idCol >= len(row) {
			continue
		}
		key := nameKey(row[nameCol])
		id := strings.TrimSpace(row[idCol])
		if key == "" || id == "" {
			continue
		}
		if _, seen := t.byName[key]; !seen {
			t.byName[key] = id
		}
	}
	return t, nil
}

// DonorID returns the account number on file for name, if any.
func (t *Table) DonorID(name string) (string, bool) {
	if t == nil {
		return "", false
	}
	id, ok := t.byName[nameKey(name)]
	return id, ok
}

// Len returns the number of distinct names in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.byName)
}
