package normalize

import (
	"fmt"
	"strings"
	"time"
)

// ISODate is the canonical output format for gift dates.
const ISODate = "2006-01-02"

// dateFormats are tried in order. The canonical format comes first so that
// normalizing an already-normalized date is the identity.
var dateFormats = []string{
	ISODate,
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"02-Jan-2006",
	"2-Jan-2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"02 Jan 2006",
	"2 Jan 2006",
}

// NormalizeDate parses s against the known input formats and returns the
// calendar date. Returns ErrUnparseableDate when no format matches.
func NormalizeDate(s string) (time.Time, error) {
	cleaned := strings.TrimSpace(s)
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrUnparseableDate)
	}

	for _, format := range dateFormats {
		if t, err := time.Parse(format, cleaned); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableDate, s)
}

// looksLikeDate reports whether s parses under any known date format.
func looksLikeDate(s string) bool {
	_, err := NormalizeDate(s)
	return err == nil
}
