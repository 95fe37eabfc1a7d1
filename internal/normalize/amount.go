package normalize

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// NormalizeAmount strips currency formatting from s and parses it as a
// decimal. Parenthesized values are negative (accounting notation); the
// validator rejects negatives, this function only parses. Returns
// ErrUnparseableAmount when the remainder is not numeric.
func NormalizeAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", ErrUnparseableAmount)
	}

	negative := false
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		negative = true
		cleaned = cleaned[1 : len(cleaned)-1]
	}

	cleaned = strings.TrimLeft(cleaned, "$€£ ")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnparseableAmount, s)
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}
