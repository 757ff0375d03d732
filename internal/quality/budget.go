package quality

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
)

// ParseBudget reads a free-text budget such as "$50,000", "50k" or "2.5M".
// It returns false when the text is not a plain amount.
func ParseBudget(raw string) (decimal.Decimal, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	if s == "" {
		return decimal.Decimal{}, false
	}

	mult := decimal.NewFromInt(1)
	switch {
	case strings.HasSuffix(s, "k"):
		mult = thousand
		s = strings.TrimSuffix(s, "k")
	case strings.HasSuffix(s, "m"):
		mult = million
		s = strings.TrimSuffix(s, "m")
	}
	if s == "" || strings.ContainsAny(s, "eE") {
		return decimal.Decimal{}, false
	}

	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return v.Mul(mult), true
}
