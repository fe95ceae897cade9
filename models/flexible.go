package models

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// FlexibleNumber decodes a JSON field that may arrive as a number, a
// formatted numeric string ("1,200,000", "HKD 500"), or garbage. Anything
// unparseable decodes to zero so a single malformed record cannot poison
// an aggregation pass.
type FlexibleNumber float64

func (fn *FlexibleNumber) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*fn = FlexibleNumber(safe(f))
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if d, err := ParseAmount(s); err == nil {
			*fn = FlexibleNumber(safe(d.InexactFloat64()))
			return nil
		}
	}

	*fn = 0
	return nil
}

func (fn FlexibleNumber) Float64() float64 {
	return safe(float64(fn))
}

// ParseAmount parses a user-formatted amount string. Thousand separators
// and leading currency markers are stripped; the sign is preserved.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if neg {
		clean = "-" + clean
	}
	return decimal.NewFromString(clean)
}

func safe(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
