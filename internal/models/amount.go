package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Amount is a numeric field that tolerates the half-typed values a live
// editing UI produces. Blank strings, nulls and garbage decode to zero
// instead of failing, so totals stay available on every keystroke.
type Amount float64

// Float returns the value with non-finite inputs coerced to zero.
func (a Amount) Float() float64 {
	f := float64(a)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Float())
}

// UnmarshalJSON accepts JSON numbers, quoted numbers (with stray grouping
// commas or currency noise stripped) and null. Values that cannot be parsed
// become zero; this method never reports an error.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*a = 0
		return nil
	}

	if s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*a = 0
			return nil
		}
		s = cleanNumeric(str)
		if s == "" {
			*a = 0
			return nil
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*a = 0
		return nil
	}
	*a = Amount(f)
	return nil
}

// cleanNumeric keeps digits, '.', and a leading '-' only, dropping grouping
// commas and any currency prefix the user pasted in.
func cleanNumeric(s string) string {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = strings.TrimSpace(strings.TrimPrefix(s, "-"))
	}

	var b strings.Builder
	b.Grow(len(s) + 1)
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if clean == "" {
		return ""
	}
	if neg {
		clean = "-" + clean
	}
	return clean
}
