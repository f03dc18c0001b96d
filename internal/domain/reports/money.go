package reports

import (
	"fmt"
	"strconv"
	"strings"
)

// Cents is a money amount in integer cents. Summation over it is exact, and
// the JSON form is a plain decimal number with two fraction digits (30050
// marshals as 300.50), so binary floating point never touches the revenue
// path.
type Cents int64

func (c Cents) String() string {
	v := int64(c)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Cents) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" || len(frac) > 2 {
		return fmt.Errorf("invalid amount %q", s)
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", s, err)
	}

	cents := int64(0)
	if frac != "" {
		// pad "5" to "50" so 300.5 and 300.50 agree
		for len(frac) < 2 {
			frac += "0"
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", s, err)
		}
	}

	total := units*100 + cents
	if neg {
		total = -total
	}
	*c = Cents(total)
	return nil
}
