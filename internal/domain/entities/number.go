package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Number is the numeric type used for line item quantities and costs.
//
// Form input is coerced permissively, so a Number may hold NaN or an infinity.
// Those values encode as JSON null, the same way the browser serializes them.
type Number float64

var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

func (n *Number) UnmarshalJSON(b []byte) error {
	if string(bytes.TrimSpace(b)) == "null" {
		*n = Number(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

func (n Number) IsNaN() bool {
	return math.IsNaN(float64(n))
}

// CoerceNumber converts raw form input into a Number. It never fails: input
// that cannot be read as a number becomes NaN, and blank input becomes 0.
func CoerceNumber(raw string) Number {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return Number(math.Inf(1))
	case "-Infinity":
		return Number(math.Inf(-1))
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			v, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return Number(math.NaN())
			}
			return Number(v)
		}
	}

	if !decimalLiteral.MatchString(s) {
		return Number(math.NaN())
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Overflow yields ±Inf and underflow yields 0, both with ErrRange.
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return Number(f)
		}
		return Number(math.NaN())
	}
	return Number(f)
}
