package records

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// leadingFloat matches the numeric prefix of a value the way spreadsheet
// exports tend to write it ("87", "0.12", "12.5 approx").
var leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParsePercentage converts a raw rate cell into a whole percentage.
// The second return value is false when the rate is unknown.
//
// Values with a percent sign are taken as is, bare values strictly between
// 0 and 1 are treated as proportions. Results are rounded half up and never clamped.
func ParsePercentage(raw string) (int, bool) {
	value := strings.TrimSpace(raw)
	if value == "" || value == "..." || strings.EqualFold(value, "N/A") {
		return 0, false
	}

	if strings.Contains(value, "%") {
		num, ok := parseLeadingFloat(strings.Replace(value, "%", "", 1))
		if !ok {
			return 0, false
		}
		return roundHalfUp(num)
	}

	num, ok := parseLeadingFloat(value)
	if !ok {
		return 0, false
	}

	if num > 0 && num < 1 {
		num *= 100
	}

	return roundHalfUp(num)
}

func parseLeadingFloat(s string) (float64, bool) {
	match := leadingFloat.FindString(strings.TrimSpace(s))
	if match == "" {
		return 0, false
	}

	num, err := strconv.ParseFloat(match, 64)
	if err != nil || math.IsNaN(num) || math.IsInf(num, 0) {
		return 0, false
	}
	return num, true
}

// roundHalfUp reports false when the rounded value does not fit in an int.
func roundHalfUp(f float64) (int, bool) {
	rounded := math.Floor(f + 0.5)
	if rounded < math.MinInt || rounded >= math.MaxInt {
		return 0, false
	}
	return int(rounded), true
}
