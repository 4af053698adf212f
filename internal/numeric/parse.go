package numeric

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// zeroTerms are phrases quote documents use in place of a zero amount.
var zeroTerms = [...]string{
	"sin deducible",
	"sin copago",
	"gratis",
	"no aplica",
	"n/a",
	"s/d",
	"sd",
}

var numberRun = regexp.MustCompile(`[0-9.,]+`)

// Parse converts a free-text amount ("UF 5,5", "1.234", "Sin Deducible")
// into a float. A nil input or a value with no usable number yields nil.
func Parse(text *string) *float64 {
	if text == nil {
		return nil
	}
	v, ok := ParseString(*text)
	if !ok {
		return nil
	}
	return &v
}

// ParseString is Parse for a plain string. ok is false when the text
// holds no parseable number.
func ParseString(text string) (float64, bool) {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "0" || isZeroTerm(t) {
		return 0, true
	}

	run := numberRun.FindString(t)
	if run == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(cleanSeparators(run), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

func isZeroTerm(t string) bool {
	for _, term := range zeroTerms {
		if strings.Contains(t, term) {
			return true
		}
	}
	return false
}

// cleanSeparators rewrites a run of digits, dots and commas into the form
// strconv expects. Dots are thousands separators when a comma is also
// present (Chilean "1.234,56"), when there are several of them, or when a
// single dot is followed by exactly three digits in a run longer than four
// characters ("1.234"). Otherwise a lone dot is a decimal point.
func cleanSeparators(run string) string {
	hasComma := strings.Contains(run, ",")
	hasDot := strings.Contains(run, ".")

	switch {
	case hasComma && hasDot:
		return strings.ReplaceAll(strings.ReplaceAll(run, ".", ""), ",", ".")
	case hasComma:
		return strings.ReplaceAll(run, ",", ".")
	case hasDot:
		groups := strings.Split(run, ".")
		if len(groups) > 2 || (len(groups) == 2 && len(groups[1]) == 3 && len(run) > 4) {
			return strings.ReplaceAll(run, ".", "")
		}
		return run
	default:
		return run
	}
}
