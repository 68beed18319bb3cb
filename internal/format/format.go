package format

import (
	"regexp"
	"strconv"
	"strings"
)

var countRE = regexp.MustCompile(`[\d,.]+[KkMm]?`)

// ParseCount reads a human-style count such as "87K", "1.2M" or "12,345"
// and returns it as an integer. Unparseable input yields 0.
func ParseCount(text string) int {
	text = strings.ReplaceAll(text, " ", "")
	text = strings.ReplaceAll(text, ",", "")

	match := countRE.FindString(text)
	if match == "" {
		return 0
	}

	multiplier := 1
	if strings.HasSuffix(match, "K") || strings.HasSuffix(match, "k") {
		multiplier = 1000
		match = match[:len(match)-1]
	} else if strings.HasSuffix(match, "M") || strings.HasSuffix(match, "m") {
		multiplier = 1000000
		match = match[:len(match)-1]
	}

	f, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return int(f * float64(multiplier))
}

// FormatCount renders an integer the way the dashboard displays reach:
// "87K", "1.2M", plain digits below a thousand.
func FormatCount(n int) string {
	switch {
	case n >= 1000000:
		return trimZero(float64(n)/1000000) + "M"
	case n >= 1000:
		return trimZero(float64(n)/1000) + "K"
	default:
		return strconv.Itoa(n)
	}
}

func trimZero(f float64) string {
	s := strconv.FormatFloat(f, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

// ParseAmount reads a budget or goal value supplied as raw form input.
// Missing or non-numeric values count as 0.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	s = strings.TrimPrefix(s, "$")
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func FormatCurrency(v float64) string {
	return "$" + humanizeThousands(strconv.FormatFloat(v, 'f', -1, 64))
}

func FormatPercent(v int) string {
	return strconv.Itoa(v) + "%"
}

// humanizeThousands inserts comma separators into the integer part.
func humanizeThousands(s string) string {
	intPart := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}

	n := len(intPart)
	if n <= 3 {
		out := intPart + frac
		if neg {
			out = "-" + out
		}
		return out
	}

	var b strings.Builder
	rem := n % 3
	if rem > 0 {
		b.WriteString(intPart[:rem])
	}
	for i := rem; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}

	out := b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}
