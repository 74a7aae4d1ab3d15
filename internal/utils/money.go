package utils

import "strconv"

// FormatKRW renders an amount with thousands separators, e.g. 120,000.
func FormatKRW(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	out := ""
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out += ","
		}
		out += string(r)
	}
	if neg {
		out = "-" + out
	}
	return out
}
