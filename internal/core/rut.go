package core

import (
	"strings"
)

// NormalizeRUT strips dots and spaces and uppercases the check digit:
// "76.123.456-0" → "76123456-0". It does not validate.
func NormalizeRUT(rut string) string {
	rut = strings.ToUpper(strings.TrimSpace(rut))
	rut = strings.ReplaceAll(rut, ".", "")
	rut = strings.ReplaceAll(rut, " ", "")
	return rut
}

// ValidRUT checks a Chilean RUT's modulo-11 check digit. Accepts dotted and
// plain forms, with or without the dash before the digit.
func ValidRUT(rut string) bool {
	rut = NormalizeRUT(rut)
	rut = strings.ReplaceAll(rut, "-", "")
	if len(rut) < 2 {
		return false
	}

	body := rut[:len(rut)-1]
	check := rut[len(rut)-1]

	sum := 0
	factor := 2
	for i := len(body) - 1; i >= 0; i-- {
		c := body[i]
		if c < '0' || c > '9' {
			return false
		}
		sum += int(c-'0') * factor
		factor++
		if factor > 7 {
			factor = 2
		}
	}

	var expected byte
	switch r := 11 - sum%11; r {
	case 11:
		expected = '0'
	case 10:
		expected = 'K'
	default:
		expected = byte('0' + r)
	}
	return check == expected
}
