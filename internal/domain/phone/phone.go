// Package phone validates Kenyan mobile numbers and normalizes them to 254XXXXXXXXX.
package phone

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

var ErrInvalidPhone = errors.New("invalid phone number")

var (
	localPattern         = regexp.MustCompile(`^0[17]\d{8}$`)
	internationalPattern = regexp.MustCompile(`^\+?254[17]\d{8}$`)
)

// Normalize validates raw and returns it as twelve digits prefixed with 254.
//
// Accepted forms, whitespace ignored: 07XXXXXXXX, 01XXXXXXXX, 2547XXXXXXXX,
// 2541XXXXXXXX and the same international forms with a leading +.
func Normalize(raw string) (string, error) {
	s := stripSpaces(raw)
	switch {
	case localPattern.MatchString(s):
		return "254" + s[1:], nil
	case internationalPattern.MatchString(s):
		return strings.TrimPrefix(s, "+"), nil
	default:
		return "", ErrInvalidPhone
	}
}

func IsValid(raw string) bool {
	_, err := Normalize(raw)
	return err == nil
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
