package phonefield

import (
	"errors"
	"strings"
	"unicode"

	phonenumbers "github.com/nyaruka/phonenumbers/v2"
)

// ErrInvalidNumber is returned by LibParser when a number parses but
// does not match a valid pattern for its region.
var ErrInvalidNumber = errors.New("phonefield: not a valid number for region")

// LibFormatter implements PartialFormatter on top of libphonenumber's
// as-you-type formatter. The whole digit stream is replayed on every
// call, which makes the result a pure function of (region, digits) and
// idempotent under re-filtering.
type LibFormatter struct{}

// FormatPartial formats an in-progress digit stream for a region. A
// maxDigits of 0 means no cap; a leading plus rune does not count toward
// the cap.
func (LibFormatter) FormatPartial(region string, maxDigits int, digits string) string {
	digits = capDigits(digits, maxDigits)
	if digits == "" {
		return ""
	}
	formatter := phonenumbers.GetAsYouTypeFormatter(region)
	var out string
	for _, r := range digits {
		out = formatter.InputDigit(r)
	}
	return out
}

// capDigits truncates the stream after max digit runes. Plus runes pass
// through without counting.
func capDigits(digits string, max int) string {
	if max <= 0 {
		return digits
	}
	var b strings.Builder
	count := 0
	for _, r := range digits {
		if unicode.IsDigit(r) {
			if count == max {
				break
			}
			count++
		}
		b.WriteRune(r)
	}
	return b.String()
}

// LibParser implements NumberParser on top of libphonenumber's full
// parser. libphonenumber parses bare partial input like "555" without
// complaint, so validity additionally requires IsValidNumber.
type LibParser struct{}

// Parse returns nil when number parses and is valid for region.
func (LibParser) Parse(number, region string) error {
	parsed, err := phonenumbers.Parse(number, region)
	if err != nil {
		return err
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return ErrInvalidNumber
	}
	return nil
}
