package phonefield

import (
	"strings"
	"unicode"
)

// DefaultPlusChars are the runes accepted as an international prefix
// marker: ASCII plus and its fullwidth form.
const DefaultPlusChars = "+＋"

// excludedPredicate derives the excluded-rune test from the config. A
// rune is excluded when it is not a decimal digit and not one of the
// configured plus runes; with WithPrefix disabled, plus runes are
// excluded too. Excluded runes are stripped before formatting and are
// never eligible as anchor characters.
func excludedPredicate(cfg Config) func(rune) bool {
	plus := cfg.PlusChars
	if plus == "" {
		plus = DefaultPlusChars
	}
	if !cfg.WithPrefix {
		plus = ""
	}
	return func(r rune) bool {
		if unicode.IsDigit(r) {
			return false
		}
		return !strings.ContainsRune(plus, r)
	}
}

// filterExcluded strips every excluded rune from text, yielding the
// digit stream handed to the formatter and parser.
func filterExcluded(text string, excluded func(rune) bool) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if !excluded(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// spliceRunes replaces length runes starting at start with replacement,
// clamping the range to the buffer. Offsets are rune offsets.
func spliceRunes(text string, start, length int, replacement string) string {
	runes := []rune(text)
	if start < 0 {
		start = 0
	}
	if start > len(runes) {
		start = len(runes)
	}
	end := start + length
	if end > len(runes) {
		end = len(runes)
	}
	return string(runes[:start]) + replacement + string(runes[end:])
}
