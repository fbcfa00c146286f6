package phonefield

// ExtractAnchor captures a position-independent anchor from the pre-edit
// buffer: scanning forward from cursor, the first non-excluded rune
// becomes the anchor character, and its literal occurrences from that
// position to the end of the buffer (inclusive) become the
// repetition count. The second return is false when the cursor is out of
// range or no eligible rune exists at or after it, e.g. the cursor is
// already past the last digit.
//
// Offsets are rune offsets; cursor == len(text) in runes is a valid
// "end of buffer" position that always yields no anchor.
func ExtractAnchor(text string, cursor int, excluded func(rune) bool) (Anchor, bool) {
	runes := []rune(text)
	if cursor < 0 || cursor > len(runes) {
		return Anchor{}, false
	}
	for i := cursor; i < len(runes); i++ {
		if excluded(runes[i]) {
			continue
		}
		anchor := Anchor{Char: runes[i], RepetitionFromEnd: 0}
		// Literal equality here, not the excluded/non-excluded class:
		// the count must survive separator insertion and removal, which
		// only preserves the digit sequence itself.
		for j := i; j < len(runes); j++ {
			if runes[j] == anchor.Char {
				anchor.RepetitionFromEnd++
			}
		}
		return anchor, true
	}
	return Anchor{}, false
}
