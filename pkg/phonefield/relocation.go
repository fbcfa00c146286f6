package phonefield

// Relocate maps an anchor onto the post-edit buffer: scan newText
// right-to-left counting occurrences of the anchor character, and return
// the rune offset of the occurrence that makes the count reach
// RepetitionFromEnd. The cursor belongs immediately before that rune.
// The scan direction and strictly increasing count make the result
// deterministic for a fixed buffer and anchor.
//
// The second return is false when the required occurrence count is never
// reached, which can only happen if digits were actually added or
// removed between the anchor and the end of the buffer; the caller falls
// back to a default cursor position.
func Relocate(a Anchor, newText string) (int, bool) {
	if a.RepetitionFromEnd < 1 {
		return 0, false
	}
	runes := []rune(newText)
	seen := 0
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] != a.Char {
			continue
		}
		seen++
		if seen == a.RepetitionFromEnd {
			return i, true
		}
	}
	return 0, false
}
