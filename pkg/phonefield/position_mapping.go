package phonefield

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// fallbackCursor is the default placement used when no anchor exists or
// relocation misses: the old cursor is mapped through a character-level
// diff of the old buffer against the committed buffer. For a pure append
// this degenerates to end-of-buffer.
func fallbackCursor(oldText, newText string, oldCursor int) int {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldText, newText, false)
	newByte := mapPosition(runeToByteOffset(oldText, oldCursor), diffs)
	return byteToRuneOffset(newText, newByte)
}

// mapPosition translates a byte offset in the old text to its
// corresponding byte offset in the new text based on the provided diffs.
// Offsets inside a deleted section collapse to the position right before
// the deletion; offsets past every diff map to the end of the new text.
func mapPosition(oldPos int, diffs []diffmatchpatch.Diff) int {
	currentOldPos := 0
	currentNewPos := 0

	for _, diff := range diffs {
		diffLen := len(diff.Text)
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			if oldPos >= currentOldPos && oldPos < currentOldPos+diffLen {
				return currentNewPos
			}
			currentOldPos += diffLen
		case diffmatchpatch.DiffInsert:
			currentNewPos += diffLen
		case diffmatchpatch.DiffEqual:
			if oldPos >= currentOldPos && oldPos < currentOldPos+diffLen {
				return currentNewPos + (oldPos - currentOldPos)
			}
			currentOldPos += diffLen
			currentNewPos += diffLen
		}
	}
	if oldPos >= currentOldPos {
		return currentNewPos
	}
	return currentNewPos
}

// runeToByteOffset converts a rune offset into a byte offset, clamping to
// the ends of text.
func runeToByteOffset(text string, runeOffset int) int {
	if runeOffset <= 0 {
		return 0
	}
	count := 0
	for i := range text {
		if count == runeOffset {
			return i
		}
		count++
	}
	return len(text)
}

// byteToRuneOffset converts a byte offset into a rune offset, clamping to
// the ends of text. A byte offset inside a rune maps to that rune's index.
func byteToRuneOffset(text string, byteOffset int) int {
	if byteOffset <= 0 {
		return 0
	}
	count := 0
	for i := range text {
		if i >= byteOffset {
			return count
		}
		count++
	}
	return count
}
