package phonefield

import (
	"log"
)

// Field is the editable phone-number buffer plus the edit orchestration
// around it. It holds the committed text and cursor between edits; the
// anchoring and relocation values themselves are created fresh per edit
// and never outlive ApplyEdit. Collaborators and observers are plain
// fields so the host can swap them; all of them are nil-safe except
// Formatter, which every formatted edit needs.
//
// Single-threaded by design: the host serializes edit events, and every
// edit runs to completion inside one ApplyEdit call.
type Field struct {
	text   string
	cursor int

	Config Config

	Formatter PartialFormatter
	Parser    NumberParser
	Delegate  EditDelegate
	Presenter ErrorPresenter

	OnValueChanged    func()
	OnValidityChanged func(valid bool)
}

// NewField returns a Field wired to the given collaborators.
func NewField(formatter PartialFormatter, parser NumberParser, cfg Config) *Field {
	return &Field{Config: cfg, Formatter: formatter, Parser: parser}
}

// Text returns the committed buffer.
func (f *Field) Text() string {
	return f.text
}

// Cursor returns the committed cursor position as a rune offset.
func (f *Field) Cursor() int {
	return f.cursor
}

// SetCursor moves the cursor, clamped to the buffer.
func (f *Field) SetCursor(pos int) {
	f.cursor = clampCursor(pos, f.text)
}

// SetText replaces the buffer without running the edit pipeline; the
// cursor is clamped. Hosts use this for initial population, then drive
// everything else through ApplyEdit.
func (f *Field) SetText(text string) {
	f.text = text
	f.cursor = clampCursor(f.cursor, text)
}

// ApplyEdit handles one edit proposal: replace length runes starting at
// start with replacement. It returns false only when the delegate vetoes
// the edit; every other outcome commits a buffer and cursor and fires
// both observer signals exactly once.
func (f *Field) ApplyEdit(start, length int, replacement string) bool {
	// 1. Delegate veto: buffer and cursor stay untouched, no signals.
	if f.Delegate != nil && !f.Delegate.ShouldChange(f.text, start, length, replacement) {
		log.Printf("DEBUG: delegate rejected edit [%d,+%d) -> %q", start, length, replacement)
		return false
	}

	oldText := f.text
	oldCursor := f.cursor
	excluded := excludedPredicate(f.Config)

	// 2. With formatting disabled the raw edit is committed unmodified
	// and no anchor/relocate logic runs; the cursor lands right after
	// the replacement text.
	if !f.Config.FormatEnabled {
		committed := spliceRunes(oldText, start, length, replacement)
		f.commit(committed, start+len([]rune(replacement)), filterExcluded(committed, excluded))
		return true
	}

	// 3. Anchor from the pre-edit buffer and pre-edit cursor. Absence
	// is normal (cursor at or past the last digit).
	anchor, hasAnchor := ExtractAnchor(oldText, oldCursor, excluded)
	log.Printf("DEBUG: anchor=%+v found=%v for edit [%d,+%d) -> %q", anchor, hasAnchor, start, length, replacement)

	// 4. Raw splice, then strip excluded runes to get the digit stream.
	intermediate := spliceRunes(oldText, start, length, replacement)
	digits := filterExcluded(intermediate, excluded)

	// 5. Partial format of the digit stream.
	formatted := f.Formatter.FormatPartial(f.Config.Region, f.Config.MaxDigits, digits)

	// 6. Deleting exactly one separator bypasses reformatting; the
	// formatter would otherwise resurrect the separator the user just
	// removed and backspace would appear to do nothing.
	committed := formatted
	if replacement == "" && length == 1 {
		if removed, ok := runeAt(oldText, start); ok && excluded(removed) {
			log.Printf("DEBUG: separator %q deleted, committing unformatted buffer", string(removed))
			committed = intermediate
		}
	}

	// 7/8. Relocate the anchor onto the committed buffer; on a miss (or
	// with no anchor) map the old cursor through a diff of old against
	// committed text.
	cursor, ok := 0, false
	if hasAnchor {
		cursor, ok = Relocate(anchor, committed)
	}
	if !ok {
		cursor = fallbackCursor(oldText, committed, oldCursor)
	}

	f.commit(committed, cursor, digits)
	return true
}

// commit stores the buffer and cursor as one atomic update, then fires
// the value-changed and validity signals, each exactly once.
func (f *Field) commit(text string, cursor int, digits string) {
	f.text = text
	f.cursor = clampCursor(cursor, text)
	log.Printf("DEBUG: committed %q cursor=%d", text, f.cursor)

	if f.OnValueChanged != nil {
		f.OnValueChanged()
	}

	// Parse failure is not a fault, it only flips the validity signal.
	var err error
	if f.Parser != nil {
		err = f.Parser.Parse(digits, f.Config.Region)
	}
	valid := err == nil
	if err != nil {
		log.Printf("DEBUG: parse rejected %q for region %q: %v", digits, f.Config.Region, err)
	}
	if f.OnValidityChanged != nil {
		f.OnValidityChanged(valid)
	}
	if f.Presenter != nil {
		if valid {
			f.Presenter.Dismiss()
		} else if f.Config.InvalidMessage != "" {
			f.Presenter.ShowError(f.Config.InvalidMessage)
		}
	}
}

// runeAt returns the rune at a rune offset, false when out of range.
func runeAt(text string, offset int) (rune, bool) {
	if offset < 0 {
		return 0, false
	}
	count := 0
	for _, r := range text {
		if count == offset {
			return r, true
		}
		count++
	}
	return 0, false
}

// clampCursor keeps a rune offset within [0, len] of text.
func clampCursor(pos int, text string) int {
	if pos < 0 {
		return 0
	}
	if n := len([]rune(text)); pos > n {
		return n
	}
	return pos
}
