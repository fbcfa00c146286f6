package phonefield

// Anchor describes which character the cursor sits before, independent of
// absolute position: "the Nth occurrence of Char counting from the end of
// the buffer". Reformatting only inserts or removes separators between
// digits, so this description survives a reformat while a raw offset does
// not. An Anchor is only meaningful relative to the buffer it was
// extracted from; extract a fresh one before every relocation.
type Anchor struct {
	Char              rune // First non-excluded rune at or after the cursor
	RepetitionFromEnd int  // Nth-from-the-end occurrence of Char, >= 1
}

// Config is the host-settable configuration consumed per edit. It is read
// during ApplyEdit and never written by this package.
type Config struct {
	Region         string // ISO 3166-1 region for formatting and parsing, e.g. "US"
	WithPrefix     bool   // Allow international prefix runes (PlusChars) in the digit stream
	MaxDigits      int    // Cap on formatted digits; 0 means no cap
	FormatEnabled  bool   // When false, edits are committed raw with no reformatting
	PlusChars      string // Runes accepted as international prefix; empty means DefaultPlusChars
	InvalidMessage string // Shown via ErrorPresenter after an invalid commit; empty disables the popup
}

// PartialFormatter progressively punctuates an in-progress digit stream
// into a locale-plausible phone number. It must be idempotent on an
// already-formatted stream of the same digits and region.
type PartialFormatter interface {
	FormatPartial(region string, maxDigits int, digits string) string
}

// NumberParser validates a complete digit stream for a region. A nil
// return means the number parsed and is valid; any non-nil error only
// flips the validity signal, it is never propagated further.
type NumberParser interface {
	Parse(number, region string) error
}

// EditDelegate may veto an edit before anything is computed. A false
// return leaves buffer and cursor untouched.
type EditDelegate interface {
	ShouldChange(text string, start, length int, replacement string) bool
}

// ErrorPresenter is the narrow capability surface of the host's error
// popup. The orchestration layer calls ShowError after an invalid commit
// and Dismiss after a valid one; rendering is entirely the host's affair.
type ErrorPresenter interface {
	ShowError(message string)
	Dismiss()
}
