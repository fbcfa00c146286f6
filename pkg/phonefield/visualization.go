package phonefield

import (
	"strings"
)

// ANSI color codes
const (
	inverse = "\033[7m"
	reset   = "\033[0m"
)

// VisualizeCursor renders text with the rune at the cursor position
// shown in inverse video, the way a terminal block cursor would sit on
// it. A cursor at the end of the buffer is shown as an inverted space.
// Out-of-range positions are clamped.
func VisualizeCursor(text string, cursor int) string {
	runes := []rune(text)
	cursor = clampCursor(cursor, text)

	var builder strings.Builder
	builder.WriteString(string(runes[:cursor]))
	builder.WriteString(inverse)
	if cursor < len(runes) {
		builder.WriteRune(runes[cursor])
	} else {
		builder.WriteByte(' ')
	}
	builder.WriteString(reset)
	if cursor < len(runes) {
		builder.WriteString(string(runes[cursor+1:]))
	}
	return builder.String()
}
