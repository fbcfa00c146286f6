package phonefield

import (
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

func TestMapPosition(t *testing.T) {
	diffs := []diffmatchpatch.Diff{
		{Type: diffmatchpatch.DiffEqual, Text: "(415) 555"},
		{Type: diffmatchpatch.DiffDelete, Text: "-1"},
	}

	tests := []struct {
		name   string
		oldPos int
		diffs  []diffmatchpatch.Diff
		want   int
	}{
		{"Inside equal block", 4, diffs, 4},
		{"Start of deleted block collapses", 9, diffs, 9},
		{"Inside deleted block collapses", 10, diffs, 9},
		{"Past all diffs maps to new end", 11, diffs, 9},
		{
			name:   "After an insertion",
			oldPos: 10,
			diffs: []diffmatchpatch.Diff{
				{Type: diffmatchpatch.DiffEqual, Text: "(415) 555-"},
				{Type: diffmatchpatch.DiffInsert, Text: "1"},
			},
			want: 11,
		},
		{
			name:   "Equal block after a deletion shifts left",
			oldPos: 4,
			diffs: []diffmatchpatch.Diff{
				{Type: diffmatchpatch.DiffEqual, Text: "415"},
				{Type: diffmatchpatch.DiffDelete, Text: "-"},
				{Type: diffmatchpatch.DiffEqual, Text: "555"},
			},
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapPosition(tt.oldPos, tt.diffs); got != tt.want {
				t.Errorf("mapPosition(%d) = %d; want %d", tt.oldPos, got, tt.want)
			}
		})
	}
}

func TestFallbackCursor(t *testing.T) {
	tests := []struct {
		name      string
		oldText   string
		newText   string
		oldCursor int
		want      int
	}{
		{"Append lands at end", "(415) 555-", "(415) 555-1", 10, 11},
		{"Unchanged buffer keeps cursor", "415-555", "415-555", 4, 4},
		{"Separator removed before cursor", "415-555", "415555", 4, 3},
		{"Cursor inside removed run collapses", "415-555", "415", 5, 3},
		{"Empty old buffer", "", "415", 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fallbackCursor(tt.oldText, tt.newText, tt.oldCursor); got != tt.want {
				t.Errorf("fallbackCursor(%q, %q, %d) = %d; want %d",
					tt.oldText, tt.newText, tt.oldCursor, got, tt.want)
			}
		})
	}
}

func TestRuneByteOffsets(t *testing.T) {
	const text = "＋415" // leading fullwidth plus is three bytes

	if got := runeToByteOffset(text, 1); got != 3 {
		t.Errorf("runeToByteOffset(%q, 1) = %d; want 3", text, got)
	}
	if got := runeToByteOffset(text, 99); got != len(text) {
		t.Errorf("runeToByteOffset(%q, 99) = %d; want %d", text, got, len(text))
	}
	if got := byteToRuneOffset(text, 3); got != 1 {
		t.Errorf("byteToRuneOffset(%q, 3) = %d; want 1", text, got)
	}
	if got := byteToRuneOffset(text, 1); got != 0 {
		t.Errorf("byteToRuneOffset(%q, 1) = %d; want 0", text, got)
	}
	if got := byteToRuneOffset(text, 99); got != 4 {
		t.Errorf("byteToRuneOffset(%q, 99) = %d; want 4", text, got)
	}
}
