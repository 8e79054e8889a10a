package editor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurface_ApplyUndoRedo(t *testing.T) {
	s := NewSurface("hello brave world")
	s.Select(Span{Start: 6, End: 11})

	require.True(t, s.Apply(Bold()))
	assert.Equal(t, "hello <strong>brave</strong> world", s.Content())

	require.True(t, s.Undo())
	assert.Equal(t, "hello brave world", s.Content())
	assert.Equal(t, Span{Start: 6, End: 11}, s.Selection())

	require.True(t, s.Redo())
	assert.Equal(t, "hello <strong>brave</strong> world", s.Content())
}

func TestSurface_EveryOpRoundTrips(t *testing.T) {
	ops := map[string]Op{
		"bold":       Bold(),
		"italic":     Italic(),
		"underline":  Underline(),
		"blockquote": Blockquote(),
		"list":       List(false),
		"heading":    ToggleHeading(2),
		"align":      Align(AlignRight),
		"link":       InsertLink("", "https://example.com", true),
		"image":      InsertImage("https://example.com/i.png", "pic"),
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			original := "<p>alpha beta gamma</p>"
			s := NewSurface(original)
			s.Select(Span{Start: 9, End: 13}) // "beta"

			require.True(t, s.Apply(op))
			mutated := s.Content()
			require.NotEqual(t, original, mutated)

			require.True(t, s.Undo())
			assert.Equal(t, original, s.Content())

			require.True(t, s.Redo())
			assert.Equal(t, mutated, s.Content())
		})
	}
}

func TestSurface_NoOpDoesNotTouchHistory(t *testing.T) {
	s := NewSurface("text")
	s.Select(Span{Start: 2, End: 2})

	assert.False(t, s.Apply(Bold()))
	assert.False(t, s.Undo())
}

func TestSurface_NewOpClearsRedo(t *testing.T) {
	s := NewSurface("one two three")

	s.Select(Span{Start: 0, End: 3})
	require.True(t, s.Apply(Bold()))
	require.True(t, s.Undo())

	s.Select(Span{Start: 4, End: 7})
	require.True(t, s.Apply(Italic()))

	assert.False(t, s.Redo())
}

func TestHistory_Bounded(t *testing.T) {
	h := NewHistory(3)
	content := ""
	for i := 0; i < 5; i++ {
		text := fmt.Sprintf("%d", i)
		cmd := Command{Span: Span{Start: len(content), End: len(content)}, Old: "", New: text}
		var err error
		content, err = Apply(content, Edit{Span: cmd.Span, Text: cmd.New})
		require.NoError(t, err)
		h.Push(cmd)
	}
	assert.Equal(t, "01234", content)

	// Only the last three commands are retained.
	undone := 0
	for {
		next, _, ok := h.Undo(content)
		if !ok {
			break
		}
		content = next
		undone++
	}
	assert.Equal(t, 3, undone)
	assert.Equal(t, "01", content)
}

func TestHistory_UndoOnDivergedContentDropsStack(t *testing.T) {
	h := NewHistory(10)
	h.Push(Command{Span: Span{Start: 90, End: 95}, Old: "aaaaa", New: "bbbbb"})

	_, _, ok := h.Undo("short")
	assert.False(t, ok)
	assert.False(t, h.CanUndo())
}
