package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInlineOps(t *testing.T) {
	content := "hello brave world"
	sel := Span{Start: 6, End: 11} // "brave"

	tests := []struct {
		name     string
		op       Op
		expected string
	}{
		{"bold", Bold(), "hello <strong>brave</strong> world"},
		{"italic", Italic(), "hello <em>brave</em> world"},
		{"underline", Underline(), "hello <u>brave</u> world"},
		{"blockquote", Blockquote(), "hello <blockquote>brave</blockquote> world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edit, ok := tt.op(content, sel)
			require.True(t, ok)
			got, err := Apply(content, edit)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			// The new selection re-covers the original text.
			assert.Equal(t, "brave", got[edit.Sel.Start:edit.Sel.End])
		})
	}
}

func TestInlineOps_EmptySelectionNoOp(t *testing.T) {
	content := "hello world"

	for _, op := range []Op{Bold(), Italic(), Underline(), Blockquote()} {
		_, ok := op(content, Span{Start: 5, End: 5})
		assert.False(t, ok)
	}
}

func TestList(t *testing.T) {
	content := "first\n\n  \nsecond\nthird"
	sel := Span{Start: 0, End: len(content)}

	edit, ok := List(false)(content, sel)
	require.True(t, ok)
	got, err := Apply(content, edit)
	require.NoError(t, err)
	assert.Equal(t, "<ul><li>first</li><li>second</li><li>third</li></ul>", got)

	edit, ok = List(true)(content, sel)
	require.True(t, ok)
	got, err = Apply(content, edit)
	require.NoError(t, err)
	assert.Equal(t, "<ol><li>first</li><li>second</li><li>third</li></ol>", got)
}

func TestList_OnlyBlankLinesNoOp(t *testing.T) {
	content := "   \n\n\t\n"
	_, ok := List(false)(content, Span{Start: 0, End: len(content)})
	assert.False(t, ok)
}

func TestInsertLink(t *testing.T) {
	content := "click here please"
	sel := Span{Start: 6, End: 10} // "here"

	edit, ok := InsertLink("", "https://example.com", true)(content, sel)
	require.True(t, ok)
	got, err := Apply(content, edit)
	require.NoError(t, err)
	assert.Equal(t, `click <a href="https://example.com" target="_blank">here</a> please`, got)
}

func TestInsertLink_SameTab(t *testing.T) {
	edit, ok := InsertLink("docs", "https://example.com/docs", false)("", Span{})
	require.True(t, ok)
	got, err := Apply("", edit)
	require.NoError(t, err)
	assert.Equal(t, `<a href="https://example.com/docs" target="_self">docs</a>`, got)
}

func TestInsertLink_DefaultsToLiteralLink(t *testing.T) {
	edit, ok := InsertLink("", "https://example.com", false)("", Span{})
	require.True(t, ok)
	got, err := Apply("", edit)
	require.NoError(t, err)
	assert.Equal(t, `<a href="https://example.com" target="_self">Link</a>`, got)
}

func TestInsertLink_EmptyURLNoOp(t *testing.T) {
	_, ok := InsertLink("text", "  ", true)("content", Span{Start: 0, End: 7})
	assert.False(t, ok)
}

func TestInsertImage(t *testing.T) {
	content := "before after"
	edit, ok := InsertImage("https://cdn.example.com/a.png", "a diagram")(content, Span{Start: 7, End: 7})
	require.True(t, ok)
	got, err := Apply(content, edit)
	require.NoError(t, err)
	assert.Equal(t, `before <img src="https://cdn.example.com/a.png" alt="a diagram">after`, got)
}

func TestInsertImage_ReplacesNothingAtSelection(t *testing.T) {
	// Even with a non-empty selection the image goes in at the caret; the
	// selected text stays.
	content := "keep me"
	edit, ok := InsertImage("https://x.test/i.png", "")(content, Span{Start: 0, End: 4})
	require.True(t, ok)
	got, err := Apply(content, edit)
	require.NoError(t, err)
	assert.Contains(t, got, "keep me")
}

func TestApply_OutOfBounds(t *testing.T) {
	_, err := Apply("abc", Edit{Span: Span{Start: 2, End: 10}, Text: "x"})
	require.Error(t, err)
}

func TestSpanClamp(t *testing.T) {
	content := "abcde"
	assert.Equal(t, Span{Start: 1, End: 3}, Span{Start: 3, End: 1}.Clamp(content))
	assert.Equal(t, Span{Start: 0, End: 5}, Span{Start: -2, End: 99}.Clamp(content))
}
