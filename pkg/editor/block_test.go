package editor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyOp(t *testing.T, op Op, content string, sel Span) string {
	t.Helper()
	edit, ok := op(content, sel)
	require.True(t, ok)
	got, err := Apply(content, edit)
	require.NoError(t, err)
	return got
}

func TestToggleHeading_PromoteParagraph(t *testing.T) {
	content := "<p>First</p><p>Second</p>"
	sel := Span{Start: 15, End: 15} // caret inside "Second"

	got := applyOp(t, ToggleHeading(2), content, sel)
	assert.Equal(t, "<p>First</p><h2>Second</h2>", got)
}

func TestToggleHeading_SelfInverse(t *testing.T) {
	content := "<p>Some heading text</p>"
	caret := Span{Start: 5, End: 5}

	once := applyOp(t, ToggleHeading(2), content, caret)
	assert.Equal(t, "<h2>Some heading text</h2>", once)

	twice := applyOp(t, ToggleHeading(2), once, caret)
	assert.Equal(t, content, twice)
}

func TestToggleHeading_SwitchLevels(t *testing.T) {
	content := "<h1>Title</h1>"
	got := applyOp(t, ToggleHeading(3), content, Span{Start: 6, End: 6})
	assert.Equal(t, "<h3>Title</h3>", got)
}

func TestToggleHeading_BareTextPromoted(t *testing.T) {
	content := "just some text"
	got := applyOp(t, ToggleHeading(1), content, Span{Start: 5, End: 5})
	assert.Equal(t, "<h1>just some text</h1>", got)
}

func TestToggleHeading_AffectsOnlyOneBlock(t *testing.T) {
	content := "<p>One</p><p>Two</p><p>Three</p>"
	got := applyOp(t, ToggleHeading(1), content, Span{Start: 13, End: 13})
	assert.Equal(t, "<p>One</p><h1>Two</h1><p>Three</p>", got)
}

func TestToggleHeading_InvalidLevelNoOp(t *testing.T) {
	for _, level := range []int{0, 4, -1, 7} {
		_, ok := ToggleHeading(level)("<p>x</p>", Span{Start: 3, End: 3})
		assert.False(t, ok, "level %d", level)
	}
}

func TestToggleHeading_PreservesAttributes(t *testing.T) {
	content := `<p style="text-align: center">Centered</p>`
	got := applyOp(t, ToggleHeading(2), content, Span{Start: 31, End: 31})
	assert.Equal(t, `<h2 style="text-align: center">Centered</h2>`, got)
}

func TestAlign(t *testing.T) {
	content := "<p>One</p><p>Two</p>"
	got := applyOp(t, Align(AlignCenter), content, Span{Start: 13, End: 13})
	assert.Equal(t, `<p>One</p><p style="text-align: center">Two</p>`, got)
}

func TestAlign_ReplacesExistingAlignment(t *testing.T) {
	content := `<p style="text-align: center">Text</p>`
	got := applyOp(t, Align(AlignRight), content, Span{Start: 31, End: 31})
	assert.Equal(t, `<p style="text-align: right">Text</p>`, got)
}

func TestAlign_PreservesOtherStyleProperties(t *testing.T) {
	content := `<p style="color: red">Text</p>`
	got := applyOp(t, Align(AlignJustify), content, Span{Start: 23, End: 23})
	assert.Equal(t, `<p style="color: red; text-align: justify">Text</p>`, got)
}

func TestAlign_BareText(t *testing.T) {
	content := "plain text"
	got := applyOp(t, Align(AlignCenter), content, Span{Start: 2, End: 2})
	assert.Equal(t, `<p style="text-align: center">plain text</p>`, got)
}

func TestAlign_InvalidAlignmentNoOp(t *testing.T) {
	_, ok := Align(Alignment("diagonal"))("<p>x</p>", Span{Start: 3, End: 3})
	assert.False(t, ok)
}

func TestEnclosingBlock_Innermost(t *testing.T) {
	content := "<blockquote><p>quoted words</p></blockquote>"
	pos := strings.Index(content, "quoted") + 1

	blk, ok := enclosingBlock(content, pos)
	require.True(t, ok)
	assert.Equal(t, "p", blk.tag)
}

func TestEnclosingBlock_IgnoresInlineTags(t *testing.T) {
	content := "<p>some <strong>bold</strong> text</p>"
	pos := strings.Index(content, "bold") + 1

	blk, ok := enclosingBlock(content, pos)
	require.True(t, ok)
	assert.Equal(t, "p", blk.tag)
}

func TestBareRun_BetweenElements(t *testing.T) {
	content := "<p>one</p> middle text <p>two</p>"
	pos := strings.Index(content, "middle")

	run, ok := bareRun(content, pos)
	require.True(t, ok)
	assert.Equal(t, "middle text", content[run.Start:run.End])
}

func TestScanTags_MalformedMarkupTolerated(t *testing.T) {
	// An unterminated tag ends the scan rather than panicking.
	tokens := scanTags("<p>fine</p><broke")
	assert.Len(t, tokens, 2)
}
