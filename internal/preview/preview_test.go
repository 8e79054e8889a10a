package preview

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill/pkg/article"
)

func TestDecode_RoundTripsEncodedState(t *testing.T) {
	st := article.DefaultState()
	st.Title = "Hand-Off"
	st.Content = "# Hand-Off\n\nbody text"
	st.Tags = []string{"go"}
	st.WordCount = 4
	st.ReadingTime = 1

	created := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	query := Encode(st, "Ada", created)

	got := NewDecoder(nil).Decode(query)
	assert.Equal(t, "Hand-Off", got.Title)
	assert.Equal(t, st.Content, got.Content)
	assert.Equal(t, "Ada", got.Author)
	assert.Equal(t, 4, got.WordCount)
	assert.Equal(t, created.Format(time.RFC3339), got.CreatedAt)
}

func TestDecode_MissingParamYieldsSample(t *testing.T) {
	got := NewDecoder(nil).Decode(url.Values{})
	assert.Equal(t, "Sample Article Title", got.Title)
}

func TestDecode_UnparsablePayloadYieldsSample(t *testing.T) {
	got := NewDecoder(nil).Decode(url.Values{ParamName: []string{"{broken json"}})
	assert.Equal(t, "Sample Article Title", got.Title)
}

func TestDecode_EmptyPayloadYieldsSample(t *testing.T) {
	got := NewDecoder(nil).Decode(url.Values{ParamName: []string{"{}"}})
	assert.Equal(t, "Sample Article Title", got.Title)
}

func payload() Payload {
	return Payload{
		Data: article.Data{
			Title:   "Title & Co",
			Content: "# Heading\n\npara text\n\n- one\n- two\n\n> a quote",
		},
		Author:      "Ada",
		WordCount:   9,
		ReadingTime: 1,
	}
}

func TestRender_HTML(t *testing.T) {
	out, err := Render(payload(), FormatHTML)
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "<title>Title &amp; Co</title>")
	assert.Contains(t, s, "<h1>Heading</h1>")
	assert.Contains(t, s, "<li>one</li>")
	assert.Contains(t, s, "Ada · 9 words · 1 min read")
}

func TestRender_Text(t *testing.T) {
	out, err := Render(payload(), FormatText)
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "Title & Co\n==========")
	assert.Contains(t, s, "by Ada")
	assert.Contains(t, s, "- one\n- two")
	assert.NotContains(t, s, "<")
}

func TestRender_RTF(t *testing.T) {
	out, err := Render(payload(), FormatRTF)
	require.NoError(t, err)

	s := string(out)
	assert.True(t, len(s) > 0)
	assert.Contains(t, s, `{\rtf1`)
	assert.Contains(t, s, `\bullet  one\par`)
	assert.Contains(t, s, "Heading")
	assert.Contains(t, s, `\li720\i a quote\par`)
}

func TestRender_RTFEscaping(t *testing.T) {
	p := payload()
	p.Content = `braces {and} backslash \ here`
	out, err := Render(p, FormatRTF)
	require.NoError(t, err)
	assert.Contains(t, string(out), `braces \{and\} backslash \\ here`)
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := Render(payload(), Format("docx"))
	require.Error(t, err)
}
