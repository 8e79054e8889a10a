// Package preview is the read-only consumer of a finished article payload.
// The editor hands the payload over as a URL-encoded JSON query parameter;
// anything missing or unparsable is replaced with a fixed sample article so
// the preview surface always renders.
package preview

import (
	"encoding/json"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/quillhq/quill/pkg/article"
)

// ParamName is the query parameter carrying the payload.
const ParamName = "article"

// Payload is the superset the editor serializes for the preview surface.
type Payload struct {
	article.Data

	WordCount   int    `json:"wordCount"`
	ReadingTime int    `json:"readingTime"`
	Author      string `json:"author"`
	CreatedAt   string `json:"createdAt"`
}

// SamplePayload is rendered whenever the hand-off cannot be decoded.
func SamplePayload() Payload {
	return Payload{
		Data: article.Data{
			Title: "Sample Article Title",
			Content: "# Sample Article Title\n\n" +
				"This is a sample article shown because no article data was provided. " +
				"Write something in the editor and preview it again.\n\n" +
				"- Compose your article\n- Check the preview\n- Publish when ready",
			Excerpt:  "This is a sample article shown because no article data was provided.",
			Tags:     []string{"sample"},
			Category: article.DefaultCategory,
			Status:   article.StatusDraft,
		},
		WordCount:   34,
		ReadingTime: 1,
		Author:      "Quill",
		CreatedAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Format(time.RFC3339),
	}
}

// Decoder turns a raw hand-off into a Payload.
type Decoder struct {
	logger *zap.Logger
}

func NewDecoder(logger *zap.Logger) *Decoder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Decoder{logger: logger}
}

// Decode reads the article parameter from query. Decode never fails; a bad
// payload yields the sample article and an error-level diagnostic.
func (d *Decoder) Decode(query url.Values) Payload {
	raw := query.Get(ParamName)
	if raw == "" {
		d.logger.Error("preview payload missing, substituting sample article")
		return SamplePayload()
	}

	var p Payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		d.logger.Error("failed to parse preview payload, substituting sample article", zap.Error(err))
		return SamplePayload()
	}
	if p.Title == "" && p.Content == "" {
		d.logger.Error("preview payload empty, substituting sample article")
		return SamplePayload()
	}
	return p
}

// Encode serializes the state into a query string for the hand-off, the
// inverse of Decode.
func Encode(st article.State, author string, createdAt time.Time) url.Values {
	p := Payload{
		Data:        st.Data,
		WordCount:   st.WordCount,
		ReadingTime: st.ReadingTime,
		Author:      author,
		CreatedAt:   createdAt.Format(time.RFC3339),
	}
	raw, err := json.Marshal(p)
	if err != nil {
		// Payload is a plain value type; this cannot fail at runtime.
		panic(err)
	}
	return url.Values{ParamName: []string{string(raw)}}
}
