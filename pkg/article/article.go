package article

import (
	"strings"
	"time"
)

// Status describes the publication lifecycle of an article. Transitions are
// only ever triggered by explicit user action; there is no background
// publisher for scheduled articles.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusScheduled Status = "scheduled"
)

const DefaultCategory = "Technology"

// WordsPerMinute is the reading speed assumed by ReadingTime.
const WordsPerMinute = 200

// Data holds the user-authored fields of an article. Content is an HTML-ish
// markup string and is the single source of truth for rendering and
// persistence. Duplicate tags are preserved as entered.
type Data struct {
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Excerpt     string     `json:"excerpt"`
	Tags        []string   `json:"tags"`
	Category    string     `json:"category"`
	Status      Status     `json:"status"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
}

// State wraps Data with derived, non-authoritative fields. WordCount,
// ReadingTime and SEOScore must always equal a fresh recomputation from Data;
// they have no independent mutation path outside the Store.
type State struct {
	Data

	WordCount   int        `json:"wordCount"`
	ReadingTime int        `json:"readingTime"`
	SEOScore    int        `json:"seoScore"`
	SEOKeywords []string   `json:"seoKeywords"`
	LastSaved   *time.Time `json:"lastSaved"`
}

func DefaultData() Data {
	return Data{
		Tags:     []string{},
		Category: DefaultCategory,
		Status:   StatusDraft,
	}
}

func DefaultState() State {
	return State{
		Data:        DefaultData(),
		SEOKeywords: []string{},
	}
}

// WordCount returns the number of whitespace-delimited non-empty tokens.
func WordCount(content string) int {
	return len(strings.Fields(content))
}

// ReadingTime returns the estimated reading time in minutes, rounded up.
func ReadingTime(words int) int {
	if words <= 0 {
		return 0
	}
	return (words + WordsPerMinute - 1) / WordsPerMinute
}

// Patch is a partial update to Data. Nil fields are left untouched; the
// merge is shallow and performs no field-level validation.
type Patch struct {
	Title    *string
	Content  *string
	Excerpt  *string
	Tags     *[]string
	Category *string
	Status   *Status
}

func (p Patch) apply(d *Data) {
	if p.Title != nil {
		d.Title = *p.Title
	}
	if p.Content != nil {
		d.Content = *p.Content
	}
	if p.Excerpt != nil {
		d.Excerpt = *p.Excerpt
	}
	if p.Tags != nil {
		d.Tags = *p.Tags
	}
	if p.Category != nil {
		d.Category = *p.Category
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
}
