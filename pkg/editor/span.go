// Package editor applies selection-based formatting to an article's markup
// as pure functions: given a content string and a selection span, an
// operation produces a replacement edit. No rendering surface is involved,
// which keeps every transformation unit-testable.
package editor

import "github.com/pkg/errors"

// Span is a half-open byte range [Start, End) into the content string.
// A collapsed span (Start == End) represents a caret.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (s Span) Len() int { return s.End - s.Start }

func (s Span) Empty() bool { return s.Len() <= 0 }

// Clamp bounds the span to content and orders its ends.
func (s Span) Clamp(content string) Span {
	if s.Start > s.End {
		s.Start, s.End = s.End, s.Start
	}
	if s.Start < 0 {
		s.Start = 0
	}
	if s.End > len(content) {
		s.End = len(content)
	}
	if s.Start > len(content) {
		s.Start = len(content)
	}
	return s
}

// Edit is a single replacement produced by an operation: the Span of the
// original content is replaced by Text, and Sel is the selection after the
// edit, expressed in the new content's coordinates.
type Edit struct {
	Span Span
	Text string
	Sel  Span
}

// Apply performs the edit, returning the new content.
func Apply(content string, e Edit) (string, error) {
	if e.Span.Start < 0 || e.Span.End > len(content) || e.Span.Start > e.Span.End {
		return "", errors.Errorf("edit span [%d, %d) out of bounds for content of length %d", e.Span.Start, e.Span.End, len(content))
	}
	return content[:e.Span.Start] + e.Text + content[e.Span.End:], nil
}

// Op is a formatting operation. It returns the edit to perform and whether
// the operation applies at all; a false second return is a silent no-op
// (empty selection, empty URL), not an error.
type Op func(content string, sel Span) (Edit, bool)
