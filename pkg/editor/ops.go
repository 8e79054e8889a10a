package editor

import (
	"html"
	"strings"
)

// Inline formatting wraps the selected markup in a tag pair. All inline ops
// no-op on an empty selection.

func Bold() Op       { return inlineWrap("strong") }
func Italic() Op     { return inlineWrap("em") }
func Underline() Op  { return inlineWrap("u") }
func Blockquote() Op { return inlineWrap("blockquote") }

func inlineWrap(tag string) Op {
	return func(content string, sel Span) (Edit, bool) {
		sel = sel.Clamp(content)
		if sel.Empty() {
			return Edit{}, false
		}
		selected := content[sel.Start:sel.End]
		open := "<" + tag + ">"
		text := open + selected + "</" + tag + ">"
		return Edit{
			Span: sel,
			Text: text,
			// Reselect the original text inside the new tag pair.
			Sel: Span{
				Start: sel.Start + len(open),
				End:   sel.Start + len(open) + len(selected),
			},
		}, true
	}
}

// List converts the selected lines into a list. Blank lines are discarded;
// each remaining line becomes an item. ordered selects <ol> over <ul>.
func List(ordered bool) Op {
	return func(content string, sel Span) (Edit, bool) {
		sel = sel.Clamp(content)
		if sel.Empty() {
			return Edit{}, false
		}

		var items []string
		for _, line := range strings.Split(content[sel.Start:sel.End], "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			items = append(items, "<li>"+line+"</li>")
		}
		if len(items) == 0 {
			return Edit{}, false
		}

		tag := "ul"
		if ordered {
			tag = "ol"
		}
		text := "<" + tag + ">" + strings.Join(items, "") + "</" + tag + ">"
		return Edit{
			Span: sel,
			Text: text,
			Sel:  Span{Start: sel.Start, End: sel.Start + len(text)},
		}, true
	}
}

// InsertLink replaces the selection with an anchor. The link text falls back
// to the selected text, then to the literal "Link". An empty URL is a no-op.
func InsertLink(text, url string, newTab bool) Op {
	return func(content string, sel Span) (Edit, bool) {
		if strings.TrimSpace(url) == "" {
			return Edit{}, false
		}
		sel = sel.Clamp(content)

		label := text
		if label == "" {
			label = content[sel.Start:sel.End]
		}
		if label == "" {
			label = "Link"
		} else {
			label = html.EscapeString(label)
		}

		target := "_self"
		if newTab {
			target = "_blank"
		}
		markup := `<a href="` + html.EscapeString(url) + `" target="` + target + `">` + label + `</a>`
		return Edit{
			Span: sel,
			Text: markup,
			Sel:  Span{Start: sel.Start + len(markup), End: sel.Start + len(markup)},
		}, true
	}
}

// InsertImage inserts an image element at the caret (the selection start).
// The upload flow that produced the URL is the caller's concern.
func InsertImage(url, alt string) Op {
	return func(content string, sel Span) (Edit, bool) {
		if strings.TrimSpace(url) == "" {
			return Edit{}, false
		}
		sel = sel.Clamp(content)

		markup := `<img src="` + html.EscapeString(url) + `" alt="` + html.EscapeString(alt) + `">`
		caret := Span{Start: sel.Start, End: sel.Start}
		return Edit{
			Span: caret,
			Text: markup,
			Sel:  Span{Start: sel.Start + len(markup), End: sel.Start + len(markup)},
		}, true
	}
}
