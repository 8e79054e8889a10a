package structure

import (
	"html"
	"strconv"
	"strings"
)

// HTML renders the sections as a standalone HTML fragment.
func (a *Article) HTML() string {
	var b strings.Builder
	for _, s := range a.Sections {
		switch s.Kind {
		case KindHeading:
			tag := "h" + strconv.Itoa(s.Level)
			b.WriteString("<" + tag + ">" + html.EscapeString(s.Text) + "</" + tag + ">\n")
		case KindParagraph:
			b.WriteString("<p>" + html.EscapeString(s.Text) + "</p>\n")
		case KindQuote:
			b.WriteString("<blockquote>" + html.EscapeString(s.Text) + "</blockquote>\n")
		case KindList:
			b.WriteString("<ul>\n")
			for _, item := range s.Items {
				b.WriteString("<li>" + html.EscapeString(item) + "</li>\n")
			}
			b.WriteString("</ul>\n")
		case KindImage:
			b.WriteString(`<img src="` + html.EscapeString(s.URL) + `" alt="` + html.EscapeString(s.Alt) + "\">\n")
		}
	}
	return b.String()
}

// PlainText renders the sections with all markup stripped, one blank line
// between sections.
func (a *Article) PlainText() string {
	var parts []string
	for _, s := range a.Sections {
		switch s.Kind {
		case KindHeading, KindParagraph, KindQuote:
			parts = append(parts, s.Text)
		case KindList:
			var lines []string
			for _, item := range s.Items {
				lines = append(lines, "- "+item)
			}
			parts = append(parts, strings.Join(lines, "\n"))
		case KindImage:
			if s.Alt != "" {
				parts = append(parts, "["+s.Alt+"]")
			}
		}
	}
	return strings.Join(parts, "\n\n")
}
