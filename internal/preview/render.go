package preview

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"

	"github.com/quillhq/quill/pkg/structure"
)

// Format selects the export rendering.
type Format string

const (
	FormatHTML Format = "html"
	FormatText Format = "text"
	FormatRTF  Format = "rtf"
)

// Render exports the payload in the requested format.
func Render(p Payload, format Format) ([]byte, error) {
	switch format {
	case FormatHTML:
		return renderHTML(p)
	case FormatText:
		return renderText(p), nil
	case FormatRTF:
		return renderRTF(p), nil
	default:
		return nil, errors.Errorf("unknown preview format: %q", format)
	}
}

func renderHTML(p Payload) ([]byte, error) {
	var body bytes.Buffer
	if err := goldmark.Convert([]byte(p.Content), &body); err != nil {
		return nil, errors.Wrap(err, "failed to convert content to html")
	}

	var b bytes.Buffer
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(p.Title))
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", html.EscapeString(p.Title))
	fmt.Fprintf(&b, "<p class=\"byline\">%s · %d words · %d min read</p>\n",
		html.EscapeString(p.Author), p.WordCount, p.ReadingTime)
	b.Write(body.Bytes())
	b.WriteString("</body>\n</html>\n")
	return b.Bytes(), nil
}

func renderText(p Payload) []byte {
	parsed := structure.Parse(p.Content)

	var b strings.Builder
	b.WriteString(p.Title + "\n")
	b.WriteString(strings.Repeat("=", len(p.Title)) + "\n\n")
	if p.Author != "" {
		fmt.Fprintf(&b, "by %s\n\n", p.Author)
	}
	b.WriteString(parsed.PlainText())
	b.WriteString("\n")
	return []byte(b.String())
}

// renderRTF writes a minimal RTF 1.5 document: headings bold and enlarged,
// quotes indented, list items bulleted.
func renderRTF(p Payload) []byte {
	var b strings.Builder
	b.WriteString(`{\rtf1\ansi\deff0{\fonttbl{\f0 Times New Roman;}}` + "\n")

	writePar := func(prefix, text string) {
		b.WriteString(prefix + escapeRTF(text) + `\par` + "\n")
	}

	writePar(`\f0\fs40\b `, p.Title)
	b.WriteString(`\b0\fs24` + "\n")

	for _, s := range structure.Parse(p.Content).Sections {
		switch s.Kind {
		case structure.KindHeading:
			size := 36 - 4*s.Level
			writePar(fmt.Sprintf(`\fs%d\b `, size), s.Text)
			b.WriteString(`\b0\fs24` + "\n")
		case structure.KindParagraph:
			writePar(`\fs24 `, s.Text)
		case structure.KindQuote:
			writePar(`\li720\i `, s.Text)
			b.WriteString(`\i0\li0` + "\n")
		case structure.KindList:
			for _, item := range s.Items {
				writePar(`\fs24 \bullet  `, item)
			}
		case structure.KindImage:
			if s.Alt != "" {
				writePar(`\i `, "["+s.Alt+"]")
				b.WriteString(`\i0` + "\n")
			}
		}
	}

	b.WriteString("}\n")
	return []byte(b.String())
}

func escapeRTF(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '\\' || r == '{' || r == '}':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r > 127:
			fmt.Fprintf(&b, `\u%d?`, r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
