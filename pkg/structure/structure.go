// Package structure parses raw article content into typed sections. The
// sections are a transient, read-time representation used for metric and
// SEO computation and alternate-format export; the live editing store keeps
// the raw markup and the two are never kept consistent as shared state.
package structure

import "strings"

type Kind int

const (
	KindHeading Kind = iota + 1
	KindParagraph
	KindList
	KindQuote
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	case KindList:
		return "list"
	case KindQuote:
		return "quote"
	case KindImage:
		return "image"
	default:
		return "unknown"
	}
}

// Section is a tagged variant: Level and Text are set for headings, Text for
// paragraphs and quotes, Items for lists, URL and Alt for images.
type Section struct {
	Kind  Kind     `json:"kind"`
	Level int      `json:"level,omitempty"`
	Text  string   `json:"text,omitempty"`
	Items []string `json:"items,omitempty"`
	URL   string   `json:"url,omitempty"`
	Alt   string   `json:"alt,omitempty"`
}

// Article is the structured form of a content string.
type Article struct {
	Title    string    `json:"title"`
	Excerpt  string    `json:"excerpt"`
	Sections []Section `json:"sections"`

	// WordCount is the parser's running counter. Heading lines are counted
	// raw, marker included; all other sections are counted on their content.
	WordCount int `json:"wordCount"`
}

const (
	titleLimit   = 100
	excerptLimit = 160
)

// Parse splits content into sections line by line. Markdown-like prefixes
// are recognized: "# ".."### " headings, "> " quotes, contiguous "- "/"* "
// runs as lists, "![alt](url)" images; a blank line closes the current
// paragraph and everything else accumulates into it.
func Parse(content string) *Article {
	a := &Article{}

	var para []string
	var list []string

	flushPara := func() {
		if len(para) == 0 {
			return
		}
		text := strings.Join(para, " ")
		para = para[:0]
		a.Sections = append(a.Sections, Section{Kind: KindParagraph, Text: text})
		a.WordCount += countWords(text)
	}
	flushList := func() {
		if len(list) == 0 {
			return
		}
		items := list
		list = nil
		a.Sections = append(a.Sections, Section{Kind: KindList, Items: items})
	}

	for _, rawLine := range strings.Split(content, "\n") {
		line := strings.TrimRight(rawLine, " \t\r")
		trimmed := strings.TrimSpace(line)

		if item, ok := listItem(trimmed); ok {
			flushPara()
			list = append(list, item)
			a.WordCount += countWords(item)
			continue
		}
		flushList()

		switch {
		case trimmed == "":
			flushPara()

		case strings.HasPrefix(trimmed, "# "):
			flushPara()
			a.addHeading(1, trimmed)

		case strings.HasPrefix(trimmed, "## "):
			flushPara()
			a.addHeading(2, trimmed)

		case strings.HasPrefix(trimmed, "### "):
			flushPara()
			a.addHeading(3, trimmed)

		case strings.HasPrefix(trimmed, "> "):
			flushPara()
			text := strings.TrimPrefix(trimmed, "> ")
			a.Sections = append(a.Sections, Section{Kind: KindQuote, Text: text})
			a.WordCount += countWords(text)

		default:
			if url, alt, ok := imageLine(trimmed); ok {
				flushPara()
				a.Sections = append(a.Sections, Section{Kind: KindImage, URL: url, Alt: alt})
				continue
			}
			para = append(para, trimmed)
		}
	}
	flushList()
	flushPara()

	a.deriveTitleAndExcerpt()
	return a
}

func (a *Article) addHeading(level int, raw string) {
	text := strings.TrimSpace(raw[level+1:])
	a.Sections = append(a.Sections, Section{Kind: KindHeading, Level: level, Text: text})
	// The counter runs over the raw line here, marker included.
	a.WordCount += countWords(raw)
}

func (a *Article) deriveTitleAndExcerpt() {
	firstPara := ""
	for _, s := range a.Sections {
		if s.Kind == KindHeading && s.Level == 1 && a.Title == "" {
			a.Title = s.Text
		}
		if s.Kind == KindParagraph && firstPara == "" {
			firstPara = s.Text
		}
	}

	if a.Title == "" {
		a.Title = truncate(firstPara, titleLimit)
	}
	a.Excerpt = truncate(firstPara, excerptLimit)
}

// Headings reports the number of heading sections.
func (a *Article) Headings() int { return a.count(KindHeading) }

// Lists reports the number of list sections.
func (a *Article) Lists() int { return a.count(KindList) }

// Quotes reports the number of quote sections.
func (a *Article) Quotes() int { return a.count(KindQuote) }

func (a *Article) count(k Kind) int {
	n := 0
	for _, s := range a.Sections {
		if s.Kind == k {
			n++
		}
	}
	return n
}

func listItem(line string) (string, bool) {
	if strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") {
		return strings.TrimSpace(line[2:]), true
	}
	return "", false
}

func imageLine(line string) (url, alt string, ok bool) {
	if !strings.HasPrefix(line, "![") {
		return "", "", false
	}
	closeBracket := strings.Index(line, "](")
	if closeBracket < 0 || !strings.HasSuffix(line, ")") {
		return "", "", false
	}
	alt = line[2:closeBracket]
	url = line[closeBracket+2 : len(line)-1]
	if url == "" {
		return "", "", false
	}
	return url, alt, true
}

func countWords(s string) int {
	return len(strings.Fields(s))
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}
