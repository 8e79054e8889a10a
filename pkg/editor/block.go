package editor

import (
	"regexp"
	"strconv"
	"strings"
)

// Alignment values accepted by Align.
type Alignment string

const (
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignJustify Alignment = "justify"
)

var blockTags = map[string]bool{
	"p": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "li": true, "div": true, "pre": true,
}

var voidTags = map[string]bool{
	"br": true, "hr": true, "img": true, "input": true, "meta": true, "link": true,
}

// ToggleHeading promotes the block enclosing the selection to the requested
// heading level, or demotes it back to a paragraph when it already is that
// heading. Exactly one block is affected; inner content and attributes are
// preserved. Levels outside 1..3 are a no-op.
func ToggleHeading(level int) Op {
	return func(content string, sel Span) (Edit, bool) {
		if level < 1 || level > 3 {
			return Edit{}, false
		}
		sel = sel.Clamp(content)

		heading := "h" + strconv.Itoa(level)
		blk, ok := enclosingBlock(content, sel.Start)
		if !ok {
			// Bare text run: promote it to a heading.
			run, ok := bareRun(content, sel.Start)
			if !ok {
				return Edit{}, false
			}
			inner := content[run.Start:run.End]
			text := "<" + heading + ">" + inner + "</" + heading + ">"
			return Edit{Span: run, Text: text, Sel: Span{Start: run.Start, End: run.Start + len(text)}}, true
		}

		target := heading
		if blk.tag == heading {
			target = "p"
		}
		inner := content[blk.innerStart:blk.innerEnd]
		text := "<" + target + blk.attrs + ">" + inner + "</" + target + ">"
		span := Span{Start: blk.openStart, End: blk.closeEnd}
		return Edit{Span: span, Text: text, Sel: Span{Start: span.Start, End: span.Start + len(text)}}, true
	}
}

// Align sets the text alignment of the block enclosing the selection.
// Only that single block is affected.
func Align(a Alignment) Op {
	return func(content string, sel Span) (Edit, bool) {
		switch a {
		case AlignLeft, AlignCenter, AlignRight, AlignJustify:
		default:
			return Edit{}, false
		}
		sel = sel.Clamp(content)

		blk, ok := enclosingBlock(content, sel.Start)
		if !ok {
			run, ok := bareRun(content, sel.Start)
			if !ok {
				return Edit{}, false
			}
			inner := content[run.Start:run.End]
			text := `<p style="text-align: ` + string(a) + `">` + inner + "</p>"
			return Edit{Span: run, Text: text, Sel: Span{Start: run.Start, End: run.Start + len(text)}}, true
		}

		attrs := setTextAlign(blk.attrs, string(a))
		inner := content[blk.innerStart:blk.innerEnd]
		text := "<" + blk.tag + attrs + ">" + inner + "</" + blk.tag + ">"
		span := Span{Start: blk.openStart, End: blk.closeEnd}
		return Edit{Span: span, Text: text, Sel: Span{Start: span.Start, End: span.Start + len(text)}}, true
	}
}

var (
	textAlignRe = regexp.MustCompile(`text-align:\s*[a-z]+`)
	styleAttrRe = regexp.MustCompile(`style="([^"]*)"`)
)

// setTextAlign rewrites attrs so the style attribute carries the requested
// text-align, creating either as needed. attrs keeps its leading space.
func setTextAlign(attrs, align string) string {
	if m := styleAttrRe.FindStringSubmatchIndex(attrs); m != nil {
		style := attrs[m[2]:m[3]]
		if textAlignRe.MatchString(style) {
			style = textAlignRe.ReplaceAllString(style, "text-align: "+align)
		} else {
			style = strings.TrimRight(style, "; ")
			if style != "" {
				style += "; "
			}
			style += "text-align: " + align
		}
		return attrs[:m[2]] + style + attrs[m[3]:]
	}
	return attrs + ` style="text-align: ` + align + `"`
}

// tagToken is one parsed markup tag.
type tagToken struct {
	name    string
	attrs   string
	closing bool
	void    bool
	start   int // offset of '<'
	end     int // offset just past '>'
}

// scanTags walks content and extracts tags. Malformed fragments (a '<' with
// no closing '>') terminate the scan; everything before them still counts.
func scanTags(content string) []tagToken {
	var tokens []tagToken
	for i := 0; i < len(content); {
		lt := strings.IndexByte(content[i:], '<')
		if lt < 0 {
			break
		}
		lt += i
		gt := strings.IndexByte(content[lt:], '>')
		if gt < 0 {
			break
		}
		gt += lt
		inner := content[lt+1 : gt]
		i = gt + 1

		closing := strings.HasPrefix(inner, "/")
		if closing {
			inner = inner[1:]
		}
		inner = strings.TrimSuffix(inner, "/")

		name := inner
		attrs := ""
		if sp := strings.IndexAny(inner, " \t\n"); sp >= 0 {
			name = inner[:sp]
			attrs = inner[sp:]
		}
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || !isTagName(name) {
			continue
		}

		tokens = append(tokens, tagToken{
			name:    name,
			attrs:   strings.TrimRight(attrs, " \t\n"),
			closing: closing,
			void:    voidTags[name],
			start:   lt,
			end:     gt + 1,
		})
	}
	return tokens
}

func isTagName(name string) bool {
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// element is a matched open/close tag pair.
type element struct {
	tag        string
	attrs      string
	openStart  int
	innerStart int
	innerEnd   int
	closeEnd   int
}

// matchElements pairs up open and close tags, tolerating unbalanced markup
// by discarding unmatched opens.
func matchElements(content string) []element {
	type open struct {
		tok tagToken
	}
	var stack []open
	var out []element

	for _, tok := range scanTags(content) {
		if tok.void {
			continue
		}
		if !tok.closing {
			stack = append(stack, open{tok: tok})
			continue
		}
		// Find the nearest matching open tag; drop anything above it.
		for j := len(stack) - 1; j >= 0; j-- {
			if stack[j].tok.name != tok.name {
				continue
			}
			out = append(out, element{
				tag:        tok.name,
				attrs:      stack[j].tok.attrs,
				openStart:  stack[j].tok.start,
				innerStart: stack[j].tok.end,
				innerEnd:   tok.start,
				closeEnd:   tok.end,
			})
			stack = stack[:j]
			break
		}
	}
	return out
}

// enclosingBlock finds the innermost block-level element containing pos.
func enclosingBlock(content string, pos int) (element, bool) {
	var best element
	found := false
	for _, el := range matchElements(content) {
		if !blockTags[el.tag] {
			continue
		}
		if pos < el.openStart || pos > el.closeEnd {
			continue
		}
		if !found || el.openStart >= best.openStart {
			best = el
			found = true
		}
	}
	return best, found
}

// bareRun returns the text run around pos that sits outside any element:
// the gap between the surrounding top-level elements, trimmed of edge
// whitespace. Used when a block op lands in unwrapped text.
func bareRun(content string, pos int) (Span, bool) {
	start, end := 0, len(content)
	for _, el := range matchElements(content) {
		if el.closeEnd <= pos && el.closeEnd > start {
			start = el.closeEnd
		}
		if el.openStart >= pos && el.openStart < end {
			end = el.openStart
		}
	}

	for start < end && isSpace(content[start]) {
		start++
	}
	for end > start && isSpace(content[end-1]) {
		end--
	}
	if start >= end {
		return Span{}, false
	}
	return Span{Start: start, End: end}, true
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
