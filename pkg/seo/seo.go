// Package seo scores articles and extracts keywords. Two scoring rubrics
// exist in the product: the structural one runs over parsed sections, the
// editorial one over the live editor's state. They are deliberately kept as
// named strategies rather than silently unified; configuration picks which
// one feeds the editor's displayed score.
package seo

import (
	"sort"
	"strings"
	"unicode"

	"github.com/elliotchance/orderedmap"

	"github.com/quillhq/quill/pkg/article"
	"github.com/quillhq/quill/pkg/structure"
)

// Strategy names a scoring rubric.
type Strategy string

const (
	StrategyStructural Strategy = "structural"
	StrategyEditorial  Strategy = "editorial"
)

const (
	titleOptimalMin = 30
	titleOptimalMax = 60

	excerptOptimalMin = 120
	excerptOptimalMax = 160

	wordCountGood = 300
	wordCountFair = 150
)

// DefaultMaxKeywords bounds Keywords when callers pass max <= 0.
const DefaultMaxKeywords = 10

// ScoreStructural rates a parsed article 0-100: optimal title length earns
// 25 (15 for any non-empty title), word count 25/15, the presence of
// headings 20, lists 15, quotes 10, and an optimal excerpt 5.
func ScoreStructural(a *structure.Article) int {
	score := 0

	titleLen := len([]rune(a.Title))
	switch {
	case titleLen >= titleOptimalMin && titleLen <= titleOptimalMax:
		score += 25
	case titleLen > 0:
		score += 15
	}

	switch {
	case a.WordCount >= wordCountGood:
		score += 25
	case a.WordCount >= wordCountFair:
		score += 15
	}

	if a.Headings() > 0 {
		score += 20
	}
	if a.Lists() > 0 {
		score += 15
	}
	if a.Quotes() > 0 {
		score += 10
	}

	excerptLen := len([]rune(a.Excerpt))
	if excerptLen >= excerptOptimalMin && excerptLen <= excerptOptimalMax {
		score += 5
	}

	return clamp(score)
}

// ScoreEditorial rates the live editor state 0-100 across four components
// worth up to 25 each: title, excerpt, word count and tags.
func ScoreEditorial(st article.State) int {
	score := 0

	titleLen := len([]rune(st.Title))
	switch {
	case titleLen >= titleOptimalMin && titleLen <= titleOptimalMax:
		score += 25
	case titleLen > 0:
		score += 10
	}

	excerptLen := len([]rune(st.Excerpt))
	switch {
	case excerptLen >= excerptOptimalMin && excerptLen <= excerptOptimalMax:
		score += 25
	case excerptLen > 0:
		score += 10
	}

	switch {
	case st.WordCount >= wordCountGood:
		score += 25
	case st.WordCount >= wordCountFair:
		score += 15
	}

	switch {
	case len(st.Tags) >= 3:
		score += 25
	case len(st.Tags) >= 1:
		score += 15
	}

	return clamp(score)
}

// Score applies the named strategy to the state. Unknown strategies fall
// back to the editorial rubric.
func Score(strategy Strategy, st article.State) int {
	if strategy == StrategyStructural {
		return ScoreStructural(structure.Parse(st.Content))
	}
	return ScoreEditorial(st)
}

// Keywords returns the top-max tokens of content by descending frequency.
// Tokens are lowercased, stripped of punctuation and dropped when they are
// three characters or shorter. Equal frequencies are ordered by first
// occurrence, which keeps the result deterministic.
func Keywords(content string, max int) []string {
	if max <= 0 {
		max = DefaultMaxKeywords
	}

	counts := orderedmap.NewOrderedMap()
	for _, raw := range strings.Fields(content) {
		token := normalizeToken(raw)
		if len([]rune(token)) <= 3 {
			continue
		}
		if n, ok := counts.Get(token); ok {
			counts.Set(token, n.(int)+1)
		} else {
			counts.Set(token, 1)
		}
	}

	type entry struct {
		token string
		count int
		index int
	}
	var entries []entry
	i := 0
	for el := counts.Front(); el != nil; el = el.Next() {
		entries = append(entries, entry{
			token: el.Key.(string),
			count: el.Value.(int),
			index: i,
		})
		i++
	}

	sort.SliceStable(entries, func(a, b int) bool {
		if entries[a].count != entries[b].count {
			return entries[a].count > entries[b].count
		}
		return entries[a].index < entries[b].index
	})

	if len(entries) > max {
		entries = entries[:max]
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.token)
	}
	return out
}

func normalizeToken(s string) string {
	s = strings.ToLower(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

func clamp(score int) int {
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}
