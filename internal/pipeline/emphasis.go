package pipeline

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

var numericToken = regexp.MustCompile(`~?\d+%?`)

// Emphasize wraps every case-insensitive whole-word occurrence of a keyword,
// and every standalone number or percentage token, in `**bold**` markers.
// Keywords are applied longest first and never claim text inside another
// keyword's match. Purely cosmetic; composes with Sanitize in either order.
func Emphasize(text string, keywords []string) string {
	// Kill any pre-existing markers so nothing gets double-wrapped
	text = strings.ReplaceAll(text, "*", "")

	cleaned := cleanKeywords(keywords)

	var claims []span
	lower := strings.ToLower(text)
	for _, keyword := range cleaned {
		claims = appendKeywordClaims(claims, lower, strings.ToLower(keyword))
	}

	text = wrapClaims(text, claims)

	// Numeric emphasis runs after keyword emphasis, unconditionally
	return numericToken.ReplaceAllString(text, "**${0}**")
}

type span struct {
	start, end int
}

// cleanKeywords strips bold markers, trims, dedupes and orders keywords
// longest first so a short keyword cannot shadow a longer one; ties break
// lexicographically to keep the pass deterministic
func cleanKeywords(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	cleaned := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		k := strings.TrimSpace(strings.ReplaceAll(keyword, "*", ""))
		if k == "" {
			continue
		}
		key := strings.ToLower(k)
		if seen[key] {
			continue
		}
		seen[key] = true
		cleaned = append(cleaned, k)
	}
	sort.Slice(cleaned, func(i, j int) bool {
		if len(cleaned[i]) != len(cleaned[j]) {
			return len(cleaned[i]) > len(cleaned[j])
		}
		return cleaned[i] < cleaned[j]
	})
	return cleaned
}

// appendKeywordClaims records every whole-word occurrence of keyword in text
// that does not overlap an already-claimed region
func appendKeywordClaims(claims []span, text, keyword string) []span {
	from := 0
	for {
		idx := strings.Index(text[from:], keyword)
		if idx == -1 {
			return claims
		}
		start := from + idx
		end := start + len(keyword)
		from = start + 1

		if !wordBoundaryBefore(text, start) || !wordBoundaryAfter(text, end) {
			continue
		}
		if overlapsAny(claims, start, end) {
			continue
		}
		claims = append(claims, span{start: start, end: end})
		from = end
	}
}

func overlapsAny(claims []span, start, end int) bool {
	for _, c := range claims {
		if start < c.end && c.start < end {
			return true
		}
	}
	return false
}

func wordBoundaryBefore(text string, pos int) bool {
	if pos == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:pos])
	return !isWordRune(r)
}

func wordBoundaryAfter(text string, pos int) bool {
	if pos >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[pos:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// wrapClaims rebuilds text with `**` markers around every claimed region
func wrapClaims(text string, claims []span) string {
	if len(claims) == 0 {
		return text
	}
	sort.Slice(claims, func(i, j int) bool { return claims[i].start < claims[j].start })

	var b strings.Builder
	b.Grow(len(text) + 4*len(claims))
	prev := 0
	for _, c := range claims {
		b.WriteString(text[prev:c.start])
		b.WriteString("**")
		b.WriteString(text[c.start:c.end])
		b.WriteString("**")
		prev = c.end
	}
	b.WriteString(text[prev:])
	return b.String()
}
