package core

import (
	"regexp"
	"strings"
)

// enrich.go holds the pure text post-processing applied to model output:
// extracting the first URL, stripping it out of the visible text, and
// turning the remainder into lookup keywords.

var linkPattern = regexp.MustCompile(`https?://[^\s<>"]+|www\.[^\s<>"]+`)

// wordPattern matches unicode word tokens.  Go's \w is ASCII-only, so the
// Cyrillic text needs explicit letter/digit classes.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// stopWords are short Ukrainian function words excluded from keyword sets.
var stopWords = map[string]struct{}{
	"і": {}, "та": {}, "що": {}, "до": {}, "як": {}, "у": {}, "в": {},
	"на": {}, "з": {}, "за": {}, "це": {}, "але": {}, "чи": {}, "не": {},
}

// ExtractLink returns the first URL-looking token in text, or "" when none
// is present.  The URL is not validated beyond its shape.
func ExtractLink(text string) string {
	return linkPattern.FindString(text)
}

// RemoveLink strips every occurrence of link from text and trims the
// result.  An empty link leaves the text untouched.  Applying RemoveLink
// again to its own output is a no-op.
func RemoveLink(text, link string) string {
	if link == "" {
		return text
	}
	return strings.TrimSpace(strings.ReplaceAll(text, link, ""))
}

// ExtractKeywords tokenizes text into lowercase word tokens and drops the
// stop words.  Token order follows the text; duplicates are kept, which is
// harmless for first-match catalog lookups.
func ExtractKeywords(text string) []string {
	words := wordPattern.FindAllString(text, -1)
	keywords := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(w)
		if _, skip := stopWords[w]; skip {
			continue
		}
		keywords = append(keywords, w)
	}
	return keywords
}
