package wikt

import (
	"context"
	"strings"
	"unicode"
)

// searchLimit caps the fuzzy title search.
const searchLimit = 5

// Resolver maps a word to a canonical page title and its rendered
// content. All failures are soft: network errors, timeouts, and missing
// pages yield found=false, never an error, so the caller can fall back
// to offline results.
type Resolver struct {
	Client *Client
}

// Page is a resolved remote document.
type Page struct {
	// Title is the canonical title the service recognized; it may
	// differ from the queried word by case or via search resolution.
	Title string
	// Sections are the extracted etymology sections, in document order.
	// A found page with zero sections is a valid outcome, distinct from
	// not found.
	Sections []Section
}

// Lookup resolves word to a page and extracts its etymology sections.
//
// Title candidates are tried in order: the word lowercased, the word
// capitalized, the word verbatim. If none renders, a fuzzy title search
// picks a candidate (a case-insensitive exact match wins over the first
// result) and the fetch is retried once.
func (r *Resolver) Lookup(ctx context.Context, word string) (Page, bool) {
	html, title, ok := r.fetch(ctx, word)
	if !ok {
		return Page{}, false
	}

	sections, err := ExtractEtymologySections(html)
	if err != nil {
		return Page{}, false
	}
	return Page{Title: title, Sections: sections}, true
}

func (r *Resolver) fetch(ctx context.Context, word string) (html, title string, ok bool) {
	for _, cand := range candidateTitles(word) {
		if html, err := r.Client.RenderPage(ctx, cand); err == nil {
			return html, cand, true
		}
	}

	titles, err := r.Client.SearchTitles(ctx, word, searchLimit)
	if err != nil || len(titles) == 0 {
		return "", "", false
	}

	picked := titles[0]
	for _, t := range titles {
		if strings.EqualFold(t, word) {
			picked = t
			break
		}
	}

	html, err = r.Client.RenderPage(ctx, picked)
	if err != nil {
		return "", "", false
	}
	return html, picked, true
}

// candidateTitles returns the fixed fallback order of titles to try,
// with duplicates removed.
func candidateTitles(word string) []string {
	cands := []string{strings.ToLower(word), capitalize(word), word}

	out := cands[:0]
	seen := make(map[string]struct{}, len(cands))
	for _, c := range cands {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// capitalize uppercases the first rune and lowercases the rest.
func capitalize(word string) string {
	if word == "" {
		return word
	}
	runes := []rune(strings.ToLower(word))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
