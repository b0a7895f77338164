// Package moderation censors blacklisted words in relayed chat text.
// Matching is an Aho-Corasick multi-pattern search over a normalized
// view of the text, so spacing and punctuation tricks do not defeat it.
package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

type Moderator struct {
	matcher      *goahocorasick.Machine
	censoredChar rune
}

// mapping ties each normalized rune back to its index in the original
// text so that censoring can replace the exact source characters.
type mapping struct {
	normalized []rune
	origIdx    []int
}

func NewModerator(censoredWords []string, censoredChar rune) (*Moderator, error) {
	patterns := make([][]rune, 0, len(censoredWords))
	for _, word := range censoredWords {
		// Entries that normalize to nothing would match everywhere.
		if p := normalize(word).normalized; len(p) > 0 {
			patterns = append(patterns, p)
		}
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{matcher: m, censoredChar: censoredChar}, nil
}

// Censor replaces every matched pattern with the replacement rune,
// preserving the spacing of the original text.
func (m *Moderator) Censor(original string) string {
	mapped := normalize(original)
	if len(mapped.normalized) == 0 {
		return original
	}

	spans := m.matcher.MultiPatternSearch(mapped.normalized, false)
	if len(spans) == 0 {
		return original
	}

	out := []rune(original)
	for _, span := range spans {
		start := span.Pos
		end := start + len(span.Word)
		if start < 0 || end > len(mapped.origIdx) {
			continue
		}
		for i := mapped.origIdx[start]; i <= mapped.origIdx[end-1]; i++ {
			out[i] = m.censoredChar
		}
	}
	return string(out)
}

// normalize lowercases and drops punctuation, symbols and spaces while
// recording where each kept rune came from.
func normalize(input string) mapping {
	runes := []rune(input)
	m := mapping{
		normalized: make([]rune, 0, len(runes)),
		origIdx:    make([]int, 0, len(runes)),
	}
	for i, r := range runes {
		if unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
			continue
		}
		m.normalized = append(m.normalized, unicode.ToLower(r))
		m.origIdx = append(m.origIdx, i)
	}
	return m
}
