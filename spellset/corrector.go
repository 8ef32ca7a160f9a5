package spellset

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// nonWordRe matches every character outside the word class (letters, digits,
// underscore). It drives both key cleaning and punctuation collection so the
// two always agree on what counts as punctuation.
var nonWordRe = regexp.MustCompile(`[^\p{L}\p{N}_]`)

// BuildTable constructs a correction table from dataset entries. Keys are the
// lowercased incorrect words; entries with an empty incorrect word are
// skipped. When the same incorrect word appears more than once the last
// occurrence wins.
func BuildTable(entries []CorrectionEntry) CorrectionTable {
	table := make(CorrectionTable, len(entries))
	for _, entry := range entries {
		key := strings.ToLower(entry.IncorrectWord)
		if key == "" {
			continue
		}
		table[key] = entry.CorrectWord
	}
	return table
}

// Correct rewrites text word by word using the table. Tokens are split on any
// whitespace run, matched against the table case-insensitively with
// punctuation stripped, and joined back with single spaces, so interior
// whitespace runs collapse. Unmatched tokens pass through verbatim and the
// function never fails.
//
// For a matched token the replacement keeps leading capitalization (only the
// first letter is upper-cased) and every non-word character of the original
// token is appended, in order of appearance, to the end of the replacement.
// Appending rather than restoring positions reproduces the behavior correction
// consumers already depend on; it means an interior apostrophe ends up
// trailing the word.
func Correct(table CorrectionTable, text string) string {
	tokens := strings.Fields(text)
	for i, token := range tokens {
		clean := strings.ToLower(nonWordRe.ReplaceAllString(token, ""))
		replacement, ok := table[clean]
		if !ok {
			continue
		}
		if first, _ := utf8.DecodeRuneInString(token); unicode.IsUpper(first) {
			replacement = upperFirst(replacement)
		}
		if punct := nonWordRe.FindAllString(token, -1); len(punct) > 0 {
			replacement += strings.Join(punct, "")
		}
		tokens[i] = replacement
	}
	return strings.Join(tokens, " ")
}

// Correct applies the table to text. See the package-level Correct.
func (t CorrectionTable) Correct(text string) string {
	return Correct(t, text)
}

// upperFirst upper-cases the first letter and leaves the rest untouched.
func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
