package nlp

import (
	"regexp"
	"strings"
)

var nonWord = regexp.MustCompile(`[^a-z0-9]+`)
var multiSpace = regexp.MustCompile(`\s+`)

// Normalize lowercases a string and replaces every "non-word" run with a
// single space. Words are a-z and 0-9, which is enough for keyword and
// skill matching against resume/job text.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = nonWord.ReplaceAllString(s, " ")
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Tokens splits a normalized string into its word tokens.
func Tokens(normalized string) []string {
	if normalized == "" {
		return nil
	}
	return strings.Split(normalized, " ")
}

// ContainsPhrase reports whether a normalized phrase occurs in normalized
// text as whole words.
// Example: "rest api" is found in " ... rest api ..." but not in " ... rest apis ...".
func ContainsPhrase(normalizedText, normalizedPhrase string) bool {
	if normalizedPhrase == "" {
		return false
	}
	// ensure word boundaries by padding with spaces
	hay := " " + normalizedText + " "
	needle := " " + normalizedPhrase + " "
	return strings.Contains(hay, needle)
}

// CountPhrase counts whole-word occurrences of a normalized phrase inside
// a token stream. Multi-word phrases match consecutive tokens; adjacent
// occurrences are all counted ("teacher teacher" contains "teacher" twice).
func CountPhrase(tokens []string, normalizedPhrase string) int {
	phrase := Tokens(normalizedPhrase)
	if len(phrase) == 0 || len(tokens) < len(phrase) {
		return 0
	}
	count := 0
	for i := 0; i+len(phrase) <= len(tokens); i++ {
		match := true
		for j, w := range phrase {
			if tokens[i+j] != w {
				match = false
				break
			}
		}
		if match {
			count++
		}
	}
	return count
}
