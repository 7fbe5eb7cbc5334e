package resume

import "strings"

// ExtractSkills returns every vocabulary term contained in the text,
// case-insensitively, in vocabulary declaration order. Matching is plain
// substring containment: presence only, no frequency or position
// weighting. Terms repeating across categories are reported once per
// category. No matches yields an empty, non-nil slice.
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)
	found := []string{}
	for _, cat := range skillVocabulary {
		for _, skill := range cat.skills {
			if strings.Contains(lower, skill) {
				found = append(found, skill)
			}
		}
	}
	return found
}
