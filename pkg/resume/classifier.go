package resume

import (
	"sort"

	"github.com/jobswipe/backend/pkg/nlp"
)

// classifyThreshold is the minimum keyword-hit total a profession needs to
// win; below it incidental mentions would misclassify, so we fall back to
// "general".
const classifyThreshold = 3

// ClassifyProfession maps free resume text to one profession from the
// fixed taxonomy. Keywords are counted as whole words, case-insensitively;
// the profession with the highest total wins, ties going to the earlier
// taxonomy entry. Empty or keyword-free text yields ProfessionGeneral.
func ClassifyProfession(text string) string {
	tokens := nlp.Tokens(nlp.Normalize(text))
	if len(tokens) == 0 {
		return ProfessionGeneral
	}

	type scored struct {
		name  string
		score int
	}
	scores := make([]scored, 0, len(professionTaxonomy))
	for _, p := range professionTaxonomy {
		total := 0
		for _, kw := range p.keywords {
			total += nlp.CountPhrase(tokens, nlp.Normalize(kw))
		}
		scores = append(scores, scored{name: p.name, score: total})
	}

	// Stable sort keeps declaration order among equal scores.
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })

	if scores[0].score < classifyThreshold {
		return ProfessionGeneral
	}
	return scores[0].name
}
