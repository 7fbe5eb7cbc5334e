package job

import "sort"

// Rank scores every posting independently against the user profile and
// returns them sorted by match score, highest first. The sort is stable:
// postings with equal scores keep their input order. An empty input yields
// an empty slice.
func (s *Scorer) Rank(jobs []Posting, userSkills []string, userProfession string) []Ranked {
	ranked := make([]Ranked, 0, len(jobs))
	for _, p := range jobs {
		score, skills := s.Score(p, userSkills, userProfession)
		ranked = append(ranked, Ranked{Posting: p, MatchScore: score, MatchingSkills: skills})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].MatchScore > ranked[j].MatchScore })
	return ranked
}
