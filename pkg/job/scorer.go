package job

import (
	"math"
	"math/rand"
	"strings"
	"sync"

	"github.com/jobswipe/backend/pkg/resume"
)

// Score bounds and bonus weights of the matching heuristic.
const (
	baseScore = 30
	maxScore  = 95

	professionTitleBonus = 30
	professionDescBonus  = 15
	skillBonusCap        = 35

	// Only the first skillDenominatorCap skills count toward the
	// denominator, so long skill lists still reach the full bonus.
	skillDenominatorCap = 10

	// Perturbation is drawn uniformly from [-perturbation, +perturbation).
	perturbation = 5.0
)

// Rand is the randomness source for score perturbation. Injected so tests
// can pin determinism; production uses math/rand.
type Rand interface {
	Float64() float64
}

// Scorer computes match scores of postings against a user profile.
type Scorer struct {
	rand Rand
}

// lockedRand serializes access to a *rand.Rand. One Scorer is shared by
// every in-flight feed request, and *rand.Rand is not goroutine-safe.
type lockedRand struct {
	mu  sync.Mutex
	src *rand.Rand
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}

// NewScorer builds a Scorer with the given randomness source; nil falls
// back to a seeded math/rand safe for concurrent use.
func NewScorer(r Rand) *Scorer {
	if r == nil {
		r = &lockedRand{src: rand.New(rand.NewSource(rand.Int63()))}
	}
	return &Scorer{rand: r}
}

// Score returns the match score in [30,95] and the user skills that
// matched the posting. The matching-skills list depends only on the
// inputs; the score additionally carries a ±5 random perturbation, so two
// calls with identical inputs may differ within that band.
func (s *Scorer) Score(p Posting, userSkills []string, userProfession string) (int, []string) {
	if strings.TrimSpace(p.Description) == "" {
		return baseScore, []string{}
	}

	title := strings.ToLower(p.Title)
	desc := strings.ToLower(p.Description)
	score := float64(baseScore)

	if userProfession != resume.ProfessionGeneral && userProfession != "" {
		prof := strings.ToLower(userProfession)
		switch {
		case strings.Contains(title, prof):
			score += professionTitleBonus
		case strings.Contains(desc, prof):
			score += professionDescBonus
		}
	}

	matching := matchingSkills(title, desc, userSkills)
	if len(userSkills) > 0 {
		denom := len(userSkills)
		if denom > skillDenominatorCap {
			denom = skillDenominatorCap
		}
		points := float64(len(matching)) / float64(denom) * skillBonusCap
		score += math.Min(skillBonusCap, points)
	}

	score += -perturbation + 2*perturbation*s.rand.Float64()

	final := int(math.Round(score))
	if final < baseScore {
		final = baseScore
	}
	if final > maxScore {
		final = maxScore
	}
	return final, matching
}

// matchingSkills returns the distinct user skills found in the title or
// description, preserving input order. Deterministic for given inputs.
func matchingSkills(lowerTitle, lowerDesc string, userSkills []string) []string {
	matched := []string{}
	seen := make(map[string]struct{}, len(userSkills))
	for _, skill := range userSkills {
		lower := strings.ToLower(skill)
		if _, dup := seen[lower]; dup {
			continue
		}
		if strings.Contains(lowerTitle, lower) || strings.Contains(lowerDesc, lower) {
			seen[lower] = struct{}{}
			matched = append(matched, skill)
		}
	}
	return matched
}
