package job

import (
	"strings"

	"github.com/jobswipe/backend/pkg/resume"
)

// fallbackQuery is used when the profile carries no usable signal.
const fallbackQuery = "entry level jobs"

// SearchQuery builds the provider search query from resume signals:
// a detected profession wins, otherwise the first three skills, otherwise
// a generic entry-level search.
func SearchQuery(s resume.Signals) string {
	if s.Profession != "" && s.Profession != resume.ProfessionGeneral {
		return s.Profession + " jobs"
	}
	if len(s.Skills) > 0 {
		skills := s.Skills
		if len(skills) > 3 {
			skills = skills[:3]
		}
		return strings.Join(skills, " ")
	}
	return fallbackQuery
}
