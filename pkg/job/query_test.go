package job

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jobswipe/backend/pkg/resume"
)

func TestSearchQueryFromProfession(t *testing.T) {
	q := SearchQuery(resume.Signals{Profession: "teacher", Skills: []string{"sql"}})
	assert.Equal(t, "teacher jobs", q)
}

func TestSearchQueryFromSkills(t *testing.T) {
	q := SearchQuery(resume.Signals{Profession: "general", Skills: []string{"sql", "python", "docker", "git"}})
	assert.Equal(t, "sql python docker", q)
}

func TestSearchQueryFewSkills(t *testing.T) {
	q := SearchQuery(resume.Signals{Profession: "general", Skills: []string{"sql"}})
	assert.Equal(t, "sql", q)
}

func TestSearchQueryFallback(t *testing.T) {
	assert.Equal(t, "entry level jobs", SearchQuery(resume.DefaultSignals()))
	assert.Equal(t, "entry level jobs", SearchQuery(resume.Signals{}))
}
