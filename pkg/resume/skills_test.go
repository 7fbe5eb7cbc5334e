package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkillsNoMatches(t *testing.T) {
	got := ExtractSkills("absolutely unrelated prose about gardening")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExtractSkillsEmptyText(t *testing.T) {
	assert.Empty(t, ExtractSkills(""))
}

func TestExtractSkillsWholeCategoryInOrder(t *testing.T) {
	text := "patient care, medical records, clinical research, diagnostics, " +
		"treatment planning, medical coding, healthcare management, " +
		"patient assessment, vital signs, medical terminology"
	got := ExtractSkills(text)
	assert.Equal(t, []string{
		"patient care", "medical records", "clinical research", "diagnostics",
		"treatment planning", "medical coding", "healthcare management",
		"patient assessment", "vital signs", "medical terminology",
		// "clinical research" also contains the general-category term.
		"research",
	}, got)
}

func TestExtractSkillsCaseInsensitive(t *testing.T) {
	got := ExtractSkills("Expert in KUBERNETES and Docker")
	assert.Equal(t, []string{"docker", "kubernetes"}, got)
}

func TestExtractSkillsSubstringContainment(t *testing.T) {
	// Containment is deliberate: "javascript" also contains "java".
	got := ExtractSkills("writes javascript daily")
	assert.Contains(t, got, "javascript")
	assert.Contains(t, got, "java")
}

func TestExtractSkillsDuplicatesAcrossCategories(t *testing.T) {
	// "seo" and "market research" live in marketing; "research" in general.
	got := ExtractSkills("seo and market research")
	assert.Equal(t, []string{"seo", "market research", "research"}, got)
}

func TestExtractSkillsTeacherResume(t *testing.T) {
	text := "Experienced teacher with curriculum development and classroom management skills, 5 years teaching."
	got := ExtractSkills(text)
	assert.Contains(t, got, "curriculum development")
	assert.Contains(t, got, "classroom management")
}
