package resume

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyProfessionTeacherResume(t *testing.T) {
	text := "Experienced teacher with curriculum development and classroom management skills, 5 years teaching."
	assert.Equal(t, "teacher", ClassifyProfession(text))
}

func TestClassifyProfessionBelowThreshold(t *testing.T) {
	// Two hits total ("developer", "software"), under the threshold of 3.
	assert.Equal(t, ProfessionGeneral, ClassifyProfession("I once met a software developer."))
}

func TestClassifyProfessionEmptyText(t *testing.T) {
	assert.Equal(t, ProfessionGeneral, ClassifyProfession(""))
	assert.Equal(t, ProfessionGeneral, ClassifyProfession("   \n\t "))
	assert.Equal(t, ProfessionGeneral, ClassifyProfession("nothing relevant here at all"))
}

func TestClassifyProfessionSingleKeywordRepeated(t *testing.T) {
	// >=3 occurrences of one profession's keyword, zero of any other.
	assert.Equal(t, "legal", ClassifyProfession("paralegal paralegal paralegal"))
}

func TestClassifyProfessionWholeWordsOnly(t *testing.T) {
	// "lawyers" must not count as "lawyer"; "law" appears as a whole word 3 times.
	assert.Equal(t, ProfessionGeneral, ClassifyProfession("lawyers lawyers lawyers"))
	assert.Equal(t, "legal", ClassifyProfession("law law law"))
}

func TestClassifyProfessionCaseInsensitive(t *testing.T) {
	assert.Equal(t, "healthcare", ClassifyProfession("NURSE Nursing HOSPITAL patient"))
}

func TestClassifyProfessionTieBreakDeclarationOrder(t *testing.T) {
	// "engineer" scores software engineer; "analyst" scores finance.
	// Build 3 hits for each; taxonomy declares software engineer first.
	text := strings.Repeat("engineer ", 3) + strings.Repeat("analyst ", 3)
	assert.Equal(t, "software engineer", ClassifyProfession(text))
}

func TestClassifyProfessionMultiWordKeyword(t *testing.T) {
	assert.Equal(t, "data scientist", ClassifyProfession("machine learning, machine learning and big data"))
}
