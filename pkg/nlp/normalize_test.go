package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "c and go developer", Normalize("C++ and Go developer!"))
	assert.Equal(t, "rest api", Normalize("  REST/API  "))
	assert.Equal(t, "", Normalize("---"))
	assert.Equal(t, "", Normalize(""))
}

func TestTokens(t *testing.T) {
	assert.Nil(t, Tokens(""))
	assert.Equal(t, []string{"one", "two"}, Tokens("one two"))
}

func TestContainsPhrase(t *testing.T) {
	text := Normalize("Senior REST API engineer with rest apis experience")
	assert.True(t, ContainsPhrase(text, "rest api"))
	assert.False(t, ContainsPhrase(text, "api engineer rest"))
	assert.False(t, ContainsPhrase(text, ""))
	// whole words only: "apis" must not match "api"... but "rest apis" does
	// contain the standalone tokens "rest" and "apis".
	assert.False(t, ContainsPhrase(Normalize("rest apis"), "api"))
}

func TestCountPhrase(t *testing.T) {
	tokens := Tokens(Normalize("teacher of teachers, teacher first, curriculum development and curriculum development"))
	assert.Equal(t, 2, CountPhrase(tokens, "teacher"))
	assert.Equal(t, 0, CountPhrase(tokens, "teachers first"))
	assert.Equal(t, 2, CountPhrase(tokens, "curriculum development"))
	assert.Equal(t, 0, CountPhrase(tokens, ""))
	assert.Equal(t, 0, CountPhrase(nil, "teacher"))
}

func TestCountPhraseAdjacent(t *testing.T) {
	tokens := Tokens("teacher teacher teacher")
	assert.Equal(t, 3, CountPhrase(tokens, "teacher"))
	assert.Equal(t, 2, CountPhrase(tokens, "teacher teacher"))
}
