package quizgen

import (
	"testing"

	"quizbuddy/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestClassifyOutcomeAllSuccessful(t *testing.T) {
	status, message := classifyOutcome([]*domain.CandidateQuestion{
		successCandidate("q1"),
		successCandidate("q2"),
	})

	assert.Equal(t, domain.StatusSuccess, status)
	assert.Equal(t, MessageAllGenerated, message)
}

func TestClassifyOutcomeSingleCategory(t *testing.T) {
	status, message := classifyOutcome([]*domain.CandidateQuestion{
		successCandidate("q1"),
		failedCandidate("The content is irrelevant to generate a question."),
	})

	assert.Equal(t, domain.StatusIrrelevant, status)
	assert.Equal(t, "1 questions could not be generated. The content is irrelevant to generate a question.", message)
}

func TestClassifyOutcomeAppendsClausePerFailure(t *testing.T) {
	status, message := classifyOutcome([]*domain.CandidateQuestion{
		failedCandidate("The content is too vague to generate a question."),
		failedCandidate("The content is irrelevant to generate a question."),
	})

	// Clauses concatenate in candidate order; the status follows the last
	// matched category.
	assert.Equal(t, domain.StatusIrrelevant, status)
	assert.Equal(t, "2 questions could not be generated."+
		" The content is too vague to generate a question."+
		" The content is irrelevant to generate a question.", message)
}

func TestClassifyOutcomeCaseInsensitiveMatch(t *testing.T) {
	status, _ := classifyOutcome([]*domain.CandidateQuestion{
		failedCandidate("The content is TOO SHORT to generate a question."),
	})
	assert.Equal(t, domain.StatusTooShort, status)
}

func TestClassifyOutcomeUnmatchedCategoryIsPartial(t *testing.T) {
	status, message := classifyOutcome([]*domain.CandidateQuestion{
		successCandidate("q1"),
		failedCandidate("The question could not be generated. The text is encrypted."),
	})

	assert.Equal(t, domain.StatusPartial, status)
	assert.Equal(t, "1 questions could not be generated.", message)
}

func TestClassifyOutcomeEmptyTitleCountsAsFailed(t *testing.T) {
	status, message := classifyOutcome([]*domain.CandidateQuestion{
		{Success: true, Title: ""},
	})

	assert.Equal(t, domain.StatusPartial, status)
	assert.Equal(t, "1 questions could not be generated.", message)
}

func TestLanguageTable(t *testing.T) {
	assert.True(t, IsKnownLanguage("English"))
	assert.True(t, IsKnownLanguage("korean"))
	assert.False(t, IsKnownLanguage("klingon"))

	assert.Equal(t, "en", CodeForLanguage("English"))
	assert.Equal(t, "ko", CodeForLanguage("korean"))
	assert.Equal(t, UnknownLanguage, CodeForLanguage("klingon"))
}
