package quizgen

import (
	"fmt"
	"strings"

	"quizbuddy/internal/domain"
)

// Canonical messages surfaced to clients. The model is instructed to embed
// the category keywords ("too short", "irrelevant", "vague") in its failure
// messages; classification is a substring match on those keywords.
const (
	MessageAllGenerated    = "All questions were successfully generated."
	MessageContentTooShort = "The provided content is too short to generate questions."

	clauseTooShort   = " The content is too short to generate a question."
	clauseIrrelevant = " The content is irrelevant to generate a question."
	clauseVague      = " The content is too vague to generate a question."
)

// failureCategory pairs a message keyword with its status and the fixed
// clause appended to the outcome message.
var failureCategories = []struct {
	keyword string
	status  domain.GenerationStatus
	clause  string
}{
	{"too short", domain.StatusTooShort, clauseTooShort},
	{"irrelevant", domain.StatusIrrelevant, clauseIrrelevant},
	{"vague", domain.StatusVague, clauseVague},
}

// matchFailureCategory classifies a failed candidate's message. The second
// return value is false when the message matches no known category.
func matchFailureCategory(message string) (domain.GenerationStatus, string, bool) {
	lower := strings.ToLower(message)
	for _, c := range failureCategories {
		if strings.Contains(lower, c.keyword) {
			return c.status, c.clause, true
		}
	}
	return "", "", false
}

// classifyOutcome aggregates per-candidate outcomes into a run-level status
// and message. Candidates are inspected in segment order; each failed one
// appends its category's fixed clause, so duplicates are possible when
// several failures match different (or the same) categories. Failures
// matching no category leave the status at StatusPartial.
func classifyOutcome(candidates []*domain.CandidateQuestion) (domain.GenerationStatus, string) {
	failedCount := 0
	for _, c := range candidates {
		if !c.Success || c.Title == "" {
			failedCount++
		}
	}

	if failedCount == 0 {
		return domain.StatusSuccess, MessageAllGenerated
	}

	status := domain.StatusPartial
	message := fmt.Sprintf("%d questions could not be generated.", failedCount)
	for _, c := range candidates {
		if c.Success && c.Title != "" {
			continue
		}
		if matched, clause, ok := matchFailureCategory(c.Message); ok {
			status = matched
			message += clause
		}
	}
	return status, message
}
