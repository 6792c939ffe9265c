package validation

import (
	"regexp"
	"strings"

	"quizbuddy/internal/domain"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// CreateQuizFields are the multipart form fields of a quiz-creation request.
type CreateQuizFields struct {
	APIKey            string
	SubjectID         string
	Title             string
	SuccessPercentage int
	Duration          int
	NumQuestions      int
	FileCount         int
}

// ValidateCreateQuizRequest validates the quiz creation form.
func (v *Validator) ValidateCreateQuizRequest(fields CreateQuizFields) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(fields.APIKey) == "" {
		errors = append(errors, domain.NewMissingFieldError("api_key"))
	}

	if strings.TrimSpace(fields.Title) == "" {
		errors = append(errors, domain.NewMissingFieldError("title"))
	}

	if fields.SubjectID != "" && !isValidULID(fields.SubjectID) {
		errors = append(errors, domain.NewInvalidFormatError("subject_id", fields.SubjectID))
	}

	if fields.SuccessPercentage < 0 || fields.SuccessPercentage > 100 {
		errors = append(errors, domain.NewOutOfRangeError("success_percentage", fields.SuccessPercentage, 0, 100))
	}

	if fields.Duration < 1 || fields.Duration > 86400 {
		errors = append(errors, domain.NewOutOfRangeError("duration", fields.Duration, 1, 86400))
	}

	if fields.NumQuestions < 1 || fields.NumQuestions > 50 {
		errors = append(errors, domain.NewOutOfRangeError("number_of_questions", fields.NumQuestions, 1, 50))
	}

	if fields.FileCount < 1 {
		errors = append(errors, domain.NewMissingFieldError("files"))
	}

	return errors
}

// ValidateQuizID validates a quiz id path parameter.
func (v *Validator) ValidateQuizID(quizID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(quizID) == "" {
		errors = append(errors, domain.NewMissingFieldError("quiz_id"))
	} else if !isValidULID(quizID) {
		errors = append(errors, domain.NewInvalidFormatError("quiz_id", quizID))
	}

	return errors
}

// ValidateSubjectID validates a subject id path parameter.
func (v *Validator) ValidateSubjectID(subjectID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(subjectID) == "" {
		errors = append(errors, domain.NewMissingFieldError("subject_id"))
	} else if !isValidULID(subjectID) {
		errors = append(errors, domain.NewInvalidFormatError("subject_id", subjectID))
	}

	return errors
}

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	// ULID is 26 characters long, Crockford's Base32
	if len(s) != 26 {
		return false
	}
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}
