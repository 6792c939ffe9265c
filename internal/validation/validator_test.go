package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFields() CreateQuizFields {
	return CreateQuizFields{
		APIKey:            "sk-test",
		Title:             "Networking Basics",
		SuccessPercentage: 50,
		Duration:          600,
		NumQuestions:      5,
		FileCount:         1,
	}
}

func TestValidateCreateQuizRequest_Valid(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.ValidateCreateQuizRequest(validFields()))
}

func TestValidateCreateQuizRequest_MissingFields(t *testing.T) {
	v := NewValidator()
	fields := validFields()
	fields.APIKey = ""
	fields.Title = "  "
	fields.FileCount = 0

	errs := v.ValidateCreateQuizRequest(fields)

	require.Len(t, errs, 3)
	assert.Equal(t, "api_key", errs[0].Field)
	assert.Equal(t, "title", errs[1].Field)
	assert.Equal(t, "files", errs[2].Field)
}

func TestValidateCreateQuizRequest_OutOfRange(t *testing.T) {
	v := NewValidator()
	fields := validFields()
	fields.SuccessPercentage = 101
	fields.Duration = 0
	fields.NumQuestions = 51

	errs := v.ValidateCreateQuizRequest(fields)

	require.Len(t, errs, 3)
	assert.Equal(t, "success_percentage", errs[0].Field)
	assert.Equal(t, "duration", errs[1].Field)
	assert.Equal(t, "number_of_questions", errs[2].Field)
}

func TestValidateQuizID(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateQuizID("01HQZX5J8N3V9K2M4P6R7T8W9A"))
	assert.NotEmpty(t, v.ValidateQuizID(""))
	assert.NotEmpty(t, v.ValidateQuizID("short"))
	// U is not part of Crockford's Base32 alphabet.
	assert.NotEmpty(t, v.ValidateQuizID("01HQUZX5J8N3V9K2M4P6R7T8W9"))
}
