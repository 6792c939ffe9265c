package domain

import "context"

// GenerationStatus classifies the result of one quiz-generation run.
type GenerationStatus string

const (
	StatusSuccess    GenerationStatus = "success"
	StatusTooShort   GenerationStatus = "too-short"
	StatusIrrelevant GenerationStatus = "irrelevant"
	StatusVague      GenerationStatus = "vague"
	// StatusPartial covers runs with failed candidates whose messages match
	// none of the known categories.
	StatusPartial GenerationStatus = "partial"
)

// Segment is a bounded span of source text assigned to produce exactly
// one question.
type Segment struct {
	Text  string
	Index int
}

// CandidateAnswer is one choice of a candidate question.
type CandidateAnswer struct {
	Title     string `json:"title"`
	IsCorrect bool   `json:"is_correct"`
}

// CandidateQuestion is a single generation attempt's result. When Success
// is false, Title and Answers are empty and Message explains why.
type CandidateQuestion struct {
	Title    string            `json:"title"`
	Answers  []CandidateAnswer `json:"answers"`
	Language string            `json:"language"`
	Success  bool              `json:"success"`
	Message  string            `json:"message"`
}

// PipelineOutcome is the final classification of one run: surviving
// questions, status and a human-readable message. Language is the
// detected document language name, or "unknown".
type PipelineOutcome struct {
	Questions []*CandidateQuestion
	Status    GenerationStatus
	Message   string
	Language  string
}

// ProgressEvent reports that Current of Total segments have been processed.
type ProgressEvent struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// ProgressReporter receives fire-and-forget progress updates from a run.
type ProgressReporter interface {
	Report(current, total int)
}

// QuestionGenerator is the external structured-output LLM contract. One
// call produces one candidate question; the generator itself never retries.
type QuestionGenerator interface {
	GenerateQuestion(ctx context.Context, content string, language string) (*CandidateQuestion, error)
	DetectLanguage(ctx context.Context, text string) (string, error)
}

// DocumentLoader turns an uploaded file into an ordered sequence of page
// texts. Format dispatch is by file extension.
type DocumentLoader interface {
	LoadPages(path string) ([]string, error)
}
