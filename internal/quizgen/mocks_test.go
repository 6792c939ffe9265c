package quizgen

import (
	"context"

	"quizbuddy/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockGenerator ---

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateQuestion(ctx context.Context, content string, language string) (*domain.CandidateQuestion, error) {
	args := m.Called(ctx, content, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateQuestion), args.Error(1)
}

func (m *MockGenerator) DetectLanguage(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}

// --- recordingReporter ---

type recordingReporter struct {
	events []domain.ProgressEvent
}

func (r *recordingReporter) Report(current, total int) {
	r.events = append(r.events, domain.ProgressEvent{Current: current, Total: total})
}

func successCandidate(title string) *domain.CandidateQuestion {
	return &domain.CandidateQuestion{
		Title: title,
		Answers: []domain.CandidateAnswer{
			{Title: "A", IsCorrect: true},
			{Title: "B"},
			{Title: "C"},
			{Title: "D"},
		},
		Language: "english",
		Success:  true,
	}
}

func failedCandidate(message string) *domain.CandidateQuestion {
	return &domain.CandidateQuestion{Success: false, Message: message}
}
