package quizgen

import (
	"context"
	"strings"

	"quizbuddy/internal/domain"

	"go.uber.org/zap"
)

// Pipeline turns a set of loaded document pages into a bounded set of
// validated multiple-choice questions. One Pipeline instance serves one
// run; the generator it wraps carries the requester's API credentials.
//
// A run is strictly sequential: segmentation completes before generation,
// and segments are generated one at a time. The early-abort rule depends
// on segment 1 finishing before anything else, so segment generation must
// not be fanned out.
type Pipeline struct {
	generator       domain.QuestionGenerator
	detector        *LanguageDetector
	maxSegmentChars int
	logger          *zap.Logger
}

// NewPipeline creates a Pipeline around the given generator.
func NewPipeline(generator domain.QuestionGenerator, maxSegmentChars int, logger *zap.Logger) *Pipeline {
	if maxSegmentChars <= 0 {
		maxSegmentChars = DefaultMaxSegmentChars
	}
	return &Pipeline{
		generator:       generator,
		detector:        NewLanguageDetector(generator, logger),
		maxSegmentChars: maxSegmentChars,
		logger:          logger,
	}
}

// Run executes one quiz-generation run over the given pages.
//
// Classified content-quality failures (too short, irrelevant, vague) are
// recovered into the returned outcome, not surfaced as errors. An error
// return means the run could not complete at all: invalid input, or an LLM
// transport/auth failure.
func (p *Pipeline) Run(ctx context.Context, pages []string, numQuestions int, reporter domain.ProgressReporter) (*domain.PipelineOutcome, error) {
	if numQuestions < 1 {
		return nil, domain.NewInvalidInputError("the number of questions must be an integer greater than 0")
	}

	language, err := p.detector.Detect(ctx, pages)
	if err != nil {
		return nil, err
	}

	segments, err := BuildSegments(pages, numQuestions)
	if err != nil {
		return nil, err
	}
	for i := range segments {
		segments[i].Text = TrimSegment(segments[i].Text, p.maxSegmentChars)
	}

	// The synthesizer treats an empty language as "detect from content".
	targetLanguage := language
	if targetLanguage == UnknownLanguage {
		targetLanguage = ""
	}

	p.logger.Info("Starting question generation",
		zap.Int("num_questions", numQuestions),
		zap.Int("num_pages", len(pages)),
		zap.String("language", language),
	)

	candidates := make([]*domain.CandidateQuestion, 0, numQuestions)
	for i, segment := range segments {
		candidate, err := p.generator.GenerateQuestion(ctx, segment.Text, targetLanguage)
		if err != nil {
			return nil, err
		}

		// Segments are sized uniformly, so if the very first one is too
		// sparse to yield a question, all the others are too. Abort the
		// run instead of burning calls on segments 2..N.
		if i == 0 && isTooShortFailure(candidate) {
			p.logger.Info("Aborting run: first segment content too short")
			return &domain.PipelineOutcome{
				Questions: []*domain.CandidateQuestion{},
				Status:    domain.StatusTooShort,
				Message:   MessageContentTooShort,
				Language:  language,
			}, nil
		}

		candidates = append(candidates, candidate)
		if reporter != nil {
			reporter.Report(i+1, numQuestions)
		}
	}

	if err := p.repairFailed(ctx, segments, candidates, targetLanguage); err != nil {
		return nil, err
	}

	status, message := classifyOutcome(candidates)

	questions := make([]*domain.CandidateQuestion, 0, len(candidates))
	for _, c := range candidates {
		if c.Success && c.Title != "" {
			questions = append(questions, c)
		}
	}

	p.logger.Info("Question generation finished",
		zap.String("status", string(status)),
		zap.Int("generated", len(questions)),
		zap.Int("requested", numQuestions),
	)

	return &domain.PipelineOutcome{
		Questions: questions,
		Status:    status,
		Message:   message,
		Language:  language,
	}, nil
}

// repairFailed regenerates every failed or empty-titled candidate exactly
// once from its original segment. A candidate whose repair also fails is
// left in place to be counted and excluded by the classifier; there is no
// second repair attempt.
func (p *Pipeline) repairFailed(ctx context.Context, segments []domain.Segment, candidates []*domain.CandidateQuestion, targetLanguage string) error {
	for i, candidate := range candidates {
		if candidate.Success && candidate.Title != "" {
			continue
		}

		p.logger.Debug("Repairing failed candidate",
			zap.Int("segment", i),
			zap.String("reason", candidate.Message),
		)
		repaired, err := p.generator.GenerateQuestion(ctx, segments[i].Text, targetLanguage)
		if err != nil {
			return err
		}
		if repaired.Success && repaired.Title != "" {
			candidates[i] = repaired
		}
	}
	return nil
}

func isTooShortFailure(candidate *domain.CandidateQuestion) bool {
	return !candidate.Success && strings.Contains(strings.ToLower(candidate.Message), "too short")
}
