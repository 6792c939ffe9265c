package quizgen

import (
	"context"
	"strings"

	"quizbuddy/internal/domain"

	"go.uber.org/zap"
)

// LanguageDetector probes pages through the LLM contract to identify the
// dominant natural language of a document set.
type LanguageDetector struct {
	generator domain.QuestionGenerator
	logger    *zap.Logger
}

// NewLanguageDetector creates a new LanguageDetector.
func NewLanguageDetector(generator domain.QuestionGenerator, logger *zap.Logger) *LanguageDetector {
	return &LanguageDetector{generator: generator, logger: logger}
}

// Detect starts probing at the middle page and advances one page at a
// time while the model answers "unknown". The first non-unknown answer is
// validated against the known-language list; an invalid answer yields
// "unknown" without further probing. Running off the end of the pages
// yields "unknown". At most one probe is made per page, so detection
// terminates within len(pages) calls.
func (d *LanguageDetector) Detect(ctx context.Context, pages []string) (string, error) {
	totalPages := len(pages)

	for current := totalPages / 2; current < totalPages; current++ {
		text := CleanText(pages[current])

		detected, err := d.generator.DetectLanguage(ctx, text)
		if err != nil {
			return "", err
		}
		detected = strings.ToLower(strings.TrimSpace(detected))

		if detected == UnknownLanguage || detected == "" {
			continue
		}

		if !IsKnownLanguage(detected) {
			d.logger.Debug("Model returned an unrecognized language name",
				zap.String("detected", detected),
				zap.Int("page", current),
			)
			return UnknownLanguage, nil
		}

		d.logger.Debug("Detected document language",
			zap.String("language", detected),
			zap.Int("page", current),
		)
		return detected, nil
	}

	return UnknownLanguage, nil
}
