package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"quizbuddy/internal/config"
	"quizbuddy/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// questionPromptTemplate instructs the model to produce one structured
// question per call. The three fixed failure messages are load-bearing:
// the pipeline classifies failed candidates by matching their keywords.
const questionPromptTemplate = `Based on the below exam material text, generate a single exam question. Apply the following rules:
- %s
- Create exactly 4 answers for the question.
- Exactly one answer must have "is_correct" set to true.
- The generated question must be meaningful and relevant to the provided content.
- The question must be in the form of a question, not a statement.
- The question must not contain anything directly from the examples of the provided content, instead, it should be based on the content, or the subjects of the content.
- Respond with ONLY a JSON object of the following shape:
{"title": "...", "answers": [{"title": "...", "is_correct": false}], "language": "...", "success": true, "message": ""}
- If you are unable to generate a question based on the provided rules and content, leave the title and answer titles empty, set the "success" field to false and add a message (in english), using the following rules for the message:
- - If the content is too short, use the exact message: "The content is too short to generate a question."
- - If the content is irrelevant, use the exact message: "The content is irrelevant to generate a question."
- - If the content is too vague, use the exact message: "The content is too vague to generate a question."
- - If none of the above apply, use the exact message: "The question could not be generated." + additional text that provides a reason as to why the question could not be generated.

Text:
%s`

const detectLanguagePromptTemplate = "What language is the following text written in? Respond with the English name of the language only. If you do not know, respond with lower case 'unknown'.\n%s"

// OpenAIGenerator implements domain.QuestionGenerator against the OpenAI
// chat API through langchaingo. One instance is bound to one caller's API
// key for the duration of a run.
type OpenAIGenerator struct {
	questionLLM llms.Model
	detectorLLM llms.Model
	logger      *zap.Logger
}

// NewOpenAIGenerator creates a generator using the given API key. The
// question model and the (cheaper) detector model are configured
// separately.
func NewOpenAIGenerator(apiKey string, cfg config.OpenAIConfig, logger *zap.Logger) (*OpenAIGenerator, error) {
	if apiKey == "" {
		return nil, domain.NewInvalidInputError("OpenAI API key cannot be empty")
	}

	questionLLM, err := openai.New(openai.WithToken(apiKey), openai.WithModel(cfg.Model))
	if err != nil {
		return nil, fmt.Errorf("failed to create question LLM client: %w", err)
	}
	detectorLLM, err := openai.New(openai.WithToken(apiKey), openai.WithModel(cfg.DetectorModel))
	if err != nil {
		return nil, fmt.Errorf("failed to create detector LLM client: %w", err)
	}

	return &OpenAIGenerator{
		questionLLM: questionLLM,
		detectorLLM: detectorLLM,
		logger:      logger,
	}, nil
}

// NewGeneratorFactory returns a constructor binding per-request API keys
// to fresh generators.
func NewGeneratorFactory(cfg config.OpenAIConfig, logger *zap.Logger) func(apiKey string) (domain.QuestionGenerator, error) {
	return func(apiKey string) (domain.QuestionGenerator, error) {
		return NewOpenAIGenerator(apiKey, cfg, logger)
	}
}

// GenerateQuestion makes a single structured-output call for one trimmed
// segment. It never retries; the pipeline owns the retry policy.
func (g *OpenAIGenerator) GenerateQuestion(ctx context.Context, content string, language string) (*domain.CandidateQuestion, error) {
	languageRule := "Detect the question's language based on the material text."
	if language != "" {
		languageRule = fmt.Sprintf("The question's language must be %s.", language)
	}
	prompt := fmt.Sprintf(questionPromptTemplate, languageRule, content)

	response, err := llms.GenerateFromSinglePrompt(ctx, g.questionLLM, prompt,
		llms.WithTemperature(0.2),
		llms.WithJSONMode(),
	)
	if err != nil {
		return nil, fmt.Errorf("question generation call failed: %w", err)
	}

	var candidate domain.CandidateQuestion
	if err := json.Unmarshal([]byte(stripCodeFences(response)), &candidate); err != nil {
		g.logger.Error("Failed to parse structured LLM response",
			zap.Error(err),
			zap.String("response", response),
		)
		return nil, domain.NewLLMServiceError(err)
	}

	return &candidate, nil
}

// DetectLanguage asks the detector model for the language of the text.
func (g *OpenAIGenerator) DetectLanguage(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(detectLanguagePromptTemplate, text)

	response, err := llms.GenerateFromSinglePrompt(ctx, g.detectorLLM, prompt, llms.WithTemperature(0))
	if err != nil {
		return "", fmt.Errorf("language detection call failed: %w", err)
	}

	return strings.ToLower(strings.TrimSpace(response)), nil
}

// stripCodeFences removes a ```json ... ``` wrapper some models emit even
// in JSON mode.
func stripCodeFences(response string) string {
	response = strings.TrimSpace(response)
	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")
	return strings.TrimSpace(response)
}

var _ domain.QuestionGenerator = (*OpenAIGenerator)(nil)
