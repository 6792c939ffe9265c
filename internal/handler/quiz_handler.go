package handler

import (
	"fmt"
	"path/filepath"
	"strconv"

	"quizbuddy/internal/config"
	"quizbuddy/internal/docloader"
	"quizbuddy/internal/domain"
	"quizbuddy/internal/dto"
	"quizbuddy/internal/logger"
	"quizbuddy/internal/service"
	"quizbuddy/internal/util"
	"quizbuddy/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	quizService     service.QuizService
	creationService service.QuizCreationService
	subjectService  service.SubjectService
	validator       *validation.Validator
	uploadCfg       config.UploadConfig
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(
	quizService service.QuizService,
	creationService service.QuizCreationService,
	subjectService service.SubjectService,
	validator *validation.Validator,
	uploadCfg config.UploadConfig,
) *QuizHandler {
	return &QuizHandler{
		quizService:     quizService,
		creationService: creationService,
		subjectService:  subjectService,
		validator:       validator,
		uploadCfg:       uploadCfg,
	}
}

// CreateQuiz handles POST /api/quizzing/quizzes. It validates the
// multipart form, stores the uploads under fresh names and submits the
// creation job; generation itself happens in the background.
func (h *QuizHandler) CreateQuiz(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return domain.NewInvalidInputError("request must be multipart/form-data")
	}

	successPercentage := formInt(c, "success_percentage", 50)
	duration := formInt(c, "duration", 600)
	numQuestions := formInt(c, "number_of_questions", 0)
	files := form.File["files"]

	fields := validation.CreateQuizFields{
		APIKey:            c.FormValue("api_key"),
		SubjectID:         c.FormValue("subject_id"),
		Title:             c.FormValue("title"),
		SuccessPercentage: successPercentage,
		Duration:          duration,
		NumQuestions:      numQuestions,
		FileCount:         len(files),
	}
	if validationErrs := h.validator.ValidateCreateQuizRequest(fields); len(validationErrs) > 0 {
		return validationErrs
	}

	for _, file := range files {
		if !docloader.IsSupported(file.Filename) {
			return domain.NewInvalidInputError(fmt.Sprintf("unsupported file type: %s", file.Filename))
		}
	}

	if fields.SubjectID != "" {
		if _, err := h.subjectService.GetSubject(c.Context(), fields.SubjectID); err != nil {
			return err
		}
	}

	// Uploads get fresh ULID names so concurrent requests with identical
	// filenames cannot collide.
	savedPaths := make([]string, 0, len(files))
	for _, file := range files {
		path := filepath.Join(h.uploadCfg.Dir, util.NewULID()+"."+util.GetFileExtension(file.Filename))
		if err := c.SaveFile(file, path); err != nil {
			util.RemoveFiles(savedPaths)
			return domain.NewInternalError("failed to store uploaded file", err)
		}
		savedPaths = append(savedPaths, path)
	}

	taskID, err := h.creationService.SubmitCreation(service.CreateQuizParams{
		APIKey:            fields.APIKey,
		SubjectID:         fields.SubjectID,
		Title:             fields.Title,
		SuccessPercentage: successPercentage,
		Description:       c.FormValue("description"),
		Duration:          duration,
		NumQuestions:      numQuestions,
		OwnerIP:           c.IP(),
		FilePaths:         savedPaths,
	})
	if err != nil {
		return err
	}

	logger.Get().Info("Quiz creation accepted",
		zap.String("task_id", taskID),
		zap.Int("files", len(savedPaths)),
		zap.Int("num_questions", numQuestions),
	)
	return c.Status(fiber.StatusAccepted).JSON(dto.CreateQuizTaskResponse{TaskID: taskID})
}

// GetQuiz handles GET /api/quizzing/quizzes/:id
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	id := c.Params("id")
	if validationErrs := h.validator.ValidateQuizID(id); len(validationErrs) > 0 {
		return validationErrs
	}

	quiz, err := h.quizService.GetQuiz(c.Context(), id, c.IP())
	if err != nil {
		return err
	}
	return c.JSON(quiz)
}

// ListQuizzes handles GET /api/quizzing/quizzes
func (h *QuizHandler) ListQuizzes(c *fiber.Ctx) error {
	response, err := h.quizService.ListSharedQuizzes(c.Context(), service.ListQuizzesParams{
		SearchQuery: c.Query("search"),
		SubjectID:   c.Query("subject_id"),
		Language:    c.Query("language"),
		Cursor:      c.Query("cursor"),
		Limit:       c.QueryInt("limit", 20),
	})
	if err != nil {
		return err
	}
	return c.JSON(response)
}

// DeleteQuiz handles DELETE /api/quizzing/quizzes/:id
func (h *QuizHandler) DeleteQuiz(c *fiber.Ctx) error {
	id := c.Params("id")
	if validationErrs := h.validator.ValidateQuizID(id); len(validationErrs) > 0 {
		return validationErrs
	}

	if err := h.quizService.DeleteQuiz(c.Context(), id, c.IP()); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ShareQuiz handles POST /api/quizzing/quizzes/:id/share
func (h *QuizHandler) ShareQuiz(c *fiber.Ctx) error {
	id := c.Params("id")
	if validationErrs := h.validator.ValidateQuizID(id); len(validationErrs) > 0 {
		return validationErrs
	}

	shared := c.QueryBool("shared", true)
	if err := h.quizService.SetQuizShared(c.Context(), id, c.IP(), shared); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func formInt(c *fiber.Ctx, field string, fallback int) int {
	raw := c.FormValue(field)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return value
}
