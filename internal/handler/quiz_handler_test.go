package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"quizbuddy/internal/config"
	"quizbuddy/internal/domain"
	"quizbuddy/internal/dto"
	"quizbuddy/internal/handler"
	"quizbuddy/internal/middleware"
	"quizbuddy/internal/service"
	"quizbuddy/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testQuizID = "01HQZX5J8N3V9K2M4P6R7T8W9A"

type quizAppMocks struct {
	quiz     *MockQuizService
	creation *MockCreationService
	subject  *MockSubjectService
}

func newQuizApp(t *testing.T) (*fiber.App, *quizAppMocks) {
	t.Helper()
	mocks := &quizAppMocks{
		quiz:     &MockQuizService{},
		creation: &MockCreationService{},
		subject:  &MockSubjectService{},
	}
	uploadCfg := config.UploadConfig{Dir: t.TempDir()}
	quizHandler := handler.NewQuizHandler(mocks.quiz, mocks.creation, mocks.subject, validation.NewValidator(), uploadCfg)

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Post("/api/quizzing/quizzes", quizHandler.CreateQuiz)
	app.Get("/api/quizzing/quizzes", quizHandler.ListQuizzes)
	app.Get("/api/quizzing/quizzes/:id", quizHandler.GetQuiz)
	app.Delete("/api/quizzing/quizzes/:id", quizHandler.DeleteQuiz)
	app.Post("/api/quizzing/quizzes/:id/share", quizHandler.ShareQuiz)
	return app, mocks
}

type createQuizForm struct {
	fields map[string]string
	files  []string
}

func defaultCreateForm() createQuizForm {
	return createQuizForm{
		fields: map[string]string{
			"api_key":             "sk-test",
			"title":               "Networking Basics",
			"success_percentage":  "50",
			"duration":            "600",
			"number_of_questions": "5",
		},
		files: []string{"notes.txt"},
	}
}

func buildMultipartRequest(t *testing.T, form createQuizForm) *http.Request {
	t.Helper()
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	for key, value := range form.fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for _, name := range form.files {
		part, err := writer.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write([]byte("some document text for quiz generation"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/quizzing/quizzes", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestCreateQuiz_Accepted(t *testing.T) {
	app, mocks := newQuizApp(t)

	var submitted service.CreateQuizParams
	mocks.creation.SubmitCreationFunc = func(params service.CreateQuizParams) (string, error) {
		submitted = params
		return "task123", nil
	}

	resp, err := app.Test(buildMultipartRequest(t, defaultCreateForm()))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)

	var body dto.CreateQuizTaskResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "task123", body.TaskID)

	assert.Equal(t, "sk-test", submitted.APIKey)
	assert.Equal(t, "Networking Basics", submitted.Title)
	assert.Equal(t, 5, submitted.NumQuestions)
	require.Len(t, submitted.FilePaths, 1)
	// The stored name is a fresh ULID, not the client's filename.
	assert.NotContains(t, submitted.FilePaths[0], "notes")
	assert.FileExists(t, submitted.FilePaths[0])
}

func TestCreateQuiz_MissingAPIKey(t *testing.T) {
	app, _ := newQuizApp(t)

	form := defaultCreateForm()
	delete(form.fields, "api_key")

	resp, err := app.Test(buildMultipartRequest(t, form))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateQuiz_NoFiles(t *testing.T) {
	app, _ := newQuizApp(t)

	form := defaultCreateForm()
	form.files = nil

	resp, err := app.Test(buildMultipartRequest(t, form))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateQuiz_UnsupportedExtension(t *testing.T) {
	app, _ := newQuizApp(t)

	form := defaultCreateForm()
	form.files = []string{"virus.exe"}

	resp, err := app.Test(buildMultipartRequest(t, form))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateQuiz_InvalidQuestionCount(t *testing.T) {
	app, _ := newQuizApp(t)

	form := defaultCreateForm()
	form.fields["number_of_questions"] = "0"

	resp, err := app.Test(buildMultipartRequest(t, form))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateQuiz_UnknownSubject(t *testing.T) {
	app, mocks := newQuizApp(t)

	mocks.subject.GetSubjectFunc = func(ctx context.Context, id string) (*dto.SubjectResponse, error) {
		return nil, domain.NewSubjectNotFoundError(id)
	}

	form := defaultCreateForm()
	form.fields["subject_id"] = testQuizID

	resp, err := app.Test(buildMultipartRequest(t, form))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetQuiz_Handler(t *testing.T) {
	app, mocks := newQuizApp(t)

	mocks.quiz.GetQuizFunc = func(ctx context.Context, id string, requesterIP string) (*dto.QuizResponse, error) {
		return &dto.QuizResponse{ID: id, Title: "Networking Basics"}, nil
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/api/quizzing/quizzes/"+testQuizID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.QuizResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Networking Basics", body.Title)
}

func TestGetQuiz_InvalidID(t *testing.T) {
	app, _ := newQuizApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/quizzing/quizzes/not-a-ulid", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetQuiz_Forbidden(t *testing.T) {
	app, mocks := newQuizApp(t)

	mocks.quiz.GetQuizFunc = func(ctx context.Context, id string, requesterIP string) (*dto.QuizResponse, error) {
		return nil, domain.NewForbiddenError("this quiz is not shared")
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/api/quizzing/quizzes/"+testQuizID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestListQuizzes_Handler(t *testing.T) {
	app, mocks := newQuizApp(t)

	var got service.ListQuizzesParams
	mocks.quiz.ListSharedQuizzesFunc = func(ctx context.Context, params service.ListQuizzesParams) (*dto.QuizListResponse, error) {
		got = params
		return &dto.QuizListResponse{Quizzes: []dto.QuizSummaryResponse{{ID: testQuizID, Title: "A"}}}, nil
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/api/quizzing/quizzes?search=tcp&limit=5&language=en", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "tcp", got.SearchQuery)
	assert.Equal(t, "en", got.Language)
	assert.Equal(t, 5, got.Limit)
}

func TestDeleteQuiz_Handler(t *testing.T) {
	app, mocks := newQuizApp(t)

	mocks.quiz.DeleteQuizFunc = func(ctx context.Context, id string, requesterIP string) error {
		return nil
	}

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/quizzing/quizzes/"+testQuizID, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestShareQuiz_Handler(t *testing.T) {
	app, mocks := newQuizApp(t)

	var gotShared bool
	mocks.quiz.SetQuizSharedFunc = func(ctx context.Context, id string, requesterIP string, shared bool) error {
		gotShared = shared
		return nil
	}

	resp, err := app.Test(httptest.NewRequest("POST", "/api/quizzing/quizzes/"+testQuizID+"/share?shared=true", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.True(t, gotShared)
}
