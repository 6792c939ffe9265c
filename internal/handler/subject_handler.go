package handler

import (
	"quizbuddy/internal/domain"
	"quizbuddy/internal/dto"
	"quizbuddy/internal/service"
	"quizbuddy/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// SubjectHandler handles subject-related HTTP requests
type SubjectHandler struct {
	service   service.SubjectService
	validator *validation.Validator
}

// NewSubjectHandler creates a new SubjectHandler instance
func NewSubjectHandler(service service.SubjectService, validator *validation.Validator) *SubjectHandler {
	return &SubjectHandler{service: service, validator: validator}
}

// ListSubjects handles GET /api/quizzing/subjects
func (h *SubjectHandler) ListSubjects(c *fiber.Ctx) error {
	subjects, err := h.service.ListSubjects(c.Context(), c.Query("search"))
	if err != nil {
		return err
	}
	return c.JSON(subjects)
}

// GetSubject handles GET /api/quizzing/subjects/:id
func (h *SubjectHandler) GetSubject(c *fiber.Ctx) error {
	id := c.Params("id")
	if validationErrs := h.validator.ValidateSubjectID(id); len(validationErrs) > 0 {
		return validationErrs
	}

	subject, err := h.service.GetSubject(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(subject)
}

// CreateSubject handles POST /api/quizzing/subjects
func (h *SubjectHandler) CreateSubject(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	subject, err := h.service.CreateSubject(c.Context(), req.Title)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(subject)
}

// RenameSubject handles PUT /api/quizzing/subjects/:id
func (h *SubjectHandler) RenameSubject(c *fiber.Ctx) error {
	id := c.Params("id")
	if validationErrs := h.validator.ValidateSubjectID(id); len(validationErrs) > 0 {
		return validationErrs
	}

	var req dto.RenameSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	if err := h.service.RenameSubject(c.Context(), id, req.Title); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteSubject handles DELETE /api/quizzing/subjects/:id
func (h *SubjectHandler) DeleteSubject(c *fiber.Ctx) error {
	id := c.Params("id")
	if validationErrs := h.validator.ValidateSubjectID(id); len(validationErrs) > 0 {
		return validationErrs
	}

	if err := h.service.DeleteSubject(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
