package handler

import (
	"wikiquiz/internal/domain"
	"wikiquiz/internal/dto"
	"wikiquiz/internal/logger"
	"wikiquiz/internal/service"
	"wikiquiz/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// HealthCheck handles GET /
func (h *QuizHandler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Message: "Wikipedia Quiz Generator API is running!",
	})
}

// GenerateQuiz handles POST /generate_quiz
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	if errs := h.validator.ValidateGenerateQuizRequest(req.InputURL); len(errs) > 0 {
		return errs
	}

	record, err := h.service.GenerateQuiz(c.Context(), req.InputURL)
	if err != nil {
		logger.Get().Error("Failed to generate quiz",
			zap.String("input_url", req.InputURL),
			zap.Error(err),
		)
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}

// GetHistory handles GET /history
func (h *QuizHandler) GetHistory(c *fiber.Ctx) error {
	items, err := h.service.GetHistory(c.Context())
	if err != nil {
		logger.Get().Error("Failed to get quiz history", zap.Error(err))
		return err
	}
	return c.JSON(items)
}

// GetQuizByID handles GET /quiz/:quiz_id
func (h *QuizHandler) GetQuizByID(c *fiber.Ctx) error {
	quizID := c.Params("quiz_id")
	// A malformed id can never match a stored ULID, so it is reported the
	// same way as an absent one.
	if !validation.IsValidULID(quizID) {
		return domain.NewQuizNotFoundError(quizID)
	}

	record, err := h.service.GetQuiz(c.Context(), quizID)
	if err != nil {
		logger.Get().Error("Failed to get quiz",
			zap.String("quiz_id", quizID),
			zap.Error(err),
		)
		return err
	}
	return c.JSON(record)
}
