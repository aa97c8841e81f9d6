package controller

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"eco-chat-be/internal/apperr"
	"eco-chat-be/internal/constant"
	"eco-chat-be/internal/dto"
	"eco-chat-be/internal/pkg/logger"
	"eco-chat-be/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Ask(ctx *fiber.Ctx) error
	ClassifyTrash(ctx *fiber.Ctx) error
	QuizBot(ctx *fiber.Ctx) error
	Test(ctx *fiber.Ctx) error
}

type chatbotController struct {
	service  service.IChatbotService
	validate *validator.Validate
	sysLog   logger.ILogger
}

func NewChatbotController(svc service.IChatbotService, sysLog logger.ILogger) IChatbotController {
	return &chatbotController{
		service:  svc,
		validate: validator.New(),
		sysLog:   sysLog,
	}
}

// RegisterRoutes keeps the legacy paths at the root for client compatibility.
func (c *chatbotController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	r.Get("/test", c.Test)
	r.Post("/ask", auth, c.Ask)
	r.Post("/classify-trash", auth, c.ClassifyTrash)
	r.Post("/quiz-bot", auth, c.QuizBot)
}

func (c *chatbotController) Test(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"message": "Test endpoint working"})
}

// Ask answers a query with search context. Chat-model failure is not an HTTP
// error: the legacy sentinel goes out with a 200.
func (c *chatbotController) Ask(ctx *fiber.Ctx) error {
	var req dto.QueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}
	if err := c.validate.Struct(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	identity := ctx.Locals("user_id").(string)
	c.sysLog.Debug("controller", "Ask request", map[string]interface{}{
		"identity": identity,
		"query":    req.Query,
	})

	answer, err := c.service.Ask(ctx.Context(), identity, req.Query)
	if err != nil {
		if errors.Is(err, apperr.ErrGenerationFailure) {
			return ctx.JSON(dto.AnswerResponse{Answer: constant.NoResponseSentinel})
		}
		return err
	}

	return ctx.JSON(dto.AnswerResponse{Answer: answer})
}

// ClassifyTrash accepts a multipart image, runs the classification pipeline,
// and returns either a plain error string or the advisory object. The upload
// lives in a temp file only for the duration of the request.
func (c *chatbotController) ClassifyTrash(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "No file uploaded"})
	}

	identity := ctx.Locals("user_id").(string)

	tempPath := filepath.Join(os.TempDir(), fmt.Sprintf("upload_%s_%s", uuid.NewString(), filepath.Base(fileHeader.Filename)))
	if err := ctx.SaveFile(fileHeader, tempPath); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": fmt.Sprintf("Error processing file: %v", err),
		})
	}
	defer os.Remove(tempPath)

	c.sysLog.Debug("controller", "Classify request", map[string]interface{}{
		"identity": identity,
		"filename": fileHeader.Filename,
		"size":     fileHeader.Size,
	})

	outcome, err := c.service.ClassifyTrash(ctx.Context(), identity, tempPath)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": fmt.Sprintf("Error processing file: %v", err),
		})
	}

	if outcome.StageError != "" {
		return ctx.JSON(outcome.StageError)
	}
	return ctx.JSON(outcome.Advisory)
}

// QuizBot returns the model's quiz text verbatim.
func (c *chatbotController) QuizBot(ctx *fiber.Ctx) error {
	identity := ctx.Locals("user_id").(string)

	answer, err := c.service.GenerateQuiz(ctx.Context(), identity)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": fmt.Sprintf("Error processing quiz questions: %v", err),
		})
	}

	return ctx.JSON(answer)
}
