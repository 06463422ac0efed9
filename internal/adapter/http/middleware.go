package http

import (
	"errors"
	"log/slog"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// RequestID reuses the caller's X-Request-Id or generates one, echoes it on
// the response and stores it in the user context for logging.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, id)
		c.SetUserContext(logger.WithRequestID(c.UserContext(), id))
		return c.Next()
	}
}

// AccessLog logs one line per request after the error handler has run.
func AccessLog() fiber.Handler {
	return func(c *fiber.Ctx) error {
		started := time.Now()
		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		status := c.Response().StatusCode()
		level := slog.LevelInfo
		if status >= fiber.StatusInternalServerError {
			level = slog.LevelError
		}
		slog.Log(c.UserContext(), level, "request",
			"component", "http",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"elapsed", time.Since(started),
		)
		return nil
	}
}

// ErrorHandler maps domain errors onto the JSON error body.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status, body := classify(err)
	if status >= fiber.StatusInternalServerError {
		slog.ErrorContext(c.UserContext(), "request failed",
			"component", "http",
			"path", c.Path(),
			"error", err,
		)
	}
	return c.Status(status).JSON(body)
}

func classify(err error) (int, errorBody) {
	var (
		fe *fiber.Error
		ve *model.ValidationError
	)
	switch {
	case errors.As(err, &ve):
		return fiber.StatusBadRequest, errorBody{errorDetail{
			Code:    domain.ErrorCodeValidation,
			Message: "resume data is invalid",
			Details: ve.Problems,
		}}
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest, errorBody{errorDetail{Code: domain.ErrorCodeValidation, Message: err.Error()}}
	case errors.Is(err, domain.ErrTemplateNotFound):
		return fiber.StatusNotFound, errorBody{errorDetail{Code: domain.ErrorCodeTemplateNotFound, Message: err.Error()}}
	case errors.Is(err, domain.ErrTemplateProcessing), errors.Is(err, domain.ErrConversion):
		return fiber.StatusInternalServerError, errorBody{errorDetail{Code: domain.ErrorCodeRenderFailed, Message: "failed to generate PDF"}}
	case errors.Is(err, domain.ErrEnrichmentUnavailable):
		return fiber.StatusBadGateway, errorBody{errorDetail{Code: domain.ErrorCodeEnrichment, Message: "enrichment service unavailable"}}
	case errors.As(err, &fe):
		code := domain.ErrorCodeInternal
		switch {
		case fe.Code == fiber.StatusNotFound:
			code = domain.ErrorCodeNotFound
		case fe.Code < fiber.StatusInternalServerError:
			code = domain.ErrorCodeValidation
		}
		return fe.Code, errorBody{errorDetail{Code: code, Message: fe.Message}}
	default:
		return fiber.StatusInternalServerError, errorBody{errorDetail{Code: domain.ErrorCodeInternal, Message: "internal server error"}}
	}
}
