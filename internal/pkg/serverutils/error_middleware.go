package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"doc-qa-be/internal/pkg/apperror"
)

// ErrorResponse is the error payload for every failed endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// ErrorHandlerMiddleware maps errors bubbling out of controllers onto HTTP
// statuses and the shared error payload.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return ctx.Status(statusFor(appErr.Kind)).JSON(ErrorResponse{
				Error: appErr.Message,
				Kind:  string(appErr.Kind),
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse{Error: fiberErr.Message})
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: err.Error()})
	}
}

func statusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.KindSessionNotFound:
		return fiber.StatusNotFound
	case apperror.KindSessionNotReady:
		return fiber.StatusConflict
	case apperror.KindEmptyQuestion, apperror.KindBadRequest:
		return fiber.StatusBadRequest
	case apperror.KindGenerationUnavailable:
		return fiber.StatusBadGateway
	case apperror.KindModelUnavailable:
		return fiber.StatusServiceUnavailable
	case apperror.KindIndexingFailed:
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}
