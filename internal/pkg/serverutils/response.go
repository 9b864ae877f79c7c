package serverutils

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type envelope struct {
	Message string `json:"message"`
}

var validate = validator.New()

// ValidateRequest checks the struct's `validate` tags and returns a fiber
// 400 error with the first violation.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fiber.NewError(fiber.StatusBadRequest,
				"invalid field: "+verrs[0].Field())
		}
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	return nil
}

// ErrorHandlerMiddleware converts errors escaping controllers into JSON
// envelopes. Anything that is not an explicit fiber error is a structural
// failure of one request and maps to a generic 500; nothing partial is ever
// sent.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(envelope{Message: fiberErr.Message})
		}

		return ctx.Status(fiber.StatusInternalServerError).
			JSON(envelope{Message: "internal server error"})
	}
}
