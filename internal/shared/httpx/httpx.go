// Package httpx holds the fiber plumbing shared by every transport.
package httpx

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/init-pkg/sheet-export/domain/errs"
)

const AdminTokenHeader = "x-admin-token"

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrorBody is the JSON shape of every failed response.
type ErrorBody struct {
	Error   string `json:"error"`
	Status  int    `json:"status,omitempty"`
	Details any    `json:"details,omitempty"`
}

// ErrorHandler renders AppErrors with the status their kind maps to.
func ErrorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(c fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(ErrorBody{Error: fe.Message})
		}

		var appErr *errs.AppError
		if !errors.As(err, &appErr) {
			appErr = errs.WrapAppError(err, &errs.ErrorOpts{})
		}

		status := StatusOf(appErr)
		body := ErrorBody{Error: appErr.Error(), Details: appErr.Details}
		if appErr.Kind == errs.KindUpstream {
			body.Status = appErr.Status
		}
		if status >= http.StatusInternalServerError {
			log.Error("request failed",
				slog.String("method", c.Method()),
				slog.String("path", c.Path()),
				slog.String("error", err.Error()),
			)
		}
		return c.Status(status).JSON(body)
	}
}

func StatusOf(err *errs.AppError) int {
	switch err.Kind {
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindUnauthorized:
		return http.StatusUnauthorized
	case errs.KindUpstream:
		if err.Status >= 400 && err.Status <= 599 {
			return err.Status
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// AdminOnly rejects requests whose admin header does not match token. An
// empty token rejects everything.
func AdminOnly(token string) fiber.Handler {
	return func(c fiber.Ctx) error {
		got := c.Get(AdminTokenHeader)
		if token == "" || got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			return errs.Unauthorized()
		}
		return c.Next()
	}
}

// Bind decodes the body into dst and validates its tags.
func Bind(c fiber.Ctx, dst any) error {
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(dst); err != nil {
			return errs.WrapAppError(err, &errs.ErrorOpts{Kind: errs.KindValidation, Message: "invalid request body"})
		}
	}
	return Validate(dst)
}

func Validate(dst any) error {
	if err := validate.Struct(dst); err != nil {
		return errs.WrapAppError(err, &errs.ErrorOpts{Kind: errs.KindValidation, Message: "invalid request"})
	}
	return nil
}

type OK struct {
	Ok bool `json:"ok"`
}
