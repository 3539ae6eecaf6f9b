package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/attendance-service/pkg/result"
)

// renderResult writes the envelope as the response body, mapping failure
// kinds to HTTP status codes. The envelope shape itself is part of the
// contract: clients always receive is_success plus value or error_message.
func renderResult[T any](c *fiber.Ctx, res result.Result[T], successStatus int) error {
	if res.IsSuccess() {
		return c.Status(successStatus).JSON(res)
	}
	return c.Status(res.Failure().HTTPStatus()).JSON(res)
}
