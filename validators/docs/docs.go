package docsValidator

import (
	"regexp"

	"coursegen/docs"
	"coursegen/middleware"

	"github.com/gofiber/fiber/v2"
)

var entryIDPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// Section rejects requests for sections the catalog does not know
func Section() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !docs.ValidSection(c.Params("section")) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unknown section!", nil)
		}
		return c.Next()
	}
}

// EntryID rejects malformed entry identifiers before they reach the
// filesystem layer
func EntryID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !entryIDPattern.MatchString(c.Params("id")) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid entry id!", nil)
		}
		return c.Next()
	}
}

// CreateEntry validates the creation payload's id field
func CreateEntry() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ID string `json:"id"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if !entryIDPattern.MatchString(reqData.ID) {
			errors["id"] = "Id must contain only lowercase letters, digits, hyphens, and underscores!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}
		return c.Next()
	}
}
