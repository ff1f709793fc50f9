package courseValidator

import (
	"coursegen/middleware"
	course "coursegen/models/course"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Generate validates the course generation payload and passes the parsed
// request down via locals
func Generate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(course.CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Topic":
					errors["topic"] = "Topic is required!"
				case "Level":
					errors["level"] = "Level must be beginner, intermediate, or advanced!"
				default:
					errors[fieldErr.Field()] = "Invalid value!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// List validates pagination query parameters
func List() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		if page := c.QueryInt("page", 1); page < 1 {
			errors["page"] = "Page must be at least 1!"
		}
		if limit := c.QueryInt("limit", 10); limit < 1 || limit > 100 {
			errors["limit"] = "Limit must be between 1 and 100!"
		}
		if level := c.Query("level"); level != "" && !course.CourseLevel(level).Valid() {
			errors["level"] = "Level must be beginner, intermediate, or advanced!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}
		return c.Next()
	}
}

// Search requires a non-empty query string
func Search() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		if c.Query("query") == "" {
			errors["query"] = "Query is required!"
		}
		if level := c.Query("level"); level != "" && !course.CourseLevel(level).Valid() {
			errors["level"] = "Level must be beginner, intermediate, or advanced!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}
		return c.Next()
	}
}
