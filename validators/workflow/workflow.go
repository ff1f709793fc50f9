package workflowValidator

import (
	"coursegen/middleware"
	"coursegen/workflow"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Discover validates the session-start payload and passes the parsed
// request down via locals
func Discover() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(workflow.Request)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Type":
					errors["workflow_type"] = "Type must be navigate, educate, or deploy!"
				case "Task":
					errors["task_description"] = "Task description must be at least 10 characters long!"
				default:
					errors[fieldErr.Field()] = "Invalid value!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedWorkflow", reqData)
		return c.Next()
	}
}
