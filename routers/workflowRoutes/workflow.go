package workflowRoutes

import (
	controllers "coursegen/controllers/workflow"
	"coursegen/middleware"
	validators "coursegen/validators/workflow"

	"github.com/gofiber/fiber/v2"
)

// SetupWorkflowRoutes sets up the conversational workflow generation routes
func SetupWorkflowRoutes(app *fiber.App) {
	workflowGroup := app.Group("/workflow", middleware.JWTMiddleware)

	workflowGroup.Post("/discover", validators.Discover(), controllers.Discover)
	workflowGroup.Post("/generate-outline", controllers.GenerateOutline)
	workflowGroup.Post("/refine", controllers.Refine)
	workflowGroup.Post("/finalize", controllers.Finalize)

	workflowGroup.Get("/session/:id", controllers.SessionStatus)
	workflowGroup.Delete("/session/:id", controllers.DeleteSession)
}
