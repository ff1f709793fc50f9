package courseRoutes

import (
	controllers "coursegen/controllers/course"
	"coursegen/middleware"
	validators "coursegen/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all course generation and catalog routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	courseGroup.Post("/generate", middleware.JWTMiddleware, validators.Generate(), controllers.Generate)
	courseGroup.Get("/list", validators.List(), controllers.List)
	courseGroup.Get("/search", validators.Search(), controllers.Search)
	courseGroup.Get("/:id", controllers.Get)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, controllers.Delete)

	// Enrollment and progress tracking
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, controllers.Enroll)
	courseGroup.Get("/:id/progress", middleware.JWTMiddleware, controllers.Progress)
	courseGroup.Put("/:id/progress", middleware.JWTMiddleware, controllers.UpdateProgress)
}
