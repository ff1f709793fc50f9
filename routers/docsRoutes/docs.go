package docsRoutes

import (
	controllers "coursegen/controllers/docs"
	"coursegen/middleware"
	validators "coursegen/validators/docs"

	"github.com/gofiber/fiber/v2"
)

// SetupDocsRoutes sets up the content catalog routes
func SetupDocsRoutes(app *fiber.App) {
	docsGroup := app.Group("/docs")

	// Sync routes first so "sync" is not captured as a section name
	docsGroup.Post("/sync", middleware.JWTMiddleware, controllers.SyncAll)
	docsGroup.Post("/sync/:section", middleware.JWTMiddleware, validators.Section(), controllers.SyncSection)

	docsGroup.Get("/:section", validators.Section(), controllers.ListSection)
	docsGroup.Post("/:section", middleware.JWTMiddleware, validators.Section(), validators.CreateEntry(), controllers.CreateEntry)
	docsGroup.Get("/:section/:id", validators.Section(), validators.EntryID(), controllers.GetEntry)
	docsGroup.Put("/:section/:id", middleware.JWTMiddleware, validators.Section(), validators.EntryID(), controllers.UpdateEntry)
	docsGroup.Delete("/:section/:id", middleware.JWTMiddleware, validators.Section(), validators.EntryID(), controllers.DeleteEntry)

	docsGroup.Get("/:section/:id/files", validators.Section(), validators.EntryID(), controllers.ListFiles)
	docsGroup.Get("/:section/:id/files/*", validators.Section(), validators.EntryID(), controllers.GetFileContent)
}
