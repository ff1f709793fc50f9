package main

import (
	"log"
	"time"

	"coursegen/config"
	courseController "coursegen/controllers/course"
	docsController "coursegen/controllers/docs"
	workflowController "coursegen/controllers/workflow"
	"coursegen/database"
	"coursegen/docs"
	"coursegen/generator"
	"coursegen/repository"
	"coursegen/routers/authRoutes"
	"coursegen/routers/courseRoutes"
	"coursegen/routers/docsRoutes"
	"coursegen/routers/workflowRoutes"
	"coursegen/session"
	"coursegen/utils"
	"coursegen/workflow"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// Wire the generation stack
	model := generator.NewBedrockInvoker()
	repo := repository.NewCourseRepository(database.Database.Db)
	pipeline := generator.NewPipeline(model, repo)
	courseController.Init(pipeline, repo)

	// Wire the content catalog
	catalog := docs.NewService(
		config.AppConfig.VaultPath,
		config.AppConfig.PublicPath,
		config.AppConfig.TrashOverwrite,
	)
	docsController.Init(catalog)

	// Wire workflow generation sessions
	sessions := session.NewStore(time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute)
	defer sessions.Close()
	workflowController.Init(workflow.NewService(model, sessions, catalog))

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve the mirrored content corpus
	app.Static("/content", config.AppConfig.PublicPath)

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	docsRoutes.SetupDocsRoutes(app)
	workflowRoutes.SetupWorkflowRoutes(app)

	utils.StartDocsSyncScheduler(catalog)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
