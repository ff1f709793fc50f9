package workflowController

import (
	"errors"
	"log"

	"coursegen/middleware"
	"coursegen/workflow"

	"github.com/gofiber/fiber/v2"
)

var service *workflow.Service

// Init wires the workflow service. Called once from main.
func Init(s *workflow.Service) {
	service = s
}

func sessionID(c *fiber.Ctx) string {
	if id := c.Query("session_id"); id != "" {
		return id
	}
	return "default"
}

func Discover(c *fiber.Ctx) error {
	req := c.Locals("validatedWorkflow").(*workflow.Request)

	questions := service.Discover(c.Context(), sessionID(c), *req)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Discovery complete.", fiber.Map{
		"session_id": sessionID(c),
		"questions":  questions,
	})
}

func GenerateOutline(c *fiber.Ctx) error {
	reqData := new(struct {
		Answers string `json:"answers"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.Answers == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Answers are required!", nil)
	}

	outline, err := service.GenerateOutline(c.Context(), sessionID(c), reqData.Answers)
	if err != nil {
		if errors.Is(err, workflow.ErrNoSession) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}
		log.Printf("Outline generation failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate outline!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Outline generated.", fiber.Map{
		"outline": outline,
	})
}

func Refine(c *fiber.Ctx) error {
	reqData := new(struct {
		Message string `json:"message"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.Message == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Message is required!", nil)
	}

	outline, err := service.Refine(c.Context(), sessionID(c), reqData.Message)
	if err != nil {
		if errors.Is(err, workflow.ErrNoSession) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}
		log.Printf("Refinement failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to refine outline!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Outline refined.", fiber.Map{
		"outline": outline,
	})
}

// Finalize expands the outline into the final document and saves it into
// the content vault
func Finalize(c *fiber.Ctx) error {
	sid := sessionID(c)

	final, err := service.Finalize(c.Context(), sid)
	if err != nil {
		if errors.Is(err, workflow.ErrNoSession) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
		}
		log.Printf("Finalization failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to finalize workflow!", nil)
	}

	workflowType := workflow.Type(service.SessionStatus(sid).Type)
	workflowID, err := service.Save(workflowType, final)
	if err != nil {
		log.Printf("Saving workflow failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save workflow!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Workflow finalized.", fiber.Map{
		"workflow_id": workflowID,
		"workflow":    final,
	})
}

func SessionStatus(c *fiber.Ctx) error {
	status := service.SessionStatus(c.Params("id"))
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session status.", status)
}

func DeleteSession(c *fiber.Ctx) error {
	if !service.DeleteSession(c.Params("id")) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session deleted.", nil)
}
