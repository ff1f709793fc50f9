package docsController

import (
	"errors"
	"log"

	"coursegen/docs"
	"coursegen/middleware"

	"github.com/gofiber/fiber/v2"
)

var service *docs.Service

// Init wires the catalog service. Called once from main.
func Init(s *docs.Service) {
	service = s
}

// entryPayload is the request body for create and update
type entryPayload struct {
	ID       string        `json:"id"`
	Metadata docs.Metadata `json:"metadata"`
	Body     *string       `json:"body"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, docs.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, docs.ErrExists):
		return fiber.StatusConflict
	case errors.Is(err, docs.ErrInvalidSection), errors.Is(err, docs.ErrInvalidPath),
		errors.Is(err, docs.ErrMalformedFrontmatter):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func ListSection(c *fiber.Ctx) error {
	entries, err := service.ListSection(c.Params("section"))
	if err != nil {
		return middleware.JsonResponse(c, statusFor(err), false, err.Error(), nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Entries fetched successfully.", fiber.Map{
		"entries": entries,
		"count":   len(entries),
	})
}

func GetEntry(c *fiber.Ctx) error {
	entry, err := service.GetEntry(c.Params("section"), c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, statusFor(err), false, err.Error(), nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Entry fetched successfully.", entry)
}

func CreateEntry(c *fiber.Ctx) error {
	payload := new(entryPayload)
	if err := c.BodyParser(payload); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	body := ""
	if payload.Body != nil {
		body = *payload.Body
	}

	entry, err := service.CreateEntry(c.Params("section"), payload.ID, payload.Metadata, body)
	if err != nil {
		return middleware.JsonResponse(c, statusFor(err), false, err.Error(), nil)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Entry created successfully.", entry)
}

func UpdateEntry(c *fiber.Ctx) error {
	payload := new(entryPayload)
	if err := c.BodyParser(payload); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	entry, err := service.UpdateEntry(c.Params("section"), c.Params("id"), payload.Metadata, payload.Body)
	if err != nil {
		return middleware.JsonResponse(c, statusFor(err), false, err.Error(), nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Entry updated successfully.", entry)
}

func DeleteEntry(c *fiber.Ctx) error {
	if err := service.DeleteEntry(c.Params("section"), c.Params("id")); err != nil {
		return middleware.JsonResponse(c, statusFor(err), false, err.Error(), nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Entry moved to trash.", nil)
}

func ListFiles(c *fiber.Ctx) error {
	files, err := service.ListFiles(c.Params("section"), c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, statusFor(err), false, err.Error(), nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Files fetched successfully.", fiber.Map{
		"files": files,
		"count": len(files),
	})
}

func GetFileContent(c *fiber.Ctx) error {
	relPath := c.Params("*")
	content, err := service.GetFileContent(c.Params("section"), c.Params("id"), relPath)
	if err != nil {
		return middleware.JsonResponse(c, statusFor(err), false, err.Error(), nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "File fetched successfully.", content)
}

func SyncSection(c *fiber.Ctx) error {
	result, err := service.SyncSection(c.Params("section"))
	if err != nil {
		return middleware.JsonResponse(c, statusFor(err), false, err.Error(), nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section synced.", result)
}

func SyncAll(c *fiber.Ctx) error {
	results, err := service.SyncAll()
	if err != nil {
		log.Printf("Error syncing content: %v", err)
		return middleware.JsonResponse(c, statusFor(err), false, err.Error(), nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "All sections synced.", fiber.Map{
		"results": results,
	})
}
