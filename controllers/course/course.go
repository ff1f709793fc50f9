package courseController

import (
	"log"
	"time"

	"coursegen/generator"
	"coursegen/middleware"
	course "coursegen/models/course"
	"coursegen/repository"
	"coursegen/utils"

	"github.com/gofiber/fiber/v2"
)

var (
	pipeline *generator.Pipeline
	repo     *repository.CourseRepository
)

// Init wires the controller's collaborators. Called once from main before
// the routes are registered.
func Init(p *generator.Pipeline, r *repository.CourseRepository) {
	pipeline = p
	repo = r
}

// Generate runs the full generation pipeline. Failures are reported in-band
// with success=false and HTTP 200 so clients always get the same envelope.
func Generate(c *fiber.Ctx) error {
	req := c.Locals("validatedCourse").(*course.CourseRequest)

	start := time.Now()
	doc, err := pipeline.Generate(c.Context(), *req)
	elapsed := time.Since(start).Seconds()

	if err != nil {
		log.Printf("Course generation failed: %v", err)
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success":         false,
			"course_id":       nil,
			"message":         "Course generation failed: " + err.Error(),
			"course":          nil,
			"generation_time": elapsed,
		})
	}

	if email, ok := c.Locals("email").(string); ok && email != "" {
		go utils.SendCourseReadyEmail(email, doc.Title, doc.CourseID)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":         true,
		"course_id":       doc.CourseID,
		"message":         "Course generated successfully",
		"course":          doc,
		"generation_time": elapsed,
	})
}

func List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	status := c.Query("status")
	level := c.Query("level")

	courses, total, err := repo.List(c.Context(), page, limit, status, level)
	if err != nil {
		log.Printf("Error listing courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to list courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", fiber.Map{
		"courses":     courses,
		"total_count": total,
		"page":        page,
		"limit":       limit,
	})
}

func Search(c *fiber.Ctx) error {
	query := c.Query("query")
	level := c.Query("level")
	limit := c.QueryInt("limit", 20)

	courses, err := repo.Search(c.Context(), query, level, "", "", limit)
	if err != nil {
		log.Printf("Error searching courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to search courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Search completed.", fiber.Map{
		"courses": courses,
		"count":   len(courses),
	})
}

func Get(c *fiber.Ctx) error {
	courseID := c.Params("id")

	doc, err := repo.Get(c.Context(), courseID)
	if err != nil {
		if err == repository.ErrNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		log.Printf("Error fetching course %s: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully.", doc)
}

// Delete archives a course instead of removing it
func Delete(c *fiber.Ctx) error {
	courseID := c.Params("id")

	matched, err := repo.UpdateStatus(c.Context(), courseID, course.StatusArchived)
	if err != nil {
		log.Printf("Error archiving course %s: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}
	if !matched {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course archived successfully.", fiber.Map{
		"course_id": courseID,
	})
}

func Enroll(c *fiber.Ctx) error {
	courseID := c.Params("id")
	email := c.Locals("email").(string)

	ok, err := repo.Enroll(c.Context(), courseID, email)
	if err != nil {
		log.Printf("Error enrolling in course %s: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll!", nil)
	}
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled successfully.", fiber.Map{
		"course_id": courseID,
	})
}

func Progress(c *fiber.Ctx) error {
	courseID := c.Params("id")
	email := c.Locals("email").(string)

	enrollment, err := repo.GetProgress(c.Context(), courseID, email)
	if err != nil {
		if err == repository.ErrNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		log.Printf("Error fetching progress for %s: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}
	if enrollment == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Not enrolled in this course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully.", enrollment)
}

func UpdateProgress(c *fiber.Ctx) error {
	courseID := c.Params("id")
	email := c.Locals("email").(string)

	reqData := new(struct {
		Progress         map[string]any `json:"progress"`
		CompletionStatus string         `json:"completion_status"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.CompletionStatus == "" {
		reqData.CompletionStatus = "in_progress"
	}

	ok, err := repo.UpdateProgress(c.Context(), courseID, email, reqData.Progress, reqData.CompletionStatus)
	if err != nil {
		log.Printf("Error updating progress for %s: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Not enrolled in this course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully.", fiber.Map{
		"course_id": courseID,
	})
}
