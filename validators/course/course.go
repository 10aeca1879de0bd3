package courseValidator

import (
	"flexopted/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CourseRequest is the validated create/update payload
type CourseRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Instructor  string   `json:"instructor"`
	VideoLinks  []string `json:"videoLinks"`
}

// CourseID validates the :id route parameter and stores it in locals
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		// Validate CourseID is a valid integer
		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", uint(courseID))
		return c.Next()
	}
}

// CreateCourse validator middleware
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}
		if strings.TrimSpace(reqData.Instructor) == "" {
			errors["instructor"] = "Instructor is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validator middleware. PUT replaces the whole record, so the
// same required fields apply as on create.
func UpdateCourse() fiber.Handler {
	return CreateCourse()
}

// AddLink validator middleware
func AddLink() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Link string `json:"link"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Link) == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Video link is required!", nil)
		}

		c.Locals("videoLink", reqData.Link)
		return c.Next()
	}
}

// ProgressRequest is the validated progress payload. Pointer fields so a
// zero index or zero percent is distinguishable from an absent field.
type ProgressRequest struct {
	VideoIndex *int `json:"videoIndex"`
	Percent    *int `json:"percent"`
}

// ReportProgress validator middleware
func ReportProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProgressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.VideoIndex == nil {
			errors["videoIndex"] = "videoIndex is required!"
		} else if *reqData.VideoIndex < 0 {
			errors["videoIndex"] = "videoIndex must not be negative!"
		}

		if reqData.Percent == nil {
			errors["percent"] = "percent is required!"
		} else if *reqData.Percent < 0 || *reqData.Percent > 100 {
			errors["percent"] = "percent must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
