package courseController

import (
	"errors"
	"flexopted/database"
	"flexopted/middleware"
	"flexopted/models"
	"flexopted/utils"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EnrollInCourse enrolls the calling user in a course. Name and email are
// copied from the token identity so the students listing needs no join.
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	// Check if user is already enrolled
	var existing models.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Already enrolled", nil)
	}

	name, _ := c.Locals("name").(string)
	email, _ := c.Locals("email").(string)

	enrollment := models.Enrollment{
		UserID:   userID,
		CourseID: courseID,
		Name:     name,
		Email:    email,
	}

	if err := database.Database.Db.Create(&enrollment).Error; err != nil {
		// The unique index on (user_id, course_id) backstops the check
		// above when two enroll requests race.
		if isDuplicateKeyError(err) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Already enrolled", nil)
		}
		log.Printf("Error creating enrollment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	go utils.SendEnrollmentEmail(email, name, courseID)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled successfully!", enrollment)
}

func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
