package courseController

import (
	"flexopted/database"
	"flexopted/middleware"
	"flexopted/models"
	courseValidator "flexopted/validators/course"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateCourse creates a new course
func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := models.Course{
		Title:       reqData.Title,
		Description: reqData.Description,
		Instructor:  reqData.Instructor,
	}
	if err := course.SetVideoLinks(reqData.VideoLinks); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid video links!", nil)
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// GetAllCourses lists every course. Public route, no pagination.
func GetAllCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetCourseDetails returns a single course, enrolled users only
func GetCourseDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	// Check if user is enrolled
	var enrollment models.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You must enroll to view this course!", nil)
	}

	var course models.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

// UpdateCourse replaces title/description/instructor/videoLinks
func UpdateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	course.Title = reqData.Title
	course.Description = reqData.Description
	course.Instructor = reqData.Instructor
	if err := course.SetVideoLinks(reqData.VideoLinks); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid video links!", nil)
	}

	if err := database.Database.Db.Save(&course).Error; err != nil {
		log.Printf("Error updating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse removes a course together with its enrollments and
// progress records in one transaction, so a failure leaves nothing
// half-deleted.
func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("course_id = ?", courseID).Delete(&models.CourseProgress{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("course_id = ?", courseID).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&course).Error
	})
	if err != nil {
		log.Printf("Error deleting course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// GetCourseStudents lists the enrolled students of a course
func GetCourseStudents(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var students []struct {
		UserID uint   `json:"userId"`
		Name   string `json:"name"`
		Email  string `json:"email"`
	}
	if err := database.Database.Db.Model(&models.Enrollment{}).
		Select("user_id", "name", "email").
		Where("course_id = ?", courseID).
		Find(&students).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully!", students)
}
