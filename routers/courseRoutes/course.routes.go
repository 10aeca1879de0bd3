package courseRoutes

import (
	controllers "flexopted/controllers/course"
	"flexopted/middleware"
	validators "flexopted/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses")

	// Listing is public, everything else requires a token
	courseGroup.Get("/", controllers.GetAllCourses)
	courseGroup.Post("/", middleware.JWTMiddleware, validators.CreateCourse(), controllers.CreateCourse)

	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)
	courseGroup.Put("/:id", middleware.JWTMiddleware, validators.CourseID(), validators.UpdateCourse(), controllers.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.DeleteCourse)

	// Enrollment
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)
	courseGroup.Get("/:id/students", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseStudents)

	// Video management
	courseGroup.Post("/:id/upload-video", middleware.JWTMiddleware, validators.CourseID(), controllers.UploadVideo)
	courseGroup.Post("/:id/add-link", middleware.JWTMiddleware, validators.CourseID(), validators.AddLink(), controllers.AddVideoLink)

	// Progress tracking
	courseGroup.Post("/:id/progress", middleware.JWTMiddleware, validators.CourseID(), validators.ReportProgress(), controllers.ReportProgress)
	courseGroup.Get("/:id/progress", middleware.JWTMiddleware, validators.CourseID(), controllers.GetProgress)
}
