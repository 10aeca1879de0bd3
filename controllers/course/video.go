package courseController

import (
	"flexopted/config"
	"flexopted/database"
	"flexopted/middleware"
	"flexopted/models"
	"flexopted/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// UploadVideo accepts a multipart video file, stores it on disk and
// appends its public URL to the course's video links.
func UploadVideo(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	file, err := c.FormFile("video")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Video file is required!", nil)
	}

	if !utils.IsAllowedVideoExt(file.Filename) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only video files are allowed!", nil)
	}

	var course models.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	filename, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir, courseID)
	if err != nil {
		log.Printf("Error saving uploaded file: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save video!", nil)
	}

	videoURL := "/uploads/videos/" + filename

	links, err := course.VideoLinkList()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course videos!", nil)
	}
	links = append(links, videoURL)
	if err := course.SetVideoLinks(links); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course videos!", nil)
	}

	if err := database.Database.Db.Save(&course).Error; err != nil {
		log.Printf("Error saving course %d after upload: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course videos!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video uploaded successfully!", fiber.Map{
		"videoUrl": videoURL,
	})
}

// AddVideoLink appends an external video URL to the course
func AddVideoLink(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)
	link := c.Locals("videoLink").(string)

	var course models.Course
	if err := database.Database.Db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	links, err := course.VideoLinkList()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course videos!", nil)
	}
	links = append(links, link)
	if err := course.SetVideoLinks(links); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course videos!", nil)
	}

	if err := database.Database.Db.Save(&course).Error; err != nil {
		log.Printf("Error saving course %d after add-link: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course videos!", nil)
	}

	// Best-effort reachability probe, result only logged
	go utils.CheckVideoLink(link)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video link added!", fiber.Map{
		"updatedVideos": links,
	})
}
