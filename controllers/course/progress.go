package courseController

import (
	"errors"
	"flexopted/database"
	"flexopted/middleware"
	"flexopted/models"
	courseValidator "flexopted/validators/course"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReportProgress records how far the user has watched one video of a
// course. Percent values only ever go up: a report below the stored
// value keeps the stored value. The read-merge-write runs inside a
// transaction with a row lock so concurrent reports serialize instead
// of losing updates.
func ReportProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	reqData, ok := c.Locals("validatedProgress").(*courseValidator.ProgressRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	videoIndex := *reqData.VideoIndex
	percent := *reqData.Percent

	var videos []models.VideoProgress

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		query := tx.Where("user_id = ? AND course_id = ?", userID, courseID)
		// SQLite has no row locks; its writes serialize on the file anyway
		if tx.Dialector.Name() == "postgres" {
			query = query.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var progress models.CourseProgress
		err := query.First(&progress).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			// First report for this course creates the record lazily
			progress = models.CourseProgress{UserID: userID, CourseID: courseID}
			videos = []models.VideoProgress{{Index: videoIndex, Percent: percent}}
			if err := progress.SetCompletedVideos(videos); err != nil {
				return err
			}
			return tx.Create(&progress).Error
		}
		if err != nil {
			return err
		}

		videos, err = progress.CompletedVideoList()
		if err != nil {
			return err
		}

		found := false
		for i := range videos {
			if videos[i].Index == videoIndex {
				if percent > videos[i].Percent {
					videos[i].Percent = percent
				}
				found = true
				break
			}
		}
		if !found {
			videos = append(videos, models.VideoProgress{Index: videoIndex, Percent: percent})
		}

		if err := progress.SetCompletedVideos(videos); err != nil {
			return err
		}
		return tx.Save(&progress).Error
	})
	if err != nil {
		log.Printf("Error saving progress for user %d course %d: %v", userID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress saved!", fiber.Map{
		"completedVideos": videos,
	})
}

// GetProgress returns the stored per-video progress. A missing record
// just means zero progress, never an error.
func GetProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	var progress models.CourseProgress
	err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
			"completedVideos": []models.VideoProgress{},
		})
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	videos, err := progress.CompletedVideoList()
	if err != nil {
		log.Printf("Error decoding progress for user %d course %d: %v", userID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"completedVideos": videos,
	})
}
