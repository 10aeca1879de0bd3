package utils

import (
	"flexopted/config"
	"flexopted/database"
	"flexopted/models"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// SweepOrphanedUploads deletes files in the upload directory that no
// course references anymore. A full PUT on a course can drop upload URLs
// from videoLinks without touching the disk, so the files pile up until
// something removes them. Files younger than 24h are skipped in case an
// upload finished after the reference scan started.
func SweepOrphanedUploads() {
	uploadDir := config.AppConfig.UploadDir

	entries, err := os.ReadDir(uploadDir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Upload sweep: cannot read %s: %v", uploadDir, err)
		}
		return
	}

	var courses []models.Course
	if err := database.Database.Db.Find(&courses).Error; err != nil {
		log.Printf("Upload sweep: cannot list courses: %v", err)
		return
	}

	referenced := make(map[string]bool)
	for i := range courses {
		links, err := courses[i].VideoLinkList()
		if err != nil {
			continue
		}
		for _, link := range links {
			// Uploaded links look like /uploads/videos/<filename>
			if idx := strings.LastIndex(link, "/"); idx >= 0 {
				referenced[link[idx+1:]] = true
			}
		}
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || referenced[entry.Name()] {
			continue
		}
		info, err := entry.Info()
		if err != nil || time.Since(info.ModTime()) < 24*time.Hour {
			continue
		}
		if err := os.Remove(filepath.Join(uploadDir, entry.Name())); err != nil {
			log.Printf("Upload sweep: cannot remove %s: %v", entry.Name(), err)
			continue
		}
		removed++
	}

	if removed > 0 {
		log.Printf("Upload sweep: removed %d orphaned file(s)", removed)
	}
}

// InitializeUploadSweeper schedules the nightly orphaned-upload sweep
func InitializeUploadSweeper() *cron.Cron {
	c := cron.New()

	c.AddFunc("0 3 * * *", SweepOrphanedUploads)
	c.Start()

	log.Println("Upload sweeper scheduled (daily at 03:00)")
	return c
}
