package utils_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"flexopted/config"
	"flexopted/database"
	"flexopted/models"
	"flexopted/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func writeAgedFile(t *testing.T, dir, name string, age time.Duration) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("video"), 0644))
	stamp := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, stamp, stamp))
	return path
}

func TestSweepOrphanedUploads(t *testing.T) {
	dir := t.TempDir()
	config.AppConfig = &config.Config{UploadDir: dir}

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	referenced := writeAgedFile(t, dir, "course-1-keep.mp4", 48*time.Hour)
	orphanOld := writeAgedFile(t, dir, "course-1-orphan.mp4", 48*time.Hour)
	orphanFresh := writeAgedFile(t, dir, "course-1-fresh.mp4", time.Minute)

	course := models.Course{Title: "T", Description: "D", Instructor: "I"}
	require.NoError(t, course.SetVideoLinks([]string{"/uploads/videos/course-1-keep.mp4"}))
	require.NoError(t, db.Create(&course).Error)

	utils.SweepOrphanedUploads()

	assert.FileExists(t, referenced, "referenced files must survive the sweep")
	assert.FileExists(t, orphanFresh, "files younger than 24h must survive the sweep")
	assert.NoFileExists(t, orphanOld, "old unreferenced files must be removed")
}
