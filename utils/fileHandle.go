package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var allowedVideoExts = map[string]bool{
	".mp4": true,
	".avi": true,
	".mov": true,
	".mkv": true,
}

// IsAllowedVideoExt reports whether the filename carries a supported
// video extension.
func IsAllowedVideoExt(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return allowedVideoExts[ext]
}

// SaveUploadedFile streams a multipart upload to destDir and returns the
// generated filename. The name embeds a uuid so simultaneous uploads for
// the same course never collide.
func SaveUploadedFile(file *multipart.FileHeader, destDir string, courseID uint) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Create destination directory if it doesn't exist
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	newFilename := fmt.Sprintf("course-%d-%s%s", courseID, uuid.NewString(), ext)
	filePath := filepath.Join(destDir, newFilename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return newFilename, nil
}
