package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// VideoProgress is one entry of a CourseProgress record: how much of the
// video at Index the user has watched.
type VideoProgress struct {
	Index   int `json:"index"`
	Percent int `json:"percent"`
}

type CourseProgress struct {
	gorm.Model
	UserID          uint           `json:"userId" gorm:"uniqueIndex:idx_progress_user_course;not null"`
	CourseID        uint           `json:"courseId" gorm:"uniqueIndex:idx_progress_user_course;not null"`
	CompletedVideos datatypes.JSON `json:"completedVideos" gorm:"default:'[]'"`
}

// CompletedVideoList decodes the stored JSON array of per-video progress.
func (p *CourseProgress) CompletedVideoList() ([]VideoProgress, error) {
	videos := []VideoProgress{}
	if len(p.CompletedVideos) == 0 {
		return videos, nil
	}
	if err := json.Unmarshal(p.CompletedVideos, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// SetCompletedVideos encodes the given entries into the JSON column.
func (p *CourseProgress) SetCompletedVideos(videos []VideoProgress) error {
	if videos == nil {
		videos = []VideoProgress{}
	}
	data, err := json.Marshal(videos)
	if err != nil {
		return err
	}
	p.CompletedVideos = datatypes.JSON(data)
	return nil
}
