package models

import "gorm.io/gorm"

type Enrollment struct {
	gorm.Model
	UserID   uint   `json:"userId" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
	CourseID uint   `json:"courseId" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
	Name     string `json:"name" gorm:"default:''"`
	Email    string `json:"email" gorm:"default:''"`
}
