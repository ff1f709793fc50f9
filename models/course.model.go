package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course is the persisted row for a generated course. Structured parts
// (modules, learning path, tags, metadata) are stored as JSON documents so
// the full course round-trips through a single row.
type Course struct {
	gorm.Model
	CourseID           string         `json:"course_id" gorm:"uniqueIndex"`
	Title              string         `json:"title"`
	Slug               string         `json:"slug"`
	Description        string         `json:"description"`
	Level              string         `json:"level" gorm:"index"`
	Duration           string         `json:"duration"`
	Modules            datatypes.JSON `json:"modules"`
	Prerequisites      datatypes.JSON `json:"prerequisites"`
	LearningObjectives datatypes.JSON `json:"learning_objectives"`
	TargetAudience     string         `json:"target_audience"`
	LearningPath       datatypes.JSON `json:"learning_path"`
	Tags               datatypes.JSON `json:"tags"`
	Language           string         `json:"language" gorm:"default:'english'"`
	Status             string         `json:"status" gorm:"index;default:'draft'"` // draft, published, archived
	CreatedBy          string         `json:"created_by"`
	CourseMetadata     datatypes.JSON `json:"metadata"`
}

// CourseEnrollment tracks a user's enrollment and progress in a course
type CourseEnrollment struct {
	gorm.Model
	CourseRefID      uint           `json:"course_ref_id" gorm:"uniqueIndex:idx_course_user"`
	UserEmail        string         `json:"user_email" gorm:"uniqueIndex:idx_course_user"`
	EnrolledAt       time.Time      `json:"enrolled_at"`
	LastAccessed     *time.Time     `json:"last_accessed"`
	CompletionStatus string         `json:"completion_status" gorm:"default:'not_started'"` // not_started, in_progress, completed
	Progress         datatypes.JSON `json:"progress"`
}
