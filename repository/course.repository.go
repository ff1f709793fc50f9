package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"coursegen/models"
	course "coursegen/models/course"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no course exists for the given identifier
var ErrNotFound = errors.New("course not found")

// CourseRepository stores and retrieves generated courses. Pure persistence:
// upsert keyed on course_id plus filter predicates, no business rules.
type CourseRepository struct {
	db *gorm.DB
}

// NewCourseRepository returns a repository over the given database handle
func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// Save upserts a course by its course_id: update in place when the
// identifier exists, insert otherwise. Returns the course identifier.
func (r *CourseRepository) Save(ctx context.Context, c *course.GeneratedCourse) (string, error) {
	row, err := toRow(c)
	if err != nil {
		return "", err
	}

	var existing models.Course
	result := r.db.WithContext(ctx).Where("course_id = ?", c.CourseID).First(&existing)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", result.Error
		}
		if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
			return "", err
		}
		return c.CourseID, nil
	}

	row.Model = existing.Model
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return "", err
	}
	return c.CourseID, nil
}

// Get retrieves a course by its course_id
func (r *CourseRepository) Get(ctx context.Context, courseID string) (*course.GeneratedCourse, error) {
	var row models.Course
	result := r.db.WithContext(ctx).Where("course_id = ?", courseID).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return fromRow(&row)
}

// List returns a page of courses, newest first, optionally filtered by
// status and level. Also returns the total matching count.
func (r *CourseRepository) List(ctx context.Context, page, limit int,
	status, level string) ([]*course.GeneratedCourse, int64, error) {

	query := r.db.WithContext(ctx).Model(&models.Course{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if level != "" {
		query = query.Where("level = ?", level)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Course
	err := query.Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return fromRows(rows, total)
}

// Search matches the query against title, description, and tags,
// case-insensitively, with optional level/status/language filters.
func (r *CourseRepository) Search(ctx context.Context, text string,
	level, status, language string, limit int) ([]*course.GeneratedCourse, error) {

	pattern := "%" + text + "%"
	query := r.db.WithContext(ctx).Model(&models.Course{}).
		Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?) OR LOWER(CAST(tags AS TEXT)) LIKE LOWER(?)",
			pattern, pattern, pattern)

	if level != "" {
		query = query.Where("level = ?", level)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if language != "" {
		query = query.Where("language = ?", language)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []models.Course
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	docs, _, err := fromRows(rows, int64(len(rows)))
	return docs, err
}

// UpdateStatus sets a course's lifecycle status. Returns false when no
// course matched.
func (r *CourseRepository) UpdateStatus(ctx context.Context, courseID string, status course.CourseStatus) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.Course{}).
		Where("course_id = ?", courseID).
		Update("status", string(status))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Enroll registers a user in a course. Enrolling twice is a no-op.
func (r *CourseRepository) Enroll(ctx context.Context, courseID, userEmail string) (bool, error) {
	var row models.Course
	result := r.db.WithContext(ctx).Where("course_id = ?", courseID).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, result.Error
	}

	var existing models.CourseEnrollment
	err := r.db.WithContext(ctx).
		Where("course_ref_id = ? AND user_email = ?", row.ID, userEmail).
		First(&existing).Error
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	enrollment := models.CourseEnrollment{
		CourseRefID:      row.ID,
		UserEmail:        userEmail,
		EnrolledAt:       time.Now(),
		CompletionStatus: "not_started",
	}
	if err := r.db.WithContext(ctx).Create(&enrollment).Error; err != nil {
		return false, err
	}
	return true, nil
}

// GetProgress returns a user's enrollment record for a course, or nil when
// the user is not enrolled
func (r *CourseRepository) GetProgress(ctx context.Context, courseID, userEmail string) (*models.CourseEnrollment, error) {
	var row models.Course
	result := r.db.WithContext(ctx).Where("course_id = ?", courseID).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}

	var enrollment models.CourseEnrollment
	err := r.db.WithContext(ctx).
		Where("course_ref_id = ? AND user_email = ?", row.ID, userEmail).
		First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &enrollment, nil
}

// UpdateProgress stores a user's progress payload and completion status
func (r *CourseRepository) UpdateProgress(ctx context.Context, courseID, userEmail string,
	progress map[string]any, completionStatus string) (bool, error) {

	var row models.Course
	result := r.db.WithContext(ctx).Where("course_id = ?", courseID).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, result.Error
	}

	raw, err := json.Marshal(progress)
	if err != nil {
		return false, err
	}

	now := time.Now()
	update := r.db.WithContext(ctx).Model(&models.CourseEnrollment{}).
		Where("course_ref_id = ? AND user_email = ?", row.ID, userEmail).
		Updates(map[string]any{
			"progress":          datatypes.JSON(raw),
			"last_accessed":     &now,
			"completion_status": completionStatus,
		})
	if update.Error != nil {
		return false, update.Error
	}
	return update.RowsAffected > 0, nil
}

// toRow serializes the structured parts of a course into JSON columns
func toRow(c *course.GeneratedCourse) (*models.Course, error) {
	modules, err := json.Marshal(c.Modules)
	if err != nil {
		return nil, err
	}
	prerequisites, err := json.Marshal(c.Prerequisites)
	if err != nil {
		return nil, err
	}
	objectives, err := json.Marshal(c.LearningObjectives)
	if err != nil {
		return nil, err
	}
	learningPath, err := json.Marshal(c.LearningPath)
	if err != nil {
		return nil, err
	}
	tags, err := json.Marshal(c.Tags)
	if err != nil {
		return nil, err
	}
	metadata, err := json.Marshal(c.Metadata)
	if err != nil {
		return nil, err
	}

	return &models.Course{
		CourseID:           c.CourseID,
		Title:              c.Title,
		Slug:               c.Slug,
		Description:        c.Description,
		Level:              string(c.Level),
		Duration:           c.Duration,
		Modules:            modules,
		Prerequisites:      prerequisites,
		LearningObjectives: objectives,
		TargetAudience:     c.TargetAudience,
		LearningPath:       learningPath,
		Tags:               tags,
		Language:           c.Language,
		Status:             string(c.Status),
		CreatedBy:          c.CreatedBy,
		CourseMetadata:     metadata,
	}, nil
}

// fromRow rebuilds the full course document from its row
func fromRow(row *models.Course) (*course.GeneratedCourse, error) {
	c := &course.GeneratedCourse{
		CourseID:       row.CourseID,
		Title:          row.Title,
		Slug:           row.Slug,
		Description:    row.Description,
		Level:          course.CourseLevel(row.Level),
		Duration:       row.Duration,
		TargetAudience: row.TargetAudience,
		Language:       row.Language,
		Status:         course.CourseStatus(row.Status),
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
		CreatedBy:      row.CreatedBy,
	}

	if len(row.Modules) > 0 {
		if err := json.Unmarshal(row.Modules, &c.Modules); err != nil {
			return nil, err
		}
	}
	if len(row.Prerequisites) > 0 {
		if err := json.Unmarshal(row.Prerequisites, &c.Prerequisites); err != nil {
			return nil, err
		}
	}
	if len(row.LearningObjectives) > 0 {
		if err := json.Unmarshal(row.LearningObjectives, &c.LearningObjectives); err != nil {
			return nil, err
		}
	}
	if len(row.LearningPath) > 0 {
		if err := json.Unmarshal(row.LearningPath, &c.LearningPath); err != nil {
			return nil, err
		}
	}
	if len(row.Tags) > 0 {
		if err := json.Unmarshal(row.Tags, &c.Tags); err != nil {
			return nil, err
		}
	}
	if len(row.CourseMetadata) > 0 {
		if err := json.Unmarshal(row.CourseMetadata, &c.Metadata); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func fromRows(rows []models.Course, total int64) ([]*course.GeneratedCourse, int64, error) {
	docs := make([]*course.GeneratedCourse, 0, len(rows))
	for i := range rows {
		doc, err := fromRow(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		docs = append(docs, doc)
	}
	return docs, total, nil
}
