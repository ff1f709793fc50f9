package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"coursegen/models"
	course "coursegen/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) *CourseRepository {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Course{}, &models.CourseEnrollment{}))

	return NewCourseRepository(db)
}

func sampleCourse(id, title string) *course.GeneratedCourse {
	return &course.GeneratedCourse{
		CourseID:    id,
		Title:       title,
		Slug:        "slug-" + id,
		Description: "A course about " + title,
		Level:       course.LevelBeginner,
		Duration:    "4 weeks",
		Modules: []course.CourseModule{
			{
				ModuleID:    "bedrock_module_1",
				Title:       "Getting Started",
				Description: "First steps",
				Order:       0,
				ContentSections: []course.ContentSection{
					{Title: "Intro", ContentType: "text", Content: "Welcome", DurationMinutes: 10},
				},
			},
		},
		Tags:     []string{"testing", "go"},
		Language: "english",
		Status:   course.StatusPublished,
		Metadata: map[string]any{"generator_version": "2.0.0"},
	}
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	doc := sampleCourse("bedrock_course_abc123def456", "Go Testing")
	id, err := repo.Save(ctx, doc)
	require.NoError(t, err)
	assert.Equal(t, doc.CourseID, id)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, doc.Title, got.Title)
	assert.Equal(t, doc.Level, got.Level)
	require.Len(t, got.Modules, 1)
	assert.Equal(t, "Getting Started", got.Modules[0].Title)
	require.Len(t, got.Modules[0].ContentSections, 1)
	assert.Equal(t, 10, got.Modules[0].ContentSections[0].DurationMinutes)
	assert.Equal(t, []string{"testing", "go"}, got.Tags)
	assert.Equal(t, "2.0.0", got.Metadata["generator_version"])
}

func TestSaveUpsertsByCourseID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	doc := sampleCourse("bedrock_course_upsert000001", "Original Title")
	_, err := repo.Save(ctx, doc)
	require.NoError(t, err)

	doc.Title = "Updated Title"
	doc.Tags = []string{"updated"}
	_, err = repo.Save(ctx, doc)
	require.NoError(t, err)

	// Saving the same document twice more must stay idempotent
	_, err = repo.Save(ctx, doc)
	require.NoError(t, err)

	got, err := repo.Get(ctx, doc.CourseID)
	require.NoError(t, err)
	assert.Equal(t, "Updated Title", got.Title)
	assert.Equal(t, []string{"updated"}, got.Tags)

	courses, total, err := repo.List(ctx, 1, 10, "", "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, courses, 1)
}

func TestGetNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Get(context.Background(), "bedrock_course_missing00000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListFiltersAndPaginates(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		doc := sampleCourse(fmt.Sprintf("bedrock_course_list%08d", i), fmt.Sprintf("Course %d", i))
		if i >= 3 {
			doc.Level = course.LevelAdvanced
		}
		_, err := repo.Save(ctx, doc)
		require.NoError(t, err)
	}

	courses, total, err := repo.List(ctx, 1, 2, "", "")
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, courses, 2)

	courses, total, err = repo.List(ctx, 1, 10, "", string(course.LevelAdvanced))
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, courses, 2)

	courses, total, err = repo.List(ctx, 2, 3, "", "")
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, courses, 2)
}

func TestSearchMatchesTitleDescriptionAndTags(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := sampleCourse("bedrock_course_search000001", "Kubernetes Mastery")
	_, err := repo.Save(ctx, first)
	require.NoError(t, err)

	second := sampleCourse("bedrock_course_search000002", "Cloud Basics")
	second.Description = "An introduction to kubernetes and friends"
	_, err = repo.Save(ctx, second)
	require.NoError(t, err)

	third := sampleCourse("bedrock_course_search000003", "Containers")
	third.Tags = []string{"kubernetes", "docker"}
	_, err = repo.Save(ctx, third)
	require.NoError(t, err)

	fourth := sampleCourse("bedrock_course_search000004", "Unrelated")
	_, err = repo.Save(ctx, fourth)
	require.NoError(t, err)

	results, err := repo.Search(ctx, "KUBERNETES", "", "", "", 0)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestUpdateStatusArchives(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	doc := sampleCourse("bedrock_course_arch00000001", "Doomed Course")
	_, err := repo.Save(ctx, doc)
	require.NoError(t, err)

	ok, err := repo.UpdateStatus(ctx, doc.CourseID, course.StatusArchived)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.Get(ctx, doc.CourseID)
	require.NoError(t, err)
	assert.Equal(t, course.StatusArchived, got.Status)

	ok, err = repo.UpdateStatus(ctx, "bedrock_course_missing00000", course.StatusArchived)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEnrollAndProgress(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	doc := sampleCourse("bedrock_course_enr000000001", "Enrollable")
	_, err := repo.Save(ctx, doc)
	require.NoError(t, err)

	ok, err := repo.Enroll(ctx, doc.CourseID, "user@example.com")
	require.NoError(t, err)
	assert.True(t, ok)

	// Enrolling twice is a no-op, not an error
	ok, err = repo.Enroll(ctx, doc.CourseID, "user@example.com")
	require.NoError(t, err)
	assert.True(t, ok)

	enrollment, err := repo.GetProgress(ctx, doc.CourseID, "user@example.com")
	require.NoError(t, err)
	require.NotNil(t, enrollment)
	assert.Equal(t, "not_started", enrollment.CompletionStatus)

	ok, err = repo.UpdateProgress(ctx, doc.CourseID, "user@example.com",
		map[string]any{"bedrock_module_1": "done"}, "in_progress")
	require.NoError(t, err)
	assert.True(t, ok)

	enrollment, err = repo.GetProgress(ctx, doc.CourseID, "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, "in_progress", enrollment.CompletionStatus)
	assert.NotNil(t, enrollment.LastAccessed)

	// Unknown course and unenrolled user
	ok, err = repo.Enroll(ctx, "bedrock_course_missing00000", "user@example.com")
	require.NoError(t, err)
	assert.False(t, ok)

	enrollment, err = repo.GetProgress(ctx, doc.CourseID, "other@example.com")
	require.NoError(t, err)
	assert.Nil(t, enrollment)
}
