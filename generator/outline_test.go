package generator

import (
	"context"
	"testing"

	course "coursegen/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedModel returns the same response for every call
type fixedModel struct {
	response string
}

func (m fixedModel) Invoke(ctx context.Context, prompt, modelID, systemPrompt string, maxTokens int) string {
	return m.response
}

func (m fixedModel) Available() bool { return true }

func TestOutlineGenerateParsesModelOutput(t *testing.T) {
	g := NewOutlineGenerator(fixedModel{response: `{
		"title": "Go for Gophers",
		"description": "All about Go",
		"modules": [
			{"title": "Basics", "description": "Start here"},
			{"title": "Concurrency", "description": "Goroutines"}
		],
		"prerequisites": ["Programming basics"],
		"tags": ["go", "backend"]
	}`})

	outline, fellBack := g.Generate(context.Background(), course.CourseRequest{
		Topic: "Go", Level: course.LevelIntermediate,
	})

	assert.False(t, fellBack)
	assert.Equal(t, "Go for Gophers", outline.Title)
	require.Len(t, outline.Modules, 2)
	assert.Equal(t, "Concurrency", outline.Modules[1].Title)
	assert.Equal(t, []string{"Programming basics"}, outline.Prerequisites)
}

func TestOutlineGenerateRepairsMissingFields(t *testing.T) {
	// Valid JSON with none of the required keys: each field is repaired
	// individually, the complete fallback is not used
	g := NewOutlineGenerator(fixedModel{response: `{"unexpected": true}`})

	outline, fellBack := g.Generate(context.Background(), course.CourseRequest{
		Topic: "Docker", Level: course.LevelAdvanced,
	})

	assert.False(t, fellBack)
	assert.Equal(t, "Complete Docker Advanced Course", outline.Title)
	assert.NotEmpty(t, outline.Description)
	assert.Len(t, outline.Modules, 5)
	assert.Contains(t, outline.Tags, "docker")
}

func TestOutlineGenerateFullFallback(t *testing.T) {
	g := NewOutlineGenerator(fixedModel{response: "sorry, I cannot produce JSON"})

	outline, fellBack := g.Generate(context.Background(), course.CourseRequest{
		Topic: "SQL", Level: course.LevelBeginner,
	})

	assert.True(t, fellBack)
	assert.Equal(t, "Complete SQL Beginner Course", outline.Title)
	require.Len(t, outline.Modules, 3)
	assert.Equal(t, "Introduction to SQL", outline.Modules[0].Title)
}

func TestDefaultModuleOutlinesScaleWithLevel(t *testing.T) {
	assert.Len(t, defaultModuleOutlines("Go", course.LevelBeginner), 3)
	assert.Len(t, defaultModuleOutlines("Go", course.LevelIntermediate), 4)
	assert.Len(t, defaultModuleOutlines("Go", course.LevelAdvanced), 5)
}
