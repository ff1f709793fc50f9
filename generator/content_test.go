package generator

import (
	"context"
	"testing"

	course "coursegen/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandParsesModelOutput(t *testing.T) {
	e := NewModuleExpander(fixedModel{response: `{
		"theory_title": "Channels Explained",
		"theory_content": "Channels connect goroutines.",
		"theory_duration": 20,
		"quiz_questions": [
			{"question": "What does <- do?", "type": "multiple_choice",
			 "options": ["send/receive", "negate", "compare", "assign"],
			 "correct": 0, "explanation": "Arrow is the channel operator."}
		],
		"learning_objectives": ["Use channels"]
	}`})

	stub := ModuleOutline{Title: "Concurrency", Description: "Goroutines and channels"}
	req := course.CourseRequest{
		Topic: "Go", Level: course.LevelIntermediate,
		IncludeAssessments: true, IncludeProjects: true,
	}

	m := e.Expand(context.Background(), stub, 2, req, "ctx")

	assert.Equal(t, "bedrock_module_3", m.ModuleID)
	assert.Equal(t, 2, m.Order)
	assert.Equal(t, "Concurrency", m.Title)
	require.Len(t, m.ContentSections, 3)
	assert.Equal(t, "Channels Explained", m.ContentSections[0].Title)
	assert.Equal(t, 20, m.ContentSections[0].DurationMinutes)

	// Missing practical/interactive fields are repaired, not left empty
	assert.Equal(t, "Practical Examples", m.ContentSections[1].Title)
	assert.Equal(t, "code", m.ContentSections[1].ContentType)
	assert.NotEmpty(t, m.ContentSections[2].Content)

	require.NotNil(t, m.Assessment)
	require.Len(t, m.Assessment.Questions, 1)
	assert.Equal(t, "What does <- do?", m.Assessment.Questions[0].Question)
	assert.InDelta(t, 0.7, m.Assessment.PassingScore, 0.001)

	require.Len(t, m.Activities, 1)
	assert.Equal(t, "coding_exercise", m.Activities[0].Type)
}

func TestExpandOmitsOptionalParts(t *testing.T) {
	e := NewModuleExpander(fixedModel{response: `{}`})

	stub := ModuleOutline{Title: "Basics", Description: "Start here"}
	req := course.CourseRequest{Topic: "Go", Level: course.LevelBeginner}

	m := e.Expand(context.Background(), stub, 0, req, "ctx")

	assert.Nil(t, m.Assessment)
	assert.Empty(t, m.Activities)
	require.Len(t, m.ContentSections, 3)
}

func TestExpandFallbackOnUnparseableOutput(t *testing.T) {
	e := NewModuleExpander(fixedModel{response: "no json here"})

	stub := ModuleOutline{Title: "Basics", Description: "Start here"}
	req := course.CourseRequest{
		Topic: "Go", Level: course.LevelBeginner, IncludeAssessments: true,
	}

	m := e.Expand(context.Background(), stub, 0, req, "ctx")

	assert.Equal(t, "Understanding Basics", m.ContentSections[0].Title)
	assert.Equal(t, 25, m.ContentSections[0].DurationMinutes)
	assert.Equal(t, 30, m.ContentSections[1].DurationMinutes)
	assert.Equal(t, 35, m.ContentSections[2].DurationMinutes)

	// The default quiz backstops an empty question list
	require.NotNil(t, m.Assessment)
	require.NotEmpty(t, m.Assessment.Questions)
}
