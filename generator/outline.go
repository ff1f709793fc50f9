package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	course "coursegen/models/course"
)

const outlineSystemPrompt = "You are an expert course designer and educator. " +
	"Create comprehensive, engaging course outlines that are pedagogically sound and practical."

// ModuleOutline is one section stub of a course outline
type ModuleOutline struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	LearningObjectives []string `json:"learning_objectives"`
	Duration           string   `json:"duration"`
	KeyConcepts        []string `json:"key_concepts"`
}

// CourseOutline is the first-pass skeleton of a course
type CourseOutline struct {
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	Modules            []ModuleOutline `json:"modules"`
	Prerequisites      []string        `json:"prerequisites"`
	LearningPath       string          `json:"learning_path"`
	AssessmentStrategy string          `json:"assessment_strategy"`
	Tags               []string        `json:"tags"`
}

// OutlineGenerator produces a course outline from a generation request
type OutlineGenerator struct {
	model ModelClient
}

// NewOutlineGenerator returns an outline generator backed by the given model
func NewOutlineGenerator(model ModelClient) *OutlineGenerator {
	return &OutlineGenerator{model: model}
}

// Generate builds the outline for a request. It is total: malformed or
// incomplete model output is repaired field by field, and a full parse
// failure substitutes the deterministic default outline. The second return
// value reports whether the complete fallback was used.
func (g *OutlineGenerator) Generate(ctx context.Context, req course.CourseRequest) (CourseOutline, bool) {
	prompt := g.buildPrompt(req)

	response := g.model.Invoke(ctx, prompt, "claude-4-sonnet", outlineSystemPrompt, 4000)

	var outline CourseOutline
	if err := json.Unmarshal([]byte(response), &outline); err != nil {
		return g.fallbackOutline(req), true
	}

	// Repair any missing required fields
	if outline.Title == "" {
		outline.Title = defaultCourseTitle(req)
	}
	if outline.Description == "" {
		outline.Description = "Master " + req.Topic + " with this comprehensive course"
	}
	if len(outline.Modules) == 0 {
		outline.Modules = defaultModuleOutlines(req.Topic, req.Level)
	}
	if outline.Prerequisites == nil {
		outline.Prerequisites = req.Prerequisites
	}
	if len(outline.Tags) == 0 {
		outline.Tags = []string{strings.ToLower(req.Topic), string(req.Level)}
	}
	return outline, false
}

func (g *OutlineGenerator) buildPrompt(req course.CourseRequest) string {
	audience := req.TargetAudience
	if audience == "" {
		audience = "General learners"
	}
	prereqs := "None specified"
	if len(req.Prerequisites) > 0 {
		prereqs = strings.Join(req.Prerequisites, ", ")
	}
	objectives := "To be determined"
	if len(req.LearningObjectives) > 0 {
		objectives = strings.Join(req.LearningObjectives, ", ")
	}

	return fmt.Sprintf(`Create a detailed course outline for the following specifications:

Topic: %s
Level: %s
Duration: %s
Target Audience: %s
Prerequisites: %s
Learning Objectives: %s

Please provide a JSON response with the following structure:
{
    "title": "Course title",
    "description": "Comprehensive course description",
    "modules": [
        {
            "title": "Module title",
            "description": "Module description",
            "learning_objectives": ["objective 1", "objective 2"],
            "duration": "estimated duration",
            "key_concepts": ["concept 1", "concept 2"]
        }
    ],
    "prerequisites": ["prerequisite 1", "prerequisite 2"],
    "learning_path": "Description of the learning progression",
    "assessment_strategy": "How learners will be assessed",
    "tags": ["tag1", "tag2", "tag3"]
}

Make the content appropriate for %s level learners and ensure it can be completed in %s.`,
		req.Topic, req.Level, req.Duration, audience, prereqs, objectives,
		req.Level, req.Duration)
}

// fallbackOutline is the pipeline's safety net and must never fail
func (g *OutlineGenerator) fallbackOutline(req course.CourseRequest) CourseOutline {
	return CourseOutline{
		Title:              defaultCourseTitle(req),
		Description:        "Master " + req.Topic + " with this comprehensive course",
		Modules:            defaultModuleOutlines(req.Topic, req.Level),
		Prerequisites:      req.Prerequisites,
		LearningPath:       "Progressive learning path for " + req.Topic,
		AssessmentStrategy: "Quizzes, projects, and practical exercises",
		Tags:               []string{strings.ToLower(req.Topic), string(req.Level), "ai-generated"},
	}
}

func defaultCourseTitle(req course.CourseRequest) string {
	return fmt.Sprintf("Complete %s %s Course", req.Topic, req.Level.Title())
}

// defaultModuleOutlines returns the level-scaled module rotation: 3 modules
// for beginner, 4 for intermediate, 5 for advanced.
func defaultModuleOutlines(topic string, level course.CourseLevel) []ModuleOutline {
	base := []ModuleOutline{
		{Title: "Introduction to " + topic, Description: "Getting started with " + topic},
		{Title: "Core Concepts", Description: "Fundamental principles of " + topic},
		{Title: "Practical Applications", Description: "Real-world use of " + topic},
		{Title: "Advanced Techniques", Description: "Advanced " + topic + " methods"},
		{Title: "Best Practices", Description: "Industry standards for " + topic},
		{Title: "Final Project", Description: "Capstone project using " + topic},
	}

	switch level {
	case course.LevelBeginner:
		return base[:3]
	case course.LevelIntermediate:
		return base[:4]
	default:
		return base[:5]
	}
}
