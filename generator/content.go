package generator

import (
	"context"
	"encoding/json"
	"fmt"

	course "coursegen/models/course"
)

const contentSystemPrompt = "You are an expert instructor creating detailed educational content."

// moduleAIContent is the flat shape the model is asked to return for one module
type moduleAIContent struct {
	TheoryTitle         string            `json:"theory_title"`
	TheoryContent       string            `json:"theory_content"`
	TheoryDuration      int               `json:"theory_duration"`
	PracticalTitle      string            `json:"practical_title"`
	PracticalContent    string            `json:"practical_content"`
	PracticalDuration   int               `json:"practical_duration"`
	InteractiveTitle    string            `json:"interactive_title"`
	InteractiveContent  string            `json:"interactive_content"`
	InteractiveDuration int               `json:"interactive_duration"`
	ExerciseTitle       string            `json:"exercise_title"`
	ExerciseDescription string            `json:"exercise_description"`
	ExerciseInstructions []string         `json:"exercise_instructions"`
	ExerciseSolution    string            `json:"exercise_solution"`
	ExerciseHints       []string          `json:"exercise_hints"`
	QuizQuestions       []course.Question `json:"quiz_questions"`
	LearningObjectives  []string          `json:"learning_objectives"`
}

// ModuleExpander turns one outline stub into a full course module. Each
// expansion is independent of every other one for the same request; the
// pipeline issues them concurrently.
type ModuleExpander struct {
	model ModelClient
}

// NewModuleExpander returns a module expander backed by the given model
func NewModuleExpander(model ModelClient) *ModuleExpander {
	return &ModuleExpander{model: model}
}

// Expand produces the full content for one outline module. Like the outline
// stage it is total: unparseable output is replaced by a fixed skeleton.
// The returned module's Order always equals index, never completion order.
func (e *ModuleExpander) Expand(ctx context.Context, stub ModuleOutline, index int,
	req course.CourseRequest, courseContext string) course.CourseModule {

	systemPrompt := fmt.Sprintf("%s\n\nFocus on creating materials for %s level learners.\nCourse Context: %s",
		contentSystemPrompt, req.Level, courseContext)

	prompt := fmt.Sprintf(`Create detailed content for this course module:

Module: %s
Description: %s
Course Topic: %s
Level: %s
Target Duration: 1-2 hours of content

Generate content with the following sections:
1. Theoretical Foundation (explanation of key concepts)
2. Practical Examples (code examples, case studies)
3. Hands-on Exercise (interactive practice)

For each section, provide:
- Clear, engaging title
- Educational content (text/code as appropriate)
- Estimated duration in minutes
- Learning objectives

Also include:
- 3-5 quiz questions with multiple choice answers
- 1 practical coding/project exercise with instructions
- List of key takeaways

Format as JSON with keys: theory_title, theory_content, theory_duration,
practical_title, practical_content, practical_duration, interactive_title,
interactive_content, interactive_duration, exercise_title, exercise_description,
exercise_instructions, exercise_solution, exercise_hints, quiz_questions,
learning_objectives.`,
		stub.Title, stub.Description, req.Topic, req.Level)

	response := e.model.Invoke(ctx, prompt, "claude-4-sonnet", systemPrompt, 4000)

	var ai moduleAIContent
	if err := json.Unmarshal([]byte(response), &ai); err != nil {
		ai = fallbackModuleContent(stub, req.Topic)
	}
	fillContentDefaults(&ai, stub, req.Topic)

	sections := []course.ContentSection{
		{
			Title:           ai.TheoryTitle,
			ContentType:     "text",
			Content:         ai.TheoryContent,
			DurationMinutes: ai.TheoryDuration,
		},
		{
			Title:           ai.PracticalTitle,
			ContentType:     "code",
			Content:         ai.PracticalContent,
			DurationMinutes: ai.PracticalDuration,
		},
		{
			Title:           ai.InteractiveTitle,
			ContentType:     "interactive",
			Content:         ai.InteractiveContent,
			DurationMinutes: ai.InteractiveDuration,
		},
	}

	var activities []course.Activity
	if req.IncludeProjects {
		activities = append(activities, course.Activity{
			Title:           ai.ExerciseTitle,
			Type:            "coding_exercise",
			Description:     ai.ExerciseDescription,
			Instructions:    ai.ExerciseInstructions,
			DurationMinutes: 45,
			Difficulty:      req.Level,
			Solution:        ai.ExerciseSolution,
			Hints:           ai.ExerciseHints,
		})
	}

	var assessment *course.Assessment
	if req.IncludeAssessments {
		questions := ai.QuizQuestions
		if len(questions) == 0 {
			questions = defaultQuiz(stub.Title)
		}
		assessment = &course.Assessment{
			Type:             "quiz",
			Title:            stub.Title + " Knowledge Check",
			Questions:        questions,
			PassingScore:     0.7,
			MaxAttempts:      3,
			TimeLimitMinutes: 20,
		}
	}

	return course.CourseModule{
		ModuleID:        fmt.Sprintf("bedrock_module_%d", index+1),
		Title:           stub.Title,
		Description:     stub.Description,
		Duration:        "2 hours",
		Objectives:      ai.LearningObjectives,
		ContentSections: sections,
		Activities:      activities,
		Assessment:      assessment,
		Order:           index,
	}
}

// fallbackModuleContent is the fixed skeleton used when the model output
// cannot be parsed at all
func fallbackModuleContent(stub ModuleOutline, topic string) moduleAIContent {
	return moduleAIContent{
		TheoryTitle:         "Understanding " + stub.Title,
		TheoryContent:       "In this section, we explore the key concepts of " + stub.Title + ".",
		TheoryDuration:      25,
		PracticalTitle:      "Practical Examples",
		PracticalContent:    fmt.Sprintf("# Practical examples for %s\n\n# Example implementation\nprint('Learning %s!')", stub.Title, stub.Title),
		PracticalDuration:   30,
		InteractiveTitle:    "Hands-on Practice",
		InteractiveContent:  "Complete the following exercises to practice " + stub.Title + ".",
		InteractiveDuration: 35,
		LearningObjectives: []string{
			"Understand " + stub.Title + " fundamentals",
			"Apply concepts through exercises",
		},
	}
}

// fillContentDefaults repairs any individual missing field so assembly code
// never has to branch on what the model happened to return
func fillContentDefaults(ai *moduleAIContent, stub ModuleOutline, topic string) {
	if ai.TheoryTitle == "" {
		ai.TheoryTitle = "Understanding " + stub.Title
	}
	if ai.TheoryContent == "" {
		ai.TheoryContent = "Comprehensive overview of " + stub.Title
	}
	if ai.TheoryDuration == 0 {
		ai.TheoryDuration = 25
	}
	if ai.PracticalTitle == "" {
		ai.PracticalTitle = "Practical Examples"
	}
	if ai.PracticalContent == "" {
		ai.PracticalContent = fmt.Sprintf("# Examples for %s\nprint('Hello, %s!')", stub.Title, topic)
	}
	if ai.PracticalDuration == 0 {
		ai.PracticalDuration = 30
	}
	if ai.InteractiveTitle == "" {
		ai.InteractiveTitle = "Hands-on Practice"
	}
	if ai.InteractiveContent == "" {
		ai.InteractiveContent = "Practice exercises for " + stub.Title
	}
	if ai.InteractiveDuration == 0 {
		ai.InteractiveDuration = 35
	}
	if ai.ExerciseTitle == "" {
		ai.ExerciseTitle = stub.Title + " Challenge"
	}
	if ai.ExerciseDescription == "" {
		ai.ExerciseDescription = "Apply your knowledge of " + stub.Title
	}
	if len(ai.ExerciseInstructions) == 0 {
		ai.ExerciseInstructions = []string{
			"Analyze the problem requirements",
			"Design your solution approach",
			"Implement the solution",
			"Test with various inputs",
			"Optimize and refine",
		}
	}
	if ai.ExerciseSolution == "" {
		ai.ExerciseSolution = "# Solution provided after completion"
	}
	if len(ai.ExerciseHints) == 0 {
		ai.ExerciseHints = []string{"Break the problem into smaller parts", "Consider edge cases"}
	}
	if len(ai.LearningObjectives) == 0 {
		ai.LearningObjectives = []string{
			"Understand " + stub.Title + " concepts",
			"Apply " + stub.Title + " in practice",
			"Complete hands-on exercises",
		}
	}
}

func defaultQuiz(topic string) []course.Question {
	return []course.Question{
		{
			Question: "What is the main purpose of " + topic + "?",
			Type:     "multiple_choice",
			Options: []string{
				"Primary function A of " + topic,
				"Primary function B of " + topic,
				"Primary function C of " + topic,
				"Primary function D of " + topic,
			},
			Correct:     0,
			Explanation: "This demonstrates understanding of " + topic + " fundamentals.",
		},
	}
}
