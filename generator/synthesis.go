package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	course "coursegen/models/course"
)

const synthesisSystemPrompt = "You are an expert curriculum synthesizer ensuring cohesive, integrated learning experiences."

// Synthesizer runs the optional cross-module synthesis pass. It consumes the
// complete set of expanded modules, so it only ever runs after the expansion
// join point, and its failure never discards already-computed modules.
type Synthesizer struct {
	model ModelClient
}

// NewSynthesizer returns a synthesizer backed by the given model
func NewSynthesizer(model ModelClient) *Synthesizer {
	return &Synthesizer{model: model}
}

// Synthesize reviews the full course for coherence and returns cross-cutting
// enhancements. Total: a parse failure yields the default synthesis record.
func (s *Synthesizer) Synthesize(ctx context.Context, outline CourseOutline,
	modules []course.CourseModule, req course.CourseRequest) course.SynthesisResult {

	type moduleSummary struct {
		ModuleNumber    int              `json:"module_number"`
		Title           string           `json:"title"`
		Description     string           `json:"description"`
		Objectives      []string         `json:"objectives"`
		ContentSections []map[string]any `json:"content_sections"`
		HasAssessment   bool             `json:"has_assessment"`
		HasActivities   bool             `json:"has_activities"`
	}

	summaries := make([]moduleSummary, 0, len(modules))
	for i, m := range modules {
		sections := make([]map[string]any, 0, len(m.ContentSections))
		for _, sec := range m.ContentSections {
			sections = append(sections, map[string]any{"title": sec.Title, "type": sec.ContentType})
		}
		summaries = append(summaries, moduleSummary{
			ModuleNumber:    i + 1,
			Title:           m.Title,
			Description:     m.Description,
			Objectives:      m.Objectives,
			ContentSections: sections,
			HasAssessment:   m.Assessment != nil,
			HasActivities:   len(m.Activities) > 0,
		})
	}

	summaryJSON, _ := json.MarshalIndent(summaries, "", "  ")

	objectives := "General mastery"
	if len(req.LearningObjectives) > 0 {
		objectives = strings.Join(req.LearningObjectives, ", ")
	}

	prompt := fmt.Sprintf(`Analyze this complete course for coherence, integration, and quality:

**Course Overview:**
- Title: %s
- Description: %s
- Level: %s
- Topic: %s
- Duration: %s
- Learning Objectives: %s

**Generated Modules:**
%s

Please provide your synthesis analysis as a JSON object with the following structure:
{
    "coherence_assessment": "Analysis of how well modules flow and build on each other",
    "learning_path_enhancements": {
        "optimized_milestones": [
            {"week": 1, "milestone": "Achievement description", "modules_covered": [1, 2]}
        ],
        "daily_commitment_recommendation": "Realistic daily time commitment",
        "pacing_variations": {
            "fast_track": "4 weeks schedule",
            "standard": "6 weeks schedule",
            "in_depth": "8 weeks schedule"
        }
    },
    "module_transitions": [
        {"from_module": 1, "to_module": 2, "transition_text": "Bridge text connecting modules"}
    ],
    "cross_references": [
        {"module": 2, "references_module": 1, "concept": "Specific concept to reference", "context": "How it connects"}
    ],
    "capstone_project": {
        "title": "Final integrative project title",
        "description": "Project description integrating all modules",
        "requirements": ["Requirement 1", "Requirement 2"],
        "learning_outcomes": ["Outcome 1", "Outcome 2"],
        "estimated_hours": 10
    },
    "quality_recommendations": [
        "Specific improvement suggestion 1",
        "Specific improvement suggestion 2"
    ],
    "overall_quality_score": {"score": 8, "justification": "Why this score"}
}`,
		outline.Title, outline.Description, req.Level, req.Topic, req.Duration,
		objectives, string(summaryJSON))

	response := s.model.Invoke(ctx, prompt, "claude-4-sonnet", synthesisSystemPrompt, 4000)

	// A response that parses but carries no quality score is template or
	// junk output, not a real analysis
	var result course.SynthesisResult
	if err := json.Unmarshal([]byte(response), &result); err != nil || result.OverallQualityScore.Score == 0 {
		log.Println("Synthesis parsing failed, using default recommendations")
		return defaultSynthesisResult()
	}
	log.Printf("Synthesis complete - quality score: %d/10", result.OverallQualityScore.Score)
	return result
}

func defaultSynthesisResult() course.SynthesisResult {
	return course.SynthesisResult{
		CoherenceAssessment: "Modules generated successfully, standard coherence expected",
		LearningPathEnhancements: course.LearningPathEnhancements{
			OptimizedMilestones:           []course.Milestone{},
			DailyCommitmentRecommendation: "1-2 hours daily",
			PacingVariations:              map[string]string{},
		},
		ModuleTransitions:      []course.ModuleTransition{},
		CrossReferences:        []course.CrossReference{},
		CapstoneProject:        nil,
		QualityRecommendations: []string{},
		OverallQualityScore:    course.QualityScore{Score: 7, Justification: "Standard AI-generated course"},
	}
}
