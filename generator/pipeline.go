package generator

import (
	"context"
	"fmt"
	"log"
	"time"

	course "coursegen/models/course"

	"golang.org/x/sync/errgroup"
)

// CourseStore persists assembled courses. Save upserts by course identifier.
type CourseStore interface {
	Save(ctx context.Context, c *course.GeneratedCourse) (string, error)
}

// Pipeline orchestrates the full generation run:
// outline -> concurrent module expansion -> optional synthesis -> assembly -> save.
type Pipeline struct {
	model       ModelClient
	outliner    *OutlineGenerator
	expander    *ModuleExpander
	synthesizer *Synthesizer
	store       CourseStore
}

// NewPipeline wires a pipeline from a model client and a course store
func NewPipeline(model ModelClient, store CourseStore) *Pipeline {
	return &Pipeline{
		model:       model,
		outliner:    NewOutlineGenerator(model),
		expander:    NewModuleExpander(model),
		synthesizer: NewSynthesizer(model),
		store:       store,
	}
}

// Generate runs the whole pipeline for one request and returns the persisted
// course. Any unrecoverable error (cancellation, store failure) aborts the
// run before anything is saved; there are no partial documents.
func (p *Pipeline) Generate(ctx context.Context, req course.CourseRequest) (*course.GeneratedCourse, error) {
	if req.Duration == "" {
		req.Duration = "4 weeks"
	}
	if req.Language == "" {
		req.Language = "english"
	}

	outline, outlineFellBack := p.outliner.Generate(ctx, req)
	log.Printf("Generated course outline with %d modules", len(outline.Modules))

	courseContext := fmt.Sprintf("Course: %s | Level: %s | Topic: %s",
		outline.Title, req.Level, req.Topic)

	// Expand all modules concurrently. Results are assigned by outline index,
	// so completion order never affects module order.
	modules := make([]course.CourseModule, len(outline.Modules))
	g, gctx := errgroup.WithContext(ctx)
	for i, stub := range outline.Modules {
		i, stub := i, stub
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			modules[i] = p.expander.Expand(gctx, stub, i, req, courseContext)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var synthesis *course.SynthesisResult
	if req.EnableSynthesis {
		result := p.synthesizer.Synthesize(ctx, outline, modules, req)
		synthesis = &result
	}

	now := time.Now()
	doc := &course.GeneratedCourse{
		CourseID:           GenerateCourseID(),
		Title:              outline.Title,
		Slug:               GenerateSlug(outline.Title),
		Description:        outline.Description,
		Level:              req.Level,
		Duration:           req.Duration,
		Modules:            modules,
		Prerequisites:      outline.Prerequisites,
		LearningObjectives: learningObjectives(req),
		TargetAudience:     targetAudience(req),
		LearningPath:       buildLearningPath(req, modules, synthesis),
		Tags:               outline.Tags,
		Language:           req.Language,
		Status:             course.StatusPublished,
		CreatedAt:          now,
		UpdatedAt:          now,
		Metadata:           buildMetadata(p.model, req, synthesis, outlineFellBack, now),
	}

	if _, err := p.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("save course: %w", err)
	}
	return doc, nil
}

func learningObjectives(req course.CourseRequest) []string {
	if len(req.LearningObjectives) > 0 {
		return req.LearningObjectives
	}
	return []string{
		"Master " + req.Topic + " fundamentals",
		"Build practical " + req.Topic + " projects",
		"Apply industry best practices",
	}
}

func targetAudience(req course.CourseRequest) string {
	if req.TargetAudience != "" {
		return req.TargetAudience
	}
	return fmt.Sprintf("%s %s learners", req.Level.Title(), req.Topic)
}

// buildLearningPath assembles the pacing plan, preferring synthesis
// enhancements when present and falling back to one milestone per module.
func buildLearningPath(req course.CourseRequest, modules []course.CourseModule,
	synthesis *course.SynthesisResult) course.LearningPath {

	milestones := make([]course.Milestone, 0, len(modules))
	for i, m := range modules {
		milestones = append(milestones, course.Milestone{Week: i + 1, Milestone: "Master " + m.Title})
	}

	schedule := make(map[string][]string, len(modules))
	for i, m := range modules {
		schedule[fmt.Sprintf("Module %d", i+1)] = []string{m.Title}
	}

	daily := "1-2 hours daily"

	if synthesis != nil {
		enh := synthesis.LearningPathEnhancements
		if len(enh.OptimizedMilestones) > 0 {
			milestones = enh.OptimizedMilestones
		}
		if enh.DailyCommitmentRecommendation != "" {
			daily = enh.DailyCommitmentRecommendation
		}
		if len(enh.PacingVariations) > 0 {
			schedule = make(map[string][]string, len(enh.PacingVariations))
			for name, plan := range enh.PacingVariations {
				schedule[name] = []string{plan}
			}
		}
	}

	return course.LearningPath{
		TotalDuration:     req.Duration,
		DailyCommitment:   daily,
		Milestones:        milestones,
		SuggestedSchedule: schedule,
	}
}

func buildMetadata(model ModelClient, req course.CourseRequest,
	synthesis *course.SynthesisResult, outlineFellBack bool, now time.Time) map[string]any {

	meta := map[string]any{
		"generator_version": "2.0.0",
		"uses_bedrock":      model.Available(),
		"generated_at":      now.Format(time.RFC3339),
		"synthesis_enabled": req.EnableSynthesis,
		"outline_fallback":  outlineFellBack,
	}
	if synthesis != nil {
		meta["quality_score"] = synthesis.OverallQualityScore.Score
	}
	return meta
}
