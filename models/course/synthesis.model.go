package course

// LearningPathEnhancements carries the pacing recommendations of a synthesis pass
type LearningPathEnhancements struct {
	OptimizedMilestones           []Milestone       `json:"optimized_milestones"`
	DailyCommitmentRecommendation string            `json:"daily_commitment_recommendation"`
	PacingVariations              map[string]string `json:"pacing_variations"`
}

// ModuleTransition bridges two adjacent modules
type ModuleTransition struct {
	FromModule     int    `json:"from_module"`
	ToModule       int    `json:"to_module"`
	TransitionText string `json:"transition_text"`
}

// CrossReference links a concept in one module back to another
type CrossReference struct {
	Module           int    `json:"module"`
	ReferencesModule int    `json:"references_module"`
	Concept          string `json:"concept"`
	Context          string `json:"context"`
}

// CapstoneProject is a final integrative project spanning all modules
type CapstoneProject struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Requirements     []string `json:"requirements"`
	LearningOutcomes []string `json:"learning_outcomes"`
	EstimatedHours   int      `json:"estimated_hours"`
}

// QualityScore is the synthesis pass's overall course rating
type QualityScore struct {
	Score         int    `json:"score"` // 0-10
	Justification string `json:"justification"`
}

// SynthesisResult is the cross-module analysis produced after all modules
// have been expanded
type SynthesisResult struct {
	CoherenceAssessment      string                   `json:"coherence_assessment"`
	LearningPathEnhancements LearningPathEnhancements `json:"learning_path_enhancements"`
	ModuleTransitions        []ModuleTransition       `json:"module_transitions"`
	CrossReferences          []CrossReference         `json:"cross_references"`
	CapstoneProject          *CapstoneProject         `json:"capstone_project"`
	QualityRecommendations   []string                 `json:"quality_recommendations"`
	OverallQualityScore      QualityScore             `json:"overall_quality_score"`
}
