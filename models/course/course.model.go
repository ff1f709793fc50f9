package course

import "time"

// ContentSection is one block of learning content within a module
type ContentSection struct {
	Title           string `json:"title"`
	ContentType     string `json:"content_type"` // text, code, interactive
	Content         string `json:"content"`
	DurationMinutes int    `json:"duration_minutes"`
}

// Activity is a hands-on exercise attached to a module
type Activity struct {
	Title           string      `json:"title"`
	Type            string      `json:"type"` // coding_exercise, project, discussion
	Description     string      `json:"description"`
	Instructions    []string    `json:"instructions"`
	DurationMinutes int         `json:"duration_minutes"`
	Difficulty      CourseLevel `json:"difficulty"`
	Solution        string      `json:"solution,omitempty"`
	Hints           []string    `json:"hints"`
}

// Question is a single quiz question
type Question struct {
	Question    string   `json:"question"`
	Type        string   `json:"type"` // multiple_choice
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
}

// Assessment is a module quiz
type Assessment struct {
	Type             string     `json:"type"`
	Title            string     `json:"title"`
	Questions        []Question `json:"questions"`
	PassingScore     float64    `json:"passing_score"`
	MaxAttempts      int        `json:"max_attempts"`
	TimeLimitMinutes int        `json:"time_limit_minutes,omitempty"`
}

// CourseModule is one fully expanded course module
type CourseModule struct {
	ModuleID        string           `json:"module_id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Duration        string           `json:"duration"`
	Objectives      []string         `json:"objectives"`
	ContentSections []ContentSection `json:"content_sections"`
	Activities      []Activity       `json:"activities"`
	Assessment      *Assessment      `json:"assessment,omitempty"`
	Order           int              `json:"order"`
}

// Milestone is a weekly learning-path milestone
type Milestone struct {
	Week           int    `json:"week"`
	Milestone      string `json:"milestone"`
	ModulesCovered []int  `json:"modules_covered,omitempty"`
}

// LearningPath describes the pacing of a course
type LearningPath struct {
	TotalDuration     string              `json:"total_duration"`
	DailyCommitment   string              `json:"daily_commitment"`
	Milestones        []Milestone         `json:"milestones"`
	SuggestedSchedule map[string][]string `json:"suggested_schedule"`
}

// GeneratedCourse is a complete assembled course document
type GeneratedCourse struct {
	CourseID           string         `json:"course_id"`
	Title              string         `json:"title"`
	Slug               string         `json:"slug"`
	Description        string         `json:"description"`
	Level              CourseLevel    `json:"level"`
	Duration           string         `json:"duration"`
	Modules            []CourseModule `json:"modules"`
	Prerequisites      []string       `json:"prerequisites"`
	LearningObjectives []string       `json:"learning_objectives"`
	TargetAudience     string         `json:"target_audience"`
	LearningPath       LearningPath   `json:"learning_path"`
	Tags               []string       `json:"tags"`
	Language           string         `json:"language"`
	Status             CourseStatus   `json:"status"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	CreatedBy          string         `json:"created_by,omitempty"`
	Metadata           map[string]any `json:"metadata"`
}
