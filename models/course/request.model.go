package course

// CourseLevel is the difficulty level of a course
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "beginner"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

// Valid reports whether the level is one of the known values
func (l CourseLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Title returns the level with the first letter upper-cased, for templated titles
func (l CourseLevel) Title() string {
	s := string(l)
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// CourseStatus is the lifecycle status of a course
type CourseStatus string

const (
	StatusDraft     CourseStatus = "draft"
	StatusPublished CourseStatus = "published"
	StatusArchived  CourseStatus = "archived"
)

// CourseRequest carries the parameters for a course generation run.
// It is immutable once the pipeline starts.
type CourseRequest struct {
	Topic              string      `json:"topic" validate:"required"`
	Level              CourseLevel `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	Duration           string      `json:"duration"`
	LearningObjectives []string    `json:"learning_objectives"`
	TargetAudience     string      `json:"target_audience"`
	Prerequisites      []string    `json:"prerequisites"`
	IncludeAssessments bool        `json:"include_assessments"`
	IncludeProjects    bool        `json:"include_projects"`
	Language           string      `json:"language"`
	EnableSynthesis    bool        `json:"enable_synthesis"`
}
