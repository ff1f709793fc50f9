package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"coursegen/generator"
)

// Type classifies what a workflow is for
type Type string

const (
	TypeNavigate Type = "navigate"
	TypeEducate  Type = "educate"
	TypeDeploy   Type = "deploy"
)

// Valid reports whether the type is one of the known workflow types
func (t Type) Valid() bool {
	switch t {
	case TypeNavigate, TypeEducate, TypeDeploy:
		return true
	}
	return false
}

// Request starts a conversational generation session
type Request struct {
	Type    Type   `json:"workflow_type" validate:"required,oneof=navigate educate deploy"`
	Task    string `json:"task_description" validate:"required,min=10"`
	Context string `json:"context"`
}

// Final is the finished artifact of a session
type Final struct {
	Title         string   `json:"title"`
	Markdown      string   `json:"markdown"`
	StepNames     []string `json:"step_names"`
	EstimatedTime string   `json:"estimated_time"`
	Difficulty    string   `json:"difficulty"`
}

// Generator drives one conversational workflow-generation session through
// its phases: discover -> outline -> refine (repeatable) -> finalize.
// Like the course pipeline, every phase is total: unparseable model output
// degrades to a deterministic template, never an error.
type Generator struct {
	model    generator.ModelClient
	req      Request
	outline  string
	finished *Final
}

// NewGenerator returns a fresh session generator for one request
func NewGenerator(model generator.ModelClient, req Request) *Generator {
	return &Generator{model: model, req: req}
}

// Request returns the request this session was started with
func (g *Generator) Request() Request {
	return g.req
}

// Finalized reports whether Finalize has run
func (g *Generator) Finalized() bool {
	return g.finished != nil
}

const discoverSystemPrompt = "You are a workflow design expert. Ask only the questions whose answers would change the workflow structure."

// Discover analyzes the task and returns one or two clarifying questions
func (g *Generator) Discover(ctx context.Context) []string {
	prompt := fmt.Sprintf(`A user wants a %s workflow for this task:

%s

Additional context: %s

Before designing the workflow, identify the 1-2 most important clarifying
questions. Respond as JSON: {"questions": ["question 1", "question 2"]}`,
		g.req.Type, g.req.Task, orDefault(g.req.Context, "none provided"))

	response := g.model.Invoke(ctx, prompt, "claude-4-sonnet", discoverSystemPrompt, 1000)

	var parsed struct {
		Questions []string `json:"questions"`
	}
	if err := json.Unmarshal([]byte(response), &parsed); err == nil && len(parsed.Questions) > 0 {
		if len(parsed.Questions) > 2 {
			parsed.Questions = parsed.Questions[:2]
		}
		return parsed.Questions
	}

	return []string{
		"What is the expected outcome or deliverable of this workflow?",
		"What tools or constraints should the workflow assume?",
	}
}

// GenerateOutline produces the first markdown outline, folding in the
// user's answers to the discovery questions
func (g *Generator) GenerateOutline(ctx context.Context, answers string) string {
	prompt := fmt.Sprintf(`Design a %s workflow as a markdown outline.

Task: %s
Context: %s
User answers to clarifying questions: %s

Structure the outline as:
# <workflow title>
## Step 1: <step name>
<one-line instruction>
## Step 2: ...

Use 3-7 steps. Keep each step actionable.`,
		g.req.Type, g.req.Task, orDefault(g.req.Context, "none"), answers)

	response := g.model.Invoke(ctx, prompt, "claude-4-sonnet", discoverSystemPrompt, 2000)

	if !strings.Contains(response, "## Step") {
		response = g.fallbackOutline()
	}
	g.outline = response
	return response
}

// Refine revises the current outline based on user feedback. Refining
// before an outline exists builds the fallback outline first.
func (g *Generator) Refine(ctx context.Context, feedback string) string {
	if g.outline == "" {
		g.outline = g.fallbackOutline()
	}

	prompt := fmt.Sprintf(`Here is the current workflow outline:

%s

The user requested this change: %s

Return the complete revised outline in the same markdown format.`,
		g.outline, feedback)

	response := g.model.Invoke(ctx, prompt, "claude-4-sonnet", discoverSystemPrompt, 2000)

	if strings.Contains(response, "## Step") {
		g.outline = response
	}
	return g.outline
}

// Finalize expands the agreed outline into the finished workflow document
// and extracts its step structure
func (g *Generator) Finalize(ctx context.Context) Final {
	if g.finished != nil {
		return *g.finished
	}
	if g.outline == "" {
		g.outline = g.fallbackOutline()
	}

	prompt := fmt.Sprintf(`Expand this workflow outline into a complete document.

%s

For each step add **Instruction:**, **Skills:**, **Tools:**, and
**Deliverable:** blocks. Respond as JSON:
{"title": "...", "markdown": "full markdown document",
 "step_names": ["...", "..."], "estimated_time": "...",
 "difficulty": "beginner|intermediate|advanced"}`, g.outline)

	response := g.model.Invoke(ctx, prompt, "claude-4-sonnet", discoverSystemPrompt, 4000)

	var final Final
	if err := json.Unmarshal([]byte(response), &final); err != nil {
		final = Final{}
	}
	g.repairFinal(&final)
	g.finished = &final
	return final
}

// repairFinal fills any missing field from the outline so the finalize
// phase never returns a partial artifact
func (g *Generator) repairFinal(final *Final) {
	if final.Title == "" {
		final.Title = outlineTitle(g.outline, g.req.Task)
	}
	if final.Markdown == "" {
		final.Markdown = g.outline
	}
	if len(final.StepNames) == 0 {
		final.StepNames = extractStepNames(final.Markdown)
	}
	if final.EstimatedTime == "" {
		final.EstimatedTime = "1-2 hours"
	}
	if final.Difficulty == "" {
		final.Difficulty = "intermediate"
	}
}

func (g *Generator) fallbackOutline() string {
	title := outlineTitle("", g.req.Task)
	return fmt.Sprintf(`# %s

## Step 1: Define Scope
Clarify the goal and success criteria for: %s

## Step 2: Gather Inputs
Collect the tools, access, and information the task needs.

## Step 3: Execute
Work through the task, checking progress against the success criteria.

## Step 4: Review and Document
Verify the outcome and record what was done.`, title, g.req.Task)
}

var stepHeading = regexp.MustCompile(`(?m)^## Step \d+:\s*(.+)$`)

// extractStepNames pulls the step titles out of a workflow document
func extractStepNames(markdown string) []string {
	matches := stepHeading.FindAllStringSubmatch(markdown, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSpace(m[1]))
	}
	return names
}

var firstHeading = regexp.MustCompile(`(?m)^#\s+(.+)$`)

func outlineTitle(outline, task string) string {
	if m := firstHeading.FindStringSubmatch(outline); m != nil {
		return strings.TrimSpace(m[1])
	}
	title := task
	if len(title) > 60 {
		title = title[:60]
	}
	return strings.TrimSpace(title) + " Workflow"
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
