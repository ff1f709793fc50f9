package workflow

import (
	"context"
	"strings"
	"testing"
	"time"

	"coursegen/docs"
	"coursegen/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// silentModel simulates an unreachable model runtime: every phase must
// still complete through its template path.
type silentModel struct{}

func (silentModel) Invoke(ctx context.Context, prompt, modelID, systemPrompt string, maxTokens int) string {
	return "not json and not an outline"
}

func (silentModel) Available() bool { return false }

func newTestWorkflowService(t *testing.T) *Service {
	t.Helper()
	store := session.NewStore(time.Minute)
	t.Cleanup(store.Close)
	catalog := docs.NewService(t.TempDir(), t.TempDir(), true)
	return NewService(silentModel{}, store, catalog)
}

func TestSessionLifecycle(t *testing.T) {
	svc := newTestWorkflowService(t)
	ctx := context.Background()

	req := Request{Type: TypeDeploy, Task: "Deploy a static site to a CDN"}
	questions := svc.Discover(ctx, "sess-1", req)
	assert.NotEmpty(t, questions)
	assert.LessOrEqual(t, len(questions), 2)

	status := svc.SessionStatus("sess-1")
	assert.True(t, status.Exists)
	assert.Equal(t, "deploy", status.Type)
	assert.False(t, status.Finalized)

	outline, err := svc.GenerateOutline(ctx, "sess-1", "The site is plain HTML, no build step")
	require.NoError(t, err)
	assert.Contains(t, outline, "## Step 1:")

	refined, err := svc.Refine(ctx, "sess-1", "Add a rollback step")
	require.NoError(t, err)
	assert.Contains(t, refined, "## Step")

	final, err := svc.Finalize(ctx, "sess-1")
	require.NoError(t, err)
	assert.NotEmpty(t, final.Title)
	assert.NotEmpty(t, final.Markdown)
	assert.NotEmpty(t, final.StepNames)
	assert.Equal(t, "intermediate", final.Difficulty)

	assert.True(t, svc.SessionStatus("sess-1").Finalized)
	assert.True(t, svc.DeleteSession("sess-1"))
	assert.False(t, svc.SessionStatus("sess-1").Exists)
}

func TestPhasesRequireSession(t *testing.T) {
	svc := newTestWorkflowService(t)
	ctx := context.Background()

	_, err := svc.GenerateOutline(ctx, "ghost", "answers")
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = svc.Refine(ctx, "ghost", "feedback")
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = svc.Finalize(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNoSession)

	assert.False(t, svc.DeleteSession("ghost"))
}

func TestSaveNumbersEntriesPerDay(t *testing.T) {
	svc := newTestWorkflowService(t)

	final := Final{
		Title:         "Deploy Static Site",
		Markdown:      "# Deploy Static Site\n\n## Step 1: Build\nBuild it.",
		StepNames:     []string{"Build"},
		EstimatedTime: "30 minutes",
		Difficulty:    "beginner",
	}

	first, err := svc.Save(TypeDeploy, final)
	require.NoError(t, err)
	assert.Contains(t, first, "_001_deploy_static_site")

	second, err := svc.Save(TypeDeploy, final)
	require.NoError(t, err)
	assert.Contains(t, second, "_002_deploy_static_site")

	entry, err := svc.catalog.GetEntry("workflows", first)
	require.NoError(t, err)
	assert.Equal(t, "Deploy Static Site", entry.Metadata.Title)
	assert.Equal(t, "active", entry.Metadata.Extra["status"])
	assert.Contains(t, entry.Body, "## Step 1: Build")
}

func TestExtractStepNames(t *testing.T) {
	md := "# T\n## Step 1: First Thing\nbody\n## Step 2: Second Thing\nbody"
	assert.Equal(t, []string{"First Thing", "Second Thing"}, extractStepNames(md))
	assert.Empty(t, extractStepNames("no steps here"))
}

func TestOutlineTitleFallback(t *testing.T) {
	long := strings.Repeat("x", 80)
	title := outlineTitle("", long)
	assert.True(t, strings.HasSuffix(title, " Workflow"))
	assert.LessOrEqual(t, len(title), 60+len(" Workflow"))
}
