package workflow

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"coursegen/docs"
	"coursegen/generator"
	"coursegen/session"
)

// ErrNoSession is returned when a phase runs without a prior discover call
var ErrNoSession = errors.New("no active session, call discover first")

// Status describes one session for the status endpoint
type Status struct {
	Exists    bool   `json:"exists"`
	Type      string `json:"workflow_type,omitempty"`
	Finalized bool   `json:"finalized"`
}

// Service runs conversational workflow-generation sessions and saves the
// finished documents into the content vault
type Service struct {
	model    generator.ModelClient
	sessions *session.Store
	catalog  *docs.Service
}

// NewService wires the workflow service from its collaborators
func NewService(model generator.ModelClient, sessions *session.Store, catalog *docs.Service) *Service {
	return &Service{model: model, sessions: sessions, catalog: catalog}
}

// Discover starts a new session for the request and returns the clarifying
// questions. An existing session under the same id is replaced.
func (s *Service) Discover(ctx context.Context, sessionID string, req Request) []string {
	gen := NewGenerator(s.model, req)
	questions := gen.Discover(ctx)
	s.sessions.Put(sessionID, gen)
	log.Printf("Workflow session %s started (%s)", sessionID, req.Type)
	return questions
}

// GenerateOutline runs the outline phase for an existing session
func (s *Service) GenerateOutline(ctx context.Context, sessionID, answers string) (string, error) {
	gen, err := s.generator(sessionID)
	if err != nil {
		return "", err
	}
	outline := gen.GenerateOutline(ctx, answers)
	s.sessions.Put(sessionID, gen)
	return outline, nil
}

// Refine revises an existing session's outline
func (s *Service) Refine(ctx context.Context, sessionID, feedback string) (string, error) {
	gen, err := s.generator(sessionID)
	if err != nil {
		return "", err
	}
	outline := gen.Refine(ctx, feedback)
	s.sessions.Put(sessionID, gen)
	return outline, nil
}

// Finalize expands the session's outline into the finished document
func (s *Service) Finalize(ctx context.Context, sessionID string) (Final, error) {
	gen, err := s.generator(sessionID)
	if err != nil {
		return Final{}, err
	}
	final := gen.Finalize(ctx)
	s.sessions.Put(sessionID, gen)
	return final, nil
}

// SessionStatus reports whether a session exists and how far it has run
func (s *Service) SessionStatus(sessionID string) Status {
	gen, err := s.generator(sessionID)
	if err != nil {
		return Status{}
	}
	return Status{
		Exists:    true,
		Type:      string(gen.Request().Type),
		Finalized: gen.Finalized(),
	}
}

// DeleteSession drops a session. Returns false when it did not exist.
func (s *Service) DeleteSession(sessionID string) bool {
	if _, err := s.generator(sessionID); err != nil {
		return false
	}
	s.sessions.Delete(sessionID)
	return true
}

var workflowDirPattern = regexp.MustCompile(`^workflow_(\d{8})_(\d{3})`)

// Save writes a finished workflow into the vault as a new workflows entry.
// Entry ids are workflow_YYYYMMDD_NNN_<slug>, numbered per day.
func (s *Service) Save(workflowType Type, final Final) (string, error) {
	today := time.Now().Format("20060102")

	next := 1
	entries, err := s.catalog.ListSection("workflows")
	if err != nil {
		return "", err
	}
	for _, e := range entries {
		m := workflowDirPattern.FindStringSubmatch(e.ID)
		if m == nil || m[1] != today {
			continue
		}
		if n, err := strconv.Atoi(m[2]); err == nil && n >= next {
			next = n + 1
		}
	}

	id := fmt.Sprintf("workflow_%s_%03d_%s", today, next, sanitizeTitle(final.Title))

	meta := docs.Metadata{
		Title:       final.Title,
		Description: "AI-generated workflow",
		Tags:        []string{string(workflowType), "ai-generated"},
		Extra: map[string]any{
			"type":           string(workflowType),
			"difficulty":     final.Difficulty,
			"status":         "active",
			"estimated_time": final.EstimatedTime,
			"total_steps":    len(final.StepNames),
			"category":       "workflow",
			"steps":          final.StepNames,
			"author":         "AI Workflow Generator",
			"version":        "1.0",
		},
	}

	entry, err := s.catalog.CreateEntry("workflows", id, meta, final.Markdown)
	if err != nil {
		return "", fmt.Errorf("save workflow: %w", err)
	}
	log.Printf("Saved workflow %s", entry.ID)
	return entry.ID, nil
}

func (s *Service) generator(sessionID string) (*Generator, error) {
	value, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, ErrNoSession
	}
	gen, ok := value.(*Generator)
	if !ok {
		return nil, ErrNoSession
	}
	return gen, nil
}

var titleSanitizer = regexp.MustCompile(`[^a-zA-Z0-9\s\-_]`)
var titleSpaces = regexp.MustCompile(`\s+`)

func sanitizeTitle(title string) string {
	clean := titleSanitizer.ReplaceAllString(title, "")
	clean = titleSpaces.ReplaceAllString(strings.TrimSpace(clean), "_")
	clean = strings.ToLower(clean)
	if len(clean) > 50 {
		clean = clean[:50]
	}
	return clean
}
