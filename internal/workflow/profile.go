package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/hiremind/internal/store"
)

// Profile statuses. Profiles start active when a run completes and move
// through the hiring lifecycle via explicit status updates.
const (
	ProfileStatusDraft     = "draft"
	ProfileStatusActive    = "active"
	ProfileStatusCompleted = "completed"
	ProfileStatusCancelled = "cancelled"
)

// Note is one append-only annotation on a profile.
type Note struct {
	Note      string    `json:"note"`
	Author    string    `json:"author"`
	Timestamp time.Time `json:"timestamp"`
}

// Revision records one change to a profile's bookkeeping fields.
type Revision struct {
	ChangeType string    `json:"change_type"`
	OldValue   string    `json:"old_value"`
	NewValue   string    `json:"new_value"`
	Timestamp  time.Time `json:"timestamp"`
}

// Profile is the long-lived, denormalized projection of a terminal run:
// the working checkpoint expires in a day, the profile sticks around for a
// month. Notes and revision history are append-only.
type Profile struct {
	SessionID  string `json:"session_id"`
	RoleTitle  string `json:"role_title"`
	Department string `json:"department"`
	Status     string `json:"status"`

	RoleDefinition  *StageResult `json:"role_definition,omitempty"`
	JobDescription  string       `json:"job_description,omitempty"`
	InterviewPlan   *StageResult `json:"interview_plan,omitempty"`
	Timeline        *StageResult `json:"timeline,omitempty"`
	SalaryBenchmark *StageResult `json:"salary_benchmark,omitempty"`
	OfferLetter     string       `json:"offer_letter,omitempty"`

	CompletedStages []string `json:"completed_stages"`
	CurrentStage    string   `json:"current_stage"`

	Notes           []Note     `json:"notes"`
	RevisionHistory []Revision `json:"revision_history"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BuildProfile projects a terminal state into a profile, extracting the role
// title and department from the agent output.
func BuildProfile(state *WorkflowState) *Profile {
	roleInfo := state.roleOutput()
	department := state.Department
	if department == "" {
		department = ExtractDepartment(roleInfo)
	}

	now := time.Now()
	return &Profile{
		SessionID:       state.SessionID,
		RoleTitle:       ExtractRoleTitle(roleInfo),
		Department:      department,
		Status:          ProfileStatusActive,
		RoleDefinition:  state.RoleDefinition,
		JobDescription:  state.JobDescription,
		InterviewPlan:   state.InterviewPlan,
		Timeline:        state.Timeline,
		SalaryBenchmark: state.SalaryBenchmark,
		OfferLetter:     state.OfferLetter,
		CompletedStages: append([]string{}, state.CompletedStages...),
		CurrentStage:    state.CurrentStage,
		Notes:           []Note{},
		RevisionHistory: []Revision{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// AddNote appends a note and bumps the update time.
func (p *Profile) AddNote(note, author string) {
	if author == "" {
		author = "system"
	}
	now := time.Now()
	p.Notes = append(p.Notes, Note{Note: note, Author: author, Timestamp: now})
	p.UpdatedAt = now
}

// UpdateStatus changes the profile status, recording the transition in the
// revision history.
func (p *Profile) UpdateStatus(newStatus string) {
	now := time.Now()
	p.RevisionHistory = append(p.RevisionHistory, Revision{
		ChangeType: "status_update",
		OldValue:   p.Status,
		NewValue:   newStatus,
		Timestamp:  now,
	})
	p.Status = newStatus
	p.UpdatedAt = now
}

// ProfileSummary is the listing shape: enough to render an index row without
// loading the full profile.
type ProfileSummary struct {
	SessionID  string    `json:"session_id"`
	RoleTitle  string    `json:"role_title"`
	Department string    `json:"department"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// saveProfile builds and persists the profile projection at the end of a
// successful run. Best-effort, like checkpoints.
func (e *Engine) saveProfile(ctx context.Context, state *WorkflowState) {
	if err := e.SaveProfile(ctx, BuildProfile(state)); err != nil {
		log.Printf("workflow %s: failed to save profile: %v", state.SessionID, err)
	}
}

// SaveProfile persists a profile with the long profile TTL and indexes it in
// the recent-profiles list.
func (e *Engine) SaveProfile(ctx context.Context, p *Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	key := store.SessionKey(p.SessionID, store.RecordProfile)
	if err := e.store.SetWithExpiry(ctx, key, data, e.profileTTL()); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	if err := e.store.PushRecent(ctx, store.ProfilesListKey(), p.SessionID, store.MaxRecentProfiles); err != nil {
		return fmt.Errorf("failed to index profile: %w", err)
	}
	return nil
}

// LoadProfile reads a profile. Returns ErrSessionNotFound when absent.
func (e *Engine) LoadProfile(ctx context.Context, sessionID string) (*Profile, error) {
	data, ok, err := e.store.Get(ctx, store.SessionKey(sessionID, store.RecordProfile))
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if !ok {
		return nil, ErrSessionNotFound
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	return &p, nil
}

// DeleteProfile removes a profile, reporting whether it existed.
func (e *Engine) DeleteProfile(ctx context.Context, sessionID string) (bool, error) {
	return e.store.Delete(ctx, store.SessionKey(sessionID, store.RecordProfile))
}

// ListProfiles returns summaries of the most recent profiles, newest first.
// Individual profiles are fetched concurrently; ids whose profile has expired
// are skipped.
func (e *Engine) ListProfiles(ctx context.Context, limit int) ([]ProfileSummary, error) {
	if limit <= 0 {
		limit = 10
	}

	ids, err := e.store.ListRecent(ctx, store.ProfilesListKey(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent profiles: %w", err)
	}

	summaries := make([]*ProfileSummary, len(ids))
	var mu sync.Mutex

	g, gCtx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			p, err := e.LoadProfile(gCtx, id)
			if err != nil {
				if err == ErrSessionNotFound {
					return nil
				}
				return err
			}
			mu.Lock()
			summaries[i] = &ProfileSummary{
				SessionID:  p.SessionID,
				RoleTitle:  p.RoleTitle,
				Department: p.Department,
				Status:     p.Status,
				CreatedAt:  p.CreatedAt,
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]ProfileSummary, 0, len(ids))
	for _, s := range summaries {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out, nil
}
