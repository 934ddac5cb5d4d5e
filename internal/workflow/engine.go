package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/hiremind/internal/agent"
	"github.com/jonathan/hiremind/internal/store"
	"github.com/jonathan/hiremind/internal/tools"
)

// DefaultStageTimeout bounds each agent call. Tools run inline and are not
// subject to it.
const DefaultStageTimeout = 2 * time.Minute

// ErrRunInProgress is returned when Start is called for a session that is
// already executing in this process. Concurrent runs on one session id are
// rejected, not serialized.
var ErrRunInProgress = errors.New("workflow run already in progress for this session")

// ErrSessionNotFound is returned by reads for an unknown session id.
var ErrSessionNotFound = errors.New("session not found")

// StageEvent is a progress update emitted before and after each stage.
type StageEvent struct {
	SessionID       string   `json:"session_id"`
	Stage           string   `json:"stage"`
	Message         string   `json:"message"`
	CompletedStages []string `json:"completed_stages,omitempty"`
	Err             string   `json:"error,omitempty"`
}

// ProgressCallback is called as the pipeline advances.
type ProgressCallback func(event StageEvent)

// StartOptions configures one workflow run.
type StartOptions struct {
	Input       string
	CompanyName string
	Department  string
	// SessionID is optional; a UUID is generated when empty. Supplying the id
	// of an existing incomplete session resumes it from its checkpoint.
	SessionID  string
	OnProgress ProgressCallback
}

// Engine executes the fixed six-stage pipeline. It holds no per-run state
// beyond the in-flight guard; everything about a run lives in its
// WorkflowState and the store.
type Engine struct {
	store        store.Store
	agents       *agent.Registry
	stageTimeout time.Duration
	stateTTL     time.Duration

	mu       sync.Mutex
	inflight map[string]bool
}

// New creates an engine over the given store and agent registry.
func New(st store.Store, agents *agent.Registry) *Engine {
	return &Engine{
		store:        st,
		agents:       agents,
		stageTimeout: DefaultStageTimeout,
		stateTTL:     store.DefaultStateTTL,
		inflight:     make(map[string]bool),
	}
}

// SetStageTimeout overrides the per-agent-call timeout.
func (e *Engine) SetStageTimeout(d time.Duration) {
	if d > 0 {
		e.stageTimeout = d
	}
}

// SetStateTTL overrides the checkpoint TTL. The profile TTL scales with it.
func (e *Engine) SetStateTTL(d time.Duration) {
	if d > 0 {
		e.stateTTL = d
	}
}

// profileTTL keeps the profile an order of magnitude longer than the working
// checkpoint.
func (e *Engine) profileTTL() time.Duration {
	return e.stateTTL * store.ProfileTTLFactor
}

// Start runs the pipeline for the session. If a checkpoint already exists:
// a terminal one is returned as-is (idempotent re-invocation), an incomplete
// one is resumed from its current stage. Failed stages are never retried.
func (e *Engine) Start(ctx context.Context, opts StartOptions) (*Result, error) {
	sessionID := opts.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	if !e.acquire(sessionID) {
		return nil, fmt.Errorf("%w: %s", ErrRunInProgress, sessionID)
	}
	defer e.release(sessionID)

	state, err := e.loadState(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state != nil && state.Terminal() {
		return state.Result(), nil
	}
	if state == nil {
		state = newState(sessionID, opts.Input, opts.CompanyName, opts.Department)
		e.checkpoint(ctx, state)
	} else {
		log.Printf("workflow %s: resuming from stage %s", sessionID, state.CurrentStage)
	}

	e.runStages(ctx, state, opts.OnProgress)

	if state.Error == "" {
		e.saveProfile(ctx, state)
	}
	return state.Result(), nil
}

// runStages executes the remaining stages in order, checkpointing after each
// transition. Every stage runs regardless of earlier failures.
func (e *Engine) runStages(ctx context.Context, state *WorkflowState, onProgress ProgressCallback) {
	start := stageIndex(state.CurrentStage)
	for i := start; i < len(stageOrder); i++ {
		stage := stageOrder[i]
		emit(onProgress, StageEvent{
			SessionID: state.SessionID,
			Stage:     stage,
			Message:   fmt.Sprintf("Stage %d/%d: %s", i+1, len(stageOrder), stage),
		})

		e.runStage(ctx, stage, state)

		if i+1 < len(stageOrder) {
			state.CurrentStage = stageOrder[i+1]
		} else {
			state.CurrentStage = StageCompleted
		}
		state.UpdatedAt = time.Now()
		e.checkpoint(ctx, state)

		emit(onProgress, StageEvent{
			SessionID:       state.SessionID,
			Stage:           stage,
			Message:         fmt.Sprintf("Finished %s", stage),
			CompletedStages: state.CompletedStages,
			Err:             state.Error,
		})
	}
}

func (e *Engine) runStage(ctx context.Context, stage string, state *WorkflowState) {
	switch stage {
	case StageRoleDefinition:
		e.roleDefinitionStage(ctx, state)
	case StageJDGeneration:
		e.jdGenerationStage(ctx, state)
	case StageInterviewPlanning:
		e.interviewPlanningStage(ctx, state)
	case StageTimelineEstimation:
		e.timelineEstimationStage(state)
	case StageSalaryBenchmarking:
		e.salaryBenchmarkingStage(state)
	case StageOfferGeneration:
		e.offerGenerationStage(state)
	}
}

// roleDefinitionStage turns the caller's description into a structured role
// definition.
func (e *Engine) roleDefinitionStage(ctx context.Context, state *WorkflowState) {
	input := ""
	if len(state.Messages) > 0 {
		input = state.Messages[0].Content
	}

	result := e.callAgent(ctx, agent.KeyRoleDefinition,
		fmt.Sprintf("Define a role based on: %s", input))
	if !result.Success {
		state.setError(result.Error)
		return
	}

	state.RoleDefinition = &StageResult{Output: result.Output, Timestamp: time.Now()}
	state.completeStage(StageRoleDefinition, "Role Definition", result.Output)
}

// jdGenerationStage writes the job description from the role definition.
func (e *Engine) jdGenerationStage(ctx context.Context, state *WorkflowState) {
	result := e.callAgent(ctx, agent.KeyJDGenerator,
		fmt.Sprintf("Create a job description based on this role definition: %s", state.roleOutput()))
	if !result.Success {
		state.setError(result.Error)
		return
	}

	state.JobDescription = result.Output
	state.completeStage(StageJDGeneration, "Job Description", result.Output)
}

// interviewPlanningStage designs the interview process from the role
// definition and job description, degrading gracefully when either is absent.
func (e *Engine) interviewPlanningStage(ctx context.Context, state *WorkflowState) {
	result := e.callAgent(ctx, agent.KeyInterviewPlanner,
		fmt.Sprintf("Plan interview stages for this role:\nRole: %s\nJD: %s",
			state.roleOutput(), state.JobDescription))
	if !result.Success {
		state.setError(result.Error)
		return
	}

	state.InterviewPlan = &StageResult{Output: result.Output, Timestamp: time.Now()}
	state.completeStage(StageInterviewPlanning, "Interview Plan", result.Output)
}

// timelineEstimationStage runs the timeline tool. Tool failures degrade to
// error text inline and never set the pipeline error.
func (e *Engine) timelineEstimationStage(state *WorkflowState) {
	timeline := tools.EstimateTimeline(tools.TimelineInput{
		RoleInfo:        state.roleOutput(),
		InterviewStages: state.planOutput(),
	})

	state.Timeline = &StageResult{Output: timeline, Timestamp: time.Now()}
	state.completeStage(StageTimelineEstimation, "Timeline Estimation", timeline)
}

func (e *Engine) salaryBenchmarkingStage(state *WorkflowState) {
	benchmark := tools.BenchmarkSalary(tools.SalaryInput{
		RoleTitle: ExtractRoleTitle(state.roleOutput()),
	})

	state.SalaryBenchmark = &StageResult{Output: benchmark, Timestamp: time.Now()}
	state.completeStage(StageSalaryBenchmarking, "Salary Benchmark", benchmark)
}

// offerGenerationStage assembles the offer letter from whatever upstream data
// is available, with extraction fallbacks covering failed stages.
func (e *Engine) offerGenerationStage(state *WorkflowState) {
	roleInfo := state.roleOutput()

	department := state.Department
	if department == "" {
		department = ExtractDepartment(roleInfo)
	}

	offer := tools.GenerateOfferLetter(tools.OfferInput{
		RoleTitle:   ExtractRoleTitle(roleInfo),
		Department:  department,
		Salary:      ExtractSalary(state.benchmarkOutput()),
		CompanyName: state.CompanyName,
	})

	state.OfferLetter = offer
	state.completeStage(StageOfferGeneration, "Offer Letter Template", offer)
}

// callAgent resolves and runs an agent under the stage timeout.
func (e *Engine) callAgent(ctx context.Context, key, input string) agent.Result {
	a, err := e.agents.Get(key)
	if err != nil {
		return agent.Result{Success: false, Error: err.Error(), Agent: key}
	}

	ctx, cancel := context.WithTimeout(ctx, e.stageTimeout)
	defer cancel()
	return a.Run(ctx, input)
}

// checkpoint persists the full state. Persistence is best-effort: a store
// failure is logged and the run keeps executing.
func (e *Engine) checkpoint(ctx context.Context, state *WorkflowState) {
	data, err := json.Marshal(state)
	if err != nil {
		log.Printf("workflow %s: failed to encode checkpoint: %v", state.SessionID, err)
		return
	}

	key := store.SessionKey(state.SessionID, store.RecordWorkflowState)
	if err := e.store.SetWithExpiry(ctx, key, data, e.stateTTL); err != nil {
		log.Printf("workflow %s: failed to save checkpoint: %v", state.SessionID, err)
	}
}

// loadState reads the latest checkpoint, returning nil when none exists.
func (e *Engine) loadState(ctx context.Context, sessionID string) (*WorkflowState, error) {
	data, ok, err := e.store.Get(ctx, store.SessionKey(sessionID, store.RecordWorkflowState))
	if err != nil {
		return nil, fmt.Errorf("failed to load checkpoint: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var state WorkflowState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to decode checkpoint: %w", err)
	}
	return &state, nil
}

func (e *Engine) acquire(sessionID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.inflight[sessionID] {
		return false
	}
	e.inflight[sessionID] = true
	return true
}

func (e *Engine) release(sessionID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.inflight, sessionID)
}

func stageIndex(stage string) int {
	for i, s := range stageOrder {
		if s == stage {
			return i
		}
	}
	return 0
}

func emit(cb ProgressCallback, event StageEvent) {
	if cb != nil {
		cb(event)
	}
}
