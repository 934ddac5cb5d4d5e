// Package workflow implements the six-stage hiring pipeline: a fixed sequence
// of stages operating over one shared state record, checkpointed to the store
// after every stage transition. A failed stage is recorded and never halts the
// pipeline; later stages run with whatever upstream data exists.
package workflow

import "time"

// Stage identifiers, in execution order.
const (
	StageRoleDefinition    = "role_definition"
	StageJDGeneration      = "jd_generation"
	StageInterviewPlanning = "interview_planning"
	StageTimelineEstimation = "timeline_estimation"
	StageSalaryBenchmarking = "salary_benchmarking"
	StageOfferGeneration   = "offer_generation"

	// StageCompleted is the terminal marker, not an executable stage.
	StageCompleted = "completed"
)

// stageOrder is the fixed pipeline. Stage N+1 never starts before stage N has
// checkpointed.
var stageOrder = []string{
	StageRoleDefinition,
	StageJDGeneration,
	StageInterviewPlanning,
	StageTimelineEstimation,
	StageSalaryBenchmarking,
	StageOfferGeneration,
}

// Stages returns the pipeline stage ids in execution order.
func Stages() []string {
	out := make([]string, len(stageOrder))
	copy(out, stageOrder)
	return out
}

// Message roles for the audit trail.
const (
	RoleHuman     = "human"
	RoleAssistant = "assistant"
)

// Message is one entry of the append-only conversation audit trail.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// StageResult wraps an agent- or tool-produced output with its generation
// timestamp.
type StageResult struct {
	Output    string    `json:"output"`
	Timestamp time.Time `json:"timestamp"`
}

// WorkflowState is the single mutable record threaded through the pipeline.
// Result fields are write-once: each is owned by exactly one stage and never
// touched by another. Error is first-failure-wins and never cleared.
type WorkflowState struct {
	SessionID   string    `json:"session_id"`
	Messages    []Message `json:"messages"`
	CurrentStage string   `json:"current_stage"`

	CompanyName string `json:"company_name"`
	Department  string `json:"department,omitempty"`

	RoleDefinition  *StageResult `json:"role_definition,omitempty"`
	JobDescription  string       `json:"job_description,omitempty"`
	InterviewPlan   *StageResult `json:"interview_plan,omitempty"`
	Timeline        *StageResult `json:"timeline,omitempty"`
	SalaryBenchmark *StageResult `json:"salary_benchmark,omitempty"`
	OfferLetter     string       `json:"offer_letter,omitempty"`

	Error           string   `json:"error,omitempty"`
	CompletedStages []string `json:"completed_stages"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// newState constructs the initial state for a run: first stage pending, the
// caller's description as the opening human message.
func newState(sessionID, input, companyName, department string) *WorkflowState {
	now := time.Now()
	return &WorkflowState{
		SessionID:       sessionID,
		Messages:        []Message{{Role: RoleHuman, Content: input}},
		CurrentStage:    stageOrder[0],
		CompanyName:     companyName,
		Department:      department,
		CompletedStages: []string{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// Terminal reports whether the run has finished, successfully or not.
func (s *WorkflowState) Terminal() bool {
	return s.CurrentStage == StageCompleted || len(s.CompletedStages) >= len(stageOrder)
}

// setError records a stage failure. The first failure wins; a later failure
// never overwrites it.
func (s *WorkflowState) setError(msg string) {
	if s.Error == "" {
		s.Error = msg
	}
}

// completeStage records a successful stage and its produced text.
func (s *WorkflowState) completeStage(stage, label, output string) {
	s.CompletedStages = append(s.CompletedStages, stage)
	s.Messages = append(s.Messages, Message{
		Role:    RoleAssistant,
		Content: label + ":\n" + output,
	})
}

// roleOutput returns the role definition text, or "" if the stage failed.
func (s *WorkflowState) roleOutput() string {
	if s.RoleDefinition == nil {
		return ""
	}
	return s.RoleDefinition.Output
}

// planOutput returns the interview plan text, or "" if the stage failed.
func (s *WorkflowState) planOutput() string {
	if s.InterviewPlan == nil {
		return ""
	}
	return s.InterviewPlan.Output
}

// benchmarkOutput returns the salary benchmark text, or "" if absent.
func (s *WorkflowState) benchmarkOutput() string {
	if s.SalaryBenchmark == nil {
		return ""
	}
	return s.SalaryBenchmark.Output
}

// Result is the caller-facing snapshot of a run, shared by the synchronous
// API, status polling, and the CLI.
type Result struct {
	Success         bool         `json:"success"`
	SessionID       string       `json:"session_id"`
	CurrentStage    string       `json:"current_stage"`
	CompletedStages []string     `json:"completed_stages"`
	RoleDefinition  *StageResult `json:"role_definition,omitempty"`
	JobDescription  string       `json:"job_description,omitempty"`
	InterviewPlan   *StageResult `json:"interview_plan,omitempty"`
	Timeline        *StageResult `json:"timeline,omitempty"`
	SalaryBenchmark *StageResult `json:"salary_benchmark,omitempty"`
	OfferLetter     string       `json:"offer_letter,omitempty"`
	Error           string       `json:"error,omitempty"`
	Messages        []string     `json:"messages"`
}

// Result formats the state for output. Success is evaluated against the final
// state: one failed stage among six makes the whole run failed even though
// later stages still produced output.
func (s *WorkflowState) Result() *Result {
	messages := make([]string, len(s.Messages))
	for i, m := range s.Messages {
		messages[i] = m.Content
	}
	return &Result{
		Success:         s.Error == "",
		SessionID:       s.SessionID,
		CurrentStage:    s.CurrentStage,
		CompletedStages: append([]string{}, s.CompletedStages...),
		RoleDefinition:  s.RoleDefinition,
		JobDescription:  s.JobDescription,
		InterviewPlan:   s.InterviewPlan,
		Timeline:        s.Timeline,
		SalaryBenchmark: s.SalaryBenchmark,
		OfferLetter:     s.OfferLetter,
		Error:           s.Error,
		Messages:        messages,
	}
}
