package tools

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateTimeline_DefaultInputs(t *testing.T) {
	out := EstimateTimeline(TimelineInput{
		RoleInfo:        "Backend Engineer",
		InterviewStages: "",
	})

	require.NotEmpty(t, out)
	assert.Contains(t, out, "# Hiring Timeline Estimation")
	assert.Contains(t, out, "**Total Duration**")
	assert.Contains(t, out, "**Urgency Level**: Normal")
	assert.Contains(t, out, "**Team Availability**: Normal")

	// Always-included phases appear even with a minimal interview plan.
	assert.Contains(t, out, "### Job Posting")
	assert.Contains(t, out, "### Application Period")
	assert.Contains(t, out, "### Resume Screening")
	assert.Contains(t, out, "### Offer Negotiation")
	assert.Contains(t, out, "### Acceptance Period")
}

func TestEstimateTimeline_SimpleProcessSkipsPanelAndFinal(t *testing.T) {
	out := EstimateTimeline(TimelineInput{
		InterviewStages: "just a quick chat",
	})

	// Two estimated stages: phone screen and technical only.
	assert.Contains(t, out, "### Phone Screen")
	assert.Contains(t, out, "### Technical Interview")
	assert.NotContains(t, out, "### Panel Interview")
	assert.NotContains(t, out, "### Final Interview")
	assert.NotContains(t, out, "### Reference Check")
}

func TestEstimateTimeline_ComplexProcessIncludesAllPhases(t *testing.T) {
	out := EstimateTimeline(TimelineInput{
		InterviewStages: "phone screen, technical interview, panel round, final interview",
	})

	for _, phase := range []string{
		"### Phone Screen",
		"### Technical Interview",
		"### Panel Interview",
		"### Final Interview",
		"### Reference Check",
	} {
		assert.Contains(t, out, phase)
	}
}

func TestEstimateTimeline_UrgencyShortensDurations(t *testing.T) {
	normal := EstimateTimeline(TimelineInput{InterviewStages: "phone, technical"})
	urgent := EstimateTimeline(TimelineInput{InterviewStages: "phone, technical", Urgency: "urgent"})

	assert.Less(t, totalDaysFromReport(t, urgent), totalDaysFromReport(t, normal))
	assert.Contains(t, urgent, "Consider parallel processing")
	assert.NotContains(t, normal, "Consider parallel processing")
}

func TestEstimateTimeline_RelaxedRecommendations(t *testing.T) {
	out := EstimateTimeline(TimelineInput{Urgency: "Relaxed"})
	assert.Contains(t, out, "**Urgency Level**: Relaxed")
	assert.Contains(t, out, "build a strong candidate pipeline")
}

func TestEstimateTimeline_LowAvailabilityLengthensDurations(t *testing.T) {
	normal := EstimateTimeline(TimelineInput{InterviewStages: "phone, technical"})
	low := EstimateTimeline(TimelineInput{InterviewStages: "phone, technical", TeamAvailability: "low"})

	assert.Greater(t, totalDaysFromReport(t, low), totalDaysFromReport(t, normal))
}

func TestEstimateStageCount(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        int
	}{
		{"empty defaults to minimum", "", 2},
		{"no keywords defaults to minimum", "meet the team", 2},
		{"counts distinct keywords", "phone screen then technical interview", 4},
		{"full loop", "phone screen, technical round, panel interview, final interview", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := estimateStageCount(tt.description); got != tt.want {
				t.Errorf("estimateStageCount(%q) = %d, want %d", tt.description, got, tt.want)
			}
		})
	}
}

func TestShouldIncludePhase(t *testing.T) {
	// Always-included phases ignore the stage count entirely.
	assert.True(t, shouldIncludePhase("job_posting", 0))
	assert.True(t, shouldIncludePhase("acceptance_period", 2))

	// Three stages: everything but the panel interview.
	assert.True(t, shouldIncludePhase("final_interview", 3))
	assert.False(t, shouldIncludePhase("panel_interview", 3))

	// Four or more: the full process.
	assert.True(t, shouldIncludePhase("panel_interview", 4))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Phone Screen", titleCase("phone_screen"))
	assert.Equal(t, "Urgent", titleCase("urgent"))
	assert.Equal(t, "", titleCase(""))
}

// totalDaysFromReport parses the "**Total Duration**: N days" line.
func totalDaysFromReport(t *testing.T, report string) int {
	t.Helper()
	for _, line := range strings.Split(report, "\n") {
		if !strings.Contains(line, "Total Duration") {
			continue
		}
		var days int
		after := line[strings.Index(line, ":")+1:]
		if _, err := fmt.Sscanf(after, " %d days", &days); err != nil {
			t.Fatalf("failed to parse duration from %q: %v", line, err)
		}
		return days
	}
	t.Fatalf("no Total Duration line in report")
	return 0
}
