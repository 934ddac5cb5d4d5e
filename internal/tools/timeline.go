package tools

import (
	"fmt"
	"strings"
	"time"
)

// TimelineInput holds the arguments for timeline estimation.
type TimelineInput struct {
	RoleInfo         string // information about the role
	InterviewStages  string // description of the interview stages
	Urgency          string // urgent, normal, or relaxed
	TeamAvailability string // high, normal, or low
}

// hiringPhase is one step of the hiring process with its base duration.
type hiringPhase struct {
	name string
	days int
}

// Base durations in days, in process order.
var hiringPhases = []hiringPhase{
	{"job_posting", 3},
	{"application_period", 14},
	{"resume_screening", 3},
	{"phone_screen", 5},
	{"technical_interview", 7},
	{"panel_interview", 7},
	{"final_interview", 5},
	{"reference_check", 3},
	{"offer_negotiation", 5},
	{"acceptance_period", 7},
}

// Phases that are part of every hiring process regardless of complexity.
var alwaysIncluded = map[string]bool{
	"job_posting":        true,
	"application_period": true,
	"resume_screening":   true,
	"offer_negotiation":  true,
	"acceptance_period":  true,
}

// EstimateTimeline estimates the hiring timeline from role complexity and the
// planned interview stages. It never returns an error to the caller; internal
// failures become an error-string result.
func EstimateTimeline(input TimelineInput) string {
	return Safe("timeline_estimator", func() (string, error) {
		return estimateTimeline(input), nil
	})
}

func estimateTimeline(input TimelineInput) string {
	urgency := normalizeChoice(input.Urgency, "normal")
	availability := normalizeChoice(input.TeamAvailability, "normal")

	stageCount := estimateStageCount(input.InterviewStages)
	urgencyMult := urgencyMultiplier(urgency)
	availabilityMult := availabilityMultiplier(availability)

	type breakdownItem struct {
		stage    string
		duration int
		start    time.Time
		end      time.Time
	}

	var breakdown []breakdownItem
	totalDays := 0
	cursor := time.Now()

	for _, phase := range hiringPhases {
		if !shouldIncludePhase(phase.name, stageCount) {
			continue
		}
		adjusted := int(float64(phase.days) * urgencyMult * availabilityMult)
		end := cursor.AddDate(0, 0, adjusted)
		breakdown = append(breakdown, breakdownItem{
			stage:    titleCase(phase.name),
			duration: adjusted,
			start:    cursor,
			end:      end,
		})
		totalDays += adjusted
		cursor = end
	}

	var b strings.Builder
	now := time.Now()
	fmt.Fprintf(&b, "# Hiring Timeline Estimation\n\n")
	fmt.Fprintf(&b, "## Summary\n")
	fmt.Fprintf(&b, "- **Total Duration**: %d days (~%d weeks)\n", totalDays, totalDays/7)
	fmt.Fprintf(&b, "- **Expected Start Date**: %s\n", now.Format("2006-01-02"))
	fmt.Fprintf(&b, "- **Expected Completion**: %s\n", now.AddDate(0, 0, totalDays).Format("2006-01-02"))
	fmt.Fprintf(&b, "- **Urgency Level**: %s\n", titleCase(urgency))
	fmt.Fprintf(&b, "- **Team Availability**: %s\n", titleCase(availability))
	fmt.Fprintf(&b, "\n## Timeline Breakdown\n")

	for _, item := range breakdown {
		fmt.Fprintf(&b, "\n### %s\n", item.stage)
		fmt.Fprintf(&b, "- Duration: %d days\n", item.duration)
		fmt.Fprintf(&b, "- Start: %s\n", item.start.Format("2006-01-02"))
		fmt.Fprintf(&b, "- End: %s\n", item.end.Format("2006-01-02"))
	}

	b.WriteString("\n## Recommendations\n")
	switch urgency {
	case "urgent":
		b.WriteString("- Consider parallel processing of some stages\n")
		b.WriteString("- Pre-schedule interview slots in advance\n")
		b.WriteString("- Use automated screening tools\n")
	case "relaxed":
		b.WriteString("- Take time to build a strong candidate pipeline\n")
		b.WriteString("- Consider multiple final candidates\n")
		b.WriteString("- Allow for thorough reference checks\n")
	}

	return strings.TrimSpace(b.String())
}

// estimateStageCount estimates the number of interview stages from a
// free-form description using keyword counting. Minimum of 2.
func estimateStageCount(description string) int {
	keywords := []string{"phone", "technical", "panel", "final", "screen", "round", "interview"}
	lower := strings.ToLower(description)
	count := 0
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			count++
		}
	}
	if count < 2 {
		return 2
	}
	return count
}

// shouldIncludePhase decides whether a phase belongs in the plan given the
// role's interview complexity.
func shouldIncludePhase(phase string, stageCount int) bool {
	if alwaysIncluded[phase] {
		return true
	}
	switch {
	case stageCount >= 4:
		return true
	case stageCount >= 3:
		return phase != "panel_interview"
	default:
		return phase == "phone_screen" || phase == "technical_interview"
	}
}

func urgencyMultiplier(urgency string) float64 {
	switch urgency {
	case "urgent":
		return 0.7
	case "relaxed":
		return 1.3
	default:
		return 1.0
	}
}

func availabilityMultiplier(availability string) float64 {
	switch availability {
	case "high":
		return 0.8
	case "low":
		return 1.5
	default:
		return 1.0
	}
}

func normalizeChoice(value, fallback string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return fallback
	}
	return value
}

// titleCase renders an underscore identifier as a display heading.
func titleCase(s string) string {
	words := strings.Split(strings.ReplaceAll(s, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
