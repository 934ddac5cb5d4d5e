package workflow

import (
	"regexp"
	"strings"
)

// Best-effort extraction of structured values from free-form agent text.
// Every function has a documented fallback so downstream stages always have
// something to work with. The heuristics live here and nowhere else; the
// engine's control flow never depends on whether extraction succeeded.

// Fallback values used when extraction finds nothing.
const (
	FallbackRoleTitle  = "Software Engineer"
	FallbackDepartment = "Engineering"
	FallbackSalary     = "$120,000"
)

var dollarAmount = regexp.MustCompile(`\$[\d,]+`)

// ExtractRoleTitle pulls a role title out of role-definition text by scanning
// for a "Title:" or "Role:" line. Falls back to FallbackRoleTitle.
func ExtractRoleTitle(roleInfo string) string {
	for _, line := range strings.Split(roleInfo, "\n") {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "title") && !strings.Contains(lower, "role") {
			continue
		}
		if value := afterColon(line); value != "" {
			return value
		}
	}
	return FallbackRoleTitle
}

// ExtractDepartment pulls a department or team name out of role-definition
// text. Falls back to FallbackDepartment.
func ExtractDepartment(roleInfo string) string {
	for _, line := range strings.Split(roleInfo, "\n") {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "department") && !strings.Contains(lower, "team") {
			continue
		}
		if value := afterColon(line); value != "" {
			return value
		}
	}
	return FallbackDepartment
}

// ExtractSalary pulls the median dollar figure out of a salary benchmark
// report. Falls back to FallbackSalary.
func ExtractSalary(salaryInfo string) string {
	for _, line := range strings.Split(salaryInfo, "\n") {
		if !strings.Contains(strings.ToLower(line), "median") {
			continue
		}
		if match := dollarAmount.FindString(line); match != "" {
			return match
		}
	}
	return FallbackSalary
}

// afterColon returns the trimmed text after the first colon in line, with
// markdown emphasis stripped, or "" if the line has no usable value.
func afterColon(line string) string {
	_, value, ok := strings.Cut(line, ":")
	if !ok {
		return ""
	}
	value = strings.TrimSpace(strings.ReplaceAll(value, "*", ""))
	value = strings.Trim(value, "#- ")
	return value
}
