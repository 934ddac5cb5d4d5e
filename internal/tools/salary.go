package tools

import (
	"fmt"
	"math/rand"
	"strings"
)

// SalaryInput holds the arguments for salary benchmarking.
type SalaryInput struct {
	RoleTitle       string
	Location        string // defaults to United States
	ExperienceLevel string // entry, junior, mid, senior, lead, principal, staff
	CompanySize     string // startup, small, medium, large, enterprise
}

// Base salaries for common roles, keyed by normalized title.
var baseSalaries = map[string]int{
	"software_engineer":        120000,
	"senior_software_engineer": 150000,
	"staff_software_engineer":  180000,
	"engineering_manager":      170000,
	"product_manager":          130000,
	"data_scientist":           125000,
	"designer":                 100000,
	"marketing_manager":        95000,
	"sales_manager":            100000,
	"hr_manager":               85000,
	"finance_manager":          110000,
}

// BenchmarkSalary produces a salary benchmark report for the role. The data
// is modeled, not live market data; downstream stages rely on the report
// containing a "Median" dollar line.
func BenchmarkSalary(input SalaryInput) string {
	return Safe("salary_benchmark", func() (string, error) {
		return benchmarkSalary(input), nil
	})
}

func benchmarkSalary(input SalaryInput) string {
	location := input.Location
	if location == "" {
		location = "United States"
	}
	level := normalizeChoice(input.ExperienceLevel, "mid")
	size := normalizeChoice(input.CompanySize, "startup")

	base, ok := baseSalaries[normalizeRoleTitle(input.RoleTitle)]
	if !ok {
		base = estimateBaseSalary(input.RoleTitle)
	}

	adjusted := float64(base) * locationMultiplier(location) * experienceMultiplier(level) * companySizeMultiplier(size)

	minSalary := int(adjusted * 0.85)
	medianSalary := int(adjusted)
	maxSalary := int(adjusted * 1.15)

	equity := equityRange(size, level)
	bonus := bonusRange(medianSalary, size)

	demand := "moderate"
	if rand.Float64() > 0.5 {
		demand = "high"
	}
	pool := "Moderate"
	if rand.Float64() > 0.6 {
		pool = "Limited"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Salary Benchmark Report\n\n")
	fmt.Fprintf(&b, "## Role: %s\n", input.RoleTitle)
	fmt.Fprintf(&b, "- **Location**: %s\n", location)
	fmt.Fprintf(&b, "- **Experience Level**: %s\n", titleCase(level))
	fmt.Fprintf(&b, "- **Company Size**: %s\n", titleCase(size))
	fmt.Fprintf(&b, "\n## Base Salary Range\n")
	fmt.Fprintf(&b, "- **Minimum**: %s\n", formatDollars(minSalary))
	fmt.Fprintf(&b, "- **Median**: %s\n", formatDollars(medianSalary))
	fmt.Fprintf(&b, "- **Maximum**: %s\n", formatDollars(maxSalary))
	fmt.Fprintf(&b, "\n## Additional Compensation\n")
	fmt.Fprintf(&b, "### Annual Bonus\n")
	fmt.Fprintf(&b, "- **Target**: %s\n", bonus.target)
	fmt.Fprintf(&b, "- **Range**: %s - %s\n", bonus.min, bonus.max)
	fmt.Fprintf(&b, "\n### Equity Compensation\n")
	fmt.Fprintf(&b, "- **Equity Range**: %s\n", equity)
	fmt.Fprintf(&b, "- **Vesting**: 4 years with 1-year cliff (standard)\n")
	fmt.Fprintf(&b, "\n## Total Compensation Estimate\n")
	fmt.Fprintf(&b, "- **Minimum TC**: %s\n", formatDollars(minSalary+minSalary/10))
	fmt.Fprintf(&b, "- **Median TC**: %s\n", formatDollars(medianSalary+medianSalary/5))
	fmt.Fprintf(&b, "- **Maximum TC**: %s\n", formatDollars(maxSalary+(maxSalary*3)/10))
	fmt.Fprintf(&b, "\n## Market Insights\n")
	fmt.Fprintf(&b, "- This role is currently in %s demand\n", demand)
	fmt.Fprintf(&b, "- Average time to fill: %d days\n", 30+rand.Intn(31))
	fmt.Fprintf(&b, "- Candidate pool: %s\n", pool)
	fmt.Fprintf(&b, "\n## Competitive Positioning\n")
	b.WriteString("To attract top talent, consider:\n")
	b.WriteString("- Offering at or above the median range\n")
	b.WriteString("- Highlighting equity upside for startup roles\n")
	b.WriteString("- Emphasizing unique benefits and culture\n")
	b.WriteString("- Consider signing bonuses for urgent hires\n")
	b.WriteString("\n*Note: This is modeled data for demonstration. In production, this would use real-time market data.*")

	return strings.TrimSpace(b.String())
}

// normalizeRoleTitle normalizes a role title for table lookup.
func normalizeRoleTitle(title string) string {
	title = strings.ToLower(title)
	title = strings.ReplaceAll(title, " ", "_")
	return strings.ReplaceAll(title, "-", "_")
}

// estimateBaseSalary estimates a base salary for roles missing from the table.
func estimateBaseSalary(title string) int {
	lower := strings.ToLower(title)
	switch {
	case strings.Contains(lower, "director"):
		return 180000
	case strings.Contains(lower, "lead"), strings.Contains(lower, "principal"):
		return 170000
	case strings.Contains(lower, "senior"):
		return 140000
	case strings.Contains(lower, "manager"):
		return 120000
	default:
		return 100000
	}
}

func locationMultiplier(location string) float64 {
	lower := strings.ToLower(location)
	highCost := []string{"san francisco", "new york", "seattle", "boston"}
	mediumCost := []string{"austin", "denver", "chicago", "los angeles"}

	for _, city := range highCost {
		if strings.Contains(lower, city) {
			return 1.3
		}
	}
	for _, city := range mediumCost {
		if strings.Contains(lower, city) {
			return 1.1
		}
	}
	if strings.Contains(lower, "remote") {
		return 1.0
	}
	return 0.9
}

func experienceMultiplier(level string) float64 {
	multipliers := map[string]float64{
		"entry":     0.7,
		"junior":    0.8,
		"mid":       1.0,
		"senior":    1.3,
		"lead":      1.5,
		"principal": 1.7,
		"staff":     1.6,
	}
	if m, ok := multipliers[level]; ok {
		return m
	}
	return 1.0
}

func companySizeMultiplier(size string) float64 {
	multipliers := map[string]float64{
		"startup":    0.9, // lower base, higher equity
		"small":      0.95,
		"medium":     1.0,
		"large":      1.1,
		"enterprise": 1.15,
	}
	if m, ok := multipliers[size]; ok {
		return m
	}
	return 1.0
}

// equityRange describes typical equity for the company size and level.
func equityRange(size, level string) string {
	switch size {
	case "startup":
		if level == "senior" || level == "lead" || level == "principal" {
			return "0.25% - 1.0%"
		}
		return "0.1% - 0.5%"
	case "small", "medium":
		return "Stock options worth $20k - $100k"
	default:
		return "RSUs worth $30k - $200k annually"
	}
}

type bonusFigures struct {
	target string
	min    string
	max    string
}

func bonusRange(baseSalary int, size string) bonusFigures {
	targetPct := 20
	switch size {
	case "startup":
		targetPct = 10
	case "small", "medium":
		targetPct = 15
	}

	target := baseSalary * targetPct / 100
	return bonusFigures{
		target: fmt.Sprintf("%d%% (%s)", targetPct, formatDollars(target)),
		min:    formatDollars(target / 2),
		max:    formatDollars(target + target/2),
	}
}

// formatDollars renders an amount as $1,234,567.
func formatDollars(amount int) string {
	if amount < 0 {
		return "-" + formatDollars(-amount)
	}
	s := fmt.Sprintf("%d", amount)
	var b strings.Builder
	b.WriteByte('$')
	offset := len(s) % 3
	if offset == 0 {
		offset = 3
	}
	b.WriteString(s[:offset])
	for i := offset; i < len(s); i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
