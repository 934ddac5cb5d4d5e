package tools

import (
	"fmt"
	"strings"
	"time"
)

// OfferInput holds the arguments for offer letter generation. Placeholder
// bracket values are kept wherever the caller has no real data so the output
// is obviously a template, not a finished letter.
type OfferInput struct {
	CandidateName  string // defaults to [Candidate Name]
	RoleTitle      string
	Department     string
	Salary         string // annual salary, e.g. "$140,000"
	CompanyName    string // defaults to [Company Name]
	StartDate      string // defaults to two weeks from now
	ReportingTo    string // defaults to [Manager Name]
	Equity         string
	Bonus          string
	BenefitsExtras string // comma-separated additional benefits
}

// GenerateOfferLetter produces a professional offer letter template.
func GenerateOfferLetter(input OfferInput) string {
	return Safe("offer_letter_generator", func() (string, error) {
		return generateOfferLetter(input, time.Now()), nil
	})
}

func generateOfferLetter(input OfferInput, now time.Time) string {
	candidate := orPlaceholder(input.CandidateName, "[Candidate Name]")
	company := orPlaceholder(input.CompanyName, "[Company Name]")
	reportingTo := orPlaceholder(input.ReportingTo, "[Manager Name]")
	salary := orPlaceholder(input.Salary, "$100,000")

	startDate := input.StartDate
	if startDate == "" {
		startDate = now.AddDate(0, 0, 14).Format("January 2, 2006")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n[Company Address]\n\n", company)
	fmt.Fprintf(&b, "%s\n\n", now.Format("January 2, 2006"))
	fmt.Fprintf(&b, "%s\n[Candidate Address]\n\n", candidate)
	fmt.Fprintf(&b, "Dear %s,\n\n", candidate)
	fmt.Fprintf(&b, "We are delighted to extend an offer for you to join %s as a %s in our %s team. We were impressed by your experience and believe you will be a valuable addition to our organization.\n\n",
		company, input.RoleTitle, input.Department)

	b.WriteString("**Position Details:**\n")
	fmt.Fprintf(&b, "- **Job Title**: %s\n", input.RoleTitle)
	fmt.Fprintf(&b, "- **Department**: %s\n", input.Department)
	fmt.Fprintf(&b, "- **Reports To**: %s\n", reportingTo)
	fmt.Fprintf(&b, "- **Start Date**: %s\n", startDate)
	b.WriteString("- **Location**: [Office Location / Remote]\n")
	b.WriteString("- **Employment Type**: Full-time\n\n")

	b.WriteString("**Compensation:**\n")
	fmt.Fprintf(&b, "- **Base Salary**: %s per year, paid bi-weekly\n", salary)
	if input.Bonus != "" {
		fmt.Fprintf(&b, "- **Annual Bonus**: %s\n", input.Bonus)
	}
	if input.Equity != "" {
		fmt.Fprintf(&b, "- **Equity**: %s\n", input.Equity)
	}

	b.WriteString("\n**Benefits:**\n")
	b.WriteString("Your compensation package includes:\n")
	b.WriteString("- Comprehensive health, dental, and vision insurance (100% coverage for employee)\n")
	b.WriteString("- 401(k) retirement plan with company matching\n")
	b.WriteString("- Unlimited PTO policy\n")
	b.WriteString("- Professional development budget of $2,000 annually\n")
	b.WriteString("- Latest equipment and tools needed for your role\n")
	b.WriteString("- Flexible work arrangements\n")
	for _, extra := range strings.Split(input.BenefitsExtras, ",") {
		if extra = strings.TrimSpace(extra); extra != "" {
			fmt.Fprintf(&b, "- %s\n", extra)
		}
	}

	b.WriteString("\n**Conditions of Employment:**\n")
	b.WriteString("This offer is contingent upon:\n")
	b.WriteString("- Successful completion of reference checks\n")
	b.WriteString("- Verification of your eligibility to work in the United States\n")
	b.WriteString("- Signing our standard employment agreement and confidentiality agreement\n\n")

	b.WriteString("**Next Steps:**\n")
	fmt.Fprintf(&b, "Please indicate your acceptance of this offer by signing and returning this letter by %s. We would also appreciate a confirmation email to [HR Email].\n\n",
		now.AddDate(0, 0, 7).Format("January 2, 2006"))
	b.WriteString("If you have any questions about this offer or would like to discuss any aspects of it, please don't hesitate to contact me at [HR Phone] or [HR Email].\n\n")
	fmt.Fprintf(&b, "We are excited about the possibility of you joining our team and look forward to the contributions you will make to %s.\n\n", company)

	b.WriteString("Sincerely,\n\n")
	b.WriteString("[HR Manager Name]\n[Title]\n")
	fmt.Fprintf(&b, "%s\n[Email]\n[Phone]\n\n", company)

	b.WriteString("---\n\n**Acceptance:**\n\n")
	fmt.Fprintf(&b, "I, %s, accept the position of %s with %s under the terms outlined in this letter.\n\n",
		candidate, input.RoleTitle, company)
	b.WriteString("Signature: _________________________ Date: _____________\n\n")
	b.WriteString("Print Name: _________________________")

	return strings.TrimSpace(b.String())
}

func orPlaceholder(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
