package tools

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var offerNow = time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

func TestGenerateOfferLetter_FullInput(t *testing.T) {
	out := generateOfferLetter(OfferInput{
		CandidateName: "Jordan Lee",
		RoleTitle:     "Senior Backend Engineer",
		Department:    "Platform",
		Salary:        "$165,000",
		CompanyName:   "Acme Corp",
		StartDate:     "April 1, 2026",
		ReportingTo:   "Sam Rivera",
		Equity:        "0.25% - 1.0%",
		Bonus:         "15% ($24,750)",
	}, offerNow)

	require.NotEmpty(t, out)
	assert.Contains(t, out, "Dear Jordan Lee,")
	assert.Contains(t, out, "join Acme Corp as a Senior Backend Engineer in our Platform team")
	assert.Contains(t, out, "- **Job Title**: Senior Backend Engineer")
	assert.Contains(t, out, "- **Reports To**: Sam Rivera")
	assert.Contains(t, out, "- **Start Date**: April 1, 2026")
	assert.Contains(t, out, "- **Base Salary**: $165,000 per year")
	assert.Contains(t, out, "- **Annual Bonus**: 15% ($24,750)")
	assert.Contains(t, out, "- **Equity**: 0.25% - 1.0%")
	assert.Contains(t, out, "I, Jordan Lee, accept the position of Senior Backend Engineer with Acme Corp")
}

func TestGenerateOfferLetter_PlaceholdersForMissingFields(t *testing.T) {
	out := generateOfferLetter(OfferInput{
		RoleTitle:  "Product Manager",
		Department: "Product",
	}, offerNow)

	assert.Contains(t, out, "Dear [Candidate Name],")
	assert.Contains(t, out, "[Company Name]")
	assert.Contains(t, out, "- **Reports To**: [Manager Name]")
	assert.Contains(t, out, "- **Base Salary**: $100,000 per year")

	// Optional compensation lines are omitted entirely when absent.
	assert.NotContains(t, out, "**Annual Bonus**")
	assert.NotContains(t, out, "**Equity**")
}

func TestGenerateOfferLetter_DefaultDates(t *testing.T) {
	out := generateOfferLetter(OfferInput{RoleTitle: "Designer", Department: "Design"}, offerNow)

	// Letter is dated today; start defaults to two weeks out; the response
	// deadline is one week out.
	assert.Contains(t, out, "March 2, 2026")
	assert.Contains(t, out, "- **Start Date**: March 16, 2026")
	assert.Contains(t, out, "returning this letter by March 9, 2026")
}

func TestGenerateOfferLetter_ExtraBenefits(t *testing.T) {
	out := generateOfferLetter(OfferInput{
		RoleTitle:      "Engineer",
		Department:     "Engineering",
		BenefitsExtras: "Gym stipend, Commuter benefits, ",
	}, offerNow)

	assert.Contains(t, out, "- Gym stipend\n")
	assert.Contains(t, out, "- Commuter benefits\n")
}

func TestGenerateOfferLetter_StandardSections(t *testing.T) {
	out := GenerateOfferLetter(OfferInput{RoleTitle: "Engineer", Department: "Engineering"})

	for _, section := range []string{
		"**Position Details:**",
		"**Compensation:**",
		"**Benefits:**",
		"**Conditions of Employment:**",
		"**Next Steps:**",
		"**Acceptance:**",
	} {
		assert.Contains(t, out, section)
	}
	assert.Contains(t, out, "401(k) retirement plan")
	assert.Contains(t, out, "Signature: ___")
}

func TestOrPlaceholder(t *testing.T) {
	assert.Equal(t, "value", orPlaceholder("value", "[X]"))
	assert.Equal(t, "[X]", orPlaceholder("", "[X]"))
	assert.Equal(t, "[X]", orPlaceholder("   ", "[X]"))
}
