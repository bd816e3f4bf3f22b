package services

import (
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildSectionPrompt asks for a single resume section such as a summary.
func (pb *PromptBuilder) BuildSectionPrompt(section, jobTitle, guidance string) string {
	return withGuidance(fmt.Sprintf(`You are an expert resume writer.

Write a %s for a %s.

Keep it concise, ATS friendly, written in the first person without pronouns, and focused on measurable impact.
Return ONLY the section text, no headings or markdown.`, section, jobTitle), guidance)
}

// BuildCoverLetterPrompt creates prompt for a cover letter.
func (pb *PromptBuilder) BuildCoverLetterPrompt(company, jobTitle, fullName string, skills []string, guidance string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an expert career writer. Write a professional cover letter for the %s position at %s.\n", jobTitle, company)
	if fullName != "" {
		fmt.Fprintf(&b, "The applicant's name is %s; sign the letter with it.\n", fullName)
	}
	if len(skills) > 0 {
		fmt.Fprintf(&b, "Highlight these skills: %s.\n", strings.Join(skills, ", "))
	}
	b.WriteString(`
Use three to four short paragraphs: an opening that names the role, evidence of fit, motivation for joining the company, and a closing call to action.
Return ONLY the letter text.`)

	return withGuidance(b.String(), guidance)
}

// BuildChatPrompt wraps a user message for the career coach persona.
func (pb *PromptBuilder) BuildChatPrompt(message, guidance string) string {
	return withGuidance(fmt.Sprintf(`You are a friendly, practical career coach helping someone improve their resume and job search.

Career coach response to: %s

Answer in at most five sentences.`, message), guidance)
}

// BuildKnowledgeQuery turns a request into the search text used against the career guide collection.
func (pb *PromptBuilder) BuildKnowledgeQuery(kind, subject string) string {
	switch kind {
	case "section":
		return fmt.Sprintf("How to write a strong resume %s", subject)
	case "cover_letter":
		return fmt.Sprintf("Cover letter advice for %s", subject)
	default:
		return subject
	}
}

func withGuidance(prompt, guidance string) string {
	guidance = strings.TrimSpace(guidance)
	if guidance == "" {
		return prompt
	}
	return fmt.Sprintf("%s\n\nREFERENCE GUIDANCE:\n%s", prompt, guidance)
}

// FormatKnowledgeContext renders retrieved guide chunks for prompt injection.
func FormatKnowledgeContext(results []SearchResult) string {
	if len(results) == 0 {
		return ""
	}

	var parts []string
	for i, result := range results {
		parts = append(parts, fmt.Sprintf("--- Guide %d (Score: %.2f) ---\n%s",
			i+1, result.Score, strings.TrimSpace(result.Text)))
	}

	return strings.Join(parts, "\n\n")
}
