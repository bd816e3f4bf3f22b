package services

import (
	"fmt"
	"strings"
)

const linkedinHeadlineTail = " | AI-Driven Professional | Open to Opportunities"

// OptimizeLinkedin returns a templated headline and summary built from the
// user's current headline. The current summary is accepted but not reused.
func OptimizeLinkedin(headline string) (string, string) {
	headline = strings.TrimSpace(headline)

	words := strings.Fields(headline)
	if len(words) > 2 {
		words = words[len(words)-2:]
	}
	expertise := strings.Join(words, " ")

	summary := fmt.Sprintf("Innovative professional with expertise in %s.\n"+
		"Passionate about delivering results and driving impact.\n"+
		"Skilled in problem-solving, team collaboration, and continuous learning.", expertise)

	return headline + linkedinHeadlineTail, summary
}
