package services

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"alfredoptarigan/resume-ats/internal/models"
)

const (
	atsMinLength = 200

	penaltyTooShort       = 20
	penaltyNoEmail        = 15
	penaltyNoPhone        = 10
	penaltyMissingSection = 5
	penaltyBadEncoding    = 5
	penaltyNoBullets      = 5

	excellentThreshold = 90
	goodThreshold      = 70
)

var atsSections = []string{"experience", "education", "skills", "summary", "projects"}

// Mojibake left behind when UTF-8 text is decoded as Windows-1252 or Latin-1.
var encodingArtifacts = []string{"â€", "Ã", "ï¿½", "�"}

var bulletMarkers = []string{"•", "-", "*"}

// CheckATS applies fixed deductions for formatting problems that commonly
// trip applicant tracking systems. Issues are reported in rule order.
func CheckATS(text string) models.AtsResult {
	lower := strings.ToLower(text)
	score := 100
	issues := []string{}

	if utf8.RuneCountInString(text) < atsMinLength {
		issues = append(issues, fmt.Sprintf("Resume is too short (under %d characters)", atsMinLength))
		score -= penaltyTooShort
	}

	if !strings.Contains(text, "@") && !strings.Contains(lower, "email") {
		issues = append(issues, "Email address missing")
		score -= penaltyNoEmail
	}

	if !strings.Contains(lower, "phone") && !strings.ContainsFunc(text, unicode.IsDigit) {
		issues = append(issues, "Phone number missing")
		score -= penaltyNoPhone
	}

	for _, section := range atsSections {
		if !strings.Contains(lower, section) {
			issues = append(issues, fmt.Sprintf("Missing standard section: %s", section))
			score -= penaltyMissingSection
		}
	}

	if containsAny(text, encodingArtifacts) {
		issues = append(issues, "Contains special characters that may not parse correctly")
		score -= penaltyBadEncoding
	}

	if !containsAny(text, bulletMarkers) {
		issues = append(issues, "No bullet points found")
		score -= penaltyNoBullets
	}

	score = clampScore(score)

	return models.AtsResult{
		Score:  score,
		Issues: issues,
		Status: AtsStatusFor(score),
	}
}

func AtsStatusFor(score int) models.AtsStatus {
	switch {
	case score >= excellentThreshold:
		return models.AtsExcellent
	case score >= goodThreshold:
		return models.AtsGood
	default:
		return models.AtsNeedsImprovement
	}
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}
