package models

type GapAnalysis struct {
	Score            int      `json:"score"`
	MatchingKeywords []string `json:"matching_keywords"`
	MissingKeywords  []string `json:"missing_keywords"`
	TotalJDKeywords  int      `json:"total_jd_keywords"`
	MatchedCount     int      `json:"matched_count"`
}

type GapReport struct {
	Analysis    GapAnalysis `json:"analysis"`
	Suggestions []string    `json:"suggestions"`
	Status      string      `json:"status"`
}

type AtsStatus string

const (
	AtsExcellent        AtsStatus = "Excellent"
	AtsGood             AtsStatus = "Good"
	AtsNeedsImprovement AtsStatus = "NeedsImprovement"
)

type AtsResult struct {
	Score  int       `json:"score"`
	Issues []string  `json:"issues"`
	Status AtsStatus `json:"status"`
}
