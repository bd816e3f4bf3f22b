package services

import (
	"sort"
	"strings"
	"unicode/utf8"

	"alfredoptarigan/resume-ats/internal/models"
)

const (
	keywordEdgePunctuation = ".,!?:"
	minKeywordLength       = 4
	maxKeywordsListed      = 10

	highlightMinLength = 5
	highlightLimit     = 15
)

// KeywordSet is an unordered set of normalized tokens.
type KeywordSet map[string]struct{}

// ExtractKeywords lowercases text, splits it on whitespace, trims edge
// punctuation and keeps the distinct tokens at least four characters long.
func ExtractKeywords(text string) KeywordSet {
	set := make(KeywordSet)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, keywordEdgePunctuation)
		if utf8.RuneCountInString(word) < minKeywordLength {
			continue
		}
		set[word] = struct{}{}
	}
	return set
}

func (s KeywordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Sorted returns the members in ascending order.
func (s KeywordSet) Sorted() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// ScoreGap compares the resume keywords against the job description keywords.
// The score is the truncated percentage of job description keywords present
// in the resume. Keyword lists are sorted before being cut to ten entries.
func ScoreGap(resume, jd KeywordSet) models.GapAnalysis {
	var matching, missing []string
	for _, word := range jd.Sorted() {
		if resume.Contains(word) {
			matching = append(matching, word)
		} else {
			missing = append(missing, word)
		}
	}

	score := 0
	if len(jd) > 0 {
		score = clampScore(len(matching) * 100 / len(jd))
	}

	return models.GapAnalysis{
		Score:            score,
		MatchingKeywords: firstN(matching, maxKeywordsListed),
		MissingKeywords:  firstN(missing, maxKeywordsListed),
		TotalJDKeywords:  len(jd),
		MatchedCount:     len(matching),
	}
}

// AnalyzeGap runs extraction on both texts and attaches the advice shown to users.
func AnalyzeGap(resumeText, jobDescription string) models.GapReport {
	analysis := ScoreGap(ExtractKeywords(resumeText), ExtractKeywords(jobDescription))

	suggestions := []string{"Excellent match!"}
	if analysis.Score < 70 {
		suggestions = []string{"Add more technical keywords."}
	}

	status := "Needs Work"
	if analysis.Score > 60 {
		status = "Good"
	}

	return models.GapReport{
		Analysis:    analysis,
		Suggestions: suggestions,
		Status:      status,
	}
}

// HighlightKeywords returns up to fifteen distinct job description words longer
// than four characters, in the order they first appear.
func HighlightKeywords(jobDescription string) []string {
	seen := make(map[string]struct{})
	keywords := make([]string, 0, highlightLimit)
	for _, word := range strings.Fields(strings.ToLower(jobDescription)) {
		if utf8.RuneCountInString(word) < highlightMinLength {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		keywords = append(keywords, word)
		if len(keywords) == highlightLimit {
			break
		}
	}
	return keywords
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func firstN(words []string, n int) []string {
	if words == nil {
		return []string{}
	}
	if len(words) > n {
		return words[:n]
	}
	return words
}
