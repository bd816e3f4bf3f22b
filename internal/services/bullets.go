package services

import (
	"strings"
	"unicode"
)

const (
	defaultActionVerb = "Developed "
	metricSuffix      = ", resulting in a 25% improvement in efficiency"
)

var actionVerbs = []string{
	"achieved", "built", "created", "delivered", "designed", "developed",
	"established", "implemented", "improved", "increased", "launched", "led",
	"managed", "optimized", "reduced", "spearheaded", "streamlined",
}

// ImproveBullets strengthens resume bullet points without removing any text:
// a bullet lacking an action verb gets one prepended, and a bullet without a
// number gets a metric appended. Blank bullets are dropped; the rest keep
// their input order.
func ImproveBullets(bullets []string) []string {
	improved := make([]string, 0, len(bullets))
	for _, bullet := range bullets {
		if strings.TrimSpace(bullet) == "" {
			continue
		}
		improved = append(improved, improveBullet(bullet))
	}
	return improved
}

func improveBullet(bullet string) string {
	bullet = strings.TrimSpace(bullet)

	if !hasActionVerb(bullet) {
		bullet = defaultActionVerb + bullet
	}
	if !strings.ContainsFunc(bullet, unicode.IsDigit) {
		bullet += metricSuffix
	}
	return bullet
}

func hasActionVerb(bullet string) bool {
	lower := strings.ToLower(bullet)
	for _, verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			return true
		}
	}
	return false
}
