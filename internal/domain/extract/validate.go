package extract

import (
	"fmt"
	"strings"
)

const (
	minInputChars      = 50
	minInputWords      = 20
	minKeywordHits     = 3
	relaxedKeywordHits = 5
)

var placeholderMarkers = []string{
	"lorem ipsum",
	"dummy data",
	"dummy text",
	"sample text",
	"placeholder",
	"asdf asdf",
}

var jobKeywords = []string{
	"responsibilities", "requirements", "qualifications", "experience",
	"skills", "salary", "apply", "position", "role", "candidate",
	"employment", "benefits", "interview", "hiring", "job", "team",
	"full-time", "part-time", "contract", "internship",
}

var boilerplatePhrases = []string{
	"about the job",
	"about the role",
	"about the company",
	"we are seeking",
	"we are looking for",
	"join our team",
	"what you'll do",
	"who you are",
}

var locationTerms = []string{
	"location", "remote", "on-site", "onsite", "hybrid",
	"based in", "headquartered", "relocation",
}

var roleTitleTerms = []string{
	"engineer", "developer", "manager", "analyst", "designer",
	"architect", "consultant", "specialist", "scientist", "lead",
	"intern", "administrator", "coordinator", "director",
}

// Validate decides whether raw text plausibly is a job posting, without any
// external call. It is a heuristic pre-filter, not a classifier; its purpose
// is to avoid spending a paid backend call on obviously wrong input.
func Validate(raw string) (bool, string) {
	text := strings.TrimSpace(raw)
	if len(text) < minInputChars {
		return false, fmt.Sprintf("text is too short (%d characters, need at least %d)", len(text), minInputChars)
	}

	words := strings.Fields(text)
	if len(words) < minInputWords {
		return false, fmt.Sprintf("text has too few words (%d, need at least %d)", len(words), minInputWords)
	}

	lower := strings.ToLower(text)
	for _, marker := range placeholderMarkers {
		if strings.Contains(lower, marker) {
			return false, fmt.Sprintf("text contains placeholder marker %q", marker)
		}
	}

	hits := 0
	for _, kw := range jobKeywords {
		if strings.Contains(lower, kw) {
			hits++
		}
	}

	if hits < minKeywordHits && !containsAny(lower, boilerplatePhrases) {
		return false, "text does not look like a job posting (too few job-related terms)"
	}

	if hits < relaxedKeywordHits && !containsAny(lower, locationTerms) && !containsAny(lower, roleTitleTerms) {
		return false, "text mentions neither a location nor a role title"
	}

	return true, ""
}

func containsAny(lower string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(lower, n) {
			return true
		}
	}
	return false
}
