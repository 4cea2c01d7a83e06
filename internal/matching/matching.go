// Package matching computes the 0-100 relevance score between a job
// listing and the user's preference profile.
//
// Signals are independent and additive:
//
//	+25  any role keyword is a substring of the title
//	+15  any role keyword is a substring of the description
//	+15  location is an exact preferred location
//	+10  mode is an exact preferred mode
//	+10  experience equals the preferred level
//	+15  any user skill overlaps any job skill (substring either way)
//	 +5  posted at most 2 days ago
//	 +5  sourced from LinkedIn
//
// The sum is capped at 100. Scoring is pure: same inputs, same score.
package matching

import (
	"strings"

	"github.com/anuragpatil2882004-ui/job-traking/internal/jobs"
	"github.com/anuragpatil2882004-ui/job-traking/internal/preferences"
)

const (
	titleKeywordPoints   = 25
	descKeywordPoints    = 15
	locationPoints       = 15
	modePoints           = 10
	experiencePoints     = 10
	skillOverlapPoints   = 15
	recencyPoints        = 5
	linkedInSourcePoints = 5
	maxScore             = 100
	recencyWindowDays    = 2
	linkedInSource       = "LinkedIn"
)

// Score rates job against prefs. A nil profile always scores 0.
func Score(job jobs.Job, prefs *preferences.Profile) int {
	if prefs == nil {
		return 0
	}

	score := 0
	roleKeywords := preferences.Tokens(prefs.RoleKeywords)
	userSkills := preferences.Tokens(prefs.Skills)
	title := strings.ToLower(job.Title)
	desc := strings.ToLower(job.Description)

	if containsAny(title, roleKeywords) {
		score += titleKeywordPoints
	}
	if containsAny(desc, roleKeywords) {
		score += descKeywordPoints
	}
	if job.Location != "" && contains(prefs.PreferredLocations, job.Location) {
		score += locationPoints
	}
	if job.Mode != "" && contains(prefs.PreferredMode, job.Mode) {
		score += modePoints
	}
	if prefs.ExperienceLevel != "" && job.Experience == prefs.ExperienceLevel {
		score += experiencePoints
	}
	if skillsOverlap(userSkills, job.Skills) {
		score += skillOverlapPoints
	}
	if job.PostedDaysAgo != nil && *job.PostedDaysAgo <= recencyWindowDays {
		score += recencyPoints
	}
	if job.Source == linkedInSource {
		score += linkedInSourcePoints
	}

	if score > maxScore {
		return maxScore
	}
	return score
}

// ScoreAll returns scored copies of every job in listing order. The
// input collection is left untouched.
func ScoreAll(list *jobs.Jobs, prefs *preferences.Profile) []jobs.Job {
	if list == nil {
		return []jobs.Job{}
	}

	scored := make([]jobs.Job, 0, len(list.Items))
	for _, job := range list.Items {
		withScore := job
		withScore.MatchScore = Score(job, prefs)
		scored = append(scored, withScore)
	}
	return scored
}

// containsAny reports whether any token is a substring of haystack.
// The first hit wins; an empty token list never matches.
func containsAny(haystack string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(haystack, token) {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// skillsOverlap reports whether any (user skill, job skill) pair matches
// with either side containing the other, case-insensitively. The bonus
// is awarded once, so the scan stops at the first pair.
func skillsOverlap(userSkills, jobSkills []string) bool {
	if len(userSkills) == 0 || jobSkills == nil {
		return false
	}
	for _, us := range userSkills {
		for _, raw := range jobSkills {
			js := strings.ToLower(raw)
			if js == "" {
				continue
			}
			if strings.Contains(js, us) || strings.Contains(us, js) {
				return true
			}
		}
	}
	return false
}
