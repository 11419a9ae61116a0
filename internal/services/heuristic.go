package services

import (
	"fmt"
	"math"
	"strings"
)

const titleBonus = 15

// CalculateHeuristicMatch is the deterministic local scoring fallback used
// when no remote model is reachable. It is side-effect-free: the same
// inputs always produce the same score and reason band.
func CalculateHeuristicMatch(candidate CandidateProfile, project ProjectProfile, cause error) *MatchResult {
	projectSkills := normalizeSkillList(project.Skills)

	candidateSet := make(map[string]bool, len(candidate.Skills))
	for _, s := range candidate.Skills {
		if n := normalizeSkill(s); n != "" {
			candidateSet[n] = true
		}
	}

	// Matched skills keep the project-side order and spelling.
	var matched []string
	for _, s := range projectSkills {
		if candidateSet[normalizeSkill(s)] {
			matched = append(matched, s)
		}
	}

	skillScore := float64(len(matched)) / math.Max(1, float64(len(projectSkills))) * 100

	bonus := 0.0
	if titleAligns(candidate.Title, project.Title) {
		bonus = titleBonus
	}

	score := int(math.Round(skillScore + bonus))
	if score > 100 {
		score = 100
	}

	reason := heuristicReason(score, matched, len(projectSkills))
	if cause != nil {
		reason = fmt.Sprintf("%s (fallback analysis; remote scoring unavailable: %v)", reason, cause)
	} else {
		reason = fmt.Sprintf("%s (fallback analysis)", reason)
	}

	return &MatchResult{Score: score, Reason: reason, Fallback: true}
}

func heuristicReason(score int, matched []string, required int) string {
	top := matched
	if len(top) > 3 {
		top = top[:3]
	}
	list := strings.Join(top, ", ")

	switch {
	case score >= 70:
		return fmt.Sprintf("Strong match: candidate covers %d of %d required skills (%s).",
			len(matched), required, list)
	case score >= 40:
		return fmt.Sprintf("Potential match: candidate covers %d of %d required skills (%s).",
			len(matched), required, list)
	case score >= 1 && len(matched) > 0:
		return fmt.Sprintf("Partial match: candidate covers only %d of %d required skills (%s).",
			len(matched), required, list)
	case score >= 1:
		return "Partial match: candidate's title aligns with the project but no required skills matched."
	default:
		return "Candidate does not meet core requirements: no required skills matched."
	}
}

// titleAligns reports whether the candidate's title relates to the project
// title: either the whole title is a case-insensitive substring, or one of
// its significant words appears in the project title.
func titleAligns(candidateTitle, projectTitle string) bool {
	ct := strings.ToLower(strings.TrimSpace(candidateTitle))
	pt := strings.ToLower(projectTitle)
	if ct == "" || pt == "" {
		return false
	}
	if strings.Contains(pt, ct) {
		return true
	}
	for _, word := range strings.Fields(ct) {
		if len(word) >= 4 && strings.Contains(pt, word) {
			return true
		}
	}
	return false
}

func normalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// normalizeSkillList trims entries and drops empties, preserving order and
// original spelling for display.
func normalizeSkillList(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
