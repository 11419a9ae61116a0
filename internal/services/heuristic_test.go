package services

import (
	"errors"
	"strings"
	"testing"
)

func TestCalculateHeuristicMatch_PartialSkillOverlap(t *testing.T) {
	candidate := CandidateProfile{
		Name:   "Dana",
		Title:  "Data Scientist",
		Skills: []string{"react", "typescript"},
	}
	project := ProjectProfile{
		Title:  "Inventory Dashboard",
		Skills: []string{"React", "TypeScript", "Node.js"},
	}

	result := CalculateHeuristicMatch(candidate, project, nil)

	// 2 of 3 skills, no title alignment: round(66.67) = 67
	if result.Score != 67 {
		t.Errorf("Score = %d, want 67", result.Score)
	}
	if !result.Fallback {
		t.Error("Fallback should be true for heuristic results")
	}
	if !strings.HasPrefix(result.Reason, "Potential match") {
		t.Errorf("Reason should start with 'Potential match', got %q", result.Reason)
	}
	if !strings.Contains(result.Reason, "React, TypeScript") {
		t.Errorf("Reason should list matched skills in project order, got %q", result.Reason)
	}
}

func TestCalculateHeuristicMatch_TitleBonus(t *testing.T) {
	candidate := CandidateProfile{
		Name:   "Farid",
		Title:  "Frontend Developer",
		Skills: []string{"React", "CSS"},
	}
	project := ProjectProfile{
		Title:  "NeuraLinker Frontend Platform",
		Skills: []string{"React", "CSS", "GraphQL", "Testing"},
	}

	result := CalculateHeuristicMatch(candidate, project, nil)

	// 2 of 4 skills = 50, plus the title bonus
	if result.Score != 65 {
		t.Errorf("Score = %d, want 65", result.Score)
	}
	if !strings.HasPrefix(result.Reason, "Potential match") {
		t.Errorf("unexpected reason band: %q", result.Reason)
	}
}

func TestCalculateHeuristicMatch_NoTitleBonusForUnrelatedTitles(t *testing.T) {
	candidate := CandidateProfile{
		Title:  "Accountant",
		Skills: []string{"React"},
	}
	project := ProjectProfile{
		Title:  "Inventory Dashboard",
		Skills: []string{"React", "TypeScript"},
	}

	result := CalculateHeuristicMatch(candidate, project, nil)

	if result.Score != 50 {
		t.Errorf("Score = %d, want 50 (no title bonus)", result.Score)
	}
}

func TestCalculateHeuristicMatch_ClampsAt100(t *testing.T) {
	candidate := CandidateProfile{
		Title:  "Backend Engineer",
		Skills: []string{"Go", "PostgreSQL"},
	}
	project := ProjectProfile{
		Title:  "Backend Billing Service",
		Skills: []string{"Go", "PostgreSQL"},
	}

	result := CalculateHeuristicMatch(candidate, project, nil)

	if result.Score != 100 {
		t.Errorf("Score = %d, want 100 (clamped)", result.Score)
	}
	if !strings.HasPrefix(result.Reason, "Strong match") {
		t.Errorf("unexpected reason band: %q", result.Reason)
	}
}

func TestCalculateHeuristicMatch_NoOverlap(t *testing.T) {
	candidate := CandidateProfile{
		Title:  "Gardener",
		Skills: []string{"Pruning"},
	}
	project := ProjectProfile{
		Title:  "Realtime Chat Server",
		Skills: []string{"Go", "WebSockets"},
	}

	result := CalculateHeuristicMatch(candidate, project, nil)

	if result.Score != 0 {
		t.Errorf("Score = %d, want 0", result.Score)
	}
	if !strings.HasPrefix(result.Reason, "Candidate does not meet core requirements") {
		t.Errorf("unexpected reason: %q", result.Reason)
	}
}

func TestCalculateHeuristicMatch_TitleOnlyAlignment(t *testing.T) {
	candidate := CandidateProfile{
		Title:  "Mobile Developer",
		Skills: []string{"Swift"},
	}
	project := ProjectProfile{
		Title:  "Mobile Expense Tracker",
		Skills: []string{"Kotlin", "Firebase"},
	}

	result := CalculateHeuristicMatch(candidate, project, nil)

	if result.Score != 15 {
		t.Errorf("Score = %d, want 15 (title bonus only)", result.Score)
	}
	if !strings.Contains(result.Reason, "title aligns") {
		t.Errorf("unexpected reason: %q", result.Reason)
	}
}

func TestCalculateHeuristicMatch_SkillMatchingIsCaseAndSpaceInsensitive(t *testing.T) {
	candidate := CandidateProfile{
		Title:  "Engineer",
		Skills: []string{"  GO ", "postgresql"},
	}
	project := ProjectProfile{
		Title:  "Metrics Pipeline",
		Skills: []string{"Go", "PostgreSQL", "Kafka"},
	}

	result := CalculateHeuristicMatch(candidate, project, nil)

	if result.Score != 67 {
		t.Errorf("Score = %d, want 67", result.Score)
	}
}

func TestCalculateHeuristicMatch_Deterministic(t *testing.T) {
	candidate := CandidateProfile{
		Title:  "Frontend Developer",
		Skills: []string{"React", "CSS"},
	}
	project := ProjectProfile{
		Title:  "Storefront Revamp",
		Skills: []string{"React", "CSS", "Next.js"},
	}

	first := CalculateHeuristicMatch(candidate, project, nil)
	second := CalculateHeuristicMatch(candidate, project, nil)

	if first.Score != second.Score || first.Reason != second.Reason {
		t.Errorf("heuristic is not deterministic: %+v vs %+v", first, second)
	}
}

func TestCalculateHeuristicMatch_ReasonCarriesFallbackCause(t *testing.T) {
	candidate := CandidateProfile{Title: "Engineer", Skills: []string{"Go"}}
	project := ProjectProfile{Title: "CLI Tooling", Skills: []string{"Go"}}

	result := CalculateHeuristicMatch(candidate, project, errors.New("connection refused"))

	if !strings.Contains(result.Reason, "remote scoring unavailable") {
		t.Errorf("Reason should mention the fallback cause, got %q", result.Reason)
	}
	if !strings.Contains(result.Reason, "connection refused") {
		t.Errorf("Reason should include the underlying error, got %q", result.Reason)
	}
}

func TestTitleAligns(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		project   string
		want      bool
	}{
		{"exact substring", "Frontend Developer", "Frontend Developer Wanted", true},
		{"word level match", "Frontend Developer", "NeuraLinker Frontend Platform", true},
		{"case insensitive", "frontend developer", "FRONTEND Platform", true},
		{"unrelated", "Accountant", "Inventory Dashboard", false},
		{"short words ignored", "Go Dev", "Good Dashboard", false},
		{"empty candidate", "", "Anything", false},
		{"empty project", "Engineer", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := titleAligns(tt.candidate, tt.project); got != tt.want {
				t.Errorf("titleAligns(%q, %q) = %v, want %v", tt.candidate, tt.project, got, tt.want)
			}
		})
	}
}
