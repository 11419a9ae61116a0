package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/abdullah-briah/neuralinker-sub000/internal/config"
	"github.com/abdullah-briah/neuralinker-sub000/internal/models"
	"github.com/abdullah-briah/neuralinker-sub000/pkg/logger"
	"gorm.io/gorm"
)

// CandidateProfile is the normalized requester profile fed to the scorer.
type CandidateProfile struct {
	Name   string
	Title  string
	Bio    string
	Skills []string
}

// ProjectProfile is the normalized project side of the comparison.
type ProjectProfile struct {
	Title       string
	Description string
	Category    string
	Skills      []string
}

// MatchResult is the scorer output. Fallback is true when the local
// heuristic produced the result instead of a remote model.
type MatchResult struct {
	Score    int    `json:"score"`
	Reason   string `json:"reason"`
	Fallback bool   `json:"fallback"`
}

// ScorerService produces a compatibility score for a candidate/project
// pair. It tries remote models first and degrades to a deterministic
// local heuristic on any failure; Score never returns an error.
type ScorerService struct {
	db  *gorm.DB
	cfg *config.AIConfig
}

func NewScorerService(db *gorm.DB, cfg *config.AIConfig) *ScorerService {
	return &ScorerService{db: db, cfg: cfg}
}

// Score evaluates how well a candidate fits a project, returning a score
// in [0,100] and a short rationale.
func (s *ScorerService) Score(ctx context.Context, candidate CandidateProfile, project ProjectProfile) *MatchResult {
	if len(candidate.Skills) == 0 && strings.TrimSpace(candidate.Bio) == "" && strings.TrimSpace(candidate.Title) == "" {
		return &MatchResult{Score: 0, Reason: "Insufficient user profile data."}
	}

	result, err := s.scoreRemote(ctx, candidate, project)
	if err == nil {
		return result
	}

	logger.Warn().Err(err).Str("candidate", candidate.Name).Str("project", project.Title).
		Msg("remote scoring failed, using heuristic fallback")
	return CalculateHeuristicMatch(candidate, project, err)
}

func (s *ScorerService) scoreRemote(ctx context.Context, candidate CandidateProfile, project ProjectProfile) (*MatchResult, error) {
	configs := s.getOrderedConfigs()
	if len(configs) == 0 {
		return nil, fmt.Errorf("no scorer configuration available")
	}

	prompt := buildScoringPrompt(candidate, project)
	timeout := time.Duration(s.cfg.TimeoutSeconds) * time.Second

	var lastErr error
	for i, cfg := range configs {
		logger.Infof("[Scorer] Attempting model %d/%d: %s (provider: %s, model: %s)",
			i+1, len(configs), cfg.Name, cfg.Provider, cfg.Model)

		callCtx, cancel := context.WithTimeout(ctx, timeout)
		content, err := s.callProvider(callCtx, &cfg, prompt)
		cancel()
		if err != nil {
			lastErr = err
			logger.Infof("[Scorer] Model %s failed: %v, trying next", cfg.Name, err)
			continue
		}

		result, err := parseScoreResponse(content)
		if err != nil {
			lastErr = fmt.Errorf("model %s returned unusable response: %w", cfg.Name, err)
			logger.Infof("[Scorer] %v, trying next", lastErr)
			continue
		}

		logger.Infof("[Scorer] Success with model %s: score=%d", cfg.Name, result.Score)
		return result, nil
	}

	return nil, fmt.Errorf("all scoring models failed, last error: %w", lastErr)
}

// getOrderedConfigs returns active scorer configs, default first, with a
// final fallback built from the yaml ai section when the database has none.
func (s *ScorerService) getOrderedConfigs() []models.ScorerConfig {
	var configs []models.ScorerConfig

	var defaultConfig models.ScorerConfig
	if err := s.db.Where("is_default = ? AND is_active = ?", true, true).First(&defaultConfig).Error; err == nil {
		configs = append(configs, defaultConfig)
	}

	var backups []models.ScorerConfig
	s.db.Where("is_active = ?", true).Order("id ASC").Find(&backups)
	for _, c := range backups {
		if len(configs) == 0 || configs[0].ID != c.ID {
			configs = append(configs, c)
		}
	}

	if len(configs) == 0 && s.cfg.APIKey != "" {
		configs = append(configs, models.ScorerConfig{
			Name:        "fallback",
			Provider:    s.cfg.Provider,
			BaseURL:     s.cfg.BaseURL,
			APIKey:      s.cfg.APIKey,
			Model:       s.cfg.Model,
			Temperature: s.cfg.Temperature,
		})
	}

	return configs
}

func buildScoringPrompt(candidate CandidateProfile, project ProjectProfile) string {
	var b strings.Builder
	b.WriteString("You are a matchmaking assistant for a project-collaboration platform. ")
	b.WriteString("Rate how well the candidate fits the project on a 0-100 scale.\n\n")

	b.WriteString("## Candidate\n")
	fmt.Fprintf(&b, "Name: %s\n", candidate.Name)
	fmt.Fprintf(&b, "Title: %s\n", candidate.Title)
	fmt.Fprintf(&b, "Bio: %s\n", candidate.Bio)
	fmt.Fprintf(&b, "Skills: %s\n\n", strings.Join(candidate.Skills, ", "))

	b.WriteString("## Project\n")
	fmt.Fprintf(&b, "Title: %s\n", project.Title)
	fmt.Fprintf(&b, "Category: %s\n", project.Category)
	fmt.Fprintf(&b, "Description: %s\n", project.Description)
	fmt.Fprintf(&b, "Required skills: %s\n\n", strings.Join(project.Skills, ", "))

	b.WriteString("Respond with exactly one JSON object and nothing else, in the form ")
	b.WriteString(`{"score": <integer 0-100>, "reason": "<one sentence>"}`)
	return b.String()
}

// parseScoreResponse extracts the first JSON object from free-form model
// output and validates it as a {score, reason} payload.
func parseScoreResponse(content string) (*MatchResult, error) {
	idx := strings.Index(content, "{")
	if idx < 0 {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var payload struct {
		Score  *int   `json:"score"`
		Reason string `json:"reason"`
	}
	dec := json.NewDecoder(strings.NewReader(content[idx:]))
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("malformed JSON in response: %w", err)
	}

	if payload.Score == nil {
		return nil, fmt.Errorf("response JSON missing score")
	}
	if *payload.Score < 0 || *payload.Score > 100 {
		return nil, fmt.Errorf("score %d out of range [0,100]", *payload.Score)
	}
	if strings.TrimSpace(payload.Reason) == "" {
		return nil, fmt.Errorf("response JSON missing reason")
	}

	return &MatchResult{Score: *payload.Score, Reason: strings.TrimSpace(payload.Reason)}, nil
}
