package models

import (
	"time"

	"gorm.io/gorm"
)

// ScorerConfig represents a remote scoring model configuration (stored in
// database). The scorer tries the default config first, then any active
// config, before degrading to the local heuristic.
type ScorerConfig struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:100;not null" json:"name"`
	Provider    string         `gorm:"size:50;default:openai" json:"provider"` // openai, azure, anthropic, gemini, ollama
	BaseURL     string         `gorm:"size:500" json:"base_url"`
	APIKey      string         `gorm:"size:500" json:"-"`
	APIKeyMask  string         `gorm:"-" json:"api_key_mask"` // For display only
	Model       string         `gorm:"size:100" json:"model"`
	MaxTokens   int            `gorm:"default:1024" json:"max_tokens"`
	Temperature float64        `gorm:"default:0.2" json:"temperature"`
	IsDefault   bool           `gorm:"default:false" json:"is_default"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ScorerConfig) TableName() string { return "scorer_configs" }

// MaskAPIKey returns masked API key for display
func (s *ScorerConfig) MaskAPIKey() string {
	if len(s.APIKey) <= 8 {
		return "****"
	}
	return s.APIKey[:4] + "****" + s.APIKey[len(s.APIKey)-4:]
}
