package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abdullah-briah/neuralinker-sub000/internal/config"
	"github.com/abdullah-briah/neuralinker-sub000/internal/models"
	"github.com/abdullah-briah/neuralinker-sub000/pkg/logger"
	"github.com/abdullah-briah/neuralinker-sub000/pkg/response"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// JoinRequestService orchestrates the join-request lifecycle: creation
// with duplicate prevention, best-effort scoring, and the accept/reject
// transition with its membership and notification side effects.
type JoinRequestService struct {
	db       *gorm.DB
	scorer   *ScorerService
	notifier *NotificationService
}

func NewJoinRequestService(db *gorm.DB, aiCfg *config.AIConfig) *JoinRequestService {
	return &JoinRequestService{
		db:       db,
		scorer:   NewScorerService(db, aiCfg),
		notifier: NewNotificationService(db),
	}
}

// lockForUpdate applies a row lock where the dialect supports it. SQLite
// serializes writers at the database level and its grammar has no FOR
// UPDATE clause.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// CandidateFromUser builds the scorer input from a user profile.
func CandidateFromUser(u *models.User) CandidateProfile {
	return CandidateProfile{
		Name:   u.Name,
		Title:  u.Title,
		Bio:    u.Bio,
		Skills: u.Skills,
	}
}

// ProfileFromProject builds the scorer input from a project.
func ProfileFromProject(p *models.Project) ProjectProfile {
	return ProjectProfile{
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Skills:      p.Skills,
	}
}

// Create registers a pending join request for (projectID, userID).
//
// The membership and duplicate-pending checks run inside one transaction
// holding a lock on the project row, so two rapid requests for the same
// pair cannot both pass the pre-check. Scoring and the owner notification
// happen after commit and are best-effort: their failure never unwinds
// the created request.
func (s *JoinRequestService) Create(ctx context.Context, projectID, userID uint) (*models.JoinRequest, error) {
	var project models.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, response.NewNotFound("project not found")
		}
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, response.NewNotFound("user not found")
		}
		return nil, err
	}

	if project.OwnerID == userID {
		return nil, response.NewForbidden("you cannot request to join your own project")
	}

	request := models.JoinRequest{
		ProjectID: projectID,
		UserID:    userID,
		Status:    models.JoinRequestPending,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Serialize concurrent creates for the same project.
		var locked models.Project
		if err := lockForUpdate(tx).First(&locked, projectID).Error; err != nil {
			return err
		}

		var memberCount int64
		if err := tx.Model(&models.ProjectMember{}).
			Where("project_id = ? AND user_id = ?", projectID, userID).
			Count(&memberCount).Error; err != nil {
			return err
		}
		if memberCount > 0 {
			return response.NewConflict("you are already a member of this project")
		}

		var pendingCount int64
		if err := tx.Model(&models.JoinRequest{}).
			Where("project_id = ? AND user_id = ? AND status = ?", projectID, userID, models.JoinRequestPending).
			Count(&pendingCount).Error; err != nil {
			return err
		}
		if pendingCount > 0 {
			return response.NewConflict("Join request already sent")
		}

		return tx.Create(&request).Error
	})
	if err != nil {
		return nil, err
	}

	// Scoring is advisory: the request stands even when both the remote
	// model and the insight insert fail.
	result := s.scorer.Score(ctx, CandidateFromUser(&user), ProfileFromProject(&project))
	s.persistInsight(request.ID, result)
	s.notifyOwner(&project, &user, &request, result)

	var created models.JoinRequest
	if err := s.db.Preload("Project").Preload("User").Preload("Insight").
		First(&created, request.ID).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *JoinRequestService) persistInsight(requestID uint, result *MatchResult) {
	insight := models.AIInsight{
		JoinRequestID: requestID,
		Fallback:      result.Fallback,
	}
	if err := insight.SetResult(models.InsightResult{Score: result.Score, Reason: result.Reason}); err != nil {
		logger.Errorf("[JoinRequest] Discarding invalid insight for request %d: %v", requestID, err)
		return
	}
	if err := s.db.Create(&insight).Error; err != nil {
		logger.Errorf("[JoinRequest] Failed to persist insight for request %d: %v", requestID, err)
	}
}

func (s *JoinRequestService) notifyOwner(project *models.Project, user *models.User, request *models.JoinRequest, result *MatchResult) {
	score := 0
	excerpt := ""
	if result != nil {
		score = result.Score
		excerpt = reasonExcerpt(result.Reason)
	}

	message := fmt.Sprintf("%s requested to join %q. Compatibility score: %d/100.", user.Name, project.Title, score)
	if excerpt != "" {
		message = fmt.Sprintf("%s %s", message, excerpt)
	}

	_, err := s.notifier.Create(&CreateNotificationParams{
		UserID:        project.OwnerID,
		Title:         "New join request",
		Message:       message,
		ProjectID:     &project.ID,
		JoinRequestID: &request.ID,
	})
	if err != nil {
		logger.Errorf("[JoinRequest] Failed to notify owner %d about request %d: %v", project.OwnerID, request.ID, err)
	}
}

// reasonExcerpt keeps the first sentence of a rationale, truncated for
// the notification message.
func reasonExcerpt(reason string) string {
	reason = strings.TrimSpace(reason)
	if idx := strings.Index(reason, ". "); idx >= 0 {
		reason = reason[:idx+1]
	}
	if len(reason) > 160 {
		reason = reason[:157] + "..."
	}
	return reason
}

// Respond applies the owner's decision. The status update, the membership
// insert on accept, and the requester notification commit or roll back as
// one transaction; a terminal request admits no further transitions.
func (s *JoinRequestService) Respond(ctx context.Context, requestID uint, status string, actorID uint) (*models.JoinRequest, error) {
	if status != models.JoinRequestAccepted && status != models.JoinRequestRejected {
		return nil, response.NewBadRequest("status must be accepted or rejected")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var request models.JoinRequest
		if err := lockForUpdate(tx).First(&request, requestID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return response.NewNotFound("join request not found")
			}
			return err
		}

		var project models.Project
		if err := tx.First(&project, request.ProjectID).Error; err != nil {
			return err
		}
		if project.OwnerID != actorID {
			return response.NewForbidden("only the project owner can respond to join requests")
		}

		if request.Status != models.JoinRequestPending {
			return response.NewConflict("request already processed")
		}

		now := time.Now()
		if err := tx.Model(&request).
			Updates(map[string]interface{}{"status": status, "responded_at": now}).Error; err != nil {
			return err
		}

		if status == models.JoinRequestAccepted {
			member := models.ProjectMember{
				ProjectID: request.ProjectID,
				UserID:    request.UserID,
				Role:      models.MemberRoleMember,
			}
			if err := tx.Create(&member).Error; err != nil {
				return fmt.Errorf("failed to add project member: %w", err)
			}
		}

		title := "Join request rejected"
		message := fmt.Sprintf("Your request to join %q was rejected.", project.Title)
		if status == models.JoinRequestAccepted {
			title = "Join request accepted"
			message = fmt.Sprintf("Your request to join %q was accepted. Welcome aboard!", project.Title)
		}

		_, err := s.notifier.CreateIn(tx, &CreateNotificationParams{
			UserID:        request.UserID,
			Title:         title,
			Message:       message,
			ProjectID:     &request.ProjectID,
			JoinRequestID: &request.ID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	var updated models.JoinRequest
	if err := s.db.Preload("Project").Preload("User").Preload("Insight").
		First(&updated, requestID).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// ListForProject returns a project's join requests for its owner,
// pending first, newest first.
func (s *JoinRequestService) ListForProject(projectID, actorID uint) ([]models.JoinRequest, error) {
	var project models.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, response.NewNotFound("project not found")
		}
		return nil, err
	}
	if project.OwnerID != actorID {
		return nil, response.NewForbidden("only the project owner can view join requests")
	}

	var requests []models.JoinRequest
	err := s.db.Where("project_id = ?", projectID).
		Order("CASE WHEN status = 'pending' THEN 0 ELSE 1 END, created_at DESC").
		Preload("User").
		Preload("Insight").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// ListForUser returns the requests a user has made, newest first.
func (s *JoinRequestService) ListForUser(userID uint) ([]models.JoinRequest, error) {
	var requests []models.JoinRequest
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Preload("Project").
		Preload("Insight").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}
