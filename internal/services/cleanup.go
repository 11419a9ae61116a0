package services

import (
	"github.com/abdullah-briah/neuralinker-sub000/pkg/logger"
	"github.com/robfig/cron/v3"
)

// CleanupService periodically prunes read notifications older than the
// configured retention window.
type CleanupService struct {
	notifier      *NotificationService
	retentionDays int
	cronScheduler *cron.Cron
}

func NewCleanupService(notifier *NotificationService, retentionDays int) *CleanupService {
	return &CleanupService{
		notifier:      notifier,
		retentionDays: retentionDays,
	}
}

// StartScheduler runs the prune job daily at 03:00.
func (s *CleanupService) StartScheduler() {
	s.cronScheduler = cron.New()

	if _, err := s.cronScheduler.AddFunc("0 3 * * *", s.runPrune); err != nil {
		logger.Errorf("[Cleanup] Failed to add cron job: %v", err)
		return
	}

	s.cronScheduler.Start()
	logger.Infof("[Cleanup] Scheduler started (retention: %d days)", s.retentionDays)
}

func (s *CleanupService) StopScheduler() {
	if s.cronScheduler != nil {
		s.cronScheduler.Stop()
	}
}

func (s *CleanupService) runPrune() {
	pruned, err := s.notifier.PruneRead(s.retentionDays)
	if err != nil {
		logger.Errorf("[Cleanup] Notification prune failed: %v", err)
		return
	}
	if pruned > 0 {
		logger.Infof("[Cleanup] Pruned %d read notifications older than %d days", pruned, s.retentionDays)
	}
}
