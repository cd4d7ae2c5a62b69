package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shenikar/ambulance_dispatch/internal/config"
	"github.com/shenikar/ambulance_dispatch/internal/models"
	"github.com/shenikar/ambulance_dispatch/internal/ranker"
	"github.com/shenikar/ambulance_dispatch/internal/webhook"
	"github.com/sirupsen/logrus"
)

// ErrStatsUnavailable - журнал вызовов не настроен
var ErrStatsUnavailable = errors.New("dispatch statistics are not configured")

// DispatchLogRepository определяет контракт журнала вызовов ранжирования
type DispatchLogRepository interface {
	SaveDispatchLog(ctx context.Context, entry *models.DispatchLog) error
	CountDispatches(ctx context.Context, minutes int) (int, error)
}

// DispatchService определяет контракт подбора бригад для транспортного слоя
type DispatchService interface {
	FindNearest(ctx context.Context, incident models.Incident, units []models.Unit, limit int) (*models.RankResult, error)
	GetStats(ctx context.Context) (int, error)
}

type dispatchService struct {
	repo      DispatchLogRepository
	publisher webhook.WebhookPublisher
	logger    *logrus.Logger
	cfg       *config.Config
	now       func() time.Time
}

// NewDispatchService создает сервис подбора.
// repo и publisher могут быть nil: тогда журнал и вебхуки отключены.
func NewDispatchService(repo DispatchLogRepository, publisher webhook.WebhookPublisher, logger *logrus.Logger, cfg *config.Config) DispatchService {
	return &dispatchService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

// FindNearest ранжирует бригады по удаленности от вызова.
// Ошибки журнала и вебхуков не влияют на результат.
func (s *dispatchService) FindNearest(ctx context.Context, incident models.Incident, units []models.Unit, limit int) (*models.RankResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "dispatch",
		"method":       "FindNearest",
		"emergency_id": incident.ID,
		"units":        len(units),
		"limit":        limit,
	})
	log.Info("Ranking units for emergency")

	result, err := ranker.Rank(incident, units, limit)
	if err != nil {
		log.WithError(err).Warn("Rejected ranking request")
		return nil, fmt.Errorf("service: could not rank units: %w", err)
	}

	if !result.Success {
		log.Warn(result.Message)
	} else {
		nearest, _ := result.Nearest()
		log.WithFields(logrus.Fields{
			"recommended":      len(result.Recommendations),
			"nearest_unit_id":  nearest.UnitID,
			"nearest_distance": nearest.DistanceKm,
		}).Info("Units ranked successfully")
	}

	s.recordDispatch(ctx, log, incident, units, result)
	s.publishDispatch(ctx, log, incident, result)

	return result, nil
}

// GetStats возвращает количество вызовов ранжирования за окно статистики
func (s *dispatchService) GetStats(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dispatch",
		"method":  "GetStats",
		"window":  s.cfg.StatsTimeWindowMinutes,
	})

	if s.repo == nil {
		log.Warn("Dispatch log is disabled, stats unavailable")
		return 0, ErrStatsUnavailable
	}

	count, err := s.repo.CountDispatches(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to count dispatches in repository")
		return 0, fmt.Errorf("service: could not get dispatch stats: %w", err)
	}

	log.WithField("count", count).Info("Dispatch stats fetched successfully")
	return count, nil
}

func (s *dispatchService) recordDispatch(ctx context.Context, log *logrus.Entry, incident models.Incident, units []models.Unit, result *models.RankResult) {
	if s.repo == nil {
		return
	}

	entry := &models.DispatchLog{
		EmergencyID:    incident.ID,
		EmergencyType:  incident.Type,
		UnitsTotal:     len(units),
		UnitsAvailable: countAvailable(units),
		Recommended:    len(result.Recommendations),
		Success:        result.Success,
	}
	if nearest, ok := result.Nearest(); ok {
		entry.NearestUnitID = nearest.UnitID
		entry.NearestDistanceKm = nearest.DistanceKm
	}

	if err := s.repo.SaveDispatchLog(ctx, entry); err != nil {
		log.WithError(err).Warn("Failed to save dispatch log")
		return
	}
	log.WithField("dispatch_log_id", entry.ID).Debug("Dispatch log saved")
}

func (s *dispatchService) publishDispatch(ctx context.Context, log *logrus.Entry, incident models.Incident, result *models.RankResult) {
	if s.publisher == nil || !result.Success {
		return
	}

	event := webhook.NewDispatchEvent(incident, result, s.now())
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish dispatch webhook event")
		return
	}
	log.WithField("event_id", event.EventID).Debug("Dispatch webhook event queued")
}

func countAvailable(units []models.Unit) int {
	n := 0
	for _, u := range units {
		if u.IsAvailable() {
			n++
		}
	}
	return n
}
