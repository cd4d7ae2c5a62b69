package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/ambulance_dispatch/internal/models"
)

const (
	webhookQueueKey = "dispatch_webhook_events"
)

// DispatchEvent - данные вебхука об успешном подборе бригад
type DispatchEvent struct {
	EventID         uuid.UUID               `json:"event_id"`
	EmergencyID     string                  `json:"emergency_id"`
	EmergencyType   string                  `json:"emergency_type,omitempty"`
	Latitude        float64                 `json:"latitude"`
	Longitude       float64                 `json:"longitude"`
	Recommendations []models.Recommendation `json:"recommendations"`
	Timestamp       time.Time               `json:"timestamp"`
}

// NewDispatchEvent собирает событие по вызову и результату ранжирования
func NewDispatchEvent(incident models.Incident, result *models.RankResult, now time.Time) DispatchEvent {
	return DispatchEvent{
		EventID:         uuid.New(),
		EmergencyID:     incident.ID,
		EmergencyType:   incident.Type,
		Latitude:        incident.Location.Lat,
		Longitude:       incident.Location.Lng,
		Recommendations: result.Recommendations,
		Timestamp:       now.UTC(),
	}
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event DispatchEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish кладет событие в очередь Redis (LPUSH, воркер забирает через BRPOP)
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event DispatchEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal dispatch event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish dispatch event to Redis: %w", err)
	}
	return nil
}
