package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/ambulance_dispatch/internal/models"
	"github.com/shenikar/ambulance_dispatch/internal/service"
)

type DispatchLogRepository struct {
	db *pgxpool.Pool
}

func NewDispatchLogRepository(db *pgxpool.Pool) service.DispatchLogRepository {
	return &DispatchLogRepository{
		db: db,
	}
}

// SaveDispatchLog сохраняет запись о вызове ранжирования, id и created_at выставляет бд
func (r *DispatchLogRepository) SaveDispatchLog(ctx context.Context, entry *models.DispatchLog) error {
	query := `
		INSERT INTO dispatch_logs (
			emergency_id,
			emergency_type,
			units_total,
			units_available,
			recommended,
			nearest_unit_id,
			nearest_distance_km,
			success
		)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		entry.EmergencyID,
		entry.EmergencyType,
		entry.UnitsTotal,
		entry.UnitsAvailable,
		entry.Recommended,
		entry.NearestUnitID,
		entry.NearestDistanceKm,
		entry.Success,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save dispatch log: %w", err)
	}
	return nil
}

// CountDispatches возвращает количество вызовов ранжирования за последние minutes минут
func (r *DispatchLogRepository) CountDispatches(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM dispatch_logs
		WHERE created_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	err := r.db.QueryRow(ctx, query, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to count dispatches: %w", err)
	}
	return count, nil
}
