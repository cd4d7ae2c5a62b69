// Package ranker подбирает ближайшие свободные бригады к месту вызова.
// Все функции пакета чистые и безопасны для конкурентного использования.
package ranker

import (
	"cmp"
	"errors"
	"math"
	"slices"

	"github.com/shenikar/ambulance_dispatch/internal/models"
)

const (
	// DefaultLimit - сколько кандидатов возвращается, если лимит не задан
	DefaultLimit = 3

	// NoAvailableUnitsMessage возвращается, когда свободных бригад нет
	NoAvailableUnitsMessage = "No available ambulances within range"

	// упрощенная модель: 2 минуты на километр
	minutesPerKm = 2.0
)

// ErrNoUnits - в запросе не передано ни одной бригады
var ErrNoUnits = errors.New("no ambulances provided")

// Rank фильтрует свободные бригады, оценивает расстояние до вызова и
// возвращает не более limit ближайших в порядке возрастания расстояния.
func Rank(incident models.Incident, units []models.Unit, limit int) (*models.RankResult, error) {
	if len(units) == 0 {
		return nil, ErrNoUnits
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	scored := Score(incident, units)
	if len(scored) == 0 {
		return &models.RankResult{
			Success:         false,
			Recommendations: []models.Recommendation{},
			Message:         NoAvailableUnitsMessage,
		}, nil
	}

	return &models.RankResult{
		Success:         true,
		EmergencyID:     incident.ID,
		Recommendations: Select(scored, limit),
	}, nil
}

// Score оставляет только свободные бригады и считает для каждой расстояние и время.
// Порядок результата совпадает с порядком входа.
func Score(incident models.Incident, units []models.Unit) []models.Recommendation {
	scored := make([]models.Recommendation, 0, len(units))
	for _, u := range units {
		if !u.IsAvailable() {
			continue
		}
		dist := Distance(incident.Location, u.Location)
		scored = append(scored, models.Recommendation{
			UnitID:           u.ID,
			DistanceKm:       round(dist, 2),
			EstimatedTimeMin: EstimateMinutes(dist),
		})
	}
	return scored
}

// Select сортирует рекомендации по округленному расстоянию (устойчиво) и
// обрезает список до limit. Входной слайс не изменяется.
func Select(scored []models.Recommendation, limit int) []models.Recommendation {
	sorted := slices.Clone(scored)
	slices.SortStableFunc(sorted, func(a, b models.Recommendation) int {
		return cmp.Compare(a.DistanceKm, b.DistanceKm)
	})
	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// EstimateMinutes переводит расстояние в км в ориентировочное время в пути
func EstimateMinutes(distanceKm float64) float64 {
	return round(distanceKm*minutesPerKm, 1)
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
