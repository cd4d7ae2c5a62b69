package v1

import (
	"github.com/shenikar/ambulance_dispatch/internal/models"
)

// DTOToCoordinate преобразует провалидированные координаты в доменную модель
func DTOToCoordinate(dto LocationRequest) models.Coordinate {
	c := models.Coordinate{Address: dto.Address}
	if dto.Lat != nil {
		c.Lat = *dto.Lat
	}
	if dto.Lng != nil {
		c.Lng = *dto.Lng
	}
	return c
}

// DTOToIncident преобразует DTO вызова в доменную модель
func DTOToIncident(dto EmergencyRequest) models.Incident {
	return models.Incident{
		ID:       dto.ID,
		Location: DTOToCoordinate(dto.Location),
		Type:     dto.Type,
	}
}

// DTOsToUnits преобразует список бригад с сохранением порядка
func DTOsToUnits(dtos []AmbulanceRequest) []models.Unit {
	units := make([]models.Unit, len(dtos))
	for i, dto := range dtos {
		units[i] = models.Unit{
			ID:       dto.ID,
			Location: DTOToCoordinate(dto.Location),
			Status:   models.UnitStatus(dto.Status),
		}
	}
	return units
}

// ModelToFindNearestResponse преобразует результат ранжирования в DTO ответа
func ModelToFindNearestResponse(result *models.RankResult) *FindNearestResponse {
	recs := make([]RecommendationResponse, len(result.Recommendations))
	for i, r := range result.Recommendations {
		recs[i] = RecommendationResponse{
			UnitID:           r.UnitID,
			DistanceKm:       r.DistanceKm,
			EstimatedTimeMin: r.EstimatedTimeMin,
		}
	}
	return &FindNearestResponse{
		Success:         result.Success,
		EmergencyID:     result.EmergencyID,
		Recommendations: recs,
		Message:         result.Message,
	}
}
