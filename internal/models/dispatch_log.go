package models

import (
	"time"

	"github.com/google/uuid"
)

// DispatchLog - запись журнала об одном вызове ранжирования
type DispatchLog struct {
	ID                uuid.UUID `json:"id"`
	EmergencyID       string    `json:"emergency_id"`
	EmergencyType     string    `json:"emergency_type"`
	UnitsTotal        int       `json:"units_total"`
	UnitsAvailable    int       `json:"units_available"`
	Recommended       int       `json:"recommended"`
	NearestUnitID     string    `json:"nearest_unit_id,omitempty"`
	NearestDistanceKm float64   `json:"nearest_distance_km"`
	Success           bool      `json:"success"`
	CreatedAt         time.Time `json:"created_at"`
}
