package models

// Recommendation - кандидат на выезд с расстоянием до вызова и оценкой времени
type Recommendation struct {
	UnitID           string  `json:"unit_id"`
	DistanceKm       float64 `json:"distance_km"`
	EstimatedTimeMin float64 `json:"estimated_time_min"`
}

// RankResult - результат ранжирования.
// При Success == false список рекомендаций пуст, а Message объясняет причину.
type RankResult struct {
	Success         bool             `json:"success"`
	EmergencyID     string           `json:"emergency_id,omitempty"`
	Recommendations []Recommendation `json:"recommendations"`
	Message         string           `json:"message,omitempty"`
}

// Nearest возвращает первую рекомендацию, если она есть
func (r *RankResult) Nearest() (Recommendation, bool) {
	if r == nil || len(r.Recommendations) == 0 {
		return Recommendation{}, false
	}
	return r.Recommendations[0], true
}
