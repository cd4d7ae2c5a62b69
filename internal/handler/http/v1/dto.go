package v1

// LocationRequest DTO координат.
// Указатели нужны, чтобы отличать отсутствующее поле от нулевой широты/долготы.
// @Description DTO координат
type LocationRequest struct {
	Lat     *float64 `json:"lat" validate:"required,latitude" example:"19.076"`
	Lng     *float64 `json:"lng" validate:"required,longitude" example:"72.8777"`
	Address string   `json:"address,omitempty" example:"Bandra West, Mumbai"`
}

// EmergencyRequest DTO вызова
// @Description DTO вызова
type EmergencyRequest struct {
	ID       string          `json:"id" validate:"required,max=128" example:"1718000000000"`
	Location LocationRequest `json:"location"`
	Type     string          `json:"type,omitempty" example:"cardiac"`
}

// AmbulanceRequest DTO бригады
// @Description DTO бригады
type AmbulanceRequest struct {
	ID       string          `json:"id" validate:"required,max=128" example:"AMB-101"`
	Location LocationRequest `json:"location"`
	Status   string          `json:"status" validate:"required,oneof=available busy offline" example:"available"`
}

// FindNearestRequest DTO запроса на подбор ближайших бригад.
// Пустой список бригад не отсекается валидацией: это отдельная ошибка вызывающей стороны.
// @Description DTO запроса на подбор ближайших бригад
type FindNearestRequest struct {
	Emergency  EmergencyRequest   `json:"emergency"`
	Ambulances []AmbulanceRequest `json:"ambulances" validate:"unique=ID,dive"`
	Limit      int                `json:"limit,omitempty" validate:"omitempty,gt=0" example:"3"`
}

// RecommendationResponse DTO кандидата на выезд
// @Description DTO кандидата на выезд
type RecommendationResponse struct {
	UnitID           string  `json:"unit_id" example:"AMB-101"`
	DistanceKm       float64 `json:"distance_km" example:"2.35"`
	EstimatedTimeMin float64 `json:"estimated_time_min" example:"4.7"`
}

// FindNearestResponse DTO ответа с результатом подбора
// @Description DTO ответа с результатом подбора
type FindNearestResponse struct {
	Success         bool                     `json:"success"`
	EmergencyID     string                   `json:"emergency_id,omitempty"`
	Recommendations []RecommendationResponse `json:"recommendations"`
	Message         string                   `json:"message,omitempty"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	DispatchCount int `json:"dispatch_count"`
	WindowMinutes int `json:"window_minutes"`
}

// HealthResponse DTO проверки живости
// @Description DTO проверки живости
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Engine string `json:"engine" example:"proximity-ranker"`
}
