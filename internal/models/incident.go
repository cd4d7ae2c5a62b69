package models

// Coordinate - географическая точка в градусах.
// Передается по значению, ядро ранжирования ее не изменяет.
type Coordinate struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

// Incident - вызов, для которого подбираются бригады.
// Type не интерпретируется ранжировщиком.
type Incident struct {
	ID       string     `json:"id"`
	Location Coordinate `json:"location"`
	Type     string     `json:"type"`
}
