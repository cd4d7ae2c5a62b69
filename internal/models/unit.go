package models

// UnitStatus - состояние готовности бригады на момент запроса
type UnitStatus string

const (
	UnitStatusAvailable UnitStatus = "available"
	UnitStatusBusy      UnitStatus = "busy"
	UnitStatusOffline   UnitStatus = "offline"
)

// Unit - бригада скорой помощи, переданная в запросе
type Unit struct {
	ID       string     `json:"id"`
	Location Coordinate `json:"location"`
	Status   UnitStatus `json:"status"`
}

// IsAvailable сообщает, может ли бригада быть назначена
func (u Unit) IsAvailable() bool {
	return u.Status == UnitStatusAvailable
}
