package ranker

import (
	"math"

	"github.com/shenikar/ambulance_dispatch/internal/models"
)

// EarthRadiusKm - радиус сферы для формулы гаверсинуса
const EarthRadiusKm = 6371.0

// Distance возвращает расстояние по большому кругу между двумя точками в километрах.
// Функция тотальна: проверка диапазонов координат лежит на вызывающей стороне.
func Distance(a, b models.Coordinate) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dlat := lat2 - lat1
	dlon := toRadians(b.Lng) - toRadians(a.Lng)

	sinLat := math.Sin(dlat / 2)
	sinLon := math.Sin(dlon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	// из-за округления h может чуть превысить 1, asin вне [-1, 1] дает NaN
	c := 2 * math.Asin(math.Min(1, math.Sqrt(h)))
	return c * EarthRadiusKm
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
