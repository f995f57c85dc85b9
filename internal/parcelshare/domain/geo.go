package domain

import (
	"fmt"
	"math"
)

const earthRadiusKm = 6371

// DistanceKm is the great-circle distance between a and b.
func DistanceKm(a, b Point) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Lat))*math.Cos(toRadians(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

func FormatDistance(km float64) string {
	return fmt.Sprintf("%.2f km", km)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func (p Parcel) RouteDistanceKm() float64 {
	return DistanceKm(p.Pickup, p.Destination)
}

func (t TravelPlan) RouteDistanceKm() float64 {
	return DistanceKm(t.Origin, t.Destination)
}
