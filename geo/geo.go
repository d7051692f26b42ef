package geo

import (
	"math"

	"github.com/paulmach/orb"
)

const EARTH_RADIUS = 6371000.0

type Coord struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (self Coord) ToPoint() orb.Point {
	return orb.Point{self.Lng, self.Lat}
}

func FromPoint(p orb.Point) Coord {
	return Coord{Lat: p[1], Lng: p[0]}
}

// Great-circle distance in meters (spherical law of cosines).
func ComputeDistance(from, to Coord) float64 {
	if from == to {
		return 0
	}
	dr := math.Pi / 180.0
	cos := math.Sin(from.Lat*dr)*math.Sin(to.Lat*dr) + math.Cos(from.Lat*dr)*math.Cos(to.Lat*dr)*math.Cos(math.Abs(from.Lng-to.Lng)*dr)
	// rounding can push nearly identical points slightly past 1
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos) * EARTH_RADIUS
}
