package catalogue

import (
	"github.com/ttpr0/go-transit/geo"
	. "github.com/ttpr0/go-transit/util"
)

type RouteStatistics struct {
	StopCount       int
	UniqueStopCount int
	RouteLength     int
	Curvature       float64
}

// Computes length and curvature statistics of a bus.
//
// Non-roundtrip buses are counted there and back. Segments touching an unknown
// stop contribute nothing. Unknown buses and empty routes give zero statistics.
func (self *TransportCatalogue) GetRouteStatistics(bus_name string) RouteStatistics {
	bus_ := self.FindBus(bus_name)
	if !bus_.HasValue() || len(bus_.Value.Route) == 0 {
		return RouteStatistics{}
	}
	bus := bus_.Value

	unique := NewDict[string, bool](len(bus.Route))
	for _, name := range bus.Route {
		unique[name] = true
	}

	route_length := 0
	geo_length := 0.0
	add_segment := func(from_name, to_name string) {
		from, ok := self.stop_index[from_name]
		if !ok {
			return
		}
		to, ok := self.stop_index[to_name]
		if !ok {
			return
		}
		route_length += self.GetDistance(from, to)
		geo_length += geo.ComputeDistance(self.stops[from].Coord, self.stops[to].Coord)
	}
	for i := 0; i+1 < len(bus.Route); i++ {
		add_segment(bus.Route[i], bus.Route[i+1])
	}
	stop_count := len(bus.Route)
	if !bus.IsRoundtrip {
		for i := len(bus.Route) - 1; i > 0; i-- {
			add_segment(bus.Route[i], bus.Route[i-1])
		}
		stop_count = 2*len(bus.Route) - 1
	}

	curvature := 0.0
	if geo_length > 0 {
		curvature = float64(route_length) / geo_length
	}
	return RouteStatistics{
		StopCount:       stop_count,
		UniqueStopCount: unique.Length(),
		RouteLength:     route_length,
		Curvature:       curvature,
	}
}
