package graph

import (
	"github.com/ttpr0/go-transit/catalogue"
	. "github.com/ttpr0/go-transit/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// routing settings
//*******************************************

type RoutingSettings struct {
	// minutes spent waiting at a stop before boarding
	BusWaitTime float64
	// km/h
	BusVelocity float64
}

func (self RoutingSettings) VelocityMetersPerMinute() float64 {
	return self.BusVelocity * 1000 / 60
}

//*******************************************
// build transit graph
//*******************************************

// Builds the transit graph of a finished catalogue.
//
// Building never fails: buses with an empty route or a route through an
// unknown stop contribute no ride edges. Stops, buses and route positions are
// visited in catalogue order, so equal inputs give equal edge ids.
func BuildTransitGraph(cat *catalogue.TransportCatalogue, settings RoutingSettings) *TransitGraph {
	stop_count := cat.StopCount()
	edges := NewList[Edge](stop_count * 4)

	// wait edges
	for i := 0; i < stop_count; i++ {
		stop := catalogue.StopID(i)
		edges.Add(Edge{
			NodeA:  2 * int32(stop),
			NodeB:  2*int32(stop) + 1,
			Weight: settings.BusWaitTime,
			Action: WaitAction{Stop: stop},
		})
	}

	// ride edges
	speed := settings.VelocityMetersPerMinute()
	if speed <= 0 {
		slog.Warn("bus velocity is not positive, skipping ride edges", "velocity", settings.BusVelocity)
	} else {
		cat.ForBuses(func(bus catalogue.Bus) {
			route_ := _ResolveRoute(cat, bus)
			if !route_.HasValue() {
				slog.Debug("skipping bus without routable stops", "bus", bus.Name)
				return
			}
			route := route_.Value
			_AddRideEdges(&edges, cat, bus.ID, route, speed)
			if !bus.IsRoundtrip {
				_AddRideEdges(&edges, cat, bus.ID, route.Reversed(), speed)
			}
		})
	}

	topology := _BuildTopology(2*stop_count, edges)
	slog.Info("built transit graph", "stops", stop_count, "nodes", 2*stop_count, "edges", edges.Length())

	return &TransitGraph{
		stop_count: stop_count,
		edges:      edges,
		topology:   topology,
	}
}

// Maps the stop names of a bus route to handles, None if the route is empty
// or names an unknown stop.
func _ResolveRoute(cat *catalogue.TransportCatalogue, bus catalogue.Bus) Optional[List[catalogue.StopID]] {
	if len(bus.Route) == 0 {
		return None[List[catalogue.StopID]]()
	}
	route := NewList[catalogue.StopID](len(bus.Route))
	for _, name := range bus.Route {
		stop := cat.FindStop(name)
		if !stop.HasValue() {
			return None[List[catalogue.StopID]]()
		}
		route.Add(stop.Value.ID)
	}
	return Some(route)
}

// Adds one ride edge for every pair of positions i < j of the route, weighted
// with the accumulated travel time from i to j.
func _AddRideEdges(edges *List[Edge], cat *catalogue.TransportCatalogue, bus catalogue.BusID, route List[catalogue.StopID], speed float64) {
	for i := 0; i+1 < route.Length(); i++ {
		accumulated := 0.0
		for j := i + 1; j < route.Length(); j++ {
			accumulated += float64(cat.GetDistance(route[j-1], route[j])) / speed
			edges.Add(Edge{
				NodeA:  2*int32(route[i]) + 1,
				NodeB:  2 * int32(route[j]),
				Weight: accumulated,
				Action: RideAction{Bus: bus, Span: int32(j - i)},
			})
		}
	}
}
