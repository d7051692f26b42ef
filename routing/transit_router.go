package routing

import (
	"github.com/ttpr0/go-transit/catalogue"
	"github.com/ttpr0/go-transit/graph"
	. "github.com/ttpr0/go-transit/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// route info
//*******************************************

// One step of an itinerary, either a WaitItem or a BusItem.
type RouteItem interface {
	GetTime() float64
}

type WaitItem struct {
	StopName string
	Time     float64
}

func (self WaitItem) GetTime() float64 {
	return self.Time
}

type BusItem struct {
	Bus       string
	SpanCount int
	Time      float64
}

func (self BusItem) GetTime() float64 {
	return self.Time
}

type RouteInfo struct {
	TotalTime float64
	Items     []RouteItem
}

//*******************************************
// transit router
//*******************************************

type RouterOptions struct {
	CacheTrees bool
}

// Finds fastest itineraries between stops of a finished catalogue.
//
// The graph, solver and name tables are built once in NewTransitRouter and
// never change afterwards, so a router may be shared between goroutines.
type TransitRouter struct {
	graph        *graph.TransitGraph
	solver       *Solver
	stop_to_wait Dict[string, int32]
	stop_names   Array[string]
	bus_names    Array[string]
}

func NewTransitRouter(cat *catalogue.TransportCatalogue, settings graph.RoutingSettings, options RouterOptions) *TransitRouter {
	g := graph.BuildTransitGraph(cat, settings)

	stop_to_wait := NewDict[string, int32](cat.StopCount())
	stop_names := NewArray[string](cat.StopCount())
	cat.ForStops(func(stop catalogue.Stop) {
		stop_to_wait[stop.Name] = g.WaitNode(stop.ID)
		stop_names[stop.ID] = stop.Name
	})
	bus_names := NewArray[string](cat.BusCount())
	cat.ForBuses(func(bus catalogue.Bus) {
		bus_names[bus.ID] = bus.Name
	})

	return &TransitRouter{
		graph:        g,
		solver:       NewSolver(g, options.CacheTrees),
		stop_to_wait: stop_to_wait,
		stop_names:   stop_names,
		bus_names:    bus_names,
	}
}

func (self *TransitRouter) GetGraph() *graph.TransitGraph {
	return self.graph
}

// Finds the fastest itinerary from one stop to another.
//
// Itineraries start waiting at the origin and end on arrival at the target.
// Returns None for unknown stop names and unreachable targets.
func (self *TransitRouter) FindRoute(from, to string) Optional[RouteInfo] {
	from_node, ok := self.stop_to_wait[from]
	if !ok {
		slog.Debug("unknown origin stop", "stop", from)
		return None[RouteInfo]()
	}
	to_node, ok := self.stop_to_wait[to]
	if !ok {
		slog.Debug("unknown target stop", "stop", to)
		return None[RouteInfo]()
	}

	path_ := self.solver.BuildRoute(from_node, to_node)
	if !path_.HasValue() {
		slog.Debug("no route found", "from", from, "to", to)
		return None[RouteInfo]()
	}
	path := path_.Value

	info := RouteInfo{
		TotalTime: 0,
		Items:     make([]RouteItem, 0, len(path.Edges)),
	}
	for _, edge_id := range path.Edges {
		edge := self.graph.GetEdge(edge_id)
		switch action := edge.Action.(type) {
		case graph.WaitAction:
			info.Items = append(info.Items, WaitItem{
				StopName: self.stop_names[action.Stop],
				Time:     edge.Weight,
			})
		case graph.RideAction:
			info.Items = append(info.Items, BusItem{
				Bus:       self.bus_names[action.Bus],
				SpanCount: int(action.Span),
				Time:      edge.Weight,
			})
		}
		info.TotalTime += edge.Weight
	}
	if info.TotalTime != path.Weight {
		slog.Warn("itinerary time differs from path weight", "items", info.TotalTime, "path", path.Weight)
	}
	return Some(info)
}
