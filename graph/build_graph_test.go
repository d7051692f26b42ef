package graph

import (
	"testing"

	"github.com/ttpr0/go-transit/catalogue"
	"github.com/ttpr0/go-transit/geo"
)

func buildLineCatalogue() *catalogue.TransportCatalogue {
	cat := catalogue.NewTransportCatalogue()
	cat.AddStop("A", geo.Coord{Lat: 0, Lng: 0})
	cat.AddStop("B", geo.Coord{Lat: 0, Lng: 1})
	cat.AddStop("C", geo.Coord{Lat: 0, Lng: 2})
	cat.SetDistance("A", "B", 1000)
	cat.SetDistance("B", "C", 1000)
	cat.SetDistance("B", "A", 1000)
	cat.SetDistance("C", "B", 1000)
	cat.AddBus("1", []string{"A", "B", "C"}, true)
	return cat
}

// collects ride edges as "from->to/span" keys
func rideEdges(g *TransitGraph) map[[3]int32]float64 {
	rides := map[[3]int32]float64{}
	for i := 0; i < g.EdgeCount(); i++ {
		edge := g.GetEdge(int32(i))
		ride, ok := edge.Action.(RideAction)
		if !ok {
			continue
		}
		from := int32(g.MapNodeToStop(edge.NodeA))
		to := int32(g.MapNodeToStop(edge.NodeB))
		rides[[3]int32{from, to, ride.Span}] = edge.Weight
	}
	return rides
}

func TestBuildLineGraph(t *testing.T) {
	cat := buildLineCatalogue()
	g := BuildTransitGraph(cat, RoutingSettings{BusWaitTime: 5, BusVelocity: 60})

	if g.NodeCount() != 6 {
		t.Errorf("node count = %v; want 6", g.NodeCount())
	}
	if g.EdgeCount() != 6 {
		t.Errorf("edge count = %v; want 3 wait + 3 ride", g.EdgeCount())
	}
	rides := rideEdges(g)
	want := map[[3]int32]float64{
		{0, 1, 1}: 1.0,
		{0, 2, 2}: 2.0,
		{1, 2, 1}: 1.0,
	}
	if len(rides) != len(want) {
		t.Fatalf("ride edges = %v; want %v", rides, want)
	}
	for key, w := range want {
		got, ok := rides[key]
		if !ok {
			t.Errorf("missing ride edge %v", key)
			continue
		}
		if got != w {
			t.Errorf("ride edge %v weight = %v; want %v", key, got, w)
		}
	}
}

func TestWaitEdges(t *testing.T) {
	cat := buildLineCatalogue()
	cat.AddBus("2", []string{"C", "B", "A", "C"}, true)
	g := BuildTransitGraph(cat, RoutingSettings{BusWaitTime: 7.5, BusVelocity: 40})

	waits := 0
	for i := 0; i < g.EdgeCount(); i++ {
		edge := g.GetEdge(int32(i))
		action, ok := edge.Action.(WaitAction)
		if !ok {
			continue
		}
		waits += 1
		if edge.Weight != 7.5 {
			t.Errorf("wait edge %v weight = %v; want 7.5", i, edge.Weight)
		}
		if edge.NodeA != g.WaitNode(action.Stop) || edge.NodeB != g.BoardNode(action.Stop) {
			t.Errorf("wait edge %v connects %v->%v", i, edge.NodeA, edge.NodeB)
		}
	}
	if waits != cat.StopCount() {
		t.Errorf("wait edges = %v; want one per stop", waits)
	}
}

func TestAsymmetricDistances(t *testing.T) {
	cat := catalogue.NewTransportCatalogue()
	cat.AddStop("A", geo.Coord{})
	cat.AddStop("B", geo.Coord{})
	cat.SetDistance("A", "B", 100)
	cat.SetDistance("B", "A", 300)
	cat.AddBus("line", []string{"A", "B"}, false)

	// 6 km/h = 100 m/min
	g := BuildTransitGraph(cat, RoutingSettings{BusWaitTime: 1, BusVelocity: 6})
	rides := rideEdges(g)
	if w := rides[[3]int32{0, 1, 1}]; w != 1 {
		t.Errorf("A->B ride = %v; want 1", w)
	}
	if w := rides[[3]int32{1, 0, 1}]; w != 3 {
		t.Errorf("B->A ride = %v; want 3", w)
	}
}

func TestRoundtripHasNoReverseEdges(t *testing.T) {
	cat := catalogue.NewTransportCatalogue()
	cat.AddStop("A", geo.Coord{})
	cat.AddStop("B", geo.Coord{})
	cat.SetDistance("A", "B", 100)
	cat.AddBus("loop", []string{"A", "B", "A"}, true)

	g := BuildTransitGraph(cat, RoutingSettings{BusWaitTime: 1, BusVelocity: 6})
	rides := rideEdges(g)
	// A->B, A->A (span 2), B->A
	if len(rides) != 3 {
		t.Errorf("ride edges = %v; want 3", rides)
	}
	if w := rides[[3]int32{0, 0, 2}]; w != 2 {
		t.Errorf("full loop = %v; want 2", w)
	}
}

func TestSkipBusWithUnknownStop(t *testing.T) {
	cat := buildLineCatalogue()
	cat.AddBus("ghost", []string{"A", "Nowhere", "C"}, false)
	cat.AddBus("empty", nil, false)

	g := BuildTransitGraph(cat, RoutingSettings{BusWaitTime: 5, BusVelocity: 60})
	if g.EdgeCount() != 6 {
		t.Errorf("edge count = %v; want 6 (ghost and empty bus skipped)", g.EdgeCount())
	}
}

func TestDuplicateConsecutiveStop(t *testing.T) {
	cat := catalogue.NewTransportCatalogue()
	cat.AddStop("A", geo.Coord{})
	cat.AddStop("B", geo.Coord{})
	cat.SetDistance("A", "B", 600)
	cat.AddBus("x", []string{"A", "A", "B"}, true)

	g := BuildTransitGraph(cat, RoutingSettings{BusWaitTime: 1, BusVelocity: 6})
	rides := rideEdges(g)
	if w, ok := rides[[3]int32{0, 0, 1}]; !ok || w != 0 {
		t.Errorf("A->A ride = %v (present %v); want zero weight edge", w, ok)
	}
	if w := rides[[3]int32{0, 1, 2}]; w != 6 {
		t.Errorf("A->B span 2 = %v; want 6", w)
	}
}

func TestBuildDeterministic(t *testing.T) {
	settings := RoutingSettings{BusWaitTime: 2, BusVelocity: 30}
	g1 := BuildTransitGraph(buildLineCatalogue(), settings)
	g2 := BuildTransitGraph(buildLineCatalogue(), settings)

	if g1.EdgeCount() != g2.EdgeCount() {
		t.Fatalf("edge counts differ: %v vs %v", g1.EdgeCount(), g2.EdgeCount())
	}
	for i := 0; i < g1.EdgeCount(); i++ {
		if g1.GetEdge(int32(i)) != g2.GetEdge(int32(i)) {
			t.Errorf("edge %v differs: %+v vs %+v", i, g1.GetEdge(int32(i)), g2.GetEdge(int32(i)))
		}
	}
}

func TestExplorerAdjacencyFilter(t *testing.T) {
	g := BuildTransitGraph(buildLineCatalogue(), RoutingSettings{BusWaitTime: 5, BusVelocity: 60})
	explorer := g.GetGraphExplorer()

	board_a := g.BoardNode(0)
	rides := 0
	explorer.ForAdjacentEdges(board_a, FORWARD, ADJACENT_RIDE, func(ref EdgeRef) {
		if !ref.IsRide() {
			t.Errorf("ADJACENT_RIDE returned %v edge", ref.Kind)
		}
		if explorer.GetOtherNode(ref, board_a) != ref.OtherID {
			t.Errorf("other node mismatch for edge %v", ref.EdgeID)
		}
		rides += 1
	})
	if rides != 2 {
		t.Errorf("rides leaving A = %v; want 2", rides)
	}

	waits := 0
	explorer.ForAdjacentEdges(board_a, BACKWARD, ADJACENT_WAIT, func(ref EdgeRef) {
		if ref.OtherID != g.WaitNode(0) {
			t.Errorf("wait edge into board node of A comes from %v", ref.OtherID)
		}
		if explorer.GetEdgeWeight(ref) != 5 {
			t.Errorf("wait weight = %v; want 5", explorer.GetEdgeWeight(ref))
		}
		waits += 1
	})
	if waits != 1 {
		t.Errorf("waits into board node of A = %v; want 1", waits)
	}
	if g.GetNodeDegree(g.WaitNode(2), BACKWARD) != 2 {
		t.Errorf("in-degree of wait node C = %v; want 2", g.GetNodeDegree(g.WaitNode(2), BACKWARD))
	}
}
