package catalogue

import (
	"math"
	"testing"

	"github.com/ttpr0/go-transit/geo"
)

func buildTestCatalogue() *TransportCatalogue {
	cat := NewTransportCatalogue()
	cat.AddStop("A", geo.Coord{Lat: 0, Lng: 0})
	cat.AddStop("B", geo.Coord{Lat: 0, Lng: 1})
	cat.AddStop("C", geo.Coord{Lat: 0, Lng: 2})
	cat.SetDistance("A", "B", 100)
	cat.SetDistance("B", "A", 300)
	cat.SetDistance("B", "C", 200)
	cat.AddBus("1", []string{"A", "B", "C"}, false)
	cat.AddBus("2", []string{"A", "B", "C", "A"}, true)
	return cat
}

func TestStableHandles(t *testing.T) {
	cat := NewTransportCatalogue()
	a := cat.AddStop("A", geo.Coord{Lat: 1, Lng: 2})
	for i := 0; i < 1000; i++ {
		cat.AddStop(string(rune('a'+i%26))+string(rune('0'+i/26)), geo.Coord{})
	}
	stop := cat.GetStop(a)
	if stop.Name != "A" || stop.Coord.Lat != 1 || stop.Coord.Lng != 2 {
		t.Errorf("handle changed after growth: %+v", stop)
	}
	found := cat.FindStop("A")
	if !found.HasValue() || found.Value.ID != a {
		t.Errorf("FindStop(A) = %+v; want id %v", found, a)
	}
}

func TestFindMissing(t *testing.T) {
	cat := NewTransportCatalogue()
	if cat.FindStop("nowhere").HasValue() {
		t.Errorf("unknown stop should not be found")
	}
	if cat.FindBus("nothing").HasValue() {
		t.Errorf("unknown bus should not be found")
	}
}

func TestDuplicateNamesKeepFirst(t *testing.T) {
	cat := NewTransportCatalogue()
	first := cat.AddStop("A", geo.Coord{Lat: 1})
	second := cat.AddStop("A", geo.Coord{Lat: 2})
	if first != second || cat.StopCount() != 1 {
		t.Errorf("duplicate stop created a new entry")
	}
	if cat.GetStop(first).Coord.Lat != 1 {
		t.Errorf("duplicate stop overwrote the first one")
	}
}

func TestDistanceFallback(t *testing.T) {
	cat := buildTestCatalogue()
	a := cat.FindStop("A").Value.ID
	b := cat.FindStop("B").Value.ID
	c := cat.FindStop("C").Value.ID

	if d := cat.GetDistance(a, b); d != 100 {
		t.Errorf("A->B = %v; want 100", d)
	}
	if d := cat.GetDistance(b, a); d != 300 {
		t.Errorf("B->A = %v; want 300", d)
	}
	if d := cat.GetDistance(c, b); d != 200 {
		t.Errorf("C->B = %v; want reverse fallback 200", d)
	}
	if d := cat.GetDistance(a, c); d != 0 {
		t.Errorf("A->C = %v; want 0", d)
	}
	if cat.HasDistance(a, c) || !cat.HasDistance(c, b) {
		t.Errorf("HasDistance mismatch")
	}
}

func TestSetDistanceUnknownStop(t *testing.T) {
	cat := buildTestCatalogue()
	cat.SetDistance("A", "Z", 500)
	a := cat.FindStop("A").Value.ID
	c := cat.FindStop("C").Value.ID
	if d := cat.GetDistance(a, c); d != 0 {
		t.Errorf("distance to unknown stop leaked: %v", d)
	}
}

func TestBusesServing(t *testing.T) {
	cat := buildTestCatalogue()
	cat.AddBus("10", []string{"C", "Ghost"}, true)

	got := cat.GetBusesServing("C")
	want := []string{"1", "10", "2"}
	if len(got) != len(want) {
		t.Fatalf("buses at C = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("buses at C = %v; want %v", got, want)
		}
	}
	if got := cat.GetBusesServing("Ghost"); len(got) != 1 || got[0] != "10" {
		t.Errorf("buses at Ghost = %v; want [10]", got)
	}
	if got := cat.GetBusesServing("Nowhere"); len(got) != 0 {
		t.Errorf("buses at unknown stop = %v; want empty", got)
	}
}

func TestRouteStatisticsLinear(t *testing.T) {
	cat := buildTestCatalogue()
	stats := cat.GetRouteStatistics("1")

	if stats.StopCount != 5 {
		t.Errorf("stop count = %v; want 5", stats.StopCount)
	}
	if stats.UniqueStopCount != 3 {
		t.Errorf("unique stop count = %v; want 3", stats.UniqueStopCount)
	}
	// A->B 100, B->C 200, C->B 200 (fallback), B->A 300
	if stats.RouteLength != 800 {
		t.Errorf("route length = %v; want 800", stats.RouteLength)
	}
	geo_len := 4 * geo.ComputeDistance(geo.Coord{Lat: 0, Lng: 0}, geo.Coord{Lat: 0, Lng: 1})
	if math.Abs(stats.Curvature-800/geo_len) > 1e-12 {
		t.Errorf("curvature = %v; want %v", stats.Curvature, 800/geo_len)
	}
}

func TestRouteStatisticsRoundtrip(t *testing.T) {
	cat := buildTestCatalogue()
	stats := cat.GetRouteStatistics("2")
	if stats.StopCount != 4 || stats.UniqueStopCount != 3 {
		t.Errorf("stats = %+v; want 4 stops, 3 unique", stats)
	}
	// C->A has no distance in either direction
	if stats.RouteLength != 300 {
		t.Errorf("route length = %v; want 300", stats.RouteLength)
	}
}

func TestRouteStatisticsEmpty(t *testing.T) {
	cat := buildTestCatalogue()
	cat.AddBus("empty", nil, true)
	if stats := cat.GetRouteStatistics("empty"); stats != (RouteStatistics{}) {
		t.Errorf("empty route stats = %+v; want zero", stats)
	}
	if stats := cat.GetRouteStatistics("missing"); stats != (RouteStatistics{}) {
		t.Errorf("unknown bus stats = %+v; want zero", stats)
	}
}

func TestRouteStatisticsZeroGeoLength(t *testing.T) {
	cat := NewTransportCatalogue()
	cat.AddStop("X", geo.Coord{Lat: 5, Lng: 5})
	cat.AddStop("Y", geo.Coord{Lat: 5, Lng: 5})
	cat.SetDistance("X", "Y", 50)
	cat.AddBus("z", []string{"X", "Y"}, true)
	if stats := cat.GetRouteStatistics("z"); stats.Curvature != 0 || stats.RouteLength != 50 {
		t.Errorf("stats = %+v; want curvature 0 and length 50", stats)
	}
}
