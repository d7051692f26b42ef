package parser

import (
	"strings"
	"testing"

	"github.com/ttpr0/go-transit/catalogue"
	"github.com/ttpr0/go-transit/graph"
	"github.com/ttpr0/go-transit/render"
)

const test_document = `{
  "base_requests": [
    {"type": "Bus", "name": "114", "stops": ["Sea", "River"], "is_roundtrip": false},
    {"type": "Stop", "name": "Sea", "latitude": 43.58, "longitude": 39.72,
     "road_distances": {"River": 850}},
    {"type": "Stop", "name": "River", "latitude": 43.59, "longitude": 39.73,
     "road_distances": {"Sea": 900, "Nowhere": 10}},
    {"type": "Tram", "name": "T1"}
  ],
  "routing_settings": {"bus_velocity": 30},
  "render_settings": {"width": 600, "color_palette": ["red", [1, 2, 3]]},
  "stat_requests": [
    {"id": 1, "type": "Bus", "name": "114"},
    {"id": 2, "type": "Route", "from": "Sea", "to": "River"}
  ]
}`

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(test_document))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.BaseRequests) != 4 || len(doc.StatRequests) != 2 {
		t.Fatalf("document = %+v", doc)
	}
	route := doc.StatRequests[1]
	if route.ID != 2 || route.Type != "Route" || route.From != "Sea" || route.To != "River" {
		t.Errorf("route request = %+v", route)
	}
}

func TestParseDocumentInvalid(t *testing.T) {
	if _, err := ParseDocument(strings.NewReader(`{"base_requests": [`)); err == nil {
		t.Errorf("expected error for truncated document")
	}
}

func TestFillCatalogueOrder(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(test_document))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cat := catalogue.NewTransportCatalogue()
	FillCatalogue(cat, doc.BaseRequests)

	if cat.StopCount() != 2 || cat.BusCount() != 1 {
		t.Fatalf("catalogue has %v stops, %v buses", cat.StopCount(), cat.BusCount())
	}
	// bus declared before its stops still resolves
	stats := cat.GetRouteStatistics("114")
	if stats.StopCount != 3 || stats.RouteLength != 850+900 {
		t.Errorf("stats = %+v; want 3 stops over 1750 m", stats)
	}
	if buses := cat.GetBusesServing("Sea"); len(buses) != 1 || buses[0] != "114" {
		t.Errorf("buses serving Sea = %v", buses)
	}
}

func TestDocumentSettingsOverride(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader(test_document))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	routing, err := doc.GetRoutingSettings(graph.RoutingSettings{BusWaitTime: 6, BusVelocity: 40})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if routing.BusWaitTime != 6 || routing.BusVelocity != 30 {
		t.Errorf("routing settings = %+v; want wait 6 kept, velocity 30", routing)
	}

	rendering, err := doc.GetRenderSettings(render.DefaultRenderSettings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rendering.Width != 600 || rendering.Height != render.DefaultRenderSettings().Height {
		t.Errorf("render size = %vx%v", rendering.Width, rendering.Height)
	}
	if len(rendering.ColorPalette) != 2 || rendering.ColorPalette[1] != "rgb(1,2,3)" {
		t.Errorf("palette = %v", rendering.ColorPalette)
	}

	empty := Document{}
	base := graph.RoutingSettings{BusWaitTime: 1, BusVelocity: 2}
	if got, _ := empty.GetRoutingSettings(base); got != base {
		t.Errorf("missing routing settings should keep base, got %+v", got)
	}
}
