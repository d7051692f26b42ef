package render

import (
	"strings"
	"testing"

	"github.com/ttpr0/go-transit/catalogue"
	"github.com/ttpr0/go-transit/geo"
)

func TestSphereProjector(t *testing.T) {
	coords := []geo.Coord{{Lat: 0, Lng: 0}, {Lat: 1, Lng: 2}}
	projector := NewSphereProjector(coords, 200, 200, 10)

	// width zoom 90 is smaller than height zoom 180
	p := projector.Project(geo.Coord{Lat: 1, Lng: 2})
	if p.X != 190 || p.Y != 10 {
		t.Errorf("north-east corner = %+v; want (190, 10)", p)
	}
	p = projector.Project(geo.Coord{Lat: 0, Lng: 0})
	if p.X != 10 || p.Y != 100 {
		t.Errorf("south-west corner = %+v; want (10, 100)", p)
	}
}

func TestSphereProjectorDegenerate(t *testing.T) {
	single := NewSphereProjector([]geo.Coord{{Lat: 43.5, Lng: 39.7}}, 600, 400, 50)
	if p := single.Project(geo.Coord{Lat: 43.5, Lng: 39.7}); p.X != 50 || p.Y != 50 {
		t.Errorf("single point = %+v; want padding offset", p)
	}

	empty := NewSphereProjector(nil, 600, 400, 50)
	if p := empty.Project(geo.Coord{Lat: 1, Lng: 1}); p.X != 50 || p.Y != 50 {
		t.Errorf("empty projector = %+v; want padding offset", p)
	}

	// only latitude varies
	vertical := NewSphereProjector([]geo.Coord{{Lat: 0, Lng: 5}, {Lat: 2, Lng: 5}}, 600, 400, 50)
	if p := vertical.Project(geo.Coord{Lat: 0, Lng: 5}); p.X != 50 || p.Y != 350 {
		t.Errorf("vertical projector = %+v; want (50, 350)", p)
	}
}

func buildMapCatalogue() *catalogue.TransportCatalogue {
	cat := catalogue.NewTransportCatalogue()
	cat.AddStop("A", geo.Coord{Lat: 0, Lng: 0})
	cat.AddStop("B", geo.Coord{Lat: 1, Lng: 2})
	cat.AddStop("Unserved", geo.Coord{Lat: 5, Lng: 5})
	cat.AddBus("2", []string{"A", "B", "A"}, true)
	cat.AddBus("14", []string{"A", "B"}, false)
	cat.AddBus("empty", nil, false)
	return cat
}

func TestRenderMapLayers(t *testing.T) {
	settings := DefaultRenderSettings()
	settings.ColorPalette = []Color{"green", "red"}
	doc := RenderMap(buildMapCatalogue(), settings)

	// 2 lines, 6 bus label texts, 2 circles, 4 stop label texts
	if doc.ObjectCount() != 14 {
		t.Fatalf("object count = %v; want 14", doc.ObjectCount())
	}

	// buses sorted by name: "14" before "2"
	first, ok := doc.objects[0].(*Polyline)
	if !ok {
		t.Fatalf("first object is %T; want polyline", doc.objects[0])
	}
	if first.PointCount() != 3 {
		t.Errorf("linear route has %v points; want 3", first.PointCount())
	}
	if first.stroke_color.Value != "green" {
		t.Errorf("first line color = %v; want green", first.stroke_color.Value)
	}
	second := doc.objects[1].(*Polyline)
	if second.PointCount() != 3 || second.stroke_color.Value != "red" {
		t.Errorf("round trip line = %v points in %v", second.PointCount(), second.stroke_color.Value)
	}

	// bus "14" labelled at both ends
	for i, want := range []string{"14", "14", "14", "14", "2", "2"} {
		text, ok := doc.objects[2+i].(*Text)
		if !ok || text.Data != want {
			t.Errorf("bus label %v = %+v; want %v", i, doc.objects[2+i], want)
		}
	}
	if _, ok := doc.objects[8].(*Circle); !ok {
		t.Errorf("object 8 is %T; want circle", doc.objects[8])
	}

	svg := doc.String()
	if strings.Contains(svg, "Unserved") {
		t.Errorf("stop without buses must not be drawn")
	}
	if !strings.Contains(svg, `font-weight="bold">14</text>`) {
		t.Errorf("bus label missing from output")
	}
}

func TestRenderMapEmptyPalette(t *testing.T) {
	settings := DefaultRenderSettings()
	settings.ColorPalette = nil
	doc := RenderMap(buildMapCatalogue(), settings)
	line := doc.objects[0].(*Polyline)
	if line.stroke_color.Value != NONE_COLOR {
		t.Errorf("line color without palette = %v; want none", line.stroke_color.Value)
	}
}

func TestRenderMapDeterministic(t *testing.T) {
	a := RenderMap(buildMapCatalogue(), DefaultRenderSettings()).String()
	b := RenderMap(buildMapCatalogue(), DefaultRenderSettings()).String()
	if a != b {
		t.Errorf("rendering the same catalogue twice differs")
	}
}
