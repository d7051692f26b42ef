package render

import (
	"math"
	"strings"

	"github.com/paulmach/orb"
	"github.com/ttpr0/go-transit/catalogue"
	"github.com/ttpr0/go-transit/geo"
	. "github.com/ttpr0/go-transit/util"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

//*******************************************
// render settings
//*******************************************

type RenderSettings struct {
	Width             float64    `json:"width" yaml:"width" validate:"gt=0"`
	Height            float64    `json:"height" yaml:"height" validate:"gt=0"`
	Padding           float64    `json:"padding" yaml:"padding" validate:"gte=0"`
	LineWidth         float64    `json:"line_width" yaml:"line_width" validate:"gte=0"`
	StopRadius        float64    `json:"stop_radius" yaml:"stop_radius" validate:"gte=0"`
	BusLabelFontSize  int        `json:"bus_label_font_size" yaml:"bus_label_font_size" validate:"gte=0"`
	BusLabelOffset    [2]float64 `json:"bus_label_offset" yaml:"bus_label_offset"`
	StopLabelFontSize int        `json:"stop_label_font_size" yaml:"stop_label_font_size" validate:"gte=0"`
	StopLabelOffset   [2]float64 `json:"stop_label_offset" yaml:"stop_label_offset"`
	UnderlayerColor   Color      `json:"underlayer_color" yaml:"underlayer_color"`
	UnderlayerWidth   float64    `json:"underlayer_width" yaml:"underlayer_width" validate:"gte=0"`
	ColorPalette      []Color    `json:"color_palette" yaml:"color_palette"`
}

func DefaultRenderSettings() RenderSettings {
	return RenderSettings{
		Width:             1200,
		Height:            1200,
		Padding:           50,
		LineWidth:         14,
		StopRadius:        5,
		BusLabelFontSize:  20,
		BusLabelOffset:    [2]float64{7, 15},
		StopLabelFontSize: 20,
		StopLabelOffset:   [2]float64{7, -3},
		UnderlayerColor:   "rgba(255,255,255,0.85)",
		UnderlayerWidth:   3,
		ColorPalette:      []Color{"green", "rgb(255,160,0)", "red"},
	}
}

func (self RenderSettings) _PaletteColor(index int) Color {
	if len(self.ColorPalette) == 0 {
		return NONE_COLOR
	}
	return self.ColorPalette[index%len(self.ColorPalette)]
}

//*******************************************
// sphere projector
//*******************************************

const PROJECTOR_EPSILON = 1e-6

// Maps coordinates linearly onto a width x height canvas keeping the aspect
// ratio. North is up.
type SphereProjector struct {
	padding float64
	min_lng float64
	max_lat float64
	zoom    float64
}

func NewSphereProjector(coords []geo.Coord, width, height, padding float64) SphereProjector {
	projector := SphereProjector{padding: padding}
	if len(coords) == 0 {
		return projector
	}
	points := make(orb.MultiPoint, 0, len(coords))
	for _, coord := range coords {
		points = append(points, coord.ToPoint())
	}
	bound := points.Bound()
	projector.min_lng = bound.Min[0]
	projector.max_lat = bound.Max[1]

	width_zoom := None[float64]()
	if lng_span := bound.Max[0] - bound.Min[0]; math.Abs(lng_span) >= PROJECTOR_EPSILON {
		width_zoom = Some((width - 2*padding) / lng_span)
	}
	height_zoom := None[float64]()
	if lat_span := bound.Max[1] - bound.Min[1]; math.Abs(lat_span) >= PROJECTOR_EPSILON {
		height_zoom = Some((height - 2*padding) / lat_span)
	}
	switch {
	case width_zoom.HasValue() && height_zoom.HasValue():
		projector.zoom = math.Min(width_zoom.Value, height_zoom.Value)
	case width_zoom.HasValue():
		projector.zoom = width_zoom.Value
	case height_zoom.HasValue():
		projector.zoom = height_zoom.Value
	}
	return projector
}

func (self SphereProjector) Project(coord geo.Coord) Point {
	return Point{
		X: (coord.Lng-self.min_lng)*self.zoom + self.padding,
		Y: (self.max_lat-coord.Lat)*self.zoom + self.padding,
	}
}

//*******************************************
// map renderer
//*******************************************

// Draws every bus route and every served stop of the catalogue.
//
// Layers are painted in order: route lines, bus labels, stop circles and stop
// labels. Buses and stops are sorted by name, so the output only depends on
// the catalogue contents.
func RenderMap(cat *catalogue.TransportCatalogue, settings RenderSettings) *Document {
	buses := NewList[catalogue.Bus](cat.BusCount())
	cat.ForBuses(func(bus catalogue.Bus) {
		buses.Add(bus)
	})
	slices.SortFunc(buses, func(a, b catalogue.Bus) int {
		return strings.Compare(a.Name, b.Name)
	})

	// stops served by at least one bus
	served := NewDict[string, catalogue.Stop](cat.StopCount())
	coords := NewList[geo.Coord](cat.StopCount())
	for _, bus := range buses {
		for _, name := range bus.Route {
			if served.ContainsKey(name) {
				continue
			}
			stop := cat.FindStop(name)
			if !stop.HasValue() {
				continue
			}
			served[name] = stop.Value
			coords.Add(stop.Value.Coord)
		}
	}
	stops := NewList[catalogue.Stop](served.Length())
	for _, stop := range served {
		stops.Add(stop)
	}
	slices.SortFunc(stops, func(a, b catalogue.Stop) int {
		return strings.Compare(a.Name, b.Name)
	})

	projector := NewSphereProjector(coords, settings.Width, settings.Height, settings.Padding)
	doc := NewDocument()
	_RenderBusLines(doc, cat, buses, projector, settings)
	_RenderBusLabels(doc, cat, buses, projector, settings)
	_RenderStopCircles(doc, stops, projector, settings)
	_RenderStopLabels(doc, stops, projector, settings)

	slog.Debug("rendered map", "buses", buses.Length(), "stops", stops.Length(), "objects", doc.ObjectCount())
	return doc
}

func _RenderBusLines(doc *Document, cat *catalogue.TransportCatalogue, buses List[catalogue.Bus], projector SphereProjector, settings RenderSettings) {
	for i, bus := range buses {
		if len(bus.Route) == 0 {
			continue
		}
		line := NewPolyline()
		line.SetStrokeColor(settings._PaletteColor(i))
		line.SetStrokeWidth(settings.LineWidth)
		line.SetStrokeLineCap(LINECAP_ROUND)
		line.SetStrokeLineJoin(LINEJOIN_ROUND)
		line.SetFillColor(NONE_COLOR)
		for _, name := range bus.Route {
			if stop := cat.FindStop(name); stop.HasValue() {
				line.AddPoint(projector.Project(stop.Value.Coord))
			}
		}
		if !bus.IsRoundtrip {
			for j := len(bus.Route) - 2; j >= 0; j-- {
				if stop := cat.FindStop(bus.Route[j]); stop.HasValue() {
					line.AddPoint(projector.Project(stop.Value.Coord))
				}
			}
		}
		doc.Add(line)
	}
}

func _RenderBusLabels(doc *Document, cat *catalogue.TransportCatalogue, buses List[catalogue.Bus], projector SphereProjector, settings RenderSettings) {
	for i, bus := range buses {
		if len(bus.Route) == 0 {
			continue
		}
		first := cat.FindStop(bus.Route[0])
		if first.HasValue() {
			_AddBusLabel(doc, bus.Name, projector.Project(first.Value.Coord), settings._PaletteColor(i), settings)
		}
		if bus.IsRoundtrip {
			continue
		}
		last := cat.FindStop(bus.Route[len(bus.Route)-1])
		if !last.HasValue() {
			continue
		}
		if first.HasValue() && first.Value.ID == last.Value.ID {
			continue
		}
		_AddBusLabel(doc, bus.Name, projector.Project(last.Value.Coord), settings._PaletteColor(i), settings)
	}
}

func _AddBusLabel(doc *Document, name string, pos Point, color Color, settings RenderSettings) {
	offset := Point{X: settings.BusLabelOffset[0], Y: settings.BusLabelOffset[1]}

	underlayer := &Text{
		Position:   pos,
		Offset:     offset,
		FontSize:   settings.BusLabelFontSize,
		FontFamily: "Verdana",
		FontWeight: "bold",
		Data:       name,
	}
	_SetUnderlayer(&underlayer.PathProps, settings)
	doc.Add(underlayer)

	text := &Text{
		Position:   pos,
		Offset:     offset,
		FontSize:   settings.BusLabelFontSize,
		FontFamily: "Verdana",
		FontWeight: "bold",
		Data:       name,
	}
	text.SetFillColor(color)
	doc.Add(text)
}

func _RenderStopCircles(doc *Document, stops List[catalogue.Stop], projector SphereProjector, settings RenderSettings) {
	for _, stop := range stops {
		circle := NewCircle(projector.Project(stop.Coord), settings.StopRadius)
		circle.SetFillColor("white")
		doc.Add(circle)
	}
}

func _RenderStopLabels(doc *Document, stops List[catalogue.Stop], projector SphereProjector, settings RenderSettings) {
	offset := Point{X: settings.StopLabelOffset[0], Y: settings.StopLabelOffset[1]}
	for _, stop := range stops {
		pos := projector.Project(stop.Coord)

		underlayer := &Text{
			Position:   pos,
			Offset:     offset,
			FontSize:   settings.StopLabelFontSize,
			FontFamily: "Verdana",
			Data:       stop.Name,
		}
		_SetUnderlayer(&underlayer.PathProps, settings)
		doc.Add(underlayer)

		text := &Text{
			Position:   pos,
			Offset:     offset,
			FontSize:   settings.StopLabelFontSize,
			FontFamily: "Verdana",
			Data:       stop.Name,
		}
		text.SetFillColor("black")
		doc.Add(text)
	}
}

func _SetUnderlayer(props *PathProps, settings RenderSettings) {
	props.SetFillColor(settings.UnderlayerColor)
	props.SetStrokeColor(settings.UnderlayerColor)
	props.SetStrokeWidth(settings.UnderlayerWidth)
	props.SetStrokeLineCap(LINECAP_ROUND)
	props.SetStrokeLineJoin(LINEJOIN_ROUND)
}
