package parser

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ttpr0/go-transit/catalogue"
	"github.com/ttpr0/go-transit/geo"
	"github.com/ttpr0/go-transit/graph"
	"github.com/ttpr0/go-transit/render"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

//*******************************************
// request document
//*******************************************

// Input document of a catalogue run.
//
// Settings are kept raw so they can be applied on top of configured defaults.
type Document struct {
	BaseRequests    []BaseRequest   `json:"base_requests"`
	RoutingSettings json.RawMessage `json:"routing_settings"`
	RenderSettings  json.RawMessage `json:"render_settings"`
	StatRequests    []StatRequest   `json:"stat_requests"`
}

// A "Stop" or "Bus" entry of base_requests.
type BaseRequest struct {
	Type string `json:"type"`
	Name string `json:"name"`

	// Stop
	Latitude      float64        `json:"latitude"`
	Longitude     float64        `json:"longitude"`
	RoadDistances map[string]int `json:"road_distances"`

	// Bus
	Stops       []string `json:"stops"`
	IsRoundtrip bool     `json:"is_roundtrip"`
}

type StatRequest struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
	From string `json:"from"`
	To   string `json:"to"`
}

type routing_settings_json struct {
	BusWaitTime float64 `json:"bus_wait_time"`
	BusVelocity float64 `json:"bus_velocity"`
}

func ParseDocument(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return doc, fmt.Errorf("decode request document: %w", err)
	}
	return doc, nil
}

// Returns base with the fields present in the document's routing_settings applied.
func (self Document) GetRoutingSettings(base graph.RoutingSettings) (graph.RoutingSettings, error) {
	if len(self.RoutingSettings) == 0 {
		return base, nil
	}
	settings := routing_settings_json{
		BusWaitTime: base.BusWaitTime,
		BusVelocity: base.BusVelocity,
	}
	if err := json.Unmarshal(self.RoutingSettings, &settings); err != nil {
		return base, fmt.Errorf("decode routing settings: %w", err)
	}
	return graph.RoutingSettings{
		BusWaitTime: settings.BusWaitTime,
		BusVelocity: settings.BusVelocity,
	}, nil
}

// Returns base with the fields present in the document's render_settings applied.
func (self Document) GetRenderSettings(base render.RenderSettings) (render.RenderSettings, error) {
	if len(self.RenderSettings) == 0 {
		return base, nil
	}
	settings := base
	settings.ColorPalette = slices.Clone(base.ColorPalette)
	if err := json.Unmarshal(self.RenderSettings, &settings); err != nil {
		return base, fmt.Errorf("decode render settings: %w", err)
	}
	return settings, nil
}

//*******************************************
// fill catalogue
//*******************************************

// Loads the base requests into cat: all stops first, then all road
// distances, then all buses. Buses may therefore name stops declared later
// in the document.
func FillCatalogue(cat *catalogue.TransportCatalogue, requests []BaseRequest) {
	for _, req := range requests {
		switch req.Type {
		case "Stop":
			cat.AddStop(req.Name, geo.Coord{Lat: req.Latitude, Lng: req.Longitude})
		case "Bus":
		default:
			slog.Warn("unknown base request type", "type", req.Type, "name", req.Name)
		}
	}
	for _, req := range requests {
		if req.Type != "Stop" {
			continue
		}
		targets := make([]string, 0, len(req.RoadDistances))
		for to := range req.RoadDistances {
			targets = append(targets, to)
		}
		slices.Sort(targets)
		for _, to := range targets {
			cat.SetDistance(req.Name, to, req.RoadDistances[to])
		}
	}
	for _, req := range requests {
		if req.Type != "Bus" {
			continue
		}
		cat.AddBus(req.Name, req.Stops, req.IsRoundtrip)
	}
	slog.Info("filled catalogue", "stops", cat.StopCount(), "buses", cat.BusCount())
}
