package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/ttpr0/go-transit/catalogue"
	"github.com/ttpr0/go-transit/parser"
	"github.com/ttpr0/go-transit/render"
	"github.com/ttpr0/go-transit/routing"
	"golang.org/x/exp/slog"
)

// Loads the catalogue of one run and owns the router built over it.
//
// Settings from the request document are applied on top of the config, then
// validated together. The catalogue is complete before the router is built
// and neither changes afterwards.
func NewTransitManager(ctx context.Context, config Config, doc parser.Document) (*TransitManager, error) {
	routing_settings, err := doc.GetRoutingSettings(config.Routing.Settings())
	if err != nil {
		return nil, err
	}
	config.Routing.BusWaitTime = routing_settings.BusWaitTime
	config.Routing.BusVelocity = routing_settings.BusVelocity
	render_settings, err := doc.GetRenderSettings(config.Render)
	if err != nil {
		return nil, err
	}
	config.Render = render_settings
	if err := ValidateConfig(config); err != nil {
		return nil, err
	}

	cat, err := _LoadCatalogue(ctx, config.Source)
	if err != nil {
		return nil, err
	}
	parser.FillCatalogue(cat, doc.BaseRequests)

	router := routing.NewTransitRouter(cat, config.Routing.Settings(), routing.RouterOptions{
		CacheTrees: config.Routing.CacheTrees,
	})
	slog.Info("transit manager ready", "source", config.Source.Type.String(), "stops", cat.StopCount(), "buses", cat.BusCount())

	return &TransitManager{
		config:    config,
		catalogue: cat,
		router:    router,
	}, nil
}

func _LoadCatalogue(ctx context.Context, source SourceOptions) (*catalogue.TransportCatalogue, error) {
	switch source.Type {
	case OSM_SOURCE:
		cat, err := parser.ParseOSM(ctx, source.Path, &parser.BusDecoder{})
		if err != nil {
			return nil, fmt.Errorf("load osm source: %w", err)
		}
		return cat, nil
	case GTFS_SOURCE:
		cat, err := parser.ParseGTFS(source.Path)
		if err != nil {
			return nil, fmt.Errorf("load gtfs source: %w", err)
		}
		return cat, nil
	default:
		return catalogue.NewTransportCatalogue(), nil
	}
}

type TransitManager struct {
	config    Config
	catalogue *catalogue.TransportCatalogue
	router    *routing.TransitRouter

	map_once sync.Once
	map_svg  string
}

func (self *TransitManager) GetCatalogue() *catalogue.TransportCatalogue {
	return self.catalogue
}

func (self *TransitManager) GetRouter() *routing.TransitRouter {
	return self.router
}

func (self *TransitManager) GetConfig() Config {
	return self.config
}

// Renders the map on first use, later calls return the same svg.
func (self *TransitManager) GetMap() string {
	self.map_once.Do(func() {
		self.map_svg = render.RenderMap(self.catalogue, self.config.Render).String()
	})
	return self.map_svg
}
