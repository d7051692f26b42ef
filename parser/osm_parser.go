package parser

import (
	"context"
	"encoding/xml"
	"fmt"
	"math"
	"os"
	"runtime"
	"strings"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/ttpr0/go-transit/catalogue"
	"github.com/ttpr0/go-transit/geo"
	. "github.com/ttpr0/go-transit/util"
	"golang.org/x/exp/slog"
)

// Builds a catalogue from the bus stops and bus routes of an osm extract.
//
// Files ending in .pbf are read with the protobuf scanner, everything else is
// treated as osm xml. Road distances between consecutive stops of a route are
// set to the rounded great-circle distance.
func ParseOSM(ctx context.Context, filename string, decoder IOSMDecoder) (*catalogue.TransportCatalogue, error) {
	stops := NewDict[int64, OSMStop](1000)
	stop_order := NewList[int64](1000)
	routes := NewList[OSMRoute](100)

	var err error
	if strings.HasSuffix(filename, ".pbf") {
		err = _ScanPBF(ctx, filename, decoder, &stops, &stop_order, &routes)
	} else {
		err = _ScanXML(filename, decoder, &stops, &stop_order, &routes)
	}
	if err != nil {
		return nil, err
	}
	slog.Info("parsed osm file", "file", filename, "stops", stop_order.Length(), "routes", routes.Length())
	return _CreateCatalogue(&stops, &stop_order, &routes), nil
}

func _ScanPBF(ctx context.Context, filename string, decoder IOSMDecoder, stops *Dict[int64, OSMStop], stop_order *List[int64], routes *List[OSMRoute]) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("open osm file: %w", err)
	}
	defer file.Close()

	scanner := osmpbf.New(ctx, file, runtime.GOMAXPROCS(-1))
	defer scanner.Close()
	scanner.SkipWays = true
	for scanner.Scan() {
		_HandleObject(scanner.Object(), decoder, stops, stop_order, routes)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan %s: %w", filename, err)
	}
	return nil
}

func _ScanXML(filename string, decoder IOSMDecoder, stops *Dict[int64, OSMStop], stop_order *List[int64], routes *List[OSMRoute]) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("open osm file: %w", err)
	}
	var o osm.OSM
	if err := xml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("decode %s: %w", filename, err)
	}
	for _, node := range o.Nodes {
		_HandleObject(node, decoder, stops, stop_order, routes)
	}
	for _, relation := range o.Relations {
		_HandleObject(relation, decoder, stops, stop_order, routes)
	}
	return nil
}

func _HandleObject(object osm.Object, decoder IOSMDecoder, stops *Dict[int64, OSMStop], stop_order *List[int64], routes *List[OSMRoute]) {
	switch object := object.(type) {
	case *osm.Node:
		tags := Dict[string, string](object.TagMap())
		if !decoder.IsStop(tags) {
			return
		}
		id := int64(object.ID)
		if stops.ContainsKey(id) {
			return
		}
		stops.Set(id, OSMStop{
			Name:  tags.Get("name"),
			Point: geo.Coord{Lat: object.Lat, Lng: object.Lon},
		})
		stop_order.Add(id)
	case *osm.Relation:
		tags := Dict[string, string](object.TagMap())
		if !decoder.IsRoute(tags) {
			return
		}
		name, roundtrip := decoder.DecodeRoute(tags)
		if name == "" {
			slog.Debug("skipping unnamed bus route", "relation", object.ID)
			return
		}
		route := OSMRoute{
			Name:      name,
			Roundtrip: roundtrip,
			Stops:     NewList[int64](len(object.Members)),
		}
		for _, member := range object.Members {
			if member.Type != osm.TypeNode || !decoder.IsRouteStop(member.Role) {
				continue
			}
			route.Stops.Add(member.Ref)
		}
		routes.Add(route)
	}
}

func _CreateCatalogue(stops *Dict[int64, OSMStop], stop_order *List[int64], routes *List[OSMRoute]) *catalogue.TransportCatalogue {
	cat := catalogue.NewTransportCatalogue()
	for _, id := range *stop_order {
		stop := stops.Get(id)
		// platform and stop position of one stop usually share a name
		if cat.FindStop(stop.Name).HasValue() {
			continue
		}
		cat.AddStop(stop.Name, stop.Point)
	}

	for _, route := range *routes {
		names := NewList[string](route.Stops.Length())
		for _, ref := range route.Stops {
			if !stops.ContainsKey(ref) {
				continue
			}
			name := stops.Get(ref).Name
			if names.Length() > 0 && names.Last() == name {
				continue
			}
			names.Add(name)
		}
		if names.Length() == 0 {
			slog.Debug("skipping bus route without stops", "bus", route.Name)
			continue
		}
		if cat.FindBus(route.Name).HasValue() {
			continue
		}
		_SetGeoDistances(cat, names)
		cat.AddBus(route.Name, names, route.Roundtrip)
	}
	return cat
}

// Sets missing distances between consecutive stops to the rounded great-circle distance.
func _SetGeoDistances(cat *catalogue.TransportCatalogue, names List[string]) {
	for i := 1; i < names.Length(); i++ {
		from := cat.FindStop(names[i-1])
		to := cat.FindStop(names[i])
		if !from.HasValue() || !to.HasValue() {
			continue
		}
		if cat.HasDistance(from.Value.ID, to.Value.ID) {
			continue
		}
		dist := geo.ComputeDistance(from.Value.Coord, to.Value.Coord)
		cat.SetDistance(from.Value.Name, to.Value.Name, int(math.Round(dist)))
	}
}
