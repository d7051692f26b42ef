package parser

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"

	"github.com/ttpr0/go-transit/catalogue"
	"github.com/ttpr0/go-transit/geo"
	. "github.com/ttpr0/go-transit/util"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

//*******************************************
// gtfs parser
//*******************************************

type GTFSStop struct {
	ID   string  `csv:"stop_id"`
	Name string  `csv:"stop_name"`
	Lat  float64 `csv:"stop_lat"`
	Lon  float64 `csv:"stop_lon"`
}

type GTFSRoute struct {
	ID        string `csv:"route_id"`
	ShortName string `csv:"route_short_name"`
	LongName  string `csv:"route_long_name"`
}

type GTFSTrip struct {
	RouteID string `csv:"route_id"`
	ID      string `csv:"trip_id"`
}

type GTFSStopTime struct {
	TripID   string `csv:"trip_id"`
	StopID   string `csv:"stop_id"`
	Sequence int    `csv:"stop_sequence"`
	// kept as text since an empty value differs from zero
	ShapeDist string `csv:"shape_dist_traveled"`
}

// Builds a catalogue from a static gtfs feed directory.
//
// Every route becomes one bus following its longest trip. A trip that ends at
// its first stop is treated as a round trip. Road distances come from
// shape_dist_traveled (meters) when both stop times carry it, otherwise from
// the great-circle distance.
func ParseGTFS(gtfs_path string) (*catalogue.TransportCatalogue, error) {
	cat := catalogue.NewTransportCatalogue()

	// stops
	stop_names := NewDict[string, string](1000)
	for stop, err := range ReadCSVFromFile[GTFSStop](filepath.Join(gtfs_path, "stops.txt"), ',') {
		if err != nil {
			return nil, fmt.Errorf("read gtfs stops: %w", err)
		}
		if stop.Name == "" {
			continue
		}
		stop_names[stop.ID] = stop.Name
		if cat.FindStop(stop.Name).HasValue() {
			continue
		}
		cat.AddStop(stop.Name, geo.Coord{Lat: stop.Lat, Lng: stop.Lon})
	}

	// routes
	routes := NewList[GTFSRoute](100)
	for route, err := range ReadCSVFromFile[GTFSRoute](filepath.Join(gtfs_path, "routes.txt"), ',') {
		if err != nil {
			return nil, fmt.Errorf("read gtfs routes: %w", err)
		}
		routes.Add(route)
	}

	// trips in file order per route
	route_trips := NewDict[string, List[string]](100)
	for trip, err := range ReadCSVFromFile[GTFSTrip](filepath.Join(gtfs_path, "trips.txt"), ',') {
		if err != nil {
			return nil, fmt.Errorf("read gtfs trips: %w", err)
		}
		trips := route_trips[trip.RouteID]
		trips.Add(trip.ID)
		route_trips[trip.RouteID] = trips
	}

	// stop times
	trip_stops := NewDict[string, List[GTFSStopTime]](1000)
	for stop_time, err := range ReadCSVFromFile[GTFSStopTime](filepath.Join(gtfs_path, "stop_times.txt"), ',') {
		if err != nil {
			return nil, fmt.Errorf("read gtfs stop times: %w", err)
		}
		times := trip_stops[stop_time.TripID]
		times.Add(stop_time)
		trip_stops[stop_time.TripID] = times
	}
	for _, times := range trip_stops {
		slices.SortStableFunc(times, func(a, b GTFSStopTime) int {
			return a.Sequence - b.Sequence
		})
	}

	for _, route := range routes {
		name := _GetRouteName(route)
		if cat.FindBus(name).HasValue() {
			slog.Warn("duplicate gtfs route name", "route", route.ID, "name", name)
			continue
		}
		longest := None[List[GTFSStopTime]]()
		for _, trip := range route_trips[route.ID] {
			times := trip_stops[trip]
			if !longest.HasValue() || times.Length() > longest.Value.Length() {
				longest = Some(times)
			}
		}
		if !longest.HasValue() {
			slog.Debug("skipping gtfs route without trips", "route", route.ID)
			continue
		}
		stops := _ResolveTripStops(cat, stop_names, longest.Value)
		if stops.Length() == 0 {
			continue
		}
		is_roundtrip := stops.Length() > 1 && stops[0].A == stops.Last().A
		for i := 1; i < stops.Length(); i++ {
			_SetTripDistance(cat, stops[i-1], stops[i])
		}
		names := NewList[string](stops.Length())
		for _, stop := range stops {
			names.Add(stop.A)
		}
		cat.AddBus(name, names, is_roundtrip)
	}
	slog.Info("parsed gtfs feed", "path", gtfs_path, "stops", cat.StopCount(), "buses", cat.BusCount())
	return cat, nil
}

func _GetRouteName(route GTFSRoute) string {
	if route.ShortName != "" {
		return route.ShortName
	}
	if route.LongName != "" {
		return route.LongName
	}
	return route.ID
}

// Maps stop times to (stop name, shape distance) pairs, skipping unknown stops
// and consecutive repeats.
func _ResolveTripStops(cat *catalogue.TransportCatalogue, stop_names Dict[string, string], times List[GTFSStopTime]) List[Tuple[string, Optional[float64]]] {
	stops := NewList[Tuple[string, Optional[float64]]](times.Length())
	for _, stop_time := range times {
		if !stop_names.ContainsKey(stop_time.StopID) {
			slog.Debug("unknown gtfs stop", "stop", stop_time.StopID, "trip", stop_time.TripID)
			continue
		}
		name := stop_names[stop_time.StopID]
		if stops.Length() > 0 && stops.Last().A == name {
			continue
		}
		dist := None[float64]()
		if value, err := strconv.ParseFloat(stop_time.ShapeDist, 64); err == nil {
			dist = Some(value)
		}
		stops.Add(MakeTuple(name, dist))
	}
	return stops
}

func _SetTripDistance(cat *catalogue.TransportCatalogue, from, to Tuple[string, Optional[float64]]) {
	from_stop := cat.FindStop(from.A)
	to_stop := cat.FindStop(to.A)
	if !from_stop.HasValue() || !to_stop.HasValue() {
		return
	}
	if cat.HasDistance(from_stop.Value.ID, to_stop.Value.ID) {
		return
	}
	var dist float64
	if from.B.HasValue() && to.B.HasValue() && to.B.Value > from.B.Value {
		dist = to.B.Value - from.B.Value
	} else {
		dist = geo.ComputeDistance(from_stop.Value.Coord, to_stop.Value.Coord)
	}
	cat.SetDistance(from.A, to.A, int(math.Round(dist)))
}
