package catalogue

import (
	"github.com/ttpr0/go-transit/geo"
	. "github.com/ttpr0/go-transit/util"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

//*******************************************
// catalogue entities
//*******************************************

// Handle of a stop, assigned in insertion order starting at 0.
type StopID int32

// Handle of a bus, assigned in insertion order starting at 0.
type BusID int32

type Stop struct {
	ID    StopID
	Name  string
	Coord geo.Coord
}

type Bus struct {
	ID          BusID
	Name        string
	Route       []string
	IsRoundtrip bool
}

type distance_key struct {
	from StopID
	to   StopID
}

//*******************************************
// transport catalogue
//*******************************************

// Append-only store of stops, buses and road distances.
//
// Stops and buses are kept in arenas, their handles stay valid for the
// lifetime of the catalogue. Once loading is finished the catalogue is only
// read, so it may be shared between goroutines.
type TransportCatalogue struct {
	stops      List[Stop]
	buses      List[Bus]
	stop_index Dict[string, StopID]
	bus_index  Dict[string, BusID]
	stop_buses Dict[string, Dict[string, bool]]
	distances  Dict[distance_key, int]
}

func NewTransportCatalogue() *TransportCatalogue {
	return &TransportCatalogue{
		stops:      NewList[Stop](100),
		buses:      NewList[Bus](10),
		stop_index: NewDict[string, StopID](100),
		bus_index:  NewDict[string, BusID](10),
		stop_buses: NewDict[string, Dict[string, bool]](100),
		distances:  NewDict[distance_key, int](100),
	}
}

// Adds a stop and returns its handle.
//
// Names are unique keys: adding a name twice keeps the first stop and
// returns its handle.
func (self *TransportCatalogue) AddStop(name string, coord geo.Coord) StopID {
	if id, ok := self.stop_index[name]; ok {
		slog.Warn("duplicate stop ignored", "stop", name)
		return id
	}
	id := StopID(self.stops.Length())
	self.stops.Add(Stop{
		ID:    id,
		Name:  name,
		Coord: coord,
	})
	self.stop_index[name] = id
	return id
}

// Adds a bus and returns its handle.
//
// Every stop name on the route is registered as served by the bus, known or
// not. Adding a name twice keeps the first bus.
func (self *TransportCatalogue) AddBus(name string, route []string, is_roundtrip bool) BusID {
	if id, ok := self.bus_index[name]; ok {
		slog.Warn("duplicate bus ignored", "bus", name)
		return id
	}
	id := BusID(self.buses.Length())
	self.buses.Add(Bus{
		ID:          id,
		Name:        name,
		Route:       slices.Clone(route),
		IsRoundtrip: is_roundtrip,
	})
	self.bus_index[name] = id
	for _, stop_name := range route {
		served := self.stop_buses[stop_name]
		if served == nil {
			served = NewDict[string, bool](4)
			self.stop_buses[stop_name] = served
		}
		served[name] = true
	}
	return id
}

func (self *TransportCatalogue) FindStop(name string) Optional[Stop] {
	id, ok := self.stop_index[name]
	if !ok {
		return None[Stop]()
	}
	return Some(self.stops[id])
}

func (self *TransportCatalogue) FindBus(name string) Optional[Bus] {
	id, ok := self.bus_index[name]
	if !ok {
		return None[Bus]()
	}
	return Some(self.buses[id])
}

func (self *TransportCatalogue) GetStop(stop StopID) Stop {
	return self.stops[stop]
}
func (self *TransportCatalogue) GetBus(bus BusID) Bus {
	return self.buses[bus]
}
func (self *TransportCatalogue) StopCount() int {
	return self.stops.Length()
}
func (self *TransportCatalogue) BusCount() int {
	return self.buses.Length()
}

// Calls the callback for every stop in handle order.
func (self *TransportCatalogue) ForStops(callback func(Stop)) {
	for _, stop := range self.stops {
		callback(stop)
	}
}

// Calls the callback for every bus in handle order.
func (self *TransportCatalogue) ForBuses(callback func(Bus)) {
	for _, bus := range self.buses {
		callback(bus)
	}
}

// Returns the names of all buses serving the stop in lexicographic order.
func (self *TransportCatalogue) GetBusesServing(stop_name string) []string {
	served := self.stop_buses[stop_name]
	names := make([]string, 0, len(served))
	for name := range served {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

//*******************************************
// distances
//*******************************************

// Sets the road distance from one stop to another. Unknown stops are ignored.
func (self *TransportCatalogue) SetDistance(from, to string, meters int) {
	from_id, ok := self.stop_index[from]
	if !ok {
		return
	}
	to_id, ok := self.stop_index[to]
	if !ok {
		return
	}
	self.distances[distance_key{from_id, to_id}] = meters
}

// Returns the road distance a->b, falling back to b->a, else 0.
func (self *TransportCatalogue) GetDistance(a, b StopID) int {
	if dist, ok := self.distances[distance_key{a, b}]; ok {
		return dist
	}
	if dist, ok := self.distances[distance_key{b, a}]; ok {
		return dist
	}
	return 0
}

// Reports whether a distance was set explicitly in either direction.
func (self *TransportCatalogue) HasDistance(a, b StopID) bool {
	return self.distances.ContainsKey(distance_key{a, b}) || self.distances.ContainsKey(distance_key{b, a})
}
