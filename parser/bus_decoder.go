package parser

import (
	"strings"

	. "github.com/ttpr0/go-transit/util"
)

//*******************************************
// osm decoder
//*******************************************

type IOSMDecoder interface {
	IsStop(tags Dict[string, string]) bool
	IsRoute(tags Dict[string, string]) bool
	IsRouteStop(role string) bool
	DecodeRoute(tags Dict[string, string]) (name string, is_roundtrip bool)
}

// Reads bus stops and bus route relations tagged after the public transport schema.
type BusDecoder struct {
}

var stop_positions = Dict[string, bool]{"platform": true, "stop_position": true}

func (self *BusDecoder) IsStop(tags Dict[string, string]) bool {
	if tags.Get("name") == "" {
		return false
	}
	if tags.Get("highway") == "bus_stop" {
		return true
	}
	return stop_positions.ContainsKey(tags.Get("public_transport"))
}

func (self *BusDecoder) IsRoute(tags Dict[string, string]) bool {
	return tags.Get("route") == "bus"
}

// roles like "stop", "stop_entry_only" or "platform_exit_only"
func (self *BusDecoder) IsRouteStop(role string) bool {
	return strings.HasPrefix(role, "stop") || strings.HasPrefix(role, "platform")
}

func (self *BusDecoder) DecodeRoute(tags Dict[string, string]) (string, bool) {
	name := tags.Get("ref")
	if name == "" {
		name = tags.Get("name")
	}
	return name, tags.Get("roundtrip") == "yes"
}
