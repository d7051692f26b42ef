package parser

import (
	"github.com/ttpr0/go-transit/geo"
	. "github.com/ttpr0/go-transit/util"
)

//*******************************************
// parser structs
//*******************************************

type OSMStop struct {
	Name  string
	Point geo.Coord
}

type OSMRoute struct {
	Name      string
	Roundtrip bool
	Stops     List[int64]
}
