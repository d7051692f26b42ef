package graph

import (
	"github.com/ttpr0/go-transit/catalogue"
)

//*******************************************
// graph structs
//*******************************************

// What traversing an edge means for a rider: either WaitAction or RideAction.
type EdgeAction interface {
	Kind() EdgeKind
}

// Waiting for any bus at a stop.
type WaitAction struct {
	Stop catalogue.StopID
}

func (self WaitAction) Kind() EdgeKind {
	return WAIT_EDGE
}

// Staying on one bus for Span consecutive stops.
type RideAction struct {
	Bus  catalogue.BusID
	Span int32
}

func (self RideAction) Kind() EdgeKind {
	return RIDE_EDGE
}

type Edge struct {
	NodeA  int32
	NodeB  int32
	Weight float64
	Action EdgeAction
}

func (self Edge) Kind() EdgeKind {
	return self.Action.Kind()
}

type EdgeRef struct {
	EdgeID  int32
	OtherID int32
	Kind    EdgeKind
}

func (self EdgeRef) IsWait() bool {
	return self.Kind == WAIT_EDGE
}
func (self EdgeRef) IsRide() bool {
	return self.Kind == RIDE_EDGE
}
