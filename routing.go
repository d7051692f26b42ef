package main

import (
	"github.com/ttpr0/go-transit/parser"
)

//**********************************************************
// request handlers
//**********************************************************

func NewTransitRequestMux(manager *TransitManager) *RequestMux {
	mux := NewRequestMux()
	mux.Map("Bus", func(req parser.StatRequest) Result {
		return HandleBusRequest(manager, req)
	})
	mux.Map("Stop", func(req parser.StatRequest) Result {
		return HandleStopRequest(manager, req)
	})
	mux.Map("Map", func(req parser.StatRequest) Result {
		return HandleMapRequest(manager, req)
	})
	mux.Map("Route", func(req parser.StatRequest) Result {
		return HandleRouteRequest(manager, req)
	})
	return mux
}

func HandleRouteRequest(manager *TransitManager, req parser.StatRequest) Result {
	route := manager.GetRouter().FindRoute(req.From, req.To)
	if !route.HasValue() {
		return NotFound()
	}
	return OK(NewRouteResponse(req.ID, route.Value))
}
