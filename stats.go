package main

import (
	"github.com/ttpr0/go-transit/parser"
)

func HandleBusRequest(manager *TransitManager, req parser.StatRequest) Result {
	cat := manager.GetCatalogue()
	if !cat.FindBus(req.Name).HasValue() {
		return NotFound()
	}
	return OK(NewBusResponse(req.ID, cat.GetRouteStatistics(req.Name)))
}

func HandleStopRequest(manager *TransitManager, req parser.StatRequest) Result {
	cat := manager.GetCatalogue()
	if !cat.FindStop(req.Name).HasValue() {
		return NotFound()
	}
	return OK(NewStopResponse(req.ID, cat.GetBusesServing(req.Name)))
}

func HandleMapRequest(manager *TransitManager, req parser.StatRequest) Result {
	return OK(MapResponse{
		Map:       manager.GetMap(),
		RequestID: req.ID,
	})
}
