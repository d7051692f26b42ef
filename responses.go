package main

import (
	"github.com/ttpr0/go-transit/catalogue"
	"github.com/ttpr0/go-transit/routing"
)

// Fields are declared in key order so the output keys come out sorted.

type ErrorResponse struct {
	ErrorMessage string `json:"error_message"`
	RequestID    int    `json:"request_id"`
}

func NewErrorResponse(request_id int, message string) ErrorResponse {
	return ErrorResponse{
		ErrorMessage: message,
		RequestID:    request_id,
	}
}

type BusResponse struct {
	Curvature       float64 `json:"curvature"`
	RequestID       int     `json:"request_id"`
	RouteLength     int     `json:"route_length"`
	StopCount       int     `json:"stop_count"`
	UniqueStopCount int     `json:"unique_stop_count"`
}

func NewBusResponse(request_id int, stats catalogue.RouteStatistics) BusResponse {
	return BusResponse{
		Curvature:       stats.Curvature,
		RequestID:       request_id,
		RouteLength:     stats.RouteLength,
		StopCount:       stats.StopCount,
		UniqueStopCount: stats.UniqueStopCount,
	}
}

type StopResponse struct {
	Buses     []string `json:"buses"`
	RequestID int      `json:"request_id"`
}

func NewStopResponse(request_id int, buses []string) StopResponse {
	if buses == nil {
		buses = []string{}
	}
	return StopResponse{
		Buses:     buses,
		RequestID: request_id,
	}
}

type MapResponse struct {
	Map       string `json:"map"`
	RequestID int    `json:"request_id"`
}

type WaitItemResponse struct {
	StopName string  `json:"stop_name"`
	Time     float64 `json:"time"`
	Type     string  `json:"type"`
}

type BusItemResponse struct {
	Bus       string  `json:"bus"`
	SpanCount int     `json:"span_count"`
	Time      float64 `json:"time"`
	Type      string  `json:"type"`
}

type RouteResponse struct {
	Items     []any   `json:"items"`
	RequestID int     `json:"request_id"`
	TotalTime float64 `json:"total_time"`
}

func NewRouteResponse(request_id int, info routing.RouteInfo) RouteResponse {
	items := make([]any, 0, len(info.Items))
	for _, item := range info.Items {
		switch item := item.(type) {
		case routing.WaitItem:
			items = append(items, WaitItemResponse{
				StopName: item.StopName,
				Time:     item.Time,
				Type:     "Wait",
			})
		case routing.BusItem:
			items = append(items, BusItemResponse{
				Bus:       item.Bus,
				SpanCount: item.SpanCount,
				Time:      item.Time,
				Type:      "Bus",
			})
		}
	}
	return RouteResponse{
		Items:     items,
		RequestID: request_id,
		TotalTime: info.TotalTime,
	}
}
