package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ttpr0/go-transit/parser"
	. "github.com/ttpr0/go-transit/util"
	"golang.org/x/exp/slog"
)

type Result struct {
	result any
	status int
}

const (
	STATUS_OK          = 0
	STATUS_NOT_FOUND   = 1
	STATUS_BAD_REQUEST = 2
)

func OK[T any](value T) Result {
	return Result{
		result: value,
		status: STATUS_OK,
	}
}

func NotFound() Result {
	return Result{
		result: "not found",
		status: STATUS_NOT_FOUND,
	}
}

func BadRequest(message string) Result {
	return Result{
		result: message,
		status: STATUS_BAD_REQUEST,
	}
}

//**********************************************************
// stat request mux
//**********************************************************

type RequestMux struct {
	handlers Dict[string, func(parser.StatRequest) Result]
}

func NewRequestMux() *RequestMux {
	return &RequestMux{
		handlers: NewDict[string, func(parser.StatRequest) Result](4),
	}
}

func (self *RequestMux) Map(typ string, handler func(parser.StatRequest) Result) {
	self.handlers[typ] = handler
}

// Answers a single stat request, failures become error responses.
func (self *RequestMux) Handle(req parser.StatRequest) any {
	if !self.handlers.ContainsKey(req.Type) {
		slog.Warn("unknown request type", "id", req.ID, "type", req.Type)
		return NewErrorResponse(req.ID, "unknown request type")
	}
	slog.Debug(req.Type+" request", "id", req.ID)
	res := self.handlers[req.Type](req)
	if res.status != STATUS_OK {
		slog.Debug("failed "+req.Type+" request", "id", req.ID, "reason", res.result)
		return NewErrorResponse(req.ID, fmt.Sprint(res.result))
	}
	return res.result
}

// Answers the requests in order.
func (self *RequestMux) HandleAll(requests []parser.StatRequest) []any {
	responses := make([]any, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, self.Handle(req))
	}
	return responses
}

func WriteResponse[T any](w io.Writer, resp T) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(resp); err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	return nil
}
