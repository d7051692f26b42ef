package main

import (
	"io"

	"github.com/ttpr0/go-transit/parser"
	. "github.com/ttpr0/go-transit/util"
)

// Reads the request document from file, or from r when file is empty.
func ReadRequestDocument(file string, r io.Reader) (parser.Document, error) {
	if file == "" {
		return parser.ParseDocument(r)
	}
	return ReadJSONFromFile[parser.Document](file)
}
