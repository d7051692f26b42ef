package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ttpr0/go-transit/graph"
	"github.com/ttpr0/go-transit/render"
	. "github.com/ttpr0/go-transit/util"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

//**********************************************************
// config
//**********************************************************

// Reads the yaml config, a missing file yields the defaults.
func ReadConfig(file string) (Config, error) {
	config := DefaultConfig()
	if !FileExists(file) {
		slog.Info("config file not found, using defaults", "file", file)
		return config, nil
	}
	slog.Info("Reading config file", "file", file)
	data, err := os.ReadFile(file)
	if err != nil {
		return config, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("decode config file: %w", err)
	}
	if err := ValidateConfig(config); err != nil {
		return config, err
	}
	return config, nil
}

var validate = validator.New()

func ValidateConfig(config Config) error {
	if err := validate.Struct(config); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func DefaultConfig() Config {
	return Config{
		Source: SourceOptions{
			Type: JSON_SOURCE,
		},
		Routing: RoutingOptions{
			BusWaitTime: 6,
			BusVelocity: 40,
		},
		Render: render.DefaultRenderSettings(),
		Logging: LoggingOptions{
			Level: "info",
		},
	}
}

type Config struct {
	Source  SourceOptions         `yaml:"source"`
	Routing RoutingOptions        `yaml:"routing"`
	Render  render.RenderSettings `yaml:"render"`
	Logging LoggingOptions        `yaml:"logging"`
}

type SourceOptions struct {
	Type SourceType `yaml:"type"`
	// osm extract or gtfs directory, unused for json
	Path string `yaml:"path" validate:"required_unless=Type 0"`
}

type RoutingOptions struct {
	// minutes
	BusWaitTime float64 `yaml:"bus_wait_time" validate:"gte=0"`
	// km/h
	BusVelocity float64 `yaml:"bus_velocity" validate:"gt=0"`
	CacheTrees  bool    `yaml:"cache_trees"`
}

func (self RoutingOptions) Settings() graph.RoutingSettings {
	return graph.RoutingSettings{
		BusWaitTime: self.BusWaitTime,
		BusVelocity: self.BusVelocity,
	}
}

type LoggingOptions struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

//**********************************************************
// enums
//**********************************************************

type SourceType byte

const (
	JSON_SOURCE SourceType = 0
	OSM_SOURCE  SourceType = 1
	GTFS_SOURCE SourceType = 2
)

func (self SourceType) String() string {
	switch self {
	case JSON_SOURCE:
		return "json"
	case OSM_SOURCE:
		return "osm"
	case GTFS_SOURCE:
		return "gtfs"
	default:
		panic("unknown source type")
	}
}
func (self SourceType) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self SourceType) MarshalYAML() (any, error) {
	return self.String(), nil
}
func (self *SourceType) UnmarshalYAML(value *yaml.Node) error {
	typ, err := SourceTypeFromString(value.Value)
	if err != nil {
		return err
	}
	*self = typ
	return nil
}

func SourceTypeFromString(s string) (SourceType, error) {
	switch s {
	case "json":
		return JSON_SOURCE, nil
	case "osm":
		return OSM_SOURCE, nil
	case "gtfs":
		return GTFS_SOURCE, nil
	default:
		return JSON_SOURCE, errors.New("unknown source type: " + s)
	}
}
