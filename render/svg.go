package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	. "github.com/ttpr0/go-transit/util"
	"gopkg.in/yaml.v3"
)

//*******************************************
// svg primitives
//*******************************************

type Point struct {
	X float64
	Y float64
}

// Any svg paint value, e.g. "red", "rgb(1,2,3)" or "none".
type Color string

const NONE_COLOR Color = "none"

// Accepts a color name or an [r,g,b] / [r,g,b,a] array.
func (self *Color) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*self = Color(name)
		return nil
	}
	var values []float64
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("invalid color %s: %w", string(data), err)
	}
	*self = ColorFromValues(values)
	return nil
}

func (self *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*self = Color(value.Value)
		return nil
	}
	var values []float64
	if err := value.Decode(&values); err != nil {
		return fmt.Errorf("invalid color at line %v: %w", value.Line, err)
	}
	*self = ColorFromValues(values)
	return nil
}

func ColorFromValues(values []float64) Color {
	switch len(values) {
	case 3:
		return Color(fmt.Sprintf("rgb(%d,%d,%d)", int(values[0]), int(values[1]), int(values[2])))
	case 4:
		return Color(fmt.Sprintf("rgba(%d,%d,%d,%s)", int(values[0]), int(values[1]), int(values[2]), FormatNumber(values[3])))
	default:
		return NONE_COLOR
	}
}

type StrokeLineCap string

const (
	LINECAP_BUTT   StrokeLineCap = "butt"
	LINECAP_ROUND  StrokeLineCap = "round"
	LINECAP_SQUARE StrokeLineCap = "square"
)

type StrokeLineJoin string

const (
	LINEJOIN_ARCS       StrokeLineJoin = "arcs"
	LINEJOIN_BEVEL      StrokeLineJoin = "bevel"
	LINEJOIN_MITER      StrokeLineJoin = "miter"
	LINEJOIN_MITER_CLIP StrokeLineJoin = "miter-clip"
	LINEJOIN_ROUND      StrokeLineJoin = "round"
)

// Formats numbers with six significant digits.
func FormatNumber(value float64) string {
	return strconv.FormatFloat(value, 'g', 6, 64)
}

var text_escaper = strings.NewReplacer(
	"&", "&amp;",
	"\"", "&quot;",
	"'", "&apos;",
	"<", "&lt;",
	">", "&gt;",
)

func EscapeText(text string) string {
	return text_escaper.Replace(text)
}

//*******************************************
// path properties
//*******************************************

// Fill and stroke attributes shared by all shapes, unset ones are not rendered.
type PathProps struct {
	fill_color      Optional[Color]
	stroke_color    Optional[Color]
	stroke_width    Optional[float64]
	stroke_linecap  Optional[StrokeLineCap]
	stroke_linejoin Optional[StrokeLineJoin]
}

func (self *PathProps) SetFillColor(color Color) {
	self.fill_color = Some(color)
}
func (self *PathProps) SetStrokeColor(color Color) {
	self.stroke_color = Some(color)
}
func (self *PathProps) SetStrokeWidth(width float64) {
	self.stroke_width = Some(width)
}
func (self *PathProps) SetStrokeLineCap(cap StrokeLineCap) {
	self.stroke_linecap = Some(cap)
}
func (self *PathProps) SetStrokeLineJoin(join StrokeLineJoin) {
	self.stroke_linejoin = Some(join)
}

func (self *PathProps) _RenderAttrs(out *strings.Builder) {
	if self.fill_color.HasValue() {
		fmt.Fprintf(out, ` fill="%s"`, self.fill_color.Value)
	}
	if self.stroke_color.HasValue() {
		fmt.Fprintf(out, ` stroke="%s"`, self.stroke_color.Value)
	}
	if self.stroke_width.HasValue() {
		fmt.Fprintf(out, ` stroke-width="%s"`, FormatNumber(self.stroke_width.Value))
	}
	if self.stroke_linecap.HasValue() {
		fmt.Fprintf(out, ` stroke-linecap="%s"`, self.stroke_linecap.Value)
	}
	if self.stroke_linejoin.HasValue() {
		fmt.Fprintf(out, ` stroke-linejoin="%s"`, self.stroke_linejoin.Value)
	}
}

//*******************************************
// shapes
//*******************************************

type IObject interface {
	RenderObject(out *strings.Builder)
}

type Circle struct {
	PathProps
	Center Point
	Radius float64
}

func NewCircle(center Point, radius float64) *Circle {
	return &Circle{Center: center, Radius: radius}
}

func (self *Circle) RenderObject(out *strings.Builder) {
	fmt.Fprintf(out, `<circle cx="%s" cy="%s" r="%s"`, FormatNumber(self.Center.X), FormatNumber(self.Center.Y), FormatNumber(self.Radius))
	self._RenderAttrs(out)
	out.WriteString("/>")
}

type Polyline struct {
	PathProps
	points List[Point]
}

func NewPolyline() *Polyline {
	return &Polyline{points: NewList[Point](10)}
}

func (self *Polyline) AddPoint(point Point) {
	self.points.Add(point)
}

func (self *Polyline) PointCount() int {
	return self.points.Length()
}

func (self *Polyline) RenderObject(out *strings.Builder) {
	out.WriteString(`<polyline points="`)
	for i, point := range self.points {
		if i > 0 {
			out.WriteByte(' ')
		}
		out.WriteString(FormatNumber(point.X))
		out.WriteByte(',')
		out.WriteString(FormatNumber(point.Y))
	}
	out.WriteByte('"')
	self._RenderAttrs(out)
	out.WriteString("/>")
}

type Text struct {
	PathProps
	Position   Point
	Offset     Point
	FontSize   int
	FontFamily string
	FontWeight string
	Data       string
}

func (self *Text) RenderObject(out *strings.Builder) {
	out.WriteString("<text")
	self._RenderAttrs(out)
	fmt.Fprintf(out, ` x="%s" y="%s"`, FormatNumber(self.Position.X), FormatNumber(self.Position.Y))
	fmt.Fprintf(out, ` dx="%s" dy="%s"`, FormatNumber(self.Offset.X), FormatNumber(self.Offset.Y))
	fmt.Fprintf(out, ` font-size="%d"`, self.FontSize)
	if self.FontFamily != "" {
		fmt.Fprintf(out, ` font-family="%s"`, self.FontFamily)
	}
	if self.FontWeight != "" {
		fmt.Fprintf(out, ` font-weight="%s"`, self.FontWeight)
	}
	out.WriteByte('>')
	out.WriteString(EscapeText(self.Data))
	out.WriteString("</text>")
}

//*******************************************
// document
//*******************************************

type Document struct {
	objects List[IObject]
}

func NewDocument() *Document {
	return &Document{objects: NewList[IObject](100)}
}

func (self *Document) Add(obj IObject) {
	self.objects.Add(obj)
}

func (self *Document) ObjectCount() int {
	return self.objects.Length()
}

func (self *Document) String() string {
	var out strings.Builder
	out.WriteString(`<?xml version="1.0" encoding="UTF-8" ?>` + "\n")
	out.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" version="1.1">` + "\n")
	for _, obj := range self.objects {
		obj.RenderObject(&out)
		out.WriteByte('\n')
	}
	out.WriteString("</svg>")
	return out.String()
}

func (self *Document) Render(w io.Writer) error {
	_, err := io.WriteString(w, self.String())
	return err
}
