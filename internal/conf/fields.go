package conf

import (
	"fmt"
	"strings"
)

// AllFields is the pseudo-field that enables every output field when it
// appears in a field list.
const AllFields = "all"

// OutputFields selects the optional fields the result writer emits for
// each matched trajectory. The zero value has every field off; use
// DefaultOutputFields for the documented defaults.
type OutputFields struct {
	OPath    bool // matched edge id per observed point
	Offset   bool // distance from edge start to matched point
	Error    bool // distance from raw point to matched point
	CPath    bool // condensed edge ids of the matched path
	TPath    bool // path traversed between consecutive observations
	MGeom    bool // geometry of the matched path
	SPDist   bool // distance traveled between consecutive points
	PGeom    bool // linestring of matched points
	EP       bool // emission probability per point
	TP       bool // transition probability per point pair
	Length   bool // length of each matched edge
	Duration bool // time delta between consecutive points
	Speed    bool // spdist / duration
}

type field struct {
	name        string
	description string
	on          bool // default
	flag        func(f *OutputFields) *bool
}

// catalogue lists the output fields in the order they are printed and
// documented.
var catalogue = []field{
	{"opath", "matched edge id per observed point", false, func(f *OutputFields) *bool { return &f.OPath }},
	{"offset", "distance from edge start to matched point", false, func(f *OutputFields) *bool { return &f.Offset }},
	{"error", "distance from raw point to matched point", false, func(f *OutputFields) *bool { return &f.Error }},
	{"cpath", "edge ids forming the matched path", true, func(f *OutputFields) *bool { return &f.CPath }},
	{"tpath", "path traversed between consecutive observations", false, func(f *OutputFields) *bool { return &f.TPath }},
	{"mgeom", "geometry of the matched path", true, func(f *OutputFields) *bool { return &f.MGeom }},
	{"spdist", "distance traveled between consecutive points", false, func(f *OutputFields) *bool { return &f.SPDist }},
	{"pgeom", "linestring of matched points", false, func(f *OutputFields) *bool { return &f.PGeom }},
	{"ep", "emission probability per point", false, func(f *OutputFields) *bool { return &f.EP }},
	{"tp", "transition probability per point pair", false, func(f *OutputFields) *bool { return &f.TP }},
	{"length", "length of each matched edge", false, func(f *OutputFields) *bool { return &f.Length }},
	{"duration", "time delta between consecutive points", false, func(f *OutputFields) *bool { return &f.Duration }},
	{"speed", "spdist / duration", false, func(f *OutputFields) *bool { return &f.Speed }},
}

func lookupField(name string) (field, bool) {
	for _, f := range catalogue {
		if f.name == name {
			return f, true
		}
	}
	return field{}, false
}

// DefaultOutputFields returns the field selection used when no field list
// is given: cpath and mgeom.
func DefaultOutputFields() OutputFields {
	var f OutputFields
	for _, entry := range catalogue {
		*entry.flag(&f) = entry.on
	}
	return f
}

// DefaultFieldList returns the default selection as a field list string.
func DefaultFieldList() string {
	return strings.Join(DefaultOutputFields().EnabledNames(), ",")
}

// FieldNames returns the canonical field names in catalogue order.
func FieldNames() []string {
	names := make([]string, 0, len(catalogue))
	for _, entry := range catalogue {
		names = append(names, entry.name)
	}
	return names
}

// Enabled reports whether the named field is on. known is false when the
// name is not in the catalogue.
func (f OutputFields) Enabled(name string) (on bool, known bool) {
	entry, ok := lookupField(name)
	if !ok {
		return false, false
	}
	return *entry.flag(&f), true
}

// Set turns the named field on or off.
func (f *OutputFields) Set(name string, on bool) error {
	entry, ok := lookupField(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFieldName, name)
	}
	*entry.flag(f) = on
	return nil
}

// SetAll turns every field on or off.
func (f *OutputFields) SetAll(on bool) {
	for _, entry := range catalogue {
		*entry.flag(f) = on
	}
}

// EnabledNames returns the names of the enabled fields in catalogue order.
func (f OutputFields) EnabledNames() []string {
	var names []string
	for _, entry := range catalogue {
		if *entry.flag(&f) {
			names = append(names, entry.name)
		}
	}
	return names
}

// Any reports whether at least one field is on.
func (f OutputFields) Any() bool {
	return len(f.EnabledNames()) > 0
}
