package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"
)

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Value
}

func (kv KeyValue) String() string {
	return kv.Key + ": " + kv.Value.String()
}

// --- CSS Property Groups ----------------------------------------------

// PropertyGroup is a collection of properties sharing a common topic.
// CSS knows a whole lot of properties. We split them up into organisatorial
// groups.
//
// The mapping of property into groups is documented with
// GroupNameFromPropertyKey[...].
type PropertyGroup struct {
	name      string
	propsDict map[string]Value
}

// NewPropertyGroup creates a new empty property group, given its name.
func NewPropertyGroup(groupname string) *PropertyGroup {
	pg := &PropertyGroup{}
	pg.name = groupname
	return pg
}

// Name returns the name of the property group. Once named (during
// construction, property groups may not be renamed.
func (pg *PropertyGroup) Name() string {
	return pg.name
}

// Stringer for property groups; used for debugging.
func (pg *PropertyGroup) String() string {
	s := "[" + pg.name + "] =\n"
	for _, kv := range pg.Properties() {
		s += fmt.Sprintf("  %s = %s\n", kv.Key, kv.Value)
	}
	return s
}

// Properties returns all properties of a group, sorted by key.
func (pg *PropertyGroup) Properties() []KeyValue {
	r := make([]KeyValue, 0, len(pg.propsDict))
	for k, v := range pg.propsDict {
		r = append(r, KeyValue{k, v})
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Key < r[j].Key })
	return r
}

// IsSet is a predicated wether a property is set within this group.
func (pg *PropertyGroup) IsSet(key string) bool {
	if pg.propsDict == nil {
		return false
	}
	v, ok := pg.propsDict[key]
	return ok && !v.IsEmpty()
}

// Get a property's value.
func (pg *PropertyGroup) Get(key string) (Value, bool) {
	if pg.propsDict == nil {
		return NullValue, false
	}
	v, ok := pg.propsDict[key]
	return v, ok
}

// Set a property's value. Overwrites an existing value, if present.
func (pg *PropertyGroup) Set(key string, v Value) {
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]Value)
	}
	pg.propsDict[key] = v
}

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("margin-top") => "Margins"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		switch {
		case strings.HasPrefix(key, "margin"):
			groupname = PGMargins
		case strings.HasPrefix(key, "padding"):
			groupname = PGPadding
		case strings.HasPrefix(key, "border"):
			groupname = PGBorder
		case strings.HasPrefix(key, "font"):
			groupname = PGFont
		default:
			groupname = PGX
		}
	}
	return groupname
}

// Symbolic names for string literals, denoting PropertyGroups.
const (
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGBorder    = "Border"
	PGDimension = "Dimension"
	PGDisplay   = "Display"
	PGColor     = "Color"
	PGFont      = "Font"
	PGText      = "Text"
	PGX         = "X"
)

var groupNameFromPropertyKey = map[string]string{
	"width":          PGDimension, // Dimension
	"height":         PGDimension,
	"min-width":      PGDimension,
	"min-height":     PGDimension,
	"max-width":      PGDimension,
	"max-height":     PGDimension,
	"display":        PGDisplay, // Display
	"float":          PGDisplay,
	"visibility":     PGDisplay,
	"position":       PGDisplay,
	"color":          PGColor, // Color
	"background":     PGColor,
	"line-height":    PGFont,
	"direction":      PGText, // Text
	"text-align":     PGText,
	"white-space":    PGText,
	"word-spacing":   PGText,
	"letter-spacing": PGText,
	"word-break":     PGText,
	"word-wrap":      PGText,
}

// --- Property Map -----------------------------------------------------

// PropertyMap holds CSS properties. nil is a legal (empty) property map.
// A property map is the entity styling a DOM node: a styled node links to a
// property map, which contains zero or more property groups.
type PropertyMap struct {
	// As CSS defines a whole lot of properties, we segment them into logical groups.
	m map[string]*PropertyGroup // into struct to make it opaque for clients
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{}
}

func (pmap *PropertyMap) String() string {
	s := "Property Map = {\n"
	for _, g := range pmap.Groups() {
		s += pmap.m[g].String()
	}
	s += "}"
	return s
}

// Size returns the number of property groups.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// Len returns the number of properties set.
func (pmap *PropertyMap) Len() int {
	if pmap == nil {
		return 0
	}
	n := 0
	for _, g := range pmap.m {
		n += len(g.propsDict)
	}
	return n
}

// Groups returns the names of all property groups present, sorted.
func (pmap *PropertyMap) Groups() []string {
	if pmap == nil {
		return nil
	}
	names := make([]string, 0, len(pmap.m))
	for name := range pmap.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Group returns the property group for a group name or nil.
func (pmap *PropertyMap) Group(groupname string) *PropertyGroup {
	if pmap == nil {
		return nil
	}
	group := pmap.m[groupname]
	return group
}

// Property returns a style property value, together with an indicator
// wether it has been found in the properties map.
func (pmap *PropertyMap) Property(key string) (Value, bool) {
	groupname := GroupNameFromPropertyKey(key)
	group := pmap.Group(groupname)
	if group == nil {
		return NullValue, false
	}
	return group.Get(key)
}

// Properties returns all properties of the map, sorted by group name and
// then by key.
func (pmap *PropertyMap) Properties() []KeyValue {
	var r []KeyValue
	for _, g := range pmap.Groups() {
		r = append(r, pmap.m[g].Properties()...)
	}
	return r
}

// Set sets a property's value, overwriting an existing value, e.g.,
//
//    pm.Set("margin-top", style.Length(1, style.Em))
//
func (pmap *PropertyMap) Set(key string, value Value) {
	if pmap == nil {
		tracer().Errorf("cannot set property %s on nil property map", key)
		return
	}
	if pmap.m == nil {
		pmap.m = make(map[string]*PropertyGroup)
	}
	groupname := GroupNameFromPropertyKey(key)
	group, found := pmap.m[groupname]
	if !found {
		group = NewPropertyGroup(groupname)
		pmap.m[groupname] = group
	}
	group.Set(key, value)
}

// Copy returns a deep copy of a property map.
func (pmap *PropertyMap) Copy() *PropertyMap {
	c := NewPropertyMap()
	for _, kv := range pmap.Properties() {
		c.Set(kv.Key, kv.Value)
	}
	return c
}
