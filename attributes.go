package themekit

import (
	"fmt"
	"html"
	"slices"
)

// AttrValue is a script tag attribute value: a presence flag or a string.
type AttrValue struct {
	str      string
	flag     bool
	isString bool
}

// Bool returns a presence-only value. Bool(false) is falsy.
func Bool(b bool) AttrValue {
	return AttrValue{flag: b}
}

// String returns a value rendered as name="s". "" and "0" are falsy.
func String(s string) AttrValue {
	return AttrValue{str: s, isString: true}
}

// AttrFromAny converts a decoded config value. Only strings render as
// name="value": a non-zero number is a presence flag like true, zero is
// falsy, and so are nil and unsupported types.
func AttrFromAny(v any) AttrValue {
	switch x := v.(type) {
	case bool:
		return Bool(x)
	case string:
		return String(x)
	case int:
		return Bool(x != 0)
	case int64:
		return Bool(x != 0)
	case uint64:
		return Bool(x != 0)
	case float64:
		return Bool(x != 0)
	default:
		return Bool(false)
	}
}

// Truthy reports whether the value enables its attribute.
func (v AttrValue) Truthy() bool {
	if v.isString {
		return v.str != "" && v.str != "0"
	}
	return v.flag
}

// IsString reports whether the value renders as name="value".
func (v AttrValue) IsString() bool {
	return v.isString
}

func (v AttrValue) String() string {
	if v.isString {
		return v.str
	}
	return fmt.Sprint(v.flag)
}

// Attribute is one named tag attribute.
type Attribute struct {
	Name  string
	Value AttrValue
}

// render returns the attribute as inserted into a tag, with a leading space.
func (a Attribute) render() string {
	if a.Value.isString {
		return " " + a.Name + `="` + html.EscapeString(a.Value.str) + `"`
	}
	return " " + a.Name
}

// Attributes is an ordered attribute list. Order matters: rewriting stops
// at the first falsy value.
type Attributes []Attribute

// Clone returns a copy that does not share the backing array.
func (a Attributes) Clone() Attributes {
	return slices.Clone(a)
}

// HandleSet is an ordered set of asset handles. It is read-only once built.
type HandleSet struct {
	order []string
	index map[string]struct{}
}

// NewHandleSet builds a set; duplicates keep their first position.
func NewHandleSet(handles ...string) HandleSet {
	s := HandleSet{index: make(map[string]struct{}, len(handles))}
	for _, h := range handles {
		if _, ok := s.index[h]; ok {
			continue
		}
		s.index[h] = struct{}{}
		s.order = append(s.order, h)
	}
	return s
}

// Contains reports exact, case-sensitive membership.
func (s HandleSet) Contains(handle string) bool {
	_, ok := s.index[handle]
	return ok
}

// Handles returns the members in insertion order.
func (s HandleSet) Handles() []string {
	return slices.Clone(s.order)
}

// Len returns the number of members.
func (s HandleSet) Len() int {
	return len(s.order)
}
