// Package record implements the tagged hierarchical key/value records tasks
// and catalog entities are persisted as.
//
// An Object is an ordered list of named entries. Each entry holds either a
// string value or a child Object. Names may repeat: a task carries one
// "market" child per material market assignment. Values are kept as strings
// and converted on read, so a malformed number falls back to the caller's
// default the same way a missing one does.
package record

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Entry is a single named value or child object
type Entry struct {
	Name   string
	Value  string
	Object *Object
}

// IsObject reports whether the entry holds a child object
func (e Entry) IsObject() bool {
	return e.Object != nil
}

// Object is an ordered collection of named entries
type Object struct {
	entries []Entry
}

// New creates an empty object
func New() *Object {
	return &Object{}
}

// Entries returns a copy of the entries in insertion order
func (o *Object) Entries() []Entry {
	out := make([]Entry, len(o.entries))
	copy(out, o.entries)
	return out
}

// Len returns the number of entries
func (o *Object) Len() int {
	return len(o.entries)
}

// Has reports whether at least one entry is named name
func (o *Object) Has(name string) bool {
	for _, e := range o.entries {
		if e.Name == name {
			return true
		}
	}
	return false
}

// PutString appends a string value
func (o *Object) PutString(name, value string) {
	o.entries = append(o.entries, Entry{Name: name, Value: value})
}

// PutInt appends an integer value
func (o *Object) PutInt(name string, value int64) {
	o.PutString(name, strconv.FormatInt(value, 10))
}

// PutDecimal appends a decimal value
func (o *Object) PutDecimal(name string, value decimal.Decimal) {
	o.PutString(name, value.String())
}

// PutObject appends a child object. A nil child is ignored.
func (o *Object) PutObject(name string, child *Object) {
	if child == nil {
		return
	}
	o.entries = append(o.entries, Entry{Name: name, Object: child})
}

// String returns the first string value named name, or def when absent
func (o *Object) String(name, def string) string {
	for _, e := range o.entries {
		if e.Name == name && !e.IsObject() {
			return e.Value
		}
	}
	return def
}

// Strings returns every string value named name
func (o *Object) Strings(name string) []string {
	var out []string
	for _, e := range o.entries {
		if e.Name == name && !e.IsObject() {
			out = append(out, e.Value)
		}
	}
	return out
}

// Int returns the first value named name parsed as an int, or def when the
// value is absent or not a number
func (o *Object) Int(name string, def int) int {
	v, ok := o.lookup(name)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Int64 is Int for 64-bit quantities
func (o *Object) Int64(name string, def int64) int64 {
	v, ok := o.lookup(name)
	if !ok {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}

// Decimal returns the first value named name parsed as a decimal, or def
// when the value is absent or malformed
func (o *Object) Decimal(name string, def decimal.Decimal) decimal.Decimal {
	v, ok := o.lookup(name)
	if !ok {
		return def
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return def
	}
	return d
}

// Object returns the first child object named name, or nil
func (o *Object) Object(name string) *Object {
	for _, e := range o.entries {
		if e.Name == name && e.IsObject() {
			return e.Object
		}
	}
	return nil
}

// Objects returns every child object named name, in order
func (o *Object) Objects(name string) []*Object {
	var out []*Object
	for _, e := range o.entries {
		if e.Name == name && e.IsObject() {
			out = append(out, e.Object)
		}
	}
	return out
}

func (o *Object) lookup(name string) (string, bool) {
	for _, e := range o.entries {
		if e.Name == name && !e.IsObject() {
			return e.Value, true
		}
	}
	return "", false
}
