package jbisc

import "strings"

// repeatableKeys lists the field keys that may legitimately appear more
// than once per record. Membership is checked when a field is appended;
// every other key is scalar and a later occurrence overwrites the earlier
// value.
var repeatableKeys = map[string]bool{
	"authorheading": true,
	"note":          true,
}

// RawRecord is one sentinel-terminated block of the export, keyed by
// lower-cased field name. Unrecognized keys are stored verbatim so callers
// can pass them through untouched.
type RawRecord struct {
	scalars  map[string]string
	repeated map[string][]string
	lines    []string
}

func newRawRecord() *RawRecord {
	return &RawRecord{
		scalars:  make(map[string]string),
		repeated: make(map[string][]string),
	}
}

func (r *RawRecord) add(key, value string) {
	if repeatableKeys[key] {
		r.repeated[key] = append(r.repeated[key], value)
		return
	}
	r.scalars[key] = value
}

// Get returns the value of a scalar key, or "" when the key is absent.
func (r *RawRecord) Get(key string) string {
	return r.scalars[key]
}

// GetAll returns the accumulated values of a repeatable key in source order.
func (r *RawRecord) GetAll(key string) []string {
	return r.repeated[key]
}

// Source returns the record's raw lines as they appeared in the export,
// for error reporting.
func (r *RawRecord) Source() string {
	return strings.Join(r.lines, "\n")
}
