// Package jsonmap serializes Go maps, pair slices, and pair sequences to
// JSON objects even when the key type is not a string.
//
// encoding/json rejects maps whose keys are structs or other composite
// types. jsonmap lifts that restriction by encoding each key to its own
// JSON text and using that text as the object field name; the surrounding
// object escapes it like any other string. A map entry with the struct key
// {A: 3, B: 5} therefore serializes as:
//
//	{"{\"a\":3,\"b\":5}":{"a":7,"b":9}}
//
// Decoding reverses the process: each field name is parsed back into the
// key type. Keys of string kind are passed through verbatim in both
// directions, so for string-keyed maps the output is byte-identical to
// plain [encoding/json] serialization.
//
// Entries are transcoded one at a time, directly into the output buffer or
// straight out of the input: no intermediate string-keyed map is built on
// either side.
package jsonmap

import (
	jsoniter "github.com/json-iterator/go"
)

// cfg drives every marshal and unmarshal in this package. The
// stdlib-compatible config keeps output (escaping, map key ordering inside
// values, float formatting) byte-equal to encoding/json.
var cfg = jsoniter.ConfigCompatibleWithStandardLibrary

// Pair is a single key-value entry. It is the element type of the ordered,
// slice-shaped codec entry points, standing in for the tuple the map form
// cannot express.
type Pair[K, V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}
