// Package keycodec converts map keys of arbitrary serializable types to
// and from JSON object field names.
//
// Keys of string kind are used verbatim, mirroring how encoding/json
// treats string-kinded map keys. Every other key type is encoded to a
// self-contained JSON value whose full text becomes the field name; the
// object writer then escapes that text like any other string, which is
// what keeps arbitrary key shapes losslessly embeddable.
package keycodec

import (
	"reflect"

	jsoniter "github.com/json-iterator/go"
)

// IsString reports whether keys of type K take the verbatim field-name
// path. The check is on K's static kind, not the dynamic value: an `any`
// key holding a string still goes through JSON transcoding so that both
// directions agree on the representation.
func IsString[K any]() bool {
	return reflect.TypeFor[K]().Kind() == reflect.String
}

// Encode returns the field name for key. For string-kinded K this is the
// key's own value; otherwise it is the key's JSON encoding.
func Encode[K any](api jsoniter.API, key K) (string, error) {
	if IsString[K]() {
		return reflect.ValueOf(key).String(), nil
	}
	return api.MarshalToString(key)
}

// Decode parses a field name back into a key of type K, reversing Encode.
// For non-string K the name must be exactly one valid JSON value; trailing
// bytes are an error.
func Decode[K any](api jsoniter.API, name string) (K, error) {
	var key K
	if IsString[K]() {
		reflect.ValueOf(&key).Elem().SetString(name)
		return key, nil
	}
	if err := api.UnmarshalFromString(name, &key); err != nil {
		var zero K
		return zero, err
	}
	return key, nil
}
