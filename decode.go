package jsonmap

import (
	"fmt"
	"io"
	"iter"

	jsoniter "github.com/json-iterator/go"

	"github.com/jsonmap-go/jsonmap/internal/keycodec"
)

// UnmarshalMap parses a JSON object into a map, transcoding each field
// name back into a key of type K. A duplicate field overwrites the earlier
// entry, as it would for a plain string-keyed map. The empty object `{}`
// yields an empty, non-nil map.
func UnmarshalMap[K comparable, V any](data []byte) (map[K]V, error) {
	it := cfg.BorrowIterator(data)
	defer cfg.ReturnIterator(it)

	m := make(map[K]V)
	if err := decodeObject(it, func(k K, v V) bool { m[k] = v; return true }); err != nil {
		return nil, err
	}
	return m, nil
}

// UnmarshalSlice parses a JSON object into a slice of pairs, preserving
// the object's field order and keeping duplicate fields as separate
// entries.
func UnmarshalSlice[K, V any](data []byte) ([]Pair[K, V], error) {
	it := cfg.BorrowIterator(data)
	defer cfg.ReturnIterator(it)

	var pairs []Pair[K, V]
	err := decodeObject(it, func(k K, v V) bool {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
		return true
	})
	if err != nil {
		return nil, err
	}
	return pairs, nil
}

// UnmarshalSeq parses a JSON object lazily, yielding one pair per field in
// field order. Decoding stops at the first failure, which is yielded as
// the final element's error; breaking out of the range stops decoding
// early with no error. Entries are decoded as they are consumed, so
// breaking early skips the undecoded remainder entirely.
func UnmarshalSeq[K, V any](data []byte) iter.Seq2[Pair[K, V], error] {
	return func(yield func(Pair[K, V], error) bool) {
		it := cfg.BorrowIterator(data)
		defer cfg.ReturnIterator(it)

		err := decodeObject(it, func(k K, v V) bool {
			return yield(Pair[K, V]{Key: k, Value: v}, nil)
		})
		if err != nil {
			yield(Pair[K, V]{}, err)
		}
	}
}

// DecodeMap is UnmarshalMap reading from r instead of a byte slice.
func DecodeMap[K comparable, V any](r io.Reader) (map[K]V, error) {
	it := jsoniter.Parse(cfg, r, 512)

	m := make(map[K]V)
	if err := decodeObject(it, func(k K, v V) bool { m[k] = v; return true }); err != nil {
		return nil, err
	}
	return m, nil
}

// DecodeSlice is UnmarshalSlice reading from r instead of a byte slice.
func DecodeSlice[K, V any](r io.Reader) ([]Pair[K, V], error) {
	it := jsoniter.Parse(cfg, r, 512)

	var pairs []Pair[K, V]
	err := decodeObject(it, func(k K, v V) bool {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
		return true
	})
	if err != nil {
		return nil, err
	}
	return pairs, nil
}

// decodeObject reads exactly one JSON object from it, handing each decoded
// pair to yield in field order. It is the single pass shared by every
// unmarshal and decode entry point: nothing is buffered, and the first
// malformed field name, unparseable key, or mistyped value aborts with no
// partial result surfaced. yield returning false stops the pass cleanly.
func decodeObject[K, V any](it *jsoniter.Iterator, yield func(K, V) bool) error {
	switch it.WhatIsNext() {
	case jsoniter.ObjectValue:
	case jsoniter.InvalidValue:
		if it.Error == nil {
			return ErrNotObject
		}
		if it.Error != io.EOF {
			return fmt.Errorf("jsonmap: %w", it.Error)
		}
		return ErrUnexpectedEnd
	default:
		return ErrNotObject
	}

	var entryErr error
	stopped := false
	ok := it.ReadMapCB(func(it *jsoniter.Iterator, field string) bool {
		key, err := keycodec.Decode[K](cfg, field)
		if err != nil {
			entryErr = fmt.Errorf("jsonmap: decode field name %q as key: %w", field, err)
			return false
		}

		var value V
		it.ReadVal(&value)
		if it.Error != nil {
			entryErr = fmt.Errorf("jsonmap: decode value for field %q: %w", field, it.Error)
			return false
		}

		if !yield(key, value) {
			stopped = true
			return false
		}
		return true
	})

	switch {
	case entryErr != nil:
		return entryErr
	case stopped:
		return nil
	case !ok || it.Error != nil:
		if it.Error == nil || it.Error == io.EOF {
			return ErrUnexpectedEnd
		}
		return fmt.Errorf("jsonmap: %w", it.Error)
	}

	// only whitespace may follow the closing brace; a clean end shows up
	// as io.EOF on the iterator, anything else is trailing input
	if it.WhatIsNext() != jsoniter.InvalidValue || it.Error != io.EOF {
		return ErrTrailingBytes
	}
	return nil
}
