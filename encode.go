package jsonmap

import (
	"fmt"
	"io"
	"iter"
	"maps"

	jsoniter "github.com/json-iterator/go"

	"github.com/jsonmap-go/jsonmap/internal/keycodec"
)

// MarshalMap serializes m as a JSON object, transcoding each key to a
// field name. Entries are written in the map's iteration order.
func MarshalMap[K comparable, V any](m map[K]V) ([]byte, error) {
	return MarshalSeq(maps.All(m))
}

// MarshalSlice serializes pairs as a JSON object, preserving slice order.
// Duplicate keys are written as duplicate fields; the codec does not
// deduplicate.
func MarshalSlice[K, V any](pairs []Pair[K, V]) ([]byte, error) {
	return MarshalSeq(pairsSeq(pairs))
}

// MarshalSeq serializes any pair sequence as a JSON object, preserving the
// sequence order. The sequence is traversed exactly once, and each entry
// is written to the output as it is produced, so single-use iterators work.
func MarshalSeq[K, V any](seq iter.Seq2[K, V]) ([]byte, error) {
	stream := cfg.BorrowStream(nil)
	defer cfg.ReturnStream(stream)

	if err := encodeSeq(stream, seq); err != nil {
		return nil, err
	}

	// the stream's buffer goes back to the pool with it
	out := make([]byte, len(stream.Buffer()))
	copy(out, stream.Buffer())
	return out, nil
}

// EncodeMap is MarshalMap writing to w instead of returning bytes. If an
// entry fails to serialize, bytes already flushed to w are not valid JSON
// and are the caller's to discard.
func EncodeMap[K comparable, V any](w io.Writer, m map[K]V) error {
	return EncodeSeq(w, maps.All(m))
}

// EncodeSlice is MarshalSlice writing to w instead of returning bytes.
func EncodeSlice[K, V any](w io.Writer, pairs []Pair[K, V]) error {
	return EncodeSeq(w, pairsSeq(pairs))
}

// EncodeSeq is MarshalSeq writing to w instead of returning bytes.
func EncodeSeq[K, V any](w io.Writer, seq iter.Seq2[K, V]) error {
	stream := jsoniter.NewStream(cfg, w, 512)
	if err := encodeSeq(stream, seq); err != nil {
		return err
	}
	stream.Flush()
	return stream.Error
}

// encodeSeq writes seq as one JSON object in a single pass. The first key
// or value that fails to serialize aborts the pass with that error.
func encodeSeq[K, V any](stream *jsoniter.Stream, seq iter.Seq2[K, V]) error {
	stream.WriteObjectStart()
	first := true
	for key, value := range seq {
		if !first {
			stream.WriteMore()
		}
		first = false

		name, err := keycodec.Encode(cfg, key)
		if err != nil {
			return fmt.Errorf("jsonmap: encode key: %w", err)
		}
		// WriteObjectField skips HTML escaping, which would break
		// byte-equality with encoding/json for names containing <, > or &.
		stream.WriteStringWithHTMLEscaped(name)
		stream.WriteRaw(":")

		stream.WriteVal(value)
		if stream.Error != nil {
			return fmt.Errorf("jsonmap: encode value for field %q: %w", name, stream.Error)
		}
	}
	stream.WriteObjectEnd()
	return stream.Error
}

func pairsSeq[K, V any](pairs []Pair[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, p := range pairs {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}
