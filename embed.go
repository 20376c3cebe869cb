package jsonmap

// Map is a map that serializes as a JSON object with transcoded keys when
// embedded in a larger value. Declaring a struct field as a Map opts that
// field into the object representation that encoding/json, jsoniter, and
// goccy would otherwise reject for composite key types:
//
//	type Ledger struct {
//		Balances jsonmap.Map[Account, int64] `json:"balances"`
//	}
//
// Outside of serialization it is an ordinary map and supports indexing,
// range, len, and conversion to and from map[K]V.
type Map[K comparable, V any] map[K]V

// MarshalJSON implements [encoding/json.Marshaler].
func (m Map[K, V]) MarshalJSON() ([]byte, error) {
	return MarshalMap(map[K]V(m))
}

// UnmarshalJSON implements [encoding/json.Unmarshaler]. The previous
// contents of m are replaced, not merged.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	decoded, err := UnmarshalMap[K, V](data)
	if err != nil {
		return err
	}
	*m = decoded
	return nil
}

// Slice is a pair slice that serializes as a JSON object rather than the
// JSON array of {"key":...,"value":...} objects a generic marshaler would
// produce. It preserves entry order on both sides and, unlike [Map], does
// not require K to be comparable, so keys may themselves contain maps or
// slices.
type Slice[K, V any] []Pair[K, V]

// MarshalJSON implements [encoding/json.Marshaler].
func (s Slice[K, V]) MarshalJSON() ([]byte, error) {
	return MarshalSlice([]Pair[K, V](s))
}

// UnmarshalJSON implements [encoding/json.Unmarshaler]. The previous
// contents of s are replaced, not appended to.
func (s *Slice[K, V]) UnmarshalJSON(data []byte) error {
	decoded, err := UnmarshalSlice[K, V](data)
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}
