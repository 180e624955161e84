// Package hash provides content hashing and canonical JSON serialization
// used by the cache and JSON emission layers.
package hash

import (
	"encoding/hex"
	"encoding/json"
	"sort"

	"lukechampine.com/blake3"
)

// Digest computes a BLAKE3 hash of data and returns it as bytes.
func Digest(data []byte) []byte {
	sum := blake3.Sum256(data)
	return sum[:]
}

// DigestHex computes a BLAKE3 hash and returns it as a hex string.
func DigestHex(data []byte) string {
	d := Digest(data)
	return hex.EncodeToString(d)
}

// NewHasher returns a new streaming BLAKE3 hasher, for callers that want to
// feed content incrementally instead of holding it all in memory.
func NewHasher() *blake3.Hasher {
	return blake3.New(32, nil)
}

// CanonicalJSON renders v as JSON with every object's members reordered by
// key, so two structurally equal values always produce identical bytes
// regardless of map iteration order. It round-trips v through the standard
// decoder first so the ordering applies uniformly, including to nested
// maps produced by embedded json.Marshaler implementations.
func CanonicalJSON(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var decoded interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, err
	}

	return json.Marshal(order(decoded))
}

// order walks a decoded JSON value, replacing every object with a
// keyOrderedObject that remembers its sorted member order. Arrays recurse
// element-wise; scalars pass through untouched.
func order(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		members := make(keyOrderedObject, len(keys))
		for i, k := range keys {
			members[i] = objectMember{key: k, value: order(val[k])}
		}
		return members
	case []interface{}:
		ordered := make([]interface{}, len(val))
		for i, elem := range val {
			ordered[i] = order(elem)
		}
		return ordered
	default:
		return val
	}
}

// objectMember is one key/value pair in a keyOrderedObject, kept in a
// slice rather than a map so encoding/json can't reshuffle it.
type objectMember struct {
	key   string
	value interface{}
}

// keyOrderedObject implements json.Marshaler to emit its members in the
// order they were placed, which order() always sets to sorted-by-key.
type keyOrderedObject []objectMember

func (o keyOrderedObject) MarshalJSON() ([]byte, error) {
	out := []byte{'{'}
	for i, m := range o {
		if i > 0 {
			out = append(out, ',')
		}
		keyJSON, err := json.Marshal(m.key)
		if err != nil {
			return nil, err
		}
		valJSON, err := json.Marshal(m.value)
		if err != nil {
			return nil, err
		}
		out = append(out, keyJSON...)
		out = append(out, ':')
		out = append(out, valJSON...)
	}
	return append(out, '}'), nil
}
