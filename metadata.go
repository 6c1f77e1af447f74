package morphospace

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// MetaKind discriminates the variants of a MetaValue.
type MetaKind int

const (
	MetaString MetaKind = iota
	MetaNumber
	MetaBool
)

// MetaValue is a constrained metadata value: a string, a number, or a
// bool. Keeping the variant closed makes serialization total and
// type-checked.
type MetaValue struct {
	Kind MetaKind
	Str  string
	Num  float64
	Bool bool
}

// StringValue returns a string-valued MetaValue.
func StringValue(s string) MetaValue {
	return MetaValue{Kind: MetaString, Str: s}
}

// NumberValue returns a number-valued MetaValue.
func NumberValue(n float64) MetaValue {
	return MetaValue{Kind: MetaNumber, Num: n}
}

// BoolValue returns a bool-valued MetaValue.
func BoolValue(b bool) MetaValue {
	return MetaValue{Kind: MetaBool, Bool: b}
}

// String renders the value the way it would appear in JSON.
func (v MetaValue) String() string {
	switch v.Kind {
	case MetaNumber:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case MetaBool:
		return strconv.FormatBool(v.Bool)
	default:
		return v.Str
	}
}

// Equal reports whether v and other hold the same kind and value.
func (v MetaValue) Equal(other MetaValue) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case MetaNumber:
		return v.Num == other.Num
	case MetaBool:
		return v.Bool == other.Bool
	default:
		return v.Str == other.Str
	}
}

// MarshalJSON writes the scalar value directly.
func (v MetaValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case MetaNumber:
		return json.Marshal(v.Num)
	case MetaBool:
		return json.Marshal(v.Bool)
	default:
		return json.Marshal(v.Str)
	}
}

// UnmarshalJSON reads a scalar, rejecting nulls, arrays, and objects.
func (v *MetaValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = StringValue(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*v = NumberValue(n)
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*v = BoolValue(b)
		return nil
	}
	return fmt.Errorf("%w: %s", ErrMetadataValue, data)
}

// cloneMetadata copies a metadata map, preserving nil.
func cloneMetadata(m map[string]MetaValue) map[string]MetaValue {
	if m == nil {
		return nil
	}
	out := make(map[string]MetaValue, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// metadataEqual compares two metadata maps; nil and empty are equal.
func metadataEqual(a, b map[string]MetaValue) bool {
	if len(a) != len(b) {
		return false
	}
	for k, va := range a {
		vb, ok := b[k]
		if !ok || !va.Equal(vb) {
			return false
		}
	}
	return true
}
