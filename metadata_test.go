package morphospace

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestMetaValueKinds(t *testing.T) {
	s := StringValue("corpus")
	n := NumberValue(3.5)
	b := BoolValue(true)

	if s.Kind != MetaString || s.String() != "corpus" {
		t.Errorf("StringValue = %+v", s)
	}
	if n.Kind != MetaNumber || n.String() != "3.5" {
		t.Errorf("NumberValue = %+v, String %q", n, n.String())
	}
	if b.Kind != MetaBool || b.String() != "true" {
		t.Errorf("BoolValue = %+v", b)
	}

	if s.Equal(n) || n.Equal(b) {
		t.Error("values of different kinds compare equal")
	}
	if !n.Equal(NumberValue(3.5)) {
		t.Error("equal numbers do not compare equal")
	}
}

func TestMetaValueJSON(t *testing.T) {
	in := map[string]MetaValue{
		"source":    StringValue("corpus"),
		"frequency": NumberValue(121),
		"attested":  BoolValue(false),
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var out map[string]MetaValue
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	for k, v := range in {
		if !out[k].Equal(v) {
			t.Errorf("round-trip %q = %+v, want %+v", k, out[k], v)
		}
	}
}

func TestMetaValueRejectsContainers(t *testing.T) {
	for _, doc := range []string{`{"k": [1, 2]}`, `{"k": {"nested": 1}}`} {
		var out map[string]MetaValue
		err := json.Unmarshal([]byte(doc), &out)
		if !errors.Is(err, ErrMetadataValue) {
			t.Errorf("Unmarshal(%s) error = %v, want ErrMetadataValue", doc, err)
		}
	}
}
