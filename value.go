package fsgraph

import "encoding/json"

// FieldValue is a scalar property value handed back to the interpreter.
// The zero value is Null.
type FieldValue struct {
	str   string
	isStr bool
}

// Null is the absent property value
var Null = FieldValue{}

// String wraps s as a FieldValue
func String(s string) FieldValue {
	return FieldValue{str: s, isStr: true}
}

// OptionalString returns Null for a nil s, otherwise the wrapped string
func OptionalString(s *string) FieldValue {
	if s == nil {
		return Null
	}
	return String(*s)
}

func (v FieldValue) IsNull() bool {
	return !v.isStr
}

// AsString returns the wrapped string; ok is false for Null
func (v FieldValue) AsString() (s string, ok bool) {
	return v.str, v.isStr
}

func (v FieldValue) String() string {
	if v.IsNull() {
		return "null"
	}
	return v.str
}

func (v FieldValue) MarshalJSON() ([]byte, error) {
	if v.IsNull() {
		return []byte("null"), nil
	}
	return json.Marshal(v.str)
}

func (v *FieldValue) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*v = OptionalString(s)
	return nil
}

// MarshalYAML renders Null as a YAML null
func (v FieldValue) MarshalYAML() (any, error) {
	if v.IsNull() {
		return nil, nil
	}
	return v.str, nil
}

// EdgeParameters are the named arguments supplied with an edge
type EdgeParameters map[string]FieldValue

func (p EdgeParameters) IsEmpty() bool {
	return len(p) == 0
}
