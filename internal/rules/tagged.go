package rules

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Variant is implemented by every case of the rule unions. Name is the case
// name used in saved games and payload is nil for cases without data.
type Variant interface {
	Variant() (name string, payload any)
}

// VariantName returns the case name of v, or "None" for nil.
func VariantName(v Variant) string {
	if v == nil {
		return "None"
	}
	name, _ := v.Variant()
	return name
}

// marshalVariant encodes v externally tagged: "Name" for cases without data
// and {"Name": payload} otherwise.
func marshalVariant(v Variant) ([]byte, error) {
	name, payload := v.Variant()
	if payload == nil {
		return json.Marshal(name)
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	key, err := json.Marshal(name)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	buf.Write(key)
	buf.WriteByte(':')
	buf.Write(body)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

var errEmptyVariant = errors.New("empty variant")

// splitVariant reverses marshalVariant. The payload is nil for bare names.
func splitVariant(data []byte) (string, json.RawMessage, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return "", nil, errEmptyVariant
	}
	if data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return "", nil, err
		}
		return name, nil, nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return "", nil, err
	}
	if len(obj) != 1 {
		return "", nil, fmt.Errorf("expected one variant key, got %d", len(obj))
	}
	for name, payload := range obj {
		return name, payload, nil
	}
	return "", nil, errEmptyVariant
}

// unknownVariant reports a case name a union does not have.
func unknownVariant(union, name string) error {
	return fmt.Errorf("unknown %s variant %q", union, name)
}

// missingPayload reports a case that needs data but was given a bare name.
func missingPayload(name string) error {
	return fmt.Errorf("variant %q needs a payload", name)
}

// decodePayload decodes the data of a case into dst.
func decodePayload(name string, payload json.RawMessage, dst any) error {
	if payload == nil {
		return missingPayload(name)
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return fmt.Errorf("variant %q: %w", name, err)
	}
	return nil
}

// compactName drops spaces, so "Is Time At" names the IsTimeAt case.
func compactName(s string) string {
	return strings.ReplaceAll(s, " ", "")
}
