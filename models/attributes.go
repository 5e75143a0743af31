// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Attributes keeps the client-submitted fields of a document that have no
// dedicated column. Keys are JSON field names, values are raw JSON.
//
// Attributes is stored as a JSON text column and flattened back into the
// owning document when it is serialized.
type Attributes map[string]json.RawMessage

// Value implements [driver.Valuer].
func (a Attributes) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "{}", nil
	}

	b, err := json.Marshal(map[string]json.RawMessage(a))
	if err != nil {
		return nil, fmt.Errorf("error marshaling attributes: %w", err)
	}

	return string(b), nil
}

// Scan implements [sql.Scanner].
func (a *Attributes) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*a = nil
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("unsupported attributes source type %T", src)
	}

	if len(raw) == 0 {
		*a = nil
		return nil
	}

	decoded := make(map[string]json.RawMessage)
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("error unmarshaling attributes: %w", err)
	}
	if len(decoded) == 0 {
		decoded = nil
	}

	*a = decoded
	return nil
}

// splitDocument decodes a JSON object and moves every key listed in known
// into the returned map. All remaining keys end up in rest.
func splitDocument(data []byte, known ...string) (map[string]json.RawMessage, Attributes, error) {
	all := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, nil, err
	}

	fields := make(map[string]json.RawMessage, len(known))
	for _, key := range known {
		if v, ok := all[key]; ok {
			fields[key] = v
			delete(all, key)
		}
	}

	if len(all) == 0 {
		return fields, nil, nil
	}

	return fields, Attributes(all), nil
}

// mergeDocument renders fields on top of attrs. Known fields always win over
// attributes with the same name.
func mergeDocument(fields map[string]any, attrs Attributes) ([]byte, error) {
	doc := make(map[string]any, len(fields)+len(attrs))
	for k, v := range attrs {
		doc[k] = v
	}
	for k, v := range fields {
		doc[k] = v
	}

	return json.Marshal(doc)
}

var errNotANumber = errors.New("value is not a number")

func decodeString(raw json.RawMessage) (string, error) {
	if raw == nil || string(raw) == "null" {
		return "", nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", err
	}

	return s, nil
}

// decodeFloat accepts a JSON number or a numeric string.
func decodeFloat(raw json.RawMessage) (float64, error) {
	if raw == nil || string(raw) == "null" {
		return 0, nil
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, errNotANumber
	}
	if s == "" {
		return 0, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errNotANumber
	}

	return f, nil
}

// decodeInt accepts a JSON integer or a numeric string. A missing or null
// value yields nil.
func decodeInt(raw json.RawMessage) (*int64, error) {
	if raw == nil || string(raw) == "null" {
		return nil, nil
	}

	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return &n, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, errNotANumber
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, errNotANumber
	}

	return &n, nil
}
