package models

import (
	"bytes"
	"encoding/json"
)

// Fields holds JSON members the code does not interpret, keyed by name.
type Fields map[string]json.RawMessage

// StringFields builds Fields from key/value string pairs.
func StringFields(kv ...string) Fields {
	fields := make(Fields, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		value, _ := json.Marshal(kv[i+1])
		fields[kv[i]] = value
	}
	return fields
}

// Text returns a string member as is, null or a missing member as "", and
// anything else as its JSON text.
func (f Fields) Text(key string) string {
	raw, ok := f[key]
	if !ok {
		return ""
	}
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// splitFields decodes data into typed and returns the members whose names
// are not in known.
func splitFields(data []byte, typed interface{}, known []string) (Fields, error) {
	if err := json.Unmarshal(data, typed); err != nil {
		return nil, err
	}
	var all Fields
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for _, key := range known {
		delete(all, key)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}

// mergeFields encodes typed and adds the extra members it does not already
// contain.
func mergeFields(typed interface{}, extra Fields) ([]byte, error) {
	data, err := json.Marshal(typed)
	if err != nil || len(extra) == 0 {
		return data, err
	}
	var all Fields
	if err = json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for key, value := range extra {
		if _, ok := all[key]; !ok {
			all[key] = value
		}
	}
	return json.Marshal(all)
}

// overlay encodes fields over the object in base, replacing members with the
// same name.
func overlay(base []byte, fields interface{}) ([]byte, error) {
	var all Fields
	if err := json.Unmarshal(base, &all); err != nil {
		return nil, err
	}
	top, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	var override Fields
	if err = json.Unmarshal(top, &override); err != nil {
		return nil, err
	}
	if all == nil {
		all = make(Fields, len(override))
	}
	for key, value := range override {
		all[key] = value
	}
	return json.Marshal(all)
}
