package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

// maxEpochMillis is the largest distance from the epoch a JS Date can hold.
const maxEpochMillis = 8.64e15

// Date-only strings are UTC, local date-times without an offset are local.
var stringLayouts = []struct {
	layout string
	loc    *time.Location
}{
	{time.RFC3339Nano, time.Local},
	{"2006-01-02T15:04:05", time.Local},
	{"2006-01-02", time.UTC},
}

// Timestamp decodes either epoch milliseconds or an RFC 3339 string and
// encodes back to epoch milliseconds.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		for _, f := range stringLayouts {
			parsed, err := time.ParseInLocation(f.layout, s, f.loc)
			if err == nil {
				t.Time = parsed
				return nil
			}
		}
		return fmt.Errorf("invalid timestamp %q", s)
	}
	ms, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp %s: %w", data, err)
	}
	if math.Abs(ms) > maxEpochMillis {
		return fmt.Errorf("timestamp %s out of range", data)
	}
	t.Time = time.UnixMilli(int64(ms))
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(t.UnixMilli(), 10)), nil
}

// Identifier accepts both numeric and string ids.
type Identifier string

func (id *Identifier) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = Identifier(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("invalid identifier %s: %w", data, err)
		}
		*id = Identifier(n.String())
	}
	return nil
}

func (id Identifier) String() string {
	return string(id)
}
