package meetupapi

import (
	"encoding/json"
	"math"
)

// TransportError is returned when the API answers with a non-2xx status.
type TransportError struct {
	StatusCode int
	StatusText string
}

func (e *TransportError) Error() string {
	return e.StatusText
}

// ApplicationError carries the "error" field of an otherwise successful
// response.
type ApplicationError struct {
	Value interface{}
	raw   json.RawMessage
}

func (e *ApplicationError) Error() string {
	if s, ok := e.Value.(string); ok {
		return s
	}
	return string(e.raw)
}

// truthy reports whether a decoded JSON value counts as set: null, false,
// 0 and "" do not.
func truthy(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0 && !math.IsNaN(x)
	default:
		return true
	}
}

// applicationError returns a non-nil error when body is a JSON object with a
// truthy "error" field. Bodies that are not objects are left to the caller.
func applicationError(body []byte) error {
	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Error) == 0 {
		return nil
	}
	var value interface{}
	if err := json.Unmarshal(envelope.Error, &value); err != nil {
		return nil
	}
	if !truthy(value) {
		return nil
	}
	return &ApplicationError{Value: value, raw: envelope.Error}
}
