package appstore

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/calmisland/go-errors"
)

func stringValue(value interface{}) *string {
	if s, ok := value.(string); ok {
		return &s
	}

	return nil
}

func int64Value(value interface{}) *int64 {
	if n, ok := numericValue(value); ok {
		return &n
	}

	return nil
}

func boolValue(value interface{}) *bool {
	if b, ok := value.(bool); ok {
		return &b
	}

	return nil
}

func stringListValue(value interface{}) []string {
	items, ok := value.([]interface{})
	if !ok {
		return nil
	}

	result := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil
		}
		result = append(result, s)
	}

	return result
}

// numericValue reads the integer shapes a decoded JSON payload can carry.
// JSON decoding yields float64 unless a decoder was configured for
// json.Number, so both are accepted alongside the plain integer kinds.
func numericValue(value interface{}) (int64, bool) {
	switch n := value.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	case json.Number:
		v, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return v, true
	}

	return 0, false
}

// epochMSValue interprets a raw value as a count of milliseconds since the
// Unix epoch. Absent, nil, zero and empty-string values yield no instant; a
// value that cannot be read as a millisecond count is an error.
func epochMSValue(key string, value interface{}) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}

	var ms int64
	if s, ok := value.(string); ok {
		if len(s) == 0 {
			return nil, nil
		}

		parsed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, errors.Errorf("invalid millisecond timestamp for field [%s]: %s", key, s)
		}
		ms = parsed
	} else {
		parsed, ok := numericValue(value)
		if !ok {
			return nil, errors.Errorf("invalid millisecond timestamp for field [%s]", key)
		}
		ms = parsed
	}

	if ms == 0 {
		return nil, nil
	}

	t := time.UnixMilli(ms).UTC()
	return &t, nil
}
