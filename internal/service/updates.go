package service

import (
	"strconv"
	"strings"

	"hireflow/internal/recruit"
)

// Update maps arrive from flags or imported JSON, so values show up as
// strings, floats or native types depending on the caller. These coercions
// accept the common shapes and reject everything else as a validation error.

func stringValue(field string, v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return "", recruit.Errorf(recruit.ErrValidation, "%s must be a string", field)
}

func intValue(field string, v any) (int, error) {
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case float64:
		return int(val), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, recruit.Errorf(recruit.ErrValidation, "%s must be an integer, got %q", field, val)
		}
		return n, nil
	default:
		return 0, recruit.Errorf(recruit.ErrValidation, "%s must be an integer", field)
	}
}

func boolValue(field string, v any) (bool, error) {
	switch val := v.(type) {
	case bool:
		return val, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(val))
		if err != nil {
			return false, recruit.Errorf(recruit.ErrValidation, "%s must be a boolean, got %q", field, val)
		}
		return b, nil
	default:
		return false, recruit.Errorf(recruit.ErrValidation, "%s must be a boolean", field)
	}
}

func stringSliceValue(field string, v any) ([]string, error) {
	switch val := v.(type) {
	case []string:
		return val, nil
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, recruit.Errorf(recruit.ErrValidation, "%s must be a list of strings", field)
			}
			out = append(out, s)
		}
		return out, nil
	case string:
		// Comma-separated form from flags.
		return strings.Split(val, ","), nil
	default:
		return nil, recruit.Errorf(recruit.ErrValidation, "%s must be a list of strings", field)
	}
}
