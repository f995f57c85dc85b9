package strings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type (
	SupportedValueParsingTypes interface {
		bool | int | int64 | uint | float64 | string | time.Time | time.Duration | uuid.UUID
	}

	SupportedPointerParsingTypes interface {
		*bool | *int | *int64 | *uint | *float64 | *string | *time.Time | *time.Duration | *uuid.UUID
	}
)

func ParseTypedValue[T any](value string) (T, error) {
	var v any
	var err error
	var blank T
	switch any(blank).(type) {
	case bool:
		v, err = strconv.ParseBool(value)
	case int:
		v, err = strconv.Atoi(value)
	case int64:
		v, err = strconv.ParseInt(value, 10, 64)
	case uint:
		var u uint64
		u, err = strconv.ParseUint(value, 10, 64)
		v = uint(u)
	case float64:
		v, err = strconv.ParseFloat(value, 64)
	case string:
		v, err = value, nil
	case time.Time:
		v, err = parseTime(value)
	case time.Duration:
		v, err = time.ParseDuration(value)
	case uuid.UUID:
		v, err = uuid.Parse(value)
	case *bool:
		return parsePointer[bool, T](value)
	case *int:
		return parsePointer[int, T](value)
	case *int64:
		return parsePointer[int64, T](value)
	case *uint:
		return parsePointer[uint, T](value)
	case *float64:
		return parsePointer[float64, T](value)
	case *string:
		return parsePointer[string, T](value)
	case *time.Time:
		return parsePointer[time.Time, T](value)
	case *time.Duration:
		return parsePointer[time.Duration, T](value)
	case *uuid.UUID:
		return parsePointer[uuid.UUID, T](value)
	default:
		return blank, fmt.Errorf("unsupported value type %T", blank)
	}

	if err != nil {
		return blank, fmt.Errorf("failed to convert to type %T: %w", blank, err)
	}
	return v.(T), nil
}

func parsePointer[V any, T any](value string) (T, error) {
	var blank T
	v, err := ParseTypedValue[V](value)
	if err != nil {
		return blank, err
	}

	return any(&v).(T), nil
}

func parseTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err == nil {
		return t, nil
	}

	unixTime, unixErr := strconv.ParseInt(value, 10, 64)
	if unixErr != nil {
		return time.Time{}, err
	}
	if unixTime < 0 {
		return time.Time{}, fmt.Errorf("got negative seconds value %d", unixTime)
	}

	return time.Unix(unixTime, 0), nil
}
