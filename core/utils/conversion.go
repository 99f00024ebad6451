package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ToInt64 converts various types to int64 using explicit type switching.
// It handles standard integer types, floats, strings, and byte slices.
func ToInt64(val any) int64 {
	switch v := val.(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case int32:
		return int64(v)
	case int16:
		return int64(v)
	case int8:
		return int64(v)
	case uint:
		return int64(v)
	case uint64:
		return int64(v)
	case uint32:
		return int64(v)
	case uint16:
		return int64(v)
	case uint8:
		return int64(v)
	case float64:
		return int64(v)
	case float32:
		return int64(v)
	case string:
		i, _ := strconv.ParseInt(v, 10, 64)
		return i
	case []byte:
		i, _ := strconv.ParseInt(string(v), 10, 64)
		return i
	default:
		s := fmt.Sprintf("%v", v)
		i, _ := strconv.ParseInt(s, 10, 64)
		return i
	}
}

// ToUint converts various types to uint via ToInt64. Negative values clamp
// to zero.
func ToUint(val any) uint {
	i := ToInt64(val)
	if i < 0 {
		return 0
	}
	return uint(i)
}

// ToString converts various types to string.
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToBool converts various types to bool.
// It handles bool, numeric types (1=true), and strings ("1", "true").
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		return ToInt64(v) == 1
	case string:
		return v == "1" || strings.ToLower(v) == "true"
	case []byte:
		s := string(v)
		return s == "1" || strings.ToLower(s) == "true"
	default:
		return false
	}
}

// EqualValue reports whether two column values are semantically equal across
// the type differences introduced by driver scanning (bool vs tinyint,
// int vs int64, time.Time vs *time.Time, NULL vs nil pointer).
func EqualValue(a, b any) bool {
	a = indirect(a)
	b = indirect(b)

	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if at, aok := asTime(a); aok {
		bt, bok := asTime(b)
		return bok && at.Equal(bt)
	}

	if _, ok := a.(bool); ok {
		return ToBool(a) == ToBool(b)
	}
	if _, ok := b.(bool); ok {
		return ToBool(a) == ToBool(b)
	}

	return ToString(a) == ToString(b)
}

// indirect unwraps the pointer wrappers that appear in SyncValues maps.
func indirect(val any) any {
	switch v := val.(type) {
	case *time.Time:
		if v == nil {
			return nil
		}
		return *v
	case *string:
		if v == nil {
			return nil
		}
		return *v
	case *int64:
		if v == nil {
			return nil
		}
		return *v
	case *bool:
		if v == nil {
			return nil
		}
		return *v
	default:
		return val
	}
}

func asTime(val any) (time.Time, bool) {
	switch v := val.(type) {
	case time.Time:
		return v, true
	case string:
		// SQLite hands datetime columns back as strings.
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, v); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
