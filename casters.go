package dataship

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// toFloat64 coerces a scalar to float64.
// Values that cannot be coerced (including nil and time.Time) become NaN.
func toFloat64(val interface{}) float64 {
	switch v := val.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	}
	return math.NaN()
}

// isNumeric reports whether val is a Go number, or a string that parses as one.
func isNumeric(val interface{}) bool {
	switch v := val.(type) {
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case string:
		_, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return err == nil
	}
	return false
}

// toDateTime coerces a time.Time or a date string to time.Time.
// Returns false if val is neither or the string cannot be parsed.
func toDateTime(val interface{}) (time.Time, bool) {
	switch v := val.(type) {
	case time.Time:
		return v, true
	case string:
		t, err := dateparse.ParseAny(strings.TrimSpace(v))
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
	return time.Time{}, false
}

// toString renders a scalar for records and printed tables.
func toString(val interface{}) string {
	switch v := val.(type) {
	case nil:
		return optionNullString
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case time.Time:
		return v.Format(optionDateFormat)
	}
	return fmt.Sprint(val)
}

// compareValues returns -1 if a sorts before b, +1 if after, and 0 otherwise.
// Two times compare chronologically and two non-numeric strings lexically;
// everything else compares numerically, where NaN compares equal to every value.
func compareValues(a, b interface{}) int {
	if t1, ok := a.(time.Time); ok {
		if t2, ok := b.(time.Time); ok {
			switch {
			case t1.Before(t2):
				return -1
			case t1.After(t2):
				return 1
			}
			return 0
		}
	}
	if s1, ok := a.(string); ok && !isNumeric(s1) {
		if s2, ok := b.(string); ok && !isNumeric(s2) {
			return strings.Compare(s1, s2)
		}
	}
	return CompareFloat64(toFloat64(a), toFloat64(b))
}

// isNullString reports whether a raw csv cell stands for a missing value.
func isNullString(s string) bool {
	nullStrings := []string{"NaN", "n/a", "N/A", "", "nil", "null", "NULL"}
	for _, ns := range nullStrings {
		if strings.TrimSpace(s) == ns {
			return true
		}
	}
	return false
}
