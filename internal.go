package dataship

import (
	"fmt"
	"math"
	"reflect"
	"time"
)

// valueName labels aggregated values as reducer_selector, or whichever of the two is named.
func valueName(r Reducer, selectorName string) string {
	var reducerName string
	if stringer, ok := r.(fmt.Stringer); ok {
		reducerName = stringer.String()
	}
	switch {
	case reducerName == "":
		return selectorName
	case selectorName == "":
		return reducerName
	}
	return fmt.Sprintf("%v_%v", reducerName, selectorName)
}

// intervalIndex returns the position of the first bound strictly greater than val, or len(bounds) if there is none.
func intervalIndex(bounds []float64, val float64) int {
	for i, bound := range bounds {
		if bound > val {
			return i
		}
	}
	return len(bounds)
}

// intervalKeys returns the group key of each of the n+1 intervals defined by n bounds.
func intervalKeys(n int, labels []string) []interface{} {
	ret := make([]interface{}, n+1)
	for i := range ret {
		switch {
		case len(labels) > n:
			ret[i] = labels[i]
		case len(labels) == n && n > 0:
			if i < n {
				ret[i] = labels[i]
			} else {
				ret[i] = ">" + labels[n-1]
			}
		default:
			ret[i] = i
		}
	}
	return ret
}

func isSorted(vals []float64) bool {
	for i := 1; i < len(vals); i++ {
		if vals[i] < vals[i-1] {
			return false
		}
	}
	return true
}

func resample(t time.Time, by Resampler) time.Time {
	t = t.In(by.Location)
	if by.ByYear {
		return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, by.Location)
	} else if by.ByMonth {
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, by.Location)
	} else if by.ByDay {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, by.Location)
	} else if by.ByWeek {
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, by.Location)
		daysSinceStartOfWeek := day.Weekday() - by.StartOfWeek
		if daysSinceStartOfWeek >= 0 {
			// subtract days back to beginning of week
			return day.AddDate(0, 0, int(daysSinceStartOfWeek)*-1)
		}
		// add days to get to start of new week, then subtract a full week
		return day.AddDate(0, 0, (int(daysSinceStartOfWeek)*-1)-7)
	}
	return t.Truncate(by.ByDuration)
}


// hashable reports whether v can be used as a map key without panicking.
// Unlike reflect.Type.Comparable, it also inspects the dynamic values held in interfaces, arrays, and structs.
func hashable(v interface{}) bool {
	if v == nil {
		return true
	}
	return hashableValue(reflect.ValueOf(v))
}

func hashableValue(v reflect.Value) bool {
	if !v.Type().Comparable() {
		return false
	}
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return true
		}
		return hashableValue(v.Elem())
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if !hashableValue(v.Index(i)) {
				return false
			}
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if !hashableValue(v.Field(i)) {
				return false
			}
		}
	}
	return true
}

// hashKey returns the map key under which v is stored.
// Top-level NaNs share one key per float size, and unhashable values are keyed by their type and Go-syntax representation.
// All other values are their own key.
func hashKey(v interface{}) interface{} {
	switch f := v.(type) {
	case float64:
		if math.IsNaN(f) {
			return nanKey{bits: 64}
		}
	case float32:
		if math.IsNaN(float64(f)) {
			return nanKey{bits: 32}
		}
	}
	if !hashable(v) {
		return unhashableKey(fmt.Sprintf("%T %#v", v, v))
	}
	return v
}
