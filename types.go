// Package dataship groups and aggregates in-memory tabular data in a single pass.
//
// A Dataset is an ordered slice of Rows, and a Row maps field names to scalar values
// (numbers, strings, or time.Time). GroupBy walks a Dataset exactly once,
// assigning every row to a group with a grouper and folding the row's selected value
// into that group's running aggregate with a Reducer.
//
// Some notable features of dataship:
//
// * groupers and selectors may be field names or functions, and carry a display label
//
// * stateless reducers (count, sum, mean, min, max, first, last) add no per-group overhead
//
// * stateful reducers (mode, median, std, nunique) keep private per-group state owned by the engine
//
// * binning (Interval) and date truncation (Resample) groupers compose with GroupBy like any other grouper
//
// * results keep groups in the order they were first seen, and print as ASCII tables
package dataship

import "time"

// A Row is one record in a Dataset, keyed by field name.
type Row map[string]interface{}

// A Dataset is an ordered sequence of Rows.
// Rows in one Dataset are expected to share the same fields, but this is not validated.
type Dataset []Row

// A Selector maps a Row to a value, and may carry a display label.
// The zero Selector is invalid.
type Selector struct {
	name string
	fn   func(Row) interface{}
}

// A Reducer folds one value into a group's running aggregate.
//
// `n` is the number of values already folded into `agg` (0 on the first call when an initial value was supplied).
// `state` is the group's private auxiliary state as returned by the previous call for the same group (nil on the first call).
// Fold returns the new aggregate and the state to hand back on the group's next call.
type Reducer interface {
	Fold(agg, val interface{}, n int, state interface{}) (interface{}, interface{})
}

// A Seeder is a Reducer with a default initial aggregate,
// used by GroupBy whenever the caller does not supply one.
type Seeder interface {
	Initial() (interface{}, bool)
}

// ReduceFunc adapts a stateless fold to the Reducer interface.
type ReduceFunc func(agg, val interface{}, n int) interface{}

// reducer is a named Reducer with an optional default initial aggregate.
type reducer struct {
	name       string
	fold       func(agg, val interface{}, n int, state interface{}) (interface{}, interface{})
	initial    interface{}
	hasInitial bool
}

// A Result maps each group key to its final aggregate.
// Keys are kept in the order in which they were first encountered.
type Result struct {
	keys   []interface{}
	values []interface{}
	// position of each group, keyed by hashKey(key)
	index     map[interface{}]int
	keyName   string
	valueName string
}

// A ResultIterator iterates over the groups in a Result.
type ResultIterator struct {
	current int
	r       *Result
}

// A GroupOption configures GroupBy.
// Available group options: GroupOptionSelector, GroupOptionReducer, GroupOptionInitial.
type GroupOption func(*groupConfig)

// A groupConfig configures GroupBy.
// The default config selects the grouper's own value, reduces with Count, and supplies no initial aggregate.
type groupConfig struct {
	selector   interface{}
	reducer    Reducer
	initial    interface{}
	hasInitial bool
}

// groupState is the running aggregate of one group during a pass.
type groupState struct {
	agg   interface{}
	n     int
	state interface{}
}

// nanKey stands in for every NaN of one float size wherever a value is used as a map key.
type nanKey struct {
	bits int
}

// unhashableKey stands in for a value that would panic as a map key.
type unhashableKey string

// Resampler supplies logic for the Resample() grouper.
// Only the first `By` field that is set is used - any others are ignored
// (if `ByWeek` is selected, it may be modified by `StartOfWeek`).
// `ByYear` truncates the timestamp by year.
// `ByMonth` truncates the timestamp by month.
// `ByDay` truncates the timestamp by day.
// `ByWeek` returns the first day of the most recent week (starting on `StartOfWeek`) relative to timestamp.
// Otherwise, truncates the timestamp `ByDuration`.
// If `Location` is not provided, time.UTC is used as the default location.
type Resampler struct {
	ByYear      bool
	ByMonth     bool
	ByDay       bool
	ByWeek      bool
	StartOfWeek time.Weekday
	ByDuration  time.Duration
	Location    *time.Location
}
