package dataship

import (
	"fmt"
	"log"
	"time"
)

// GroupOptionSelector selects the value to aggregate in each row, as a field name, Selector, or func(Row) interface{}
// (default: the grouper itself).
func GroupOptionSelector(selector interface{}) GroupOption {
	return func(cfg *groupConfig) {
		cfg.selector = selector
	}
}

// GroupOptionReducer changes the Reducer used to aggregate each group (default: Count).
func GroupOptionReducer(r Reducer) GroupOption {
	return func(cfg *groupConfig) {
		cfg.reducer = r
	}
}

// GroupOptionInitial seeds every group's aggregate with `initial`.
// Without an initial value, each group's first value becomes its aggregate without being reduced.
// Reducers that derive their result from the number of values or from private state
// (Count, Mode, Median, Std, NUnique) ignore `initial`, but it still makes every value go through the reducer.
func GroupOptionInitial(initial interface{}) GroupOption {
	return func(cfg *groupConfig) {
		cfg.initial = initial
		cfg.hasInitial = true
	}
}

func defaultGroupConfig() *groupConfig {
	return &groupConfig{reducer: Count}
}

// GroupBy assigns every row in `data` to a group with `grouper`, and folds each row's selected value
// into its group's aggregate, in a single pass over `data`.
// `grouper` may be a field name, a Selector, or a func(Row) interface{}, and must return a comparable key.
// By default, GroupBy counts the rows in each group; see GroupOptionSelector, GroupOptionReducer, and GroupOptionInitial.
//
// If no initial value is supplied (either with GroupOptionInitial or by a Reducer that is also a Seeder),
// the first value seen for each group becomes that group's aggregate without invoking the Reducer.
// Groups appear in the Result in the order in which they are first encountered.
// Group keys are compared as Go map keys, except that every NaN key of the same float size falls into a single group.
// A key that cannot be used as a map key (including an array or struct holding a slice, map, or func) is an error.
func GroupBy(data Dataset, grouper interface{}, options ...GroupOption) (*Result, error) {
	cfg := defaultGroupConfig()
	for _, option := range options {
		option(cfg)
	}
	if cfg.reducer == nil {
		return nil, fmt.Errorf("GroupBy(): reducer cannot be nil")
	}
	group, err := resolveSelector(grouper)
	if err != nil {
		return nil, fmt.Errorf("GroupBy(): grouper: %v", err)
	}
	value := group
	if cfg.selector != nil {
		value, err = resolveSelector(cfg.selector)
		if err != nil {
			return nil, fmt.Errorf("GroupBy(): selector: %v", err)
		}
	}
	if !cfg.hasInitial {
		if seeder, ok := cfg.reducer.(Seeder); ok {
			cfg.initial, cfg.hasInitial = seeder.Initial()
		}
	}
	ret, err := groupby(data, group, value, cfg.reducer, cfg.initial, cfg.hasInitial)
	if err != nil {
		return nil, fmt.Errorf("GroupBy(): %v", err)
	}
	ret.keyName = group.name
	ret.valueName = valueName(cfg.reducer, value.name)
	return ret, nil
}

// groupby is the single pass behind GroupBy.
// Every group's auxiliary state lives in its own groupState and is handed to the reducer
// only while one of that group's rows is being folded.
func groupby(
	data Dataset, group, value Selector, r Reducer, initial interface{}, hasInitial bool) (*Result, error) {
	index := make(map[interface{}]int)
	orderedKeys := make([]interface{}, 0)
	groups := make([]*groupState, 0)
	for i, row := range data {
		key := group.fn(row)
		if !hashable(key) {
			return nil, fmt.Errorf("row %d: group key of type %T is not comparable", i, key)
		}
		val := value.fn(row)
		hk := hashKey(key)
		pos, ok := index[hk]
		if !ok {
			pos = len(groups)
			index[hk] = pos
			orderedKeys = append(orderedKeys, key)
			if !hasInitial {
				// first value seeds the group
				groups = append(groups, &groupState{agg: val, n: 1})
				continue
			}
			groups = append(groups, &groupState{agg: initial})
		}
		g := groups[pos]
		g.agg, g.state = r.Fold(g.agg, val, g.n, g.state)
		g.n++
	}
	values := make([]interface{}, len(groups))
	for i, g := range groups {
		values[i] = g.agg
	}
	return &Result{keys: orderedKeys, values: values, index: index}, nil
}

// Interval returns a grouper that bins the numeric value chosen by `selector` into one of len(bounds)+1 intervals:
// [-Inf, bounds[0]), [bounds[0], bounds[1]), ..., [bounds[n-1], +Inf).
// Each value falls into the interval of the first bound strictly greater than it, or the last interval if there is none.
// `bounds` must already be sorted in ascending order.
//
// Intervals are keyed by their int index, unless labels are supplied:
// if there are exactly len(bounds) labels, the final interval is keyed ">" + the last label;
// if there are more, interval i is keyed labels[i]; if there are fewer, labels are ignored.
// The returned grouper keeps the name of `selector`.
func Interval(selector interface{}, bounds []float64, labels ...string) (Selector, error) {
	sel, err := resolveSelector(selector)
	if err != nil {
		return Selector{}, fmt.Errorf("Interval(): %v", err)
	}
	if optionWarnings && !isSorted(bounds) {
		log.Print("Interval(): bounds are not sorted in ascending order; bins will not be contiguous")
	}
	bounds = append([]float64(nil), bounds...)
	keys := intervalKeys(len(bounds), labels)
	return Selector{
		name: sel.name,
		fn: func(row Row) interface{} {
			return keys[intervalIndex(bounds, toFloat64(sel.fn(row)))]
		},
	}, nil
}

// Resample returns a grouper that truncates the date chosen by `selector` as configured by `by`.
// Date strings are parsed in any recognizable format; values that are not dates resample to the zero time.Time.
// The returned grouper keeps the name of `selector`.
func Resample(selector interface{}, by Resampler) (Selector, error) {
	sel, err := resolveSelector(selector)
	if err != nil {
		return Selector{}, fmt.Errorf("Resample(): %v", err)
	}
	if !by.ByYear && !by.ByMonth && !by.ByDay && !by.ByWeek && by.ByDuration <= 0 {
		return Selector{}, fmt.Errorf("Resample(): must supply a `By` field")
	}
	if by.Location == nil {
		by.Location = time.UTC
	}
	return Selector{
		name: sel.name,
		fn: func(row Row) interface{} {
			t, ok := toDateTime(sel.fn(row))
			if !ok {
				return time.Time{}
			}
			return resample(t, by)
		},
	}, nil
}
