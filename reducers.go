package dataship

import "math"

// Fold calls fn and hands `state` back unchanged.
func (fn ReduceFunc) Fold(agg, val interface{}, n int, state interface{}) (interface{}, interface{}) {
	return fn(agg, val, n), state
}

// NewReducer names a stateless fold.
// The name prefixes the value label of any Result it produces (e.g., "sum_Rating").
func NewReducer(name string, fn ReduceFunc) Reducer {
	return reducer{name: name, fold: fn.Fold}
}

// NewStatefulReducer names a fold that keeps private per-group state.
// `fold` receives nil state on its first call for each group, and whatever it returned on every call after that.
// State is never shared between groups.
func NewStatefulReducer(
	name string, fold func(agg, val interface{}, n int, state interface{}) (interface{}, interface{})) Reducer {
	return reducer{name: name, fold: fold}
}

// Fold satisfies the Reducer interface.
func (r reducer) Fold(agg, val interface{}, n int, state interface{}) (interface{}, interface{}) {
	return r.fold(agg, val, n, state)
}

// Initial returns the reducer's default initial aggregate, if any.
func (r reducer) Initial() (interface{}, bool) {
	return r.initial, r.hasInitial
}

func (r reducer) String() string {
	return r.name
}

// Count counts the values in each group, starting from 0.
var Count Reducer = reducer{
	name: "count",
	fold: ReduceFunc(func(agg, val interface{}, n int) interface{} {
		return n + 1
	}).Fold,
	initial:    0,
	hasInitial: true,
}

// Sum adds the values in each group as float64.
var Sum = NewReducer("sum", func(agg, val interface{}, n int) interface{} {
	return toFloat64(agg) + toFloat64(val)
})

// Mean keeps a running arithmetic mean of the values in each group.
var Mean = NewReducer("mean", func(agg, val interface{}, n int) interface{} {
	mean := toFloat64(agg)
	return mean + (toFloat64(val)-mean)/float64(n+1)
})

// Min keeps the smallest value in each group.
// Times compare chronologically, non-numeric strings lexically, and all other values numerically.
var Min = NewReducer("min", func(agg, val interface{}, n int) interface{} {
	if compareValues(val, agg) < 0 {
		return val
	}
	return agg
})

// Max keeps the largest value in each group, comparing values in the same way as Min.
var Max = NewReducer("max", func(agg, val interface{}, n int) interface{} {
	if compareValues(val, agg) > 0 {
		return val
	}
	return agg
})

// First keeps the first value in each group.
var First = NewReducer("first", func(agg, val interface{}, n int) interface{} {
	return agg
})

// Last keeps the most recent value in each group.
var Last = NewReducer("last", func(agg, val interface{}, n int) interface{} {
	return val
})

// Mode keeps the most frequent value in each group.
// On a tie, the first value to reach the winning frequency is kept.
// NaNs count as one value, and slices, maps, and other unhashable values are told apart by their contents.
var Mode = NewStatefulReducer("mode", foldMode)

// Median keeps the median of the values in each group as float64.
var Median = NewStatefulReducer("median", foldMedian)

// Std keeps the population standard deviation of the values in each group as float64, starting from 0.
var Std Reducer = reducer{name: "std", fold: foldStd, initial: 0.0, hasInitial: true}

// NUnique counts the distinct values in each group, starting from 0.
// Values are told apart in the same way as Mode.
var NUnique Reducer = reducer{name: "nunique", fold: foldNUnique, initial: 0, hasInitial: true}

type modeState struct {
	counts    map[interface{}]int
	best      interface{}
	bestCount int
}

func foldMode(agg, val interface{}, n int, state interface{}) (interface{}, interface{}) {
	st, _ := state.(*modeState)
	if st == nil {
		st = &modeState{counts: make(map[interface{}]int)}
		if n > 0 {
			// agg is still the group's seed value
			st.counts[hashKey(agg)] = 1
			st.best, st.bestCount = agg, 1
		}
	}
	k := hashKey(val)
	st.counts[k]++
	if c := st.counts[k]; c > st.bestCount {
		st.best, st.bestCount = val, c
	}
	return st.best, st
}

type medianState struct {
	sorted []float64
}

func foldMedian(agg, val interface{}, n int, state interface{}) (interface{}, interface{}) {
	st, _ := state.(*medianState)
	if st == nil {
		st = &medianState{}
		if n > 0 {
			st.sorted = []float64{toFloat64(agg)}
		}
	}
	st.sorted = Insert(st.sorted, toFloat64(val))
	return sortedMedian(st.sorted), st
}

// Welford's online algorithm
type stdState struct {
	count float64
	mean  float64
	m2    float64
}

func foldStd(agg, val interface{}, n int, state interface{}) (interface{}, interface{}) {
	st, _ := state.(*stdState)
	if st == nil {
		st = &stdState{}
		if n > 0 {
			st.count, st.mean = 1, toFloat64(agg)
		}
	}
	x := toFloat64(val)
	st.count++
	delta := x - st.mean
	st.mean += delta / st.count
	st.m2 += delta * (x - st.mean)
	return math.Sqrt(st.m2 / st.count), st
}

type nuniqueState map[interface{}]struct{}

func foldNUnique(agg, val interface{}, n int, state interface{}) (interface{}, interface{}) {
	st, _ := state.(nuniqueState)
	if st == nil {
		st = make(nuniqueState)
		if n > 0 {
			st[hashKey(agg)] = struct{}{}
		}
	}
	st[hashKey(val)] = struct{}{}
	return len(st), st
}
