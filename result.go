package dataship

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/ptiger10/tablediff"
)

// Len returns the number of groups in the Result.
func (r *Result) Len() int {
	return len(r.keys)
}

// Keys returns the group keys in the order in which they were first encountered.
func (r *Result) Keys() []interface{} {
	ret := make([]interface{}, len(r.keys))
	copy(ret, r.keys)
	return ret
}

// Values returns the aggregates in the same order as Keys().
func (r *Result) Values() []interface{} {
	ret := make([]interface{}, len(r.values))
	copy(ret, r.values)
	return ret
}

// Get returns the aggregate for the group `key`, and whether the group exists.
// Any NaN finds the NaN group of the same float size.
func (r *Result) Get(key interface{}) (interface{}, bool) {
	pos, ok := r.index[hashKey(key)]
	if !ok {
		return nil, false
	}
	return r.values[pos], true
}

// Map returns a copy of the Result as a map from group key to aggregate.
// A NaN group is present in the map but, as with any NaN map key, cannot be looked up; use Get or IterRows instead.
func (r *Result) Map() map[interface{}]interface{} {
	ret := make(map[interface{}]interface{}, len(r.keys))
	for i, key := range r.keys {
		ret[key] = r.values[i]
	}
	return ret
}

// KeyName returns the label of the grouper that produced the Result, if any.
func (r *Result) KeyName() string {
	return r.keyName
}

// ValueName returns the label of the aggregated values, derived from the reducer and selector names.
func (r *Result) ValueName() string {
	return r.valueName
}

// SetNames changes the key and value labels in place and returns the Result.
func (r *Result) SetNames(keyName, valueName string) *Result {
	r.keyName = keyName
	r.valueName = valueName
	return r
}

// IterRows returns an iterator over the groups in the Result, in key order.
func (r *Result) IterRows() *ResultIterator {
	return &ResultIterator{current: -1, r: r}
}

// Next advances to the next group and returns false once there are none left.
func (iter *ResultIterator) Next() bool {
	iter.current++
	return iter.current < iter.r.Len()
}

// Key returns the current group key.
func (iter *ResultIterator) Key() interface{} {
	return iter.r.keys[iter.current]
}

// Value returns the current group's aggregate.
func (iter *ResultIterator) Value() interface{} {
	return iter.r.values[iter.current]
}

// ToCSV returns the Result as [][]string records: a header of [KeyName(), ValueName()],
// followed by one [key, aggregate] record per group.
// Nil values are rendered with the null string option, and time.Time values with the date format option.
func (r *Result) ToCSV() [][]string {
	ret := make([][]string, r.Len()+1)
	ret[0] = []string{r.keyName, r.valueName}
	for i, key := range r.keys {
		ret[i+1] = []string{toString(key), toString(r.values[i])}
	}
	return ret
}

// EqualsCSV converts the Result to csv records, compares them to `want`,
// and evaluates whether the stringified values match.
// If they do not match, returns a tablediff.Differences object that can be printed to isolate their differences.
func (r *Result) EqualsCSV(want [][]string) (bool, *tablediff.Differences, error) {
	for i := range want {
		if len(want[i]) != 2 {
			return false, nil, fmt.Errorf("EqualsCSV(): `want`: record %d: must have 2 fields, not %d", i, len(want[i]))
		}
	}
	diffs, eq := tablediff.Diff(r.ToCSV(), want)
	return eq, diffs, nil
}

// EqualsCSVFromString converts the Result to csv records, compares them to the csv read from `want`,
// and evaluates whether the two match.
func (r *Result) EqualsCSVFromString(want string) (bool, *tablediff.Differences, error) {
	reader := csv.NewReader(strings.NewReader(want))
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	records, err := reader.ReadAll()
	if err != nil {
		return false, nil, fmt.Errorf("EqualsCSVFromString(): %v", err)
	}
	return r.EqualsCSV(records)
}

// PrettyDiff compares the csv records of two Results and returns whether they are equal.
// If not, returns the differences between the two.
func PrettyDiff(got, want *Result) (bool, *tablediff.Differences) {
	diffs, eq := tablediff.Diff(got.ToCSV(), want.ToCSV())
	return eq, diffs
}

// String prints the Result as an ASCII table, truncated to the max rows option.
func (r *Result) String() string {
	data := r.ToCSV()
	header, rows := data[0], data[1:]
	if optionMaxRows > 0 && len(rows) > optionMaxRows {
		n := optionMaxRows / 2
		truncated := make([][]string, 0, 2*n+1)
		truncated = append(truncated, rows[:n]...)
		truncated = append(truncated, []string{"...", "..."})
		truncated = append(truncated, rows[len(rows)-n:]...)
		rows = truncated
	}
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetHeader(header)
	table.AppendBulk(rows)
	table.Render()
	return buf.String()
}
