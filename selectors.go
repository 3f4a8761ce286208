package dataship

import "fmt"

// Col returns a Selector that reads the field `name` from each row, labeled `name`.
// A row without the field selects nil.
func Col(name string) Selector {
	return Selector{
		name: name,
		fn: func(row Row) interface{} {
			return row[name]
		},
	}
}

// Func returns a Selector that evaluates `fn` on each row, labeled `name` (which may be empty).
func Func(name string, fn func(Row) interface{}) Selector {
	return Selector{name: name, fn: fn}
}

// Name returns the display label carried by the Selector, if any.
func (s Selector) Name() string {
	return s.name
}

// Select evaluates the Selector on `row`.
func (s Selector) Select(row Row) interface{} {
	return s.fn(row)
}

// Rename returns a copy of the Selector with a new display label.
func (s Selector) Rename(name string) Selector {
	s.name = name
	return s
}

// resolveSelector normalizes a field name or row function into a Selector.
func resolveSelector(v interface{}) (Selector, error) {
	switch sel := v.(type) {
	case string:
		return Col(sel), nil
	case Selector:
		if sel.fn == nil {
			return Selector{}, fmt.Errorf("empty Selector (use Col() or Func())")
		}
		return sel, nil
	case *Selector:
		if sel == nil || sel.fn == nil {
			return Selector{}, fmt.Errorf("empty Selector (use Col() or Func())")
		}
		return *sel, nil
	case func(Row) interface{}:
		if sel == nil {
			return Selector{}, fmt.Errorf("nil function")
		}
		return Func("", sel), nil
	case func(map[string]interface{}) interface{}:
		if sel == nil {
			return Selector{}, fmt.Errorf("nil function")
		}
		return Func("", func(row Row) interface{} { return sel(row) }), nil
	}
	return Selector{}, fmt.Errorf("unsupported selector (%T); must be field name, Selector, or func(Row) interface{}", v)
}
