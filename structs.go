package dataship

import (
	"fmt"
	"reflect"
)

// StructReader reads a slice of structs (or pointers to structs) into a Dataset, one Row per struct.
type StructReader struct {
	s interface{}
}

// NewStructReader returns a new reader for a slice of structs.
func NewStructReader(s interface{}) StructReader {
	return StructReader{s: s}
}

// Read reads the exported fields of every struct in the slice into a Row.
// If a "dataship" tag is present with the value "-", the field is skipped.
// If a "dataship" tag has any other value, the field is stored under the tag value.
// Otherwise, the field is stored under its exported name.
// Nil pointers in the slice are returned as empty Rows.
func (r StructReader) Read() (Dataset, error) {
	if r.s == nil {
		return nil, fmt.Errorf("reading struct slice: cannot be nil")
	}
	v := reflect.ValueOf(r.s)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Slice {
		return nil, fmt.Errorf("reading struct slice: must be reflect.Kind slice, not %s", v.Kind())
	}
	elemType := v.Type().Elem()
	isPtr := elemType.Kind() == reflect.Ptr
	if isPtr {
		elemType = elemType.Elem()
	}
	if elemType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("reading struct slice: elements must be reflect.Kind struct, not %s", elemType.Kind())
	}
	fields, names := structFields(elemType)
	ret := make(Dataset, v.Len())
	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		row := make(Row, len(fields))
		if isPtr {
			if elem.IsNil() {
				ret[i] = row
				continue
			}
			elem = elem.Elem()
		}
		for k, field := range fields {
			row[names[k]] = elem.Field(field).Interface()
		}
		ret[i] = row
	}
	return ret, nil
}

// structFields returns the index positions and row names of the exported fields in `t`.
func structFields(t reflect.Type) ([]int, []string) {
	fields := make([]int, 0, t.NumField())
	names := make([]string, 0, t.NumField())
	for k := 0; k < t.NumField(); k++ {
		field := t.Field(k)
		// is unexported field?
		if field.PkgPath != "" {
			continue
		}
		name := field.Tag.Get("dataship")
		if name == "-" {
			continue
		}
		if name == "" {
			name = field.Name
		}
		fields = append(fields, k)
		names = append(names, name)
	}
	return fields, names
}
