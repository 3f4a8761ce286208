package dataship

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// -- READERS

// -- [][]string records

// RecordReader reads [][]string records into a Dataset.
// The first record holds the field names, and every record after it becomes one Row.
type RecordReader struct {
	// InferDates parses cells that are neither null nor numeric as time.Time where possible.
	InferDates bool
	records    [][]string
}

// NewRecordReader returns a default RecordReader.
func NewRecordReader(records [][]string) RecordReader {
	return RecordReader{
		InferDates: true,
		records:    records,
	}
}

// Read reads [][]string records to a Dataset.
// Each cell is stored as nil (if it is a null string such as "" or "n/a"), float64 (if it parses as a number),
// time.Time (if InferDates is true and it parses as a date), or otherwise string.
func (r RecordReader) Read() (Dataset, error) {
	if len(r.records) == 0 {
		return nil, fmt.Errorf("reading records: must have at least one record")
	}
	header := r.records[0]
	if len(header) == 0 {
		return nil, fmt.Errorf("reading records: header cannot be empty")
	}
	ret := make(Dataset, len(r.records)-1)
	for i, record := range r.records[1:] {
		if len(record) != len(header) {
			return nil, fmt.Errorf("reading records: row %d: all rows must have same length as header (%d != %d)",
				i, len(record), len(header))
		}
		row := make(Row, len(header))
		for k, name := range header {
			row[name] = inferValue(record[k], r.InferDates)
		}
		ret[i] = row
	}
	return ret, nil
}

func inferValue(s string, inferDates bool) interface{} {
	if isNullString(s) {
		return nil
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return f
	}
	// every supported date layout has at least one digit
	if inferDates && strings.ContainsAny(s, "0123456789") {
		if t, ok := toDateTime(s); ok {
			return t
		}
	}
	return s
}

// -- encoding/csv

// CSVReader reads an encoding/csv.Reader into a Dataset.
type CSVReader struct {
	RecordReader
	*csv.Reader
}

// NewCSVReader creates a new CSVReader with embedded encoding/csv reader and default settings.
func NewCSVReader(r io.Reader) CSVReader {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	return CSVReader{
		RecordReader: RecordReader{InferDates: true},
		Reader:       reader,
	}
}

// Read reads all csv records and converts them to a Dataset in the same way as RecordReader.
func (r CSVReader) Read() (Dataset, error) {
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("CSVReader: %v", err)
	}
	r.records = records
	data, err := r.RecordReader.Read()
	if err != nil {
		return nil, fmt.Errorf("CSVReader: %v", err)
	}
	return data, nil
}

// -- WRITERS

// RecordWriter writes [][]string records from a Result.
type RecordWriter struct {
	// ExcludeHeader omits the [KeyName(), ValueName()] header record.
	ExcludeHeader bool
	records       [][]string
}

// NewRecordWriter returns a *RecordWriter with default settings.
func NewRecordWriter() *RecordWriter {
	return &RecordWriter{}
}

// Records returns the [][]string records written to w.
func (w RecordWriter) Records() [][]string {
	return w.records
}

// Write reduces a Result to [][]string and writes the result to w.
// Null values are replaced with the null string option.
func (w *RecordWriter) Write(r *Result) error {
	if r == nil {
		return fmt.Errorf("writing records: Result cannot be nil")
	}
	records := r.ToCSV()
	if w.ExcludeHeader {
		records = records[1:]
	}
	w.records = records
	return nil
}

// CSVWriter writes Result records into an encoding/csv.Writer.
type CSVWriter struct {
	RecordWriter
	*csv.Writer
}

// NewCSVWriter creates a new *CSVWriter with embedded encoding/csv.Writer and default settings.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{
		Writer: csv.NewWriter(w),
	}
}

// Write writes the Result's records and flushes the underlying csv.Writer.
func (w *CSVWriter) Write(r *Result) error {
	err := w.RecordWriter.Write(r)
	if err != nil {
		return fmt.Errorf("CSVWriter: %v", err)
	}
	return w.Writer.WriteAll(w.Records())
}
