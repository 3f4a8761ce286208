package dataship

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestRecordReader_Read(t *testing.T) {
	tests := []struct {
		name       string
		records    [][]string
		inferDates bool
		want       Dataset
		wantErr    bool
	}{
		{"pass", [][]string{{"Title", "Year", "Rating"}, {"The Matrix", "1999", "8.9"}, {"Fight Club", "1999", "n/a"}}, true,
			Dataset{
				{"Title": "The Matrix", "Year": 1999.0, "Rating": 8.9},
				{"Title": "Fight Club", "Year": 1999.0, "Rating": nil}},
			false},
		{"dates", [][]string{{"date"}, {"2020-01-02"}}, true,
			Dataset{{"date": time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)}},
			false},
		{"dates not inferred", [][]string{{"date"}, {"2020-01-02"}}, false,
			Dataset{{"date": "2020-01-02"}},
			false},
		{"header only", [][]string{{"foo"}}, true, Dataset{}, false},
		{"fail - no records", [][]string{}, true, nil, true},
		{"fail - empty header", [][]string{{}}, true, nil, true},
		{"fail - ragged", [][]string{{"foo", "bar"}, {"baz"}}, true, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRecordReader(tt.records)
			r.InferDates = tt.inferDates
			got, err := r.Read()
			if (err != nil) != tt.wantErr {
				t.Errorf("RecordReader.Read() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("RecordReader.Read() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCSVReader_Read(t *testing.T) {
	data := "Title, Year, Rating\nThe Matrix, 1999, 8.9\nFight Club, 1999, 8.7\nCasino Royale, 2006, 7.6"
	got, err := NewCSVReader(strings.NewReader(data)).Read()
	if err != nil {
		t.Fatalf("CSVReader.Read() error = %v", err)
	}
	want := Dataset{
		{"Title": "The Matrix", "Year": 1999.0, "Rating": 8.9},
		{"Title": "Fight Club", "Year": 1999.0, "Rating": 8.7},
		{"Title": "Casino Royale", "Year": 2006.0, "Rating": 7.6},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CSVReader.Read() = %v, want %v", got, want)
	}

	res, err := GroupBy(got, "Year")
	if err != nil {
		t.Fatalf("GroupBy() error = %v", err)
	}
	if want := map[interface{}]interface{}{1999.0: 2, 2006.0: 1}; !reflect.DeepEqual(res.Map(), want) {
		t.Errorf("GroupBy() = %v, want %v", res.Map(), want)
	}
}

func TestCSVReader_Read_fail(t *testing.T) {
	if _, err := NewCSVReader(strings.NewReader("foo, bar\nbaz")).Read(); err == nil {
		t.Errorf("CSVReader.Read() error = nil, want error")
	}
	if _, err := NewCSVReader(strings.NewReader("")).Read(); err == nil {
		t.Errorf("CSVReader.Read() error = nil, want error")
	}
}

func TestRecordWriter_Write(t *testing.T) {
	tests := []struct {
		name          string
		excludeHeader bool
		want          [][]string
	}{
		{"pass", false, [][]string{{"Region", "sum_Units"}, {"east", "7"}, {"west", "6.5"}, {"north", "(null)"}}},
		{"exclude header", true, [][]string{{"east", "7"}, {"west", "6.5"}, {"north", "(null)"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewRecordWriter()
			w.ExcludeHeader = tt.excludeHeader
			if err := w.Write(makeResult()); err != nil {
				t.Fatalf("RecordWriter.Write() error = %v", err)
			}
			if got := w.Records(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("RecordWriter.Write() -> %v, want %v", got, tt.want)
			}
		})
	}
	if err := NewRecordWriter().Write(nil); err == nil {
		t.Errorf("RecordWriter.Write(nil) error = nil, want error")
	}
}

func TestCSVWriter_Write(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVWriter(&buf)
	if err := w.Write(makeResult()); err != nil {
		t.Fatalf("CSVWriter.Write() error = %v", err)
	}
	want := "Region,sum_Units\neast,7\nwest,6.5\nnorth,(null)\n"
	if got := buf.String(); got != want {
		t.Errorf("CSVWriter.Write() -> %q, want %q", got, want)
	}
}
