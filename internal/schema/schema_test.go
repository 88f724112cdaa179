package schema

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

type scalarRecord struct {
	Name   string   `av:"Name,required"`
	Ratio  *float64 `av:"Ratio"`
	Count  *int64   `av:"Count"`
	Note   *string  `av:"Note"`
	Active bool     `av:"Active"`
}

type lineItem struct {
	Date  string   `av:"date,required"`
	Value *float64 `av:"value"`
}

type listRecord struct {
	Symbol string     `av:"symbol,required"`
	Items  []lineItem `av:"items,required"`
	Tags   []string   `av:"tags"`
}

type percentRecord struct {
	Ticker string   `av:"ticker,required"`
	Change *float64 `av:"change_percentage,percent"`
}

type timeRecord struct {
	Published time.Time `av:"time_published,required,compact"`
}

func TestDecodeScalars(t *testing.T) {
	payload := map[string]any{
		"Name":   "Apple Inc",
		"Ratio":  "27.5",
		"Count":  "1000000",
		"Note":   "hello",
		"Active": true,
	}
	var rec scalarRecord
	if err := Decode(payload, &rec); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if rec.Name != "Apple Inc" {
		t.Errorf("Name = %q", rec.Name)
	}
	if rec.Ratio == nil || *rec.Ratio != 27.5 {
		t.Errorf("Ratio = %v", rec.Ratio)
	}
	if rec.Count == nil || *rec.Count != 1000000 {
		t.Errorf("Count = %v", rec.Count)
	}
	if rec.Note == nil || *rec.Note != "hello" {
		t.Errorf("Note = %v", rec.Note)
	}
	if !rec.Active {
		t.Error("Active = false")
	}
}

func TestDecodeNoneSentinel(t *testing.T) {
	payload := map[string]any{
		"Name":  "x",
		"Ratio": "None",
		"Count": "None",
		"Note":  "None",
	}
	var rec scalarRecord
	if err := Decode(payload, &rec); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if rec.Ratio != nil {
		t.Errorf("Ratio = %v, want nil", *rec.Ratio)
	}
	if rec.Count != nil {
		t.Errorf("Count = %v, want nil", *rec.Count)
	}
	if rec.Note != nil {
		t.Errorf("Note = %q, want nil", *rec.Note)
	}
}

func TestDecodeMissingRequired(t *testing.T) {
	var rec scalarRecord
	err := Decode(map[string]any{"Ratio": "1.5"}, &rec)
	var derr *DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if derr.Record != "scalarRecord" {
		t.Errorf("Record = %q", derr.Record)
	}
	if derr.Path != "Name" {
		t.Errorf("Path = %q", derr.Path)
	}
	if derr.Reason != "missing required field" {
		t.Errorf("Reason = %q", derr.Reason)
	}
}

func TestDecodeRequiredNoneSentinel(t *testing.T) {
	// "None" on a required field is a failure, never a default.
	var rec scalarRecord
	err := Decode(map[string]any{"Name": "None"}, &rec)
	var derr *DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if derr.Path != "Name" {
		t.Errorf("Path = %q", derr.Path)
	}
}

func TestDecodeNumericCoercion(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		wantErr bool
	}{
		{"float from json number", map[string]any{"Name": "x", "Ratio": 3.25}, false},
		{"float from string", map[string]any{"Name": "x", "Ratio": "-3.25"}, false},
		{"float from garbage", map[string]any{"Name": "x", "Ratio": "abc"}, true},
		{"float from bool", map[string]any{"Name": "x", "Ratio": true}, true},
		{"int from string", map[string]any{"Name": "x", "Count": "42"}, false},
		{"int from whole number", map[string]any{"Name": "x", "Count": float64(42)}, false},
		{"int from fraction", map[string]any{"Name": "x", "Count": 42.5}, true},
		{"int from decimal string", map[string]any{"Name": "x", "Count": "42.5"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec scalarRecord
			err := Decode(tt.payload, &rec)
			if (err != nil) != tt.wantErr {
				t.Errorf("Decode err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecodeWrongScalarType(t *testing.T) {
	var rec scalarRecord
	if err := Decode(map[string]any{"Name": 12}, &rec); err == nil {
		t.Error("expected error for numeric Name")
	}
	if err := Decode(map[string]any{"Name": "x", "Active": "true"}, &rec); err == nil {
		t.Error("expected error for string Active")
	}
}

func TestDecodeNestedList(t *testing.T) {
	payload := map[string]any{
		"symbol": "IBM",
		"items": []any{
			map[string]any{"date": "2023-12-31", "value": "100"},
			map[string]any{"date": "2022-12-31", "value": "None"},
		},
		"tags": []any{"a", "b"},
	}
	var rec listRecord
	if err := Decode(payload, &rec); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(rec.Items) != 2 {
		t.Fatalf("len(Items) = %d", len(rec.Items))
	}
	if rec.Items[0].Value == nil || *rec.Items[0].Value != 100 {
		t.Errorf("Items[0].Value = %v", rec.Items[0].Value)
	}
	if rec.Items[1].Value != nil {
		t.Errorf("Items[1].Value = %v, want nil", *rec.Items[1].Value)
	}
	if !reflect.DeepEqual(rec.Tags, []string{"a", "b"}) {
		t.Errorf("Tags = %v", rec.Tags)
	}
}

func TestDecodeNestedErrorPath(t *testing.T) {
	payload := map[string]any{
		"symbol": "IBM",
		"items": []any{
			map[string]any{"date": "2023-12-31"},
			map[string]any{"value": "100"}, // missing required date
		},
	}
	var rec listRecord
	err := Decode(payload, &rec)
	var derr *DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if derr.Path != "items[1].date" {
		t.Errorf("Path = %q, want items[1].date", derr.Path)
	}
	if derr.Record != "listRecord" {
		t.Errorf("Record = %q", derr.Record)
	}
}

func TestParsePercent(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"-3.25%", -3.25, false},
		{"7%", 7.0, false},
		{"0.5%", 0.5, false},
		{"12.50%", 12.5, false},
		{"42", 42, false}, // sign optional
		{"abc", 0, true},
		{"%", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParsePercent(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePercent(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParsePercent(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDecodePercentField(t *testing.T) {
	var rec percentRecord
	payload := map[string]any{"ticker": "XYZ", "change_percentage": "-3.25%"}
	if err := Decode(payload, &rec); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if rec.Change == nil || *rec.Change != -3.25 {
		t.Errorf("Change = %v", rec.Change)
	}

	var bad percentRecord
	err := Decode(map[string]any{"ticker": "XYZ", "change_percentage": "abc"}, &bad)
	var derr *DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if derr.Path != "change_percentage" {
		t.Errorf("Path = %q", derr.Path)
	}
}

func TestParseCompactTime(t *testing.T) {
	got, err := ParseCompactTime("20240115T093000")
	if err != nil {
		t.Fatalf("ParseCompactTime: %v", err)
	}
	want := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	for _, bad := range []string{"2024-01-15", "20240115", "20240115T09300", "20240115T0930001", "not-a-timestamp"} {
		if _, err := ParseCompactTime(bad); err == nil {
			t.Errorf("ParseCompactTime(%q): expected error", bad)
		}
	}
}

func TestDecodeCompactTimeField(t *testing.T) {
	var rec timeRecord
	if err := Decode(map[string]any{"time_published": "20240115T093000"}, &rec); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if rec.Published.Hour() != 9 || rec.Published.Minute() != 30 {
		t.Errorf("Published = %v", rec.Published)
	}

	var bad timeRecord
	if err := Decode(map[string]any{"time_published": "2024-01-15"}, &bad); err == nil {
		t.Error("expected error for malformed timestamp")
	}
}

func TestDecodeTargetValidation(t *testing.T) {
	var rec scalarRecord
	if err := Decode(map[string]any{}, rec); err == nil {
		t.Error("expected error for non-pointer target")
	}
	var i int
	if err := Decode(map[string]any{}, &i); err == nil {
		t.Error("expected error for non-struct target")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	ratio := 27.5
	rec := listRecord{
		Symbol: "IBM",
		Items: []lineItem{
			{Date: "2023-12-31", Value: &ratio},
			{Date: "2022-12-31"},
		},
		Tags: []string{"x"},
	}

	encoded := Encode(rec)
	var decoded listRecord
	if err := Decode(encoded, &decoded); err != nil {
		t.Fatalf("Decode(Encode): %v", err)
	}
	if !reflect.DeepEqual(rec, decoded) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", decoded, rec)
	}
}

func TestEncodeSentinels(t *testing.T) {
	rec := scalarRecord{Name: "x"}
	encoded := Encode(rec)
	if encoded["Ratio"] != "None" {
		t.Errorf("Ratio = %v, want None", encoded["Ratio"])
	}
	if encoded["Count"] != "None" {
		t.Errorf("Count = %v, want None", encoded["Count"])
	}

	change := -3.25
	p := percentRecord{Ticker: "XYZ", Change: &change}
	encoded = Encode(p)
	if encoded["change_percentage"] != "-3.25%" {
		t.Errorf("change_percentage = %v", encoded["change_percentage"])
	}

	tr := timeRecord{Published: time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)}
	encoded = Encode(tr)
	if encoded["time_published"] != "20240115T093000" {
		t.Errorf("time_published = %v", encoded["time_published"])
	}
}

func TestDecodeIsPure(t *testing.T) {
	payload := map[string]any{
		"symbol": "IBM",
		"items":  []any{map[string]any{"date": "2023-12-31", "value": "1"}},
	}
	var a, b listRecord
	if err := Decode(payload, &a); err != nil {
		t.Fatal(err)
	}
	if err := Decode(payload, &b); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("repeated decode produced different records")
	}
}
