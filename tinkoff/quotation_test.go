package tinkoff

import (
	"encoding/json"
	"testing"
)

func TestQuotationUnmarshal(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{`{"units":"114","nano":250000000}`, 114.25},
		{`{"units":114,"nano":250000000}`, 114.25},
		{`{"units":"-3","nano":-40000000}`, -3.04},
		{`{"units":"0","nano":0}`, 0},
		{`{"nano":500000000}`, 0.5},
	}
	for _, tt := range tests {
		var q quotation
		if err := json.Unmarshal([]byte(tt.in), &q); err != nil {
			t.Errorf("Unmarshal(%s) unexpected error = %v", tt.in, err)
			continue
		}
		if got := q.float(); got != tt.want {
			t.Errorf("quotation(%s) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestQuotationExactDecimal(t *testing.T) {
	var q quotation
	if err := json.Unmarshal([]byte(`{"units":"1","nano":100000000}`), &q); err != nil {
		t.Fatal(err)
	}
	if got := q.decimal().String(); got != "1.1" {
		t.Errorf("decimal() = %s, want 1.1", got)
	}
}

func TestInt64StringUnmarshal(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{`"10"`, 10},
		{`10`, 10},
		{`"-2"`, -2},
		{`""`, 0},
	}
	for _, tt := range tests {
		var v int64String
		if err := json.Unmarshal([]byte(tt.in), &v); err != nil {
			t.Errorf("Unmarshal(%s) unexpected error = %v", tt.in, err)
			continue
		}
		if int64(v) != tt.want {
			t.Errorf("int64String(%s) = %d, want %d", tt.in, v, tt.want)
		}
	}
}
