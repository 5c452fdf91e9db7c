package entities

import (
	"encoding/json"
	"math"
	"testing"
)

func TestCoerceNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"   ", 0},
		{"2", 2},
		{" 12 ", 12},
		{"2.5", 2.5},
		{".5", 0.5},
		{"5.", 5},
		{"-3", -3},
		{"+4", 4},
		{"1e3", 1000},
		{"0x10", 16},
		{"0b101", 5},
		{"0o17", 15},
		{"Infinity", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
		{"1e400", math.Inf(1)},
	}
	for _, tc := range cases {
		if got := float64(CoerceNumber(tc.in)); got != tc.want {
			t.Fatalf("CoerceNumber(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	for _, in := range []string{"abc", "12abc", "1,5", "inf", "nan", "0xZZ", "-0x10", "1_000", "--1"} {
		if got := CoerceNumber(in); !got.IsNaN() {
			t.Fatalf("CoerceNumber(%q) = %v, want NaN", in, got)
		}
	}
}

func TestNumber_JSON(t *testing.T) {
	b, err := json.Marshal(struct {
		A Number `json:"a"`
		B Number `json:"b"`
		C Number `json:"c"`
	}{A: 200, B: Number(math.NaN()), C: 2.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `{"a":200,"b":null,"c":2.5}` {
		t.Fatalf("unexpected json: %s", b)
	}

	var n Number
	if err := json.Unmarshal([]byte("null"), &n); err != nil || !n.IsNaN() {
		t.Fatalf("expected NaN from null, got %v err=%v", n, err)
	}
	if err := json.Unmarshal([]byte("3"), &n); err != nil || n != 3 {
		t.Fatalf("expected 3, got %v err=%v", n, err)
	}
	if err := json.Unmarshal([]byte(`"3"`), &n); err == nil {
		t.Fatalf("expected error for string input")
	}
}
