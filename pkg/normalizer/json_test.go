package normalizer

import (
	"reflect"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain json untouched",
			in:   `{"a":1}`,
			want: `{"a":1}`,
		},
		{
			name: "fenced json block",
			in:   "```json\n{\"a\":1}\n```",
			want: `{"a":1}`,
		},
		{
			name: "bare fences",
			in:   "```\n{\"a\":1}\n```",
			want: `{"a":1}`,
		},
		{
			name: "leading json word",
			in:   "json {\"a\":1}",
			want: `{"a":1}`,
		},
		{
			name: "leading JSON word uppercase",
			in:   "JSON\n{\"a\":1}",
			want: `{"a":1}`,
		},
		{
			name: "surrounding whitespace",
			in:   "  \n{\"a\":1}\n  ",
			want: `{"a":1}`,
		},
		{
			name: "jsonish prose survives",
			in:   "jsonish answer",
			want: "jsonish answer",
		},
		{
			name: "plain prose untouched",
			in:   "hello world",
			want: "hello world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.in)
			if got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"```json\n{\"a\":1}\n```",
		"json [1,2,3]",
		"hello world",
		"",
		"```json\njson {\"nested\": true}\n```",
	}

	for _, in := range inputs {
		once := Clean(in)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestNormalizeFencedRoundTrip(t *testing.T) {
	result := Normalize("```json\n{\"a\":1}\n```")

	if result.Malformed {
		t.Fatalf("expected parsed result, got malformed with raw %q", result.Raw)
	}

	want := map[string]interface{}{"a": float64(1)}
	if !reflect.DeepEqual(result.Value, want) {
		t.Errorf("Value = %v, want %v", result.Value, want)
	}
}

func TestNormalizeNonJSON(t *testing.T) {
	result := Normalize("hello world")

	if !result.Malformed {
		t.Fatal("expected malformed result")
	}

	payload, ok := result.Payload().(map[string]interface{})
	if !ok {
		t.Fatalf("Payload() = %T, want map", result.Payload())
	}
	if payload["error"] != "Invalid JSON response" {
		t.Errorf("error = %v, want %q", payload["error"], "Invalid JSON response")
	}
	if payload["raw_response"] != "hello world" {
		t.Errorf("raw_response = %v, want %q", payload["raw_response"], "hello world")
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	// Normalizing the cleaned text of a previous run gives the same result.
	inputs := []string{
		"```json\n{\"a\":1}\n```",
		"hello world",
		"[1, 2, 3]",
	}

	for _, in := range inputs {
		first := Normalize(in)
		second := Normalize(Clean(in))
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Normalize not stable for %q: %+v vs %+v", in, first, second)
		}
	}
}

func TestNormalizeArray(t *testing.T) {
	result := Normalize("```json\n[{\"id\":1}]\n```")
	if result.Malformed {
		t.Fatalf("expected parsed array, got malformed with raw %q", result.Raw)
	}
	arr, ok := result.Value.([]interface{})
	if !ok || len(arr) != 1 {
		t.Errorf("Value = %v, want one-element array", result.Value)
	}
}
