package tree

import (
	"reflect"
	"testing"
)

func TestAccessorsAreTotal(t *testing.T) {
	var nilMap map[string]any

	if GetMap(nilMap, "x") != nil {
		t.Error("GetMap on nil map should return nil")
	}
	if GetString(nilMap, "x") != "" {
		t.Error("GetString on nil map should return empty string")
	}
	if GetSlice(nilMap, "x") != nil {
		t.Error("GetSlice on nil map should return nil")
	}
	if Has(nilMap, "x") {
		t.Error("Has on nil map should be false")
	}

	m := map[string]any{
		"name":   "web",
		"count":  3,
		"nested": map[string]any{"a": 1},
		"list":   []any{"x", "y"},
		"null":   nil,
	}
	if GetString(m, "count") != "" {
		t.Error("GetString on non-string should return empty string")
	}
	if GetMap(m, "name") != nil {
		t.Error("GetMap on string value should return nil")
	}
	if GetMap(m, "null") != nil {
		t.Error("GetMap on null value should return nil")
	}
	if !Has(m, "null") {
		t.Error("Has should see explicit nulls")
	}
	if got := GetStringOr(m, "missing", "fallback"); got != "fallback" {
		t.Errorf("GetStringOr = %q, want fallback", got)
	}
}

func TestIntHandlesDecoderTypes(t *testing.T) {
	// yaml.v3 yields int, encoding/json yields float64.
	cases := []struct {
		in   any
		want int
		ok   bool
	}{
		{3, 3, true},
		{int64(8080), 8080, true},
		{float64(42), 42, true},
		{"80", 0, false},
		{nil, 0, false},
	}
	for _, c := range cases {
		got, ok := Int(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("Int(%v) = (%d, %v), want (%d, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestKeysSorted(t *testing.T) {
	m := map[string]any{"web": 1, "api": 2, "database": 3}
	want := []string{"api", "database", "web"}
	if got := Keys(m); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys = %v, want %v", got, want)
	}
	if Keys(nil) != nil {
		t.Error("Keys(nil) should be nil")
	}
}

func TestScalar(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{"80:80", "80:80"},
		{8080, "8080"},
		{float64(8080), "8080"},
		{1.5, "1.5"},
		{true, "true"},
		{nil, ""},
		{map[string]any{}, ""},
	}
	for _, c := range cases {
		if got := Scalar(c.in); got != c.want {
			t.Errorf("Scalar(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestStrings(t *testing.T) {
	got := Strings([]any{"a", 80, nil, map[string]any{}, "b"})
	want := []string{"a", "80", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Strings = %v, want %v", got, want)
	}

	if got := Strings("solo"); !reflect.DeepEqual(got, []string{"solo"}) {
		t.Errorf("Strings on bare scalar = %v", got)
	}
	if Strings(nil) != nil {
		t.Error("Strings(nil) should be nil")
	}
}

func TestCount(t *testing.T) {
	if Count(map[string]any{"a": 1, "b": 2}) != 2 {
		t.Error("Count on map")
	}
	if Count([]any{1, 2, 3}) != 3 {
		t.Error("Count on slice")
	}
	if Count("scalar") != 0 || Count(nil) != 0 {
		t.Error("Count on scalar should be 0")
	}
}
