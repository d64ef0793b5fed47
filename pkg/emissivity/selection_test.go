package emissivity

import (
	"reflect"
	"testing"
)

func TestParseSelectionBasic(t *testing.T) {
	got := ParseSelection("1,2,1,3/")
	want := []Pair{{Lower: 1, Upper: 2}, {Lower: 1, Upper: 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseSelection(%q) = %v, want %v", "1,2,1,3/", got, want)
	}
}

func TestParseSelectionSinglePair(t *testing.T) {
	got := ParseSelection("1,5/")
	want := []Pair{{Lower: 1, Upper: 5}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseSelection(%q) = %v, want %v", "1,5/", got, want)
	}
}

func TestParseSelectionDropsTrailingOddToken(t *testing.T) {
	got := ParseSelection("1,2,3/")
	want := []Pair{{Lower: 1, Upper: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseSelection(%q) = %v, want %v (trailing odd token dropped)", "1,2,3/", got, want)
	}
}

func TestParseSelectionEmptyString(t *testing.T) {
	got := ParseSelection("")
	if len(got) != 0 {
		t.Errorf("ParseSelection(%q) = %v, want empty", "", got)
	}
}

func TestParseSelectionNoTrailingSlash(t *testing.T) {
	got := ParseSelection("2,1")
	want := []Pair{{Lower: 2, Upper: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseSelection(%q) = %v, want %v (trailing tokens flushed at end of string)", "2,1", got, want)
	}
}
