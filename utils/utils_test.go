package utils

import (
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, []string{}},
		{"dedupe case-insensitively", []string{"Beach", "beach", "BEACH"}, []string{"beach"}},
		{"trim and drop blanks", []string{"  hiking ", "", "   "}, []string{"hiking"}},
		{"first seen order", []string{"b", "a", "b", "c"}, []string{"b", "a", "c"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeTags(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("NormalizeTags(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestSplitTags(t *testing.T) {
	got := SplitTags("Beach, beach ,HIKING,,food")
	want := []string{"beach", "hiking", "food"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitTags = %v, want %v", got, want)
	}
	if got := SplitTags(""); len(got) != 0 {
		t.Fatalf("SplitTags(\"\") = %v", got)
	}
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		url       string
		wantPage  int
		wantLimit int
	}{
		{"/x", 1, 10},
		{"/x?page=3&limit=25", 3, 25},
		{"/x?page=0&limit=0", 1, 10},
		{"/x?page=-2&limit=1000", 1, 10},
		{"/x?page=abc&limit=xyz", 1, 10},
	}
	for _, tc := range tests {
		r := httptest.NewRequest("GET", tc.url, nil)
		page, limit := ParsePagination(r)
		if page != tc.wantPage || limit != tc.wantLimit {
			t.Errorf("%s: got %d/%d, want %d/%d", tc.url, page, limit, tc.wantPage, tc.wantLimit)
		}
	}
}
