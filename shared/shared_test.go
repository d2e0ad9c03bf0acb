package shared_test

import (
	"math"
	"reflect"
	"testing"

	"lifecare/shared"
	"lifecare/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "valid 0 string",
			input:    "0",
			expected: boolPtr(false),
		},
		{
			name:     "valid t string",
			input:    "t",
			expected: boolPtr(true),
		},
		{
			name:     "valid f string",
			input:    "f",
			expected: boolPtr(false),
		},
		{
			name:     "valid T string",
			input:    "T",
			expected: boolPtr(true),
		},
		{
			name:     "valid F string",
			input:    "F",
			expected: boolPtr(false),
		},
		{
			name:     "valid TRUE string",
			input:    "TRUE",
			expected: boolPtr(true),
		},
		{
			name:     "valid FALSE string",
			input:    "FALSE",
			expected: boolPtr(false),
		},
		{
			name:     "invalid string returns nil",
			input:    "invalid",
			expected: nil,
		},
		{
			name:     "random string returns nil",
			input:    "random",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}
			} else {
				if result == nil {
					t.Errorf("expected %v, got nil", *tt.expected)
				} else if *result != *tt.expected {
					t.Errorf("expected %v, got %v", *tt.expected, *result)
				}
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "negative limit returns 1",
			total:    100,
			limit:    -5,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "division with remainder",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "single item",
			total:    1,
			limit:    10,
			expected: 1,
		},
		{
			name:     "limit equals total",
			total:    10,
			limit:    10,
			expected: 1,
		},
		{
			name:     "limit greater than total",
			total:    5,
			limit:    10,
			expected: 1,
		},
		{
			name:     "large numbers",
			total:    1000000,
			limit:    7,
			expected: 142858,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{name: "single part", parts: []string{"cms"}, expected: "cms"},
		{name: "multiple parts", parts: []string{"cms", "doctors", "doctors?sort=order:asc"}, expected: "cms:doctors:doctors?sort=order:asc"},
		{name: "empty parts are skipped", parts: []string{"cms", "", "blogs"}, expected: "cms:blogs"},
		{name: "no parts", parts: nil, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.BuildCacheKey(tt.parts...); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name          string
		params        dto.QueryParams
		expectedItems []int
		expectedMeta  dto.Pagination
	}{
		{
			name:          "first page",
			params:        dto.QueryParams{Page: 1, Limit: 3},
			expectedItems: []int{1, 2, 3},
			expectedMeta:  dto.Pagination{Page: 1, Limit: 3, Total: 7, TotalPage: 3},
		},
		{
			name:          "last partial page",
			params:        dto.QueryParams{Page: 3, Limit: 3},
			expectedItems: []int{7},
			expectedMeta:  dto.Pagination{Page: 3, Limit: 3, Total: 7, TotalPage: 3},
		},
		{
			name:          "page past the end",
			params:        dto.QueryParams{Page: 5, Limit: 3},
			expectedItems: []int{},
			expectedMeta:  dto.Pagination{Page: 5, Limit: 3, Total: 7, TotalPage: 3},
		},
		{
			name:          "page large enough to overflow the offset",
			params:        dto.QueryParams{Page: 1 << 62, Limit: 4},
			expectedItems: []int{},
			expectedMeta:  dto.Pagination{Page: 1 << 62, Limit: 4, Total: 7, TotalPage: 2},
		},
		{
			name:          "limit near max int on the second page",
			params:        dto.QueryParams{Page: 2, Limit: math.MaxInt},
			expectedItems: []int{},
			expectedMeta:  dto.Pagination{Page: 2, Limit: math.MaxInt, Total: 7, TotalPage: 1},
		},
		{
			name:          "no limit returns everything",
			params:        dto.QueryParams{},
			expectedItems: items,
			expectedMeta:  dto.Pagination{Total: 7, TotalPage: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, meta := shared.Paginate(items, tt.params)

			if !reflect.DeepEqual(got, tt.expectedItems) {
				t.Errorf("expected items %v, got %v", tt.expectedItems, got)
			}

			if meta != tt.expectedMeta {
				t.Errorf("expected meta %+v, got %+v", tt.expectedMeta, meta)
			}
		})
	}
}

func TestPaginate_EmptyItems(t *testing.T) {
	got, meta := shared.Paginate([]int{}, dto.QueryParams{Page: 1, Limit: 4})

	if len(got) != 0 {
		t.Errorf("expected no items, got %v", got)
	}

	if meta.TotalPage != 1 {
		t.Errorf("expected one total page, got %d", meta.TotalPage)
	}
}

// Helper functions for creating pointers
func boolPtr(b bool) *bool {
	return &b
}
