package core

import (
	"testing"
	"time"
)

func day(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestListFilterMatches(t *testing.T) {
	e := Expense{Owner: "u1", Title: "x", Amount: Money{Cents: 100}, Category: Food, Date: day(15)}

	cases := []struct {
		name string
		f    ListFilter
		want bool
	}{
		{"zero filter matches", ListFilter{}, true},
		{"category match", ListFilter{Category: Food}, true},
		{"category mismatch", ListFilter{Category: Health}, false},
		{"inside range", ListFilter{StartDate: day(10), EndDate: day(20)}, true},
		{"start inclusive", ListFilter{StartDate: day(15)}, true},
		{"end inclusive", ListFilter{EndDate: day(15)}, true},
		{"before start", ListFilter{StartDate: day(16)}, false},
		{"after end", ListFilter{EndDate: day(14)}, false},
		{"inverted range matches nothing", ListFilter{StartDate: day(20), EndDate: day(10)}, false},
	}
	for _, tc := range cases {
		if got := tc.f.Matches(e); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestListFilterValidate(t *testing.T) {
	if err := (ListFilter{Category: Food}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (ListFilter{}).Validate(); err != nil {
		t.Fatalf("zero filter should be valid, got %v", err)
	}
	if err := (ListFilter{Category: "Groceries"}).Validate(); err == nil {
		t.Fatalf("expected error for unknown category")
	}
}

func TestPageNormalize(t *testing.T) {
	cases := []struct {
		in   Page
		want Page
	}{
		{Page{Number: 2, Size: 5}, Page{Number: 2, Size: 5}},
		{Page{Number: 0, Size: 10}, Page{Number: 1, Size: 10}},
		{Page{Number: -3, Size: 0}, Page{Number: 1, Size: DefaultPageSize}},
		{Page{Number: 1, Size: 5000}, Page{Number: 1, Size: MaxPageSize}},
	}
	for i, tc := range cases {
		if got := tc.in.Normalize(); got != tc.want {
			t.Fatalf("case %d: expected %+v, got %+v", i, tc.want, got)
		}
	}

	p := Page{Number: 3, Size: 10}
	if p.Offset() != 20 {
		t.Fatalf("expected offset 20, got %d", p.Offset())
	}
}

func TestPageCount(t *testing.T) {
	cases := []struct {
		total, size, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
	}
	for _, tc := range cases {
		if got := PageCount(tc.total, tc.size); got != tc.want {
			t.Fatalf("PageCount(%d, %d): expected %d, got %d", tc.total, tc.size, tc.want, got)
		}
	}
}
