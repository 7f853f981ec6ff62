package service

import "testing"

func TestNormalizePage(t *testing.T) {
	cases := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{1, 20, 1, 20},
		{0, 20, 1, 20},
		{-5, 20, 1, 20},
		{3, 0, 3, DefaultPageSize},
		{3, -1, 3, DefaultPageSize},
		{3, 101, 3, DefaultPageSize},
		{3, 100, 3, 100},
		{3, 1, 3, 1},
	}

	for _, tc := range cases {
		page, limit := NormalizePage(tc.page, tc.limit)
		if page != tc.wantPage || limit != tc.wantLimit {
			t.Errorf("NormalizePage(%d, %d) = (%d, %d), want (%d, %d)",
				tc.page, tc.limit, page, limit, tc.wantPage, tc.wantLimit)
		}
	}
}

func TestPageCount(t *testing.T) {
	cases := []struct {
		total, limit int
		want         int
	}{
		{0, 20, 0},
		{-1, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{45, 10, 5},
	}

	for _, tc := range cases {
		if got := PageCount(tc.total, tc.limit); got != tc.want {
			t.Errorf("PageCount(%d, %d) = %d, want %d", tc.total, tc.limit, got, tc.want)
		}
	}
}
