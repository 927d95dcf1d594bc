package layout

import (
	"reflect"
	"testing"
)

func TestPaginate(t *testing.T) {
	lines := []string{"a", "b", "c", "d", "e"}
	cases := []struct {
		page, per int
		want      []string
	}{
		{0, 2, lines},
		{1, 0, lines},
		{1, 2, []string{"a", "b"}},
		{2, 2, []string{"c", "d"}},
		{3, 2, []string{"e"}},
		{4, 2, []string{}},
		{1, 10, lines},
	}
	for _, tc := range cases {
		got := Paginate(lines, tc.page, tc.per)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Paginate(page=%d, per=%d) = %q, want %q", tc.page, tc.per, got, tc.want)
		}
	}
}

func TestPageCount(t *testing.T) {
	cases := []struct{ total, per, want int }{
		{0, 10, 1},
		{5, 0, 1},
		{5, 2, 3},
		{6, 2, 3},
		{1, 60, 1},
	}
	for _, tc := range cases {
		if got := PageCount(tc.total, tc.per); got != tc.want {
			t.Errorf("PageCount(%d, %d) = %d, want %d", tc.total, tc.per, got, tc.want)
		}
	}
}
