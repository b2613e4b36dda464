package catalog

import (
	"testing"

	"pawmart/models"
)

func makeProducts(n int) []models.Product {
	products := make([]models.Product, n)
	for i := range products {
		products[i] = models.Product{ID: int64(i + 1)}
	}
	return products
}

func ids(products []models.Product) []int64 {
	out := make([]int64, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewestWindow(t *testing.T) {
	cases := []struct {
		name  string
		total int
		want  []int64
	}{
		{"empty catalog", 0, []int64{}},
		{"single product", 1, []int64{}},
		{"two products", 2, []int64{2}},
		{"five products", 5, []int64{2, 3, 4, 5}},
		{"nine products", 9, []int64{2, 3, 4, 5, 6, 7, 8, 9}},
		{"twelve products", 12, []int64{5, 6, 7, 8, 9, 10, 11, 12}},
	}

	for _, tc := range cases {
		got := ids(NewestWindow(makeProducts(tc.total)))
		if !equalIDs(got, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestPopularWindow(t *testing.T) {
	cases := []struct {
		name  string
		total int
		want  []int64
	}{
		{"empty catalog", 0, []int64{}},
		{"under window", 3, []int64{1, 2, 3}},
		{"exact window", 4, []int64{1, 2, 3, 4}},
		{"over window", 10, []int64{1, 2, 3, 4}},
	}

	for _, tc := range cases {
		got := ids(PopularWindow(makeProducts(tc.total)))
		if !equalIDs(got, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}
