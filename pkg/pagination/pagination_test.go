package pagination

import "testing"

func TestNormalizeDefaults(t *testing.T) {
	p := Normalize(Params{})
	if p.Page != 1 {
		t.Fatalf("expected page 1, got %d", p.Page)
	}
	if p.Limit != DefaultLimit {
		t.Fatalf("expected limit %d, got %d", DefaultLimit, p.Limit)
	}
}

func TestNormalizeKeepsLargeLimit(t *testing.T) {
	p := Normalize(Params{Page: 2, Limit: 500})
	if p.Limit != 500 {
		t.Fatalf("expected uncapped limit 500, got %d", p.Limit)
	}
}

func TestNormalizeCapped(t *testing.T) {
	p := NormalizeCapped(Params{Page: 1, Limit: 500})
	if p.Limit != MaxLimit {
		t.Fatalf("expected limit capped to %d, got %d", MaxLimit, p.Limit)
	}
}

func TestOffset(t *testing.T) {
	cases := []struct {
		page, limit, want int
	}{
		{1, 25, 0},
		{2, 25, 25},
		{4, 10, 30},
		{0, 10, 0},
	}
	for _, tc := range cases {
		got := Params{Page: tc.page, Limit: tc.limit}.Offset()
		if got != tc.want {
			t.Fatalf("page=%d limit=%d: expected offset %d, got %d", tc.page, tc.limit, tc.want, got)
		}
	}
}
