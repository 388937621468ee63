package catalog

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Gold Ring", "gold-ring"},
		{"  Nhẫn Vàng 18K  ", "nh-n-v-ng-18k"},
		{"Ring---Deluxe", "ring-deluxe"},
		{"UPPER", "upper"},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Fatalf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
