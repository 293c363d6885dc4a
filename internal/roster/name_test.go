package roster

import "testing"

func TestNameCompareOrdersByLastThenFirst(t *testing.T) {
	cases := []struct {
		name string
		a, b Name
		want int
	}{
		{
			name: "last name decides",
			a:    Name{First: "Zoe", Last: "Adams"},
			b:    Name{First: "Al", Last: "Baker"},
			want: -1,
		},
		{
			name: "first name breaks last-name tie",
			a:    Name{First: "Al", Last: "Smith"},
			b:    Name{First: "Zoe", Last: "Smith"},
			want: -1,
		},
		{
			name: "middle never participates",
			a:    Name{First: "Sally", Middle: "Anne", Last: "Smith"},
			b:    Name{First: "Sally", Middle: "Zed", Last: "Smith"},
			want: 0,
		},
		{
			name: "identical names compare equal",
			a:    Name{First: "Sally", Last: "Smith"},
			b:    Name{First: "Sally", Last: "Smith"},
			want: 0,
		},
	}
	for _, tc := range cases {
		got := tc.a.Compare(tc.b)
		if sign(got) != tc.want {
			t.Fatalf("%s: Compare(%v, %v) = %d, want sign %d", tc.name, tc.a, tc.b, got, tc.want)
		}
		if sign(tc.b.Compare(tc.a)) != -tc.want {
			t.Fatalf("%s: comparison is not antisymmetric", tc.name)
		}
	}
}

func TestNameString(t *testing.T) {
	full := Name{First: "Sally", Middle: "Anne", Last: "Smith"}
	if got := full.String(); got != "Smith, Sally Anne" {
		t.Fatalf("String() = %q, want %q", got, "Smith, Sally Anne")
	}
	short := Name{First: "Sally", Last: "Smith"}
	if got := short.String(); got != "Smith, Sally" {
		t.Fatalf("String() = %q, want %q", got, "Smith, Sally")
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
