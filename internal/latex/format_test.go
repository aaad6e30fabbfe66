package latex

import (
	"errors"
	"testing"
)

func TestFormatPhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"123-456-7890", "(123) 456-7890"},
		{"1234567890", "(123) 456-7890"},
		{"(123) 456 7890", "(123) 456-7890"},
		{"12345", "12345"},
		{"+44 20 7946 0958", "+44 20 7946 0958"},
		{"", ""},
		{"not a number", "not a number"},
	}
	for _, tc := range cases {
		if got := FormatPhone(tc.in); got != tc.want {
			t.Errorf("FormatPhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2020-01-15", "Jan 2020"},
		{"2023-12-01", "Dec 2023"},
		{"2021-06-30T00:00:00Z", "Jun 2021"},
		{"2019-03", "Mar 2019"},
	}
	for _, tc := range cases {
		got, err := FormatDate(tc.in)
		if err != nil {
			t.Errorf("FormatDate(%q) returned error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDateInvalid(t *testing.T) {
	for _, in := range []string{"", "soon", "15/01/2020", "Present"} {
		if _, err := FormatDate(in); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("FormatDate(%q) err = %v, want ErrInvalidDate", in, err)
		}
	}
}
