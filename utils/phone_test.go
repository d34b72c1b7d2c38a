package utils

import "testing"

func TestRemoveNonNumeric(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"01012345678", "01012345678"},
		{"010-1234-5678", "01012345678"},
		{"+82 10 1234 5678", "821012345678"},
		{"abc", ""},
		{"", ""},
	}

	for _, tc := range cases {
		if got := RemoveNonNumeric(tc.in); got != tc.want {
			t.Errorf("RemoveNonNumeric(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
