package docs

import "testing"

func TestLocalName(t *testing.T) {
	cases := []struct {
		prefix string
		remote string
		out    string
	}{
		{"gitbook", "search", "gitbook_search"},
		{"gitbook", "get_page", "gitbook_get_page"},
		{"docs", "search", "docs_search"},
	}

	for i, tc := range cases {
		if got := LocalName(tc.prefix, tc.remote); got != tc.out {
			t.Fatalf("case %d: LocalName(%q, %q) = %q, want %q", i, tc.prefix, tc.remote, got, tc.out)
		}
	}
}

func TestRemoteName(t *testing.T) {
	cases := []struct {
		prefix string
		local  string
		out    string
		ok     bool
	}{
		{"gitbook", "gitbook_search", "search", true},
		{"gitbook", "gitbook_get_page", "get_page", true},
		{"gitbook", "get_token", "", false},
		{"gitbook", "gitbook", "", false},
	}

	for i, tc := range cases {
		got, ok := RemoteName(tc.prefix, tc.local)
		if got != tc.out || ok != tc.ok {
			t.Fatalf("case %d: RemoteName(%q, %q) = (%q, %v), want (%q, %v)", i, tc.prefix, tc.local, got, ok, tc.out, tc.ok)
		}
	}
}
