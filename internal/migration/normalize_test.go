// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

package migration

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *string
	}{
		{"milliseconds utc", "2012-06-21T07:08:09.000Z", strPtr("2012-06-21T07:08:09Z")},
		{"milliseconds with offset", "2010-12-26T19:49:33.123-08:00", strPtr("2010-12-26T19:49:33-08:00")},
		{"already whole seconds", "2012-06-21T07:08:09Z", strPtr("2012-06-21T07:08:09Z")},
		{"malformed passes through", "yesterday", strPtr("yesterday")},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, NormalizeDate(tt.in)); diff != "" {
				t.Errorf("NormalizeDate(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestNormalizeState(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"closed", StateClosed},
		{"Closed", StateClosed},
		{"CLOSED", StateClosed},
		{"open", StateOpen},
		{"Open", StateOpen},
		{"", StateOpen},
		{"Fixed", StateOpen},
		{"closed ", StateOpen},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := NormalizeState(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeState(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if again := NormalizeState(got); again != got {
				t.Errorf("Expected NormalizeState to be idempotent, %q became %q", got, again)
			}
		})
	}
}

func TestCollapseSpace(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ascii runs", "  Crash   on\tstartup \r\n", "Crash on startup"},
		{"unicode spaces", "Crash\u00a0\u00a0on\u2003start ", "Crash on start"},
		{"only whitespace", " \u00a0\t", ""},
		{"unchanged", "Crash", "Crash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := collapseSpace(tt.in); got != tt.want {
				t.Errorf("collapseSpace(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestClassifyIdentity(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    *Identity
		wantRef *UserRef
	}{
		{"email", "a@example.com", &Identity{Kind: IdentityEmail, Value: "a@example.com"}, &UserRef{Email: "a@example.com"}},
		{"bare at sign", "@", &Identity{Kind: IdentityEmail, Value: "@"}, &UserRef{Email: "@"}},
		{"login", "ariya", &Identity{Kind: IdentityLogin, Value: "ariya"}, &UserRef{Login: "ariya"}},
		{"empty", "", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyIdentity(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ClassifyIdentity(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
			if diff := cmp.Diff(tt.wantRef, got.Ref()); diff != "" {
				t.Errorf("Ref() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
