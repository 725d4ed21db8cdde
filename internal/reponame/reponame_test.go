package reponame_test

import (
	"testing"

	"deptrack-core/internal/reponame"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		fullname string
		want     string
	}{
		{"plain name", "acme/app", "acme:app"},
		{"name with dot", "acme/app.js", "acme:app~js"},
		{"dotted owner", "acme.io/app", "acme~io:app"},
		{"branch suffix", "acme/app/release-1.0", "acme:app:release-1~0"},
		{"hyphens untouched", "acme-corp/my-app", "acme-corp:my-app"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reponame.Encode(tt.fullname); got != tt.want {
				t.Errorf("Encode(%q) = %q, want %q", tt.fullname, got, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"plain token", "acme:app", "acme/app"},
		{"token with tilde", "acme:app~js", "acme/app.js"},
		{"nonsense token decodes anyway", "::~~", "//.."},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reponame.Decode(tt.token); got != tt.want {
				t.Errorf("Decode(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	fullnames := []string{
		"acme/app",
		"acme/app.js",
		"dot.ted.owner/dot.ted.name",
		"a/b",
		"owner-1/repo-2.x",
		"acme/app/develop",
	}

	for _, fullname := range fullnames {
		if got := reponame.Decode(reponame.Encode(fullname)); got != fullname {
			t.Errorf("Decode(Encode(%q)) = %q, want identity", fullname, got)
		}
	}
}
