package manifest_test

import (
	"testing"

	"deptrack-core/internal/manifest"
)

func TestMatch(t *testing.T) {
	m := manifest.NewDefaultMatcher()

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"gemfile at root", "Gemfile", true},
		{"gemfile in subdir", "backend/Gemfile", true},
		{"package json", "package.json", true},
		{"nested pom", "services/billing/pom.xml", true},
		{"go mod", "go.mod", true},
		{"readme", "README.md", false},
		{"ruby source", "lib/foo.rb", false},
		{"partial name", "NotAGemfile.rb", false},
		{"empty path", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Match(tt.path); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestMatchAny(t *testing.T) {
	m := manifest.NewDefaultMatcher()

	if m.MatchAny([]string{"README.md", "lib/foo.rb"}) {
		t.Error("MatchAny() = true for paths with no manifest")
	}
	if !m.MatchAny([]string{"README.md", "Gemfile", "lib/foo.rb"}) {
		t.Error("MatchAny() = false for paths including Gemfile")
	}
	if m.MatchAny(nil) {
		t.Error("MatchAny(nil) = true")
	}
}

func TestCustomPatterns(t *testing.T) {
	m := manifest.NewMatcher([]string{"deps.edn"})

	if !m.Match("deps.edn") {
		t.Error("custom pattern not matched")
	}
	if m.Match("Gemfile") {
		t.Error("default pattern matched by custom matcher")
	}
}
