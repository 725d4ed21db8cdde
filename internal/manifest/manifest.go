// Package manifest recognizes dependency-manifest file paths in repositories.
package manifest

import "path"

// DefaultPatterns lists the manifest filenames recognized out of the box.
// The set is data, not logic: a Matcher built from a different slice tracks a
// different ecosystem mix without touching any detection code.
var DefaultPatterns = []string{
	"Gemfile",
	"Gemfile.lock",
	"gemspec",
	"package.json",
	"yarn.lock",
	"package-lock.json",
	"pom.xml",
	"build.gradle",
	"requirements.txt",
	"Pipfile",
	"go.mod",
	"go.sum",
	"Cargo.toml",
	"composer.json",
}

// Matcher decides whether a file path names a dependency manifest.
type Matcher struct {
	filenames map[string]struct{}
}

// NewMatcher creates a Matcher recognizing the given filenames.
// Matching is by base name, so "sub/dir/Gemfile" matches "Gemfile".
func NewMatcher(filenames []string) *Matcher {
	set := make(map[string]struct{}, len(filenames))
	for _, name := range filenames {
		set[name] = struct{}{}
	}
	return &Matcher{filenames: set}
}

// NewDefaultMatcher creates a Matcher recognizing DefaultPatterns.
func NewDefaultMatcher() *Matcher {
	return NewMatcher(DefaultPatterns)
}

// Match reports whether the path's base name is a recognized manifest file.
func (m *Matcher) Match(filePath string) bool {
	_, ok := m.filenames[path.Base(filePath)]
	return ok
}

// MatchAny reports whether any of the paths names a manifest file.
// It short-circuits on the first match.
func (m *Matcher) MatchAny(paths []string) bool {
	for _, p := range paths {
		if m.Match(p) {
			return true
		}
	}
	return false
}
