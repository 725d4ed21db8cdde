// Package reponame encodes repository full names into URL-safe path tokens.
//
// GitHub full names ("owner/name") cannot be carried verbatim in a URL path
// segment, so the slash is swapped for a colon and literal dots for a tilde.
// The substitution is exactly reversible for names built from alphanumerics,
// hyphens, slashes and dots.
package reponame

import "strings"

const (
	slashToken = ":"
	dotToken   = "~"
)

// Encode converts a repository full name into a URL-safe token.
// It is total: any input yields a token.
func Encode(fullname string) string {
	encoded := strings.ReplaceAll(fullname, "/", slashToken)
	return strings.ReplaceAll(encoded, ".", dotToken)
}

// Decode converts a token produced by Encode back into a full name.
// Arbitrary tokens decode without error; a token that was never produced
// by Encode simply yields a name that matches no repository downstream.
func Decode(token string) string {
	decoded := strings.ReplaceAll(token, slashToken, "/")
	return strings.ReplaceAll(decoded, dotToken, ".")
}
