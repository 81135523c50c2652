package replitkv

import (
	"fmt"
	"net/url"
	"strings"
)

// Encode returns the percent-encoded form of s, as stored in the database.
//
// It uses form encoding, in which a space is encoded as '+'. Dots are also
// escaped, so that no encoded key is a "." or ".." path segment, which HTTP
// servers and proxies would resolve away. If s is empty or consists only of
// whitespace, it returns an empty string.
func Encode(s string) string {
	if isBlank(s) {
		return ""
	}
	return strings.ReplaceAll(url.QueryEscape(s), ".", "%2E")
}

// Decode returns the string represented by the percent-encoded string s.
//
// It is the inverse of [Encode]. If s is empty or consists only of whitespace,
// it returns an empty string. It returns an error if s contains a malformed
// escape sequence.
func Decode(s string) (string, error) {
	if isBlank(s) {
		return "", nil
	}

	v, err := url.QueryUnescape(s)
	if err != nil {
		return "", fmt.Errorf("unable to decode %q: %w", s, err)
	}

	return v, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
