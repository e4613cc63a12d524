package lib

import (
	"regexp"
	"strings"
)

var reValidID = regexp.MustCompile("^[a-zA-Z0-9][a-zA-Z0-9-_.]*$")

// IsValidID accepts album and photo identifiers as they appear in
// request paths and in the cache directory layout.
func IsValidID(s string) bool {
	if !reValidID.MatchString(s) {
		return false
	}
	if strings.Contains(s, "..") {
		return false
	}
	return true
}
