// Package osstr provides a string type for platform-native data such as
// environment variable values, process arguments, and filesystem paths.
//
// A String may contain arbitrary bytes: most platforms do not require
// environment data to be valid Unicode. Conversion to a strict Unicode
// string is fallible; conversion to and from raw bytes is lossless.
package osstr

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// String holds platform-native string data that is not necessarily valid
// Unicode.
type String string

// FromBytes returns a String holding a copy of b.
func FromBytes(b []byte) String {
	return String(b)
}

// Bytes returns the raw bytes of s. Round-tripping through FromBytes is
// lossless.
func (s String) Bytes() []byte {
	return []byte(s)
}

// Valid reports whether s is valid Unicode.
func (s String) Valid() bool {
	return utf8.ValidString(string(s))
}

// Unicode converts s to a strict Unicode string. It fails if s contains
// byte sequences that are not valid UTF-8.
func (s String) Unicode() (string, error) {
	if !s.Valid() {
		return "", fmt.Errorf("not valid unicode: %q", string(s))
	}
	return string(s), nil
}

// Lossy converts s to a Unicode string, replacing invalid byte sequences
// with the Unicode replacement character.
func (s String) Lossy() string {
	return strings.ToValidUTF8(string(s), string(utf8.RuneError))
}
