// Package pathlist encodes and decodes lists of filesystem paths stored in
// a single PATH-style environment variable.
//
// Two conventions exist in the wild. POSIX separates paths with a colon and
// has no quoting mechanism, so a colon can never appear inside a path.
// Windows separates paths with a semicolon and allows a path containing a
// semicolon to be wrapped in double quotes.
package pathlist

import (
	"fmt"
	"strings"

	"github.com/pgavlin/procenv/osstr"
)

// A Convention describes how a platform encodes a list of paths in a single
// string: the separator between entries and the quote character, if any,
// that allows an entry to contain the separator.
type Convention struct {
	// Separator terminates each entry.
	Separator byte

	// Quote wraps an entry that contains the separator. Zero if the
	// convention has no quoting mechanism.
	Quote byte
}

// Posix returns the colon-separated convention with no quoting.
func Posix() Convention {
	return Convention{Separator: ':'}
}

// Windows returns the semicolon-separated convention with double-quote
// quoting.
func Windows() Convention {
	return Convention{Separator: ';', Quote: '"'}
}

// A JoinError reports a path that cannot be represented as a single entry
// under a convention.
type JoinError struct {
	// Path is the offending path.
	Path osstr.String

	// Index is the position of the offending path in the input.
	Index int

	quoted bool
}

func (e *JoinError) Error() string {
	if e.quoted {
		return fmt.Sprintf("path %q contains a quote character and cannot appear in a path list", string(e.Path))
	}
	return fmt.Sprintf("path %q contains a separator and cannot appear in a path list", string(e.Path))
}

// Split parses s into its path entries. The result always contains at least
// one entry: an empty string holds a single empty path, and empty entries
// between, before, or after separators are preserved.
//
// Under a quoting convention, a separator inside a quoted region is part of
// the current entry, the quote characters themselves are not, and an
// unterminated quote is closed by the end of the input.
func (c Convention) Split(s osstr.String) []osstr.String {
	if c.Quote == 0 {
		parts := strings.Split(string(s), string(c.Separator))
		paths := make([]osstr.String, len(parts))
		for i, p := range parts {
			paths[i] = osstr.String(p)
		}
		return paths
	}

	var paths []osstr.String
	var entry strings.Builder
	inQuote := false
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case inQuote:
			if b == c.Quote {
				inQuote = false
			} else {
				entry.WriteByte(b)
			}
		case b == c.Quote:
			inQuote = true
		case b == c.Separator:
			paths = append(paths, osstr.String(entry.String()))
			entry.Reset()
		default:
			entry.WriteByte(b)
		}
	}
	return append(paths, osstr.String(entry.String()))
}

// Join encodes paths as a single path-list string. Empty paths are preserved
// as empty entries. Each path is validated in order: a path containing the
// quote character fails, and a path containing the separator fails unless
// the convention can quote it, in which case the entire path is quoted. The
// returned error reports the earliest offending path.
func (c Convention) Join(paths []osstr.String) (osstr.String, error) {
	var list strings.Builder
	for i, p := range paths {
		if i > 0 {
			list.WriteByte(c.Separator)
		}

		s := string(p)
		if c.Quote != 0 && strings.IndexByte(s, c.Quote) >= 0 {
			return "", &JoinError{Path: p, Index: i, quoted: true}
		}
		if strings.IndexByte(s, c.Separator) < 0 {
			list.WriteString(s)
			continue
		}
		if c.Quote == 0 {
			return "", &JoinError{Path: p, Index: i}
		}
		list.WriteByte(c.Quote)
		list.WriteString(s)
		list.WriteByte(c.Quote)
	}
	return osstr.String(list.String()), nil
}
