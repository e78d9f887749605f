package pathlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgavlin/procenv/osstr"
)

func paths(ss ...string) []osstr.String {
	out := make([]osstr.String, len(ss))
	for i, s := range ss {
		out[i] = osstr.String(s)
	}
	return out
}

func TestSplitPosix(t *testing.T) {
	cases := []struct {
		list     string
		expected []osstr.String
	}{
		{"", paths("")},
		{"::", paths("", "", "")},
		{"/", paths("/")},
		{"/:", paths("/", "")},
		{"/:/usr/local", paths("/", "/usr/local")},
		{":/bin:::/usr/bin:", paths("", "/bin", "", "", "/usr/bin", "")},
	}
	for _, c := range cases {
		t.Run(c.list, func(t *testing.T) {
			assert.Equal(t, c.expected, Posix().Split(osstr.String(c.list)))
		})
	}
}

func TestSplitWindows(t *testing.T) {
	cases := []struct {
		list     string
		expected []osstr.String
	}{
		{"", paths("")},
		{`""`, paths("")},
		{";;", paths("", "", "")},
		{`c:\`, paths(`c:\`)},
		{`c:\;`, paths(`c:\`, "")},
		{`c:\;c:\Program Files\`, paths(`c:\`, `c:\Program Files\`)},
		{`c:\;c:\"foo"\`, paths(`c:\`, `c:\foo\`)},
		{`c:\;c:\"foo;bar"\;c:\baz`, paths(`c:\`, `c:\foo;bar\`, `c:\baz`)},
		// An unterminated quote is closed by the end of the input.
		{`c:\;"c:\foo;bar`, paths(`c:\`, `c:\foo;bar`)},
	}
	for _, c := range cases {
		t.Run(c.list, func(t *testing.T) {
			assert.Equal(t, c.expected, Windows().Split(osstr.String(c.list)))
		})
	}
}

func TestJoinPosix(t *testing.T) {
	cases := []struct {
		paths    []osstr.String
		expected string
	}{
		{nil, ""},
		{paths("/bin", "/usr/bin", "/usr/local/bin"), "/bin:/usr/bin:/usr/local/bin"},
		{paths("", "/bin", "", "", "/usr/bin", ""), ":/bin:::/usr/bin:"},
	}
	for _, c := range cases {
		t.Run(c.expected, func(t *testing.T) {
			list, err := Posix().Join(c.paths)
			require.NoError(t, err)
			assert.Equal(t, osstr.String(c.expected), list)
		})
	}
}

func TestJoinPosixSeparator(t *testing.T) {
	_, err := Posix().Join(paths("/te:st"))
	require.Error(t, err)

	var joinErr *JoinError
	require.ErrorAs(t, err, &joinErr)
	assert.Equal(t, osstr.String("/te:st"), joinErr.Path)
	assert.Equal(t, 0, joinErr.Index)
}

func TestJoinWindows(t *testing.T) {
	cases := []struct {
		paths    []osstr.String
		expected string
	}{
		{nil, ""},
		{paths(`c:\windows`, `c:\`), `c:\windows;c:\`},
		{paths("", `c:\windows`, "", "", `c:\`, ""), `;c:\windows;;;c:\;`},
		{paths(`c:\te;st`, `c:\`), `"c:\te;st";c:\`},
	}
	for _, c := range cases {
		t.Run(c.expected, func(t *testing.T) {
			list, err := Windows().Join(c.paths)
			require.NoError(t, err)
			assert.Equal(t, osstr.String(c.expected), list)
		})
	}
}

func TestJoinWindowsQuote(t *testing.T) {
	_, err := Windows().Join(paths(`c:\`, `c:\te"st`))
	require.Error(t, err)

	var joinErr *JoinError
	require.ErrorAs(t, err, &joinErr)
	assert.Equal(t, osstr.String(`c:\te"st`), joinErr.Path)
	assert.Equal(t, 1, joinErr.Index)
}

func TestJoinReportsEarliestOffender(t *testing.T) {
	_, err := Posix().Join(paths("/bin", "/te:st", "/al:so"))
	var joinErr *JoinError
	require.ErrorAs(t, err, &joinErr)
	assert.Equal(t, 1, joinErr.Index)
}

func TestRoundTrip(t *testing.T) {
	cases := [][]osstr.String{
		paths(""),
		paths("", ""),
		paths("/bin", "/usr/bin"),
		paths("", "/bin", "", "", "/usr/bin", ""),
		paths(`c:\`, `c:\Program Files\`),
		paths(`c:\te;st`, `c:\`, ""),
		paths(`;`, `a;b;c`, `plain`),
	}
	for _, conv := range []Convention{Posix(), Windows()} {
		for _, in := range cases {
			list, err := conv.Join(in)
			if err != nil {
				// Inputs the convention rejects are outside the
				// round-trip contract.
				continue
			}
			assert.Equal(t, in, conv.Split(list), "list %q", string(list))
		}
	}
}
