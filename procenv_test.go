package procenv

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgavlin/procenv/osstr"
	"github.com/pgavlin/procenv/pathlist"
)

// fakeBackend is an in-memory Backend for exercising paths the host
// environment can't produce on demand, such as backend failures and
// non-Unicode data.
type fakeBackend struct {
	env  []VarPair
	args []osstr.String
	conv pathlist.Convention
	plat Platform

	getenvErr error
	setenvErr error
}

func (b *fakeBackend) CurrentDir() (string, error)   { return "/", nil }
func (b *fakeBackend) SetCurrentDir(string) error    { return nil }
func (b *fakeBackend) CurrentExe() (string, error)   { return "/fake/exe", nil }
func (b *fakeBackend) HomeDir() (string, bool)       { return "/home/fake", true }
func (b *fakeBackend) TempDir() string               { return "/tmp" }
func (b *fakeBackend) PathList() pathlist.Convention { return b.conv }
func (b *fakeBackend) Platform() Platform            { return b.plat }

func (b *fakeBackend) Getenv(key osstr.String) (osstr.String, bool, error) {
	if b.getenvErr != nil {
		return "", false, b.getenvErr
	}
	for _, p := range b.env {
		if p.Key == key {
			return p.Value, true, nil
		}
	}
	return "", false, nil
}

func (b *fakeBackend) Setenv(key, value osstr.String) error {
	if b.setenvErr != nil {
		return b.setenvErr
	}
	for i, p := range b.env {
		if p.Key == key {
			b.env[i].Value = value
			return nil
		}
	}
	b.env = append(b.env, VarPair{Key: key, Value: value})
	return nil
}

func (b *fakeBackend) Unsetenv(key osstr.String) error {
	for i, p := range b.env {
		if p.Key == key {
			b.env = append(b.env[:i], b.env[i+1:]...)
			return nil
		}
	}
	return nil
}

func (b *fakeBackend) Environ() []VarPair {
	pairs := make([]VarPair, len(b.env))
	copy(pairs, b.env)
	return pairs
}

func (b *fakeBackend) Arguments() []osstr.String {
	args := make([]osstr.String, len(b.args))
	copy(args, b.args)
	return args
}

func fakeEnv(pairs ...VarPair) (*Env, *fakeBackend) {
	b := &fakeBackend{env: pairs, conv: pathlist.Posix(), plat: platformFor("linux", "amd64")}
	return New(b), b
}

func TestVarNotPresent(t *testing.T) {
	_, err := Var("DEFINITELY_UNSET_XYZ")
	assert.ErrorIs(t, err, ErrNotPresent)

	_, ok := VarOs("DEFINITELY_UNSET_XYZ")
	assert.False(t, ok)
}

func TestSetRemoveVar(t *testing.T) {
	const key = "PROCENV_TEST_SET_REMOVE"
	defer os.Unsetenv(key)

	SetVar(key, "V")
	value, err := Var(key)
	require.NoError(t, err)
	assert.Equal(t, "V", value)

	RemoveVar(key)
	_, err = Var(key)
	assert.ErrorIs(t, err, ErrNotPresent)
}

func TestVarNotUnicode(t *testing.T) {
	raw := osstr.FromBytes([]byte{'a', 0xff, 'b'})
	env, _ := fakeEnv(VarPair{Key: "K", Value: raw})

	_, err := env.Var("K")
	var notUnicode *NotUnicodeError
	require.ErrorAs(t, err, &notUnicode)
	assert.Equal(t, raw, notUnicode.Raw)

	// The raw variant hands back the same data without complaint.
	value, ok := env.VarOs("K")
	require.True(t, ok)
	assert.Equal(t, raw, value)
}

func TestVarOsBackendFailure(t *testing.T) {
	env, b := fakeEnv()
	b.getenvErr = errors.New("os failure")
	assert.Panics(t, func() { env.VarOs("K") })
}

func TestSetVarBackendFailure(t *testing.T) {
	env, b := fakeEnv()
	b.setenvErr = errors.New("os failure")
	assert.Panics(t, func() { env.SetVar("K", "V") })
}

func TestMutationContract(t *testing.T) {
	env, _ := fakeEnv()
	for _, key := range []osstr.String{"", "A=B", "A\x00B"} {
		assert.Panics(t, func() { env.SetVar(key, "V") }, "key %q", key)
		assert.Panics(t, func() { env.RemoveVar(key) }, "key %q", key)
	}
	assert.Panics(t, func() { env.SetVar("K", "a\x00b") })
}

func TestMalformedLookupKey(t *testing.T) {
	env, b := fakeEnv()
	b.getenvErr = errors.New("must not be reached")

	// Malformed keys can't name a variable; the backend is not consulted.
	for _, key := range []osstr.String{"", "A=B", "A\x00B"} {
		_, ok := env.VarOs(key)
		assert.False(t, ok, "key %q", key)
		_, err := env.Var(key)
		assert.ErrorIs(t, err, ErrNotPresent, "key %q", key)
	}
}

func TestJoinPathsError(t *testing.T) {
	env, _ := fakeEnv()
	_, err := env.JoinPaths([]osstr.String{"/bin", "/te:st"})

	var joinErr *pathlist.JoinError
	require.ErrorAs(t, err, &joinErr)
	assert.Equal(t, osstr.String("/te:st"), joinErr.Path)
}

func TestSplitPathsRestartable(t *testing.T) {
	env, _ := fakeEnv()
	list := osstr.String(":/bin::/usr/bin")
	first := env.SplitPaths(list)
	second := env.SplitPaths(list)
	assert.Equal(t, first, second)
}

func TestMap(t *testing.T) {
	env, _ := fakeEnv(
		VarPair{Key: "A", Value: "1"},
		VarPair{Key: "B", Value: osstr.FromBytes([]byte{0xff})},
	)
	assert.Equal(t, map[string]string{"A": "1", "B": "�"}, env.Map())
}

func TestHostDirs(t *testing.T) {
	dir, err := CurrentDir()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(dir))

	exe, err := CurrentExe()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(exe))

	assert.NotEmpty(t, TempDir())

	if home, ok := HomeDir(); ok {
		assert.NotEmpty(t, home)
	}
}

func TestLookPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on POSIX execute bits")
	}

	dir := t.TempDir()
	exe := filepath.Join(dir, "procenv-look")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "not-exec"), nil, 0o644))

	env, _ := fakeEnv(VarPair{Key: "PATH", Value: osstr.String(dir + ":/nonexistent")})

	found, ok := env.LookPath("procenv-look")
	require.True(t, ok)
	assert.Equal(t, exe, found)

	_, ok = env.LookPath("not-exec")
	assert.False(t, ok)

	_, ok = env.LookPath("procenv-definitely-missing")
	assert.False(t, ok)

	// A name containing a separator bypasses PATH.
	found, ok = env.LookPath(exe)
	require.True(t, ok)
	assert.Equal(t, exe, found)
}
