package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFile(t *testing.T) {
	conf, err := loadConfig(filepath.Join("testdata", "conf.toml"))
	require.NoError(t, err)

	assert.True(t, conf.Output.JSON)
	assert.Equal(t, "never", conf.Output.Color)
	assert.Equal(t, []string{"(?i)secret", "^AWS_"}, conf.Redact.Patterns)
}

func TestLoadConfigMissing(t *testing.T) {
	conf, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), conf)
}

func TestLoadConfigInvalidColor(t *testing.T) {
	_, err := loadConfigBytes([]byte("[output]\ncolor = \"sometimes\"\n"))
	assert.Error(t, err)
}

func TestRedactor(t *testing.T) {
	conf, err := loadConfigBytes([]byte("[redact]\npatterns = [\"(?i)secret\", \"^AWS_\"]\n"))
	require.NoError(t, err)

	r, err := conf.redactor()
	require.NoError(t, err)

	assert.Equal(t, "<redacted>", r.value("MY_SECRET", "hunter2"))
	assert.Equal(t, "<redacted>", r.value("AWS_ACCESS_KEY_ID", "AKIA..."))
	assert.Equal(t, "/bin:/usr/bin", r.value("PATH", "/bin:/usr/bin"))
}

func TestRedactorInvalidPattern(t *testing.T) {
	conf, err := loadConfigBytes([]byte("[redact]\npatterns = [\"(\"]\n"))
	require.NoError(t, err)

	_, err = conf.redactor()
	assert.Error(t, err)
}
