package config

import (
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Logging.FilePath)
	assert.False(t, cfg.Logging.Trace)
	assert.Equal(t, Shell{}, cfg.Shell)
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	env := []string{"EFM_LOG_FILE=/env.log", "EFM_TRACE=false", "PATH=/bin"}

	cfg, err := LoadArgs([]string{"--log-file", "/flag.log", "--trace"}, env)
	require.NoError(t, err)
	assert.Equal(t, "/flag.log", cfg.Logging.FilePath)
	assert.True(t, cfg.Logging.Trace)
}

func TestLoadArgsEnvironmentFallback(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"EFM_LOG_FILE=/env.log", "EFM_TRACE=1"})
	require.NoError(t, err)
	assert.Equal(t, "/env.log", cfg.Logging.FilePath)
	assert.True(t, cfg.Logging.Trace)
}

func TestLoadArgsIgnoresMalformedTrace(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"EFM_TRACE=sometimes", "garbage"})
	require.NoError(t, err)
	assert.False(t, cfg.Logging.Trace)
}

func TestLoadArgsHelp(t *testing.T) {
	for _, arg := range []string{"-h", "--help"} {
		_, err := LoadArgs([]string{arg}, nil)
		assert.True(t, errors.Is(err, flag.ErrHelp), arg)
	}
}

func TestLoadArgsRejectsPositionalArguments(t *testing.T) {
	_, err := LoadArgs([]string{"/some/dir"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected argument")

	_, err = LoadArgs([]string{"--bogus"}, nil)
	require.Error(t, err)
}

func TestLoadArgsShellIntegration(t *testing.T) {
	cfg, err := LoadArgs([]string{"--setup", "--shell", " fish "}, nil)
	require.NoError(t, err)
	assert.True(t, cfg.Shell.PrintSetup)
	assert.Equal(t, "fish", cfg.Shell.Name)

	cfg, err = LoadArgs(nil, []string{"EFM_RESULT_FILE=/tmp/efm.out"})
	require.NoError(t, err)
	assert.False(t, cfg.Shell.PrintSetup)
	assert.Equal(t, "/tmp/efm.out", cfg.Shell.ResultFile)

	cfg, err = LoadArgs([]string{"--result-file", "/tmp/flag.out"}, []string{"EFM_RESULT_FILE=/tmp/efm.out"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/flag.out", cfg.Shell.ResultFile)
}
