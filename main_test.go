package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCmd_LogLevelFlag(t *testing.T) {
	// When: building the root command
	flag := newCmd().Flags().Lookup("log-level")

	// Then: the flag has no default of its own so the config value is used
	require.NotNil(t, flag)
	assert.Empty(t, flag.DefValue)
	assert.Contains(t, flag.Usage, "overrides config")
}

func TestNewCmd_NormalizesFlagNames(t *testing.T) {
	// Given: the root command
	cmd := newCmd()

	// When: the flag is given with an underscore
	require.NoError(t, cmd.Flags().Parse([]string{"--log_level", "debug"}))

	// Then: it is read as --log-level
	level, err := cmd.Flags().GetString("log-level")
	require.NoError(t, err)
	assert.Equal(t, "debug", level)
}
