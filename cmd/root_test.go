package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetRootCmd_Exists verifies getRootCmd returns
// a valid command.
func TestGetRootCmd_Exists(t *testing.T) {
	cmd := getRootCmd()
	require.NotNil(t, cmd, "Root command should exist")
	assert.Equal(t, "meigen", cmd.Use,
		"Command name should be meigen")
}

// TestGetRootCmd_VersionFormat verifies version
// output format.
func TestGetRootCmd_VersionFormat(t *testing.T) {
	for _, flag := range []string{"--version", "-V"} {
		cmd := getRootCmd()
		cmd.Version = "version: v1.2.3\nbuild:   abc123"

		buf := new(bytes.Buffer)
		cmd.SetOut(buf)
		cmd.SetArgs([]string{flag})

		err := cmd.Execute()
		require.NoError(t, err, flag)

		output := buf.String()
		assert.Contains(t, output, "v1.2.3", flag)
		assert.Contains(t, output, "abc123", flag)
	}
}

// TestGetRootCmd_HelpText verifies help text content.
func TestGetRootCmd_HelpText(t *testing.T) {
	cmd := getRootCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	require.NoError(t, err)

	helpText := buf.String()
	assert.Contains(t, helpText, "meigen")
	assert.Contains(t, helpText, "MEIGEN_CORPUS_FILE")
	assert.Contains(t, helpText, "--corpus")
}

// TestGetRootCmd_HasPreRun verifies bootstrap
// function is set.
func TestGetRootCmd_HasPreRun(t *testing.T) {
	cmd := getRootCmd()

	assert.NotNil(t, cmd.PersistentPreRunE,
		"PersistentPreRunE should be set for bootstrap")
}

// TestGetRootCmd_Subcommands verifies every command is registered
// and documented.
func TestGetRootCmd_Subcommands(t *testing.T) {
	names := []string{
		"parse", "next", "random", "schedule", "publish",
		"weekly", "stats", "export", "section", "reconcile",
	}
	root := getRootCmd()

	for _, v := range names {
		cmd, _, err := root.Find([]string{v})
		require.NoError(t, err, v)
		assert.Equal(t, v, cmd.Name())
		assert.NotEmpty(t, cmd.Short, v)
		assert.Contains(t, cmd.Long, "Examples:", v)
		assert.Contains(t, cmd.Long, "meigen "+v, v)
		assert.NotNil(t, cmd.RunE, v)
	}
}

// TestFlags verifies command flags and their defaults.
func TestFlags(t *testing.T) {
	tests := []struct {
		cmd       string
		flag      string
		shorthand string
		defValue  string
	}{
		{"parse", "all", "a", "false"},
		{"parse", "sample", "s", "false"},
		{"next", "category", "", ""},
		{"random", "transcript", "t", "false"},
		{"schedule", "date", "d", ""},
		{"publish", "issue", "n", "0"},
		{"publish", "text", "", "false"},
		{"weekly", "weeks", "w", "4"},
		{"weekly", "frequency", "f", ""},
		{"stats", "json", "j", "false"},
		{"export", "format", "f", ""},
		{"export", "unpublished", "u", "false"},
		{"export", "quiet", "q", "false"},
		{"section", "publish", "p", "false"},
	}

	root := getRootCmd()
	for _, v := range tests {
		cmd, _, err := root.Find([]string{v.cmd})
		require.NoError(t, err)

		f := cmd.Flags().Lookup(v.flag)
		require.NotNil(t, f, "%s --%s", v.cmd, v.flag)
		assert.Equal(t, v.shorthand, f.Shorthand, "%s --%s", v.cmd, v.flag)
		assert.Equal(t, v.defValue, f.DefValue, "%s --%s", v.cmd, v.flag)
	}
}

// TestGetCmd_IndependentInstances verifies each
// call returns independent instance.
func TestGetCmd_IndependentInstances(t *testing.T) {
	cmd1 := getParseCmd()
	cmd2 := getParseCmd()

	assert.NotSame(t, cmd1, cmd2,
		"Each call should return new instance")

	cmd1.Short = "test1"
	cmd2.Short = "test2"

	assert.Equal(t, "test1", cmd1.Short)
	assert.Equal(t, "test2", cmd2.Short)
}
