package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".config", "cryptarch")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0o644))
}

// flag registration writes the flag default into outPath during init;
// loadConfig runs later and must still see the configured value through
func TestConfigOutSurvivesFlagDefaults(t *testing.T) {
	writeConfig(t, "out = \"/tmp/cryptarch-out.txt\"\n")
	outPath = ""
	defer func() { outPath = "" }()
	loadConfig()
	require.Equal(t, "/tmp/cryptarch-out.txt", outPath)
}

func TestConfigOutYieldsToExplicitFlag(t *testing.T) {
	writeConfig(t, "out = \"/tmp/cryptarch-out.txt\"\n")
	outPath = "explicit.txt"
	defer func() { outPath = "" }()
	loadConfig()
	require.Equal(t, "explicit.txt", outPath)
}

func TestConfigLogLevel(t *testing.T) {
	writeConfig(t, "log_level = \"debug\"\n")
	prev := log.GetLevel()
	defer log.SetLevel(prev)
	loadConfig()
	require.Equal(t, logrus.DebugLevel, log.GetLevel())
}

func TestConfigMissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	outPath = ""
	loadConfig()
	require.Equal(t, "", outPath)
}
