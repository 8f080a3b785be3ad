package cryptarch

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevelFromEnv(t *testing.T) {
	t.Setenv("CRYPTARCH_LOG", "debug")
	require.Equal(t, logrus.DebugLevel, newLogger().GetLevel())
}

func TestNewLoggerIgnoresUnknownLevel(t *testing.T) {
	t.Setenv("CRYPTARCH_LOG", "shouting")
	require.Equal(t, logrus.InfoLevel, newLogger().GetLevel())
}
