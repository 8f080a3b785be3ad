package cryptarch

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger is the shared logger. The CLI logs through it; the transform
// functions stay pure and never log. The CRYPTARCH_LOG environment
// variable sets the level (logrus level names, case-insensitive).
var (
	log    = newLogger()
	Logger = log
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	if x, ok := os.LookupEnv("CRYPTARCH_LOG"); ok {
		if level, err := logrus.ParseLevel(strings.ToLower(x)); err == nil {
			l.SetLevel(level)
		}
	}
	return l
}
