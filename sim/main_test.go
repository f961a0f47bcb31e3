package sim

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestMain(m *testing.M) {
	// The engine logs every claim and completion at debug level and a summary
	// per run at info; keep test output quiet unless asked.
	// DEBUG_TESTS=1 go test ./sim/... -v shows everything.
	if os.Getenv("DEBUG_TESTS") == "" {
		logrus.SetLevel(logrus.WarnLevel)
	} else {
		logrus.SetLevel(logrus.DebugLevel)
	}
	os.Exit(m.Run())
}
