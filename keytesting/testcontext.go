// Package keytesting provides shared test support: a logger, a scratch
// directory and a seeded generator of names, values and parameters.
package keytesting

import (
	"path/filepath"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
)

type TestContext struct {
	Log logger.Logger
	T   *testing.T
	Dir string
}

type TestConfig struct {
	// Seed for the generator. It is normal to force it to some fixed value so
	// that the generated data is the same from run to run.
	Seed            int64
	TestLabelPrefix string
	LogLevel        string // defaults to NOOP
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	level := cfg.LogLevel
	if level == "" {
		level = "NOOP"
	}
	logger.New(level)
	t.Cleanup(logger.OnExit)

	return TestContext{
		T:   t,
		Log: logger.Sugar.WithServiceName(cfg.TestLabelPrefix),
		Dir: t.TempDir(),
	}
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// Path returns name joined to the scratch directory.
func (c *TestContext) Path(name string) string {
	return filepath.Join(c.Dir, name)
}
