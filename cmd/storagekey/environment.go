package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-storagekey/config"
	"github.com/spf13/pflag"
)

const serviceName = "storagekey"

var errUsage = errors.New("usage")

func usageErrorf(format string, a ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, a...))
}

func isUsage(err error) bool {
	return errors.Is(err, errUsage) || errors.Is(err, pflag.ErrHelp)
}

// environment is the per invocation state shared by the commands.
type environment struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	cfg        *config.Config
	log        logger.Logger
}

func (e *environment) flagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(serviceName+" "+name, pflag.ContinueOnError)
	fs.SetOutput(e.stderr)
	fs.StringVar(&e.configPath, "config", "", "path to a yaml config file (default $"+config.EnvConfig+")")
	return fs
}

// parse parses the flags then loads the configuration and starts the logger.
func (e *environment) parse(fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	var err error
	switch {
	case e.configPath != "":
		e.cfg, err = config.LoadFile(e.configPath)
	case os.Getenv(config.EnvConfig) != "":
		e.cfg, err = config.Load()
	default:
		e.cfg = config.Default()
	}
	if err != nil {
		return err
	}

	logger.New(e.cfg.LogLevel)
	e.log = logger.Sugar.WithServiceName(serviceName)
	return nil
}

func (e *environment) close() {
	if e.log != nil {
		logger.OnExit()
	}
}
