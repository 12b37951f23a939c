package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.uber.org/dig"
)

// RegisterProviders registers the command tree and its dependencies.
// BuildInfo must be provided by the caller.
func RegisterProviders(container *dig.Container) error {
	providers := []interface{}{
		viper.GetViper,
		NewLogger,
		NewEnvironment,
		NewRootCommand,
	}

	for _, provider := range providers {
		err := container.Provide(provider)
		if err != nil {
			return err
		}
	}

	return nil
}

// NewLogger returns the process logger configured for terminal output.
func NewLogger() *logrus.Logger {
	logger := logrus.StandardLogger()
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})

	return logger
}
