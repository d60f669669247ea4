// internal/logging/log.go
package logging

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// New builds the process logger from a level name.
func New(level string) (*logrus.Logger, error) {
	return NewTo(os.Stdout, level)
}

// NewTo builds a logger writing to w.
func NewTo(w io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "logging: parse level")
	}

	return &logrus.Logger{
		Out:   w,
		Level: lvl,
		Hooks: make(logrus.LevelHooks),
		Formatter: &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		},
		ExitFunc: os.Exit,
	}, nil
}

// Component returns an entry tagged with the component name.
func Component(log *logrus.Logger, name string) *logrus.Entry {
	return log.WithFields(logrus.Fields{"component": name})
}
