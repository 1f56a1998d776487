// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a logrus logger writing plain key=value lines to dst.
// quiet raises the level to warn regardless of level.
func NewLogger(dst io.Writer, level string, quiet bool) (*logrus.Logger, error) {
	lvl := logrus.InfoLevel
	if level != "" {
		var err error
		if lvl, err = logrus.ParseLevel(level); err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
	}
	if quiet && lvl > logrus.WarnLevel {
		lvl = logrus.WarnLevel
	}

	lg := logrus.New()
	lg.SetOutput(dst)
	lg.SetLevel(lvl)
	lg.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:       true,
		DisableColors:          true,
		DisableLevelTruncation: true,
	})
	return lg, nil
}
