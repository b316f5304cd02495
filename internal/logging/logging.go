package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New returns a text logger writing to w (stderr when nil). debug forces the
// debug level; otherwise level is parsed, falling back to warn.
func New(w io.Writer, level string, debug bool) (*logrus.Logger, error) {
	if w == nil {
		w = os.Stderr
	}
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if debug {
		l.SetLevel(logrus.DebugLevel)
		return l, nil
	}
	lvl := logrus.WarnLevel
	if s := strings.TrimSpace(level); s != "" {
		parsed, err := logrus.ParseLevel(s)
		if err != nil {
			l.SetLevel(lvl)
			return l, fmt.Errorf("log level: %w", err)
		}
		lvl = parsed
	}
	l.SetLevel(lvl)
	return l, nil
}
