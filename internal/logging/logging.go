// Package logging builds the logrus logger shared by the commands.
//
// Console and file outputs are separate hooks so that each keeps its own level
// and formatter; the logger's own output is discarded.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultFile is the log file used when --log is given without a value.
const DefaultFile = "jugglefest.log"

// Options configures New.
type Options struct {
	// Console receives entries at Level and above. Nil means os.Stderr.
	Console io.Writer
	// Level is the console threshold; empty means "error". Verbose forces debug.
	Level   string
	Verbose bool
	// Format is "text" or "json" for the console.
	Format string
	// File, when set, receives every entry down to debug with full timestamps.
	File string
}

// New returns a configured logger and a closer for any opened file. The
// closer is never nil.
func New(o Options) (*logrus.Logger, io.Closer, error) {
	console := o.Console
	if console == nil {
		console = os.Stderr
	}
	level := logrus.ErrorLevel
	if o.Level != "" {
		l, err := logrus.ParseLevel(o.Level)
		if err != nil {
			return nil, nopCloser{}, fmt.Errorf("logging: %w", err)
		}
		level = l
	}
	if o.Verbose && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}

	var formatter logrus.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	if strings.EqualFold(o.Format, "json") {
		formatter = &logrus.JSONFormatter{}
	}

	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(level)
	log.AddHook(&writerHook{w: console, max: level, formatter: formatter})

	var closer io.Closer = nopCloser{}
	if o.File != "" {
		f, err := os.OpenFile(o.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nopCloser{}, fmt.Errorf("logging: %w", err)
		}
		closer = f
		log.AddHook(&writerHook{
			w:         f,
			max:       logrus.DebugLevel,
			formatter: &logrus.TextFormatter{FullTimestamp: true, DisableColors: true},
		})
		if log.GetLevel() < logrus.DebugLevel {
			log.SetLevel(logrus.DebugLevel)
		}
	}
	return log, closer, nil
}

// writerHook formats entries at or above max and writes them to w.
type writerHook struct {
	w         io.Writer
	max       logrus.Level
	formatter logrus.Formatter
}

func (h *writerHook) Levels() []logrus.Level {
	return logrus.AllLevels[:h.max+1]
}

func (h *writerHook) Fire(e *logrus.Entry) error {
	b, err := h.formatter.Format(e)
	if err != nil {
		return err
	}
	_, err = h.w.Write(b)
	return err
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
